package insighting

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrSourceUnavailable = errors.New("origem de dados indisponível")
	ErrPersistence       = errors.New("erro ao persistir resultado da execução")
	ErrSnapshotNotFound  = errors.New("execução não encontrada")
)

// PipelineError é um erro com contexto adicional para uma execução do pipeline
type PipelineError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	RunID   string // Execução envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *PipelineError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *PipelineError) Unwrap() error {
	return e.Err
}

func NewPipelineError(err error, code string, runID string, details string) *PipelineError {
	return &PipelineError{
		Err:     err,
		Code:    code,
		RunID:   runID,
		Details: details,
	}
}
