package ranking

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPeriod = errors.New("período inválido")
)

// RankingError é um erro com contexto adicional para o ranking
type RankingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *RankingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *RankingError) Unwrap() error {
	return e.Err
}

func NewRankingError(err error, code string, details string) *RankingError {
	return &RankingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
