package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indica que nenhuma linha sobreviveu à limpeza. Não é fatal.
	ErrEmptyInput = errors.New("nenhum registro válido para agregar")

	// ErrInternalConsistency indica um defeito no próprio pipeline
	ErrInternalConsistency = errors.New("inconsistência interna no pipeline")

	// ErrInvalidCleanRecord é retornado quando um CleanRecord violaria suas invariantes
	ErrInvalidCleanRecord = errors.New("registro limpo inválido")
)

// RowValidationError descreve uma linha descartada pela limpeza
type RowValidationError struct {
	Row           int           `json:"row"` // Posição da linha na entrada, começando em 1
	TransactionID string        `json:"transaction_id,omitempty"`
	Field         string        `json:"field"`
	Reason        DiscardReason `json:"reason"`
	Value         string        `json:"value,omitempty"`
}

func (e RowValidationError) Error() string {
	return fmt.Sprintf("linha %d (id %q): campo %s inválido (%s): %q", e.Row, e.TransactionID, e.Field, e.Reason, e.Value)
}

// InternalConsistencyError é fatal e aborta a execução
type InternalConsistencyError struct {
	Stage         string
	TransactionID string
	Detail        string
}

func (e *InternalConsistencyError) Error() string {
	return fmt.Sprintf("%s: etapa %s, transação %q: %s", ErrInternalConsistency.Error(), e.Stage, e.TransactionID, e.Detail)
}

// Unwrap retorna o erro base
func (e *InternalConsistencyError) Unwrap() error {
	return ErrInternalConsistency
}
