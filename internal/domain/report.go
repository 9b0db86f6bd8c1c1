package domain

// DiscardReason identifica a regra de limpeza que descartou uma linha
type DiscardReason string

const (
	ReasonMissingID       DiscardReason = "missing_id"
	ReasonInvalidDate     DiscardReason = "invalid_date"
	ReasonInvalidQuantity DiscardReason = "invalid_quantity"
	ReasonInvalidPrice    DiscardReason = "invalid_price"
	ReasonInvalidDiscount DiscardReason = "invalid_discount"
	ReasonDuplicateID     DiscardReason = "duplicate_id"
	ReasonInvalidRecord   DiscardReason = "invalid_record"
)

// Campos que podem receber o valor sentinela
const (
	FieldCustomerID    = "customer_id"
	FieldProduct       = "product"
	FieldCategory      = "category"
	FieldRegion        = "region"
	FieldPaymentMethod = "payment_method"
	FieldAgeGroup      = "age_group"
)

// DiscardReport resume o que a limpeza fez com as linhas recebidas
type DiscardReport struct {
	Received      int                   `json:"received"`
	Kept          int                   `json:"kept"`
	Discarded     int                   `json:"discarded"`
	ByReason      map[DiscardReason]int `json:"by_reason"`
	Substitutions map[string]int        `json:"substitutions"` // Campo -> quantidade de valores trocados pelo sentinela
	Errors        []RowValidationError  `json:"errors"`

	maxErrors int
}

// NewDiscardReport cria um relatório que guarda até maxErrors amostras de erro
func NewDiscardReport(maxErrors int) *DiscardReport {
	return &DiscardReport{
		ByReason:      make(map[DiscardReason]int),
		Substitutions: make(map[string]int),
		Errors:        []RowValidationError{},
		maxErrors:     maxErrors,
	}
}

// AddDiscard contabiliza uma linha descartada
func (r *DiscardReport) AddDiscard(err RowValidationError) {
	r.Discarded++
	r.ByReason[err.Reason]++
	if len(r.Errors) < r.maxErrors {
		r.Errors = append(r.Errors, err)
	}
}

// AddSubstitution contabiliza a troca de um valor pelo sentinela
func (r *DiscardReport) AddSubstitution(field string) {
	r.Substitutions[field]++
}
