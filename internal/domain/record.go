// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout é o formato canônico de data emitido para registros limpos
const DateLayout = time.DateOnly

// MaxQuantity limita as unidades de uma linha para que as somas em int64 não estourem
const MaxQuantity = 1_000_000

// RawRecord representa uma transação como foi lida da origem, sem nenhuma validação
type RawRecord struct {
	TransactionID string `json:"transaction_id" mapstructure:"transaction_id"`
	Date          string `json:"date" mapstructure:"date"`
	CustomerID    string `json:"customer_id" mapstructure:"customer_id"`
	Product       string `json:"product" mapstructure:"product"`
	Category      string `json:"category" mapstructure:"category"`
	Region        string `json:"region" mapstructure:"region"`
	PaymentMethod string `json:"payment_method" mapstructure:"payment_method"`
	Quantity      string `json:"quantity" mapstructure:"quantity"`
	UnitPrice     string `json:"unit_price" mapstructure:"unit_price"`
	Discount      string `json:"discount" mapstructure:"discount"`
	AgeGroup      string `json:"age_group" mapstructure:"age_group"`
}

// CleanRecordParams agrupa os valores já normalizados usados para construir um CleanRecord
type CleanRecordParams struct {
	TransactionID string
	Date          time.Time
	CustomerID    string
	Product       string
	Category      string
	Region        string
	PaymentMethod string
	Quantity      int64
	UnitPrice     decimal.Decimal
	Discount      decimal.Decimal
	AgeGroup      string
}

// CleanRecord é uma transação canônica. Só pode ser obtido via NewCleanRecord,
// portanto todo valor não-zero satisfaz as restrições de campo.
type CleanRecord struct {
	transactionID string
	date          time.Time
	customerID    string
	product       string
	category      string
	region        string
	paymentMethod string
	quantity      int64
	unitPrice     decimal.Decimal
	discount      decimal.Decimal
	ageGroup      string
}

// NewCleanRecord valida os parâmetros e constrói um CleanRecord imutável
func NewCleanRecord(p CleanRecordParams) (CleanRecord, error) {
	r := CleanRecord{
		transactionID: p.TransactionID,
		date:          truncateToDay(p.Date),
		customerID:    p.CustomerID,
		product:       p.Product,
		category:      p.Category,
		region:        p.Region,
		paymentMethod: p.PaymentMethod,
		quantity:      p.Quantity,
		unitPrice:     p.UnitPrice,
		discount:      p.Discount,
		ageGroup:      p.AgeGroup,
	}

	if err := r.Validate(); err != nil {
		return CleanRecord{}, err
	}

	return r, nil
}

// Validate verifica novamente as invariantes do registro
func (r CleanRecord) Validate() error {
	switch {
	case strings.TrimSpace(r.transactionID) == "":
		return fmt.Errorf("%w: transaction id vazio", ErrInvalidCleanRecord)
	case r.date.IsZero():
		return fmt.Errorf("%w: data ausente", ErrInvalidCleanRecord)
	case r.category == "" || r.region == "" || r.paymentMethod == "":
		return fmt.Errorf("%w: categoria, região ou forma de pagamento vazia", ErrInvalidCleanRecord)
	case r.quantity < 1:
		return fmt.Errorf("%w: quantidade %d menor que 1", ErrInvalidCleanRecord, r.quantity)
	case r.quantity > MaxQuantity:
		return fmt.Errorf("%w: quantidade %d acima do limite %d", ErrInvalidCleanRecord, r.quantity, MaxQuantity)
	case r.unitPrice.IsNegative():
		return fmt.Errorf("%w: preço unitário negativo %s", ErrInvalidCleanRecord, r.unitPrice)
	case r.discount.IsNegative():
		return fmt.Errorf("%w: desconto negativo %s", ErrInvalidCleanRecord, r.discount)
	case r.discount.GreaterThan(r.Gross()):
		return fmt.Errorf("%w: desconto %s maior que o valor bruto %s", ErrInvalidCleanRecord, r.discount, r.Gross())
	}

	return nil
}

func (r CleanRecord) TransactionID() string      { return r.transactionID }
func (r CleanRecord) Date() time.Time            { return r.date }
func (r CleanRecord) CustomerID() string         { return r.customerID }
func (r CleanRecord) Product() string            { return r.product }
func (r CleanRecord) Category() string           { return r.category }
func (r CleanRecord) Region() string             { return r.region }
func (r CleanRecord) PaymentMethod() string      { return r.paymentMethod }
func (r CleanRecord) Quantity() int64            { return r.quantity }
func (r CleanRecord) UnitPrice() decimal.Decimal { return r.unitPrice }
func (r CleanRecord) Discount() decimal.Decimal  { return r.discount }
func (r CleanRecord) AgeGroup() string           { return r.ageGroup }

// Gross retorna quantidade × preço unitário
func (r CleanRecord) Gross() decimal.Decimal {
	return r.unitPrice.Mul(decimal.NewFromInt(r.quantity))
}

// Raw converte o registro de volta para a forma bruta. Limpar o resultado
// produz um registro igual ao original.
func (r CleanRecord) Raw() RawRecord {
	return RawRecord{
		TransactionID: r.transactionID,
		Date:          r.date.Format(DateLayout),
		CustomerID:    r.customerID,
		Product:       r.product,
		Category:      r.category,
		Region:        r.region,
		PaymentMethod: r.paymentMethod,
		Quantity:      strconv.FormatInt(r.quantity, 10),
		UnitPrice:     r.unitPrice.String(),
		Discount:      r.discount.String(),
		AgeGroup:      r.ageGroup,
	}
}

// Equal compara dois registros, tratando valores decimais pelo valor numérico
func (r CleanRecord) Equal(other CleanRecord) bool {
	return r.transactionID == other.transactionID &&
		r.date.Equal(other.date) &&
		r.customerID == other.customerID &&
		r.product == other.product &&
		r.category == other.category &&
		r.region == other.region &&
		r.paymentMethod == other.paymentMethod &&
		r.quantity == other.quantity &&
		r.unitPrice.Equal(other.unitPrice) &&
		r.discount.Equal(other.discount) &&
		r.ageGroup == other.ageGroup
}

type cleanRecordJSON struct {
	TransactionID string          `json:"transaction_id"`
	Date          string          `json:"date"`
	CustomerID    string          `json:"customer_id"`
	Product       string          `json:"product"`
	Category      string          `json:"category"`
	Region        string          `json:"region"`
	PaymentMethod string          `json:"payment_method"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Discount      decimal.Decimal `json:"discount"`
	AgeGroup      string          `json:"age_group"`
}

func (r CleanRecord) toJSON() cleanRecordJSON {
	return cleanRecordJSON{
		TransactionID: r.transactionID,
		Date:          r.date.Format(DateLayout),
		CustomerID:    r.customerID,
		Product:       r.product,
		Category:      r.category,
		Region:        r.region,
		PaymentMethod: r.paymentMethod,
		Quantity:      r.quantity,
		UnitPrice:     r.unitPrice,
		Discount:      r.discount,
		AgeGroup:      r.ageGroup,
	}
}

func (r CleanRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.toJSON())
}

func truncateToDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
