package domain

import (
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PeriodLayout é o formato do bucket mensal (ex: 2024-01)
const PeriodLayout = "2006-01"

// EnrichedRecord é um CleanRecord acrescido dos campos derivados
type EnrichedRecord struct {
	CleanRecord
	revenue    decimal.Decimal
	netRevenue decimal.Decimal
	period     string
	quarter    string
	year       int
	weekday    string
}

// NewEnrichedRecord calcula os campos derivados de um registro limpo
func NewEnrichedRecord(r CleanRecord) EnrichedRecord {
	revenue := r.Gross()
	date := r.Date()

	return EnrichedRecord{
		CleanRecord: r,
		revenue:     revenue,
		netRevenue:  revenue.Sub(r.Discount()),
		period:      date.Format(PeriodLayout),
		quarter:     QuarterOf(date.Year(), int(date.Month())),
		year:        date.Year(),
		weekday:     date.Weekday().String(),
	}
}

// QuarterOf retorna o rótulo do trimestre no formato 2024-Q1
func QuarterOf(year, month int) string {
	return fmt.Sprintf("%d-Q%d", year, (month-1)/3+1)
}

// Revenue é a receita bruta da linha (quantidade × preço unitário)
func (e EnrichedRecord) Revenue() decimal.Decimal    { return e.revenue }
func (e EnrichedRecord) NetRevenue() decimal.Decimal { return e.netRevenue }
func (e EnrichedRecord) Period() string              { return e.period }
func (e EnrichedRecord) Quarter() string             { return e.quarter }
func (e EnrichedRecord) Year() int                   { return e.year }
func (e EnrichedRecord) YearLabel() string           { return strconv.Itoa(e.year) }
func (e EnrichedRecord) Weekday() string             { return e.weekday }

type enrichedRecordJSON struct {
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
	Revenue       decimal.Decimal `json:"revenue"`
	NetRevenue    decimal.Decimal `json:"net_revenue"`
	Period        string          `json:"period"`
	Quarter       string          `json:"quarter"`
	Year          int             `json:"year"`
	Weekday       string          `json:"weekday"`
}

func (e EnrichedRecord) MarshalJSON() ([]byte, error) {
	c := e.CleanRecord.toJSON()
	return json.Marshal(enrichedRecordJSON{
		TransactionID: c.TransactionID,
		Date:          c.Date,
		CustomerID:    c.CustomerID,
		Product:       c.Product,
		Category:      c.Category,
		Region:        c.Region,
		PaymentMethod: c.PaymentMethod,
		Quantity:      c.Quantity,
		UnitPrice:     c.UnitPrice,
		Discount:      c.Discount,
		AgeGroup:      c.AgeGroup,
		Revenue:       e.revenue,
		NetRevenue:    e.netRevenue,
		Period:        e.period,
		Quarter:       e.quarter,
		Year:          e.year,
		Weekday:       e.weekday,
	})
}
