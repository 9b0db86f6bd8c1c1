package cleaning

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-insights-api/internal/config"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Cleaner valida e normaliza registros brutos
type Cleaner interface {
	Clean(records []domain.RawRecord) ([]domain.CleanRecord, *domain.DiscardReport)
}

// enumeration resolve valores livres para a grafia canônica.
// Uma enumeração sem valores é aberta e aceita qualquer texto.
type enumeration struct {
	field     string
	canonical map[string]string
}

func newEnumeration(field string, values []string) enumeration {
	e := enumeration{field: field, canonical: make(map[string]string, len(values))}
	for _, v := range values {
		n := normalizeText(v)
		e.canonical[strings.ToLower(n)] = n
	}
	return e
}

type Service struct {
	cfg            config.Pipeline
	unknown        string
	categories     enumeration
	regions        enumeration
	paymentMethods enumeration
	ageGroups      enumeration
}

func NewService(cfg config.Pipeline) Cleaner {
	return &Service{
		cfg:            cfg,
		unknown:        normalizeText(cfg.UnknownLabel),
		categories:     newEnumeration(domain.FieldCategory, cfg.Categories),
		regions:        newEnumeration(domain.FieldRegion, cfg.Regions),
		paymentMethods: newEnumeration(domain.FieldPaymentMethod, cfg.PaymentMethods),
		ageGroups:      newEnumeration(domain.FieldAgeGroup, cfg.AgeGroups),
	}
}

// Clean aplica as regras de limpeza na ordem da entrada. Linhas inválidas são
// descartadas e contabilizadas no relatório; a execução nunca falha por causa de uma linha.
func (s *Service) Clean(records []domain.RawRecord) ([]domain.CleanRecord, *domain.DiscardReport) {
	report := domain.NewDiscardReport(s.cfg.MaxReportedErrors)
	report.Received = len(records)

	cleaned := make([]domain.CleanRecord, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for i, raw := range records {
		record, rowErr := s.cleanRecord(i+1, raw, report)
		if rowErr != nil {
			report.AddDiscard(*rowErr)
			continue
		}

		// Mantém a primeira ocorrência válida de cada transação
		if _, ok := seen[record.TransactionID()]; ok {
			report.AddDiscard(domain.RowValidationError{
				Row:           i + 1,
				TransactionID: record.TransactionID(),
				Field:         "transaction_id",
				Reason:        domain.ReasonDuplicateID,
				Value:         record.TransactionID(),
			})
			continue
		}
		seen[record.TransactionID()] = struct{}{}

		cleaned = append(cleaned, record)
	}

	report.Kept = len(cleaned)

	return cleaned, report
}

func (s *Service) cleanRecord(row int, raw domain.RawRecord, report *domain.DiscardReport) (domain.CleanRecord, *domain.RowValidationError) {
	id := normalizeText(raw.TransactionID)
	rowErr := func(field string, reason domain.DiscardReason, value string) *domain.RowValidationError {
		return &domain.RowValidationError{Row: row, TransactionID: id, Field: field, Reason: reason, Value: value}
	}

	if id == "" {
		return domain.CleanRecord{}, rowErr("transaction_id", domain.ReasonMissingID, raw.TransactionID)
	}

	date, ok := s.parseDate(raw.Date)
	if !ok {
		return domain.CleanRecord{}, rowErr("date", domain.ReasonInvalidDate, raw.Date)
	}

	quantity, ok := parseQuantity(raw.Quantity)
	if !ok {
		return domain.CleanRecord{}, rowErr("quantity", domain.ReasonInvalidQuantity, raw.Quantity)
	}

	price, err := decimal.NewFromString(normalizeText(raw.UnitPrice))
	if err != nil || price.IsNegative() {
		return domain.CleanRecord{}, rowErr("unit_price", domain.ReasonInvalidPrice, raw.UnitPrice)
	}

	discount := decimal.Zero
	if d := normalizeText(raw.Discount); d != "" {
		discount, err = decimal.NewFromString(d)
		gross := price.Mul(decimal.NewFromInt(quantity))
		if err != nil || discount.IsNegative() || discount.GreaterThan(gross) {
			return domain.CleanRecord{}, rowErr("discount", domain.ReasonInvalidDiscount, raw.Discount)
		}
	}

	// As substituições só são contabilizadas quando a linha é mantida
	substitutions := make([]string, 0)
	resolve := func(e enumeration, value string) string {
		resolved, substituted := s.resolveEnum(e, value)
		if substituted {
			substitutions = append(substitutions, e.field)
		}
		return resolved
	}
	fill := func(field, value string) string {
		n := normalizeText(value)
		if n == "" {
			substitutions = append(substitutions, field)
			return s.unknown
		}
		return n
	}
	// Nomes de produto são comparados sem diferenciar maiúsculas; ids de cliente não
	name := func(field, value string) string {
		n := fill(field, value)
		if strings.EqualFold(n, s.unknown) {
			return s.unknown
		}
		return foldCase(n)
	}

	record, err := domain.NewCleanRecord(domain.CleanRecordParams{
		TransactionID: id,
		Date:          date,
		CustomerID:    fill(domain.FieldCustomerID, raw.CustomerID),
		Product:       name(domain.FieldProduct, raw.Product),
		Category:      resolve(s.categories, raw.Category),
		Region:        resolve(s.regions, raw.Region),
		PaymentMethod: resolve(s.paymentMethods, raw.PaymentMethod),
		Quantity:      quantity,
		UnitPrice:     price,
		Discount:      discount,
		AgeGroup:      resolve(s.ageGroups, raw.AgeGroup),
	})
	if err != nil {
		return domain.CleanRecord{}, rowErr("record", domain.ReasonInvalidRecord, err.Error())
	}

	for _, field := range substitutions {
		report.AddSubstitution(field)
	}

	return record, nil
}

// resolveEnum devolve a grafia canônica do valor ou o sentinela.
// O segundo retorno indica se houve substituição pelo sentinela.
func (s *Service) resolveEnum(e enumeration, value string) (string, bool) {
	n := normalizeText(value)
	if n == "" {
		return s.unknown, true
	}

	lower := strings.ToLower(n)
	if lower == strings.ToLower(s.unknown) {
		return s.unknown, false
	}

	// Enumeração aberta: a grafia é padronizada para agrupar variações de caixa
	if len(e.canonical) == 0 {
		return foldCase(n), false
	}

	if canonical, ok := e.canonical[lower]; ok {
		return canonical, false
	}

	return s.unknown, true
}

func (s *Service) parseDate(value string) (time.Time, bool) {
	v := normalizeText(value)
	if v == "" {
		return time.Time{}, false
	}

	// O formato canônico é sempre aceito para que registros já limpos passem de novo
	if t, err := time.Parse(domain.DateLayout, v); err == nil {
		return t, true
	}

	for _, layout := range s.cfg.DateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// parseQuantity aceita apenas inteiros entre 1 e domain.MaxQuantity (ex: "3" ou "3.0")
func parseQuantity(value string) (int64, bool) {
	d, err := decimal.NewFromString(normalizeText(value))
	if err != nil || !d.IsInteger() || d.LessThan(decimal.NewFromInt(1)) {
		return 0, false
	}

	if d.GreaterThan(decimal.NewFromInt(domain.MaxQuantity)) {
		return 0, false
	}

	return d.IntPart(), true
}

// foldCase padroniza a caixa como título (ex: "ELECTRONICS" -> "Electronics").
// O Caser guarda estado, então cada chamada usa o seu.
func foldCase(value string) string {
	return cases.Title(language.Und).String(value)
}

// normalizeText remove espaços nas pontas e colapsa espaços internos
func normalizeText(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
