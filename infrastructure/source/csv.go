package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// CSVSource lê registros de um arquivo CSV com linha de cabeçalho
type CSVSource struct {
	name   string
	open   func() (io.ReadCloser, error)
	mapper *Mapper
}

func NewCSVSource(path string, mapper *Mapper) *CSVSource {
	return &CSVSource{
		name:   "csv:" + filepath.Base(path),
		open:   func() (io.ReadCloser, error) { return os.Open(path) },
		mapper: mapper,
	}
}

// NewCSVReaderSource lê de um reader já aberto, como o corpo de uma requisição
func NewCSVReaderSource(name string, r io.Reader, mapper *Mapper) *CSVSource {
	return &CSVSource{
		name:   name,
		open:   func() (io.ReadCloser, error) { return io.NopCloser(r), nil },
		mapper: mapper,
	}
}

func (s *CSVSource) Name() string {
	return s.name
}

// Records lê todas as linhas. Linhas malformadas viram registros vazios para
// que a limpeza as contabilize como descartadas.
func (s *CSVSource) Records(ctx context.Context) ([]domain.RawRecord, error) {
	f, err := s.open()
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir CSV: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []domain.RawRecord{}, nil
		}
		return nil, fmt.Errorf("erro ao ler cabeçalho do CSV: %w", err)
	}

	records := make([]domain.RawRecord, 0)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		values, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			logrus.WithError(err).WithField("line", parseErr.Line).Warn("Linha malformada no CSV")
			records = append(records, domain.RawRecord{})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("erro ao ler CSV: %w", err)
		}

		raw, err := s.mapper.MapHeader(header, values)
		if err != nil {
			logrus.WithError(err).Warn("Linha do CSV não pôde ser convertida")
		}
		records = append(records, raw)
	}

	return records, nil
}
