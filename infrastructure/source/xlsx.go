package source

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// XLSXSource lê registros de uma planilha. Usa a primeira aba quando nenhuma é configurada.
type XLSXSource struct {
	name   string
	sheet  string
	open   func() (*excelize.File, error)
	mapper *Mapper
}

func NewXLSXSource(path, sheet string, mapper *Mapper) *XLSXSource {
	return &XLSXSource{
		name:   "xlsx:" + filepath.Base(path),
		sheet:  sheet,
		open:   func() (*excelize.File, error) { return excelize.OpenFile(path) },
		mapper: mapper,
	}
}

func NewXLSXReaderSource(name string, r io.Reader, sheet string, mapper *Mapper) *XLSXSource {
	return &XLSXSource{
		name:   name,
		sheet:  sheet,
		open:   func() (*excelize.File, error) { return excelize.OpenReader(r) },
		mapper: mapper,
	}
}

func (s *XLSXSource) Name() string {
	return s.name
}

func (s *XLSXSource) Records(ctx context.Context) ([]domain.RawRecord, error) {
	f, err := s.open()
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir planilha: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar planilha")
		}
	}()

	sheet := s.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return []domain.RawRecord{}, nil
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler aba %q: %w", sheet, err)
	}

	if len(rows) == 0 {
		return []domain.RawRecord{}, nil
	}

	header := rows[0]
	records := make([]domain.RawRecord, 0, len(rows)-1)
	for _, values := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// GetRows omite linhas totalmente vazias no fim, mas não no meio
		if len(values) == 0 {
			continue
		}

		raw, err := s.mapper.MapHeader(header, values)
		if err != nil {
			logrus.WithError(err).Warn("Linha da planilha não pôde ser convertida")
		}
		records = append(records, raw)
	}

	return records, nil
}
