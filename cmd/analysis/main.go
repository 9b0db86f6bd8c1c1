package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights-api/infrastructure/source"
	"github.com/vfg2006/sales-insights-api/internal/config"
	"github.com/vfg2006/sales-insights-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-insights-api/internal/usecases/cleaning"
	"github.com/vfg2006/sales-insights-api/internal/usecases/enriching"
	"github.com/vfg2006/sales-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-insights-api/pkg/log"
	"github.com/vfg2006/sales-insights-api/pkg/utils"
)

// Executa o pipeline uma vez sobre um arquivo local e imprime o snapshot em JSON
func main() {
	input := flag.String("input", "data/raw/sales_data.csv", "arquivo CSV ou XLSX de vendas")
	sheet := flag.String("sheet", "", "planilha do XLSX (padrão: primeira)")
	out := flag.String("out", "", "arquivo de saída do snapshot (padrão: stdout)")
	level := flag.String("log-level", "info", "nível de log (debug, info, warn, error)")
	flag.Parse()

	log.Setup(*level)

	pipelineCfg := config.DefaultPipeline()
	if cfg, err := config.NewConfig(); err != nil {
		logrus.WithError(err).Warn("Configuração inválida, usando padrões do pipeline")
	} else {
		pipelineCfg = cfg.Pipeline
	}

	mapper := source.NewMapper(pipelineCfg.Columns)

	var src source.RecordSource
	switch strings.ToLower(filepath.Ext(*input)) {
	case ".csv":
		src = source.NewCSVSource(*input, mapper)
	case ".xlsx":
		src = source.NewXLSXSource(*input, *sheet, mapper)
	default:
		logrus.Fatalf("Extensão não suportada: %s (use .csv ou .xlsx)", *input)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service := insighting.NewService(
		cleaning.NewService(pipelineCfg),
		enriching.NewService(),
		aggregating.NewService(pipelineCfg),
		nil,
	)

	result, err := service.Run(ctx, src)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao executar pipeline")
	}

	for _, warning := range result.Warnings {
		logrus.Warn(warning)
	}

	output := utils.PrettyJson(result.Snapshot)
	if *out == "" {
		fmt.Println(output)
		return
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar diretório de saída")
	}
	if err := os.WriteFile(*out, []byte(output), 0o644); err != nil {
		logrus.WithError(err).Fatal("Erro ao gravar snapshot")
	}

	logrus.WithFields(logrus.Fields{
		"run_id": result.Snapshot.RunID,
		"path":   *out,
	}).Info("Snapshot gravado")
}
