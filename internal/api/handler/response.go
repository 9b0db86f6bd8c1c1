package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-insights-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = validator.New()
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeUseCaseError converte os erros dos casos de uso nos códigos da API
func writeUseCaseError(w http.ResponseWriter, err error, fallback string) {
	var pipelineErr *insighting.PipelineError
	if errors.As(err, &pipelineErr) {
		var details any
		if pipelineErr.RunID != "" {
			details = map[string]string{"run_id": pipelineErr.RunID}
		}
		apiErrors.WriteError(w, pipelineErr.Code, pipelineErr.Error(), details)
		return
	}

	var rankingErr *ranking.RankingError
	if errors.As(err, &rankingErr) {
		apiErrors.WriteError(w, rankingErr.Code, rankingErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, fallback, err.Error(), nil)
}

// NotFound responde rotas inexistentes no formato padrão de erro
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", map[string]string{
			"path": r.URL.Path,
		})
	})
}
