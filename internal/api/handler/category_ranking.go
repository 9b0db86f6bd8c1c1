package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
)

// GetCategoryRanking retorna o ranking de categorias do período (yyyy-mm) ou do último período gravado
func GetCategoryRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := r.URL.Query().Get("period")

		result, err := service.GetCategoryRanking(r.Context(), period)
		if err != nil {
			logrus.WithError(err).WithField("period", period).Error("Erro ao buscar ranking de categorias")
			writeUseCaseError(w, err, apiErrors.ErrDatabaseOperation)
			return
		}

		if result == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhum ranking encontrado", nil)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
