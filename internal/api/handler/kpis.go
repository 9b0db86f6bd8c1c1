package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
)

// LatestRunID é o alias da execução mais recente em /v1/kpis/:runId
const LatestRunID = "latest"

// GetKPIs retorna o snapshot de uma execução. O httprouter não aceita
// /v1/kpis/latest e /v1/kpis/:runId juntos, então "latest" é tratado aqui.
func GetKPIs(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		runID := httprouter.ParamsFromContext(r.Context()).ByName("runId")
		if runID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da execução não fornecido", nil)
			return
		}

		var (
			snapshot *domain.KPISnapshot
			err      error
		)
		if runID == LatestRunID {
			snapshot, err = service.GetLatestSnapshot(r.Context())
		} else {
			snapshot, err = service.GetSnapshot(r.Context(), runID)
		}
		if err != nil {
			writeUseCaseError(w, err, apiErrors.ErrDatabaseOperation)
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	}
}
