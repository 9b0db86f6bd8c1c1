package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
)

const CronJobTypePipeline = "pipeline"

// ManualSyncer é o contrato do scheduler usado pelas rotas de cron
type ManualSyncer interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	PipelineSyncService ManualSyncer
}

// RunCronJob dispara manualmente uma cron job
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypePipeline:
			if services.PipelineSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização do pipeline não disponível", nil)
				return
			}
			if !services.PipelineSyncService.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrPipelineBusy, "Já existe uma execução do pipeline em andamento", nil)
				return
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: pipeline", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.PipelineSyncService != nil {
			status[CronJobTypePipeline] = services.PipelineSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
