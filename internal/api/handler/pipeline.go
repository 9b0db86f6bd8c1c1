package handler

import (
	"bytes"
	"io"
	"mime"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights-api/infrastructure/source"
	"github.com/vfg2006/sales-insights-api/internal/scheduler"
	"github.com/vfg2006/sales-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
)

// Content-Types aceitos no upload
const (
	ContentTypeCSV  = "text/csv"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeJSON = "application/json"
)

// PipelineUpload agrupa as dependências do endpoint de execução
type PipelineUpload struct {
	Mapper         *source.Mapper
	DefaultSource  scheduler.SourceFactory // Usada quando o corpo está vazio
	MaxUploadBytes int64
}

// RunPipeline executa o pipeline sobre o arquivo enviado ou, sem corpo, sobre a origem configurada
func RunPipeline(service insighting.Insighter, upload PipelineUpload) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reader := io.Reader(r.Body)
		if upload.MaxUploadBytes > 0 {
			reader = http.MaxBytesReader(w, r.Body, upload.MaxUploadBytes)
		}

		body, err := io.ReadAll(reader)
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Arquivo acima do limite permitido", map[string]int64{
					"limit_bytes": maxErr.Limit,
				})
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler corpo da requisição", nil)
			return
		}

		src, code, msg := uploadSource(r, body, upload)
		if code != "" {
			apiErrors.WriteError(w, code, msg, nil)
			return
		}

		result, err := service.Run(r.Context(), src)
		if err != nil {
			logrus.WithError(err).WithField("source", src.Name()).Error("Erro ao executar pipeline")
			writeUseCaseError(w, err, apiErrors.ErrInternalServer)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func uploadSource(r *http.Request, body []byte, upload PipelineUpload) (source.RecordSource, string, string) {
	if len(body) == 0 {
		if upload.DefaultSource == nil {
			return nil, apiErrors.ErrMissingRequiredData, "Corpo da requisição vazio"
		}
		src, err := upload.DefaultSource()
		if err != nil {
			return nil, apiErrors.ErrSourceUnavailable, err.Error()
		}
		return src, "", ""
	}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, apiErrors.ErrUnsupportedMedia, "Content-Type ausente ou inválido"
	}

	switch mediaType {
	case ContentTypeCSV:
		return source.NewCSVReaderSource("upload:csv", bytes.NewReader(body), upload.Mapper), "", ""

	case ContentTypeXLSX:
		sheet := r.URL.Query().Get("sheet")
		return source.NewXLSXReaderSource("upload:xlsx", bytes.NewReader(body), sheet, upload.Mapper), "", ""

	case ContentTypeJSON:
		var rows []map[string]any
		if err := json.Unmarshal(body, &rows); err != nil {
			return nil, apiErrors.ErrInvalidFormat, "Corpo deve ser uma lista de objetos JSON"
		}
		return source.NewRowsSource("upload:json", rows, upload.Mapper), "", ""

	default:
		return nil, apiErrors.ErrUnsupportedMedia, "Content-Type não suportado: " + mediaType
	}
}
