package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vfg2006/retail-backoffice-api/infrastructure/repository"
	"github.com/vfg2006/retail-backoffice-api/internal/usecases/dashboarding"
	"github.com/vfg2006/retail-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/retail-backoffice-api/pkg/log"
	"github.com/vfg2006/retail-backoffice-api/pkg/utils"
)

// GetDashboardSummary retorna o resumo da última semana de vendas
func GetDashboardSummary(service dashboarding.Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		summary, err := service.Summarize()
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao calcular resumo")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular resumo do dashboard", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(summary)
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetDashboardSnapshot retorna o resumo persistido pelo agendador diário.
// Sem o parâmetro date, devolve o snapshot do dia corrente.
func GetDashboardSnapshot(snapshotRepo repository.DashboardSnapshotRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		date, err := utils.ParseDate(r.URL.Query().Get("date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"date":  r.URL.Query().Get("date"),
				"error": err.Error(),
			}).Warn("dashboard: parâmetro date inválido")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		if date.IsZero() {
			*date = utils.TruncateToDay(time.Now())
		}

		snapshot, err := snapshotRepo.GetByDate(*date)
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao consultar snapshot")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar snapshot do dashboard", nil)
			return
		}

		if snapshot == nil {
			logger.WithField("date", date.Format(time.DateOnly)).Info("dashboard: nenhum snapshot para a data")
			http.Error(w, "Nenhum snapshot para a data informada", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(snapshot)
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
