package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-performance-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
)

// GetPerformanceReport retorna o último relatório de performance gerado
func GetPerformanceReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.GetLatestReport()
		if err != nil {
			if errors.Is(err, reporting.ErrNoReportAvailable) {
				apiErrors.WriteError(w, apiErrors.ErrReportNotFound, "Nenhum relatório de performance disponível", nil)
				return
			}

			logrus.WithError(err).Error("Erro ao buscar relatório de performance")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar relatório de performance", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logrus.WithError(err).Error("Erro ao enviar relatório de performance")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// RefreshPerformanceReport recalcula o relatório de performance imediatamente
func RefreshPerformanceReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.GenerateReport()
		if err != nil {
			logrus.WithError(err).Error("Erro ao gerar relatório de performance")
			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Erro ao gerar relatório de performance", nil)
			return
		}

		logrus.WithFields(logrus.Fields{
			"report_id": report.ID,
			"sellers":   len(report.Results),
		}).Info("Relatório de performance gerado sob demanda")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logrus.WithError(err).Error("Erro ao enviar relatório de performance")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
