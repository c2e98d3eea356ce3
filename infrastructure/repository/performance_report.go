package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

const performanceReportsTable = "performance_reports"

type PerformanceReportRepository interface {
	SaveReport(report *domain.PerformanceReport) error
	GetLatestReport() (*domain.PerformanceReport, error)
}

type performanceReportRepository struct {
	conn *postgres.Connection
}

func NewPerformanceReportRepository(conn *postgres.Connection) PerformanceReportRepository {
	return &performanceReportRepository{
		conn: conn,
	}
}

func (r *performanceReportRepository) SaveReport(report *domain.PerformanceReport) error {
	resultsJSON, err := json.Marshal(report.Results)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar resultados do relatório")
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(performanceReportsTable).
		Columns("id", "results", "generated_at").
		Values(report.ID, resultsJSON, report.GeneratedAt).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				results = EXCLUDED.results,
				generated_at = EXCLUDED.generated_at,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query de relatório")
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return errors.Wrap(err, "erro ao salvar relatório de performance")
	}

	return nil
}

func (r *performanceReportRepository) GetLatestReport() (*domain.PerformanceReport, error) {
	query, args, err := squirrel.
		Select("id", "results", "generated_at", "created_at", "updated_at").
		From(performanceReportsTable).
		OrderBy("generated_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de relatório")
	}

	var report domain.PerformanceReport
	var resultsJSON []byte

	err = r.conn.QueryRow(query, args...).Scan(
		&report.ID,
		&resultsJSON,
		&report.GeneratedAt,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao buscar o último relatório de performance")
	}

	if err := json.Unmarshal(resultsJSON, &report.Results); err != nil {
		return nil, errors.Wrap(err, "erro ao deserializar resultados do relatório")
	}

	return &report, nil
}
