// Package scheduler contém os serviços de agendamento para geração de relatórios
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/usecases/reporting"
)

type ReportSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// PerformanceReportSyncService regenera periodicamente o relatório de performance
type PerformanceReportSyncService struct {
	scheduler           *gocron.Scheduler
	reportService       reporting.Reporter
	config              ReportSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewPerformanceReportSyncService(
	reportService reporting.Reporter,
	cfg *config.Config,
) *PerformanceReportSyncService {
	syncConfig := ReportSyncConfig{
		CronSchedule: cfg.ReportSync.CronSchedule, // Default: 6h da manhã todos os dias
		SyncEnabled:  cfg.ReportSync.SyncEnabled,  // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador do relatório de performance carregada")

	return &PerformanceReportSyncService{
		scheduler:     scheduler,
		reportService: reportService,
		config:        syncConfig,
	}
}

func (s *PerformanceReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de geração do relatório de performance desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de geração do relatório de performance")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshReport(); err != nil {
			logrus.WithError(err).Error("Erro na geração agendada do relatório de performance")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar geração do relatório de performance: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do relatório de performance")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshReport executa uma geração do relatório, garantindo exclusão mútua
func (s *PerformanceReportSyncService) RefreshReport() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Geração do relatório de performance já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando geração do relatório de performance")

	report, err := s.reportService.GenerateReport()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar relatório de performance")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"report_id": report.ID,
		"sellers":   len(report.Results),
	}).Info("Geração do relatório de performance concluída")

	return nil
}

// TriggerManualSync inicia manualmente uma geração do relatório
func (s *PerformanceReportSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração do relatório já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração manual do relatório de performance")
	go s.RefreshReport()
}

// GetStatus retorna o status atual do agendador
func (s *PerformanceReportSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
