package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func TestPerformanceReportSyncService_RefreshReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)

	service := &PerformanceReportSyncService{
		reportService: mockReporter,
	}

	mockReporter.EXPECT().
		GenerateReport().
		Return(&domain.PerformanceReport{
			ID:          "abc123",
			Results:     []*domain.SellerPerformance{{SellerID: "S001"}},
			GeneratedAt: time.Now(),
		}, nil)

	err := service.RefreshReport()

	assert.NoError(t, err)
	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
	assert.False(t, service.syncRunning)
}

func TestPerformanceReportSyncService_RefreshReport_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)

	service := &PerformanceReportSyncService{
		reportService: mockReporter,
	}

	genErr := errors.New("erro ao carregar dados")
	mockReporter.EXPECT().GenerateReport().Return(nil, genErr)

	err := service.RefreshReport()

	assert.ErrorIs(t, err, genErr)
	assert.False(t, service.syncRunning)
}

func TestPerformanceReportSyncService_RefreshReport_AlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)

	service := &PerformanceReportSyncService{
		reportService: mockReporter,
		syncRunning:   true,
	}

	// Nenhuma chamada a GenerateReport é esperada
	err := service.RefreshReport()

	assert.NoError(t, err)
}

func TestPerformanceReportSyncService_GetStatus(t *testing.T) {
	service := &PerformanceReportSyncService{
		config: ReportSyncConfig{
			CronSchedule: "0 6 * * *",
			SyncEnabled:  true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 6 * * *", status["sync_cron"])
}
