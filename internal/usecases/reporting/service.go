package reporting

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-performance-api/infrastructure/repository"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

// Reporter define a interface de geração e consulta do relatório de performance
type Reporter interface {
	// GenerateReport carrega vendedores, produtos e registros de compra,
	// executa a análise e persiste o resultado como um novo relatório
	GenerateReport() (*domain.PerformanceReport, error)

	// GetLatestReport retorna o relatório mais recente persistido
	GetLatestReport() (*domain.PerformanceReport, error)
}

type Service struct {
	sellerRepo   repository.SellerRepository
	productRepo  repository.ProductRepository
	purchaseRepo repository.PurchaseRepository
	reportRepo   repository.PerformanceReportRepository
	analyzer     analyzing.Analyzer
	opts         *analyzing.Options
}

func NewService(
	sellerRepo repository.SellerRepository,
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
	reportRepo repository.PerformanceReportRepository,
	analyzer analyzing.Analyzer,
) *Service {
	return &Service{
		sellerRepo:   sellerRepo,
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
		reportRepo:   reportRepo,
		analyzer:     analyzer,
		opts:         analyzing.DefaultOptions(),
	}
}

// WithOptions substitui as estratégias padrão de receita e bônus
func (s *Service) WithOptions(opts *analyzing.Options) *Service {
	s.opts = opts
	return s
}

func (s *Service) GenerateReport() (*domain.PerformanceReport, error) {
	data, err := s.loadSalesData()
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar dados de vendas para o relatório")
		return nil, err
	}

	results, err := s.analyzer.AnalyzeSalesData(data, s.opts)
	if err != nil {
		logrus.WithError(err).Error("Erro ao analisar dados de vendas")
		return nil, err
	}

	reportID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	report := &domain.PerformanceReport{
		ID:          reportID,
		Results:     results,
		GeneratedAt: time.Now(),
	}

	if err := s.reportRepo.SaveReport(report); err != nil {
		logrus.WithError(err).Error("Erro ao salvar relatório de performance")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"report_id": report.ID,
		"sellers":   len(results),
	}).Info("Relatório de performance gerado")

	logrus.Debug("Resultados do relatório: ", utils.PrettyJson(results))

	return report, nil
}

func (s *Service) GetLatestReport() (*domain.PerformanceReport, error) {
	report, err := s.reportRepo.GetLatestReport()
	if err != nil {
		return nil, err
	}

	if report == nil {
		return nil, ErrNoReportAvailable
	}

	return report, nil
}

// loadSalesData busca as três coleções de entrada em paralelo
func (s *Service) loadSalesData() (*domain.SalesData, error) {
	var (
		sellers     []*domain.Seller
		products    []*domain.Product
		records     []*domain.PurchaseRecord
		sellersErr  error
		productsErr error
		recordsErr  error
	)

	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		sellers, sellersErr = s.sellerRepo.ListSellers()
	}()

	go func() {
		defer wg.Done()
		products, productsErr = s.productRepo.ListProducts()
	}()

	go func() {
		defer wg.Done()
		records, recordsErr = s.purchaseRepo.ListPurchaseRecords()
	}()

	wg.Wait()

	for _, err := range []error{sellersErr, productsErr, recordsErr} {
		if err != nil {
			return nil, err
		}
	}

	return &domain.SalesData{
		Sellers:         sellers,
		Products:        products,
		PurchaseRecords: records,
	}, nil
}
