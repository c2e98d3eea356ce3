package analyzing

import (
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

// RevenueCalculator calcula a receita bruta de um item vendido
type RevenueCalculator func(item domain.LineItem) float64

// BonusCalculator calcula o bônus de um vendedor a partir da posição no ranking.
// O rank é 0-based após a ordenação por lucro decrescente; total é o número de vendedores.
type BonusCalculator func(rank, total int, stat *SellerStat) float64

// Options agrupa as estratégias de cálculo injetadas na análise.
// Ambas são obrigatórias.
type Options struct {
	CalculateRevenue RevenueCalculator
	CalculateBonus   BonusCalculator
}

// SellerStat é o acumulador mutável de estatísticas de um vendedor durante a análise.
// Pertence exclusivamente a uma execução da análise até a projeção final.
type SellerStat struct {
	ID           string
	Name         string
	Revenue      float64
	Profit       float64
	SalesCount   int
	ProductsSold map[string]int
}

// Analyzer define a interface da análise de performance de vendas
type Analyzer interface {
	// AnalyzeSalesData agrega as estatísticas de vendas por vendedor e retorna
	// a coleção final ordenada por lucro decrescente
	AnalyzeSalesData(data *domain.SalesData, opts *Options) ([]*domain.SellerPerformance, error)
}
