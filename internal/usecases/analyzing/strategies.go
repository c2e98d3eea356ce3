package analyzing

import (
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

// Taxas de bônus por posição no ranking
const (
	firstPlaceBonusRate = 0.15
	topThreeBonusRate   = 0.10
	defaultBonusRate    = 0.05
)

// SimpleRevenue é a estratégia padrão de receita: preço de venda vezes quantidade,
// aplicando o desconto percentual do item
func SimpleRevenue(item domain.LineItem) float64 {
	return item.SalePrice * float64(item.Quantity) * (1 - item.Discount/100)
}

// BonusByProfit é a política padrão de bônus por posição no ranking de lucro.
// O último colocado não recebe bônus; essa regra é verificada primeiro, então com um
// único vendedor ele é ao mesmo tempo primeiro e último e o bônus é zero.
func BonusByProfit(rank, total int, stat *SellerStat) float64 {
	if rank == total-1 {
		return 0
	}

	rate := defaultBonusRate
	switch {
	case rank == 0:
		rate = firstPlaceBonusRate
	case rank <= 2:
		rate = topThreeBonusRate
	}

	return utils.RoundWithTwoDecimalPlace(stat.Profit * rate)
}

// DefaultOptions retorna as estratégias padrão de receita e bônus
func DefaultOptions() *Options {
	return &Options{
		CalculateRevenue: SimpleRevenue,
		CalculateBonus:   BonusByProfit,
	}
}
