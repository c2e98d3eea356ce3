package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

func TestSimpleRevenue(t *testing.T) {
	tests := []struct {
		name     string
		item     domain.LineItem
		expected float64
	}{
		{
			name:     "Sem desconto",
			item:     domain.LineItem{SKU: "A", Quantity: 2, SalePrice: 10, Discount: 0},
			expected: 20,
		},
		{
			name:     "Com desconto de 10%",
			item:     domain.LineItem{SKU: "A", Quantity: 2, SalePrice: 10, Discount: 10},
			expected: 18,
		},
		{
			name:     "Desconto total",
			item:     domain.LineItem{SKU: "A", Quantity: 5, SalePrice: 10, Discount: 100},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SimpleRevenue(tt.item), 1e-9)
		})
	}
}

func TestBonusByProfit(t *testing.T) {
	stat := &SellerStat{ID: "S001", Profit: 100}

	tests := []struct {
		name     string
		rank     int
		total    int
		expected float64
	}{
		{
			name:     "Primeiro lugar recebe 15%",
			rank:     0,
			total:    10,
			expected: 15,
		},
		{
			name:     "Segundo lugar recebe 10%",
			rank:     1,
			total:    10,
			expected: 10,
		},
		{
			name:     "Terceiro lugar recebe 10%",
			rank:     2,
			total:    10,
			expected: 10,
		},
		{
			name:     "Posições intermediárias recebem 5%",
			rank:     5,
			total:    10,
			expected: 5,
		},
		{
			name:     "Último lugar não recebe bônus",
			rank:     9,
			total:    10,
			expected: 0,
		},
		{
			name:     "Vendedor único é primeiro e último - prevalece a regra de último lugar",
			rank:     0,
			total:    1,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BonusByProfit(tt.rank, tt.total, stat))
		})
	}
}

func TestBonusByProfit_Rounding(t *testing.T) {
	stat := &SellerStat{ID: "S001", Profit: 12.5799}

	// 15% de 12.5799 = 1.886985, arredondado para 1.89
	assert.Equal(t, 1.89, BonusByProfit(0, 3, stat))
}
