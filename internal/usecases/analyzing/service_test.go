package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

func validSalesData() *domain.SalesData {
	return &domain.SalesData{
		Sellers: []*domain.Seller{
			{ID: "S001", FirstName: "Ana", LastName: "Souza"},
			{ID: "S002", FirstName: "Bruno", LastName: "Lima"},
			{ID: "S003", FirstName: "Carla", LastName: "Mendes"},
		},
		Products: []*domain.Product{
			{SKU: "A", PurchasePrice: 3},
			{SKU: "B", PurchasePrice: 5},
			{SKU: "C", PurchasePrice: 1},
		},
		PurchaseRecords: []*domain.PurchaseRecord{
			{
				SellerID:    "S001",
				TotalAmount: 20,
				Items: []domain.LineItem{
					{SKU: "A", Quantity: 2, SalePrice: 10, Discount: 0},
				},
			},
			{
				SellerID:    "S002",
				TotalAmount: 50,
				Items: []domain.LineItem{
					{SKU: "B", Quantity: 5, SalePrice: 10, Discount: 0},
				},
			},
			{
				SellerID:    "S002",
				TotalAmount: 18,
				Items: []domain.LineItem{
					{SKU: "C", Quantity: 9, SalePrice: 2, Discount: 0},
				},
			},
		},
	}
}

func TestService_AnalyzeSalesData_Validation(t *testing.T) {
	service := NewService()

	tests := []struct {
		name        string
		data        *domain.SalesData
		opts        *Options
		expectedErr error
	}{
		{
			name:        "Dados ausentes - deve falhar com ErrMissingData",
			data:        nil,
			opts:        DefaultOptions(),
			expectedErr: ErrMissingData,
		},
		{
			name: "Coleção de vendedores vazia - deve falhar nomeando sellers",
			data: &domain.SalesData{
				Sellers:         []*domain.Seller{},
				Products:        validSalesData().Products,
				PurchaseRecords: validSalesData().PurchaseRecords,
			},
			opts:        DefaultOptions(),
			expectedErr: ErrMissingCollection,
		},
		{
			name: "Coleção de produtos ausente - deve falhar nomeando products",
			data: &domain.SalesData{
				Sellers:         validSalesData().Sellers,
				PurchaseRecords: validSalesData().PurchaseRecords,
			},
			opts:        DefaultOptions(),
			expectedErr: ErrMissingCollection,
		},
		{
			name: "Coleção de registros de compra vazia - deve falhar nomeando purchase_records",
			data: &domain.SalesData{
				Sellers:         validSalesData().Sellers,
				Products:        validSalesData().Products,
				PurchaseRecords: []*domain.PurchaseRecord{},
			},
			opts:        DefaultOptions(),
			expectedErr: ErrMissingCollection,
		},
		{
			name:        "Opções ausentes - deve falhar com ErrInvalidOptions",
			data:        validSalesData(),
			opts:        nil,
			expectedErr: ErrInvalidOptions,
		},
		{
			name: "Opções sem estratégia de bônus - deve falhar com ErrInvalidOptions",
			data: validSalesData(),
			opts: &Options{
				CalculateRevenue: SimpleRevenue,
			},
			expectedErr: ErrInvalidOptions,
		},
		{
			name: "Opções sem estratégia de receita - deve falhar com ErrInvalidOptions",
			data: validSalesData(),
			opts: &Options{
				CalculateBonus: BonusByProfit,
			},
			expectedErr: ErrInvalidOptions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.AnalyzeSalesData(tt.data, tt.opts)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestService_AnalyzeSalesData_ValidationErrorNamesCollection(t *testing.T) {
	service := NewService()

	data := validSalesData()
	data.Sellers = nil

	_, err := service.AnalyzeSalesData(data, DefaultOptions())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sellers")
}

func TestService_AnalyzeSalesData_SingleSeller(t *testing.T) {
	service := NewService()

	// Um vendedor, um registro, um item: receita 2*10*(1-0)=20, custo 2*3=6, lucro 14.
	// Com um único vendedor a regra de último colocado prevalece e o bônus é zero.
	data := &domain.SalesData{
		Sellers: []*domain.Seller{
			{ID: "S001", FirstName: "Ana", LastName: "Souza"},
		},
		Products: []*domain.Product{
			{SKU: "A", PurchasePrice: 3},
		},
		PurchaseRecords: []*domain.PurchaseRecord{
			{
				SellerID:    "S001",
				TotalAmount: 20,
				Items: []domain.LineItem{
					{SKU: "A", Quantity: 2, SalePrice: 10, Discount: 0},
				},
			},
		},
	}

	result, err := service.AnalyzeSalesData(data, DefaultOptions())

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "S001", result[0].SellerID)
	assert.Equal(t, "Ana Souza", result[0].Name)
	assert.Equal(t, 20.0, result[0].Revenue)
	assert.Equal(t, 14.0, result[0].Profit)
	assert.Equal(t, 1, result[0].SalesCount)
	assert.Equal(t, []domain.TopProduct{{SKU: "A", Quantity: 2}}, result[0].TopProducts)
	assert.Equal(t, 0.0, result[0].Bonus)
}

func TestService_AnalyzeSalesData_RankingAndBonus(t *testing.T) {
	service := NewService()

	result, err := service.AnalyzeSalesData(validSalesData(), DefaultOptions())

	require.NoError(t, err)
	require.Len(t, result, 3)

	// S002: lucro (50-25) + (18-9) = 34; S001: 20-6 = 14; S003 sem vendas: 0
	assert.Equal(t, "S002", result[0].SellerID)
	assert.Equal(t, 34.0, result[0].Profit)
	assert.Equal(t, 68.0, result[0].Revenue)
	assert.Equal(t, 2, result[0].SalesCount)
	assert.Equal(t, 5.1, result[0].Bonus) // 15% de 34

	assert.Equal(t, "S001", result[1].SellerID)
	assert.Equal(t, 14.0, result[1].Profit)
	assert.Equal(t, 1.4, result[1].Bonus) // 10% de 14

	// Vendedor sem registros aparece com zeros e bônus da posição (último lugar)
	assert.Equal(t, "S003", result[2].SellerID)
	assert.Equal(t, 0.0, result[2].Revenue)
	assert.Equal(t, 0.0, result[2].Profit)
	assert.Equal(t, 0, result[2].SalesCount)
	assert.Empty(t, result[2].TopProducts)
	assert.Equal(t, 0.0, result[2].Bonus)

	// Ordenação por lucro decrescente
	for i := 0; i < len(result)-1; i++ {
		assert.GreaterOrEqual(t, result[i].Profit, result[i+1].Profit)
	}
}

func TestService_AnalyzeSalesData_UnknownSellerIsSkipped(t *testing.T) {
	service := NewService()

	data := validSalesData()
	data.PurchaseRecords = append(data.PurchaseRecords, &domain.PurchaseRecord{
		SellerID:    "S999",
		TotalAmount: 1000,
		Items: []domain.LineItem{
			{SKU: "A", Quantity: 1, SalePrice: 10, Discount: 0},
		},
	})

	result, err := service.AnalyzeSalesData(data, DefaultOptions())

	require.NoError(t, err)
	require.Len(t, result, 3)

	// A soma de sales_count considera apenas registros de vendedores conhecidos
	totalSales := 0
	for _, performance := range result {
		totalSales += performance.SalesCount
	}
	assert.Equal(t, 3, totalSales)
}

func TestService_AnalyzeSalesData_UnknownProductFails(t *testing.T) {
	service := NewService()

	data := validSalesData()
	data.PurchaseRecords[0].Items = append(data.PurchaseRecords[0].Items, domain.LineItem{
		SKU: "ZZZ", Quantity: 1, SalePrice: 10,
	})

	result, err := service.AnalyzeSalesData(data, DefaultOptions())

	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownProduct)
	assert.Contains(t, err.Error(), "ZZZ")
}

func TestService_AnalyzeSalesData_TopProducts(t *testing.T) {
	service := NewService()

	// 12 SKUs distintos com quantidades crescentes; o top deve ter apenas os 10 maiores
	products := make([]*domain.Product, 0, 12)
	items := make([]domain.LineItem, 0, 12)
	for i := 0; i < 12; i++ {
		sku := string(rune('A' + i))
		products = append(products, &domain.Product{SKU: sku, PurchasePrice: 1})
		items = append(items, domain.LineItem{SKU: sku, Quantity: i + 1, SalePrice: 2})
	}

	data := &domain.SalesData{
		Sellers: []*domain.Seller{
			{ID: "S001", FirstName: "Ana", LastName: "Souza"},
		},
		Products: products,
		PurchaseRecords: []*domain.PurchaseRecord{
			{SellerID: "S001", TotalAmount: 100, Items: items},
		},
	}

	result, err := service.AnalyzeSalesData(data, DefaultOptions())

	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Len(t, result[0].TopProducts, 10)

	// Quantidade decrescente, começando pelo SKU de maior quantidade ("L" com 12)
	assert.Equal(t, domain.TopProduct{SKU: "L", Quantity: 12}, result[0].TopProducts[0])
	for i := 0; i < len(result[0].TopProducts)-1; i++ {
		assert.GreaterOrEqual(t, result[0].TopProducts[i].Quantity, result[0].TopProducts[i+1].Quantity)
	}

	// Os dois SKUs com menores quantidades ("A" e "B") ficam de fora
	for _, topProduct := range result[0].TopProducts {
		assert.NotEqual(t, "A", topProduct.SKU)
		assert.NotEqual(t, "B", topProduct.SKU)
	}
}

func TestService_AnalyzeSalesData_DeterministicTieBreaks(t *testing.T) {
	service := NewService()

	// Dois vendedores com lucro idêntico e dois SKUs com quantidade idêntica:
	// os empates são resolvidos por ID de vendedor e por SKU
	data := &domain.SalesData{
		Sellers: []*domain.Seller{
			{ID: "S002", FirstName: "Bruno", LastName: "Lima"},
			{ID: "S001", FirstName: "Ana", LastName: "Souza"},
		},
		Products: []*domain.Product{
			{SKU: "B", PurchasePrice: 1},
			{SKU: "A", PurchasePrice: 1},
		},
		PurchaseRecords: []*domain.PurchaseRecord{
			{
				SellerID:    "S001",
				TotalAmount: 10,
				Items: []domain.LineItem{
					{SKU: "B", Quantity: 3, SalePrice: 2},
					{SKU: "A", Quantity: 3, SalePrice: 2},
				},
			},
			{
				SellerID:    "S002",
				TotalAmount: 10,
				Items: []domain.LineItem{
					{SKU: "A", Quantity: 3, SalePrice: 2},
					{SKU: "B", Quantity: 3, SalePrice: 2},
				},
			},
		},
	}

	result, err := service.AnalyzeSalesData(data, DefaultOptions())

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "S001", result[0].SellerID)
	assert.Equal(t, "S002", result[1].SellerID)
	assert.Equal(t, []domain.TopProduct{{SKU: "A", Quantity: 3}, {SKU: "B", Quantity: 3}}, result[0].TopProducts)
}

func TestService_AnalyzeSalesData_Idempotence(t *testing.T) {
	service := NewService()

	first, err := service.AnalyzeSalesData(validSalesData(), DefaultOptions())
	require.NoError(t, err)

	second, err := service.AnalyzeSalesData(validSalesData(), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestService_AnalyzeSalesData_Rounding(t *testing.T) {
	service := NewService()

	// Desconto de 33% gera dízimas: receita 3*9.99*0.67 = 20.0799, custo 3*2.5 = 7.5
	data := &domain.SalesData{
		Sellers: []*domain.Seller{
			{ID: "S001", FirstName: "Ana", LastName: "Souza"},
			{ID: "S002", FirstName: "Bruno", LastName: "Lima"},
		},
		Products: []*domain.Product{
			{SKU: "A", PurchasePrice: 2.5},
		},
		PurchaseRecords: []*domain.PurchaseRecord{
			{
				SellerID:    "S001",
				TotalAmount: 20.0799,
				Items: []domain.LineItem{
					{SKU: "A", Quantity: 3, SalePrice: 9.99, Discount: 33},
				},
			},
		},
	}

	result, err := service.AnalyzeSalesData(data, DefaultOptions())

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, 20.08, result[0].Revenue)
	assert.Equal(t, 12.58, result[0].Profit) // 20.0799 - 7.5 = 12.5799
	assert.Equal(t, 1.89, result[0].Bonus)   // 15% de 12.5799 = 1.886985
}

func TestService_AnalyzeSalesData_CustomStrategies(t *testing.T) {
	service := NewService()

	// Estratégias injetadas substituem completamente as políticas padrão
	opts := &Options{
		CalculateRevenue: func(item domain.LineItem) float64 {
			return item.SalePrice * float64(item.Quantity)
		},
		CalculateBonus: func(rank, total int, stat *SellerStat) float64 {
			return float64(total - rank)
		},
	}

	result, err := service.AnalyzeSalesData(validSalesData(), opts)

	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, 3.0, result[0].Bonus)
	assert.Equal(t, 2.0, result[1].Bonus)
	assert.Equal(t, 1.0, result[2].Bonus)
}
