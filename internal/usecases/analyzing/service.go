package analyzing

import (
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

// Quantidade máxima de produtos no top de cada vendedor
const topProductsLimit = 10

type Service struct{}

func NewService() Analyzer {
	return &Service{}
}

// AnalyzeSalesData executa o pipeline completo de análise: validação, indexação,
// acumulação em uma única passagem, ranking por lucro e projeção final.
// A função é pura: não acessa banco, rede ou arquivos, e não guarda estado entre chamadas.
func (s *Service) AnalyzeSalesData(data *domain.SalesData, opts *Options) ([]*domain.SellerPerformance, error) {
	if err := validate(data, opts); err != nil {
		return nil, err
	}

	// Acumuladores na ordem de entrada dos vendedores
	stats := make([]*SellerStat, 0, len(data.Sellers))
	for _, seller := range data.Sellers {
		stats = append(stats, &SellerStat{
			ID:           seller.ID,
			Name:         seller.FullName(),
			ProductsSold: make(map[string]int),
		})
	}

	// Índices para acesso O(1) durante a passagem de acumulação
	sellerIndex := make(map[string]*domain.Seller, len(data.Sellers))
	for _, seller := range data.Sellers {
		sellerIndex[seller.ID] = seller
	}

	productIndex := make(map[string]*domain.Product, len(data.Products))
	for _, product := range data.Products {
		productIndex[product.SKU] = product
	}

	statIndex := make(map[string]*SellerStat, len(stats))
	for _, stat := range stats {
		statIndex[stat.ID] = stat
	}

	for _, record := range data.PurchaseRecords {
		if _, exists := sellerIndex[record.SellerID]; !exists {
			// Registros de vendedores desconhecidos são tolerados e ignorados
			logrus.WithFields(logrus.Fields{
				"seller_id": record.SellerID,
			}).Debug("Registro de compra com vendedor desconhecido ignorado")
			continue
		}

		stat := statIndex[record.SellerID]

		stat.SalesCount++
		stat.Revenue += record.TotalAmount

		for _, item := range record.Items {
			product, exists := productIndex[item.SKU]
			if !exists {
				// Referência inconsistente ao catálogo aborta a análise inteira
				return nil, NewUnknownProductError(item.SKU)
			}

			cost := product.PurchasePrice * float64(item.Quantity)
			revenue := opts.CalculateRevenue(item)

			stat.Profit += revenue - cost
			stat.ProductsSold[item.SKU] += item.Quantity
		}
	}

	// Ranking por lucro decrescente; empates desempatados pelo ID do vendedor
	// para manter a saída determinística
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Profit != stats[j].Profit {
			return stats[i].Profit > stats[j].Profit
		}
		return stats[i].ID < stats[j].ID
	})

	total := len(stats)
	results := make([]*domain.SellerPerformance, 0, total)
	for rank, stat := range stats {
		results = append(results, &domain.SellerPerformance{
			SellerID:    stat.ID,
			Name:        stat.Name,
			Revenue:     utils.RoundWithTwoDecimalPlace(stat.Revenue),
			Profit:      utils.RoundWithTwoDecimalPlace(stat.Profit),
			SalesCount:  stat.SalesCount,
			TopProducts: topProducts(stat.ProductsSold),
			Bonus:       utils.RoundWithTwoDecimalPlace(opts.CalculateBonus(rank, total, stat)),
		})
	}

	return results, nil
}

// validate falha rápido, antes de qualquer acumulação, se a entrada ou as opções
// estiverem incompletas
func validate(data *domain.SalesData, opts *Options) error {
	if data == nil {
		return ErrMissingData
	}

	if len(data.Sellers) == 0 {
		return NewMissingCollectionError("sellers")
	}

	if len(data.Products) == 0 {
		return NewMissingCollectionError("products")
	}

	if len(data.PurchaseRecords) == 0 {
		return NewMissingCollectionError("purchase_records")
	}

	if opts == nil || opts.CalculateRevenue == nil || opts.CalculateBonus == nil {
		return ErrInvalidOptions
	}

	return nil
}

// topProducts projeta o mapa de quantidades vendidas nos até 10 SKUs mais vendidos,
// por quantidade decrescente; empates desempatados pelo SKU
func topProducts(productsSold map[string]int) []domain.TopProduct {
	products := make([]domain.TopProduct, 0, len(productsSold))
	for sku, quantity := range productsSold {
		products = append(products, domain.TopProduct{SKU: sku, Quantity: quantity})
	}

	sort.Slice(products, func(i, j int) bool {
		if products[i].Quantity != products[j].Quantity {
			return products[i].Quantity > products[j].Quantity
		}
		return products[i].SKU < products[j].SKU
	})

	if len(products) > topProductsLimit {
		products = products[:topProductsLimit]
	}

	return products
}
