package domain

import "time"

// TopProduct é um SKU vendido por um vendedor com a quantidade acumulada
type TopProduct struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// SellerPerformance é o resultado final da análise para um vendedor.
// Revenue, Profit e Bonus são arredondados para 2 casas decimais.
type SellerPerformance struct {
	SellerID    string       `json:"seller_id"`
	Name        string       `json:"name"`
	Revenue     float64      `json:"revenue"`
	Profit      float64      `json:"profit"`
	SalesCount  int          `json:"sales_count"`
	TopProducts []TopProduct `json:"top_products"`
	Bonus       float64      `json:"bonus"`
}

// PerformanceReport é um snapshot persistido do ranking de performance,
// ordenado por lucro decrescente
type PerformanceReport struct {
	ID          string               `json:"id"`
	Results     []*SellerPerformance `json:"results"`
	GeneratedAt time.Time            `json:"generated_at"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}
