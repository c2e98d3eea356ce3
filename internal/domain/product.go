package domain

// Product representa um item do catálogo, identificado pelo SKU
type Product struct {
	SKU           string  `json:"sku"`
	PurchasePrice float64 `json:"purchase_price"`
}
