package domain

// LineItem é um item de uma transação de venda
type LineItem struct {
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
	SalePrice float64 `json:"sale_price"`
	Discount  float64 `json:"discount"` // Percentual (0-100)
}

// PurchaseRecord representa uma transação feita por um vendedor com um ou mais itens
type PurchaseRecord struct {
	SellerID    string     `json:"seller_id"`
	TotalAmount float64    `json:"total_amount"`
	Items       []LineItem `json:"items"`
}

// SalesData agrupa as três coleções de entrada da análise de vendas
type SalesData struct {
	Sellers         []*Seller         `json:"sellers"`
	Products        []*Product        `json:"products"`
	PurchaseRecords []*PurchaseRecord `json:"purchase_records"`
}
