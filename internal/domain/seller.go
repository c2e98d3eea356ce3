package domain

// Seller representa um vendedor da organização de vendas
type Seller struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FullName retorna o nome de exibição do vendedor (nome e sobrenome separados por espaço)
func (s *Seller) FullName() string {
	return s.FirstName + " " + s.LastName
}
