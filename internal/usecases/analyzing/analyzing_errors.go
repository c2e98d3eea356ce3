package analyzing

import (
	"errors"
	"fmt"
)

// Erros de validação da análise de vendas
var (
	// Erros de entrada
	ErrMissingData       = errors.New("missing sales data")
	ErrMissingCollection = errors.New("required collection is missing or empty")

	// Erros de opções
	ErrInvalidOptions = errors.New("revenue and bonus calculators are required")

	// Erros de consistência referencial
	ErrUnknownProduct = errors.New("purchase item references unknown product")
)

// NewMissingCollectionError cria um erro identificando qual coleção obrigatória falhou
func NewMissingCollectionError(collection string) error {
	return fmt.Errorf("%w: %s", ErrMissingCollection, collection)
}

// NewUnknownProductError cria um erro identificando o SKU não encontrado no catálogo
func NewUnknownProductError(sku string) error {
	return fmt.Errorf("%w: %s", ErrUnknownProduct, sku)
}
