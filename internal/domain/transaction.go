// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// Transaction representa uma linha válida do arquivo de vendas
type Transaction struct {
	TransactionID string    `json:"transaction_id"`
	Date          time.Time `json:"date"`
	ProductID     string    `json:"product_id"`
	ProductName   string    `json:"product_name"`
	Quantity      int       `json:"quantity"`
	UnitPrice     float64   `json:"unit_price"`
	CustomerID    string    `json:"customer_id"`
	Region        string    `json:"region"`
}

// Amount retorna o valor total da transação (quantidade x preço unitário)
func (t *Transaction) Amount() float64 {
	return float64(t.Quantity) * t.UnitPrice
}

// EnrichedTransaction representa uma transação enriquecida com os dados do catálogo
type EnrichedTransaction struct {
	Transaction

	APICategory string  `json:"api_category"`
	APIBrand    string  `json:"api_brand"`
	APIRating   float64 `json:"api_rating"`
	APIMatch    bool    `json:"api_match"`
}

// RowWarning registra uma linha descartada durante o parsing
type RowWarning struct {
	LineNumber int    `json:"line_number"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	RawLine    string `json:"raw_line"`
}
