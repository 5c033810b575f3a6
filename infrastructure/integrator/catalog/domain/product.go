package domain

import "errors"

// ErrProductNotFound indica que o catálogo não conhece o produto consultado
var ErrProductNotFound = errors.New("produto não encontrado no catálogo")

// Product representa a resposta do catálogo externo para um produto
type Product struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
}
