package domain

// UnknownValue é o valor substituído quando o catálogo não retorna o produto
const UnknownValue = "Unknown"

// ProductInfo representa os metadados de um produto obtidos do catálogo externo
type ProductInfo struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
}

// UnknownProduct cria o placeholder usado quando o enriquecimento falha
func UnknownProduct(id int) *ProductInfo {
	return &ProductInfo{
		ID:       id,
		Title:    UnknownValue,
		Category: UnknownValue,
		Brand:    UnknownValue,
	}
}
