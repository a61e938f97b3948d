package models

// Categorias fechadas do catálogo (mesmo conjunto do widget).
const (
	CategoryCabelo  = "cabelo"
	CategoryBarba   = "barba"
	CategoryPacote  = "pacote"
	CategoryProduto = "produto"
)

// Categories lista o conjunto válido, na ordem de exibição.
var Categories = []string{
	CategoryCabelo,
	CategoryBarba,
	CategoryPacote,
	CategoryProduto,
}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

type Service struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}
