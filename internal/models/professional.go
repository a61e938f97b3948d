package models

type Professional struct {
	ID     uint    `json:"id"`
	Name   string  `json:"name"`
	Avatar string  `json:"avatar"` // iniciais, congeladas na criação
	Rating float64 `json:"rating"`

	// Texto livre de exibição ("09:00 - 18:00"). A disponibilidade
	// não consulta este campo.
	WorkHours string `json:"work_hours"`
}
