package catalog

import (
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ServiceDraft acumula os campos do formulário administrativo e é validado
// como um todo na submissão, devolvendo o motivo específico do campo
// faltante em vez de um alerta genérico.
type ServiceDraft struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	DurationMin *int     `json:"duration_min"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
}

const (
	defaultDurationMin = 30
)

// Validate devolve o serviço pronto para entrar no catálogo ou o código do
// problema. Duração zero é válida: produtos físicos não ocupam agenda.
func (d ServiceDraft) Validate() (models.Service, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return models.Service{}, httperr.ErrBusiness("missing_name")
	}

	if d.Price == nil {
		return models.Service{}, httperr.ErrBusiness("missing_price")
	}
	if *d.Price < 0 {
		return models.Service{}, httperr.ErrBusiness("invalid_price")
	}

	duration := defaultDurationMin
	if d.DurationMin != nil {
		duration = *d.DurationMin
	}
	if duration < 0 {
		return models.Service{}, httperr.ErrBusiness("invalid_duration")
	}

	category := strings.ToLower(strings.TrimSpace(d.Category))
	if category == "" {
		category = models.CategoryCabelo
	}
	if !models.IsValidCategory(category) {
		return models.Service{}, httperr.ErrBusiness("invalid_category")
	}

	return models.Service{
		Name:        name,
		Price:       *d.Price,
		DurationMin: duration,
		Description: strings.TrimSpace(d.Description),
		Category:    category,
	}, nil
}
