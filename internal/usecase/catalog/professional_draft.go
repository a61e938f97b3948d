package catalog

import (
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ProfessionalDraft struct {
	Name      string   `json:"name"`
	Rating    *float64 `json:"rating"`
	WorkHours string   `json:"work_hours"`
}

const (
	defaultRating    = 5.0
	defaultWorkHours = "09:00 - 18:00"
)

// Validate monta o profissional com as iniciais derivadas do nome, uma vez,
// na criação. O avatar nunca é recalculado depois.
func (d ProfessionalDraft) Validate() (models.Professional, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return models.Professional{}, httperr.ErrBusiness("missing_name")
	}

	rating := defaultRating
	if d.Rating != nil {
		rating = *d.Rating
	}

	workHours := strings.TrimSpace(d.WorkHours)
	if workHours == "" {
		workHours = defaultWorkHours
	}

	return models.Professional{
		Name:      name,
		Avatar:    Initials(name),
		Rating:    rating,
		WorkHours: workHours,
	}, nil
}

// Initials extrai até duas iniciais maiúsculas do nome ("Pedro Luz" → "PL").
func Initials(name string) string {
	var initials []rune
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			initials = append(initials, r)
			break
		}
		if len(initials) == 2 {
			break
		}
	}
	return strings.ToUpper(string(initials))
}
