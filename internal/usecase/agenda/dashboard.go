package agenda

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
)

type Dashboard struct {
	repo domain.Repository
}

func NewDashboard(repo domain.Repository) *Dashboard {
	return &Dashboard{repo: repo}
}

// Execute monta a visão geral do painel: contagens dos três rosters e o
// ranking de atendimentos por profissional, na ordem da equipe.
func (uc *Dashboard) Execute(ctx context.Context) dto.DashboardDTO {
	appointments := uc.repo.Appointments()
	services := uc.repo.Services()
	professionals := uc.repo.Professionals()

	counts := make(map[uint]int, len(professionals))
	for _, ap := range appointments {
		counts[ap.ProfessionalID]++
	}

	ranking := make([]dto.RankingEntry, 0, len(professionals))
	for _, pro := range professionals {
		ranking = append(ranking, dto.RankingEntry{
			ProfessionalID: pro.ID,
			Name:           pro.Name,
			Avatar:         pro.Avatar,
			Appointments:   counts[pro.ID],
		})
	}

	return dto.DashboardDTO{
		TotalAppointments: len(appointments),
		ActiveServices:    len(services),
		TeamSize:          len(professionals),
		Ranking:           ranking,
	}
}
