package agenda

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/format"
)

// FallbackLabel substitui referências penduradas na exibição: um serviço ou
// profissional apagado nunca derruba a agenda.
const FallbackLabel = "N/A"

type ListAgenda struct {
	repo domain.Repository
}

func NewListAgenda(repo domain.Repository) *ListAgenda {
	return &ListAgenda{repo: repo}
}

// Execute resolve os rótulos de exibição de todo o roster, na ordem de
// inserção (o roster é append-only).
func (uc *ListAgenda) Execute(ctx context.Context) []dto.AgendaEntryDTO {
	entries := make([]dto.AgendaEntryDTO, 0)

	for _, ap := range uc.repo.Appointments() {
		serviceName := FallbackLabel
		servicePrice := ""
		if svc, ok := uc.repo.ServiceByID(ap.ServiceID); ok {
			serviceName = svc.Name
			servicePrice = format.BRL(svc.Price)
		}

		professionalName := FallbackLabel
		if pro, ok := uc.repo.ProfessionalByID(ap.ProfessionalID); ok {
			professionalName = pro.Name
		}

		entries = append(entries, dto.AgendaEntryDTO{
			ID:               ap.ID,
			ClientName:       ap.ClientName,
			ClientPhone:      ap.ClientPhone,
			ServiceName:      serviceName,
			ServicePrice:     servicePrice,
			ProfessionalName: professionalName,
			Date:             ap.Date,
			DisplayDate:      format.DisplayDate(ap.Date),
			Time:             ap.Time,
			Status:           ap.Status,
		})
	}

	return entries
}
