package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

// Slot é um horário da grade com o veredito de disponibilidade para o
// profissional consultado.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type GetAvailability struct {
	repo       domain.Repository
	openHour   int
	closeHour  int
	minAdvance time.Duration

	// lido a cada execução; nunca cacheado entre chamadas, senão horários
	// limítrofes do dia corrente seriam aceitos ou recusados errado
	now func() time.Time
}

func NewGetAvailability(
	repo domain.Repository,
	openHour int,
	closeHour int,
	minAdvance time.Duration,
	now func() time.Time,
) *GetAvailability {
	return &GetAvailability{
		repo:       repo,
		openHour:   openHour,
		closeHour:  closeHour,
		minAdvance: minAdvance,
		now:        now,
	}
}

// Execute avalia a grade inteira de um dia para um profissional. Um
// identificador de profissional inexistente não é erro: a grade sai com as
// regras de tempo aplicadas e nenhum conflito, como no fluxo original.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
	professionalID uint,
) []Slot {

	appointments := uc.repo.Appointments()
	now := uc.now()

	grid := domain.TimeSlots(uc.openHour, uc.closeHour)
	slots := make([]Slot, 0, len(grid))

	for _, t := range grid {
		slots = append(slots, Slot{
			Time: t,
			Available: domain.SlotAvailable(
				appointments,
				date,
				t,
				professionalID,
				now,
				uc.minAdvance,
			),
		})
	}

	return slots
}

// IsSlotAvailable responde a consulta pontual usada antes do commit.
func (uc *GetAvailability) IsSlotAvailable(
	ctx context.Context,
	date string,
	slot string,
	professionalID uint,
) bool {
	return domain.SlotAvailable(
		uc.repo.Appointments(),
		date,
		slot,
		professionalID,
		uc.now(),
		uc.minAdvance,
	)
}
