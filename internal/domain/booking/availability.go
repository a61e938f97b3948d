package booking

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// DefaultMinAdvance é a antecedência mínima para agendar no dia corrente.
const DefaultMinAdvance = 15 * time.Minute

// HasConflict verifica se algum agendamento não cancelado ocupa exatamente a
// chave (date, time, professional).
func HasConflict(appointments []models.Appointment, date, slot string, professionalID uint) bool {
	for _, ap := range appointments {
		if ap.Date == date &&
			ap.Time == slot &&
			ap.ProfessionalID == professionalID &&
			Status(ap.Status).Blocks() {
			return true
		}
	}
	return false
}

// SlotAvailable é o predicado central de disponibilidade, avaliado na ordem:
//
//  1. conflito de agenda (cancelados nunca bloqueiam);
//  2. data estritamente anterior a hoje → indisponível;
//  3. hoje, com o instante do horário antes de now + minAdvance → indisponível.
//
// O expediente declarado do profissional não é consultado: um horário fora
// do expediente ainda é reportado disponível se passar nas regras acima.
// Entrada malformada é tratada como indisponível.
func SlotAvailable(
	appointments []models.Appointment,
	date string,
	slot string,
	professionalID uint,
	now time.Time,
	minAdvance time.Duration,
) bool {

	if HasConflict(appointments, date, slot, professionalID) {
		return false
	}

	day, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if day.Before(today) {
		return false
	}

	if day.Equal(today) {
		instant, err := ParseSlot(date, slot, now.Location())
		if err != nil {
			return false
		}
		if instant.Before(now.Add(minAdvance)) {
			return false
		}
	}

	return true
}
