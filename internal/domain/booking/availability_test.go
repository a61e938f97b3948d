package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func fixedNow(t *testing.T, value string) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	now, err := time.ParseInLocation("2006-01-02 15:04", value, loc)
	require.NoError(t, err)
	return now
}

func TestSlotAvailableConflict(t *testing.T) {
	now := fixedNow(t, "2024-06-09 12:00")

	appointments := []models.Appointment{
		{ID: "a1", ProfessionalID: 1, Date: "2024-06-10", Time: "10:00", Status: string(StatusConfirmed)},
	}

	assert.False(t, SlotAvailable(appointments, "2024-06-10", "10:00", 1, now, DefaultMinAdvance),
		"occupied slot must be unavailable")

	assert.True(t, SlotAvailable(appointments, "2024-06-10", "10:00", 2, now, DefaultMinAdvance),
		"same slot for another professional must be free")

	assert.True(t, SlotAvailable(appointments, "2024-06-10", "10:30", 1, now, DefaultMinAdvance),
		"adjacent slot for the same professional must be free")
}

func TestSlotAvailableCancelledNeverBlocks(t *testing.T) {
	now := fixedNow(t, "2024-06-09 12:00")

	appointments := []models.Appointment{
		{ID: "a1", ProfessionalID: 1, Date: "2024-06-10", Time: "10:00", Status: string(StatusCancelled)},
	}

	assert.True(t, SlotAvailable(appointments, "2024-06-10", "10:00", 1, now, DefaultMinAdvance))
}

func TestSlotAvailableEveryNonCancelledStatusBlocks(t *testing.T) {
	now := fixedNow(t, "2024-06-09 12:00")

	for _, status := range []Status{StatusPending, StatusConfirmed, StatusCompleted} {
		appointments := []models.Appointment{
			{ID: "a1", ProfessionalID: 1, Date: "2024-06-10", Time: "10:00", Status: string(status)},
		}
		assert.False(t, SlotAvailable(appointments, "2024-06-10", "10:00", 1, now, DefaultMinAdvance),
			"status %s must block", status)
	}
}

func TestSlotAvailablePastDate(t *testing.T) {
	now := fixedNow(t, "2024-06-10 08:00")

	assert.False(t, SlotAvailable(nil, "2024-06-09", "10:00", 1, now, DefaultMinAdvance))
	assert.False(t, SlotAvailable(nil, "2023-12-31", "18:30", 3, now, DefaultMinAdvance))
}

func TestSlotAvailableMinAdvanceToday(t *testing.T) {
	now := fixedNow(t, "2024-06-10 09:50")

	// 10:00 fica a 10 minutos de agora: cedo demais
	assert.False(t, SlotAvailable(nil, "2024-06-10", "10:00", 1, now, DefaultMinAdvance))

	// 10:30 fica a 40 minutos: aceito
	assert.True(t, SlotAvailable(nil, "2024-06-10", "10:30", 1, now, DefaultMinAdvance))

	// horário que já passou hoje
	assert.False(t, SlotAvailable(nil, "2024-06-10", "09:00", 1, now, DefaultMinAdvance))
}

func TestSlotAvailableMinAdvanceBoundary(t *testing.T) {
	now := fixedNow(t, "2024-06-10 09:45")

	// exatamente now + 15min não é "antes": aceito
	assert.True(t, SlotAvailable(nil, "2024-06-10", "10:00", 1, now, DefaultMinAdvance))
}

func TestSlotAvailableTomorrowIgnoresMinAdvance(t *testing.T) {
	now := fixedNow(t, "2024-06-10 23:50")

	assert.True(t, SlotAvailable(nil, "2024-06-11", "09:00", 1, now, DefaultMinAdvance))
}

func TestSlotAvailableMalformedInput(t *testing.T) {
	now := fixedNow(t, "2024-06-10 12:00")

	assert.False(t, SlotAvailable(nil, "10/06/2024", "10:00", 1, now, DefaultMinAdvance))
	assert.False(t, SlotAvailable(nil, "", "10:00", 1, now, DefaultMinAdvance))
	assert.False(t, SlotAvailable(nil, "2024-06-10", "abc", 1, now, DefaultMinAdvance))
}

// O expediente declarado do profissional não entra no predicado: um horário
// fora do rótulo "09:00 - 18:00" segue disponível. Comportamento permissivo
// mantido de propósito.
func TestSlotAvailableIgnoresWorkHours(t *testing.T) {
	now := fixedNow(t, "2024-06-09 12:00")

	assert.True(t, SlotAvailable(nil, "2024-06-10", "21:30", 3, now, DefaultMinAdvance))
}

func TestHasConflictMatchesExactKeyOnly(t *testing.T) {
	appointments := []models.Appointment{
		{ID: "a1", ProfessionalID: 1, Date: "2024-06-10", Time: "10:00", Status: string(StatusPending)},
	}

	assert.True(t, HasConflict(appointments, "2024-06-10", "10:00", 1))
	assert.False(t, HasConflict(appointments, "2024-06-11", "10:00", 1))
	assert.False(t, HasConflict(appointments, "2024-06-10", "11:00", 1))
	assert.False(t, HasConflict(appointments, "2024-06-10", "10:00", 9))
}
