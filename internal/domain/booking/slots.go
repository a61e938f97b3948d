package booking

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// TimeSlots gera a grade fechada de horários de meia em meia hora, de
// openHour até closeHour inclusive (ex.: 9..21 → "09:00" ... "21:30").
// Dado puro, sem efeitos; pode ser regerada à vontade.
func TimeSlots(openHour, closeHour int) []string {
	var slots []string
	for h := openHour; h <= closeHour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
		slots = append(slots, fmt.Sprintf("%02d:30", h))
	}
	return slots
}

// NextDays retorna os próximos n dias corridos a partir de start (start é o
// índice 0). Usa aritmética de calendário (AddDate), e não de milissegundos,
// para não pular nem repetir dia em virada de horário de verão.
func NextDays(start time.Time, n int) []time.Time {
	base := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	days := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, base.AddDate(0, 0, i))
	}
	return days
}

// FormatDate serializa uma data no formato interno YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseSlot resolve o instante de parede de um par (date, slot) no fuso dado.
func ParseSlot(date, slot string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+slot, loc)
}
