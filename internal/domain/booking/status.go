package booking

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// InitialStatus é o status de todo agendamento recém-criado. O núcleo não
// expõe nenhuma transição de status.
func InitialStatus() Status {
	return StatusPending
}

// Blocks define se um agendamento neste status ocupa o horário.
// Somente "cancelled" libera a vaga; qualquer outro valor bloqueia.
func (s Status) Blocks() bool {
	return s != StatusCancelled
}
