package booking

import "github.com/BruksfildServices01/barber-booking/internal/models"

// Repository é a visão que os casos de uso têm do estado do motor. A única
// implementação é o store em memória; não existe outra fonte de dados.
type Repository interface {
	Services() []models.Service
	ServiceByID(id uint) (models.Service, bool)

	Professionals() []models.Professional
	ProfessionalByID(id uint) (models.Professional, bool)

	Appointments() []models.Appointment
	AppendAppointment(ap models.Appointment) models.Appointment
}
