package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientName  string
	ClientPhone string

	ServiceID      uint
	ProfessionalID uint

	Date string
	Time string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// Execute confirma a reserva: anexa um agendamento pending com identificador
// novo e devolve o registro criado.
//
// Serviço e profissional foram escolhidos a montante pelo fluxo; a
// disponibilidade foi consultada antes, e não é reverificada aqui. Essa é a
// forma legada em duas etapas: a corrida consulta/commit fica aberta de
// propósito.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (models.Appointment, error) {

	if in.ClientName == "" {
		return models.Appointment{}, httperr.ErrBusiness("missing_client_name")
	}
	if in.ClientPhone == "" {
		return models.Appointment{}, httperr.ErrBusiness("missing_client_phone")
	}
	if !validators.IsPhoneValid(in.ClientPhone) {
		return models.Appointment{}, httperr.ErrBusiness("invalid_client_phone")
	}

	ap := uc.repo.AppendAppointment(models.Appointment{
		ClientName:     in.ClientName,
		ClientPhone:    in.ClientPhone,
		ServiceID:      in.ServiceID,
		ProfessionalID: in.ProfessionalID,
		Date:           in.Date,
		Time:           in.Time,
	})

	metrics.IncAppointmentCreated()

	uc.audit.Dispatch(audit.Event{
		Actor:    in.ClientName,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}
