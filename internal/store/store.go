package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ======================================================
// STORE — dono único do estado em memória
// ======================================================

// Store guarda os três rosters (serviços, profissionais, agendamentos) e é a
// única superfície de mutação. Nenhum dado é persistido: tudo nasce do seed
// e morre com o processo.
//
// O mutex protege a integridade dos slices sob o servidor HTTP; ele não
// fecha a corrida consulta-depois-confirma do fluxo público, que é a forma
// legada documentada (disponibilidade e commit são duas chamadas).
type Store struct {
	mu sync.RWMutex

	services      []models.Service
	professionals []models.Professional
	appointments  []models.Appointment

	nextServiceID      uint
	nextProfessionalID uint
}

func New() *Store {
	return &Store{
		nextServiceID:      1,
		nextProfessionalID: 1,
	}
}

// ------------------------------
// Services
// ------------------------------

func (s *Store) Services() []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Service, len(s.services))
	copy(out, s.services)
	return out
}

func (s *Store) ServiceByID(id uint) (models.Service, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, svc := range s.services {
		if svc.ID == id {
			return svc, true
		}
	}
	return models.Service{}, false
}

// AddService atribui o identificador na criação e devolve o registro final.
func (s *Store) AddService(svc models.Service) models.Service {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc.ID = s.nextServiceID
	s.nextServiceID++
	s.services = append(s.services, svc)
	return svc
}

// DeleteService remove imediata e incondicionalmente: agendamentos que
// referenciam o serviço permanecem intactos (referência pendurada).
func (s *Store) DeleteService(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, svc := range s.services {
		if svc.ID == id {
			s.services = append(s.services[:i], s.services[i+1:]...)
			return true
		}
	}
	return false
}

// ------------------------------
// Professionals
// ------------------------------

func (s *Store) Professionals() []models.Professional {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Professional, len(s.professionals))
	copy(out, s.professionals)
	return out
}

func (s *Store) ProfessionalByID(id uint) (models.Professional, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.professionals {
		if p.ID == id {
			return p, true
		}
	}
	return models.Professional{}, false
}

func (s *Store) AddProfessional(p models.Professional) models.Professional {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextProfessionalID
	s.nextProfessionalID++
	s.professionals = append(s.professionals, p)
	return p
}

func (s *Store) DeleteProfessional(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.professionals {
		if p.ID == id {
			s.professionals = append(s.professionals[:i], s.professionals[i+1:]...)
			return true
		}
	}
	return false
}

// ------------------------------
// Appointments
// ------------------------------

func (s *Store) Appointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

// AppendAppointment gera o identificador único e anexa com status pending.
// Não há operação de atualização nem de remoção de agendamentos.
func (s *Store) AppendAppointment(ap models.Appointment) models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	ap.ID = uuid.NewString()
	ap.Status = string(booking.InitialStatus())
	s.appointments = append(s.appointments, ap)
	return ap
}

// SeedAppointment anexa preservando o status informado (o fixture original
// nasce "confirmed"). Só faz sentido em carga de seed e em testes; o fluxo
// de reserva passa por AppendAppointment.
func (s *Store) SeedAppointment(ap models.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ap.ID == "" {
		ap.ID = uuid.NewString()
	}
	s.appointments = append(s.appointments, ap)
}
