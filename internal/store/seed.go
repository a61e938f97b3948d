package store

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Seed carrega os rosters iniciais do widget: quatro profissionais, dez
// serviços e um agendamento confirmado para hoje às 10:00. now define o
// "hoje" do fixture.
func (s *Store) Seed(now time.Time) {
	pros := []models.Professional{
		{Name: "Mestre Navalha", Avatar: "MN", Rating: 5.0, WorkHours: "09:00 - 19:00"},
		{Name: "João Tesoura", Avatar: "JT", Rating: 4.8, WorkHours: "10:00 - 20:00"},
		{Name: "Ana Fade", Avatar: "AF", Rating: 4.9, WorkHours: "09:00 - 18:00"},
		{Name: "Folinha do Cipo", Avatar: "FC", Rating: 4.9, WorkHours: "13:00 - 22:00"},
	}
	for _, p := range pros {
		s.AddProfessional(p)
	}

	services := []models.Service{
		{Name: "Corte Degradê", Price: 45.00, DurationMin: 45, Description: "Corte moderno com acabamento na navalha.", Category: models.CategoryCabelo},
		{Name: "Corte Social", Price: 35.00, DurationMin: 30, Description: "Clássico e alinhado.", Category: models.CategoryCabelo},
		{Name: "Corte Com Tintura", Price: 50.00, DurationMin: 30, Description: "Clássico + pintura de coloração.", Category: models.CategoryCabelo},
		{Name: "Corte Personalizado", Price: 40.00, DurationMin: 30, Description: "Corte a moda do cliente", Category: models.CategoryCabelo},
		{Name: "Pezinho e Acabamento", Price: 20.00, DurationMin: 15, Description: "Apenas os contornos.", Category: models.CategoryCabelo},
		{Name: "Barba Terapia", Price: 35.00, DurationMin: 30, Description: "Modelagem com toalha quente.", Category: models.CategoryBarba},
		{Name: "O Patriarca", Price: 70.00, DurationMin: 75, Description: "Corte + Barba + Sobrancelha.", Category: models.CategoryPacote},
		{Name: "Dia de Noivo", Price: 250.00, DurationMin: 180, Description: "Completo + Massagem + Drinks.", Category: models.CategoryPacote},
		{Name: "Pomada Matte", Price: 25.00, DurationMin: 10, Description: "Alta fixação sem brilho.", Category: models.CategoryProduto},
		{Name: "Kit Barba Completo", Price: 85.00, DurationMin: 10, Description: "Balm, Tônico e Shampoo.", Category: models.CategoryProduto},
	}
	for _, svc := range services {
		s.AddService(svc)
	}

	s.SeedAppointment(models.Appointment{
		ClientName:     "Cliente Teste",
		ClientPhone:    "000000000",
		ServiceID:      1,
		ProfessionalID: 1,
		Date:           booking.FormatDate(now),
		Time:           "10:00",
		Status:         string(booking.StatusConfirmed),
	})
}
