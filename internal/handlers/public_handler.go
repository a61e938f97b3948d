package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/format"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
	ucAgenda "github.com/BruksfildServices01/barber-booking/internal/usecase/agenda"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
	ucCatalog "github.com/BruksfildServices01/barber-booking/internal/usecase/catalog"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serve o fluxo do cliente: catálogo, equipe, janela de datas,
// grade de disponibilidade e a confirmação da reserva. Nenhuma regra de
// agendamento vive aqui; tudo é delegado ao motor.
type PublicHandler struct {
	repo         domain.Repository
	catalog      *ucCatalog.Catalog
	availability *ucBooking.GetAvailability
	create       *ucBooking.CreateAppointment

	windowDays int
	now        func() time.Time
}

func NewPublicHandler(
	repo domain.Repository,
	catalog *ucCatalog.Catalog,
	availability *ucBooking.GetAvailability,
	create *ucBooking.CreateAppointment,
	windowDays int,
	now func() time.Time,
) *PublicHandler {
	return &PublicHandler{
		repo:         repo,
		catalog:      catalog,
		availability: availability,
		create:       create,
		windowDays:   windowDays,
		now:          now,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	ClientName     string `json:"client_name" binding:"required"`
	ClientPhone    string `json:"client_phone" binding:"required"`
	ServiceID      uint   `json:"service_id" binding:"required"`
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	Date           string `json:"date" binding:"required"` // YYYY-MM-DD
	Time           string `json:"time" binding:"required"` // HH:MM
}

type ServiceView struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	DisplayPrice string  `json:"display_price"`
	DurationMin  int     `json:"duration_min"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
}

type DayView struct {
	Date        string `json:"date"`
	DisplayDate string `json:"display_date"`
	Weekday     string `json:"weekday"`
}

////////////////////////////////////////////////////////
// CATALOG
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	services := h.catalog.ListServices(
		c.Request.Context(),
		c.Query("category"),
		c.Query("query"),
	)

	views := make([]ServiceView, 0, len(services))
	for _, svc := range services {
		views = append(views, ServiceView{
			ID:           svc.ID,
			Name:         svc.Name,
			Price:        svc.Price,
			DisplayPrice: format.BRL(svc.Price),
			DurationMin:  svc.DurationMin,
			Description:  svc.Description,
			Category:     svc.Category,
		})
	}

	httpresp.List(c, views)
}

func (h *PublicHandler) ListProfessionals(c *gin.Context) {
	httpresp.List(c, h.catalog.ListProfessionals(c.Request.Context()))
}

////////////////////////////////////////////////////////
// DATE WINDOW
////////////////////////////////////////////////////////

func (h *PublicHandler) ListDays(c *gin.Context) {
	days := domain.NextDays(h.now(), h.windowDays)

	views := make([]DayView, 0, len(days))
	for _, d := range days {
		date := domain.FormatDate(d)
		views = append(views, DayView{
			Date:        date,
			DisplayDate: format.DisplayDate(date),
			Weekday:     d.Weekday().String(),
		})
	}

	httpresp.List(c, views)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	professionalIDStr := c.Query("professional_id")

	if dateStr == "" || professionalIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e profissional obrigatórios.")
		return
	}

	professionalID, err := strconv.ParseUint(professionalIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_professional_id", "Profissional inválido.")
		return
	}

	metrics.IncAvailabilityCheck()

	slots := h.availability.Execute(c.Request.Context(), dateStr, uint(professionalID))

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucBooking.CreateAppointmentInput{
		ClientName:     req.ClientName,
		ClientPhone:    req.ClientPhone,
		ServiceID:      req.ServiceID,
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Time:           req.Time,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	// O link é uma conveniência de apresentação: nada é disparado daqui.
	serviceName := ucAgenda.FallbackLabel
	if svc, ok := h.repo.ServiceByID(ap.ServiceID); ok {
		serviceName = svc.Name
	}

	c.JSON(http.StatusCreated, gin.H{
		"appointment":  ap,
		"whatsapp_url": notify.WhatsAppLink(ap.ClientPhone, serviceName, ap.Date, ap.Time),
	})
}
