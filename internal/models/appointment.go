package models

type Appointment struct {
	ID string `json:"id"`

	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`

	ServiceID      uint `json:"service_id"`
	ProfessionalID uint `json:"professional_id"`

	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM, grade de meia hora

	Status string `json:"status"`
}
