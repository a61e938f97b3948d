package dto

type AgendaEntryDTO struct {
	ID               string `json:"id"`
	ClientName       string `json:"client_name"`
	ClientPhone      string `json:"client_phone"`
	ServiceName      string `json:"service_name"`
	ServicePrice     string `json:"service_price"`
	ProfessionalName string `json:"professional_name"`
	Date             string `json:"date"`
	DisplayDate      string `json:"display_date"`
	Time             string `json:"time"`
	Status           string `json:"status"`
}

type DashboardDTO struct {
	TotalAppointments int            `json:"total_appointments"`
	ActiveServices    int            `json:"active_services"`
	TeamSize          int            `json:"team_size"`
	Ranking           []RankingEntry `json:"ranking"`
}

type RankingEntry struct {
	ProfessionalID uint   `json:"professional_id"`
	Name           string `json:"name"`
	Avatar         string `json:"avatar"`
	Appointments   int    `json:"appointments"`
}
