package dto

type AppointmentListDTO struct {
	ID        uint     `json:"id"`
	Reference string   `json:"reference"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Status    string   `json:"status"`
	CutType   string   `json:"cut_type"`
	Extras    []string `json:"extras"`

	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone,omitempty"`
	BarberName  string `json:"barber_name"`
	BarberPhone string `json:"barber_phone,omitempty"`
}
