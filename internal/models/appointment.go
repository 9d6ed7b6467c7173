package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Referência opaca usada como external_reference no pagamento
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	// Date/Time são cópias por valor da chave do Slot, nunca uma
	// referência viva: o histórico sobrevive à regeneração do calendário.
	// O índice único parcial garante no máximo uma cita ativa por
	// (barbeiro, data, hora).
	BarberID uint   `gorm:"uniqueIndex:idx_active_appointment,where:status <> 'cancelled'" json:"barber_id"`
	Barber   User   `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`
	Date     string `gorm:"size:10;uniqueIndex:idx_active_appointment,where:status <> 'cancelled'" json:"date"`
	Time     string `gorm:"size:5;uniqueIndex:idx_active_appointment,where:status <> 'cancelled'" json:"time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CutType string   `gorm:"size:50" json:"cut_type"`
	Extras  []string `gorm:"serializer:json" json:"extras"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
