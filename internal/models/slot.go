package models

import "time"

// Slot é uma hora agendável dentro de um Day (11:00 até 20:00).
// Status "occupied" significa que algum cliente reservou essa hora.
type Slot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DayID string `gorm:"size:10;not null;uniqueIndex:idx_slot_day_time" json:"day_id"`
	Time  string `gorm:"size:5;not null;uniqueIndex:idx_slot_day_time" json:"time"`

	Status string `gorm:"size:20;default:'free'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SlotClaim marca que a hora de um barbeiro específico já foi consumida
// nesse slot. Distinto de Slot.Status: o claim é por barbeiro, o status
// é da barbearia inteira.
type SlotClaim struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DayID    string `gorm:"size:10;not null;uniqueIndex:idx_slot_claim" json:"day_id"`
	Time     string `gorm:"size:5;not null;uniqueIndex:idx_slot_claim" json:"time"`
	BarberID uint   `gorm:"not null;uniqueIndex:idx_slot_claim" json:"barber_id"`

	CreatedAt time.Time `json:"created_at"`
}
