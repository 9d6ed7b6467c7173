package models

import "time"

// Perfil público do barbeiro, vinculado a um User com role "barber"
type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Specialties []string `gorm:"serializer:json" json:"specialties"`
	Bio         string   `gorm:"size:255" json:"bio"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
