package models

import "time"

// Day é um dia agendável do calendário. A própria data (YYYY-MM-DD)
// é a chave primária: datas nesse formato ordenam lexicograficamente.
type Day struct {
	DayID string `gorm:"primaryKey;size:10" json:"day_id"`

	Slots         []Slot            `gorm:"foreignKey:DayID;references:DayID" json:"slots"`
	Cancellations []DayCancellation `gorm:"foreignKey:DayID;references:DayID" json:"cancellations,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// DayCancellation marca que um barbeiro cancelou o dia inteiro.
// O índice único composto impede entradas duplicadas; o limite de
// três entradas por dia é validado pelo repositório sob lock.
type DayCancellation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DayID    string `gorm:"size:10;not null;uniqueIndex:idx_day_cancel" json:"day_id"`
	BarberID uint   `gorm:"not null;uniqueIndex:idx_day_cancel" json:"barber_id"`

	CreatedAt time.Time `json:"created_at"`
}
