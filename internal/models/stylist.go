package models

import "time"

type Stylist struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name           string  `gorm:"size:100;not null" json:"name"`
	Specialization string  `gorm:"size:100" json:"specialization"`
	Experience     string  `gorm:"size:50" json:"experience"`
	Rating         float64 `json:"rating"`

	// Staff-level flag (leave, sickness). Independent of per-slot booking
	// state, which is derived from the appointment table.
	IsAvailable bool `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
