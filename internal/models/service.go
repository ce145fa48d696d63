package models

import "time"

type Service struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name   string `gorm:"size:100;not null" json:"name"`
	NameGu string `gorm:"size:100" json:"name_gu"`
	NameHi string `gorm:"size:100" json:"name_hi"`

	Description string `gorm:"size:255" json:"description"`
	Price       int    `json:"price"`
	DurationMin int    `json:"duration_min"`

	Category  string `gorm:"size:20" json:"category"`
	IsPopular bool   `gorm:"default:false" json:"is_popular"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LocalizedName resolves the display name for a language code, falling
// back to the English name when no translation exists.
func (s Service) LocalizedName(lang string) string {
	switch lang {
	case "gu":
		if s.NameGu != "" {
			return s.NameGu
		}
	case "hi":
		if s.NameHi != "" {
			return s.NameHi
		}
	}
	return s.Name
}
