package models

import "time"

const (
	RoleGuest    = "GUEST"
	RoleCustomer = "CUSTOMER"
	RoleAdmin    = "ADMIN"
)

type User struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	Role  string `gorm:"size:20;default:'CUSTOMER'" json:"role"`

	LoyaltyPoints      int     `gorm:"default:0" json:"loyalty_points"`
	PreferredStylistID *string `gorm:"size:36" json:"preferred_stylist_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
