package models

import "time"

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// Requester identity snapshotted at booking time. UserID is empty for
	// guest bookings.
	UserID    string `gorm:"size:36;index" json:"user_id"`
	UserName  string `gorm:"size:100" json:"user_name"`
	UserPhone string `gorm:"size:20" json:"user_phone"`

	Services []Service `gorm:"many2many:appointment_services;" json:"services"`

	// nil means "any available professional".
	StylistID *string `gorm:"size:36;index" json:"stylist_id"`

	Date     string `gorm:"size:10;index" json:"date"`
	TimeSlot string `gorm:"size:5" json:"time_slot"`

	Status string `gorm:"size:20;default:'PENDING'" json:"status"`

	TotalPrice     int `json:"total_price"`
	Discount       int `json:"discount"`
	PointsRedeemed int `json:"points_redeemed"`
	PointsEarned   int `json:"points_earned"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
