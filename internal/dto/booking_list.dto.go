package dto

type BookingListDTO struct {
	ID           string   `json:"id"`
	Date         string   `json:"date"`
	TimeSlot     string   `json:"time_slot"`
	Status       string   `json:"status"`
	UserName     string   `json:"user_name"`
	UserPhone    string   `json:"user_phone"`
	StylistID    *string  `json:"stylist_id"`
	Services     []string `json:"services"`
	TotalPrice   int      `json:"total_price"`
	Discount     int      `json:"discount"`
	PointsEarned int      `json:"points_earned"`
}
