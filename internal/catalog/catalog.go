// Package catalog holds the salon's fixed reference data: the service menu,
// the stylist roster and the business-hours time-slot template.
package catalog

import (
	"fmt"

	"github.com/padlasalon/salon-booking/internal/models"
)

const SalonName = "Padla Hair Salon"

// Business hours: 10:00 to 20:00, booked in half-hour slots.
const (
	openingHour = 10
	closingHour = 20
	slotMinutes = 30
)

func Services() []models.Service {
	return []models.Service{
		{
			ID:          "s1",
			Name:        "Classic Haircut",
			NameGu:      "ક્લાસિક હેરકટ",
			NameHi:      "क्लासिक हेयरकट",
			Description: "Precision cut with styling and wash.",
			Price:       300,
			DurationMin: 30,
			Category:    "hair",
			IsPopular:   true,
		},
		{
			ID:          "s2",
			Name:        "Beard Trim & Shape",
			NameGu:      "દાઢી ટ્રીમ",
			NameHi:      "बियर्ड ट्रिम",
			Description: "Professional beard sculpting with razor finish.",
			Price:       150,
			DurationMin: 20,
			Category:    "beard",
		},
		{
			ID:          "s3",
			Name:        "Royal Shave",
			NameGu:      "રોયલ શેવ",
			NameHi:      "रॉयल शेव",
			Description: "Hot towel shave with premium oils.",
			Price:       200,
			DurationMin: 25,
			Category:    "beard",
		},
		{
			ID:          "s4",
			Name:        "Gold Facial",
			NameGu:      "ગોલ્ડ ફેશિયલ",
			NameHi:      "गोल्ड फेशियल",
			Description: "Deep cleansing and rejuvenating facial treatment.",
			Price:       800,
			DurationMin: 45,
			Category:    "face",
		},
		{
			ID:          "s5",
			Name:        "Groom Package (Cut + Beard + Facial)",
			NameGu:      "ગ્રૂમ પેકેજ",
			NameHi:      "ग्रूम पैकेज",
			Description: "Complete makeover package for men.",
			Price:       1100,
			DurationMin: 90,
			Category:    "combo",
			IsPopular:   true,
		},
	}
}

func Stylists() []models.Stylist {
	return []models.Stylist{
		{
			ID:             "b1",
			Name:           "Rajesh Kumar",
			Specialization: "Senior Stylist",
			Experience:     "8 Years",
			IsAvailable:    true,
			Rating:         4.8,
		},
		{
			ID:             "b2",
			Name:           "Vikram Singh",
			Specialization: "Beard Expert",
			Experience:     "5 Years",
			IsAvailable:    true,
			Rating:         4.6,
		},
		{
			// On leave.
			ID:             "b3",
			Name:           "Amit Patel",
			Specialization: "Colorist",
			Experience:     "6 Years",
			IsAvailable:    false,
			Rating:         4.9,
		},
	}
}

type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// TimeSlots produces the day's slot template, all marked available. Every
// day currently shares the same business hours; the date parameter is kept
// so per-day variation can land without an API change.
func TimeSlots(date string) []TimeSlot {
	_ = date

	var slots []TimeSlot
	for h := openingHour; h < closingHour; h++ {
		for m := 0; m < 60; m += slotMinutes {
			slots = append(slots, TimeSlot{
				Time:      fmt.Sprintf("%02d:%02d", h, m),
				Available: true,
			})
		}
	}
	return slots
}

// ValidSlot reports whether a time label belongs to the template.
func ValidSlot(t string) bool {
	for _, s := range TimeSlots("") {
		if s.Time == t {
			return true
		}
	}
	return false
}
