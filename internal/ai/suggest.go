package ai

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/padlasalon/salon-booking/internal/models"
)

// Suggest produces a short next-service recommendation for the customer.
// It never returns an error: absence of a key, timeouts and API failures all
// fall back to the rule-based message.
func (c *Client) Suggest(
	ctx context.Context,
	user *models.User,
	visits []models.Appointment,
	services []models.Service,
) string {

	var lastVisit *models.Appointment
	if len(visits) > 0 {
		lastVisit = &visits[0]
	}

	if !c.enabled() {
		return fallbackSuggestion(user, lastVisit)
	}

	prompt := suggestionPrompt(user, visits, services)
	text, err := c.generate(ctx, []content{
		{Role: "user", Parts: []part{{Text: prompt}}},
	})
	if err != nil {
		c.log.Warn("suggestion call failed, using fallback", zap.Error(err))
		return fmt.Sprintf(
			"Welcome back, %s! We're ready to make you look your best.",
			user.Name,
		)
	}
	return strings.TrimSpace(text)
}

func fallbackSuggestion(user *models.User, lastVisit *models.Appointment) string {
	if lastVisit != nil {
		return fmt.Sprintf(
			"Welcome back, %s! Based on your last visit for %s, we recommend a trim today to keep you looking sharp.",
			user.Name,
			serviceNames(lastVisit.Services),
		)
	}
	return fmt.Sprintf(
		"Welcome, %s! Try our popular 'Groom Package' for a complete makeover.",
		user.Name,
	)
}

func suggestionPrompt(
	user *models.User,
	visits []models.Appointment,
	services []models.Service,
) string {

	history := "No previous history."
	if len(visits) > 0 {
		var lines []string
		for _, v := range visits {
			lines = append(lines, fmt.Sprintf("%s: %s", v.Date, serviceNames(v.Services)))
		}
		history = strings.Join(lines, "; ")
	}

	var menu []string
	for _, s := range services {
		menu = append(menu, s.Name)
	}

	return fmt.Sprintf(
		`You are an expert salon receptionist AI for Padla Hair Salon.
Customer Name: %s
Visit History: %s
Available Services: %s

Suggest the next best service for this customer in 1-2 sentences.
If they are new, suggest a popular combo.
Tone: Professional, warm, and inviting.`,
		user.Name,
		history,
		strings.Join(menu, ", "),
	)
}

func serviceNames(services []models.Service) string {
	names := make([]string, 0, len(services))
	for _, s := range services {
		names = append(names, s.Name)
	}
	return strings.Join(names, ", ")
}
