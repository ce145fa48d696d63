package identity

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/padlasalon/salon-booking/internal/domain/booking"
	"github.com/padlasalon/salon-booking/internal/models"
)

type ResolveOrCreate struct {
	repo domain.Repository
}

func NewResolveOrCreate(repo domain.Repository) *ResolveOrCreate {
	return &ResolveOrCreate{repo: repo}
}

// Execute looks a user up by exact phone match, creating a fresh customer
// record on first login. Existing records keep their points and history.
// isAdmin promotes newly created accounts only; an existing record's role is
// left alone.
func (uc *ResolveOrCreate) Execute(
	ctx context.Context,
	phone string,
	isAdmin bool,
) (*models.User, error) {

	if user, err := uc.repo.GetUserByPhone(ctx, phone); err == nil {
		return user, nil
	}

	role := models.RoleCustomer
	name := "New Customer"
	if isAdmin {
		role = models.RoleAdmin
		name = "Salon Admin"
	}

	user := &models.User{
		ID:            uuid.NewString(),
		Name:          name,
		Phone:         phone,
		Role:          role,
		LoyaltyPoints: 0,
	}
	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
