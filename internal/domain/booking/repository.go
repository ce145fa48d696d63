package booking

import (
	"context"

	"github.com/padlasalon/salon-booking/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	ListServices(
		ctx context.Context,
	) ([]models.Service, error)

	GetServicesByIDs(
		ctx context.Context,
		ids []string,
	) ([]models.Service, error)

	ListStylists(
		ctx context.Context,
	) ([]models.Stylist, error)

	GetStylist(
		ctx context.Context,
		id string,
	) (*models.Stylist, error)

	// -------- Users --------
	GetUserByID(
		ctx context.Context,
		id string,
	) (*models.User, error)

	GetUserByPhone(
		ctx context.Context,
		phone string,
	) (*models.User, error)

	CreateUser(
		ctx context.Context,
		user *models.User,
	) error

	UpdateUser(
		ctx context.Context,
		user *models.User,
	) error

	// -------- Appointments --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	// GetAppointmentForUpdate locks the row for the duration of the
	// enclosing transaction.
	GetAppointmentForUpdate(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	CountActiveAppointments(
		ctx context.Context,
		stylistID string,
		date string,
		timeSlot string,
	) (int64, error)

	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	ListAppointmentsByDate(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsForUser(
		ctx context.Context,
		userID string,
	) ([]models.Appointment, error)

	ListVisits(
		ctx context.Context,
		userID string,
	) ([]models.Appointment, error)

	// -------- Transactions --------
	// Transact runs fn against a repository view whose mutations commit or
	// roll back as a unit. Status transitions and their point awards go
	// through here.
	Transact(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
