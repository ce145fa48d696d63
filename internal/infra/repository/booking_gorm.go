package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/padlasalon/salon-booking/internal/domain/booking"
	"github.com/padlasalon/salon-booking/internal/httperr"
	"github.com/padlasalon/salon-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *BookingGormRepository) ListServices(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *BookingGormRepository) GetServicesByIDs(
	ctx context.Context,
	ids []string,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}

	if len(services) != len(dedupe(ids)) {
		return nil, httperr.ErrBusiness("invalid_service")
	}
	return services, nil
}

func (r *BookingGormRepository) ListStylists(
	ctx context.Context,
) ([]models.Stylist, error) {

	var stylists []models.Stylist
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&stylists).Error; err != nil {
		return nil, err
	}
	return stylists, nil
}

func (r *BookingGormRepository) GetStylist(
	ctx context.Context,
	id string,
) (*models.Stylist, error) {

	var stylist models.Stylist
	if err := r.db.WithContext(ctx).
		First(&stylist, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &stylist, nil
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *BookingGormRepository) GetUserByID(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("user_not_found")
		}
		return nil, err
	}
	return &user, nil
}

func (r *BookingGormRepository) GetUserByPhone(
	ctx context.Context,
	phone string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		First(&user, "phone = ?", phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("user_not_found")
		}
		return nil, err
	}
	return &user, nil
}

func (r *BookingGormRepository) CreateUser(
	ctx context.Context,
	user *models.User,
) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *BookingGormRepository) UpdateUser(
	ctx context.Context,
	user *models.User,
) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services").
		First(&ap, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) GetAppointmentForUpdate(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&ap, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Omit("Services").
		Save(ap).Error
}

func (r *BookingGormRepository) CountActiveAppointments(
	ctx context.Context,
	stylistID string,
	date string,
	timeSlot string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"stylist_id = ? AND date = ? AND time_slot = ? AND status IN ?",
			stylistID,
			date,
			timeSlot,
			[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
		).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BookingGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {
	return r.listAppointments(ctx, r.db.WithContext(ctx))
}

func (r *BookingGormRepository) ListAppointmentsByDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {
	return r.listAppointments(
		ctx,
		r.db.WithContext(ctx).Where("date = ?", date),
	)
}

func (r *BookingGormRepository) ListAppointmentsForUser(
	ctx context.Context,
	userID string,
) ([]models.Appointment, error) {
	return r.listAppointments(
		ctx,
		r.db.WithContext(ctx).Where("user_id = ?", userID),
	)
}

func (r *BookingGormRepository) ListVisits(
	ctx context.Context,
	userID string,
) ([]models.Appointment, error) {
	return r.listAppointments(
		ctx,
		r.db.WithContext(ctx).Where(
			"user_id = ? AND status = ?",
			userID,
			string(domain.StatusCompleted),
		),
	)
}

func (r *BookingGormRepository) listAppointments(
	_ context.Context,
	q *gorm.DB,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := q.
		Preload("Services").
		Order("date DESC, time_slot DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

func (r *BookingGormRepository) Transact(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
