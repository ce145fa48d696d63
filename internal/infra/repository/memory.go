package repository

import (
	"context"
	"sort"
	"sync"

	domain "github.com/padlasalon/salon-booking/internal/domain/booking"
	"github.com/padlasalon/salon-booking/internal/httperr"
	"github.com/padlasalon/salon-booking/internal/models"
)

// Memory implements the booking repository over plain maps. It backs the
// test suite and documents the minimal store the booking engine needs. A
// single mutex serializes all mutations; Transact holds it for the whole
// critical section, giving the same transition-plus-award atomicity the SQL
// implementation gets from a row lock.
type Memory struct {
	mu sync.Mutex
	s  *memState
}

type memState struct {
	services     []models.Service
	stylists     []models.Stylist
	users        map[string]*models.User
	appointments map[string]*models.Appointment
	order        []string
}

func NewMemory(services []models.Service, stylists []models.Stylist) *Memory {
	return &Memory{
		s: &memState{
			services:     services,
			stylists:     stylists,
			users:        make(map[string]*models.User),
			appointments: make(map[string]*models.Appointment),
		},
	}
}

// memTx is the view handed to Transact callbacks. The enclosing Memory holds
// the lock, so memTx calls straight into the state.
type memTx struct {
	s *memState
}

// --------------------------------------------------
// Locked facade
// --------------------------------------------------

func (m *Memory) locked(fn func(*memState) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(m.s)
}

func (m *Memory) ListServices(ctx context.Context) ([]models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s.listServices()
}

func (m *Memory) GetServicesByIDs(ctx context.Context, ids []string) ([]models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s.getServicesByIDs(ids)
}

func (m *Memory) ListStylists(ctx context.Context) ([]models.Stylist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s.listStylists()
}

func (m *Memory) GetStylist(ctx context.Context, id string) (*models.Stylist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s.getStylist(id)
}

func (m *Memory) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s.getUserByID(id)
}

func (m *Memory) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s.getUserByPhone(phone)
}

func (m *Memory) CreateUser(ctx context.Context, user *models.User) error {
	return m.locked(func(s *memState) error { return s.createUser(user) })
}

func (m *Memory) UpdateUser(ctx context.Context, user *models.User) error {
	return m.locked(func(s *memState) error { return s.updateUser(user) })
}

func (m *Memory) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	return m.locked(func(s *memState) error { return s.createAppointment(ap) })
}

func (m *Memory) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s.getAppointment(id)
}

func (m *Memory) GetAppointmentForUpdate(ctx context.Context, id string) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s.getAppointment(id)
}

func (m *Memory) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return m.locked(func(s *memState) error { return s.updateAppointment(ap) })
}

func (m *Memory) CountActiveAppointments(ctx context.Context, stylistID, date, timeSlot string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s.countActive(stylistID, date, timeSlot), nil
}

func (m *Memory) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s.list(func(models.Appointment) bool { return true }), nil
}

func (m *Memory) ListAppointmentsByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s.list(func(ap models.Appointment) bool { return ap.Date == date }), nil
}

func (m *Memory) ListAppointmentsForUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s.list(func(ap models.Appointment) bool { return ap.UserID == userID }), nil
}

func (m *Memory) ListVisits(ctx context.Context, userID string) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s.list(func(ap models.Appointment) bool {
		return ap.UserID == userID && ap.Status == string(domain.StatusCompleted)
	}), nil
}

func (m *Memory) Transact(ctx context.Context, fn func(domain.Repository) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(&memTx{s: m.s})
}

// --------------------------------------------------
// Transaction view
// --------------------------------------------------

func (t *memTx) ListServices(ctx context.Context) ([]models.Service, error) {
	return t.s.listServices()
}

func (t *memTx) GetServicesByIDs(ctx context.Context, ids []string) ([]models.Service, error) {
	return t.s.getServicesByIDs(ids)
}

func (t *memTx) ListStylists(ctx context.Context) ([]models.Stylist, error) {
	return t.s.listStylists()
}

func (t *memTx) GetStylist(ctx context.Context, id string) (*models.Stylist, error) {
	return t.s.getStylist(id)
}

func (t *memTx) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return t.s.getUserByID(id)
}

func (t *memTx) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	return t.s.getUserByPhone(phone)
}

func (t *memTx) CreateUser(ctx context.Context, user *models.User) error {
	return t.s.createUser(user)
}

func (t *memTx) UpdateUser(ctx context.Context, user *models.User) error {
	return t.s.updateUser(user)
}

func (t *memTx) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	return t.s.createAppointment(ap)
}

func (t *memTx) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	return t.s.getAppointment(id)
}

func (t *memTx) GetAppointmentForUpdate(ctx context.Context, id string) (*models.Appointment, error) {
	return t.s.getAppointment(id)
}

func (t *memTx) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return t.s.updateAppointment(ap)
}

func (t *memTx) CountActiveAppointments(ctx context.Context, stylistID, date, timeSlot string) (int64, error) {
	return t.s.countActive(stylistID, date, timeSlot), nil
}

func (t *memTx) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return t.s.list(func(models.Appointment) bool { return true }), nil
}

func (t *memTx) ListAppointmentsByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return t.s.list(func(ap models.Appointment) bool { return ap.Date == date }), nil
}

func (t *memTx) ListAppointmentsForUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	return t.s.list(func(ap models.Appointment) bool { return ap.UserID == userID }), nil
}

func (t *memTx) ListVisits(ctx context.Context, userID string) ([]models.Appointment, error) {
	return t.s.list(func(ap models.Appointment) bool {
		return ap.UserID == userID && ap.Status == string(domain.StatusCompleted)
	}), nil
}

func (t *memTx) Transact(ctx context.Context, fn func(domain.Repository) error) error {
	// Already inside the critical section.
	return fn(t)
}

// --------------------------------------------------
// State
// --------------------------------------------------

func (s *memState) listServices() ([]models.Service, error) {
	out := make([]models.Service, len(s.services))
	copy(out, s.services)
	return out, nil
}

func (s *memState) getServicesByIDs(ids []string) ([]models.Service, error) {
	byID := make(map[string]models.Service, len(s.services))
	for _, sv := range s.services {
		byID[sv.ID] = sv
	}

	seen := make(map[string]struct{}, len(ids))
	var out []models.Service
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		sv, ok := byID[id]
		if !ok {
			return nil, httperr.ErrBusiness("invalid_service")
		}
		out = append(out, sv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memState) listStylists() ([]models.Stylist, error) {
	out := make([]models.Stylist, len(s.stylists))
	copy(out, s.stylists)
	return out, nil
}

func (s *memState) getStylist(id string) (*models.Stylist, error) {
	for _, st := range s.stylists {
		if st.ID == id {
			cp := st
			return &cp, nil
		}
	}
	return nil, httperr.ErrBusiness("stylist_not_found")
}

func (s *memState) getUserByID(id string) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, httperr.ErrBusiness("user_not_found")
	}
	cp := *u
	return &cp, nil
}

func (s *memState) getUserByPhone(phone string) (*models.User, error) {
	for _, u := range s.users {
		if u.Phone == phone {
			cp := *u
			return &cp, nil
		}
	}
	return nil, httperr.ErrBusiness("user_not_found")
}

func (s *memState) createUser(user *models.User) error {
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *memState) updateUser(user *models.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return httperr.ErrBusiness("user_not_found")
	}
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *memState) createAppointment(ap *models.Appointment) error {
	cp := *ap
	s.appointments[ap.ID] = &cp
	s.order = append(s.order, ap.ID)
	return nil
}

func (s *memState) getAppointment(id string) (*models.Appointment, error) {
	ap, ok := s.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness("booking_not_found")
	}
	cp := *ap
	return &cp, nil
}

func (s *memState) updateAppointment(ap *models.Appointment) error {
	if _, ok := s.appointments[ap.ID]; !ok {
		return httperr.ErrBusiness("booking_not_found")
	}
	cp := *ap
	s.appointments[ap.ID] = &cp
	return nil
}

func (s *memState) countActive(stylistID, date, timeSlot string) int64 {
	var count int64
	for _, ap := range s.appointments {
		if ap.StylistID == nil || *ap.StylistID != stylistID {
			continue
		}
		if ap.Date != date || ap.TimeSlot != timeSlot {
			continue
		}
		if domain.Status(ap.Status).Occupies() {
			count++
		}
	}
	return count
}

func (s *memState) list(keep func(models.Appointment) bool) []models.Appointment {
	var out []models.Appointment
	for _, id := range s.order {
		ap := s.appointments[id]
		if keep(*ap) {
			out = append(out, *ap)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].TimeSlot > out[j].TimeSlot
	})
	return out
}

// Compile-time checks
var (
	_ domain.Repository = (*Memory)(nil)
	_ domain.Repository = (*memTx)(nil)
)
