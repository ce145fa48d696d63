// Package otp issues and verifies the one-time login codes. Delivery is a
// stand-in: codes are written to the log instead of an SMS gateway.
package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/padlasalon/salon-booking/internal/httperr"
	"github.com/padlasalon/salon-booking/internal/kv"
)

const (
	codeTTL    = 5 * time.Minute
	codeDigits = 6
)

type Manager struct {
	store kv.Store
	log   *zap.Logger
}

func NewManager(store kv.Store, log *zap.Logger) *Manager {
	return &Manager{store: store, log: log}
}

// Issue generates a code for the phone and stores only its bcrypt hash,
// replacing any previous code.
func (m *Manager) Issue(ctx context.Context, phone string) error {
	code, err := randomCode()
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := m.store.Set(ctx, key(phone), string(hash), codeTTL); err != nil {
		return err
	}

	// No SMS gateway in this deployment; the code lands in the log so
	// operators and local development can complete the flow.
	m.log.Info("otp issued",
		zap.String("phone", phone),
		zap.String("code", code),
	)
	return nil
}

// Verify checks a submitted code and consumes it on success.
func (m *Manager) Verify(ctx context.Context, phone, code string) error {
	hash, err := m.store.Get(ctx, key(phone))
	if errors.Is(err, kv.ErrNotFound) {
		return httperr.ErrBusiness("code_expired")
	}
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) != nil {
		return httperr.ErrBusiness("invalid_code")
	}

	return m.store.Del(ctx, key(phone))
}

func key(phone string) string {
	return "otp:" + phone
}

func randomCode() (string, error) {
	limit := big.NewInt(1)
	for i := 0; i < codeDigits; i++ {
		limit.Mul(limit, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", codeDigits, n), nil
}
