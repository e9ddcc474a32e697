package store

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pizzahub/pizzahub-api/models"
	"github.com/pizzahub/pizzahub-api/storage"
)

// Session holds the optional current user. Identity is asserted: login
// fabricates a user from the email, nothing is verified and no duplicate
// checks are made.
type Session struct {
	mu      sync.Mutex
	records storage.Records
	logger  *zap.Logger
	cart    *Cart
	current *models.User
}

func NewSession(records storage.Records, cart *Cart, logger *zap.Logger) *Session {
	s := &Session{records: records, cart: cart, logger: logger}

	var user *models.User
	err := records.Load(context.Background(), storage.KeyUser, &user)
	switch {
	case err == nil:
		s.current = user
	case errors.Is(err, storage.ErrNotFound):
		// nobody logged in
	default:
		logger.Warn("failed to load user record, starting logged out", zap.Error(err))
	}
	return s
}

// Login records an asserted identity. The name is the email local-part.
func (s *Session) Login(email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, models.NewValidationError("please fill in all fields")
	}

	user := models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      strings.SplitN(email, "@", 2)[0],
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &user
	s.persistLocked()
	return user, nil
}

// Register records a new asserted identity with full details.
func (s *Session) Register(name, email, password, phone string) (models.User, error) {
	if name == "" || email == "" || password == "" || phone == "" {
		return models.User{}, models.NewValidationError("please fill in all fields")
	}

	user := models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &user
	s.persistLocked()
	return user, nil
}

// Logout clears the current user and empties the cart. The caller is
// expected to have confirmed the action with the user.
func (s *Session) Logout() {
	s.mu.Lock()
	s.current = nil
	s.persistLocked()
	s.mu.Unlock()

	s.cart.Clear()
}

// Current returns a copy of the logged-in user, or nil.
func (s *Session) Current() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

func (s *Session) persistLocked() {
	if err := s.records.Save(context.Background(), storage.KeyUser, s.current); err != nil {
		s.logger.Warn("failed to persist user", zap.Error(err))
	}
}
