package services

import (
	"errors"
	"sync"
	"time"

	"pokerledger/domain/ledger"

	log "github.com/sirupsen/logrus"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrPlayerExists   = errors.New("player already exists")
	ErrGameNotFound   = errors.New("game not found")

	ErrUnknownTimerAction = errors.New("unknown timer action")
)

// IsUserError reports whether err is caused by the caller's input rather than the backend
func IsUserError(err error) bool {
	return ledger.IsValidationError(err) ||
		errors.Is(err, ErrPlayerNotFound) ||
		errors.Is(err, ErrPlayerExists) ||
		errors.Is(err, ErrGameNotFound) ||
		errors.Is(err, ErrUnknownTimerAction)
}

// ErrorSlot keeps the most recent backend failure for display in the admin console
type ErrorSlot struct {
	mu   sync.RWMutex
	last error
	at   time.Time
}

// NewErrorSlot creates an empty slot
func NewErrorSlot() *ErrorSlot {
	return &ErrorSlot{}
}

// Record stores err as the latest failure
func (s *ErrorSlot) Record(err error) {
	if s == nil || err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = err
	s.at = time.Now()
}

// Last returns the latest failure, nil if none
func (s *ErrorSlot) Last() error {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// LastAt returns when the latest failure was recorded
func (s *ErrorSlot) LastAt() time.Time {
	if s == nil {
		return time.Time{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.at
}

// Clear empties the slot
func (s *ErrorSlot) Clear() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = nil
	s.at = time.Time{}
}

// Capture records backend failures and passes every error through unchanged
func (s *ErrorSlot) Capture(err error) error {
	if err == nil || IsUserError(err) {
		return err
	}
	log.WithError(err).Warn("Ledger backend operation failed")
	s.Record(err)
	return err
}
