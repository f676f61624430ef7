// Package service implements business logic and validation between the
// HTTP handlers and the catalog store.
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/mergington-hs/activities/internal/model"
	"github.com/mergington-hs/activities/internal/store"
)

// ErrEmailRequired is returned when the email parameter is missing or empty.
var ErrEmailRequired = errors.New("email parameter is required")

// ErrInvalidEmail is returned when the email fails the syntax check.
var ErrInvalidEmail = errors.New("invalid email format")

// ActivityService orchestrates catalog operations.
type ActivityService struct {
	catalog *store.Store
}

// NewActivityService constructs an ActivityService.
func NewActivityService(catalog *store.Store) *ActivityService {
	return &ActivityService{catalog: catalog}
}

// ListActivities returns a snapshot of the full catalog.
func (s *ActivityService) ListActivities(ctx context.Context) map[string]model.Activity {
	return s.catalog.List()
}

// Signup enrolls email in the named activity.
//
// Checks run in contract order: unknown activity wins over a bad email,
// so signing up for a missing activity reports not-found regardless of
// the email value.
func (s *ActivityService) Signup(ctx context.Context, activityName, email string) error {
	if !s.catalog.Exists(activityName) {
		return store.ErrActivityNotFound
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	return s.catalog.Signup(activityName, email)
}

// Unregister removes email from the named activity.
func (s *ActivityService) Unregister(ctx context.Context, activityName, email string) error {
	if !s.catalog.Exists(activityName) {
		return store.ErrActivityNotFound
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	return s.catalog.Unregister(activityName, email)
}

// validateEmail does a conservative structural check: exactly one "@",
// a non-empty local part, and a domain of at least two non-empty
// dot-separated labels. Deliberately not a full RFC 5322 validator.
// The address is used verbatim; no trimming or case folding.
func validateEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[0] == "" {
		return ErrInvalidEmail
	}
	labels := strings.Split(parts[1], ".")
	if len(labels) < 2 {
		return ErrInvalidEmail
	}
	for _, label := range labels {
		if label == "" {
			return ErrInvalidEmail
		}
	}
	return nil
}
