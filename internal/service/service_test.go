package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington-hs/activities/internal/model"
	"github.com/mergington-hs/activities/internal/store"
)

func newTestService() *ActivityService {
	catalog := store.New(model.Activity{
		Name:            "Debate Team",
		Description:     "Develop public speaking and argumentation skills",
		Schedule:        "Fridays, 4:00 PM - 5:30 PM",
		MaxParticipants: 4,
		Participants:    []string{"charlotte@mergington.edu"},
	})
	return NewActivityService(catalog)
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{name: "valid address", email: "x@y.edu", wantErr: nil},
		{name: "valid with subdomain", email: "student@mail.mergington.edu", wantErr: nil},
		{name: "empty", email: "", wantErr: ErrEmailRequired},
		{name: "no at sign", email: "invalidemail", wantErr: ErrInvalidEmail},
		{name: "two at signs", email: "a@b@c.edu", wantErr: ErrInvalidEmail},
		{name: "empty local part", email: "@mergington.edu", wantErr: ErrInvalidEmail},
		{name: "domain without dot", email: "a@mergington", wantErr: ErrInvalidEmail},
		{name: "domain with trailing dot", email: "a@mergington.", wantErr: ErrInvalidEmail},
		{name: "domain with leading dot", email: "a@.edu", wantErr: ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateEmail(tt.email)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown activity wins over bad email", func(t *testing.T) {
		svc := newTestService()
		err := svc.Signup(ctx, "Robotics Club", "invalidemail")
		assert.ErrorIs(t, err, store.ErrActivityNotFound)
	})

	t.Run("email checked before catalog mutation", func(t *testing.T) {
		svc := newTestService()
		err := svc.Signup(ctx, "Debate Team", "invalidemail")
		assert.ErrorIs(t, err, ErrInvalidEmail)

		catalog := svc.ListActivities(ctx)
		assert.Len(t, catalog["Debate Team"].Participants, 1)
	})

	t.Run("missing email", func(t *testing.T) {
		svc := newTestService()
		err := svc.Signup(ctx, "Debate Team", "")
		assert.ErrorIs(t, err, ErrEmailRequired)
	})

	t.Run("valid signup reaches the store", func(t *testing.T) {
		svc := newTestService()
		require.NoError(t, svc.Signup(ctx, "Debate Team", "henry@mergington.edu"))

		catalog := svc.ListActivities(ctx)
		assert.Contains(t, catalog["Debate Team"].Participants, "henry@mergington.edu")
	})

	t.Run("store errors surface unchanged", func(t *testing.T) {
		svc := newTestService()
		err := svc.Signup(ctx, "Debate Team", "charlotte@mergington.edu")
		assert.ErrorIs(t, err, store.ErrAlreadySignedUp)
	})
}

func TestUnregister(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown activity wins over bad email", func(t *testing.T) {
		svc := newTestService()
		err := svc.Unregister(ctx, "Robotics Club", "")
		assert.ErrorIs(t, err, store.ErrActivityNotFound)
	})

	t.Run("missing email", func(t *testing.T) {
		svc := newTestService()
		err := svc.Unregister(ctx, "Debate Team", "")
		assert.ErrorIs(t, err, ErrEmailRequired)
	})

	t.Run("not signed up", func(t *testing.T) {
		svc := newTestService()
		err := svc.Unregister(ctx, "Debate Team", "ghost@mergington.edu")
		assert.ErrorIs(t, err, store.ErrNotSignedUp)
	})

	t.Run("valid unregister reaches the store", func(t *testing.T) {
		svc := newTestService()
		require.NoError(t, svc.Unregister(ctx, "Debate Team", "charlotte@mergington.edu"))

		catalog := svc.ListActivities(ctx)
		assert.Empty(t, catalog["Debate Team"].Participants)
	})
}
