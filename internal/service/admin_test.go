package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Ibrakam/PartyLand/internal/auth"
	"github.com/Ibrakam/PartyLand/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminFixture(t *testing.T) *AdminService {
	t.Helper()
	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewAdminService("admin", hash, time.Hour, logger)
}

func TestAdminService_LoginAndValidate(t *testing.T) {
	ctx := context.Background()
	svc := newAdminFixture(t)

	session, err := svc.Login(ctx, "admin", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	got, err := svc.Validate(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Username)
}

func TestAdminService_LoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc := newAdminFixture(t)

	_, err := svc.Login(ctx, "admin", "wrong")
	assert.True(t, domain.IsCode(err, domain.EUNAUTHORIZED))

	_, err = svc.Login(ctx, "someone-else", "correct-horse")
	assert.True(t, domain.IsCode(err, domain.EUNAUTHORIZED))
}

func TestAdminService_LoginRejectedWhenUnconfigured(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewAdminService("", "", time.Hour, logger)

	_, err := svc.Login(context.Background(), "admin", "anything")
	assert.True(t, domain.IsCode(err, domain.EUNAUTHORIZED))
}

func TestAdminService_ExpiredSessionIsDropped(t *testing.T) {
	ctx := context.Background()
	svc := newAdminFixture(t)

	session, err := svc.Login(ctx, "admin", "correct-horse")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, err = svc.Validate(session.Token)
	assert.True(t, domain.IsCode(err, domain.EUNAUTHORIZED))

	// A second lookup fails the same way; the token is gone.
	svc.now = time.Now
	_, err = svc.Validate(session.Token)
	assert.True(t, domain.IsCode(err, domain.EUNAUTHORIZED))
}

func TestAdminService_Logout(t *testing.T) {
	ctx := context.Background()
	svc := newAdminFixture(t)

	session, err := svc.Login(ctx, "admin", "correct-horse")
	require.NoError(t, err)

	svc.Logout(session.Token)
	_, err = svc.Validate(session.Token)
	assert.True(t, domain.IsCode(err, domain.EUNAUTHORIZED))

	// Unknown token logout is a no-op.
	svc.Logout("missing")
}
