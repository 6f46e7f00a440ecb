package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/menstrualmentor/backend/internal/models"
	"github.com/menstrualmentor/backend/pkg/supabase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession() *supabase.Session {
	return &supabase.Session{
		AccessToken:  "at",
		RefreshToken: "rt",
		User:         supabase.User{ID: "user-1", Email: "a@b.c"},
	}
}

func TestSignup_CreatesProfile(t *testing.T) {
	profiles := newMockProfileRepository()
	svc := NewAuthService(&mockAuthenticator{session: testSession()}, profiles)

	age := 29
	resp, err := svc.Signup(context.Background(), &models.SignupRequest{
		Email: "a@b.c", Password: "secret1", Name: "Ada", Age: &age,
	})
	require.NoError(t, err)
	assert.Equal(t, "at", resp.AccessToken)
	require.NotNil(t, resp.Profile)
	assert.Equal(t, "Ada", resp.Profile.Name)
	assert.Equal(t, 29, *profiles.profiles["user-1"].Age)
}

func TestSignup_ProfileFailureStillSucceeds(t *testing.T) {
	profiles := newMockProfileRepository()
	profiles.createErr = errors.New("duplicate key")
	svc := NewAuthService(&mockAuthenticator{session: testSession()}, profiles)

	resp, err := svc.Signup(context.Background(), &models.SignupRequest{Email: "a@b.c", Password: "secret1", Name: "Ada"})
	require.NoError(t, err)
	assert.Nil(t, resp.Profile)
	assert.Equal(t, "user-1", resp.User.ID)
}

func TestLogin_RejectedCredentials(t *testing.T) {
	auth := &mockAuthenticator{err: &supabase.Error{StatusCode: http.StatusBadRequest, Body: "invalid_grant"}}
	svc := NewAuthService(auth, newMockProfileRepository())

	_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "a@b.c", Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UpstreamFailureIsNotCredentials(t *testing.T) {
	auth := &mockAuthenticator{err: &supabase.Error{StatusCode: http.StatusBadGateway}}
	svc := NewAuthService(auth, newMockProfileRepository())

	_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "a@b.c", Password: "x"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_AttachesProfile(t *testing.T) {
	profiles := newMockProfileRepository()
	profiles.profiles["user-1"] = &models.UserProfile{ID: "user-1", Name: "Ada"}
	svc := NewAuthService(&mockAuthenticator{session: testSession()}, profiles)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: "a@b.c", Password: "x"})
	require.NoError(t, err)
	require.NotNil(t, resp.Profile)
	assert.Equal(t, "Ada", resp.Profile.Name)
}
