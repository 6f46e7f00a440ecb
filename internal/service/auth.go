package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/menstrualmentor/backend/internal/logger"
	"github.com/menstrualmentor/backend/internal/models"
	"github.com/menstrualmentor/backend/internal/repository"
	"github.com/menstrualmentor/backend/pkg/supabase"
)

// Authenticator is the Supabase Auth surface the auth service needs
type Authenticator interface {
	SignInWithPassword(ctx context.Context, email, password string) (*supabase.Session, error)
	SignUp(ctx context.Context, email, password string) (*supabase.Session, error)
}

type authService struct {
	auth        Authenticator
	profileRepo repository.ProfileRepository
}

// NewAuthService creates a new auth service
func NewAuthService(auth Authenticator, profileRepo repository.ProfileRepository) AuthService {
	return &authService{
		auth:        auth,
		profileRepo: profileRepo,
	}
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	session, err := s.auth.SignInWithPassword(ctx, req.Email, req.Password)
	if err != nil {
		var apiErr *supabase.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to login: %w", err)
	}

	resp := newAuthResponse(session)
	if profile, err := s.profileRepo.GetByID(ctx, session.User.ID); err == nil {
		resp.Profile = profile
	}
	return resp, nil
}

func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	session, err := s.auth.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to signup: %w", err)
	}

	resp := newAuthResponse(session)

	profile, err := s.profileRepo.Create(ctx, &models.UserProfile{
		ID:   session.User.ID,
		Name: req.Name,
		Age:  req.Age,
	})
	if err != nil {
		// The auth user already exists at this point; the profile can be
		// recreated later, so signup still succeeds.
		logger.Ctx(ctx).Warn("failed to create user profile",
			logger.String("user_id", session.User.ID),
			logger.Err(err),
		)
		return resp, nil
	}

	resp.Profile = profile
	return resp, nil
}

func (s *authService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	return s.profileRepo.GetByID(ctx, userID)
}

func newAuthResponse(session *supabase.Session) *models.AuthResponse {
	return &models.AuthResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		User: models.User{
			ID:    session.User.ID,
			Email: session.User.Email,
		},
	}
}
