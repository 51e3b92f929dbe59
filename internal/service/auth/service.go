package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sukhraj1322/short-video-platform/internal/domain"
	"github.com/sukhraj1322/short-video-platform/internal/errs"
	"github.com/sukhraj1322/short-video-platform/internal/repository"
	"github.com/sukhraj1322/short-video-platform/internal/service/activity"
)

type Service interface {
	Signup(ctx context.Context, input domain.SignupInput) (*domain.User, error)
	// Login verifies the credentials and writes the single session row,
	// overwriting any prior session. The returned token is the caller's
	// bearer credential; only its hash is stored.
	Login(ctx context.Context, input domain.LoginInput) (*domain.User, string, error)
	Logout(ctx context.Context) error
	// CurrentUser resolves the active session to its user. Both a missing
	// session and a dangling user id yield (nil, nil), never an error.
	CurrentUser(ctx context.Context) (*domain.User, error)
	IsAuthenticated(ctx context.Context) (bool, error)
	// CurrentUserFromToken additionally checks the presented token against
	// the stored session hash. Used by the auth middleware.
	CurrentUserFromToken(ctx context.Context, token string) (*domain.User, error)
}

type service struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	activity    activity.Service
}

func NewService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, activitySvc activity.Service) Service {
	return &service{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		activity:    activitySvc,
	}
}

func (s *service) Signup(ctx context.Context, input domain.SignupInput) (*domain.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", errs.ErrInvalidCredentials)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        strings.TrimSpace(input.Email),
		PasswordHash: string(hashed),
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique indexes on username and email are the source of truth
		// for "already exists"; no pre-check read.
		if errors.Is(err, errs.ErrAlreadyExists) {
			return nil, errs.ErrAlreadyExists
		}
		return nil, err
	}

	s.activity.Append(ctx, domain.LogSignup, fmt.Sprintf("user %q signed up", user.Username), map[string]string{
		"user_id": user.ID.String(),
	})

	return user, nil
}

func (s *service) Login(ctx context.Context, input domain.LoginInput) (*domain.User, string, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		// Burn a hash comparison anyway so a missing username costs the same
		// as a wrong password.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(input.Password))
		return nil, "", errs.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, "", errs.ErrInvalidCredentials
	}

	token := uuid.New().String()
	session := &domain.Session{
		UserID:    user.ID,
		TokenHash: hashToken(token),
		CreatedAt: time.Now(),
	}
	if err := s.sessionRepo.Replace(ctx, session); err != nil {
		return nil, "", err
	}

	s.activity.Append(ctx, domain.LogLogin, fmt.Sprintf("user %q logged in", user.Username), map[string]string{
		"user_id": user.ID.String(),
	})

	return user, token, nil
}

func (s *service) Logout(ctx context.Context) error {
	session, err := s.sessionRepo.Get(ctx)
	if err != nil {
		return err
	}
	if session == nil {
		return nil
	}

	s.activity.Append(ctx, domain.LogLogout, fmt.Sprintf("user %s logged out", session.UserID), map[string]string{
		"user_id": session.UserID.String(),
	})

	return s.sessionRepo.Delete(ctx)
}

func (s *service) CurrentUser(ctx context.Context) (*domain.User, error) {
	session, err := s.sessionRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	return s.userRepo.GetByID(ctx, session.UserID)
}

func (s *service) IsAuthenticated(ctx context.Context) (bool, error) {
	session, err := s.sessionRepo.Get(ctx)
	if err != nil {
		return false, err
	}
	return session != nil, nil
}

func (s *service) CurrentUserFromToken(ctx context.Context, token string) (*domain.User, error) {
	session, err := s.sessionRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	presented := hashToken(token)
	if subtle.ConstantTimeCompare([]byte(presented), []byte(session.TokenHash)) != 1 {
		return nil, nil
	}
	return s.userRepo.GetByID(ctx, session.UserID)
}

// dummyHash is a throwaway bcrypt digest compared against when the username
// does not exist, so both failure paths take a hash verification.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
