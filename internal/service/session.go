package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/msomdec/job-board/internal/domain"
)

const sessionTTL = 24 * time.Hour

// SessionService logs users in by email and issues signed session tokens.
// A token only points at a user; the user record is looked up on every
// request so the session never holds a stale copy.
type SessionService struct {
	store  domain.Store
	secret []byte
	now    func() time.Time
}

// NewSessionService creates a new SessionService.
func NewSessionService(store domain.Store, secret string) *SessionService {
	return &SessionService{
		store:  store,
		secret: []byte(secret),
		now:    time.Now,
	}
}

// LoginResult is the outcome of a login.
type LoginResult struct {
	User       *domain.User
	Token      string
	Registered bool // true when the email was unknown and a user was created
}

// Login finds the user with the given email, registering a free job seeker
// if none exists, and returns a session token for it.
func (s *SessionService) Login(ctx context.Context, email string) (*LoginResult, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", domain.ErrInvalidInput)
	}

	res := &LoginResult{}
	user, err := s.store.Users().Find(ctx, email)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		user = domain.User{
			Email:        email,
			Role:         domain.RoleJobSeeker,
			Subscription: domain.SubscriptionFree,
		}
		if err := s.store.Users().Upsert(ctx, user); err != nil {
			return nil, fmt.Errorf("register user: %w", err)
		}
		res.Registered = true
	default:
		return nil, fmt.Errorf("get user: %w", err)
	}

	token, err := s.IssueToken(email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	res.User = &user
	res.Token = token
	return res, nil
}

// IssueToken returns a signed session token pointing at email.
func (s *SessionService) IssueToken(email string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken parses a session token and returns the email it points at.
func (s *SessionService) ValidateToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return "", domain.ErrUnauthorized
	}
	if claims.Subject == "" {
		return "", domain.ErrUnauthorized
	}
	return claims.Subject, nil
}

// Current resolves a session token to the live user record.
func (s *SessionService) Current(ctx context.Context, tokenString string) (*domain.User, error) {
	email, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	user, err := s.store.Users().Find(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}
