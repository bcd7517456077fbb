package session

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"skillhub/internal/gateway"
	"skillhub/internal/models"
)

// Session is the current user's identity for the lifetime of the client.
// Pages cannot function without it, so an absent session escalates to a
// login redirect instead of an inline error.
type Session struct {
	UserID string
	Name   string
	Email  string
	Avatar string
}

// LoginRequiredError tells the caller to navigate to the login flow.
type LoginRequiredError struct {
	LoginURL string
}

// Error implements the error interface
func (e *LoginRequiredError) Error() string {
	return fmt.Sprintf("session: login required (login at %s)", e.LoginURL)
}

// IsLoginRequired checks if an error demands the login redirect.
func IsLoginRequired(err error) bool {
	_, ok := err.(*LoginRequiredError)
	return ok
}

// Start performs the auth/session check and builds the Session. An
// unauthenticated response becomes a LoginRequiredError carrying loginURL;
// any other failure is returned as-is.
func Start(ctx context.Context, gw *gateway.Client, loginURL string, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	check, err := gw.CheckAuth(ctx)
	if err != nil {
		if gateway.IsUnauthenticated(err) {
			logger.Info("no active session, login required")
			return nil, &LoginRequiredError{LoginURL: loginURL}
		}
		return nil, err
	}

	sess := &Session{
		UserID: check.Sub,
		Name:   check.Name,
		Email:  check.Email,
		Avatar: check.Picture,
	}
	logger.Info("session established",
		zap.String("name", sess.Name),
		zap.String("email", sess.Email),
	)
	return sess, nil
}

// Author returns the denormalized author copy embedded in entities the user
// creates.
func (s *Session) Author() models.Author {
	return models.Author{Name: s.Name, Avatar: s.Avatar}
}

// Owns reports whether the session's display name matches an entity's
// author. Display-layer gating only: the server's 403 is the authoritative
// deny and is always handled regardless of what this returns.
func (s *Session) Owns(author models.Author) bool {
	return author.Name == s.Name
}
