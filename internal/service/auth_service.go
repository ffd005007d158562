package service

import (
	"errors"
	"fmt"
	"time"

	"kidlearn/internal/models"
	"kidlearn/internal/repository"
	"kidlearn/internal/security"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnknownChild       = errors.New("no child account matches")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
)

// AuthService handles authentication for both account kinds. Parents
// get database-backed sessions; children log in by picking their
// avatar and get a stateless signed token instead.
type AuthService struct {
	userRepo        *repository.UserRepository
	childTokens     *security.ChildTokenIssuer
	sessionDuration time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo *repository.UserRepository, childTokens *security.ChildTokenIssuer, sessionDuration time.Duration) *AuthService {
	return &AuthService{
		userRepo:        userRepo,
		childTokens:     childTokens,
		sessionDuration: sessionDuration,
	}
}

// Login authenticates a parent and creates a session
func (s *AuthService) Login(username, password string) (*models.Session, *models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil || !user.IsParent {
		return nil, nil, ErrInvalidCredentials
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, nil, ErrInvalidCredentials
	}

	sessionID := security.GenerateSessionID()
	expiresAt := time.Now().Add(s.sessionDuration)

	session, err := s.userRepo.CreateSession(sessionID, user.ID, expiresAt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, user, nil
}

// ChildLogin authenticates a child by username or avatar color. There
// is no password; the identifier alone selects the account, and the
// returned token carries the child id.
func (s *AuthService) ChildLogin(identifier string) (string, *models.User, error) {
	child, err := s.userRepo.GetByUsername(identifier)
	if err != nil {
		return "", nil, fmt.Errorf("failed to get user: %w", err)
	}
	if child == nil || child.IsParent {
		child, err = s.userRepo.GetChildByAvatar(identifier)
		if err != nil {
			return "", nil, fmt.Errorf("failed to get child by avatar: %w", err)
		}
	}
	if child == nil || child.IsParent {
		return "", nil, ErrUnknownChild
	}

	token, err := s.childTokens.Issue(child.ID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue child token: %w", err)
	}

	return token, child, nil
}

// ValidateSession checks if a parent session is valid and returns the user
func (s *AuthService) ValidateSession(sessionID string) (*models.User, error) {
	session, err := s.userRepo.GetSession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	if session.IsExpired() {
		_ = s.userRepo.DeleteSession(sessionID)
		return nil, ErrSessionExpired
	}

	user, err := s.userRepo.GetByID(session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrSessionNotFound
	}

	return user, nil
}

// ValidateChildToken checks a child token and returns the child account
func (s *AuthService) ValidateChildToken(token string) (*models.User, error) {
	childID, err := s.childTokens.Validate(token)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	child, err := s.userRepo.GetByID(childID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if child == nil || child.IsParent {
		return nil, ErrSessionNotFound
	}

	return child, nil
}

// Logout invalidates a parent session
func (s *AuthService) Logout(sessionID string) error {
	if err := s.userRepo.DeleteSession(sessionID); err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}
	return nil
}

// CleanupExpiredSessions removes expired sessions from the database
func (s *AuthService) CleanupExpiredSessions() error {
	if err := s.userRepo.DeleteExpiredSessions(); err != nil {
		return fmt.Errorf("failed to cleanup sessions: %w", err)
	}
	return nil
}
