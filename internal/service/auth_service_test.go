package service

import (
	"testing"
)

func TestParentLogin(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	session, user, err := env.auth.Login("parent", "password123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if session.ID == "" {
		t.Error("expected a session id")
	}
	if !user.IsParent {
		t.Error("expected a parent account")
	}

	validated, err := env.auth.ValidateSession(session.ID)
	if err != nil {
		t.Fatalf("ValidateSession failed: %v", err)
	}
	if validated.ID != user.ID {
		t.Errorf("validated user %d, want %d", validated.ID, user.ID)
	}
}

func TestParentLoginRejections(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "parent", "wrong"},
		{"unknown user", "nobody", "password123"},
		{"child has no password login", "blue", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := env.auth.Login(tt.username, tt.password)
			if err != ErrInvalidCredentials {
				t.Errorf("Login(%q) error = %v, want ErrInvalidCredentials", tt.username, err)
			}
		})
	}
}

func TestChildLogin(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	token, child, err := env.auth.ChildLogin("blue")
	if err != nil {
		t.Fatalf("ChildLogin failed: %v", err)
	}
	if child.ChildAvatar != "blue" {
		t.Errorf("logged in child has avatar %q, want blue", child.ChildAvatar)
	}

	validated, err := env.auth.ValidateChildToken(token)
	if err != nil {
		t.Fatalf("ValidateChildToken failed: %v", err)
	}
	if validated.ID != child.ID {
		t.Errorf("validated child %d, want %d", validated.ID, child.ID)
	}
}

func TestChildLoginUnknown(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	if _, _, err := env.auth.ChildLogin("octarine"); err != ErrUnknownChild {
		t.Errorf("unknown identifier: err = %v, want ErrUnknownChild", err)
	}
	// A parent username never resolves to a child session.
	if _, _, err := env.auth.ChildLogin("parent"); err != ErrUnknownChild {
		t.Errorf("parent identifier: err = %v, want ErrUnknownChild", err)
	}
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	session, _, err := env.auth.Login("parent", "password123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if err := env.auth.Logout(session.ID); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	if _, err := env.auth.ValidateSession(session.ID); err != ErrSessionNotFound {
		t.Errorf("after logout: err = %v, want ErrSessionNotFound", err)
	}
}
