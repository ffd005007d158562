package validation

import "testing"

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{
			name:     "valid username",
			username: "parent",
			wantErr:  false,
		},
		{
			name:     "generated style username",
			username: "happy-dragon",
			wantErr:  false,
		},
		{
			name:     "digits allowed",
			username: "kid42",
			wantErr:  false,
		},
		{
			name:     "empty string",
			username: "",
			wantErr:  true,
		},
		{
			name:     "single character",
			username: "a",
			wantErr:  true,
		},
		{
			name:     "uppercase rejected",
			username: "Parent",
			wantErr:  true,
		},
		{
			name:     "spaces rejected",
			username: "my user",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUsername(%q) error = %v, wantErr %v", tt.username, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{
			name:    "valid email",
			email:   "test@example.com",
			wantErr: false,
		},
		{
			name:    "valid email with plus",
			email:   "user+tag@example.com",
			wantErr: false,
		},
		{
			name:    "missing @",
			email:   "testexample.com",
			wantErr: true,
		},
		{
			name:    "missing domain",
			email:   "test@",
			wantErr: true,
		},
		{
			name:    "empty string",
			email:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "valid password",
			password: "password123",
			wantErr:  false,
		},
		{
			name:     "empty password",
			password: "",
			wantErr:  true,
		},
		{
			name:     "too short",
			password: "short",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePassword(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
			}
		})
	}
}

func TestValidateChildName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "valid name",
			input:   "Blue",
			wantErr: false,
		},
		{
			name:    "empty name",
			input:   "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "single character",
			input:   "B",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChildName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateChildName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAvatar(t *testing.T) {
	for _, avatar := range []string{"red", "blue", "green", "Purple", " orange "} {
		if err := ValidateAvatar(avatar); err != nil {
			t.Errorf("ValidateAvatar(%q) = %v, want nil", avatar, err)
		}
	}

	for _, avatar := range []string{"", "magenta", "blu e"} {
		if err := ValidateAvatar(avatar); err == nil {
			t.Errorf("ValidateAvatar(%q) = nil, want error", avatar)
		}
	}
}

func TestValidateScore(t *testing.T) {
	tests := []struct {
		name    string
		score   int
		total   int
		wantErr bool
	}{
		{
			name:    "perfect score",
			score:   5,
			total:   5,
			wantErr: false,
		},
		{
			name:    "zero score",
			score:   0,
			total:   3,
			wantErr: false,
		},
		{
			name:    "negative score",
			score:   -1,
			total:   3,
			wantErr: true,
		},
		{
			name:    "score above total",
			score:   4,
			total:   3,
			wantErr: true,
		},
		{
			name:    "zero total",
			score:   0,
			total:   0,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScore(tt.score, tt.total)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateScore(%d, %d) error = %v, wantErr %v", tt.score, tt.total, err, tt.wantErr)
			}
		})
	}
}
