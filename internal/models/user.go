package models

import "time"

// User represents an account in the system. Parent accounts carry a
// password hash; child accounts carry an avatar, a display name and a
// reference to their parent instead.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	IsParent     bool      `json:"isParent"`
	ChildName    string    `json:"childName,omitempty"`
	ChildAvatar  string    `json:"childAvatar,omitempty"`
	ParentID     *int64    `json:"parentId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsChildOf reports whether the user is a child account belonging to parentID.
func (u *User) IsChildOf(parentID int64) bool {
	return !u.IsParent && u.ParentID != nil && *u.ParentID == parentID
}

// Session represents an authenticated parent session
type Session struct {
	ID        string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired checks if the session has expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
