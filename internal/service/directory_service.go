package service

import (
	"errors"
	"fmt"
	"log"

	"kidlearn/internal/content"
	"kidlearn/internal/credentials"
	"kidlearn/internal/models"
	"kidlearn/internal/repository"
	"kidlearn/internal/security"
	"kidlearn/internal/validation"
)

var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrUserNotFound  = errors.New("user not found")
)

// Default accounts created on first startup so the app is usable
// without any signup flow.
const (
	defaultParentUsername = "parent"
	defaultParentPassword = "password123"
)

var defaultChildAvatars = []string{"red", "blue", "green"}

// DirectoryService manages the parent and child account directory
type DirectoryService struct {
	userRepo *repository.UserRepository
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(userRepo *repository.UserRepository) *DirectoryService {
	return &DirectoryService{userRepo: userRepo}
}

// UserByID retrieves an account by id
func (s *DirectoryService) UserByID(id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ChildrenOf retrieves all child accounts belonging to a parent
func (s *DirectoryService) ChildrenOf(parentID int64) ([]models.User, error) {
	children, err := s.userRepo.ChildrenOf(parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}
	return children, nil
}

// CreateChild creates a new child account under the given parent. When
// username is empty a kid-friendly one is generated.
func (s *DirectoryService) CreateChild(parentID int64, childName, avatar, username string) (*models.User, error) {
	if err := validation.ValidateChildName(childName); err != nil {
		return nil, err
	}
	if err := validation.ValidateAvatar(avatar); err != nil {
		return nil, err
	}

	if username == "" {
		generated, err := s.generateUniqueUsername()
		if err != nil {
			return nil, err
		}
		username = generated
	} else {
		if err := validation.ValidateUsername(username); err != nil {
			return nil, err
		}
		existing, err := s.userRepo.GetByUsername(username)
		if err != nil {
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
		if existing != nil {
			return nil, ErrUsernameTaken
		}
	}

	child, err := s.userRepo.CreateUser(&models.User{
		Username:    username,
		ChildName:   childName,
		ChildAvatar: avatar,
		ParentID:    &parentID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create child: %w", err)
	}

	return child, nil
}

// SeedDefaultAccounts creates the default parent and children on an
// empty database. Safe to call on every startup; an already populated
// directory is left untouched.
func (s *DirectoryService) SeedDefaultAccounts() error {
	count, err := s.userRepo.CountUsers()
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	passwordHash, err := security.HashPassword(defaultParentPassword)
	if err != nil {
		return fmt.Errorf("failed to hash default password: %w", err)
	}

	parent, err := s.userRepo.CreateUser(&models.User{
		Username:     defaultParentUsername,
		PasswordHash: passwordHash,
		IsParent:     true,
	})
	if err != nil {
		return fmt.Errorf("failed to seed parent: %w", err)
	}

	for _, avatar := range defaultChildAvatars {
		_, err := s.userRepo.CreateUser(&models.User{
			Username:    avatar,
			ChildName:   content.Capitalize(avatar),
			ChildAvatar: avatar,
			ParentID:    &parent.ID,
		})
		if err != nil {
			return fmt.Errorf("failed to seed child %s: %w", avatar, err)
		}
	}

	log.Printf("Seeded default accounts: parent %q and %d children", defaultParentUsername, len(defaultChildAvatars))
	return nil
}

func (s *DirectoryService) generateUniqueUsername() (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		username, err := credentials.GenerateChildUsername()
		if err != nil {
			return "", fmt.Errorf("failed to generate username: %w", err)
		}

		existing, err := s.userRepo.GetByUsername(username)
		if err != nil {
			return "", fmt.Errorf("failed to check username: %w", err)
		}
		if existing == nil {
			return username, nil
		}
	}
	return "", errors.New("could not generate a free username")
}
