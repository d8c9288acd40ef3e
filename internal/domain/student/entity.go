package student

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrNameTooLong  = errors.New("name cannot exceed 100 characters")
	ErrInvalidEmail = errors.New("invalid email format")
)

const MaxNameLength = 100

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Student struct {
	id        uuid.UUID
	name      string
	email     string
	isAdmin   bool
	createdAt time.Time
}

func NewStudent(name, email string, isAdmin bool) (*Student, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}

	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	return &Student{
		id:      uuid.New(),
		name:    name,
		email:   email,
		isAdmin: isAdmin,
	}, nil
}

func ReconstructStudent(id uuid.UUID, name, email string, isAdmin bool, createdAt time.Time) *Student {
	return &Student{
		id:        id,
		name:      name,
		email:     email,
		isAdmin:   isAdmin,
		createdAt: createdAt,
	}
}

func (s *Student) ID() uuid.UUID        { return s.id }
func (s *Student) Name() string         { return s.name }
func (s *Student) Email() string        { return s.email }
func (s *Student) IsAdmin() bool        { return s.isAdmin }
func (s *Student) CreatedAt() time.Time { return s.createdAt }
