package canteen

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrNameTooLong     = errors.New("name cannot exceed 100 characters")
	ErrEmptyLocation   = errors.New("location cannot be empty")
	ErrLocationTooLong = errors.New("location cannot exceed 200 characters")
	ErrInvalidCapacity = errors.New("capacity must be a positive integer")
	ErrCapacityTooHigh = errors.New("capacity cannot exceed 10000")
)

const (
	MaxNameLength     = 100
	MaxLocationLength = 200
	MaxCapacity       = 10000
)

type Canteen struct {
	id        uuid.UUID
	name      string
	location  string
	capacity  int
	hours     WorkingHours
	ownerID   uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func NewCanteen(name, location string, capacity int, hours WorkingHours, ownerID uuid.UUID) (*Canteen, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}

	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrEmptyLocation
	}
	if len(location) > MaxLocationLength {
		return nil, ErrLocationTooLong
	}

	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if capacity > MaxCapacity {
		return nil, ErrCapacityTooHigh
	}

	if len(hours) == 0 {
		return nil, ErrNoWorkingHours
	}

	return &Canteen{
		id:       uuid.New(),
		name:     name,
		location: location,
		capacity: capacity,
		hours:    hours,
		ownerID:  ownerID,
	}, nil
}

func ReconstructCanteen(
	id uuid.UUID,
	name, location string,
	capacity int,
	hours WorkingHours,
	ownerID uuid.UUID,
	createdAt, updatedAt time.Time,
) *Canteen {
	return &Canteen{
		id:        id,
		name:      name,
		location:  location,
		capacity:  capacity,
		hours:     hours,
		ownerID:   ownerID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ApplyUpdate applies a partial update. Nil fields are left unchanged;
// hours, when given, replace the whole schedule. Validation matches NewCanteen.
func (c *Canteen) ApplyUpdate(name, location *string, capacity *int, hours WorkingHours) error {
	if name != nil {
		n := strings.TrimSpace(*name)
		if n == "" {
			return ErrEmptyName
		}
		if len(n) > MaxNameLength {
			return ErrNameTooLong
		}
		c.name = n
	}
	if location != nil {
		l := strings.TrimSpace(*location)
		if l == "" {
			return ErrEmptyLocation
		}
		if len(l) > MaxLocationLength {
			return ErrLocationTooLong
		}
		c.location = l
	}
	if capacity != nil {
		if *capacity < 1 {
			return ErrInvalidCapacity
		}
		if *capacity > MaxCapacity {
			return ErrCapacityTooHigh
		}
		c.capacity = *capacity
	}
	if hours != nil {
		c.hours = hours
	}
	return nil
}

func (c *Canteen) ID() uuid.UUID       { return c.id }
func (c *Canteen) Name() string        { return c.name }
func (c *Canteen) Location() string    { return c.location }
func (c *Canteen) Capacity() int       { return c.capacity }
func (c *Canteen) Hours() WorkingHours { return c.hours }
func (c *Canteen) OwnerID() uuid.UUID  { return c.ownerID }
func (c *Canteen) CreatedAt() time.Time { return c.createdAt }
func (c *Canteen) UpdatedAt() time.Time { return c.updatedAt }
