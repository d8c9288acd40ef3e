package queries

import (
	"context"
	"time"

	"canteen-reservation/internal/domain/timeslot"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID          uuid.UUID `json:"id"`
	StudentID   uuid.UUID `json:"student_id"`
	CanteenID   uuid.UUID `json:"canteen_id"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	DurationMin int       `json:"duration"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PeriodView struct {
	Meal string `json:"meal"`
	From string `json:"from"`
	To   string `json:"to"`
}

type CanteenView struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Location     string       `json:"location"`
	Capacity     int          `json:"capacity"`
	WorkingHours []PeriodView `json:"working_hours"`
}

type StudentView struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	IsAdmin bool      `json:"is_admin"`
}

type SlotAvailability struct {
	Date              string `json:"date"`
	Meal              string `json:"meal"`
	StartTime         string `json:"start_time"`
	RemainingCapacity int    `json:"remaining_capacity"`
}

type CanteenStatusView struct {
	CanteenID uuid.UUID          `json:"canteen_id"`
	Name      string             `json:"name"`
	Slots     []SlotAvailability `json:"slots"`
}

// ReservationReadStore is the read side of reservation record storage.
type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// FindByStudentInRange returns the student's reservations with
	// date in [start, end], ordered by (date asc, time asc).
	FindByStudentInRange(ctx context.Context, studentID uuid.UUID, start, end timeslot.Date) ([]*ReservationView, error)
}

// OccupancyReader supplies committed tick occupancy for availability reads.
// Reads are read-committed; they never observe partial increments.
type OccupancyReader interface {
	// Occupancies returns the occupied tick counts of one canteen day.
	// Ticks with zero occupancy may be absent from the map.
	Occupancies(ctx context.Context, canteenID uuid.UUID, date timeslot.Date) (map[timeslot.TimeOfDay]int, error)
}
