package memstore

import (
	"context"
	"sort"

	"canteen-reservation/internal/domain/reservation"
	"canteen-reservation/internal/domain/timeslot"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/usecase/queries"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// reservationRepo runs under the lock Within already holds.
type reservationRepo struct {
	store *Store
}

var _ shared.ReservationRepository = (*reservationRepo)(nil)

func (r *reservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	now := r.store.clock.Now()
	r.store.reservations[res.ID()] = reservation.ReconstructReservation(
		res.ID(), res.StudentID(), res.CanteenID(),
		res.Date(), res.Start(), res.Duration(), res.Status(),
		now, now,
	)
	return nil
}

func (r *reservationRepo) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.store.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", errNotFound, infra.KindNotFound)
	}
	return copyReservation(res), nil
}

func (r *reservationRepo) FindActiveByStudentOnDate(_ context.Context, studentID uuid.UUID, date timeslot.Date) ([]*reservation.Reservation, error) {
	var out []*reservation.Reservation
	for _, res := range r.store.reservations {
		if res.StudentID() == studentID && res.Date() == date && res.IsActive() {
			out = append(out, copyReservation(res))
		}
	}
	return out, nil
}

func (r *reservationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status reservation.Status) error {
	res, ok := r.store.reservations[id]
	if !ok {
		return infra.WrapRepoErr("reservation not found", errNotFound, infra.KindNotFound)
	}
	r.store.reservations[id] = reservation.ReconstructReservation(
		res.ID(), res.StudentID(), res.CanteenID(),
		res.Date(), res.Start(), res.Duration(), status,
		res.CreatedAt(), r.store.clock.Now(),
	)
	return nil
}

func copyReservation(res *reservation.Reservation) *reservation.Reservation {
	return reservation.ReconstructReservation(
		res.ID(), res.StudentID(), res.CanteenID(),
		res.Date(), res.Start(), res.Duration(), res.Status(),
		res.CreatedAt(), res.UpdatedAt(),
	)
}

// ReservationViews adapts the store to the reservation read side.
type ReservationViews struct {
	store *Store
}

func NewReservationViews(s *Store) *ReservationViews {
	return &ReservationViews{store: s}
}

var _ queries.ReservationReadStore = (*ReservationViews)(nil)

func (v *ReservationViews) FindByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()

	res, ok := v.store.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", errNotFound, infra.KindNotFound)
	}
	return viewOf(res), nil
}

func (v *ReservationViews) FindByStudentInRange(_ context.Context, studentID uuid.UUID, start, end timeslot.Date) ([]*queries.ReservationView, error) {
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()

	var out []*queries.ReservationView
	for _, res := range v.store.reservations {
		if res.StudentID() != studentID {
			continue
		}
		if res.Date().Before(start) || res.Date().After(end) {
			continue
		}
		out = append(out, viewOf(res))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

func viewOf(res *reservation.Reservation) *queries.ReservationView {
	return &queries.ReservationView{
		ID:          res.ID(),
		StudentID:   res.StudentID(),
		CanteenID:   res.CanteenID(),
		Date:        res.Date().String(),
		Time:        res.Start().String(),
		DurationMin: res.Duration().Minutes(),
		Status:      res.Status().String(),
		CreatedAt:   res.CreatedAt(),
		UpdatedAt:   res.UpdatedAt(),
	}
}
