package memstore

import (
	"context"

	"cinema-checkout/internal/domain/reservation"
	"cinema-checkout/internal/infra"

	"github.com/google/uuid"
)

func errReservationNotFound(id uuid.UUID) error {
	return infra.NewError(infra.KindNotFound, "reservation "+id.String())
}

type reservationRepository struct {
	tx *tx
}

func (r *reservationRepository) Create(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.tx.store.reservations[res.ID()]; ok {
		return infra.NewError(infra.KindConflict, "reservation "+res.ID().String()+" already exists")
	}
	if _, ok := r.tx.reservations[res.ID()]; ok {
		return infra.NewError(infra.KindConflict, "reservation "+res.ID().String()+" already exists")
	}
	r.tx.reservations[res.ID()] = res.Clone()
	return nil
}

func (r *reservationRepository) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	if res, ok := r.tx.reservations[id]; ok {
		return res.Clone(), nil
	}
	res, ok := r.tx.store.reservations[id]
	if !ok {
		return nil, errReservationNotFound(id)
	}
	return res.Clone(), nil
}

func (r *reservationRepository) Save(_ context.Context, res *reservation.Reservation) error {
	_, staged := r.tx.reservations[res.ID()]
	_, stored := r.tx.store.reservations[res.ID()]
	if !staged && !stored {
		return errReservationNotFound(res.ID())
	}
	r.tx.reservations[res.ID()] = res.Clone()
	return nil
}
