package memstore

import (
	"context"

	"cinema-checkout/internal/domain/seat"
	"cinema-checkout/internal/infra"

	"github.com/google/uuid"
)

type seatRepository struct {
	tx *tx
}

func (r *seatRepository) Exists(_ context.Context, id seat.ID) bool {
	_, ok := r.tx.store.owners[id]
	return ok
}

// Owner reports the reservation currently holding the seat.
func (r *seatRepository) Owner(_ context.Context, id seat.ID) (uuid.UUID, bool) {
	owner, ok := r.tx.owners[id]
	if !ok {
		owner, ok = r.tx.store.owners[id]
	}
	if !ok || owner == uuid.Nil {
		return uuid.Nil, false
	}
	return owner, true
}

func (r *seatRepository) Assign(ctx context.Context, id seat.ID, owner uuid.UUID) error {
	if !r.Exists(ctx, id) {
		return infra.NewError(infra.KindNotFound, "seat "+id.String())
	}
	if current, held := r.Owner(ctx, id); held && current != owner {
		return infra.NewError(infra.KindConflict, "seat "+id.String()+" is taken")
	}
	r.tx.owners[id] = owner
	return nil
}

func (r *seatRepository) Release(ctx context.Context, id seat.ID) error {
	if !r.Exists(ctx, id) {
		return infra.NewError(infra.KindNotFound, "seat "+id.String())
	}
	r.tx.owners[id] = uuid.Nil
	return nil
}
