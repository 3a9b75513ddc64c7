package memory

import (
	"context"

	"pizzacrm/internal/core/domain/model/courier"
	"pizzacrm/internal/core/domain/model/kernel"
	"pizzacrm/internal/pkg/errs"
)

// CourierRepository implements ports.CourierRepository on a state snapshot.
type CourierRepository struct {
	state *state
}

// Add stores a new courier. Returns a conflict error if the id is taken.
func (r *CourierRepository) Add(_ context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if _, ok := r.state.couriers[key]; ok {
		return errs.NewConflictError("courier", "already exists")
	}

	r.state.couriers[key] = courierFromDomain(aggregate)
	r.state.courierSeq = append(r.state.courierSeq, key)
	return nil
}

// Update overwrites an existing courier, keeping its position in the sequence.
func (r *CourierRepository) Update(_ context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if _, ok := r.state.couriers[key]; !ok {
		return errs.NewObjectNotFoundError("courier", key)
	}

	r.state.couriers[key] = courierFromDomain(aggregate)
	return nil
}

// Get retrieves a courier by id.
func (r *CourierRepository) Get(_ context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, ok := r.state.couriers[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("courier", id.String())
	}

	return courierToDomain(dto)
}

// GetAll retrieves every courier in insertion order.
func (r *CourierRepository) GetAll(_ context.Context) ([]*courier.Courier, error) {
	out := make([]*courier.Courier, 0, len(r.state.courierSeq))
	for _, key := range r.state.courierSeq {
		aggregate, err := courierToDomain(r.state.couriers[key])
		if err != nil {
			return nil, err
		}
		out = append(out, aggregate)
	}
	return out, nil
}

// GetAllFree retrieves every free courier in insertion order.
func (r *CourierRepository) GetAllFree(_ context.Context) ([]*courier.Courier, error) {
	out := make([]*courier.Courier, 0, len(r.state.courierSeq))
	for _, key := range r.state.courierSeq {
		dto := r.state.couriers[key]
		if dto.Status != courier.StatusFree.String() {
			continue
		}

		aggregate, err := courierToDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, aggregate)
	}
	return out, nil
}

// Remove deletes a courier by id.
func (r *CourierRepository) Remove(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	key := id.String()
	if _, ok := r.state.couriers[key]; !ok {
		return errs.NewObjectNotFoundError("courier", key)
	}

	delete(r.state.couriers, key)
	r.state.courierSeq = removeKey(r.state.courierSeq, key)
	return nil
}
