package memory

import (
	"context"

	"pizzacrm/internal/core/domain/model/kernel"
	"pizzacrm/internal/core/domain/model/pizza"
	"pizzacrm/internal/pkg/errs"
)

// PizzaRepository implements ports.PizzaRepository on a state snapshot.
type PizzaRepository struct {
	state *state
}

// Add stores a new pizza. Returns a conflict error if the id is taken.
func (r *PizzaRepository) Add(_ context.Context, aggregate *pizza.Pizza) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if _, ok := r.state.pizzas[key]; ok {
		return errs.NewConflictError("pizza", "already exists")
	}

	r.state.pizzas[key] = pizzaFromDomain(aggregate)
	r.state.pizzaSeq = append(r.state.pizzaSeq, key)
	return nil
}

// Update overwrites an existing pizza, keeping its position in the sequence.
func (r *PizzaRepository) Update(_ context.Context, aggregate *pizza.Pizza) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if _, ok := r.state.pizzas[key]; !ok {
		return errs.NewObjectNotFoundError("pizza", key)
	}

	r.state.pizzas[key] = pizzaFromDomain(aggregate)
	return nil
}

// Get retrieves a pizza by id.
func (r *PizzaRepository) Get(_ context.Context, id kernel.UUID) (*pizza.Pizza, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, ok := r.state.pizzas[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("pizza", id.String())
	}

	return pizzaToDomain(dto)
}

// GetAll retrieves every pizza in insertion order.
func (r *PizzaRepository) GetAll(_ context.Context) ([]*pizza.Pizza, error) {
	out := make([]*pizza.Pizza, 0, len(r.state.pizzaSeq))
	for _, key := range r.state.pizzaSeq {
		aggregate, err := pizzaToDomain(r.state.pizzas[key])
		if err != nil {
			return nil, err
		}
		out = append(out, aggregate)
	}
	return out, nil
}

// Remove deletes a pizza by id.
func (r *PizzaRepository) Remove(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	key := id.String()
	if _, ok := r.state.pizzas[key]; !ok {
		return errs.NewObjectNotFoundError("pizza", key)
	}

	delete(r.state.pizzas, key)
	r.state.pizzaSeq = removeKey(r.state.pizzaSeq, key)
	return nil
}
