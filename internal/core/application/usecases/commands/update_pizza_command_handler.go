package commands

import (
	"context"
	"errors"

	"pizzacrm/internal/pkg/errs"
)

// UpdatePizzaCommandHandler applies partial edits to a catalog pizza.
// Patching an unknown pizza is a silent no-op: the record may have been
// deleted between the staff member reading the menu and submitting the edit.
type UpdatePizzaCommandHandler struct {
	uowFactory PizzaUoWFactory
}

// NewUpdatePizzaCommandHandler creates a handler for pizza edit operations.
// Requires a PizzaUoWFactory for transactional storage.
func NewUpdatePizzaCommandHandler(uowFactory PizzaUoWFactory) UpdatePizzaCommandHandler {
	return UpdatePizzaCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pizza edit command.
// Loads the aggregate, applies only the fields present in the command, and
// stores the result. Returns nil without changes if the pizza does not exist.
func (h UpdatePizzaCommandHandler) Handle(ctx context.Context, cmd UpdatePizzaCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pizzaRepo := uow.PizzaRepository()
	aggregate, err := pizzaRepo.Get(ctx, cmd.PizzaID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if cmd.Name() != nil {
		if err = aggregate.Rename(*cmd.Name()); err != nil {
			return err
		}
	}
	if cmd.Description() != nil {
		aggregate.SetDescription(*cmd.Description())
	}
	if cmd.Price() != nil {
		if err = aggregate.ChangePrice(*cmd.Price()); err != nil {
			return err
		}
	}
	if cmd.Image() != nil {
		aggregate.SetImage(*cmd.Image())
	}
	if cmd.Available() != nil {
		aggregate.SetAvailable(*cmd.Available())
	}

	if err = pizzaRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
