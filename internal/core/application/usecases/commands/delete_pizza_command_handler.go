package commands

import (
	"context"
	"errors"

	"pizzacrm/internal/pkg/errs"
)

// DeletePizzaCommandHandler removes pizzas from the catalog.
// Deleting an unknown pizza is a silent no-op. Order lines referencing the
// deleted pizza are untouched: they carry their own name and price snapshot.
type DeletePizzaCommandHandler struct {
	uowFactory PizzaUoWFactory
}

// NewDeletePizzaCommandHandler creates a handler for pizza removal operations.
// Requires a PizzaUoWFactory for transactional storage.
func NewDeletePizzaCommandHandler(uowFactory PizzaUoWFactory) DeletePizzaCommandHandler {
	return DeletePizzaCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pizza removal command.
// Returns nil without changes if the pizza does not exist.
func (h DeletePizzaCommandHandler) Handle(ctx context.Context, cmd DeletePizzaCommand) error {
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

	err := uow.PizzaRepository().Remove(ctx, cmd.PizzaID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
