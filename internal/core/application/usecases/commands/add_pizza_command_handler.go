package commands

import (
	"context"

	"pizzacrm/internal/core/domain/model/pizza"
)

// AddPizzaCommandHandler handles the business logic for adding catalog pizzas.
// New pizzas always enter the menu as available.
type AddPizzaCommandHandler struct {
	uowFactory PizzaUoWFactory
}

// NewAddPizzaCommandHandler creates a handler for pizza creation operations.
// Requires a PizzaUoWFactory for transactional storage.
func NewAddPizzaCommandHandler(uowFactory PizzaUoWFactory) AddPizzaCommandHandler {
	return AddPizzaCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pizza creation command.
// Uses a transaction to ensure the pizza is properly stored or rolled back on error.
func (h AddPizzaCommandHandler) Handle(ctx context.Context, cmd AddPizzaCommand) error {
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
	aggregate, err := pizza.NewPizza(cmd.PizzaID(), cmd.Name(), cmd.Description(), cmd.Price(), cmd.Image())
	if err != nil {
		return err
	}

	if err = pizzaRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
