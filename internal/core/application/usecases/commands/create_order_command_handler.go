package commands

import (
	"context"
	"errors"

	"pizzacrm/internal/core/domain/model/order"
	"pizzacrm/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Each requested line is resolved against the catalog and the pizza's name
// and price are snapshotted into the order, so later menu edits never change
// what the customer agreed to pay.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	line, _ := NewOrderLine(margheritaID, 2)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), "Anna", "+7 (999) 111-22-33", "10 Pushkin St", []OrderLine{line})
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now pending and ready for the kitchen
type CreateOrderCommandHandler struct {
	uowFactory OrderCatalogUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderCatalogUoWFactory: the handler reads the catalog to build
// line snapshots and writes the resulting order in one transaction.
func NewCreateOrderCommandHandler(uowFactory OrderCatalogUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// A line whose pizza has vanished from the catalog is kept with an empty name
// and a zero price rather than failing the whole order; the staff can see and
// fix such lines in the console.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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
	items := make([]order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		var (
			pizzaName string
			price     float64
		)

		aggregate, err := pizzaRepo.Get(ctx, line.PizzaID())
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			// dangling reference fallback
		case err != nil:
			return err
		default:
			pizzaName = aggregate.Name()
			price = aggregate.Price()
		}

		item, err := order.NewItem(line.PizzaID(), pizzaName, line.Quantity(), price)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.CustomerName(), cmd.CustomerPhone(), cmd.CustomerAddress(), items)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
