package commands

import (
	"context"
	"errors"

	"pizzacrm/internal/core/domain/services"
	"pizzacrm/internal/pkg/errs"
)

// DeleteOrderCommandHandler removes orders from the store.
// The courier bound to the order is released first, so deletion can never
// strand a courier in the busy state. Deleting an unknown order is a silent
// no-op.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order removal operations.
// Requires a UoWFactory: removal touches the courier roster as well.
func NewDeleteOrderCommandHandler(uowFactory UoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order removal command.
// Releases the bound courier, removes the order, and commits both changes in
// one transaction. Returns nil without changes if the order does not exist.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if aggregate.CourierID() != nil {
		courierRepo := uow.CourierRepository()
		bound, getErr := courierRepo.Get(ctx, *aggregate.CourierID())
		switch {
		case errors.Is(getErr, errs.ErrObjectNotFound):
			// courier snapshot is historical, nothing to release
		case getErr != nil:
			return getErr
		default:
			if err = services.NewAssignmentService().Release(aggregate, bound); err != nil {
				return err
			}
			if err = courierRepo.Update(ctx, bound); err != nil {
				return err
			}
		}
	}

	if err = orderRepo.Remove(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
