package commands

import (
	"context"
	"errors"

	"pizzacrm/internal/pkg/errs"
)

// ErrCourierHasActiveOrder is returned when deleting a courier that is still
// bound to an order. The courier must be released first, by completing or
// cancelling the order or by reassigning it.
var ErrCourierHasActiveOrder = errs.NewConflictError("courier", "has an active order")

// DeleteCourierCommandHandler removes couriers from the roster.
// A busy courier cannot be removed: doing so would leave its order pointing at
// a courier that no longer exists. Deleting an unknown courier is a silent
// no-op.
//
// Example:
//
//	handler := NewDeleteCourierCommandHandler(uowFactory)
//	cmd, _ := NewDeleteCourierCommand(courierID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // Courier is still delivering an order
//	    return
//	}
type DeleteCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewDeleteCourierCommandHandler creates a handler for courier removal operations.
// Requires a CourierUoWFactory for transactional storage.
func NewDeleteCourierCommandHandler(uowFactory CourierUoWFactory) DeleteCourierCommandHandler {
	return DeleteCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier removal command.
// Returns ErrCourierHasActiveOrder if the courier is busy, and nil without
// changes if the courier does not exist.
func (h DeleteCourierCommandHandler) Handle(ctx context.Context, cmd DeleteCourierCommand) error {
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

	courierRepo := uow.CourierRepository()
	aggregate, err := courierRepo.Get(ctx, cmd.CourierID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if aggregate.IsBusy() {
		return ErrCourierHasActiveOrder
	}

	if err = courierRepo.Remove(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
