package commands

import (
	"context"
	"errors"

	"pizzacrm/internal/core/domain/model/courier"
	"pizzacrm/internal/core/domain/services"
	"pizzacrm/internal/pkg/errs"
)

// AssignCourierCommandHandler orchestrates binding a courier to an order.
// The previous courier of the order, if different, is released back to the
// free pool, and the order is forced into the delivering status. A busy
// target courier is rebound without complaint: the staff decision wins.
//
// If either the order or the courier no longer exists the command is a silent
// no-op, so a stale console screen cannot half-apply an assignment.
//
// Example:
//
//	handler := NewAssignCourierCommandHandler(uowFactory)
//	cmd, _ := NewAssignCourierCommand(orderID, courierID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("assignment failed: %w", err)
//	}
//	// Order is delivering, courier is busy, previous courier (if any) is free
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignCourierCommandHandler creates a handler for courier assignment operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignCourierCommandHandler(uowFactory UoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier assignment command.
// Loads the order, its previous courier, and the target courier, delegates the
// paired mutation to the assignment service, and stores all touched aggregates
// within a single transaction.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) error {
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
	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	target, err := courierRepo.Get(ctx, cmd.CourierID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	var previous *courier.Courier
	if prevID := aggregate.CourierID(); prevID != nil && !prevID.IsEqual(target.ID()) {
		previous, err = courierRepo.Get(ctx, *prevID)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
	}

	if err = services.NewAssignmentService().Assign(aggregate, target, previous); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, target); err != nil {
		return err
	}

	if previous != nil {
		if err = courierRepo.Update(ctx, previous); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
