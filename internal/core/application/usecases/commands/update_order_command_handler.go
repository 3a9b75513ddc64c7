package commands

import (
	"context"
	"errors"

	"pizzacrm/internal/core/domain/services"
	"pizzacrm/internal/pkg/errs"
)

// UpdateOrderCommandHandler applies customer and status edits to an order.
// Moving an order to a final status (completed or cancelled) releases the
// courier bound to it, so the courier immediately returns to the free pool.
// Patching an unknown order is a silent no-op.
//
// Example:
//
//	handler := NewUpdateOrderCommandHandler(uowFactory)
//	completed := order.StatusCompleted
//	cmd, _ := NewUpdateOrderCommand(orderID, nil, nil, nil, &completed)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order update failed: %w", err)
//	}
//	// Order is completed; its courier (if any) is free again
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order edit operations.
// Requires a UoWFactory: final statuses touch the courier roster as well.
func NewUpdateOrderCommandHandler(uowFactory UoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order edit command.
// Loads the aggregate, applies only the fields present in the command,
// releases the bound courier when the new status is final, and stores both
// aggregates in one transaction. Returns nil without changes if the order
// does not exist.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	if cmd.CustomerName() != nil {
		aggregate.SetCustomerName(*cmd.CustomerName())
	}
	if cmd.CustomerPhone() != nil {
		aggregate.SetCustomerPhone(*cmd.CustomerPhone())
	}
	if cmd.CustomerAddress() != nil {
		aggregate.SetCustomerAddress(*cmd.CustomerAddress())
	}

	if cmd.Status() != nil {
		if err = aggregate.ChangeStatus(*cmd.Status()); err != nil {
			return err
		}

		if cmd.Status().IsFinal() && aggregate.CourierID() != nil {
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
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
