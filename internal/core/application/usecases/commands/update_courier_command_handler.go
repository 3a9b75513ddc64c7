package commands

import (
	"context"
	"errors"

	"pizzacrm/internal/pkg/errs"
)

// UpdateCourierCommandHandler applies roster edits to a courier.
// Patching an unknown courier is a silent no-op.
type UpdateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewUpdateCourierCommandHandler creates a handler for courier edit operations.
// Requires a CourierUoWFactory for transactional storage.
func NewUpdateCourierCommandHandler(uowFactory CourierUoWFactory) UpdateCourierCommandHandler {
	return UpdateCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier edit command.
// Loads the aggregate, applies only the fields present in the command, and
// stores the result. Returns nil without changes if the courier does not exist.
func (h UpdateCourierCommandHandler) Handle(ctx context.Context, cmd UpdateCourierCommand) error {
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

	if cmd.Name() != nil {
		if err = aggregate.Rename(*cmd.Name()); err != nil {
			return err
		}
	}
	if cmd.Phone() != nil {
		if err = aggregate.ChangePhone(*cmd.Phone()); err != nil {
			return err
		}
	}

	if err = courierRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
