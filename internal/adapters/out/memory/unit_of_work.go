package memory

import (
	"context"
	"errors"

	"pizzacrm/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit when Begin was never called.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates UnitOfWork instances over a shared store.
// Each business operation gets a fresh unit of work with its own snapshot.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork implements the transaction boundary over the in-memory store.
//
// Begin takes the store lock and deep-copies the state; repositories returned
// while the transaction is active mutate the copy. Commit installs the copy
// as the new store state and releases the lock; Rollback discards the copy
// and releases the lock. Holding the lock across the whole transaction keeps
// commands serialized, which is all the isolation a single-process admin tool
// needs.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
type UnitOfWork struct {
	store *Store
	tx    *state
}

// Begin starts a transaction by snapshotting the store state under its lock.
// Calling Begin on an already begun unit of work is a no-op, so nested
// transactions cannot occur.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.store.mu.Lock()
	uow.tx = uow.store.state.clone()
	return nil
}

// Commit installs the transaction snapshot as the new store state and
// releases the lock. Returns ErrNoActiveTransaction if Begin was never
// called. After commit, the unit of work cannot be reused.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}

	uow.store.state = uow.tx
	uow.tx = nil
	uow.store.mu.Unlock()
	return nil
}

// Rollback discards the transaction snapshot and releases the lock.
// Rolling back with no active transaction is a no-op, which makes the
// deferred rollback in command handlers safe after a successful commit.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	uow.tx = nil
	uow.store.mu.Unlock()
	return nil
}

// PizzaRepository returns a pizza repository bound to the current transaction
// snapshot, or to the live state if no transaction is active.
func (uow *UnitOfWork) PizzaRepository() ports.PizzaRepository {
	return &PizzaRepository{state: uow.currentState()}
}

// CourierRepository returns a courier repository bound to the current
// transaction snapshot, or to the live state if no transaction is active.
func (uow *UnitOfWork) CourierRepository() ports.CourierRepository {
	return &CourierRepository{state: uow.currentState()}
}

// OrderRepository returns an order repository bound to the current
// transaction snapshot, or to the live state if no transaction is active.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{state: uow.currentState()}
}

func (uow *UnitOfWork) currentState() *state {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.store.state
}
