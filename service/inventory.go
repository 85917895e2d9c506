package service

import (
	"context"
	"errors"
	"event-ticket/common/errs"
	"event-ticket/outbound/sqlgen"
	"fmt"
	"github.com/jackc/pgx/v5"
)

// InventoryLedger keeps available_seat + sold = total_seat per ticket type.
// Serialization comes from the row lock taken by Lock; there is no in-process state.
type InventoryLedger struct{}

func (InventoryLedger) Lock(ctx context.Context, q *sqlgen.Queries, ticketTypeID int64) (sqlgen.LockTicketTypeForUpdateRow, error) {
	row, err := q.LockTicketTypeForUpdate(ctx, ticketTypeID)
	if errors.Is(err, pgx.ErrNoRows) {
		return row, errs.New(errs.KindNotFound, "Ticket type not found")
	}
	if err != nil {
		return row, fmt.Errorf("lock ticket type: %w", err)
	}

	return row, nil
}

// Reserve expects ticketType to have been read through Lock in the same transaction.
func (InventoryLedger) Reserve(ctx context.Context, q *sqlgen.Queries, ticketType sqlgen.TicketType, qty int32) error {
	if qty <= 0 {
		return errs.New(errs.KindInvalidInput, "Quantity must be greater than 0")
	}

	if ticketType.AvailableSeat < qty {
		return errs.New(errs.KindInsufficientInventory, "Not enough seats available")
	}

	affected, err := q.ReserveTicketTypeSeats(ctx, sqlgen.ReserveTicketTypeSeatsParams{
		Qty: qty,
		ID:  ticketType.ID,
	})
	if err != nil {
		return fmt.Errorf("reserve seats: %w", err)
	}

	if affected == 0 {
		return errs.New(errs.KindInsufficientInventory, "Not enough seats available")
	}

	return nil
}

func (InventoryLedger) Release(ctx context.Context, q *sqlgen.Queries, ticketTypeID int64, qty int32) error {
	affected, err := q.ReleaseTicketTypeSeats(ctx, sqlgen.ReleaseTicketTypeSeatsParams{
		Qty: qty,
		ID:  ticketTypeID,
	})
	if err != nil {
		return fmt.Errorf("release seats: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("release %d seats of ticket type %d: sold count too low", qty, ticketTypeID)
	}

	return nil
}
