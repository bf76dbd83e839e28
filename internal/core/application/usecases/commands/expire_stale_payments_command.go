package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/NormanProjects/mashia-mesh/internal/pkg/errs"
	"github.com/NormanProjects/mashia-mesh/internal/pkg/guard"
)

var ErrExpireStalePaymentsCommandIsNotConstructed = errors.New(
	"ExpireStalePaymentsCommand must be created via NewExpireStalePaymentsCommand constructor",
)

// ExpireStalePaymentsCommand triggers failing of payments stuck in
// PROCESSING. A payment gets stuck when the process dies between reserving
// the ledger slot and recording the gateway outcome.
//
// Example:
//
//	cmd, _ := NewExpireStalePaymentsCommand(10 * time.Minute)
//	handler := NewExpireStalePaymentsCommandHandler(uowFactory, logger)
//
//	// Run periodically from a scheduler
//	if _, err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("stale payment sweep failed: %v", err)
//	}
type ExpireStalePaymentsCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewExpireStalePaymentsCommand creates a command to fail payments that have
// been PROCESSING for longer than olderThan.
func NewExpireStalePaymentsCommand(olderThan time.Duration) (ExpireStalePaymentsCommand, error) {
	cmd := ExpireStalePaymentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOlderThan(olderThan); err != nil {
		return ExpireStalePaymentsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireStalePaymentsCommand) Validate() error {
	return c.guard.Validate(ErrExpireStalePaymentsCommandIsNotConstructed)
}

// OlderThan returns the minimum PROCESSING age for a payment to be failed.
func (c ExpireStalePaymentsCommand) OlderThan() time.Duration {
	return c.olderThan
}

func (c *ExpireStalePaymentsCommand) setOlderThan(olderThan time.Duration) error {
	if olderThan <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("older than",
			fmt.Errorf("%s is not a positive duration", olderThan))
	}
	c.olderThan = olderThan
	return nil
}
