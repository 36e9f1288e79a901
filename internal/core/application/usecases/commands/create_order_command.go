package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a buyer opening an order and depositing funds.
// The seller, amount and deposit are only checked for shape here; the
// business rules run in the ledger so their order is preserved.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(buyer, seller, amount, deposit)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created, funds locked in escrow", id)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	buyer  kernel.Party
	seller kernel.Party
	amount kernel.Amount
	value  kernel.Amount

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command for buyer to buy from seller.
// value is what the buyer actually deposited with the request.
func NewCreateOrderCommand(buyer, seller kernel.Party, amount, value kernel.Amount) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		amount: amount,
		value:  value,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBuyer(buyer),
		cmd.setSeller(seller),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Buyer() kernel.Party   { return c.buyer }
func (c CreateOrderCommand) Seller() kernel.Party  { return c.seller }
func (c CreateOrderCommand) Amount() kernel.Amount { return c.amount }

// Value returns the deposit that came with the request.
func (c CreateOrderCommand) Value() kernel.Amount { return c.value }

func (c *CreateOrderCommand) setBuyer(buyer kernel.Party) error {
	if err := buyer.Validate(); err != nil {
		return err
	}

	c.buyer = buyer
	return nil
}

func (c *CreateOrderCommand) setSeller(seller kernel.Party) error {
	if err := seller.Validate(); err != nil {
		return err
	}

	c.seller = seller
	return nil
}
