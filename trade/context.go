// Copyright (c) 2025 BVK Chaitanya

package trade

import (
	"github.com/bvk/tradepost/item"
	"github.com/bvk/tradepost/money"
)

// Context abstracts the requester's resources for the duration of one
// trade attempt: collectible items, fundable payment, and output
// space. It is supplied by the caller and exclusively owned by the
// engine for one ExecuteTrade call.
type Context interface {
	// PlayerID identifies the requesting player; an empty id means no
	// player reference is attached and no trade can execute.
	PlayerID() string

	// AvailableFunds returns the requester's spendable money.
	AvailableFunds() money.Value

	// GetPayment debits the price from the requester. It returns false
	// without any debit if funds are insufficient.
	GetPayment(price money.Value) bool

	// GivePayment credits money to the requester. Also used to refund a
	// payment when output placement fails halfway.
	GivePayment(amount money.Value)

	// CollectableItems selects concrete stacks from the requester
	// satisfying the two requirements, or nil if they cannot be
	// satisfied. Nothing is removed yet.
	CollectableItems(first, second *item.Requirement) []*item.Stack

	// HasItems reports whether all given stacks are still present.
	HasItems(items []*item.Stack) bool

	// CollectItems removes the given stacks from the requester.
	CollectItems(items []*item.Stack)

	// CollectItem removes a single stack from the requester; used to
	// retract partially placed outputs.
	CollectItem(stack *item.Stack)

	// CanFitItems reports whether the requester has room for all the
	// given stacks.
	CanFitItems(items []*item.Stack) bool

	// PutItem places one stack with the requester. May fail even after
	// CanFitItems reported room, if the destination changed; callers
	// must retract on failure.
	PutItem(stack *item.Stack) bool
}
