// Copyright (c) 2025 BVK Chaitanya

// Package notify defines the notification events traders emit and a
// topic-based fan-out hub for delivering them to external sinks.
package notify

import (
	"fmt"

	"github.com/bvk/tradepost/item"
	"github.com/bvk/tradepost/money"
)

// Event is one trader notification.
type Event interface {
	EventName() string
	String() string
}

// Notifier receives trader notifications. Implementations must not
// block; ExecuteTrade calls them synchronously.
type Notifier interface {
	PushNotification(Event)
}

// TradeEvent reports a successfully executed trade.
type TradeEvent struct {
	TraderUID  string
	TradeIndex int
	Direction  string
	PlayerID   string
	Price      money.Value
	Taxes      money.Value
	Items      []*item.Stack
}

func (e *TradeEvent) EventName() string { return "trade" }

func (e *TradeEvent) String() string {
	return fmt.Sprintf("trader %s trade %d: %s with %s for %s", e.TraderUID, e.TradeIndex, e.Direction, e.PlayerID, e.Price)
}

// OutOfStockEvent reports that a trade ran out of stock after a
// successful execution.
type OutOfStockEvent struct {
	TraderUID  string
	TradeIndex int
}

func (e *OutOfStockEvent) EventName() string { return "out-of-stock" }

func (e *OutOfStockEvent) String() string {
	return fmt.Sprintf("trader %s trade %d is out of stock", e.TraderUID, e.TradeIndex)
}

// TradeCountEvent reports an added or removed trade slot.
type TradeCountEvent struct {
	TraderUID string
	PlayerID  string
	Added     bool
	Count     int
}

func (e *TradeCountEvent) EventName() string { return "trade-count" }

func (e *TradeCountEvent) String() string {
	what := "removed"
	if e.Added {
		what = "added"
	}
	return fmt.Sprintf("trader %s: %s %s a trade slot (now %d)", e.TraderUID, e.PlayerID, what, e.Count)
}

// Multi fans one notification out to several sinks.
func Multi(vs ...Notifier) Notifier {
	return multi(vs)
}

type multi []Notifier

func (m multi) PushNotification(e Event) {
	for _, v := range m {
		if v != nil {
			v.PushNotification(e)
		}
	}
}
