// Copyright (c) 2025 BVK Chaitanya

package notify

import (
	"strings"
	"testing"

	"github.com/bvk/tradepost/money"
)

func TestHub(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	sub, ch, err := hub.Topic().Subscribe(4, false /* includeRecent */)
	if err != nil {
		t.Fatal(err)
	}
	defer sub.Unsubscribe()

	want := &TradeEvent{
		TraderUID:  "uid",
		TradeIndex: 2,
		Direction:  "SALE",
		PlayerID:   "alice",
		Price:      money.FromInt(10),
	}
	hub.PushNotification(want)

	got := <-ch
	if got.EventName() != "trade" {
		t.Fatalf("want a trade event, got %q", got.EventName())
	}
	if v, ok := got.(*TradeEvent); !ok || v.TradeIndex != 2 || v.PlayerID != "alice" {
		t.Fatalf("want %+v, got %+v", want, got)
	}
}

type recorder struct {
	events []Event
}

func (r *recorder) PushNotification(e Event) {
	r.events = append(r.events, e)
}

func TestMulti(t *testing.T) {
	a, b := new(recorder), new(recorder)
	m := Multi(a, nil, b)

	m.PushNotification(&OutOfStockEvent{TraderUID: "uid", TradeIndex: 1})
	if len(a.events) != 1 || len(b.events) != 1 {
		t.Fatalf("want both sinks notified, got %d and %d", len(a.events), len(b.events))
	}
	if !strings.Contains(a.events[0].String(), "out of stock") {
		t.Fatalf("unexpected event text %q", a.events[0])
	}
}

func TestTradeCountEventText(t *testing.T) {
	e := &TradeCountEvent{TraderUID: "uid", PlayerID: "admin", Added: true, Count: 3}
	if s := e.String(); !strings.Contains(s, "added") || !strings.Contains(s, "3") {
		t.Fatalf("unexpected event text %q", s)
	}
}
