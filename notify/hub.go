// Copyright (c) 2025 BVK Chaitanya

package notify

import (
	"github.com/bvkgo/topic"
)

// Hub is a Notifier that publishes events on a topic so that any
// number of subscribers can consume them independently.
type Hub struct {
	topic *topic.Topic[Event]
}

func NewHub() *Hub {
	return &Hub{topic: topic.New[Event]()}
}

func (h *Hub) PushNotification(e Event) {
	h.topic.Send(e)
}

// Topic returns the underlying topic for subscription.
func (h *Hub) Topic() *topic.Topic[Event] {
	return h.topic
}

func (h *Hub) Close() {
	h.topic.Close()
}
