package handler

import (
	"context"
	"encoding/json"
	"log"

	"room_booking/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

// BookingEvent is the payload pushed to websocket clients watching a
// building: created, status or deleted, plus the booking itself.
type BookingEvent struct {
	Event   string        `json:"event"`
	Booking model.Booking `json:"booking"`
}

// EventHub fans booking events out over Redis pub/sub, one channel per
// building, to the websocket clients subscribed to that building. A nil
// hub (no Redis configured) swallows publishes.
type EventHub struct {
	rdb *redis.Client
}

func NewEventHub(rdb *redis.Client) *EventHub {
	return &EventHub{rdb: rdb}
}

func channelFor(building model.Building) string {
	return "building:" + string(building)
}

// PublishBooking broadcasts a mutation to the building's channel.
func (h *EventHub) PublishBooking(event string, b model.Booking) {
	if h == nil || h.rdb == nil {
		return
	}
	payload, err := json.Marshal(BookingEvent{Event: event, Booking: b})
	if err != nil {
		log.Printf("failed to marshal booking event: %v", err)
		return
	}
	if err := h.rdb.Publish(context.Background(), channelFor(b.Building), payload).Err(); err != nil {
		log.Printf("failed to publish booking event: %v", err)
	}
}

// Connection handles one websocket client watching a building's bookings.
// Each connection holds its own Redis subscription; the loop ends when
// either side closes.
func (h *EventHub) Connection(c *websocket.Conn) {
	defer c.Close()

	building := c.Params("building")
	if building != "D" && building != "S" {
		return
	}

	pubsub := h.rdb.Subscribe(context.Background(), "building:"+building)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
			return
		}
	}
}
