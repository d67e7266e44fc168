package model

type Building string

const (
	BuildingD Building = "D"
	BuildingS Building = "S"
)

// Room is a bookable room. Times are wall-clock "HH:MM" strings and
// AvailableStartTime < AvailableEndTime always holds for stored rooms.
type Room struct {
	ID                 string   `json:"id"`
	Slug               string   `json:"slug"`
	Name               string   `json:"name" validate:"required"`
	Building           Building `json:"building" validate:"required,oneof=D S"`
	AvailableStartTime string   `json:"availableStartTime" validate:"required"`
	AvailableEndTime   string   `json:"availableEndTime" validate:"required"`
}

type CreateRoomInput struct {
	Name               string   `json:"name" validate:"required,min=3,max=100"`
	Building           Building `json:"building" validate:"required,oneof=D S"`
	AvailableStartTime string   `json:"availableStartTime" validate:"required"`
	AvailableEndTime   string   `json:"availableEndTime" validate:"required"`
}

type EditRoomInput struct {
	Name               *string   `json:"name" validate:"omitempty,min=3,max=100"`
	Building           *Building `json:"building" validate:"omitempty,oneof=D S"`
	AvailableStartTime *string   `json:"availableStartTime"`
	AvailableEndTime   *string   `json:"availableEndTime"`
}

// FreeSlot is one maximal free sub-interval of a room's operating window,
// half-open: a booking may start exactly at EndTime of the previous one.
type FreeSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// RoomAvailability is a room plus its free slots for one date.
type RoomAvailability struct {
	Room
	AvailableSlots []FreeSlot `json:"availableSlots"`
}
