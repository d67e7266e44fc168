package model

type BookingStatus string

const (
	StatusPending    BookingStatus = "Pending"
	StatusDisetujui  BookingStatus = "Disetujui"
	StatusDitolak    BookingStatus = "Ditolak"
	StatusDibatalkan BookingStatus = "Dibatalkan"
)

// Active reports whether the status counts for conflict and availability
// computation. Ditolak and Dibatalkan are kept for history only.
func (s BookingStatus) Active() bool {
	return s == StatusPending || s == StatusDisetujui
}

// Terminal reports whether the status can never change again.
func (s BookingStatus) Terminal() bool {
	return s == StatusDitolak || s == StatusDibatalkan
}

// Booking is one reservation request. RoomName and Building are copies of
// the room taken at creation time; editing the room later must not change
// them.
type Booking struct {
	ID        string        `json:"id"`
	RoomID    string        `json:"roomId"`
	RoomName  string        `json:"roomName"`
	Building  Building      `json:"building"`
	UserID    string        `json:"userId"`
	UserName  string        `json:"userName"`
	UserNIM   string        `json:"userNIM"`
	Date      string        `json:"date"` // YYYY-MM-DD
	StartTime string        `json:"startTime"`
	EndTime   string        `json:"endTime"`
	Purpose   string        `json:"purpose"`
	Status    BookingStatus `json:"status"`
}

type CreateBookingInput struct {
	RoomID    string `json:"roomId" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
	Purpose   string `json:"purpose" validate:"required,min=3,max=200"`
}

type DecideBookingInput struct {
	Status BookingStatus `json:"status" validate:"required,oneof=Disetujui Ditolak"`
}
