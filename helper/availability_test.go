package helper

import (
	"reflect"
	"testing"

	"room_booking/model"
	"room_booking/utils"
)

func mustMinutes(t *testing.T, s string) int {
	t.Helper()
	m, err := utils.ToMinutes(s)
	if err != nil {
		t.Fatalf("ToMinutes(%q): %v", s, err)
	}
	return m
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name         string
		aStart, aEnd string
		bStart, bEnd string
		want         bool
	}{
		{"back-to-back is not a conflict", "09:00", "10:00", "10:00", "11:00", false},
		{"partial overlap is a conflict", "09:00", "10:30", "10:00", "11:00", true},
		{"contained range", "09:00", "12:00", "10:00", "11:00", true},
		{"identical range", "09:00", "10:00", "09:00", "10:00", true},
		{"disjoint", "07:00", "08:00", "10:00", "11:00", false},
		{"touching at start", "10:00", "11:00", "09:00", "10:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a1, a2 := mustMinutes(t, tt.aStart), mustMinutes(t, tt.aEnd)
			b1, b2 := mustMinutes(t, tt.bStart), mustMinutes(t, tt.bEnd)
			if got := Overlaps(a1, a2, b1, b2); got != tt.want {
				t.Errorf("Overlaps(%s-%s, %s-%s) = %v, want %v", tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}
			// Symmetry: overlaps(A,B) == overlaps(B,A).
			if Overlaps(a1, a2, b1, b2) != Overlaps(b1, b2, a1, a2) {
				t.Errorf("Overlaps not symmetric for %s-%s vs %s-%s", tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			}
		})
	}
}

func booking(roomID, date, start, end string, status model.BookingStatus) model.Booking {
	return model.Booking{RoomID: roomID, Date: date, StartTime: start, EndTime: end, Status: status}
}

func TestHasConflict(t *testing.T) {
	existing := []model.Booking{
		booking("D101", "2025-09-01", "09:00", "11:00", model.StatusPending),
		booking("D101", "2025-09-01", "14:00", "15:00", model.StatusDitolak),
		booking("D101", "2025-09-02", "09:00", "11:00", model.StatusDisetujui),
		booking("D102", "2025-09-01", "09:00", "11:00", model.StatusDisetujui),
	}

	tests := []struct {
		name      string
		candidate model.Booking
		want      bool
	}{
		{"overlapping same room and date", booking("D101", "2025-09-01", "10:00", "12:00", ""), true},
		{"back-to-back", booking("D101", "2025-09-01", "11:00", "12:00", ""), false},
		{"different date", booking("D101", "2025-09-03", "09:00", "11:00", ""), false},
		{"different room", booking("D201", "2025-09-01", "09:00", "11:00", ""), false},
		{"overlapping a rejected booking only", booking("D101", "2025-09-01", "14:00", "15:00", ""), false},
		{"overlapping an approved booking", booking("D101", "2025-09-02", "10:30", "11:30", ""), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasConflict(tt.candidate, existing); got != tt.want {
				t.Errorf("HasConflict = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFreeSlotsEndToEnd(t *testing.T) {
	// Room S401 open 07:00-22:00 with an approved 13:00-15:00 and a
	// pending 16:00-17:00 booking.
	room := model.Room{ID: "S401", AvailableStartTime: "07:00", AvailableEndTime: "22:00"}
	occupying := []model.Booking{
		booking("S401", "2025-09-01", "13:00", "15:00", model.StatusDisetujui),
		booking("S401", "2025-09-01", "16:00", "17:00", model.StatusPending),
	}

	got, err := FreeSlots(room, occupying)
	if err != nil {
		t.Fatalf("FreeSlots: %v", err)
	}
	want := []model.FreeSlot{
		{StartTime: "07:00", EndTime: "13:00"},
		{StartTime: "15:00", EndTime: "16:00"},
		{StartTime: "17:00", EndTime: "22:00"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FreeSlots = %v, want %v", got, want)
	}
}

func TestFreeSlotsEdgeCases(t *testing.T) {
	room := model.Room{ID: "D101", AvailableStartTime: "08:00", AvailableEndTime: "12:00"}

	tests := []struct {
		name     string
		bookings []model.Booking
		want     []model.FreeSlot
	}{
		{
			"no bookings leaves the whole window",
			nil,
			[]model.FreeSlot{{StartTime: "08:00", EndTime: "12:00"}},
		},
		{
			"fully booked yields no slots",
			[]model.Booking{booking("D101", "d", "08:00", "12:00", model.StatusPending)},
			[]model.FreeSlot{},
		},
		{
			"adjacent bookings leave no zero-width gap",
			[]model.Booking{
				booking("D101", "d", "08:00", "10:00", model.StatusPending),
				booking("D101", "d", "10:00", "11:00", model.StatusPending),
			},
			[]model.FreeSlot{{StartTime: "11:00", EndTime: "12:00"}},
		},
		{
			"booking spilling past the window is clipped",
			[]model.Booking{booking("D101", "d", "11:00", "13:00", model.StatusPending)},
			[]model.FreeSlot{{StartTime: "08:00", EndTime: "11:00"}},
		},
		{
			"unsorted input still yields ascending slots",
			[]model.Booking{
				booking("D101", "d", "10:30", "11:00", model.StatusPending),
				booking("D101", "d", "08:30", "09:00", model.StatusPending),
			},
			[]model.FreeSlot{
				{StartTime: "08:00", EndTime: "08:30"},
				{StartTime: "09:00", EndTime: "10:30"},
				{StartTime: "11:00", EndTime: "12:00"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FreeSlots(room, tt.bookings)
			if err != nil {
				t.Fatalf("FreeSlots: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FreeSlots = %v, want %v", got, tt.want)
			}
		})
	}
}

// Totality: free slots plus booking intervals must tile the window
// exactly when bookings are disjoint and inside the window.
func TestFreeSlotsTotality(t *testing.T) {
	room := model.Room{ID: "D101", AvailableStartTime: "07:00", AvailableEndTime: "21:00"}
	bookings := []model.Booking{
		booking("D101", "d", "08:00", "09:30", model.StatusPending),
		booking("D101", "d", "09:30", "10:00", model.StatusDisetujui),
		booking("D101", "d", "12:00", "14:00", model.StatusPending),
		booking("D101", "d", "20:00", "21:00", model.StatusPending),
	}

	slots, err := FreeSlots(room, bookings)
	if err != nil {
		t.Fatalf("FreeSlots: %v", err)
	}

	freeMinutes := 0
	for _, s := range slots {
		freeMinutes += mustMinutes(t, s.EndTime) - mustMinutes(t, s.StartTime)
	}
	bookedMinutes := 0
	for _, b := range bookings {
		bookedMinutes += mustMinutes(t, b.EndTime) - mustMinutes(t, b.StartTime)
	}
	window := mustMinutes(t, room.AvailableEndTime) - mustMinutes(t, room.AvailableStartTime)

	if freeMinutes+bookedMinutes != window {
		t.Errorf("free (%d) + booked (%d) != window (%d)", freeMinutes, bookedMinutes, window)
	}
}

// Filtering out cancelled/rejected bookings can only grow the free time.
func TestFreeSlotsMonotoneUnderFiltering(t *testing.T) {
	room := model.Room{ID: "D101", AvailableStartTime: "07:00", AvailableEndTime: "21:00"}
	all := []model.Booking{
		booking("D101", "d", "08:00", "10:00", model.StatusPending),
		booking("D101", "d", "11:00", "12:00", model.StatusDibatalkan),
		booking("D101", "d", "13:00", "15:00", model.StatusDitolak),
	}

	total := func(bs []model.Booking) int {
		slots, err := FreeSlots(room, bs)
		if err != nil {
			t.Fatalf("FreeSlots: %v", err)
		}
		sum := 0
		for _, s := range slots {
			sum += mustMinutes(t, s.EndTime) - mustMinutes(t, s.StartTime)
		}
		return sum
	}

	activeOnly := ActiveForRoomAndDate(all, "D101", "d")
	if len(activeOnly) != 1 {
		t.Fatalf("ActiveForRoomAndDate kept %d bookings, want 1", len(activeOnly))
	}
	if total(activeOnly) < total(all) {
		t.Errorf("filtering inactive bookings must not shrink free time: %d < %d", total(activeOnly), total(all))
	}
}
