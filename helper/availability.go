package helper

import (
	"sort"

	"room_booking/model"
	"room_booking/utils"
)

// Interval is a half-open [Start, End) range in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// Overlaps is the half-open overlap test. Back-to-back ranges (a ending
// exactly where b starts) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// HasConflict reports whether the candidate collides with an active
// booking for the same room and date. Candidate well-formedness
// (start < end, inside the room window) is the caller's job.
func HasConflict(candidate model.Booking, bookings []model.Booking) bool {
	cStart, err := utils.ToMinutes(candidate.StartTime)
	if err != nil {
		return false
	}
	cEnd, err := utils.ToMinutes(candidate.EndTime)
	if err != nil {
		return false
	}
	for _, b := range bookings {
		if b.RoomID != candidate.RoomID || b.Date != candidate.Date || !b.Status.Active() {
			continue
		}
		bStart, err := utils.ToMinutes(b.StartTime)
		if err != nil {
			continue
		}
		bEnd, err := utils.ToMinutes(b.EndTime)
		if err != nil {
			continue
		}
		if Overlaps(cStart, cEnd, bStart, bEnd) {
			return true
		}
	}
	return false
}

// FreeSlots computes the free sub-intervals of a room's operating window
// after subtracting the given bookings, in ascending order. Bookings with
// inactive status or for another date/room must be filtered out by the
// caller; every booking passed in occupies its interval.
func FreeSlots(room model.Room, bookings []model.Booking) ([]model.FreeSlot, error) {
	roomStart, err := utils.ToMinutes(room.AvailableStartTime)
	if err != nil {
		return nil, err
	}
	roomEnd, err := utils.ToMinutes(room.AvailableEndTime)
	if err != nil {
		return nil, err
	}

	free := []Interval{{Start: roomStart, End: roomEnd}}

	occupied := make([]Interval, 0, len(bookings))
	for _, b := range bookings {
		start, err := utils.ToMinutes(b.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := utils.ToMinutes(b.EndTime)
		if err != nil {
			return nil, err
		}
		occupied = append(occupied, Interval{Start: start, End: end})
	}
	sort.SliceStable(occupied, func(i, j int) bool {
		return occupied[i].Start < occupied[j].Start
	})

	for _, booked := range occupied {
		next := make([]Interval, 0, len(free)+1)
		for _, slot := range free {
			if booked.End <= slot.Start || booked.Start >= slot.End {
				next = append(next, slot)
				continue
			}
			// Split the slot around the booking; strict inequalities keep
			// zero-width pieces out.
			if booked.Start > slot.Start {
				next = append(next, Interval{Start: slot.Start, End: booked.Start})
			}
			if booked.End < slot.End {
				next = append(next, Interval{Start: booked.End, End: slot.End})
			}
		}
		free = next
	}

	slots := make([]model.FreeSlot, 0, len(free))
	for _, slot := range free {
		start, err := utils.ToClockString(slot.Start)
		if err != nil {
			return nil, err
		}
		end, err := utils.ToClockString(slot.End)
		if err != nil {
			return nil, err
		}
		slots = append(slots, model.FreeSlot{StartTime: start, EndTime: end})
	}
	return slots, nil
}

// ActiveForRoomAndDate filters the bookings that occupy a room on a date.
func ActiveForRoomAndDate(bookings []model.Booking, roomID, date string) []model.Booking {
	var out []model.Booking
	for _, b := range bookings {
		if b.RoomID == roomID && b.Date == date && b.Status.Active() {
			out = append(out, b)
		}
	}
	return out
}
