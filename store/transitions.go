package store

import "room_booking/model"

// allowedTransitions is the booking state machine: admins decide Pending
// requests, users may cancel anything still active. Terminal states never
// change again (no Ditolak -> Disetujui).
var allowedTransitions = map[model.BookingStatus][]model.BookingStatus{
	model.StatusPending:   {model.StatusDisetujui, model.StatusDitolak, model.StatusDibatalkan},
	model.StatusDisetujui: {model.StatusDibatalkan},
}

// CanTransition reports whether a status change is legal.
func CanTransition(from, to model.BookingStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
