package model

import "testing"

func TestAccessible(t *testing.T) {
	tests := []struct {
		page Page
		role UserRole
		want bool
	}{
		{PageLogin, "", true},
		{PageHome, "", true},
		{PageVisiMisi, "", true},
		{PageHome, RoleAdmin, true},
		{PageStatus, "", false},
		{PageStatus, RoleUser, true},
		{PageStatus, RoleAdmin, false},
		{PageAdmin, "", false},
		{PageAdmin, RoleUser, false},
		{PageAdmin, RoleAdmin, true},
		{Page("unknown"), RoleAdmin, false},
	}
	for _, tt := range tests {
		if got := Accessible(tt.page, tt.role); got != tt.want {
			t.Errorf("Accessible(%q, %q) = %v, want %v", tt.page, tt.role, got, tt.want)
		}
	}
}

func TestBookingStatusPredicates(t *testing.T) {
	tests := []struct {
		status   BookingStatus
		active   bool
		terminal bool
	}{
		{StatusPending, true, false},
		{StatusDisetujui, true, false},
		{StatusDitolak, false, true},
		{StatusDibatalkan, false, true},
	}
	for _, tt := range tests {
		if got := tt.status.Active(); got != tt.active {
			t.Errorf("%s.Active() = %v, want %v", tt.status, got, tt.active)
		}
		if got := tt.status.Terminal(); got != tt.terminal {
			t.Errorf("%s.Terminal() = %v, want %v", tt.status, got, tt.terminal)
		}
	}
}
