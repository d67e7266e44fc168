package database

import (
	"time"

	"room_booking/model"
)

// SeedRooms is the initial catalog used when no room snapshot exists: 8
// rooms across buildings D and S, each with its operating-hours window.
func SeedRooms() []model.Room {
	return []model.Room{
		{ID: "D101", Slug: "ruang-d-101", Name: "Ruang D.101", Building: model.BuildingD, AvailableStartTime: "07:00", AvailableEndTime: "21:00"},
		{ID: "D102", Slug: "ruang-d-102", Name: "Ruang D.102", Building: model.BuildingD, AvailableStartTime: "07:00", AvailableEndTime: "21:00"},
		{ID: "D201", Slug: "ruang-d-201", Name: "Ruang D.201", Building: model.BuildingD, AvailableStartTime: "08:00", AvailableEndTime: "17:00"},
		{ID: "D202", Slug: "ruang-d-202", Name: "Ruang D.202", Building: model.BuildingD, AvailableStartTime: "08:00", AvailableEndTime: "19:00"},
		{ID: "S301", Slug: "ruang-s-301", Name: "Ruang S.301", Building: model.BuildingS, AvailableStartTime: "07:30", AvailableEndTime: "20:00"},
		{ID: "S302", Slug: "ruang-s-302", Name: "Ruang S.302", Building: model.BuildingS, AvailableStartTime: "09:00", AvailableEndTime: "18:00"},
		{ID: "S401", Slug: "ruang-s-401", Name: "Ruang S.401", Building: model.BuildingS, AvailableStartTime: "07:00", AvailableEndTime: "22:00"},
		{ID: "S402", Slug: "ruang-s-402", Name: "Ruang S.402", Building: model.BuildingS, AvailableStartTime: "07:00", AvailableEndTime: "22:00"},
	}
}

// SeedBookings returns the sample bookings used when no booking snapshot
// exists, dated today so the demo data shows up on the home page.
func SeedBookings() []model.Booking {
	today := time.Now().Format("2006-01-02")
	return []model.Booking{
		{
			ID: "book1", RoomID: "D102", RoomName: "Ruang D.102", Building: model.BuildingD,
			UserID: "user1", UserName: "Ahmad Subarjo", UserNIM: "123456789",
			Date: today, StartTime: "09:00", EndTime: "11:00",
			Purpose: "Kelas Tambahan", Status: model.StatusDisetujui,
		},
		{
			ID: "book2", RoomID: "S401", RoomName: "Ruang S.401", Building: model.BuildingS,
			UserID: "user2", UserName: "Siti Aminah", UserNIM: "987654321",
			Date: today, StartTime: "13:00", EndTime: "15:00",
			Purpose: "Seminar Himpunan", Status: model.StatusDisetujui,
		},
		{
			ID: "book3", RoomID: "S401", RoomName: "Ruang S.401", Building: model.BuildingS,
			UserID: "user3", UserName: "Budi Santoso", UserNIM: "112233445",
			Date: today, StartTime: "16:00", EndTime: "17:00",
			Purpose: "Rapat BEM", Status: model.StatusPending,
		},
	}
}
