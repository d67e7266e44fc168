package helper

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// PendingExpirer cancels Pending bookings whose slot has already passed
// and reports how many were touched.
type PendingExpirer interface {
	ExpirePending(now time.Time) int
}

var scheduler *cron.Cron

// StartBookingScheduler sweeps stale Pending bookings every 5 minutes.
func StartBookingScheduler(s PendingExpirer) {
	scheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := scheduler.AddFunc("*/5 * * * *", func() {
		if n := s.ExpirePending(time.Now()); n > 0 {
			log.Printf("expired %d stale pending bookings", n)
		}
	})
	if err != nil {
		log.Printf("failed to start booking scheduler: %v", err)
		return
	}

	scheduler.Start()
	log.Println("booking expiry scheduler started (every 5 minutes)")
}

// StopBookingScheduler stops the sweep on shutdown.
func StopBookingScheduler() {
	if scheduler != nil {
		scheduler.Stop()
		log.Println("booking expiry scheduler stopped")
	}
}
