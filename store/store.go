package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"room_booking/database"
	"room_booking/helper"
	"room_booking/model"
	"room_booking/utils"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var (
	ErrConflict          = errors.New("booking conflicts with an active booking")
	ErrValidation        = errors.New("invalid booking time range")
	ErrRoomNotFound      = errors.New("room not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrForbidden         = errors.New("actor may not perform this operation")
)

// BuildingAll is the availability filter value meaning "both buildings".
const BuildingAll = "semua"

type snapshotJob struct {
	key  string
	blob []byte
}

// Store owns the room and booking collections. Every mutation runs inside
// one critical section, so a conflict check and the append it guards can
// never interleave with another writer. Snapshots are written by a single
// background goroutine in mutation order.
type Store struct {
	mu       sync.Mutex
	rooms    []model.Room
	bookings []model.Booking
	user     *model.User
	theme    model.Theme

	snap database.SnapshotStore
	jobs chan snapshotJob
	wg   sync.WaitGroup

	newBookingID func() string
}

type Option func(*Store)

// WithBookingIDGenerator swaps the id capability (tests use a counter).
func WithBookingIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newBookingID = gen }
}

// New loads the collections from the snapshot store, seeding the built-in
// dataset for any missing key, and starts the snapshot writer.
func New(snap database.SnapshotStore, opts ...Option) (*Store, error) {
	s := &Store{
		snap:  snap,
		jobs:  make(chan snapshotJob, 256),
		theme: model.ThemeLight,
		newBookingID: func() string {
			return "BK-" + uuid.New().String()[:8]
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	ctx := context.Background()
	if err := loadOrSeed(ctx, snap, database.KeyRooms, &s.rooms, database.SeedRooms); err != nil {
		return nil, err
	}
	if err := loadOrSeed(ctx, snap, database.KeyBookings, &s.bookings, database.SeedBookings); err != nil {
		return nil, err
	}
	if blob, err := snap.Load(ctx, database.KeyUser); err == nil {
		var u model.User
		if err := json.Unmarshal(blob, &u); err == nil && u.Email != "" {
			s.user = &u
		}
	}
	if blob, err := snap.Load(ctx, database.KeyTheme); err == nil {
		var t model.Theme
		if err := json.Unmarshal(blob, &t); err == nil && (t == model.ThemeLight || t == model.ThemeDark) {
			s.theme = t
		}
	}

	s.wg.Add(1)
	go s.writeSnapshots()
	return s, nil
}

func loadOrSeed[T any](ctx context.Context, snap database.SnapshotStore, key string, dst *[]T, seed func() []T) error {
	blob, err := snap.Load(ctx, key)
	if errors.Is(err, database.ErrSnapshotMissing) {
		*dst = seed()
		seeded, err := json.Marshal(*dst)
		if err != nil {
			return err
		}
		return snap.Save(ctx, key, seeded)
	}
	if err != nil {
		return fmt.Errorf("failed to load snapshot %q: %w", key, err)
	}
	return json.Unmarshal(blob, dst)
}

func (s *Store) writeSnapshots() {
	defer s.wg.Done()
	for job := range s.jobs {
		if err := s.snap.Save(context.Background(), job.key, job.blob); err != nil {
			log.Printf("failed to persist snapshot %q: %v", job.key, err)
		}
	}
}

// Close flushes queued snapshot writes and stops the writer.
func (s *Store) Close() {
	close(s.jobs)
	s.wg.Wait()
}

// persistLocked marshals a collection and queues the write. Must be called
// with s.mu held so queue order equals mutation order.
func (s *Store) persistLocked(key string, v any) {
	blob, err := json.Marshal(v)
	if err != nil {
		log.Printf("failed to marshal snapshot %q: %v", key, err)
		return
	}
	s.jobs <- snapshotJob{key: key, blob: blob}
}

// ---- rooms ----

func (s *Store) Rooms() []model.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Room(nil), s.rooms...)
}

func (s *Store) GetRoom(id string) (model.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rooms {
		if r.ID == id {
			return r, nil
		}
	}
	return model.Room{}, ErrRoomNotFound
}

// CreateRoom assigns the next free id for the building (building code plus
// a three-digit number, starting at 101) and a unique slug.
func (s *Store) CreateRoom(input model.CreateRoomInput) (model.Room, error) {
	if err := validWindow(input.AvailableStartTime, input.AvailableEndTime); err != nil {
		return model.Room{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var room model.Room
	copier.Copy(&room, &input)
	room.ID = s.nextRoomIDLocked(input.Building)
	room.Slug = helper.GenerateUniqueRoomSlug(s.rooms, input.Name)

	s.rooms = append(s.rooms, room)
	s.persistLocked(database.KeyRooms, s.rooms)
	return room, nil
}

// nextRoomIDLocked scans existing ids of the building for the highest
// numeric suffix and goes one past it. Strictly unique, unlike random
// suffixes.
func (s *Store) nextRoomIDLocked(building model.Building) string {
	next := 101
	prefix := string(building)
	for _, r := range s.rooms {
		if !strings.HasPrefix(r.ID, prefix) {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimPrefix(r.ID, prefix)); err == nil && n >= next {
			next = n + 1
		}
	}
	return fmt.Sprintf("%s%d", prefix, next)
}

// EditRoom replaces the stored room with the same id. Denormalized copies
// inside bookings are left alone. The slug follows the name.
func (s *Store) EditRoom(room model.Room) (model.Room, error) {
	if err := validWindow(room.AvailableStartTime, room.AvailableEndTime); err != nil {
		return model.Room{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.rooms {
		if r.ID != room.ID {
			continue
		}
		room.Slug = r.Slug
		if room.Name != r.Name {
			others := append(append([]model.Room(nil), s.rooms[:i]...), s.rooms[i+1:]...)
			room.Slug = helper.GenerateUniqueRoomSlug(others, room.Name)
		}
		s.rooms[i] = room
		s.persistLocked(database.KeyRooms, s.rooms)
		return room, nil
	}
	return model.Room{}, ErrRoomNotFound
}

// DeleteRoom removes a room. Bookings referencing it are orphaned on
// purpose: their denormalized roomName/building keep history displayable.
func (s *Store) DeleteRoom(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.rooms {
		if r.ID == id {
			s.rooms = append(s.rooms[:i], s.rooms[i+1:]...)
			s.persistLocked(database.KeyRooms, s.rooms)
			return nil
		}
	}
	return ErrRoomNotFound
}

func validWindow(start, end string) error {
	startMin, err := utils.ToMinutes(start)
	if err != nil {
		return err
	}
	endMin, err := utils.ToMinutes(end)
	if err != nil {
		return err
	}
	if startMin >= endMin {
		return ErrValidation
	}
	return nil
}

// ---- bookings ----

func (s *Store) Bookings() []model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Booking(nil), s.bookings...)
}

func (s *Store) BookingsForUser(userID string) []model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

func (s *Store) GetBooking(id string) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return model.Booking{}, ErrBookingNotFound
}

// CreateBooking validates the candidate range, denormalizes the room,
// runs the conflict check and appends — all in one critical section, so
// two overlapping submissions can never both pass. On any error the
// collection is unchanged.
func (s *Store) CreateBooking(candidate model.Booking) (model.Booking, error) {
	startMin, err := utils.ToMinutes(candidate.StartTime)
	if err != nil {
		return model.Booking{}, err
	}
	endMin, err := utils.ToMinutes(candidate.EndTime)
	if err != nil {
		return model.Booking{}, err
	}
	if startMin >= endMin {
		return model.Booking{}, ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var room *model.Room
	for i := range s.rooms {
		if s.rooms[i].ID == candidate.RoomID {
			room = &s.rooms[i]
			break
		}
	}
	if room == nil {
		return model.Booking{}, ErrRoomNotFound
	}
	roomStart, err := utils.ToMinutes(room.AvailableStartTime)
	if err != nil {
		return model.Booking{}, err
	}
	roomEnd, err := utils.ToMinutes(room.AvailableEndTime)
	if err != nil {
		return model.Booking{}, err
	}
	if startMin < roomStart || endMin > roomEnd {
		return model.Booking{}, ErrValidation
	}

	if helper.HasConflict(candidate, s.bookings) {
		return model.Booking{}, ErrConflict
	}

	// Room fields are snapshotted at booking time; later edits to the
	// room must not rewrite them.
	candidate.RoomName = room.Name
	candidate.Building = room.Building
	candidate.ID = s.uniqueBookingIDLocked()
	candidate.Status = model.StatusPending

	s.bookings = append(s.bookings, candidate)
	s.persistLocked(database.KeyBookings, s.bookings)
	return candidate, nil
}

func (s *Store) uniqueBookingIDLocked() string {
	for {
		id := s.newBookingID()
		taken := false
		for _, b := range s.bookings {
			if b.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}

// SetBookingStatus applies an admin decision or cancellation. Only the
// status field changes, and only along the state machine.
func (s *Store) SetBookingStatus(id string, status model.BookingStatus) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.bookings {
		if b.ID != id {
			continue
		}
		if !CanTransition(b.Status, status) {
			return model.Booking{}, ErrIllegalTransition
		}
		s.bookings[i].Status = status
		s.persistLocked(database.KeyBookings, s.bookings)
		return s.bookings[i], nil
	}
	return model.Booking{}, ErrBookingNotFound
}

// CancelBooking is the user-side transition to Dibatalkan; only the owner
// may cancel, and only while the booking is still active.
func (s *Store) CancelBooking(id, userID string) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.bookings {
		if b.ID != id {
			continue
		}
		if b.UserID != userID {
			return model.Booking{}, ErrForbidden
		}
		if !CanTransition(b.Status, model.StatusDibatalkan) {
			return model.Booking{}, ErrIllegalTransition
		}
		s.bookings[i].Status = model.StatusDibatalkan
		s.persistLocked(database.KeyBookings, s.bookings)
		return s.bookings[i], nil
	}
	return model.Booking{}, ErrBookingNotFound
}

// DeleteBooking removes a booking permanently, whatever its status (the
// admin dashboard allows it for any row).
func (s *Store) DeleteBooking(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.bookings {
		if b.ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			s.persistLocked(database.KeyBookings, s.bookings)
			return nil
		}
	}
	return ErrBookingNotFound
}

// ExpirePending cancels Pending bookings whose slot already ended before
// now. Called by the cron sweeper.
func (s *Store) ExpirePending(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	expired := 0
	for i, b := range s.bookings {
		if b.Status != model.StatusPending {
			continue
		}
		day, err := time.ParseInLocation("2006-01-02", b.Date, now.Location())
		if err != nil {
			continue
		}
		endMin, err := utils.ToMinutes(b.EndTime)
		if err != nil {
			continue
		}
		if day.Add(time.Duration(endMin) * time.Minute).Before(now) {
			s.bookings[i].Status = model.StatusDibatalkan
			expired++
		}
	}
	if expired > 0 {
		s.persistLocked(database.KeyBookings, s.bookings)
	}
	return expired
}

// ---- availability ----

// Availability computes the free slots of every room (optionally filtered
// by building) for one date. Rooms with remaining slots come first, fully
// booked rooms after, each group in catalog order.
func (s *Store) Availability(date, building string) ([]model.RoomAvailability, error) {
	s.mu.Lock()
	rooms := append([]model.Room(nil), s.rooms...)
	bookings := append([]model.Booking(nil), s.bookings...)
	s.mu.Unlock()

	var out []model.RoomAvailability
	for _, room := range rooms {
		if building != "" && building != BuildingAll && string(room.Building) != building {
			continue
		}
		occupying := helper.ActiveForRoomAndDate(bookings, room.ID, date)
		slots, err := helper.FreeSlots(room, occupying)
		if err != nil {
			return nil, err
		}
		out = append(out, model.RoomAvailability{Room: room, AvailableSlots: slots})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].AvailableSlots) > 0 && len(out[j].AvailableSlots) == 0
	})
	return out, nil
}

// ---- session & theme ----

func (s *Store) CurrentUser() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) SetCurrentUser(u *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
	if u == nil {
		s.persistLocked(database.KeyUser, model.User{})
		return
	}
	s.persistLocked(database.KeyUser, *u)
}

func (s *Store) Theme() model.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

func (s *Store) SetTheme(t model.Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = t
	s.persistLocked(database.KeyTheme, t)
}
