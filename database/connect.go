package database

import (
	"fmt"
	"log"
	"strconv"

	"room_booking/config"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect builds the snapshot backend selected by SNAPSHOT_DRIVER
// (redis, postgres or memory). The handle is returned, not stored in a
// package global; main passes it to the store.
func Connect() (SnapshotStore, error) {
	driver := config.ConfigOr("SNAPSHOT_DRIVER", "memory")

	switch driver {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     config.ConfigOr("REDIS_ADDR", "localhost:6379"),
			Password: config.Config("REDIS_PASSWORD"),
		})
		log.Println("snapshot store: redis")
		return NewRedisStore(client, "snapshot:"), nil

	case "postgres":
		p := config.ConfigOr("DB_PORT", "5432")
		port, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("failed to parse database port %q: %w", p, err)
		}
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			config.Config("DB_HOST"), port, config.Config("DB_USER"),
			config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect database: %w", err)
		}
		log.Println("snapshot store: postgres")
		return NewPostgresStore(db)

	case "memory":
		log.Println("snapshot store: in-memory (state is lost on restart)")
		return NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unknown SNAPSHOT_DRIVER %q", driver)
	}
}
