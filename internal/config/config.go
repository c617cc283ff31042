package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment.
type Config struct {
	DataDir          string
	RoomsFile        string
	GuestsFile       string
	ReservationsFile string

	MaxRooms        int
	MaxGuests       int
	MaxReservations int

	// RoomCapacityMax caps how many beds a room may declare; 0 disables
	// the upper bound.
	RoomCapacityMax int
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	cfg.DataDir = getEnv("HOTEL_DATA_DIR", "./data")
	cfg.RoomsFile = getEnv("ROOMS_FILE", "rooms.csv")
	cfg.GuestsFile = getEnv("GUESTS_FILE", "guests.csv")
	cfg.ReservationsFile = getEnv("RESERVATIONS_FILE", "reservations.csv")

	var err error
	cfg.MaxRooms, err = getEnvAsInt("MAX_ROOMS", 200)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_ROOMS: %w", err)
	}
	cfg.MaxGuests, err = getEnvAsInt("MAX_GUESTS", 500)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_GUESTS: %w", err)
	}
	cfg.MaxReservations, err = getEnvAsInt("MAX_RESERVATIONS", 1000)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_RESERVATIONS: %w", err)
	}
	if cfg.MaxRooms < 1 || cfg.MaxGuests < 1 || cfg.MaxReservations < 1 {
		return nil, fmt.Errorf("store capacities must be at least 1")
	}

	cfg.RoomCapacityMax, err = getEnvAsInt("ROOM_CAPACITY_MAX", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid ROOM_CAPACITY_MAX: %w", err)
	}
	if cfg.RoomCapacityMax < 0 {
		return nil, fmt.Errorf("ROOM_CAPACITY_MAX must not be negative")
	}

	return cfg, nil
}

// RoomsPath returns the full path of the rooms data file.
func (c *Config) RoomsPath() string {
	return filepath.Join(c.DataDir, c.RoomsFile)
}

// GuestsPath returns the full path of the guests data file.
func (c *Config) GuestsPath() string {
	return filepath.Join(c.DataDir, c.GuestsFile)
}

// ReservationsPath returns the full path of the reservations data file.
func (c *Config) ReservationsPath() string {
	return filepath.Join(c.DataDir, c.ReservationsFile)
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
// It returns the default value if the variable is not set.
// It returns an error if the variable is set but is not a valid integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}
