package cmd

import "time"

// Config carries the runtime settings loaded from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// StaleTaskThreshold is how long an open task may sit before the
	// watchdog job starts reporting it.
	StaleTaskThreshold time.Duration
}
