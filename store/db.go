package store

import (
	"time"

	"github.com/pacefit/pace/internal/models"
)

// DB is the database storage interface.
type DB interface {
	// RecordSession saves the log of a finished workout. A log with the same
	// finish time is overwritten.
	RecordSession(l *models.SessionLog) error
	// GetSessions returns the logs of workouts finished within the given
	// bounds, oldest first
	GetSessions(startTime, endTime time.Time) ([]models.SessionLog, error)
	// DeleteSessions deletes one or more session logs
	DeleteSessions(logs []models.SessionLog) error
	// GetProfile returns the saved profile, or nil if none was saved
	GetProfile() (*models.Profile, error)
	// SaveProfile replaces the saved profile
	SaveProfile(p *models.Profile) error
	// Close ends the database connection
	Close() error
	// Open begins a database connection
	Open() error
}
