// Package store connects to the data store and manages session logs and the
// user profile
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/pacefit/pace/internal/models"
)

const (
	logBucket     = "logs"
	profileBucket = "profile"
	metaBucket    = "meta"

	profileKey = "current"

	// keyFormat is fixed width so that byte order matches time order.
	keyFormat = "2006-01-02T15:04:05.000000000Z07:00"
)

var _ DB = (*Client)(nil)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
	path string
}

func logKey(t time.Time) []byte {
	return []byte(t.UTC().Format(keyFormat))
}

func (c *Client) RecordSession(l *models.SessionLog) error {
	if l.FinishedAt.IsZero() {
		return errMissingFinishTime.Fmt(l.ID)
	}

	value, err := json.Marshal(l)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(logBucket)).Put(logKey(l.FinishedAt), value)
	})
}

func (c *Client) GetSessions(
	startTime, endTime time.Time,
) ([]models.SessionLog, error) {
	var logs []models.SessionLog

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(logBucket)).Cursor()
		minKey := logKey(startTime)
		maxKey := logKey(endTime)

		for k, v := cur.Seek(minKey); k != nil && bytes.Compare(k, maxKey) <= 0; k, v = cur.Next() {
			var l models.SessionLog

			if err := json.Unmarshal(v, &l); err != nil {
				return errCorruptLog.Fmt(k).Wrap(err)
			}

			logs = append(logs, l)
		}

		return nil
	})

	return logs, err
}

func (c *Client) DeleteSessions(logs []models.SessionLog) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(logBucket))

		for i := range logs {
			if err := b.Delete(logKey(logs[i].FinishedAt)); err != nil {
				return err
			}
		}

		return nil
	})
}

func (c *Client) GetProfile() (*models.Profile, error) {
	var p *models.Profile

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(profileBucket)).Get([]byte(profileKey))
		if len(v) == 0 {
			return nil
		}

		p = &models.Profile{}

		return json.Unmarshal(v, p)
	})

	return p, err
}

func (c *Client) SaveProfile(p *models.Profile) error {
	value, err := json.Marshal(p)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(profileBucket)).Put([]byte(profileKey), value)
	})
}

func (c *Client) Open() error {
	db, err := openDB(c.path)
	if err != nil {
		return err
	}

	c.DB = db

	return nil
}

// open creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errPaceRunning.Wrap(err)
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	c := &Client{
		DB:   db,
		path: dbPath,
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{logBucket, profileBucket, metaBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}

		return c.migrate(tx)
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return c, nil
}

// IsRunning reports whether another process holds the database at dbPath.
func IsRunning(dbPath string) (bool, error) {
	db, err := bolt.Open(dbPath, 0o600, &bolt.Options{
		Timeout:  100 * time.Millisecond,
		ReadOnly: true,
	})
	if err == nil {
		return false, db.Close()
	}

	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	// a lock held by another process surfaces as a timeout
	if errors.Is(err, bolt.ErrTimeout) {
		return true, nil
	}

	return false, err
}
