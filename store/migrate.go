package store

import (
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/pacefit/pace/internal/models"
)

const (
	schemaKey     = "schema"
	schemaVersion = 2
)

// migrateLogIDs gives an id to logs written before logs carried one, and
// fills in the skipped count from the per-exercise entries.
func migrateLogIDs(tx *bolt.Tx) error {
	bucket := tx.Bucket([]byte(logBucket))

	cur := bucket.Cursor()

	updates := make(map[string][]byte)

	for k, v := cur.First(); k != nil; k, v = cur.Next() {
		var l models.SessionLog

		err := json.Unmarshal(v, &l)
		if err != nil {
			return errCorruptLog.Fmt(k).Wrap(err)
		}

		if l.ID != "" {
			continue
		}

		l.ID = uuid.NewString()
		l.SkippedCount = 0

		for i := range l.Exercises {
			if l.Exercises[i].Skipped {
				l.SkippedCount++
			}
		}

		b, err := json.Marshal(&l)
		if err != nil {
			return err
		}

		updates[string(k)] = b
	}

	for k, v := range updates {
		err := bucket.Put([]byte(k), v)
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *Client) version(tx *bolt.Tx) int {
	v := tx.Bucket([]byte(metaBucket)).Get([]byte(schemaKey))

	n, err := strconv.Atoi(string(v))
	if err != nil {
		return 1
	}

	return n
}

func (c *Client) migrate(tx *bolt.Tx) error {
	if c.version(tx) >= schemaVersion {
		return nil
	}

	err := migrateLogIDs(tx)
	if err != nil {
		return err
	}

	return tx.Bucket([]byte(metaBucket)).Put(
		[]byte(schemaKey),
		[]byte(strconv.Itoa(schemaVersion)),
	)
}
