package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	bolt "go.etcd.io/bbolt"

	"chosenoffset.com/tilewalk/internal/logger"
	"chosenoffset.com/tilewalk/internal/world"
	"chosenoffset.com/tilewalk/internal/world/region"
)

var (
	regionsBucket = []byte("regions")
	worldsBucket  = []byte("worlds")
	currentKey    = []byte("current")
)

// BoltStore keeps regions and the world save in a single bbolt file.
type BoltStore struct {
	db  *bolt.DB
	log *logrus.Entry
}

// OpenBolt opens or creates the database at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open region database: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{regionsBucket, worldsBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create buckets: %w", err)
	}
	return &BoltStore{db: db, log: logger.For("store")}, nil
}

// LoadRegion reads the named region.
func (s *BoltStore) LoadRegion(name string, now time.Time) (*region.Region, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		// Values are only valid inside the transaction.
		if v := tx.Bucket(regionsBucket).Get([]byte(name)); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read region %s: %w", name, err)
	}
	if data == nil {
		return nil, fmt.Errorf("%w: %s", region.ErrNotFound, name)
	}
	return decodeRegion(name, data, now)
}

// SaveRegion writes r, replacing any previous copy.
func (s *BoltStore) SaveRegion(r *region.Region, now time.Time) error {
	if err := checkName(r.Name); err != nil {
		return err
	}
	data, err := encodeRegion(r, now)
	if err != nil {
		return err
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(regionsBucket).Put([]byte(r.Name), data)
	})
	if err != nil {
		return fmt.Errorf("failed to write region %s: %w", r.Name, err)
	}
	s.log.WithField("region", r.Name).Debug("region written")
	return nil
}

// Regions lists the names of all stored regions.
func (s *BoltStore) Regions() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(regionsBucket).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}

// SaveWorld writes the world save.
func (s *BoltStore) SaveWorld(doc world.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode world save: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(worldsBucket).Put(currentKey, data)
	})
}

// LoadWorld reads the world save, or returns ErrNoWorld.
func (s *BoltStore) LoadWorld() (world.Document, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(worldsBucket).Get(currentKey); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return world.Document{}, fmt.Errorf("failed to read world save: %w", err)
	}
	if data == nil {
		return world.Document{}, ErrNoWorld
	}
	return decodeWorld(data)
}

// Close releases the database file lock.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
