// Package transcript records what the player saw. Each session's rendered
// output lines go into a bbolt bucket, append-only; nothing here touches
// game state, so save/restore semantics stay out of the engine.
package transcript

import (
	"encoding/binary"
	"fmt"

	bbolt "go.etcd.io/bbolt"
)

var bucketTranscripts = []byte("transcripts")

// Store wraps a bbolt database holding one sub-bucket of numbered lines per
// session.
type Store struct {
	bolt *bbolt.DB
}

// Open opens or creates a transcript database file.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("transcript: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketTranscripts)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("transcript: create bucket: %w", err)
	}
	return &Store{bolt: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.bolt != nil {
		return s.bolt.Close()
	}
	return nil
}

// Append adds one line to a session's transcript.
func (s *Store) Append(session, line string) error {
	return s.bolt.Update(func(tx *bbolt.Tx) error {
		b, err := tx.Bucket(bucketTranscripts).CreateBucketIfNotExists([]byte(session))
		if err != nil {
			return fmt.Errorf("transcript: session %s: %w", session, err)
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)
		return b.Put(key, []byte(line))
	})
}

// Lines returns a session's transcript in append order. An unknown session
// reads as empty.
func (s *Store) Lines(session string) ([]string, error) {
	var lines []string
	err := s.bolt.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketTranscripts).Bucket([]byte(session))
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, v []byte) error {
			lines = append(lines, string(v))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("transcript: read %s: %w", session, err)
	}
	return lines, nil
}

// Sessions lists every recorded session id.
func (s *Store) Sessions() ([]string, error) {
	var ids []string
	err := s.bolt.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketTranscripts).ForEachBucket(func(name []byte) error {
			ids = append(ids, string(name))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("transcript: list sessions: %w", err)
	}
	return ids, nil
}
