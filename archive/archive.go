// Package archive retains the per-step snapshots a scenario run
// produces, keyed by scenario name and step number in a pebble store,
// so a run can be inspected or re-rendered after the fact.
package archive

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
)

// -------------------- Record --------------------

// Record is one archived snapshot.
type Record struct {
	TakenAt int64 // unix nanoseconds
	Data    []byte
}

// binary encoding: [takenAt:8][data...]
func encodeRecord(r Record) []byte {
	buf := make([]byte, 8+len(r.Data))
	binary.BigEndian.PutUint64(buf[:8], uint64(r.TakenAt))
	copy(buf[8:], r.Data)
	return buf
}

func decodeRecord(b []byte) (Record, error) {
	if len(b) < 8 {
		return Record{}, errors.New("archive: record too short")
	}
	data := make([]byte, len(b)-8)
	copy(data, b[8:])
	return Record{
		TakenAt: int64(binary.BigEndian.Uint64(b[:8])),
		Data:    data,
	}, nil
}

// -------------------- Store --------------------

type Store struct {
	db *pebble.DB
}

func Open(dir string) (*Store, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// -------------------- API --------------------

// Put archives one snapshot for the given scenario and step.
func (s *Store) Put(scenario string, step uint32, data []byte) error {
	rec := Record{
		TakenAt: time.Now().UnixNano(),
		Data:    data,
	}
	return s.db.Set(keyFor(scenario, step), encodeRecord(rec), pebble.Sync)
}

// Get returns the archived snapshot for one step.
func (s *Store) Get(scenario string, step uint32) (Record, error) {
	val, closer, err := s.db.Get(keyFor(scenario, step))
	if err != nil {
		return Record{}, err
	}
	defer closer.Close()

	return decodeRecord(val)
}

// Scan visits every archived step of a scenario in step order.
func (s *Store) Scan(scenario string, fn func(step uint32, rec Record) error) error {
	prefix := []byte(fmt.Sprintf("snap/%s/", scenario))
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: append(append([]byte{}, prefix...), '~'),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		step, err := parseKey(iter.Key(), prefix)
		if err != nil {
			return err
		}

		rec, err := decodeRecord(iter.Value())
		if err != nil {
			return err
		}

		if err := fn(step, rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

// -------------------- Helpers --------------------

func keyFor(scenario string, step uint32) []byte {
	return []byte(fmt.Sprintf("snap/%s/%010d", scenario, step))
}

func parseKey(b, prefix []byte) (uint32, error) {
	var step uint32
	_, err := fmt.Sscanf(string(bytes.TrimPrefix(b, prefix)), "%d", &step)
	return step, err
}
