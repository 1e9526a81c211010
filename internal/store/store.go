package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/hailam/chessbits/internal/board"
)

// Storage key prefixes
const (
	prefixPosition = "position/"
	prefixHash     = "hash/"
)

var (
	// ErrNotFound is returned when no position is stored under a name or hash.
	ErrNotFound = errors.New("position not found")
	// ErrInvalidName is returned for empty or whitespace-only names.
	ErrInvalidName = errors.New("invalid position name")
)

// Entry is a stored position.
type Entry struct {
	Name    string    `json:"name"`
	FEN     string    `json:"fen"`
	SavedAt time.Time `json:"saved_at"`
}

// Store wraps BadgerDB for persistent storage
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a store in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open store at %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// OpenDefault opens the store in the platform data directory.
func OpenDefault() (*Store, error) {
	dir, err := DatabaseDir()
	if err != nil {
		return nil, err
	}
	log.Printf("Database directory: %s", dir)
	return Open(dir)
}

// Close closes the database
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func positionKey(name string) []byte {
	return []byte(prefixPosition + name)
}

// hashPrefix groups the index keys of every entry holding one position.
func hashPrefix(h uint64) []byte {
	return []byte(prefixHash + strconv.FormatUint(h, 16) + "/")
}

func hashKey(h uint64, name string) []byte {
	return append(hashPrefix(h), name...)
}

func validName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	return nil
}

// Save stores the board's FEN under name, replacing any earlier entry.
func (s *Store) Save(name string, b *board.Board) error {
	if err := validName(name); err != nil {
		return err
	}
	entry := Entry{Name: name, FEN: b.FEN(), SavedAt: time.Now()}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		// Drop the index key of the entry being replaced.
		old, err := getEntry(txn, name)
		switch {
		case err == nil:
			if err := dropHash(txn, old); err != nil {
				return err
			}
		case !errors.Is(err, ErrNotFound):
			return err
		}

		if err := txn.Set(positionKey(name), data); err != nil {
			return err
		}
		return txn.Set(hashKey(b.Hash(), name), nil)
	})
}

func getEntry(txn *badger.Txn, name string) (Entry, error) {
	var entry Entry
	item, err := txn.Get(positionKey(name))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return entry, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	if err != nil {
		return entry, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &entry)
	})
	return entry, err
}

// dropHash removes the index key of entry.
func dropHash(txn *badger.Txn, entry Entry) error {
	b, err := board.ParseFEN(entry.FEN)
	if err != nil {
		return nil // unparsable entries were never indexed
	}
	return txn.Delete(hashKey(b.Hash(), entry.Name))
}

// Get returns the stored entry for name.
func (s *Store) Get(name string) (Entry, error) {
	var entry Entry
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		entry, err = getEntry(txn, name)
		return err
	})
	return entry, err
}

// Load returns a fresh board for the position stored under name.
func (s *Store) Load(name string) (*board.Board, error) {
	entry, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	b, err := board.ParseFEN(entry.FEN)
	if err != nil {
		return nil, fmt.Errorf("stored position %q: %w", name, err)
	}
	return b, nil
}

// Lookup returns the first name, in name order, a position was saved under.
// Positions match on placement, side to move, castling and en passant;
// clocks are ignored.
func (s *Store) Lookup(b *board.Board) (string, error) {
	names, err := s.LookupAll(b)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", ErrNotFound
	}
	return names[0], nil
}

// LookupAll returns every name the position was saved under, sorted.
func (s *Store) LookupAll(b *board.Board) ([]string, error) {
	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := hashPrefix(b.Hash())
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			names = append(names, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	return names, err
}

// List returns every stored entry, sorted by name.
func (s *Store) List() ([]Entry, error) {
	var entries []Entry
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(prefixPosition)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var entry Entry
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &entry)
			}); err != nil {
				return err
			}
			entries = append(entries, entry)
		}
		return nil
	})
	return entries, err
}

// Delete removes the entry stored under name.
func (s *Store) Delete(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		entry, err := getEntry(txn, name)
		if err != nil {
			return err
		}
		if err := dropHash(txn, entry); err != nil {
			return err
		}
		return txn.Delete(positionKey(name))
	})
}
