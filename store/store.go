package store

import (
	"encoding/json"
	"errors"
	"log"

	badger "github.com/dgraph-io/badger/v4"
)

// Storage keys, one whole-record JSON blob each. These are the same logical
// records the web client kept in localStorage.
const (
	keyToken          = "token"
	keyUser           = "user"
	keyAgentToken     = "agentToken"
	keyAgent          = "agent"
	keyCart           = "cart"
	keyCartRestaurant = "cartRestaurant"
)

// Store is the durable local state database. Every record is read once at
// startup and replaced wholesale on mutation, so readers never observe a
// partial write.
type Store struct {
	db *badger.DB
}

func New(db *badger.DB) *Store {
	return &Store{db: db}
}

// GetJSON loads a record into v. It reports false for a missing or corrupt
// record; corruption starts the owning store empty, never fails it.
func (s *Store) GetJSON(key string, v any) bool {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			log.Println("Local store read error:", err)
		}
		return false
	}
	return true
}

func (s *Store) PutJSON(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Println("Local store marshal error:", err)
		return
	}
	s.put(key, data)
}

func (s *Store) GetString(key string) string {
	var value string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = string(val)
			return nil
		})
	})
	if err != nil {
		return ""
	}
	return value
}

func (s *Store) PutString(key, value string) {
	s.put(key, []byte(value))
}

func (s *Store) Delete(keys ...string) {
	err := s.db.Update(func(txn *badger.Txn) error {
		for _, key := range keys {
			if err := txn.Delete([]byte(key)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Println("Local store delete error:", err)
	}
}

func (s *Store) put(key string, data []byte) {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		log.Println("Local store write error:", err)
	}
}
