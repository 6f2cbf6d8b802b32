package initializers

import (
	"fmt"
	"os"

	badger "github.com/dgraph-io/badger/v4"
)

// ConnectToDB opens the local state database under dir, creating the
// directory when missing. All client-held state (session, cart) lives here
// as whole-record JSON blobs.
func ConnectToDB(dir string) (*badger.DB, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open local database: %w", err)
	}
	return db, nil
}
