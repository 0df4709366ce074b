package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/example/donations/internal/core/donation"
	"github.com/example/donations/internal/ports/secondary"
)

// Session binds store operations to one validated data file.
// The path is fixed for the life of the session; choosing another file means opening a new one.
type Session struct {
	ID   string
	Path string
}

// OpenSession checks that path names an existing regular file and returns a session for it.
// A rejected path returns an error wrapping donation.ErrPathNotFound.
func OpenSession(ctx context.Context, store secondary.LineStore, path string) (*Session, error) {
	var exists, isDir bool
	if path != "" {
		var err error
		exists, isDir, err = store.Stat(ctx, path)
		if err != nil {
			return nil, err
		}
	}

	guard := donation.CanOpenStore(donation.OpenStoreContext{
		Path:   path,
		Exists: exists,
		IsDir:  isDir,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	return &Session{
		ID:   uuid.NewString(),
		Path: path,
	}, nil
}
