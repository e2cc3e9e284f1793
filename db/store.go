package db

import (
	"context"
	"errors"

	"commandapi/model"
)

// ErrMissing is returned by Update and Remove when no command has the id.
var ErrMissing = errors.New("command is missing")

// Store is the collection of commands, keyed by an id the store assigns.
//
// Implementations must be safe for concurrent use.
type Store interface {
	// List returns every command in id order. An empty store gives an empty slice.
	List(ctx context.Context) ([]model.Command, error)

	// Find looks up a command by id. A missing id is reported by a false second result,
	// not by an error.
	Find(ctx context.Context, id int64) (model.Command, bool, error)

	// Add stores cmd under a fresh id and returns that id. cmd.ID is ignored.
	//
	// Ids are never handed out twice by the same store, even after Remove.
	Add(ctx context.Context, cmd model.Command) (int64, error)

	// Update replaces every field but the id of the command with the id.
	//
	// It returns ErrMissing when there is no such command.
	Update(ctx context.Context, id int64, cmd model.Command) error

	// Remove deletes the command with the id.
	//
	// It returns ErrMissing when there is no such command.
	Remove(ctx context.Context, id int64) error
}
