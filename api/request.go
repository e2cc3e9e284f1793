package api

import (
	"errors"
	"fmt"

	"commandapi/model"
)

var ErrIDMismatch = errors.New("id in path and body differ")

// CommandRequest is the body of POST and PUT on commands.
//
// ID is a pointer so that a body without "id" can be told apart from "id": 0.
type CommandRequest struct {
	ID          *int64 `json:"id,omitempty"`
	HowTo       string `json:"howTo"`
	Platform    string `json:"platform"`
	CommandLine string `json:"commandLine"`
}

// ForCreate returns the command to be added. Any id in the request is dropped;
// the store assigns one.
func (r CommandRequest) ForCreate() model.Command {
	return model.Command{
		HowTo:       r.HowTo,
		Platform:    r.Platform,
		CommandLine: r.CommandLine,
	}
}

// ForUpdate returns the command replacing the one at pathID.
//
// The request must carry the same id as the path, otherwise ErrIDMismatch.
func (r CommandRequest) ForUpdate(pathID int64) (model.Command, error) {
	if r.ID == nil {
		return model.Command{}, fmt.Errorf("%w: body has no id, path has %d", ErrIDMismatch, pathID)
	}
	if *r.ID != pathID {
		return model.Command{}, fmt.Errorf("%w: body has %d, path has %d", ErrIDMismatch, *r.ID, pathID)
	}
	return model.Command{
		ID:          pathID,
		HowTo:       r.HowTo,
		Platform:    r.Platform,
		CommandLine: r.CommandLine,
	}, nil
}
