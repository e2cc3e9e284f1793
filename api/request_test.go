package api_test

import (
	"errors"
	"testing"

	"commandapi/api"
	"commandapi/model"
)

func ptr[T any](v T) *T {
	return &v
}

func TestCommandRequest_ForCreate(t *testing.T) {
	req := api.CommandRequest{
		ID: ptr[int64](9), HowTo: "Do Something", Platform: "Linux", CommandLine: "ls -la",
	}
	got := req.ForCreate()
	want := model.Command{HowTo: "Do Something", Platform: "Linux", CommandLine: "ls -la"}
	if got != want {
		t.Errorf("ForCreate() = %+v, want %+v", got, want)
	}
}

func TestCommandRequest_ForUpdate(t *testing.T) {
	type when struct {
		req    api.CommandRequest
		pathID int64
	}
	type then struct {
		cmd model.Command
		err error
	}

	for name, testcase := range map[string]struct {
		when
		then
	}{
		"when ids match, it returns the command with the id": {
			when{
				req:    api.CommandRequest{ID: ptr[int64](3), HowTo: "h", Platform: "p", CommandLine: "c"},
				pathID: 3,
			},
			then{cmd: model.Command{ID: 3, HowTo: "h", Platform: "p", CommandLine: "c"}},
		},
		"when ids differ, it returns ErrIDMismatch": {
			when{
				req:    api.CommandRequest{ID: ptr[int64](4), HowTo: "h"},
				pathID: 3,
			},
			then{err: api.ErrIDMismatch},
		},
		"when body has no id, it returns ErrIDMismatch": {
			when{
				req:    api.CommandRequest{HowTo: "h"},
				pathID: 3,
			},
			then{err: api.ErrIDMismatch},
		},
		"when body has id 0 and path has 0, it accepts": {
			when{
				req:    api.CommandRequest{ID: ptr[int64](0)},
				pathID: 0,
			},
			then{cmd: model.Command{}},
		},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := testcase.when.req.ForUpdate(testcase.when.pathID)
			if testcase.then.err != nil {
				if !errors.Is(err, testcase.then.err) {
					t.Fatalf("err = %v, want %v", err, testcase.then.err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != testcase.then.cmd {
				t.Errorf("ForUpdate() = %+v, want %+v", got, testcase.then.cmd)
			}
		})
	}
}
