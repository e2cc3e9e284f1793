package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"commandapi/api"
	"commandapi/client"
	"commandapi/db"
	"commandapi/logging"
	"commandapi/model"
)

func newClient(t *testing.T) *client.Client {
	t.Helper()
	srv := httptest.NewServer(api.NewServer(db.NewMemory(), logging.Discard()))
	t.Cleanup(srv.Close)

	c, err := client.New(srv.URL, srv.Client())
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestClient_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)

	if got, err := c.List(ctx); err != nil || len(got) != 0 {
		t.Fatalf("List() = %v, %v; want empty", got, err)
	}

	want := model.Command{HowTo: "Do Something", Platform: "Linux", CommandLine: "ls -la"}
	id, err := c.Add(ctx, want)
	if err != nil {
		t.Fatal(err)
	}
	if id != 1 {
		t.Errorf("id = %d, want 1", id)
	}
	want.ID = id

	got, found, err := c.Find(ctx, id)
	if err != nil || !found {
		t.Fatalf("Find(%d) = %v, %v", id, found, err)
	}
	if got != want {
		t.Errorf("Find = %+v, want %+v", got, want)
	}

	want.HowTo = "UPDATED"
	if err := c.Update(ctx, id, want); err != nil {
		t.Fatal(err)
	}
	list, err := c.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0] != want {
		t.Errorf("List = %+v, want [%+v]", list, want)
	}

	if err := c.Remove(ctx, id); err != nil {
		t.Fatal(err)
	}
	if _, found, err := c.Find(ctx, id); err != nil || found {
		t.Errorf("Find after Remove = %v, %v; want not found", found, err)
	}
}

func TestClient_Missing(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)

	if err := c.Update(ctx, 3, model.Command{HowTo: "h"}); !errors.Is(err, db.ErrMissing) {
		t.Errorf("Update(missing) = %v, want ErrMissing", err)
	}
	if err := c.Remove(ctx, 3); !errors.Is(err, db.ErrMissing) {
		t.Errorf("Remove(missing) = %v, want ErrMissing", err)
	}
}

func TestClient_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c, err := client.New(srv.URL, srv.Client())
	if err != nil {
		t.Fatal(err)
	}

	_, err = c.List(context.Background())
	serr := new(client.StatusError)
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if serr.Code != http.StatusBadGateway {
		t.Errorf("Code = %d, want 502", serr.Code)
	}
}

func TestNew(t *testing.T) {
	for _, base := range []string{"", "localhost:8080", "/api"} {
		if _, err := client.New(base, nil); err == nil {
			t.Errorf("New(%q) succeeded, want error", base)
		}
	}
}
