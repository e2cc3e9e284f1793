package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"

	"commandapi/api"
	"commandapi/db"
	"commandapi/model"
)

// StatusError is an unexpected HTTP status from the server.
type StatusError struct {
	Method string
	URL    string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: unexpected status %d %s", e.Method, e.URL, e.Code, http.StatusText(e.Code))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Client is a db.Store backed by a commandapi server.
type Client struct {
	base       *url.URL
	httpclient *http.Client
}

var _ db.Store = &Client{}

// New returns a client for the server at base, e.g. "http://127.0.0.1:8080".
//
// A nil httpclient means http.DefaultClient.
func New(base string, httpclient *http.Client) (*Client, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("server url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("server url %q: should be absolute", base)
	}
	if httpclient == nil {
		httpclient = http.DefaultClient
	}
	return &Client{base: u, httpclient: httpclient}, nil
}

func (c *Client) apipath(elem ...string) string {
	u := *c.base
	u.Path = path.Join(append([]string{u.Path, "/api/commands"}, elem...)...)
	return u.String()
}

func (c *Client) do(ctx context.Context, method, target string, body any) (*http.Response, error) {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, r)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.httpclient.Do(req)
}

func statusError(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &StatusError{
		Method: resp.Request.Method,
		URL:    resp.Request.URL.String(),
		Code:   resp.StatusCode,
		Body:   string(b),
	}
}

func (c *Client) List(ctx context.Context) ([]model.Command, error) {
	resp, err := c.do(ctx, http.MethodGet, c.apipath(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}
	commands := []model.Command{}
	if err := json.NewDecoder(resp.Body).Decode(&commands); err != nil {
		return nil, fmt.Errorf("list commands: %w", err)
	}
	return commands, nil
}

func (c *Client) Find(ctx context.Context, id int64) (model.Command, bool, error) {
	resp, err := c.do(ctx, http.MethodGet, c.apipath(strconv.FormatInt(id, 10)), nil)
	if err != nil {
		return model.Command{}, false, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return model.Command{}, false, nil
	default:
		return model.Command{}, false, statusError(resp)
	}

	var cmd model.Command
	if err := json.NewDecoder(resp.Body).Decode(&cmd); err != nil {
		return model.Command{}, false, fmt.Errorf("find command %d: %w", id, err)
	}
	return cmd, true, nil
}

func (c *Client) Add(ctx context.Context, cmd model.Command) (int64, error) {
	resp, err := c.do(ctx, http.MethodPost, c.apipath(), commandBody(cmd, false))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return 0, statusError(resp)
	}
	var created model.Command
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return 0, fmt.Errorf("add command: %w", err)
	}
	return created.ID, nil
}

func (c *Client) Update(ctx context.Context, id int64, cmd model.Command) error {
	cmd.ID = id
	resp, err := c.do(ctx, http.MethodPut, c.apipath(strconv.FormatInt(id, 10)), commandBody(cmd, true))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("command %d: %w", id, db.ErrMissing)
	default:
		return statusError(resp)
	}
}

func (c *Client) Remove(ctx context.Context, id int64) error {
	resp, err := c.do(ctx, http.MethodDelete, c.apipath(strconv.FormatInt(id, 10)), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("command %d: %w", id, db.ErrMissing)
	default:
		return statusError(resp)
	}
}

// Close is a no-op. It lets Client stand in for a db.Backend.
func (c *Client) Close() error {
	return nil
}

func commandBody(cmd model.Command, withID bool) api.CommandRequest {
	b := api.CommandRequest{HowTo: cmd.HowTo, Platform: cmd.Platform, CommandLine: cmd.CommandLine}
	if withID {
		b.ID = &cmd.ID
	}
	return b
}
