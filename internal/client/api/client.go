// Package api is the typed HTTP client for the taskboard REST API. It speaks
// the server's JSON envelope and surfaces the server's message text as the
// error the caller sees.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrUnauthorized marks a 401; the CLI uses it to tell "please login" apart
// from other failures.
var ErrUnauthorized = errors.New("unauthorized")

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type Task struct {
	ID          string    `json:"id"`
	Owner       string    `json:"owner"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TaskPatch mirrors the PUT /api/tasks/:id body; nil fields are omitted.
type TaskPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

type Client struct {
	base  string
	hc    *http.Client
	token string
}

func New(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken installs the bearer credential used on protected calls.
func (c *Client) SetToken(t string) { c.token = t }

// envelope is the uniform response shape; unused keys stay zero.
type envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	User      *User  `json:"user"`
	Token     string `json:"token"`
	Task      *Task  `json:"task"`
	Tasks     []Task `json:"tasks"`
	Count     int    `json:"count"`
	TaskID    string `json:"taskId"`
	Timestamp string `json:"timestamp"`
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("server unreachable: %w", err)
	}
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("bad response (%d): %w", res.StatusCode, err)
	}
	if !env.Success {
		if res.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("%w: %s", ErrUnauthorized, env.Message)
		}
		return nil, errors.New(env.Message)
	}
	return &env, nil
}

func (c *Client) Health(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/api/health", nil)
	return err
}

func (c *Client) Register(ctx context.Context, name, email, password string) (User, string, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/auth/register", map[string]string{
		"name": name, "email": email, "password": password,
	})
	if err != nil {
		return User{}, "", err
	}
	return *env.User, env.Token, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (User, string, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email": email, "password": password,
	})
	if err != nil {
		return User{}, "", err
	}
	return *env.User, env.Token, nil
}

func (c *Client) Profile(ctx context.Context) (User, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/users/profile", nil)
	if err != nil {
		return User{}, err
	}
	return *env.User, nil
}

func (c *Client) UpdateProfile(ctx context.Context, name string) (User, error) {
	env, err := c.do(ctx, http.MethodPut, "/api/users/profile", map[string]string{"name": name})
	if err != nil {
		return User{}, err
	}
	return *env.User, nil
}

func (c *Client) Tasks(ctx context.Context, query, status string) ([]Task, error) {
	q := url.Values{}
	if query != "" {
		q.Set("q", query)
	}
	if status != "" {
		q.Set("status", status)
	}
	path := "/api/tasks"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}
	env, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return env.Tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, title, description, status string) (Task, error) {
	body := map[string]string{"title": title}
	if description != "" {
		body["description"] = description
	}
	if status != "" {
		body["status"] = status
	}
	env, err := c.do(ctx, http.MethodPost, "/api/tasks", body)
	if err != nil {
		return Task{}, err
	}
	return *env.Task, nil
}

func (c *Client) UpdateTask(ctx context.Context, id string, patch TaskPatch) (Task, error) {
	env, err := c.do(ctx, http.MethodPut, "/api/tasks/"+id, patch)
	if err != nil {
		return Task{}, err
	}
	return *env.Task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) (string, error) {
	env, err := c.do(ctx, http.MethodDelete, "/api/tasks/"+id, nil)
	if err != nil {
		return "", err
	}
	return env.TaskID, nil
}
