package userservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// The user service owns login identities for dealers, ASPs and mechanics.
// One failed call aborts the enclosing write path; there is no retry.

type User struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

type CreateUserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

type UpdateUserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Client is injected into the partner services so tests can fake it.
type Client interface {
	CreateUser(ctx context.Context, in CreateUserInput) (*User, error)
	UpdateUser(ctx context.Context, id uint, in UpdateUserInput) (*User, error)
	GetUser(ctx context.Context, id uint) (*User, error)
}

type HTTPClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (c *HTTPClient) CreateUser(ctx context.Context, in CreateUserInput) (*User, error) {
	return c.doUser(ctx, http.MethodPost, "/users/save", in)
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id uint, in UpdateUserInput) (*User, error) {
	return c.doUser(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), in)
}

func (c *HTTPClient) GetUser(ctx context.Context, id uint) (*User, error) {
	return c.doUser(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil)
}

func (c *HTTPClient) doUser(ctx context.Context, method, path string, body interface{}) (*User, error) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("user service unreachable: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("user service: bad response: %w", err)
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = fmt.Sprintf("user service returned status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("user service: %s", msg)
	}

	var u User
	if err := json.Unmarshal(env.Data, &u); err != nil {
		return nil, fmt.Errorf("user service: bad user payload: %w", err)
	}
	return &u, nil
}
