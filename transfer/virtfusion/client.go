// Package virtfusion is a typed client for the VirtFusion control-plane
// API. Non-2xx responses surface as *APIError carrying the raw status
// and body so callers can classify failures semantically.
package virtfusion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// API is the subset of the control plane the push engine consumes.
type API interface {
	GetServer(ctx context.Context, serverID int32) (*Server, error)
	CreateUser(ctx context.Context, params CreateUserParams) (*User, error)
	GetUserByExtRelation(ctx context.Context, extRelationID int32) (*User, error)
	UserHasServers(ctx context.Context, userID int32) (bool, error)
	TransferServer(ctx context.Context, serverID, newUserID int32) error
}

// Server is the control plane's view of a provisioned machine.
type Server struct {
	ID      int32  `json:"id"`
	Name    string `json:"name"`
	OwnerID int32  `json:"owner"`
}

// User is the control plane's representation of an account,
// correlated to a ledger client via ExtRelationID.
type User struct {
	ID            int32  `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ExtRelationID int32  `json:"extRelationId"`
}

type CreateUserParams struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	ExtRelationID int32  `json:"extRelationId"`
	SendMail      bool   `json:"sendMail"`
}

// Client talks to one VirtFusion endpoint with a bearer token.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New builds a client for the given hostname and token. A bare
// hostname gets https:// prepended; trailing slashes are dropped.
func New(hostname, token string) *Client {
	if !strings.HasPrefix(hostname, "http://") && !strings.HasPrefix(hostname, "https://") {
		hostname = "https://" + hostname
	}
	return &Client{
		baseURL: strings.TrimRight(hostname, "/"),
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) GetServer(ctx context.Context, serverID int32) (*Server, error) {
	var out struct {
		Data Server `json:"data"`
	}
	if err := c.request(ctx, http.MethodGet, fmt.Sprintf("servers/%d", serverID), nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) CreateUser(ctx context.Context, params CreateUserParams) (*User, error) {
	var out struct {
		Data User `json:"data"`
	}
	if err := c.request(ctx, http.MethodPost, "users", params, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) GetUserByExtRelation(ctx context.Context, extRelationID int32) (*User, error) {
	var out struct {
		Data User `json:"data"`
	}
	if err := c.request(ctx, http.MethodGet, fmt.Sprintf("users/%d/byExtRelation", extRelationID), nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) UserHasServers(ctx context.Context, userID int32) (bool, error) {
	var out struct {
		Data []Server `json:"data"`
	}
	if err := c.request(ctx, http.MethodGet, fmt.Sprintf("users/%d/servers", userID), nil, &out); err != nil {
		return false, err
	}
	return len(out.Data) > 0, nil
}

func (c *Client) TransferServer(ctx context.Context, serverID, newUserID int32) error {
	return c.request(ctx, http.MethodPut, fmt.Sprintf("servers/%d/owner/%d", serverID, newUserID), nil, nil)
}

func (c *Client) request(ctx context.Context, method, endpoint string, body, out any) error {
	url := c.baseURL + "/api/v1/" + strings.TrimLeft(endpoint, "/")

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s: %w", method, endpoint, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, endpoint, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", method, endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return NewAPIError(resp.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", method, endpoint, err)
		}
	}
	return nil
}
