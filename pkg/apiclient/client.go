// Package apiclient is the Go client for the annotation API. It carries the
// logged-in identity across calls the way the browser client persists it,
// and turns {"error": message} responses back into typed domain errors.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"pinpost/internal/apperrors"
	"pinpost/internal/auth"
	"pinpost/internal/models"
)

// Client talks to one annotation server as one identity.
type Client struct {
	baseURL    string
	httpClient *http.Client
	username   string
}

// New creates a client for the server at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SetIdentity sets the name attached to protected requests. Login and
// Register set it automatically on success.
func (c *Client) SetIdentity(name string) {
	c.username = name
}

// Identity returns the currently persisted identity, if any.
func (c *Client) Identity() string {
	return c.username
}

// Register creates a new user and adopts it as the client identity.
func (c *Client) Register(ctx context.Context, name string) (*models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodPost, "/users", map[string]string{"name": name}, &user, false)
	if err != nil {
		return nil, err
	}
	c.username = user.Name
	return &user, nil
}

// LoginResult is the login response body.
type LoginResult struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
	Token   string      `json:"token,omitempty"`
}

// Login resolves an existing user and adopts it as the client identity.
func (c *Client) Login(ctx context.Context, name string) (*LoginResult, error) {
	var result LoginResult
	err := c.do(ctx, http.MethodPost, "/login", map[string]string{"name": name}, &result, false)
	if err != nil {
		return nil, err
	}
	c.username = result.User.Name
	return &result, nil
}

// ListUsers returns every registered user.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users, true); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateImage asks the server to generate a new externally sourced image.
func (c *Client) CreateImage(ctx context.Context) (*models.Image, error) {
	var image models.Image
	if err := c.do(ctx, http.MethodPost, "/images", nil, &image, true); err != nil {
		return nil, err
	}
	return &image, nil
}

// ListImages returns all images in creation order.
func (c *Client) ListImages(ctx context.Context) ([]models.Image, error) {
	var images []models.Image
	if err := c.do(ctx, http.MethodGet, "/images", nil, &images, true); err != nil {
		return nil, err
	}
	return images, nil
}

// DeleteImage deletes an owned image and every thread on it.
func (c *Client) DeleteImage(ctx context.Context, imageID string) error {
	return c.do(ctx, http.MethodDelete, "/images/"+imageID, nil, nil, true)
}

// CreateThread attaches a positioned comment to an image.
func (c *Client) CreateThread(ctx context.Context, imageID string, x, y float64, comment string) (*models.Thread, error) {
	body := map[string]interface{}{"x": x, "y": y, "comment": comment}
	var thread models.Thread
	if err := c.do(ctx, http.MethodPost, "/images/"+imageID+"/threads", body, &thread, true); err != nil {
		return nil, err
	}
	return &thread, nil
}

// ListThreads returns the threads of an image in creation order.
func (c *Client) ListThreads(ctx context.Context, imageID string) ([]models.Thread, error) {
	var threads []models.Thread
	if err := c.do(ctx, http.MethodGet, "/images/"+imageID+"/threads", nil, &threads, true); err != nil {
		return nil, err
	}
	return threads, nil
}

// UpdateThreadPosition moves an owned thread; nil coordinates are omitted
// from the request so the server leaves them unchanged.
func (c *Client) UpdateThreadPosition(ctx context.Context, threadID string, x, y *float64) (*models.Thread, error) {
	body := map[string]interface{}{}
	if x != nil {
		body["x"] = *x
	}
	if y != nil {
		body["y"] = *y
	}

	var thread models.Thread
	if err := c.do(ctx, http.MethodPatch, "/threads/"+threadID, body, &thread, true); err != nil {
		return nil, err
	}
	return &thread, nil
}

// DeleteThread deletes an owned thread.
func (c *Client) DeleteThread(ctx context.Context, threadID string) error {
	return c.do(ctx, http.MethodDelete, "/threads/"+threadID, nil, nil, true)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, authed bool) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set(auth.HeaderName, c.username)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response of %s %s: %w", method, path, err)
	}
	return nil
}

// decodeError maps an error response back to the domain error kind implied
// by its status code.
func decodeError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	message := resp.Status
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		message = body.Error
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return apperrors.Validation(message)
	case http.StatusUnauthorized:
		return apperrors.Unauthorized(message)
	case http.StatusForbidden:
		return apperrors.Forbidden(message)
	case http.StatusNotFound:
		return apperrors.NotFound(message)
	default:
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, message)
	}
}
