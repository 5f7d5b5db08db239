// Package interopapi is an HTTP client for the competition interoperability
// server. The client must Login before first use; an expired session (the
// server answers 403) triggers one reauthentication and retry per request.
package interopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/PlumpMath/ros-interop/internal/models"
)

type InteropAPI interface {
	Login(ctx context.Context) error
	WaitForServer(ctx context.Context) error

	PostTarget(ctx context.Context, target models.Target) (int64, error)
	GetTarget(ctx context.Context, id int64) (models.Target, error)
	GetAllTargets(ctx context.Context) (map[int64]models.Target, error)
	PutTarget(ctx context.Context, id int64, target models.Target) error
	DeleteTarget(ctx context.Context, id int64) error

	PostTargetImage(ctx context.Context, id int64, image []byte, contentType string) error
	GetTargetImage(ctx context.Context, id int64) ([]byte, string, error)
	DeleteTargetImage(ctx context.Context, id int64) error

	GetObstacles(ctx context.Context) (models.Obstacles, error)
	PostTelemetry(ctx context.Context, telem models.Telemetry) error

	GetMission(ctx context.Context, id int64) (models.Mission, error)
	GetAllMissions(ctx context.Context) ([]models.Mission, error)
	GetActiveMission(ctx context.Context) (models.Mission, error)
}

var ErrNoActiveMission = errors.New("no active missions found")

var _ InteropAPI = (*Client)(nil)

type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is the server rejecting an unknown
// target or image identifier.
func IsNotFound(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound
}

type Client struct {
	url        string
	username   string
	password   string
	httpClient *http.Client
}

func NewClient(serverURL, username, password string, timeout time.Duration) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		url:      strings.TrimSuffix(serverURL, "/"),
		username: username,
		password: password,
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
	}
}

// Login authenticates with the server. The session cookie lives in the
// client's jar.
func (c *Client) Login(ctx context.Context) error {
	credentials := url.Values{
		"username": {c.username},
		"password": {c.password},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.url+"/api/login", strings.NewReader(credentials.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return newHTTPError(response)
	}
	return nil
}

// WaitForServer blocks until the server is reachable or ctx is done.
func (c *Client) WaitForServer(ctx context.Context) error {
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
		if err != nil {
			return err
		}
		response, err := c.httpClient.Do(req)
		if err == nil {
			response.Body.Close()
			if response.StatusCode < http.StatusInternalServerError {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
		}
	}
}

// request sends one request, reauthenticating and retrying once if the
// session expired.
func (c *Client) request(ctx context.Context, method, uri, contentType string, body []byte) (*http.Response, error) {
	relogged := false
	for {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.url+uri, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}

		response, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request to the interop server failed: %w", err)
		}

		if response.StatusCode == http.StatusForbidden && !relogged {
			response.Body.Close()
			if err := c.Login(ctx); err != nil {
				return nil, fmt.Errorf("session expired and relogin failed: %w", err)
			}
			relogged = true
			continue
		}

		if response.StatusCode >= http.StatusBadRequest {
			defer response.Body.Close()
			return nil, newHTTPError(response)
		}
		return response, nil
	}
}

func (c *Client) getJSON(ctx context.Context, uri string, out any) error {
	response, err := c.request(ctx, http.MethodGet, uri, "", nil)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// PostTarget uploads a new target for submission and returns its
// server-assigned id.
func (c *Client) PostTarget(ctx context.Context, target models.Target) (int64, error) {
	body, err := json.Marshal(&target)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal target: %w", err)
	}
	response, err := c.request(ctx, http.MethodPost, "/api/targets", "application/json", body)
	if err != nil {
		return 0, err
	}
	defer response.Body.Close()

	var created models.Target
	if err := json.NewDecoder(response.Body).Decode(&created); err != nil {
		return 0, fmt.Errorf("failed to parse response: %w", err)
	}
	return created.Id, nil
}

func (c *Client) GetTarget(ctx context.Context, id int64) (models.Target, error) {
	var target models.Target
	err := c.getJSON(ctx, fmt.Sprintf("/api/targets/%d", id), &target)
	return target, err
}

// GetAllTargets returns submitted targets keyed by id. The server caps the
// listing at its first 100 targets.
func (c *Client) GetAllTargets(ctx context.Context) (map[int64]models.Target, error) {
	var list []models.Target
	if err := c.getJSON(ctx, "/api/targets", &list); err != nil {
		return nil, err
	}
	targets := make(map[int64]models.Target, len(list))
	for _, t := range list {
		targets[t.Id] = t
	}
	return targets, nil
}

// PutTarget replaces the target with the given id.
func (c *Client) PutTarget(ctx context.Context, id int64, target models.Target) error {
	body, err := json.Marshal(&target)
	if err != nil {
		return fmt.Errorf("failed to marshal target: %w", err)
	}
	response, err := c.request(ctx, http.MethodPut,
		fmt.Sprintf("/api/targets/%d", id), "application/json", body)
	if err != nil {
		return err
	}
	return response.Body.Close()
}

func (c *Client) DeleteTarget(ctx context.Context, id int64) error {
	response, err := c.request(ctx, http.MethodDelete,
		fmt.Sprintf("/api/targets/%d", id), "", nil)
	if err != nil {
		return err
	}
	return response.Body.Close()
}

// PostTargetImage adds or replaces a target's image thumbnail.
func (c *Client) PostTargetImage(ctx context.Context, id int64, image []byte, contentType string) error {
	response, err := c.request(ctx, http.MethodPost,
		fmt.Sprintf("/api/targets/%d/image", id), contentType, image)
	if err != nil {
		return err
	}
	return response.Body.Close()
}

func (c *Client) GetTargetImage(ctx context.Context, id int64) ([]byte, string, error) {
	response, err := c.request(ctx, http.MethodGet,
		fmt.Sprintf("/api/targets/%d/image", id), "", nil)
	if err != nil {
		return nil, "", err
	}
	defer response.Body.Close()

	image, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image: %w", err)
	}
	return image, response.Header.Get("Content-Type"), nil
}

func (c *Client) DeleteTargetImage(ctx context.Context, id int64) error {
	response, err := c.request(ctx, http.MethodDelete,
		fmt.Sprintf("/api/targets/%d/image", id), "", nil)
	if err != nil {
		return err
	}
	return response.Body.Close()
}

func (c *Client) GetObstacles(ctx context.Context) (models.Obstacles, error) {
	var obstacles models.Obstacles
	err := c.getJSON(ctx, "/api/obstacles", &obstacles)
	return obstacles, err
}

func (c *Client) PostTelemetry(ctx context.Context, telem models.Telemetry) error {
	body, err := json.Marshal(&telem)
	if err != nil {
		return fmt.Errorf("failed to marshal telemetry: %w", err)
	}
	response, err := c.request(ctx, http.MethodPost, "/api/telemetry", "application/json", body)
	if err != nil {
		return err
	}
	return response.Body.Close()
}

func (c *Client) GetMission(ctx context.Context, id int64) (models.Mission, error) {
	var mission models.Mission
	err := c.getJSON(ctx, fmt.Sprintf("/api/missions/%d", id), &mission)
	return mission, err
}

func (c *Client) GetAllMissions(ctx context.Context) ([]models.Mission, error) {
	var missions []models.Mission
	err := c.getJSON(ctx, "/api/missions", &missions)
	return missions, err
}

func (c *Client) GetActiveMission(ctx context.Context) (models.Mission, error) {
	missions, err := c.GetAllMissions(ctx)
	if err != nil {
		return models.Mission{}, err
	}
	for _, m := range missions {
		if m.Active {
			return m, nil
		}
	}
	return models.Mission{}, ErrNoActiveMission
}

func newHTTPError(response *http.Response) *HTTPError {
	message, _ := io.ReadAll(io.LimitReader(response.Body, 1024))
	return &HTTPError{
		StatusCode: response.StatusCode,
		Message:    strings.TrimSpace(string(message)),
	}
}
