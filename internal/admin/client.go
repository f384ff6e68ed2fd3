package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/wsei-dev/university-records/internal/api/dto"
)

// ErrUnauthorized signals a rejected or expired token; callers send the
// operator back to the login page.
var ErrUnauthorized = errors.New("api: unauthorized")

// APIError carries the API's error envelope message for display on a page.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s: %s", e.Status, e.Code, e.Message)
}

// Client is a thin typed HTTP client for the records API. Every request
// carries the session's bearer token and a fresh correlation id.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient constructs a client for the given API base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Token exchanges credentials for a bearer token.
func (c *Client) Token(ctx context.Context, username, password string) (string, error) {
	var resp dto.TokenResponse
	err := c.do(ctx, http.MethodPost, "/token", "",
		dto.TokenRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Students.

func (c *Client) ListStudents(ctx context.Context, token string) ([]dto.StudentResponse, error) {
	var out []dto.StudentResponse
	return out, c.do(ctx, http.MethodGet, "/students", token, nil, &out)
}

func (c *Client) GetStudent(ctx context.Context, token string, id int64) (*dto.StudentResponse, error) {
	var out dto.StudentResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/students/%d", id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateStudent(ctx context.Context, token string, req dto.StudentCreateRequest) error {
	return c.do(ctx, http.MethodPost, "/students", token, req, nil)
}

func (c *Client) UpdateStudent(ctx context.Context, token string, id int64, req dto.StudentUpdateRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/students/%d", id), token, req, nil)
}

func (c *Client) DeleteStudent(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/students/%d", id), token, nil, nil)
}

// Courses.

func (c *Client) ListCourses(ctx context.Context, token string) ([]dto.CourseResponse, error) {
	var out []dto.CourseResponse
	return out, c.do(ctx, http.MethodGet, "/courses", token, nil, &out)
}

func (c *Client) GetCourse(ctx context.Context, token string, id int64) (*dto.CourseResponse, error) {
	var out dto.CourseResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/courses/%d", id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCourse(ctx context.Context, token string, req dto.CourseCreateRequest) error {
	return c.do(ctx, http.MethodPost, "/courses", token, req, nil)
}

func (c *Client) UpdateCourse(ctx context.Context, token string, id int64, req dto.CourseUpdateRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/courses/%d", id), token, req, nil)
}

func (c *Client) DeleteCourse(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/courses/%d", id), token, nil, nil)
}

// Enrollments.

func (c *Client) ListEnrollments(ctx context.Context, token string) ([]dto.EnrollmentResponse, error) {
	var out []dto.EnrollmentResponse
	return out, c.do(ctx, http.MethodGet, "/enrollments", token, nil, &out)
}

func (c *Client) GetEnrollment(ctx context.Context, token string, id int64) (*dto.EnrollmentResponse, error) {
	var out dto.EnrollmentResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/enrollments/%d", id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateEnrollment(ctx context.Context, token string, req dto.EnrollmentCreateRequest) error {
	return c.do(ctx, http.MethodPost, "/enrollments", token, req, nil)
}

func (c *Client) UpdateEnrollment(ctx context.Context, token string, id int64, req dto.EnrollmentUpdateRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/enrollments/%d", id), token, req, nil)
}

func (c *Client) DeleteEnrollment(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/enrollments/%d", id), token, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Correlation-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode >= 400:
		return decodeAPIError(resp)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	apiErr := &APIError{Status: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error.Message != "" {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
