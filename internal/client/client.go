package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/joaoafonso2004/TWfrontbackend/internal/models"
)

// APIError is a non-2xx answer from the service.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: %d", e.Status)
}

// Client talks to the students/courses service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

func (c *Client) ListStudents(ctx context.Context) ([]models.Student, error) {
	var out []models.Student
	err := c.do(ctx, http.MethodGet, "/alunos", nil, &out)
	return out, err
}

func (c *Client) FindStudentsByName(ctx context.Context, name string) ([]models.Student, error) {
	var out []models.Student
	err := c.do(ctx, http.MethodGet, "/alunos/nome/"+url.PathEscape(name), nil, &out)
	return out, err
}

func (c *Client) CreateStudent(ctx context.Context, fields models.StudentFields) (models.StudentFields, error) {
	var out models.StudentFields
	err := c.do(ctx, http.MethodPost, "/alunos", fields, &out)
	return out, err
}

func (c *Client) UpdateStudent(ctx context.Context, id string, fields models.StudentFields) (models.StudentFields, error) {
	var out models.StudentFields
	err := c.do(ctx, http.MethodPut, "/alunos/"+url.PathEscape(id), fields, &out)
	return out, err
}

func (c *Client) DeleteStudent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/alunos/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListCourses(ctx context.Context) ([]models.Course, error) {
	var out []models.Course
	err := c.do(ctx, http.MethodGet, "/cursos", nil, &out)
	return out, err
}

func (c *Client) CreateCourse(ctx context.Context, fields models.CourseFields) (models.CourseFields, error) {
	var out models.CourseFields
	err := c.do(ctx, http.MethodPost, "/cursos", fields, &out)
	return out, err
}

func (c *Client) UpdateCourse(ctx context.Context, id string, fields models.CourseFields) (models.CourseFields, error) {
	var out models.CourseFields
	err := c.do(ctx, http.MethodPut, "/cursos/"+url.PathEscape(id), fields, &out)
	return out, err
}

func (c *Client) DeleteCourse(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/cursos/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		return &APIError{Status: resp.StatusCode, Message: payload.Error}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
