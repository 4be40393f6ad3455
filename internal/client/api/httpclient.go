package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/egiraffe/egiraffe-cli/internal/logging"
)

// validate checks request payloads before they touch the network.
// Field names in validation errors use the JSON wire names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// HTTPClient talks to the Egiraffe backend. Every call is a single-shot
// HTTP PUT against <base>/api/v1/...: no retry, no timeout, no caching.
// The session cookie handed out on login lives in the client's cookie jar.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, log logging.Logger) (*HTTPClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar},
		log:     log.With("component", "api"),
	}, nil
}

// envelope is the tagged-union discriminant every response carries:
// {success:false, message} on failure, {success:true, ...payload} otherwise.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ack is the payload of operations that only confirm execution.
type ack struct {
	Message string `json:"message"`
}

// do issues one PUT and returns the raw response body. Request failures and
// unreadable bodies come back as *TransportError; the envelope is not
// inspected here.
func (c *HTTPClient) do(ctx context.Context, path, contentType string, body io.Reader) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, body)
	if err != nil {
		return nil, 0, &TransportError{Path: path, Err: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "path", path, "request_id", requestID, "error", err)
		return nil, 0, &TransportError{Path: path, Err: fmt.Errorf("%w: %v", ErrUnavailable, err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, &TransportError{Path: path, Status: resp.StatusCode, Err: err}
	}

	c.log.Debug(ctx, "request finished",
		"path", path,
		"request_id", requestID,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)
	return data, resp.StatusCode, nil
}

// put sends an optional JSON body to path and decodes the tagged-union
// response into T. A body that is not a parsable envelope is a
// *TransportError; success=false is a *DomainError carrying the server
// message. The server message is always surfaced as-is.
func put[T any](ctx context.Context, c *HTTPClient, path string, body any) (*T, error) {
	var reader io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}

	data, status, err := c.do(ctx, path, contentType, reader)
	if err != nil {
		return nil, err
	}
	return decode[T](path, status, data)
}

// putMultipart sends a multipart form (the two-phase binary attachment) and
// decodes the response the same way put does.
func putMultipart[T any](ctx context.Context, c *HTTPClient, path string, fields map[string]string, fileField, filename string, content io.Reader) (*T, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("encode form field %s: %w", name, err)
		}
	}
	part, err := w.CreateFormFile(fileField, filename)
	if err != nil {
		return nil, fmt.Errorf("encode form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("read file content: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finish form: %w", err)
	}

	data, status, err := c.do(ctx, path, w.FormDataContentType(), &buf)
	if err != nil {
		return nil, err
	}
	return decode[T](path, status, data)
}

func decode[T any](path string, status int, data []byte) (*T, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &TransportError{Path: path, Status: status, Err: fmt.Errorf("not a valid response: %w", err)}
	}
	if !env.Success {
		return nil, &DomainError{Message: env.Message}
	}
	var payload T
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &TransportError{Path: path, Status: status, Err: fmt.Errorf("unexpected payload: %w", err)}
	}
	return &payload, nil
}

// parseDate converts the ISO-8601 strings the server sends into time.Time,
// immediately after a successful parse of the payload.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}
