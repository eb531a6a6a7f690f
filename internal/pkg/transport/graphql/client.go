// Package graphql is a minimal GraphQL-over-HTTP client: one POST per query,
// variables passed as JSON, the raw "data" member returned to the caller.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ErrProviderReturnedError indicates the endpoint answered with a non-empty
// "errors" member.
var ErrProviderReturnedError = errors.New("provider error")

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Err joins every GraphQL error message under ErrProviderReturnedError.
func (r response) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}

	messages := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		messages = append(messages, e.Message)
	}

	return fmt.Errorf("%w: %s", ErrProviderReturnedError, strings.Join(messages, "; "))
}

// Client sends GraphQL queries.
type Client interface {
	// Query executes query with variables and returns the raw "data" member.
	Query(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error)
}

type client struct {
	endpoint   string
	httpClient *http.Client
}

var _ Client = (*client)(nil)

func (c *client) Query(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	body, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrProviderReturnedError, res.StatusCode)
	}

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	return data.Data, data.Err()
}

// NewClient returns a Client posting to endpoint.
func NewClient(httpClient *http.Client, endpoint string) *client {
	return &client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}
