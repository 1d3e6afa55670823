// Package platzi fetches course listings from Platzi's public GraphQL
// endpoint. The endpoint takes a single query document over POST and
// answers with an edges/nodes envelope.
package platzi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nmoreira/dropship/internal/domain"
)

const DefaultURL = "https://api.platzi.com/graphql"

// ErrTimeout marks a request that hit the client deadline, so callers
// can tell a slow endpoint from a broken one.
var ErrTimeout = errors.New("catalog request timed out")

// StatusError is a non-200 HTTP response from the endpoint.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string { return fmt.Sprintf("catalog returned status %d", e.Code) }

// APIError is a 200 response carrying a GraphQL errors payload.
type APIError struct {
	Messages []string
}

func (e *APIError) Error() string {
	return "catalog returned errors: " + strings.Join(e.Messages, "; ")
}

type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{url: url, httpClient: &http.Client{Timeout: timeout}}
}

type gqlRequest struct {
	Query string `json:"query"`
}

type gqlResponse struct {
	Data struct {
		AllCourses struct {
			Edges []struct {
				Node struct {
					Title       string `json:"title"`
					Slug        string `json:"slug"`
					Description string `json:"description"`
					Teacher     struct {
						Name string `json:"name"`
					} `json:"teacher"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"allCourses"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// FetchCourses returns up to limit courses. On any failure the slice is
// nil and the error identifies the kind: ErrTimeout, *StatusError or
// *APIError.
func (c *Client) FetchCourses(ctx context.Context, limit int) ([]domain.CatalogCourse, error) {
	if limit <= 0 {
		limit = 20
	}
	query := fmt.Sprintf("query { allCourses(limit: %d) { edges { node { title slug description teacher { name } } } } }", limit)
	buf, err := json.Marshal(gqlRequest{Query: query})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: res.StatusCode}
	}

	var payload gqlResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("catalog response malformed: %w", err)
	}
	if len(payload.Errors) > 0 {
		apiErr := &APIError{}
		for _, e := range payload.Errors {
			apiErr.Messages = append(apiErr.Messages, e.Message)
		}
		return nil, apiErr
	}

	courses := make([]domain.CatalogCourse, 0, len(payload.Data.AllCourses.Edges))
	for _, edge := range payload.Data.AllCourses.Edges {
		courses = append(courses, domain.CatalogCourse{
			Title:       edge.Node.Title,
			Slug:        edge.Node.Slug,
			Description: edge.Node.Description,
			TeacherName: edge.Node.Teacher.Name,
		})
	}
	log.Info().Int("count", len(courses)).Msg("fetched catalog courses")
	return courses, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
