package platzi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmoreira/dropship/internal/adapters/catalog/platzi"
)

const coursesJSON = `{"data":{"allCourses":{"edges":[
	{"node":{"title":"Python Basics","slug":"python-basics","description":"Learn Python","teacher":{"name":"Ana"}}},
	{"node":{"title":"Go Basics","slug":"go-basics","description":"Learn Go","teacher":{"name":""}}}
]}}}`

func TestFetchCourses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body struct {
			Query string `json:"query"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body.Query, "allCourses(limit: 2)")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(coursesJSON))
	}))
	defer srv.Close()

	c := platzi.NewClient(srv.URL, time.Second)
	courses, err := c.FetchCourses(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "Python Basics", courses[0].Title)
	assert.Equal(t, "python-basics", courses[0].Slug)
	assert.Equal(t, "Ana", courses[0].TeacherName)
	assert.Equal(t, "", courses[1].TeacherName)
}

func TestFetchCoursesHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := platzi.NewClient(srv.URL, time.Second)
	courses, err := c.FetchCourses(context.Background(), 5)
	assert.Nil(t, courses)
	var statusErr *platzi.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.Code)
}

func TestFetchCoursesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"errors":[{"message":"rate limited"}]}`))
	}))
	defer srv.Close()

	c := platzi.NewClient(srv.URL, time.Second)
	courses, err := c.FetchCourses(context.Background(), 5)
	assert.Nil(t, courses)
	var apiErr *platzi.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, []string{"rate limited"}, apiErr.Messages)
}

func TestFetchCoursesTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := platzi.NewClient(srv.URL, 20*time.Millisecond)
	_, err := c.FetchCourses(context.Background(), 5)
	assert.ErrorIs(t, err, platzi.ErrTimeout)
}

func TestFetchCoursesDefaultLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Query string `json:"query"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		assert.Contains(t, body.Query, "allCourses(limit: 20)")
		w.Write([]byte(`{"data":{"allCourses":{"edges":[]}}}`))
	}))
	defer srv.Close()

	c := platzi.NewClient(srv.URL, time.Second)
	courses, err := c.FetchCourses(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, courses)
}
