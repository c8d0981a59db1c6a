package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildKeyedURL(t *testing.T) {
	assert.Equal(t, "http://u/feed?key=a%26b",
		BuildKeyedURL("http://u/feed?key={key}", "a&b"))
	assert.Equal(t, "http://u/export/abc/feed.xml",
		BuildKeyedURL("http://u/export/{key}/feed.xml", "abc"))
	assert.Equal(t, "http://u/feed?key=abc",
		BuildKeyedURL("http://u/feed", "abc"))
	assert.Equal(t, "http://u/feed?fmt=xml&key=abc",
		BuildKeyedURL("http://u/feed?fmt=xml", "abc"))
}

func TestHTTPFetcherReturnsBodyAndStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(5*time.Second, 100)
	body, status, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, status)
	assert.Equal(t, []byte("short and stout"), body)
}

func TestHTTPFetcherUnreachable(t *testing.T) {
	f := NewHTTPFetcher(time.Second, 100)
	_, _, err := f.Fetch(context.Background(), "http://127.0.0.1:1/feed.xml")
	assert.Error(t, err)
}
