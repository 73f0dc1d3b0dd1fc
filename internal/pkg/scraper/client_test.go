package scraper

import (
	"Gramscope/internal/api/config"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	return NewClient(&config.ScraperConfig{
		URL:       url,
		Target:    "instagram_graphql_profile",
		AuthToken: "dGVzdA==",
		Timeout:   5,
	})
}

func TestFetchSuccess(t *testing.T) {
	var gotBody map[string]string
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"results": [{
				"content": {
					"data": {
						"user": {
							"edge_followed_by": {"count": 500},
							"profile_pic_url_hd": "https://cdn/hd.jpg",
							"full_name": "NBA",
							"biography": "Basketball."
						}
					}
				}
			}]
		}`))
	}))
	defer srv.Close()

	attrs := newTestClient(srv.URL).Fetch(context.Background(), "nba")

	assert.Equal(t, 500, attrs.FollowerCount)
	assert.Equal(t, "NBA", attrs.FullName)

	require.NotNil(t, gotBody)
	assert.Equal(t, "instagram_graphql_profile", gotBody["target"])
	assert.Equal(t, "nba", gotBody["query"])
	assert.Equal(t, "Basic dGVzdA==", gotAuth)
}

func TestFetchNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	attrs := newTestClient(srv.URL).Fetch(context.Background(), "nba")

	assert.Equal(t, FailureAttributes(), attrs)
}

func TestFetchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>upstream error page</html>"))
	}))
	defer srv.Close()

	attrs := newTestClient(srv.URL).Fetch(context.Background(), "nba")

	assert.Equal(t, FailureAttributes(), attrs)
}

func TestFetchTransportFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // 连接必然失败

	attrs := newTestClient(srv.URL).Fetch(context.Background(), "nba")

	assert.Equal(t, FailureAttributes(), attrs)
}
