package lib

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/5amCurfew/tap-leadbyte/streams"
	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) *Client {
	return &Client{
		httpClient: http.DefaultClient,
		baseURL:    baseURL,
		apiKey:     "test-key",
		pageSize:   500,
		newBackOff: func() backoff.BackOff {
			return backoff.WithMaxRetries(&backoff.ZeroBackOff{}, 3)
		},
	}
}

func mustLookup(t *testing.T, name string) *streams.Stream {
	t.Helper()
	s, ok := streams.Lookup(name)
	require.True(t, ok)
	return s
}

func TestClientAttachesAPIKey(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		fmt.Fprint(w, `{"status":"Success","data":[]}`)
	}))
	defer server.Close()

	_, err := testClient(server.URL).Records(mustLookup(t, "campaign_reports"), url.Values{})
	assert.NoError(t, err)
	assert.Equal(t, "test-key", gotKey)
}

func TestClientRetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"status":"Success","data":[{"campaign":{"id":"1"},"date":"2023-01-02"}]}`)
	}))
	defer server.Close()

	records, err := testClient(server.URL).Records(mustLookup(t, "campaign_reports"), url.Values{})
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Len(t, records, 1)
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"status":"Error","message":"invalid key"}`)
	}))
	defer server.Close()

	_, err := testClient(server.URL).Records(mustLookup(t, "campaign_reports"), url.Values{})
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
	assert.Contains(t, err.Error(), "401")
}

func TestClientSurfacesEnvelopeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"Error","message":"bad filter value"}`)
	}))
	defer server.Close()

	_, err := testClient(server.URL).Records(mustLookup(t, "campaign_reports"), url.Values{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad filter value")
}

func TestClientReadsTopLevelArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id":"1","name":"Campaign One"},{"id":"2","name":"Campaign Two"}]`)
	}))
	defer server.Close()

	records, err := testClient(server.URL).Records(mustLookup(t, "campaigns"), url.Values{})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestClientRejectsMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":`)
	}))
	defer server.Close()

	_, err := testClient(server.URL).Records(mustLookup(t, "campaign_reports"), url.Values{})
	assert.Error(t, err)
}

func TestClientPagedRecords(t *testing.T) {
	pages := [][]string{
		{`{"campaign":{"id":"1"},"date":"2023-01-01"}`, `{"campaign":{"id":"2"},"date":"2023-01-01"}`},
		{`{"campaign":{"id":"3"},"date":"2023-01-02"}`},
	}

	var gotStarts []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotStarts = append(gotStarts, r.URL.Query().Get("start"))
		page := len(gotStarts) - 1
		rows := ""
		if page < len(pages) {
			for i, row := range pages[page] {
				if i > 0 {
					rows += ","
				}
				rows += row
			}
		}
		fmt.Fprintf(w, `{"status":"Success","data":[%s]}`, rows)
	}))
	defer server.Close()

	client := testClient(server.URL)
	client.pageSize = 2

	records, err := client.PagedRecords(mustLookup(t, "campaign_reports"), url.Values{})
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, []string{"0", "2"}, gotStarts)
}
