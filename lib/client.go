package lib

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/5amCurfew/tap-leadbyte/models"
	"github.com/5amCurfew/tap-leadbyte/streams"
	util "github.com/5amCurfew/tap-leadbyte/util"
	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"
)

// Client issues authenticated GET requests against the LeadByte REST API.
// It is constructed once from the run configuration and passed into the
// sync driver; it holds no mutable state.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	userAgent  string
	pageSize   int
	newBackOff func() backoff.BackOff
}

// NewClient builds a client for the configured domain and API version
func NewClient(config *models.TapConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    fmt.Sprintf("https://%s.leadbyte.com/restapi/%s", config.Domain, config.APIVersion),
		apiKey:     config.APIKey,
		userAgent:  config.UserAgent,
		pageSize:   config.PageSize,
		newBackOff: defaultBackOff,
	}
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	return backoff.WithMaxRetries(b, 3)
}

// buildRequest forms a fully authenticated request for an endpoint path.
// The API key travels as the key query parameter on every request.
func (c *Client) buildRequest(path string, params url.Values) (*http.Request, error) {
	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("key", c.apiKey)

	req, err := http.NewRequest(http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating get request: %w", err)
	}

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	return req, nil
}

// get performs the request with bounded retries. Network failures and 5xx
// responses are retried with exponential backoff; 4xx responses are
// permanent and surface immediately.
func (c *Client) get(path string, params url.Values) ([]byte, error) {
	var body []byte

	operation := func() error {
		req, err := c.buildRequest(path, params)
		if err != nil {
			return backoff.Permanent(err)
		}

		// path only: the full URL carries the api key
		log.WithFields(log.Fields{"path": req.URL.Path}).Debug("requesting page")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("error executing request: %w", err)
		}
		defer resp.Body.Close()

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("error reading response body: %w", err)
		}

		switch {
		case resp.StatusCode >= 500:
			return fmt.Errorf("server error %d: %s", resp.StatusCode, string(b))
		case resp.StatusCode >= 400:
			return backoff.Permanent(fmt.Errorf("request rejected %d: %s", resp.StatusCode, string(b)))
		}

		body = b
		return nil
	}

	if err := backoff.Retry(operation, c.newBackOff()); err != nil {
		return nil, err
	}

	return body, nil
}

// Records fetches one page of records for a stream, unwrapping the
// response envelope at the stream's records path
func (c *Client) Records(s *streams.Stream, params url.Values) ([]map[string]interface{}, error) {
	body, err := c.get(s.Path, params)
	if err != nil {
		return nil, err
	}

	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("error json.Unmarshal of response: %w", err)
	}

	var rows []interface{}
	switch data := payload.(type) {
	case []interface{}:
		rows = data
	case map[string]interface{}:
		if status, ok := data["status"].(string); ok && status != "Success" {
			return nil, fmt.Errorf("api error for %s: %v", s.Name, data["message"])
		}

		recordsPath := s.RecordsPath
		if recordsPath == nil {
			recordsPath = []string{"data"}
		}

		raw := util.GetValueAtPath(recordsPath, data)
		if raw == nil {
			return nil, nil
		}

		var ok bool
		if rows, ok = raw.([]interface{}); !ok {
			return nil, fmt.Errorf("response does not contain a records array at path %v", recordsPath)
		}
	default:
		return nil, fmt.Errorf("unexpected response shape for %s", s.Name)
	}

	records := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		record, ok := row.(map[string]interface{})
		if !ok {
			log.WithFields(log.Fields{"stream": s.Name, "row": row}).Warn("encountered non-object element in records array")
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

// PagedRecords loops limit/start offset pages until a short page
func (c *Client) PagedRecords(s *streams.Stream, params url.Values) ([]map[string]interface{}, error) {
	var all []map[string]interface{}
	start := 0

	for {
		page := url.Values{}
		for k, v := range params {
			page[k] = v
		}
		page.Set("limit", strconv.Itoa(c.pageSize))
		page.Set("start", strconv.Itoa(start))

		records, err := c.Records(s, page)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)

		if len(records) < c.pageSize {
			return all, nil
		}
		start += len(records)
	}
}
