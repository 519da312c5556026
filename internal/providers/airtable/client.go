package airtable

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"lead-sync/internal/httpx"
)

const (
	DefaultBaseURL  = "https://api.airtable.com"
	DefaultPageSize = 100
)

type Client struct {
	BaseURL  string
	Token    string
	BaseID   string
	TableID  string
	PageSize int

	HTTP *http.Client

	// Limiter paces page requests; nil means no pacing.
	Limiter *rate.Limiter

	// OnPage is called before each page request with the 1-based page number.
	OnPage func(page int)
}

func New(baseURL, token, baseID, tableID string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:  baseURL,
		Token:    token,
		BaseID:   baseID,
		TableID:  tableID,
		PageSize: DefaultPageSize,
		HTTP:     &http.Client{},
	}
}

// NewLimiter builds a pacing limiter for reqPerSec requests per second.
// reqPerSec <= 0 disables pacing.
func NewLimiter(reqPerSec float64) *rate.Limiter {
	if reqPerSec <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(reqPerSec), 1)
}

// WithTimeout sets a per-request timeout. Zero keeps requests unbounded.
func (c *Client) WithTimeout(d time.Duration) *Client {
	c.HTTP.Timeout = d
	return c
}

/* -------- API -------- */

// ListRecords follows the offset cursor until the table is exhausted.
// Any page failure aborts the whole listing and no records are returned.
func (c *Client) ListRecords(ctx context.Context) ([]Record, error) {
	var all []Record

	offset := ""
	for page := 1; ; page++ {
		if c.OnPage != nil {
			c.OnPage(page)
		}

		resp, err := c.ListRecordsPage(ctx, offset)
		if err != nil {
			return nil, fmt.Errorf("airtable: list records page=%d: %w", page, err)
		}
		all = append(all, resp.Records...)

		offset = resp.Offset
		if offset == "" {
			return all, nil
		}
	}
}

// ListRecordsPage fetches one page starting at offset ("" for the first page).
func (c *Client) ListRecordsPage(ctx context.Context, offset string) (*ListRecordsResponse, error) {
	pageURL, err := c.pageURL(offset)
	if err != nil {
		return nil, err
	}

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("airtable: wait for rate limiter: %w", err)
		}
	}

	resp, body, err := httpx.Do(ctx, c.HTTP, func(ctx context.Context) (*http.Request, error) {
		r, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
		if err != nil {
			return nil, fmt.Errorf("airtable: build request: %w", err)
		}
		r.Header.Set("Accept", "application/json")
		r.Header.Set("Authorization", "Bearer "+c.Token)
		return r, nil
	})

	var herr *httpx.HTTPError
	if err != nil && !errors.As(err, &herr) {
		return nil, fmt.Errorf("airtable: request failed: %w", err)
	}

	var out ListRecordsResponse
	if jerr := json.Unmarshal(body, &out); jerr != nil {
		if herr != nil {
			return nil, herr
		}
		return nil, fmt.Errorf("airtable: json parse error: %w body=%s", jerr, httpx.Snippet(body, 900))
	}

	// the error member wins over the status code
	if apiErr := out.Err(); apiErr != nil {
		if resp != nil {
			apiErr.StatusCode = resp.StatusCode
		}
		return nil, apiErr
	}
	if herr != nil {
		return nil, herr
	}

	return &out, nil
}

func (c *Client) pageURL(offset string) (string, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("airtable: invalid base url %q", c.BaseURL)
	}
	u = u.JoinPath("v0", c.BaseID, c.TableID)

	pageSize := c.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	q := u.Query()
	q.Set("pageSize", strconv.Itoa(pageSize))
	if offset != "" {
		q.Set("offset", offset)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}
