package mastodon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"main/config"
	"main/model"
	"main/utils"
)

// Sentinel errors distinguishing the upstream failure domains. Handlers
// pick the response status with errors.Is against these.
var (
	// ErrUnavailable covers network failures and non-auth HTTP errors
	// from the upstream API.
	ErrUnavailable = errors.New("mastodon: upstream unavailable")
	// ErrUnauthorized means the upstream rejected our credential. It is
	// fatal for a multi-page walk; retrying with the same token is
	// pointless.
	ErrUnauthorized = errors.New("mastodon: unauthorized")
	// ErrNotFound is returned for a single-status lookup miss.
	ErrNotFound = errors.New("mastodon: not found")
)

// Client talks to one Mastodon-compatible instance for one account.
type Client struct {
	BaseURL    string
	AccountID  string
	Token      string
	HTTPClient *http.Client
}

func NewClient(cfg *config.Settings) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		AccountID:  cfg.AccountID,
		Token:      cfg.AccessToken,
		HTTPClient: &http.Client{Timeout: cfg.RequestTimeout},
	}
}

// ListOptions are the query parameters for one statuses page request.
type ListOptions struct {
	Limit          int
	MaxID          string // fetch statuses strictly older than this ID
	ExcludeReplies bool
	ExcludeReblogs bool
}

// GetAccount fetches the configured account's profile.
func (c *Client) GetAccount(ctx context.Context) (*model.Account, error) {
	var account model.Account
	endpoint := fmt.Sprintf("%s/api/v1/accounts/%s", c.BaseURL, c.AccountID)
	if err := c.get(ctx, endpoint, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// GetStatuses fetches one page of the account's statuses, newest first.
func (c *Client) GetStatuses(ctx context.Context, opts ListOptions) ([]model.Status, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(opts.Limit))
	if opts.MaxID != "" {
		params.Set("max_id", opts.MaxID)
	}
	if opts.ExcludeReplies {
		params.Set("exclude_replies", "true")
	}
	if opts.ExcludeReblogs {
		params.Set("exclude_reblogs", "true")
	}

	var statuses []model.Status
	endpoint := fmt.Sprintf("%s/api/v1/accounts/%s/statuses?%s", c.BaseURL, c.AccountID, params.Encode())
	if err := c.get(ctx, endpoint, &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

// GetStatus fetches a single status by ID.
func (c *Client) GetStatus(ctx context.Context, id string) (*model.Status, error) {
	var status model.Status
	endpoint := fmt.Sprintf("%s/api/v1/statuses/%s", c.BaseURL, url.PathEscape(id))
	if err := c.get(ctx, endpoint, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		utils.UpstreamRequestsTotal.WithLabelValues("unavailable").Inc()
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		utils.UpstreamRequestsTotal.WithLabelValues("unauthorized").Inc()
		return fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		utils.UpstreamRequestsTotal.WithLabelValues("not_found").Inc()
		return fmt.Errorf("%w: %s", ErrNotFound, endpoint)
	case resp.StatusCode != http.StatusOK:
		utils.UpstreamRequestsTotal.WithLabelValues("unavailable").Inc()
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		utils.UpstreamRequestsTotal.WithLabelValues("unavailable").Inc()
		return fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}

	utils.UpstreamRequestsTotal.WithLabelValues("ok").Inc()
	return nil
}
