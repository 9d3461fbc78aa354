package usecase

import (
	"context"
	"fmt"
	"time"

	"main/config"
	"main/mastodon"
	"main/model"
	"main/services"
)

// MemoService builds Memos-shaped views of the bridged Mastodon
// account. It holds no state of its own; every call re-projects the
// upstream data.
type MemoService struct {
	Client   *mastodon.Client
	Cache    *services.AccountCache
	Settings *config.Settings
}

// MemoListOptions are the filter parameters of the list endpoint.
// Zero values for CreatorID/RowStatus/Limit mean "no filter"; the
// exclusion flags are resolved by the handler, with the configured
// values as defaults.
type MemoListOptions struct {
	CreatorID      int
	RowStatus      string
	Limit          int
	ExcludeReplies bool
	ExcludeReblogs bool
}

// ListMemos walks the upstream timeline and converts it, applying the
// creator/rowStatus filters and the result limit. Records that fail
// conversion are dropped, never the whole listing.
func (s *MemoService) ListMemos(ctx context.Context, opts MemoListOptions) ([]model.Memo, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = s.Settings.DefaultPageSize
	}
	if limit > s.Settings.MaxPageSize {
		limit = s.Settings.MaxPageSize
	}

	statuses, err := s.Client.FetchAllStatuses(ctx, mastodon.PageOptions{
		PageLimit:      s.Settings.UpstreamPageLimit,
		MaxPages:       s.Settings.MaxPages,
		ExcludeReplies: opts.ExcludeReplies,
		ExcludeReblogs: opts.ExcludeReblogs,
	})
	if err != nil {
		return nil, err
	}

	memos := StatusesToMemos(statuses)

	out := make([]model.Memo, 0, len(memos))
	for _, memo := range memos {
		if opts.CreatorID != 0 && memo.CreatorID != opts.CreatorID {
			continue
		}
		if opts.RowStatus != "" && memo.RowStatus != opts.RowStatus {
			continue
		}
		out = append(out, memo)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// GetMemo fetches and converts a single status. Here a conversion
// failure is fatal: the caller asked for exactly this record.
func (s *MemoService) GetMemo(ctx context.Context, id string) (*model.Memo, error) {
	status, err := s.Client.GetStatus(ctx, id)
	if err != nil {
		return nil, err
	}
	return StatusToMemo(status)
}

// ResolvePermalink maps a status ID to its public URL on the upstream,
// using the cached account identity for flavors whose path includes
// the username.
func (s *MemoService) ResolvePermalink(ctx context.Context, id string) string {
	info := s.Cache.Get(ctx)
	return s.Settings.Flavor.PermalinkURL(s.Client.BaseURL, info.Username, id)
}

// StatusText renders the plain-text status report: current UTC time
// plus the resolved account login.
func (s *MemoService) StatusText(ctx context.Context) string {
	info := s.Cache.Get(ctx)
	now := time.Now().UTC().Format("2006-01-02 15:04:05")
	return fmt.Sprintf(
		"Current Date and Time (UTC - YYYY-MM-DD HH:MM:SS formatted): %s\nCurrent User's Login: %s\n",
		now, info.Username,
	)
}
