package mastodon

import (
	"context"
	"errors"
	"log"

	"main/model"
)

// PageOptions bound a multi-page walk of the statuses endpoint.
type PageOptions struct {
	PageLimit      int // statuses per page, capped by the upstream API
	MaxPages       int // hard ceiling on page requests
	ExcludeReplies bool
	ExcludeReblogs bool
}

// FetchAllStatuses walks the statuses endpoint with max_id cursoring:
// each page after the first asks for statuses strictly older than the
// last ID of the previous page. The walk stops on an empty page or at
// the page ceiling.
//
// An unauthorized response aborts the walk and propagates; any other
// page failure truncates it, returning what was accumulated so far.
func (c *Client) FetchAllStatuses(ctx context.Context, opts PageOptions) ([]model.Status, error) {
	all := []model.Status{}
	maxID := ""

	for page := 0; page < opts.MaxPages; page++ {
		statuses, err := c.GetStatuses(ctx, ListOptions{
			Limit:          opts.PageLimit,
			MaxID:          maxID,
			ExcludeReplies: opts.ExcludeReplies,
			ExcludeReblogs: opts.ExcludeReblogs,
		})
		if err != nil {
			if errors.Is(err, ErrUnauthorized) {
				return nil, err
			}
			log.Printf("Page %d fetch failed, returning %d statuses collected so far: %v", page+1, len(all), err)
			return all, nil
		}
		if len(statuses) == 0 {
			break
		}

		all = append(all, statuses...)
		maxID = statuses[len(statuses)-1].ID.String()
	}

	return all, nil
}
