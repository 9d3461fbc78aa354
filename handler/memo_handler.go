package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"main/mastodon"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// Memo endpoints write the raw Memos wire shape (no envelope) so Memos
// clients can consume them unmodified. Errors use the JSON envelope.

func GetMemosHandler(c *gin.Context, memoService *usecase.MemoService) {
	creatorID, err := intQueryParam(c, "creatorId", 0)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	limit, err := intQueryParam(c, "limit", 0)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	excludeReplies, err := boolQueryParam(c, "exclude_replies", memoService.Settings.ExcludeReplies)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	excludeReblogs, err := boolQueryParam(c, "exclude_reblogs", memoService.Settings.ExcludeReblogs)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	rowStatus := c.DefaultQuery("rowStatus", model.MemoRowStatusNormal)

	memos, err := memoService.ListMemos(c.Request.Context(), usecase.MemoListOptions{
		CreatorID:      creatorID,
		RowStatus:      rowStatus,
		Limit:          limit,
		ExcludeReplies: excludeReplies,
		ExcludeReblogs: excludeReblogs,
	})
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, memos)
}

func GetMemoHandler(c *gin.Context, memoService *usecase.MemoService) {
	memoID := c.Param("id")

	memo, err := memoService.GetMemo(c.Request.Context(), memoID)
	if err != nil {
		var convErr *usecase.ConversionError
		switch {
		case errors.Is(err, mastodon.ErrNotFound):
			utils.NotFound(c, "Memo not found")
		case errors.As(err, &convErr):
			log.Printf("Error converting memo %s: %v", memoID, err)
			utils.InternalError(c, "Conversion error")
		default:
			respondUpstreamError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, memo)
}

func RedirectHandler(c *gin.Context, memoService *usecase.MemoService) {
	postID := c.Param("id")
	if !isDigits(postID) {
		utils.BadRequest(c, "Invalid post ID")
		return
	}

	c.Redirect(http.StatusFound, memoService.ResolvePermalink(c.Request.Context(), postID))
}

func StatusHandler(c *gin.Context, memoService *usecase.MemoService) {
	c.String(http.StatusOK, memoService.StatusText(c.Request.Context()))
}

// respondUpstreamError maps client errors to HTTP, keeping caller-visible
// messages generic while the detail goes to the log.
func respondUpstreamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, mastodon.ErrUnauthorized):
		log.Printf("Upstream auth failure: %v", err)
		utils.BadGateway(c, "Mastodon rejected the configured credentials")
	case errors.Is(err, mastodon.ErrUnavailable):
		log.Printf("Upstream error: %v", err)
		utils.BadGateway(c, "Error fetching Mastodon posts")
	default:
		log.Printf("Unexpected error: %v", err)
		utils.InternalError(c, "Internal server error")
	}
}

// intQueryParam parses an optional integer query parameter. A present
// but malformed value is an error rather than silently "no filter".
func intQueryParam(c *gin.Context, name string, defaultVal int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return defaultVal, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return val, nil
}

// boolQueryParam parses an optional boolean query parameter.
func boolQueryParam(c *gin.Context, name string, defaultVal bool) (bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return defaultVal, nil
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q", name, raw)
	}
	return val, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
