package usecase

import (
	"log"

	"main/model"
	"main/utils"
)

// ConversionError reports a status that cannot be mapped to a memo
// because a required field is absent. Batch conversion skips the
// record; single-record conversion surfaces it.
type ConversionError struct {
	Field string
}

func (e *ConversionError) Error() string {
	return "missing field: " + e.Field
}

// StatusToMemo maps one upstream status to the Memos wire shape.
func StatusToMemo(status *model.Status) (*model.Memo, error) {
	if status.ID == "" {
		return nil, &ConversionError{Field: "id"}
	}
	if status.Content == "" {
		return nil, &ConversionError{Field: "content"}
	}
	if status.CreatedAt == "" {
		return nil, &ConversionError{Field: "created_at"}
	}
	if status.Account == nil {
		return nil, &ConversionError{Field: "account"}
	}

	createdTs := TimestampToUnix(status.CreatedAt)

	resourceList := make([]model.MemoResource, 0, len(status.MediaAttachments))
	for _, media := range status.MediaAttachments {
		external := media.RemoteURL
		if external == "" {
			external = media.URL
		}
		resourceList = append(resourceList, model.MemoResource{
			Type:         media.Type,
			Link:         media.URL,
			ExternalLink: external,
		})
	}

	// Lossy collapse: "unlisted", "private" (followers-only) and
	// "direct" all map to PRIVATE. Memos only knows the two buckets.
	visibility := model.MemoVisibilityPrivate
	if status.Visibility == "public" {
		visibility = model.MemoVisibilityPublic
	}

	return &model.Memo{
		ID:              status.ID.String(),
		CreatorID:       model.MemoCreatorID,
		CreatorName:     status.Account.DisplayName,
		CreatorUsername: status.Account.Username,
		CreatedTs:       createdTs,
		UpdatedTs:       createdTs,
		DisplayTs:       createdTs,
		Content:         CleanHTML(status.Content),
		ResourceList:    resourceList,
		RelationList:    []model.MemoRelation{},
		Visibility:      visibility,
		Pinned:          status.Pinned,
		RowStatus:       model.MemoRowStatusNormal,
	}, nil
}

// StatusesToMemos converts a batch, logging and skipping records that
// fail instead of aborting the listing.
func StatusesToMemos(statuses []model.Status) []model.Memo {
	memos := make([]model.Memo, 0, len(statuses))
	for i := range statuses {
		memo, err := StatusToMemo(&statuses[i])
		if err != nil {
			log.Printf("Error processing status %s: %v", statuses[i].ID, err)
			utils.ConversionFailuresTotal.Inc()
			continue
		}
		memos = append(memos, *memo)
	}
	return memos
}
