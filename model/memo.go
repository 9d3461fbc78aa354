package model

// MemoResource mirrors the Memos API resource shape.
type MemoResource struct {
	Type         string `json:"type"`
	Link         string `json:"link"`
	ExternalLink string `json:"externalLink"`
}

// MemoRelation exists only for wire compatibility; Mastodon has no
// relation concept, so relationList is always empty.
type MemoRelation struct {
	Type     string `json:"type"`
	TargetID int    `json:"targetId"`
}

// Memo is the Memos API representation of one upstream status. It is a
// stateless projection built fresh per request and never persisted.
//
// ID is serialized as a decimal string: Mastodon snowflake IDs exceed
// 2^53 and would lose precision in clients that read JSON numbers as
// float64.
type Memo struct {
	ID              string         `json:"id"`
	CreatorID       int            `json:"creatorId"`
	CreatorName     string         `json:"creatorName"`
	CreatorUsername string         `json:"creatorUsername"`
	CreatedTs       int64          `json:"createdTs"`
	UpdatedTs       int64          `json:"updatedTs"`
	DisplayTs       int64          `json:"displayTs"`
	Content         string         `json:"content"`
	ResourceList    []MemoResource `json:"resourceList"`
	RelationList    []MemoRelation `json:"relationList"`
	Visibility      string         `json:"visibility"`
	Pinned          bool           `json:"pinned"`
	RowStatus       string         `json:"rowStatus"`
}

// Memo field constants. The bridge serves exactly one upstream account,
// so every memo carries the same placeholder creator ID.
const (
	MemoCreatorID         = 1
	MemoRowStatusNormal   = "NORMAL"
	MemoVisibilityPublic  = "PUBLIC"
	MemoVisibilityPrivate = "PRIVATE"
)
