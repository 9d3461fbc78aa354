package model

import "encoding/json"

// FlexID decodes a Mastodon entity ID that may arrive as either a JSON
// string or a bare number. The raw digits are kept as text so 18-digit
// snowflake IDs never pass through a float64.
type FlexID string

func (id *FlexID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = FlexID(n.String())
	return nil
}

func (id FlexID) String() string {
	return string(id)
}

// Account is the subset of a Mastodon account we care about.
type Account struct {
	ID          FlexID `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

// MediaAttachment is one entry of a status's media_attachments array.
type MediaAttachment struct {
	Type      string `json:"type"`
	URL       string `json:"url"`
	RemoteURL string `json:"remote_url"`
}

// Status is one post as returned by the Mastodon statuses endpoints.
// Account is a pointer so a missing author block is detectable.
type Status struct {
	ID               FlexID            `json:"id"`
	Content          string            `json:"content"`
	CreatedAt        string            `json:"created_at"`
	Visibility       string            `json:"visibility"`
	Pinned           bool              `json:"pinned"`
	Account          *Account          `json:"account"`
	MediaAttachments []MediaAttachment `json:"media_attachments"`
}
