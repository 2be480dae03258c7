package models

type ToggleFavoriteRequest struct {
	EntryID string `json:"entryId"`
}
