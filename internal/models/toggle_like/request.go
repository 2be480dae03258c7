package models

type ToggleLikeRequest struct {
	EntryID string `json:"entryId"`
}
