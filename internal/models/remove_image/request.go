package models

type RemoveImageRequest struct {
	EntryID  string `json:"entryId"`
	ImageURL string `json:"imageUrl"`
}
