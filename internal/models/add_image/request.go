package models

type AddImageRequest struct {
	EntryID string `json:"entryId"`
	Image   string `json:"image"`
	Gallery bool   `json:"gallery"`
}
