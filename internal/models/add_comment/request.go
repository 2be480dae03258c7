package models

type AddCommentRequest struct {
	EntryID string `json:"entryId"`
	Author  string `json:"author"`
	Content string `json:"content"`
}
