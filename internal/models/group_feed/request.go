package models

type GroupFeedRequest struct {
	GroupID string `json:"groupId"`
}
