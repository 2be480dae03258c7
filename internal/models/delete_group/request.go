package models

type DeleteGroupRequest struct {
	GroupID string `json:"groupId"`
}
