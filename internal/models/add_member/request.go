package models

type AddMemberRequest struct {
	GroupID string `json:"groupId"`
	Email   string `json:"email"`
}
