package models

type CreateGroupRequest struct {
	Name string `json:"name"`
}
