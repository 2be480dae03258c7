package models

type UpdateSharingRequest struct {
	EntryID          string   `json:"entryId"`
	IsShared         bool     `json:"isShared"`
	SharedWithGroups []string `json:"sharedWithGroups,omitempty"`
}
