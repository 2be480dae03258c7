package models

type UpdateKickCountRequest struct {
	EntryID   string `json:"entryId"`
	KickCount int    `json:"kickCount"`
}
