package models

type AddAudioRequest struct {
	EntryID string `json:"entryId"`
	Audio   string `json:"audio"`
}
