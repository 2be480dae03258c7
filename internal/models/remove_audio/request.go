package models

type RemoveAudioRequest struct {
	EntryID  string `json:"entryId"`
	AudioURL string `json:"audioUrl"`
}
