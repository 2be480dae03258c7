package models

import (
	journalmodels "io.winapps.bumpjournal/internal/models/journal"
)

type UpdateMoodRequest struct {
	EntryID string             `json:"entryId"`
	Mood    journalmodels.Mood `json:"mood"`
}
