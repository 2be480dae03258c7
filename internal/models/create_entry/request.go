package models

import (
	"time"

	journalmodels "io.winapps.bumpjournal/internal/models/journal"
)

type CreateEntryRequest struct {
	Title            string                    `json:"title"`
	Content          string                    `json:"content"`
	Date             time.Time                 `json:"date,omitempty"`
	Media            []journalmodels.MediaItem `json:"media"`
	Mood             journalmodels.Mood        `json:"mood,omitempty"`
	KickCount        int                       `json:"kickCount"`
	IsShared         bool                      `json:"isShared"`
	SharedWithGroups []string                  `json:"sharedWithGroups,omitempty"`
}
