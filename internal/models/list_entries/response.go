package models

import (
	journalmodels "io.winapps.bumpjournal/internal/models/journal"
)

type ListEntriesResponse struct {
	Entries []journalmodels.Entry `json:"entries"`
}
