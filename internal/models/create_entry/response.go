package models

import (
	journalmodels "io.winapps.bumpjournal/internal/models/journal"
)

type CreateEntryResponse struct {
	Entry   journalmodels.Entry `json:"entry"`
	Message string              `json:"message"`
}
