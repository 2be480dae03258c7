package models

import (
	journalmodels "io.winapps.bumpjournal/internal/models/journal"
)

type UpdateEntryRequest struct {
	Entry journalmodels.Entry `json:"entry"`
}
