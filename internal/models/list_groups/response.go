package models

import (
	journalmodels "io.winapps.bumpjournal/internal/models/journal"
)

type ListGroupsResponse struct {
	Groups []journalmodels.Group `json:"groups"`
}
