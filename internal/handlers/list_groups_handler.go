package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	journalmodels "io.winapps.bumpjournal/internal/models/journal"
	listgroupsmodels "io.winapps.bumpjournal/internal/models/list_groups"
)

// ListGroups returns every sharing group.
func (h *GroupsHandler) ListGroups(c *gin.Context) {
	groups, err := h.service.ListGroups(context.Background())
	if err != nil {
		h.logError(c, err, "list groups failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve groups"})
		return
	}
	if groups == nil {
		groups = []journalmodels.Group{}
	}

	c.JSON(http.StatusOK, listgroupsmodels.ListGroupsResponse{Groups: groups})
}
