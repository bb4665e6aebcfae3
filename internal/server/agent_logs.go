package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
)

// ListAgentLogs returns the telemetry rows of one authoring session or
// of one entry, ordered by timestamp.
func (s *Server) ListAgentLogs(c *gin.Context) {
	sessionID := strings.TrimSpace(c.Query("session_id"))
	entryID := strings.TrimSpace(c.Query("entry_id"))

	switch {
	case sessionID != "":
		resp, err := s.agentLogRepo.ListBySession(c.Request.Context(), s.db, sessionID)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": resp})

	case entryID != "":
		id, err := strconv.ParseInt(entryID, 10, 64)
		if err != nil {
			AbortWithError(c, newValidationError("entry_id", "invalid_id", "invalid entry id"))
			return
		}
		resp, err := s.agentLogRepo.ListByEntry(c.Request.Context(), s.db, snowflake.ID(id))
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": resp})

	default:
		AbortWithError(c, newValidationError("session_id", "required", "session_id or entry_id is required"))
	}
}
