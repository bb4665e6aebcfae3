package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	journaldomain "github.com/munimji/munimji/internal/journal/domain"
	pipelinedomain "github.com/munimji/munimji/internal/pipeline/domain"
)

type createEntryRequest struct {
	Description     string `json:"description"`
	TransactionDate string `json:"transaction_date"`
}

// CreateEntry runs the authoring pipeline on a plain-language
// description and returns the drafted entry with the checker verdict.
func (s *Server) CreateEntry(c *gin.Context) {
	var req createEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	var txnDate *time.Time
	if strings.TrimSpace(req.TransactionDate) != "" {
		parsed, err := time.Parse("2006-01-02", req.TransactionDate)
		if err != nil {
			AbortWithError(c, newValidationError("transaction_date", "invalid_date", "transaction_date must be YYYY-MM-DD"))
			return
		}
		txnDate = &parsed
	}

	resp, err := s.pipelineSvc.Process(c.Request.Context(), pipelinedomain.ProcessRequest{
		Description:     req.Description,
		TransactionDate: txnDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{
		"session_id": resp.SessionID,
		"entry":      resp.Entry,
		"verdict":    resp.Verdict,
	}})
}

func (s *Server) GetEntry(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}

	resp, err := s.journalSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListEntries(c *gin.Context) {
	var query struct {
		Status string `form:"status"`
		Type   string `form:"type"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.journalSvc.List(c.Request.Context(), journaldomain.ListEntriesRequest{
		Status: journaldomain.EntryStatus(query.Status),
		Type:   journaldomain.TransactionType(query.Type),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type reviewRequest struct {
	Reviewer string `json:"reviewer"`
	Notes    string `json:"notes"`
}

func (s *Server) ApproveEntry(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.journalSvc.Approve(c.Request.Context(), journaldomain.ReviewRequest{
		EntryID:  id,
		Reviewer: req.Reviewer,
		Notes:    req.Notes,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) RejectEntry(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.journalSvc.Reject(c.Request.Context(), journaldomain.ReviewRequest{
		EntryID:  id,
		Reviewer: req.Reviewer,
		Notes:    req.Notes,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) PostEntry(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}

	resp, err := s.journalSvc.Post(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func entryID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid entry id"))
		return 0, false
	}
	return id, true
}
