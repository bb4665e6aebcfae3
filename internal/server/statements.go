package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

func (s *Server) TrialBalance(c *gin.Context) {
	asOf, ok := optionalDate(c, "as_of")
	if !ok {
		return
	}

	resp, err := s.statementSvc.TrialBalance(c.Request.Context(), asOf)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ProfitLoss(c *gin.Context) {
	from, ok := optionalDate(c, "from")
	if !ok {
		return
	}
	to, ok := optionalDate(c, "to")
	if !ok {
		return
	}

	resp, err := s.statementSvc.ProfitLoss(c.Request.Context(), from, to)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) BalanceSheet(c *gin.Context) {
	asOf, ok := optionalDate(c, "as_of")
	if !ok {
		return
	}

	resp, err := s.statementSvc.BalanceSheet(c.Request.Context(), asOf)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) AccountLedger(c *gin.Context) {
	start, ok := optionalDate(c, "start")
	if !ok {
		return
	}
	end, ok := optionalDate(c, "end")
	if !ok {
		return
	}

	resp, err := s.statementSvc.AccountLedger(c.Request.Context(), c.Param("code"), start, end)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func optionalDate(c *gin.Context, name string) (*time.Time, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		AbortWithError(c, newValidationError(name, "invalid_date", name+" must be YYYY-MM-DD"))
		return nil, false
	}
	return &parsed, true
}
