package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// bustRuleCache invalidates the local cache and tells the other pods.
func (s *Server) bustRuleCache(c *gin.Context) {
	if s.deps.Engine != nil {
		s.deps.Engine.InvalidateCache()
	}
	if s.deps.Publisher != nil {
		s.deps.Publisher.BustRuleCache(c.Request.Context())
	}
}

// createRule handles POST /rules.
func (s *Server) createRule(c *gin.Context) {
	var req RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule, err := s.deps.Rules.CreateRule(c.Request.Context(), req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	s.bustRuleCache(c)
	c.JSON(http.StatusCreated, ruleResponse(rule))
}

// updateRule handles PUT /rules/:id. Absent fields keep their stored
// values.
func (s *Server) updateRule(c *gin.Context) {
	var req RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule, err := s.deps.Rules.UpdateRule(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	s.bustRuleCache(c)
	c.JSON(http.StatusOK, ruleResponse(rule))
}

// deleteRule handles DELETE /rules/:id (soft delete).
func (s *Server) deleteRule(c *gin.Context) {
	if err := s.deps.Rules.DeleteRule(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	s.bustRuleCache(c)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// getRule handles GET /rules/:id.
func (s *Server) getRule(c *gin.Context) {
	rule, err := s.deps.Rules.GetRule(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ruleResponse(rule))
}

// listRules handles GET /rules.
func (s *Server) listRules(c *gin.Context) {
	list, err := s.deps.Rules.ListRules(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": ruleResponses(list), "count": len(list)})
}
