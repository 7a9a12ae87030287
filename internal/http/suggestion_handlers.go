package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/foodie/internal/domain"
	"github.com/samber/lo"
)

const (
	defaultSuggestionLimit = 5
	maxSuggestionLimit     = 10
)

func (s *Server) getSuggestions(c *gin.Context) {
	var q suggestionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, scopeSuggestion, "invalid_limit")
		return
	}

	limit := min(lo.FromPtrOr(q.Limit, defaultSuggestionLimit), maxSuggestionLimit)

	suggestions, err := s.suggestions.Generate(c.Request.Context(), ownerID(c), limit)
	if err != nil {
		s.writeError(c, scopeSuggestion, err)
		return
	}

	c.JSON(http.StatusOK, lo.Map(suggestions, func(sg domain.Suggestion, _ int) suggestionResponse {
		return toSuggestionResponse(sg)
	}))
}
