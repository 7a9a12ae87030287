package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/foodie/internal/domain"
)

const (
	scopeProduct      = "product"
	scopeShoppingItem = "shopping_item"
	scopeSuggestion   = "suggestion"
)

type errorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func abortWithError(c *gin.Context, status int, name, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Name: name, Message: message})
}

func badRequest(c *gin.Context, scope, reason string) {
	abortWithError(c, http.StatusBadRequest, "ValidationError", scope+"."+reason)
}

// writeError maps service errors to a status and a stable message. The
// shared name_empty error is qualified with the resource scope.
func (s *Server) writeError(c *gin.Context, scope string, err error) {
	status, name, message := http.StatusInternalServerError, "InternalError", "internal_error"

	switch {
	case errors.Is(err, domain.ErrNameEmpty):
		status, name, message = http.StatusBadRequest, "ValidationError", scope+"."+domain.ErrNameEmpty.Error()
	case errors.Is(err, domain.ErrOutcomeRequiresFinishedStatus):
		status, name, message = http.StatusBadRequest, "ValidationError", domain.ErrOutcomeRequiresFinishedStatus.Error()
	case errors.Is(err, domain.ErrProductNotFound):
		status, name, message = http.StatusNotFound, "NotFound", domain.ErrProductNotFound.Error()
	case errors.Is(err, domain.ErrShoppingItemNotFound):
		status, name, message = http.StatusNotFound, "NotFound", domain.ErrShoppingItemNotFound.Error()
	case errors.Is(err, domain.ErrIdentificationFailed):
		status, name, message = http.StatusUnprocessableEntity, "IdentificationError", domain.ErrIdentificationFailed.Error()
	case errors.Is(err, domain.ErrScanFailed):
		status, name, message = http.StatusUnprocessableEntity, "ScanError", domain.ErrScanFailed.Error()
	case errors.Is(err, domain.ErrNotEnoughProducts):
		status, name, message = http.StatusUnprocessableEntity, "ValidationError", domain.ErrNotEnoughProducts.Error()
	case errors.Is(err, domain.ErrInvalidSuggestion):
		status, name, message = http.StatusInternalServerError, "GenerationError", domain.ErrInvalidSuggestion.Error()
	case errors.Is(err, domain.ErrGenerationFailed):
		status, name, message = http.StatusInternalServerError, "GenerationError", domain.ErrGenerationFailed.Error()
	case errors.Is(err, domain.ErrRepository):
		message = domain.ErrRepository.Error()
	}

	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request.Context(), "request failed",
			"method", c.HandlerName(),
			"error", err)
	}

	abortWithError(c, status, name, message)
}
