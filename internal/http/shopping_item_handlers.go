package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nikolayk812/foodie/internal/domain"
	"github.com/samber/lo"
)

func (s *Server) listShoppingItems(c *gin.Context) {
	items, err := s.items.GetAll(c.Request.Context(), ownerID(c))
	if err != nil {
		s.writeError(c, scopeShoppingItem, err)
		return
	}

	c.JSON(http.StatusOK, lo.Map(items, func(i domain.ShoppingItem, _ int) shoppingItemResponse {
		return toShoppingItemResponse(i)
	}))
}

func (s *Server) createShoppingItem(c *gin.Context) {
	var req createShoppingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, scopeShoppingItem, "invalid_request")
		return
	}

	var productID *uuid.UUID
	if req.ProductID != nil {
		id, err := parseID(*req.ProductID)
		if err != nil {
			badRequest(c, scopeShoppingItem, "invalid_product_id")
			return
		}
		productID = &id
	}

	item, err := s.items.Create(c.Request.Context(), ownerID(c), req.Name, productID)
	if err != nil {
		s.writeError(c, scopeShoppingItem, err)
		return
	}

	c.JSON(http.StatusCreated, toShoppingItemResponse(item))
}

func (s *Server) updateShoppingItem(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		badRequest(c, scopeShoppingItem, "invalid_id")
		return
	}

	var req updateShoppingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, scopeShoppingItem, "invalid_request")
		return
	}

	item, err := s.items.Update(c.Request.Context(), id, ownerID(c), req.Name, req.IsBought)
	if err != nil {
		s.writeError(c, scopeShoppingItem, err)
		return
	}

	c.JSON(http.StatusOK, toShoppingItemResponse(item))
}

func (s *Server) deleteShoppingItem(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		badRequest(c, scopeShoppingItem, "invalid_id")
		return
	}

	if err := s.items.Delete(c.Request.Context(), id, ownerID(c)); err != nil {
		s.writeError(c, scopeShoppingItem, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) clearBought(c *gin.Context) {
	count, err := s.items.ClearBought(c.Request.Context(), ownerID(c))
	if err != nil {
		s.writeError(c, scopeShoppingItem, err)
		return
	}

	c.JSON(http.StatusOK, clearBoughtResponse{Count: count})
}
