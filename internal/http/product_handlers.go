package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/foodie/internal/domain"
	"github.com/samber/lo"
)

func (s *Server) createProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, scopeProduct, "invalid_request")
		return
	}

	props, err := req.props()
	if err != nil {
		badRequest(c, scopeProduct, "invalid_request")
		return
	}

	p, err := s.products.Create(c.Request.Context(), ownerID(c), props)
	if err != nil {
		s.writeError(c, scopeProduct, err)
		return
	}

	c.JSON(http.StatusCreated, toProductResponse(p))
}

// listProducts returns active products unless include_finished=true.
func (s *Server) listProducts(c *gin.Context) {
	includeFinished, _ := strconv.ParseBool(c.Query("include_finished"))

	list := s.products.GetActive
	if includeFinished {
		list = s.products.GetAll
	}

	products, err := list(c.Request.Context(), ownerID(c))
	if err != nil {
		s.writeError(c, scopeProduct, err)
		return
	}

	c.JSON(http.StatusOK, lo.Map(products, func(p domain.Product, _ int) productResponse {
		return toProductResponse(p)
	}))
}

func (s *Server) getProduct(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		badRequest(c, scopeProduct, "invalid_id")
		return
	}

	p, err := s.products.GetByID(c.Request.Context(), id, ownerID(c))
	if err != nil {
		s.writeError(c, scopeProduct, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(p))
}

func (s *Server) updateProduct(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		badRequest(c, scopeProduct, "invalid_id")
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, scopeProduct, "invalid_request")
		return
	}

	props, err := req.props()
	if err != nil {
		badRequest(c, scopeProduct, "invalid_request")
		return
	}

	p, err := s.products.Update(c.Request.Context(), id, ownerID(c), props)
	if err != nil {
		s.writeError(c, scopeProduct, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(p))
}

func (s *Server) deleteProduct(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		badRequest(c, scopeProduct, "invalid_id")
		return
	}

	if err := s.products.Delete(c.Request.Context(), id, ownerID(c)); err != nil {
		s.writeError(c, scopeProduct, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// estimateExpiry returns the product, with estimated_expiry_date set when the estimator answered.
func (s *Server) estimateExpiry(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		badRequest(c, scopeProduct, "invalid_id")
		return
	}

	p, _, err := s.products.EstimateExpiry(c.Request.Context(), id, ownerID(c))
	if err != nil {
		s.writeError(c, scopeProduct, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(p))
}

func (s *Server) estimateExpiryDate(c *gin.Context) {
	var req estimateExpiryDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, scopeProduct, "invalid_request")
		return
	}

	status, err := domain.ToProductStatus(req.Status)
	if err != nil {
		badRequest(c, scopeProduct, "invalid_request")
		return
	}

	location, err := optionalEnum(req.Location, domain.ToProductLocation)
	if err != nil {
		badRequest(c, scopeProduct, "invalid_request")
		return
	}

	estimation, err := s.products.EstimateExpiryDate(c.Request.Context(), req.ProductName, status, location)
	if err != nil {
		s.writeError(c, scopeProduct, err)
		return
	}

	c.JSON(http.StatusOK, toExpiryEstimationResponse(estimation))
}

func (s *Server) identifyByImage(c *gin.Context) {
	var req imageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, scopeProduct, "invalid_request")
		return
	}

	identification, err := s.products.IdentifyByImage(c.Request.Context(), req.ImageBase64)
	if err != nil {
		s.writeError(c, scopeProduct, err)
		return
	}

	c.JSON(http.StatusOK, toIdentificationResponse(identification))
}

func (s *Server) identifyByBarcode(c *gin.Context) {
	var req barcodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, scopeProduct, "invalid_request")
		return
	}

	identification, err := s.products.IdentifyByBarcode(c.Request.Context(), req.Barcode)
	if err != nil {
		s.writeError(c, scopeProduct, err)
		return
	}

	c.JSON(http.StatusOK, toIdentificationResponse(identification))
}

func (s *Server) scanReceipt(c *gin.Context) {
	var req imageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, scopeProduct, "invalid_request")
		return
	}

	result, err := s.products.ScanReceipt(c.Request.Context(), req.ImageBase64)
	if err != nil {
		s.writeError(c, scopeProduct, err)
		return
	}

	c.JSON(http.StatusOK, toReceiptScanResponse(result))
}
