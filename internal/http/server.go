package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/foodie/internal/auth"
	"github.com/nikolayk812/foodie/internal/service"
)

type Options struct {
	AllowedOrigins []string
	Version        string
}

type Server struct {
	engine      *gin.Engine
	products    *service.ProductService
	items       *service.ShoppingItemService
	suggestions *service.SuggestionService
	logger      *slog.Logger
	version     string
	now         func() time.Time
}

func NewServer(
	products *service.ProductService,
	items *service.ShoppingItemService,
	suggestions *service.SuggestionService,
	verifier auth.Verifier,
	logger *slog.Logger,
	opts Options,
) (*Server, error) {
	if products == nil {
		return nil, fmt.Errorf("products is nil")
	}
	if items == nil {
		return nil, fmt.Errorf("items is nil")
	}
	if suggestions == nil {
		return nil, fmt.Errorf("suggestions is nil")
	}
	if verifier == nil {
		return nil, fmt.Errorf("verifier is nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	if err := registerValidations(); err != nil {
		return nil, fmt.Errorf("registerValidations: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger), CORS(opts.AllowedOrigins))

	s := &Server{
		engine:      r,
		products:    products,
		items:       items,
		suggestions: suggestions,
		logger:      logger,
		version:     opts.Version,
		now:         time.Now,
	}
	s.registerRoutes(Authenticate(verifier, logger))

	return s, nil
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes(authenticate gin.HandlerFunc) {
	s.engine.GET("/health", s.health)

	api := s.engine.Group("", authenticate)
	{
		products := api.Group("/products")
		products.POST("", s.createProduct)
		products.GET("", s.listProducts)
		products.GET("/:id", s.getProduct)
		products.PUT("/:id", s.updateProduct)
		products.DELETE("/:id", s.deleteProduct)
		products.POST("/:id/estimate-expiry", s.estimateExpiry)
		products.POST("/estimate-expiry-date", s.estimateExpiryDate)
		products.POST("/identify/image", s.identifyByImage)
		products.POST("/identify/barcode", s.identifyByBarcode)
		products.POST("/scan-receipt", s.scanReceipt)

		items := api.Group("/shopping-items")
		items.GET("", s.listShoppingItems)
		items.POST("", s.createShoppingItem)
		items.PUT("/:id", s.updateShoppingItem)
		items.DELETE("/bought", s.clearBought)
		items.DELETE("/:id", s.deleteShoppingItem)

		api.GET("/suggestions", s.getSuggestions)
	}
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: s.now().UTC(),
		Version:   s.version,
	})
}

// ownerID is set by Authenticate for every route of the api group.
func ownerID(c *gin.Context) string {
	userID, _ := auth.UserFromContext(c.Request.Context())
	return userID
}
