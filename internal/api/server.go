package api

import (
	"fmt"
	"net/http"

	"github.com/david/rfp-tracker/internal/config"
	"github.com/david/rfp-tracker/internal/db"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	Store *db.Store
	Echo  *echo.Echo
}

func NewServer(store *db.Store, cfg *config.Config) *Server {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORS.Origins(),
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	s := &Server{
		Store: store,
		Echo:  e,
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.Echo.GET("/health", s.handleHealth)

	api := s.Echo.Group("/api")

	api.POST("/opportunities", s.handleCreateOpportunity)
	api.GET("/opportunities", s.handleListOpportunities)
	api.GET("/opportunities/:id", s.handleGetOpportunity)
	api.PUT("/opportunities/:id", s.handleUpdateOpportunity)
	api.DELETE("/opportunities/:id", s.handleDeleteOpportunity)

	// Sub-entity GETs take the parent opportunity id; PUT/DELETE take the
	// record's own id.
	api.POST("/compliance", s.handleCreateComplianceItem)
	api.GET("/compliance/:id", s.handleListComplianceItems)
	api.PUT("/compliance/:id", s.handleUpdateComplianceItem)
	api.DELETE("/compliance/:id", s.handleDeleteComplianceItem)

	api.POST("/documents", s.handleCreateDocument)
	api.GET("/documents/:id", s.handleListDocuments)
	api.DELETE("/documents/:id", s.handleDeleteDocument)

	// Activities are an append-only audit trail: no update, no delete.
	api.POST("/activities", s.handleCreateActivity)
	api.GET("/activities/:id", s.handleListActivities)

	api.GET("/statistics", s.handleGetStatistics)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (s *Server) handleGetStatistics(c echo.Context) error {
	summary, err := s.Store.GetStatistics(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("Failed to compute statistics: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
	}
	return c.JSON(http.StatusOK, summary)
}

func (s *Server) Start(port int) error {
	return s.Echo.Start(fmt.Sprintf(":%d", port))
}

// shapeError reports a create-payload shape mismatch: a required field
// missing or of the wrong primitive type.
func shapeError(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
}

func notFound(c echo.Context, entity string) error {
	return c.JSON(http.StatusNotFound, map[string]string{"error": entity + " not found"})
}

func serverError(c echo.Context, err error) error {
	c.Logger().Errorf("Store operation failed: %v", err)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
}
