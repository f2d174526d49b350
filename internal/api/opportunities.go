package api

import (
	"errors"
	"net/http"

	"github.com/david/rfp-tracker/internal/db"
	"github.com/david/rfp-tracker/internal/models"
	"github.com/labstack/echo/v4"
)

func (s *Server) handleCreateOpportunity(c echo.Context) error {
	var in models.OpportunityCreate
	if err := c.Bind(&in); err != nil {
		return shapeError(c, errors.New("invalid request body"))
	}
	if err := in.Validate(); err != nil {
		return shapeError(c, err)
	}

	opportunity := models.NewOpportunity(in)
	if err := s.Store.InsertOpportunity(c.Request().Context(), opportunity); err != nil {
		return serverError(c, err)
	}

	return c.JSON(http.StatusOK, opportunity)
}

func (s *Server) handleListOpportunities(c echo.Context) error {
	opportunities, err := s.Store.ListOpportunities(c.Request().Context())
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, opportunities)
}

func (s *Server) handleGetOpportunity(c echo.Context) error {
	opportunity, err := s.Store.GetOpportunity(c.Request().Context(), c.Param("id"))
	if errors.Is(err, db.ErrNotFound) {
		return notFound(c, "Opportunity")
	}
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, opportunity)
}

// handleUpdateOpportunity replaces the stored record wholesale. The id comes
// from the path, never the body, and created_at is carried over from the
// stored record.
func (s *Server) handleUpdateOpportunity(c echo.Context) error {
	id := c.Param("id")

	var in models.OpportunityCreate
	if err := c.Bind(&in); err != nil {
		return shapeError(c, errors.New("invalid request body"))
	}
	if err := in.Validate(); err != nil {
		return shapeError(c, err)
	}

	ctx := c.Request().Context()
	existing, err := s.Store.GetOpportunity(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return notFound(c, "Opportunity")
	}
	if err != nil {
		return serverError(c, err)
	}

	opportunity := models.NewOpportunity(in)
	opportunity.ID = id
	opportunity.CreatedAt = existing.CreatedAt

	if err := s.Store.ReplaceOpportunity(ctx, opportunity); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return notFound(c, "Opportunity")
		}
		return serverError(c, err)
	}

	return c.JSON(http.StatusOK, opportunity)
}

func (s *Server) handleDeleteOpportunity(c echo.Context) error {
	err := s.Store.DeleteOpportunity(c.Request().Context(), c.Param("id"))
	if errors.Is(err, db.ErrNotFound) {
		return notFound(c, "Opportunity")
	}
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Opportunity deleted successfully"})
}
