package api

import (
	"errors"
	"net/http"

	"github.com/david/rfp-tracker/internal/db"
	"github.com/david/rfp-tracker/internal/models"
	"github.com/labstack/echo/v4"
)

func (s *Server) handleCreateComplianceItem(c echo.Context) error {
	var in models.ComplianceItemCreate
	if err := c.Bind(&in); err != nil {
		return shapeError(c, errors.New("invalid request body"))
	}
	if err := in.Validate(); err != nil {
		return shapeError(c, err)
	}

	item := models.NewComplianceItem(in)
	if err := s.Store.InsertComplianceItem(c.Request().Context(), item); err != nil {
		return serverError(c, err)
	}

	return c.JSON(http.StatusOK, item)
}

func (s *Server) handleListComplianceItems(c echo.Context) error {
	items, err := s.Store.ListComplianceItems(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (s *Server) handleUpdateComplianceItem(c echo.Context) error {
	id := c.Param("id")

	var in models.ComplianceItemCreate
	if err := c.Bind(&in); err != nil {
		return shapeError(c, errors.New("invalid request body"))
	}
	if err := in.Validate(); err != nil {
		return shapeError(c, err)
	}

	item := models.NewComplianceItem(in)
	item.ID = id

	if err := s.Store.ReplaceComplianceItem(c.Request().Context(), item); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return notFound(c, "Compliance item")
		}
		return serverError(c, err)
	}

	return c.JSON(http.StatusOK, item)
}

func (s *Server) handleDeleteComplianceItem(c echo.Context) error {
	err := s.Store.DeleteComplianceItem(c.Request().Context(), c.Param("id"))
	if errors.Is(err, db.ErrNotFound) {
		return notFound(c, "Compliance item")
	}
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Compliance item deleted successfully"})
}
