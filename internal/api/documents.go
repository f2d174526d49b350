package api

import (
	"errors"
	"net/http"

	"github.com/david/rfp-tracker/internal/db"
	"github.com/david/rfp-tracker/internal/models"
	"github.com/labstack/echo/v4"
)

func (s *Server) handleCreateDocument(c echo.Context) error {
	var in models.DocumentCreate
	if err := c.Bind(&in); err != nil {
		return shapeError(c, errors.New("invalid request body"))
	}
	if err := in.Validate(); err != nil {
		return shapeError(c, err)
	}

	doc := models.NewDocument(in)
	if err := s.Store.InsertDocument(c.Request().Context(), doc); err != nil {
		return serverError(c, err)
	}

	return c.JSON(http.StatusOK, doc)
}

func (s *Server) handleListDocuments(c echo.Context) error {
	docs, err := s.Store.ListDocuments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, docs)
}

func (s *Server) handleDeleteDocument(c echo.Context) error {
	err := s.Store.DeleteDocument(c.Request().Context(), c.Param("id"))
	if errors.Is(err, db.ErrNotFound) {
		return notFound(c, "Document")
	}
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Document deleted successfully"})
}
