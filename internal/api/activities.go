package api

import (
	"errors"
	"net/http"

	"github.com/david/rfp-tracker/internal/models"
	"github.com/labstack/echo/v4"
)

func (s *Server) handleCreateActivity(c echo.Context) error {
	var in models.ActivityCreate
	if err := c.Bind(&in); err != nil {
		return shapeError(c, errors.New("invalid request body"))
	}
	if err := in.Validate(); err != nil {
		return shapeError(c, err)
	}

	activity := models.NewActivity(in)
	if err := s.Store.InsertActivity(c.Request().Context(), activity); err != nil {
		return serverError(c, err)
	}

	return c.JSON(http.StatusOK, activity)
}

func (s *Server) handleListActivities(c echo.Context) error {
	activities, err := s.Store.ListActivities(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, activities)
}
