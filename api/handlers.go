package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"commandapi/db"

	"github.com/labstack/echo/v4"
)

func ListCommandsHandler(store db.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		commands, err := store.List(c.Request().Context())
		if err != nil {
			return internalError(err)
		}
		return c.JSON(http.StatusOK, commands)
	}
}

func GetCommandHandler(store db.Store, paramID string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param(paramID), 10, 64)
		if err != nil {
			return c.NoContent(http.StatusNotFound)
		}

		cmd, found, err := store.Find(c.Request().Context(), id)
		if err != nil {
			return internalError(err)
		}
		if !found {
			return c.NoContent(http.StatusNotFound)
		}
		return c.JSON(http.StatusOK, cmd)
	}
}

// CreateCommandHandler adds the command in the body and answers 201 with the
// stored command. Location points at the route named locationRoute, which
// should take the id as its only parameter.
func CreateCommandHandler(store db.Store, locationRoute string) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := CommandRequest{}
		if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
			return c.NoContent(http.StatusBadRequest)
		}

		cmd := req.ForCreate()
		id, err := store.Add(c.Request().Context(), cmd)
		if err != nil {
			return internalError(err)
		}
		cmd.ID = id

		c.Response().Header().Set(
			echo.HeaderLocation,
			c.Echo().Reverse(locationRoute, strconv.FormatInt(id, 10)),
		)
		return c.JSON(http.StatusCreated, cmd)
	}
}

// UpdateCommandHandler replaces the command at the path id.
//
// 400 when the id in the path and the body differ, 404 when no such command.
func UpdateCommandHandler(store db.Store, paramID string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param(paramID), 10, 64)
		if err != nil {
			return c.NoContent(http.StatusBadRequest)
		}

		req := CommandRequest{}
		if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
			return c.NoContent(http.StatusBadRequest)
		}
		cmd, err := req.ForUpdate(id)
		if err != nil {
			return c.NoContent(http.StatusBadRequest)
		}

		if err := store.Update(c.Request().Context(), id, cmd); err != nil {
			if errors.Is(err, db.ErrMissing) {
				return c.NoContent(http.StatusNotFound)
			}
			return internalError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func DeleteCommandHandler(store db.Store, paramID string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param(paramID), 10, 64)
		if err != nil {
			return c.NoContent(http.StatusNotFound)
		}

		if err := store.Remove(c.Request().Context(), id); err != nil {
			if errors.Is(err, db.ErrMissing) {
				return c.NoContent(http.StatusNotFound)
			}
			return internalError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func internalError(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
}
