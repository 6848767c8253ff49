package ipc

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/matjam/blazefx"
	"github.com/matjam/blazefx/internal/page"
	"github.com/matjam/blazefx/internal/stage"
	"github.com/matjam/blazefx/internal/types"
	"github.com/spf13/viper"
)

// GET /status
func statusHandler(s StageInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSONPretty(http.StatusOK, StatusResponse{
			Status:   "ok",
			Message:  "blazefx is running",
			Version:  strings.Trim(blazefx.Version, "\n\r "),
			PID:      os.Getpid(),
			Socket:   SocketPath(),
			Preview:  viper.GetString("preview_addr"),
			Config:   viper.ConfigFileUsed(),
			Elements: len(s.List()),
			Uptime:   s.Uptime().Round(time.Second).String(),
		}, "  ")
	}
}

// POST /stop
func stopHandler(s StageInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.Stop()
		return c.JSON(http.StatusOK, Response{Status: "ok"})
	}
}

// GET /elements
func listHandler(s StageInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, s.List())
	}
}

// POST /elements
func configureHandler(s StageInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		var spec types.ElementSpec
		if err := c.Bind(&spec); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid element JSON")
		}
		if err := spec.Validate(); err != nil {
			return errorJSON(c, http.StatusBadRequest, err.Error())
		}

		if err := s.Configure(c.Request().Context(), spec); err != nil {
			return stageError(c, err)
		}
		return c.JSON(http.StatusOK, Response{Status: "ok", Message: "configured " + spec.ID})
	}
}

// DELETE /elements/:id
func removeHandler(s StageInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if err := s.Remove(c.Request().Context(), id); err != nil {
			return stageError(c, err)
		}
		return c.JSON(http.StatusOK, Response{Status: "ok", Message: "removed " + id})
	}
}

// GET /elements/:id/markup
func markupHandler(s StageInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		markup, err := s.Markup(c.Request().Context(), c.Param("id"))
		if err != nil {
			return stageError(c, err)
		}
		return c.HTML(http.StatusOK, markup)
	}
}

// POST /elements/:id/rendered
func renderedHandler(s StageInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req RenderedRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid render report")
		}

		res, err := s.Rendered(c.Request().Context(), c.Param("id"), req.FirstRender)
		if err != nil {
			return stageError(c, err)
		}
		return c.JSON(http.StatusOK, res)
	}
}

// GET /
func pageHandler(s StageInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := s.Page(c.Request().Context())
		if err != nil {
			return stageError(c, err)
		}

		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
		c.Response().WriteHeader(http.StatusOK)
		return page.WriteDocument(c.Response(), page.Document{
			Title: "blazefx preview",
			Stage: true,
			Body:  body,
		})
	}
}

func stylesheetHandler(c echo.Context) error {
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", []byte(blazefx.Stylesheet))
}

func scriptHandler(c echo.Context) error {
	return c.Blob(http.StatusOK, "text/javascript; charset=utf-8", []byte(blazefx.Script))
}

func errorJSON(c echo.Context, code int, msg string) error {
	return c.JSON(code, Response{Status: "error", Error: msg})
}

func stageError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, stage.ErrNotFound):
		return errorJSON(c, http.StatusNotFound, err.Error())
	case errors.Is(err, stage.ErrStopped):
		return errorJSON(c, http.StatusServiceUnavailable, err.Error())
	default:
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}
}
