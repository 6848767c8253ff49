package ipc

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes wires the full control API. It is served on the unix
// socket only.
func RegisterRoutes(e *echo.Echo, s StageInterface) {
	e.GET("/status", statusHandler(s))
	e.POST("/stop", stopHandler(s))

	e.POST("/elements", configureHandler(s))
	e.DELETE("/elements/:id", removeHandler(s))

	RegisterPreviewRoutes(e, s)
}

// RegisterPreviewRoutes wires the routes a browser page needs: the page,
// its assets, element markup and render reports.
func RegisterPreviewRoutes(e *echo.Echo, s StageInterface) {
	e.GET("/elements", listHandler(s))
	e.GET("/elements/:id/markup", markupHandler(s))
	e.POST("/elements/:id/rendered", renderedHandler(s))

	e.GET("/", pageHandler(s))
	e.GET("/blazefx.css", stylesheetHandler)
	e.GET("/blazefx.js", scriptHandler)
}
