package ipc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/matjam/blazefx/internal/middleware"
)

// NewServer builds the echo app for the control socket.
func NewServer(s StageInterface) *echo.Echo {
	e := newEcho()
	RegisterRoutes(e, s)
	return e
}

// NewPreviewServer builds the echo app for the TCP preview listener. It
// carries no route that stops the daemon or changes the element set.
func NewPreviewServer(s StageInterface) *echo.Echo {
	e := newEcho()
	RegisterPreviewRoutes(e, s)
	return e
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.CharmLog())
	return e
}

// Start serves the control socket and, when previewAddr is set, the browser
// preview. It blocks until ctx is done or a listener fails.
func Start(ctx context.Context, s StageInterface, previewAddr string) error {
	sockPath := SocketPath()
	if _, err := os.Stat(sockPath); err == nil {
		_ = os.Remove(sockPath)
	}

	listener, err := net.Listen("unix", sockPath)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", sockPath, err)
	}
	defer os.Remove(sockPath)

	e := NewServer(s)
	e.Listener = listener

	errc := make(chan error, 2)
	go func() {
		log.Infof("Control socket listening on %s", sockPath)
		errc <- e.StartServer(new(http.Server))
	}()

	var preview *http.Server
	if previewAddr != "" {
		preview = &http.Server{Addr: previewAddr, Handler: NewPreviewServer(s), ReadHeaderTimeout: 10 * time.Second}
		go func() {
			log.Infof("Preview listening on http://%s", previewAddr)
			errc <- preview.ListenAndServe()
		}()
	}

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errc:
		if errors.Is(serveErr, http.ErrServerClosed) {
			serveErr = nil
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Socket server shutdown: %v", err)
	}
	if preview != nil {
		if err := preview.Shutdown(shutdownCtx); err != nil {
			log.Errorf("Preview server shutdown: %v", err)
		}
	}

	if serveErr != nil {
		return fmt.Errorf("server error: %w", serveErr)
	}
	return nil
}
