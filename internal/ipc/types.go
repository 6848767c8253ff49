package ipc

import (
	"context"
	"time"

	"github.com/matjam/blazefx/internal/stage"
	"github.com/matjam/blazefx/internal/types"
)

// StageInterface is the part of the stage the HTTP handlers use.
type StageInterface interface {
	Configure(ctx context.Context, spec types.ElementSpec) error
	Remove(ctx context.Context, id string) error
	Rendered(ctx context.Context, id string, firstRender bool) (stage.Result, error)
	Markup(ctx context.Context, id string) (string, error)
	Page(ctx context.Context) (string, error)
	List() []stage.Summary
	Uptime() time.Duration
	Stop()
}

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type StatusResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Version  string `json:"version"`
	PID      int    `json:"pid"`
	Socket   string `json:"socket"`
	Preview  string `json:"preview,omitempty"`
	Config   string `json:"config"`
	Elements int    `json:"elements"`
	Uptime   string `json:"uptime"`
}

type RenderedRequest struct {
	FirstRender bool `json:"first_render"`
}
