package ipc

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/matjam/blazefx/internal/stage"
	"github.com/matjam/blazefx/internal/types"
	"resty.dev/v3"
)

func newClient() *resty.Client {
	path := SocketPath()

	client := resty.NewWithClient(&http.Client{
		Transport: &http.Transport{
			DialContext: func(_ context.Context, _, _ string) (net.Conn, error) {
				return net.Dial("unix", path)
			},
		},
	})

	client.SetBaseURL("http://blazefx")
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")
	client.SetHeader("User-Agent", "blazefx")
	return client
}

func check(res *resty.Response, err error, what string) error {
	if err != nil {
		return fmt.Errorf("error sending %s: %w", what, err)
	}
	if res.StatusCode() != http.StatusOK {
		if e, ok := res.Error().(*Response); ok && e.Error != "" {
			return fmt.Errorf("error sending %s: %s", what, e.Error)
		}
		return fmt.Errorf("error sending %s: %s", what, res.Status())
	}
	return nil
}

// SendStatus returns the raw status JSON of a running daemon.
func SendStatus() ([]byte, error) {
	client := newClient()
	defer client.Close()

	res, err := client.R().Get("/status")
	if err := check(res, err, "status"); err != nil {
		return nil, err
	}
	return res.Bytes(), nil
}

func SendStop() error {
	client := newClient()
	defer client.Close()

	res, err := client.R().SetError(&Response{}).Post("/stop")
	return check(res, err, "stop")
}

func SendConfigure(spec types.ElementSpec) error {
	client := newClient()
	defer client.Close()

	res, err := client.R().SetBody(spec).SetError(&Response{}).Post("/elements")
	return check(res, err, "configure")
}

func SendRemove(id string) error {
	client := newClient()
	defer client.Close()

	res, err := client.R().SetError(&Response{}).Delete("/elements/" + url.PathEscape(id))
	return check(res, err, "remove")
}

func SendList() ([]stage.Summary, error) {
	client := newClient()
	defer client.Close()

	var list []stage.Summary
	res, err := client.R().SetResult(&list).SetError(&Response{}).Get("/elements")
	if err := check(res, err, "list"); err != nil {
		return nil, err
	}
	return list, nil
}
