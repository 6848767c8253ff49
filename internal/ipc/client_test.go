package ipc

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matjam/blazefx/internal/stage"
	"github.com/matjam/blazefx/internal/types"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientAgainstSocket(t *testing.T) {
	// unix socket paths are short; t.TempDir can exceed the limit
	dir, err := os.MkdirTemp("", "bfx")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	viper.Set("socket", filepath.Join(dir, "blazefx.sock"))
	t.Cleanup(func() { viper.Set("socket", "") })

	s := stage.NewStage(types.DefaultDefaults())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go s.Run(ctx)

	served := make(chan error, 1)
	go func() { served <- Start(ctx, s, "") }()

	require.Eventually(t, func() bool {
		_, err := SendStatus()
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)

	raw, err := SendStatus()
	require.NoError(t, err)
	var status StatusResponse
	require.NoError(t, json.Unmarshal(raw, &status))
	assert.Equal(t, "blazefx is running", status.Message)

	require.NoError(t, SendConfigure(types.ElementSpec{ID: "hero", Kind: "fade-in"}))

	err = SendConfigure(types.ElementSpec{ID: "hero", Kind: "wobble"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")

	list, err := SendList()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "hero", list[0].ID)

	require.NoError(t, SendRemove("hero"))
	assert.Error(t, SendRemove("hero"))

	require.NoError(t, SendStop())
	<-s.Done()

	cancel()
	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}
