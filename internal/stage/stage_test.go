package stage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/matjam/blazefx/internal/types"
	"github.com/matjam/blazefx/pkg/fx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startStage(t *testing.T, specs ...types.ElementSpec) *Stage {
	t.Helper()

	s := NewStage(types.DefaultDefaults())
	require.NoError(t, s.Load(specs))

	ctx, cancel := context.WithCancel(context.Background())
	go s.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-s.Done()
	})
	return s
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestStageRenderedAppliesOnce(t *testing.T) {
	s := startStage(t, types.ElementSpec{ID: "hero", Kind: "fade-in", Duration: types.Float(2)})
	ctx := testContext(t)

	markup, err := s.Markup(ctx, "hero")
	require.NoError(t, err)
	assert.Contains(t, markup, `class="blazefx-animation fadein"`)

	res, err := s.Rendered(ctx, "hero", true)
	require.NoError(t, err)
	assert.False(t, res.Rerender)
	require.Len(t, res.Apply, 1)
	assert.Equal(t, "hero", res.Apply[0].Element)
	assert.Equal(t, "blazefx-animation fadein", res.Apply[0].Class)
	assert.Contains(t, res.Apply[0].Style, "animation-duration: 2s;")

	res, err = s.Rendered(ctx, "hero", false)
	require.NoError(t, err)
	assert.Empty(t, res.Apply)
}

func TestStageRenderCompleteOnly(t *testing.T) {
	s := startStage(t, types.ElementSpec{ID: "late", Kind: "zoom-in", RenderCompleteOnly: true})
	ctx := testContext(t)

	markup, err := s.Markup(ctx, "late")
	require.NoError(t, err)
	assert.Contains(t, markup, `style="visibility: hidden;"`)

	res, err := s.Rendered(ctx, "late", true)
	require.NoError(t, err)
	assert.True(t, res.Rerender)
	require.Len(t, res.Apply, 1)
	assert.Equal(t, "blazefx-animation zoomin", res.Apply[0].Class)

	markup, err = s.Markup(ctx, "late")
	require.NoError(t, err)
	assert.Contains(t, markup, "visibility: visible;")

	res, err = s.Rendered(ctx, "late", false)
	require.NoError(t, err)
	assert.False(t, res.Rerender)
	assert.Empty(t, res.Apply)
}

func TestStageConfigureBumpsRevision(t *testing.T) {
	s := startStage(t)
	ctx := testContext(t)

	require.NoError(t, s.Configure(ctx, types.ElementSpec{ID: "a", Kind: "fade-in"}))
	require.NoError(t, s.Configure(ctx, types.ElementSpec{ID: "b", Kind: "shake"}))
	first := s.List()
	require.Len(t, first, 2)
	assert.Equal(t, "a", first[0].ID)
	assert.Equal(t, "b", first[1].ID)

	require.NoError(t, s.Configure(ctx, types.ElementSpec{ID: "a", Kind: "bounce", Easing: "linear"}))
	second := s.List()
	require.Len(t, second, 2)
	assert.Equal(t, "a", second[0].ID)
	assert.Greater(t, second[0].Revision, first[0].Revision)
	assert.Equal(t, "bounce", second[0].Kind)
	assert.Equal(t, fx.StateComputed.String(), second[0].State)
	assert.Contains(t, second[0].Style, "animation-timing-function: linear;")
}

func TestStageRejectsInvalidSpec(t *testing.T) {
	s := startStage(t)
	ctx := testContext(t)

	err := s.Configure(ctx, types.ElementSpec{ID: "a", Kind: "wobble"})
	require.Error(t, err)
	assert.Empty(t, s.List())
}

func TestStageRemove(t *testing.T) {
	s := startStage(t, types.ElementSpec{ID: "a", Kind: "fade-in"}, types.ElementSpec{ID: "b", Kind: "fade-out"})
	ctx := testContext(t)

	require.NoError(t, s.Remove(ctx, "a"))
	assert.ErrorIs(t, s.Remove(ctx, "a"), ErrNotFound)

	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, "b", list[0].ID)

	_, err := s.Rendered(ctx, "a", true)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Markup(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStagePageKeepsOrder(t *testing.T) {
	s := startStage(t,
		types.ElementSpec{ID: "one", Kind: "fade-in"},
		types.ElementSpec{ID: "two", Kind: "fade-in"},
	)
	ctx := testContext(t)

	page, err := s.Page(ctx)
	require.NoError(t, err)
	assert.Less(t, strings.Index(page, `id="one"`), strings.Index(page, `id="two"`))
}

func TestStageStop(t *testing.T) {
	s := NewStage(types.DefaultDefaults())
	go s.Run(context.Background())

	s.Stop()
	select {
	case <-s.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("stage did not stop")
	}

	err := s.Configure(context.Background(), types.ElementSpec{ID: "a", Kind: "fade-in"})
	assert.ErrorIs(t, err, ErrStopped)
}

func TestStageLoadRejectsInvalid(t *testing.T) {
	s := NewStage(types.DefaultDefaults())
	err := s.Load([]types.ElementSpec{{ID: "ok", Kind: "fade-in"}, {ID: "bad"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `loading element "bad"`)
}
