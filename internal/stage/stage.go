package stage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/matjam/blazefx/internal/types"
	"github.com/matjam/blazefx/pkg/fx"
)

var (
	ErrNotFound = errors.New("element not found")
	ErrStopped  = errors.New("stage stopped")
)

type CommandType string

const (
	CommandConfigure CommandType = "configure"
	CommandRemove    CommandType = "remove"
	CommandRendered  CommandType = "rendered"
	CommandMarkup    CommandType = "markup"
	CommandPage      CommandType = "page"
	CommandStop      CommandType = "stop"
)

type Command struct {
	Type        CommandType
	ID          string
	Spec        types.ElementSpec
	FirstRender bool

	reply chan Result
}

// Apply is one bridge call captured while an element finished rendering.
type Apply struct {
	Element string `json:"element"`
	Class   string `json:"class"`
	Style   string `json:"style"`
}

type Result struct {
	Rerender bool    `json:"rerender"`
	Apply    []Apply `json:"apply"`
	Markup   string  `json:"-"`
	Err      error   `json:"-"`
}

// Summary is a read-only view of one element.
type Summary struct {
	ID       string `json:"id"`
	Revision int    `json:"revision"`
	Kind     string `json:"kind"`
	State    string `json:"state"`
	Class    string `json:"class"`
	Style    string `json:"style"`
}

type entry struct {
	el       *fx.Element
	revision int
}

// Stage owns the animated elements served by the daemon. Every change to an
// element goes through the command loop in Run, so each element sees its
// configure and render callbacks one at a time.
type Stage struct {
	sync.Mutex
	defaults types.Defaults
	elements map[string]*entry
	order    []string
	pending  []Apply
	revision int
	started  time.Time

	cmds chan Command
	done chan struct{}
}

// NewStage creates an empty stage. Elements without their own timing take
// it from defaults.
func NewStage(defaults types.Defaults) *Stage {
	return &Stage{
		defaults: defaults,
		elements: map[string]*entry{},
		cmds:     make(chan Command, 16),
		done:     make(chan struct{}),
	}
}

// Load configures the given elements. It must be called before Run.
func (s *Stage) Load(specs []types.ElementSpec) error {
	for _, spec := range specs {
		if err := s.configure(spec); err != nil {
			return fmt.Errorf("loading element %q: %w", spec.ID, err)
		}
	}
	return nil
}

// Run processes commands until Stop is called or ctx is done.
func (s *Stage) Run(ctx context.Context) {
	log.Info("Starting stage ...")
	s.Lock()
	s.started = time.Now()
	s.Unlock()
	defer close(s.done)

	for {
		select {
		case <-ctx.Done():
			log.Info("Stage context done, stopping")
			return
		case cmd := <-s.cmds:
			if cmd.Type == CommandStop {
				log.Info("Stopping stage ...")
				reply(cmd, Result{})
				return
			}
			reply(cmd, s.handle(cmd))
		}
	}
}

func reply(cmd Command, res Result) {
	if cmd.reply != nil {
		cmd.reply <- res
	}
}

func (s *Stage) handle(cmd Command) Result {
	switch cmd.Type {
	case CommandConfigure:
		log.Infof("Configuring element %s", cmd.Spec.ID)
		return Result{Err: s.configure(cmd.Spec)}
	case CommandRemove:
		log.Infof("Removing element %s", cmd.ID)
		return Result{Err: s.remove(cmd.ID)}
	case CommandRendered:
		return s.rendered(cmd.ID, cmd.FirstRender)
	case CommandMarkup:
		return s.markup(cmd.ID)
	case CommandPage:
		return s.page()
	default:
		log.Error("Unknown command:", cmd.Type)
		return Result{Err: fmt.Errorf("unknown command %q", cmd.Type)}
	}
}

// Do enqueues cmd and waits for the loop to handle it.
func (s *Stage) Do(ctx context.Context, cmd Command) Result {
	cmd.reply = make(chan Result, 1)

	select {
	case s.cmds <- cmd:
	case <-s.done:
		return Result{Err: ErrStopped}
	case <-ctx.Done():
		return Result{Err: ctx.Err()}
	}

	select {
	case res := <-cmd.reply:
		return res
	case <-s.done:
		return Result{Err: ErrStopped}
	case <-ctx.Done():
		return Result{Err: ctx.Err()}
	}
}

// EnqueueCommand queues cmd without waiting for it.
func (s *Stage) EnqueueCommand(cmd Command) {
	select {
	case s.cmds <- cmd:
	case <-s.done:
	}
}

func (s *Stage) Stop() {
	s.EnqueueCommand(Command{Type: CommandStop})
}

// Done is closed once Run has returned.
func (s *Stage) Done() <-chan struct{} {
	return s.done
}

func (s *Stage) Configure(ctx context.Context, spec types.ElementSpec) error {
	return s.Do(ctx, Command{Type: CommandConfigure, Spec: spec}).Err
}

func (s *Stage) Remove(ctx context.Context, id string) error {
	return s.Do(ctx, Command{Type: CommandRemove, ID: id}).Err
}

// Rendered reports a completed render of element id and returns the bridge
// calls it produced.
func (s *Stage) Rendered(ctx context.Context, id string, firstRender bool) (Result, error) {
	res := s.Do(ctx, Command{Type: CommandRendered, ID: id, FirstRender: firstRender})
	return res, res.Err
}

// Markup renders element id.
func (s *Stage) Markup(ctx context.Context, id string) (string, error) {
	res := s.Do(ctx, Command{Type: CommandMarkup, ID: id})
	return res.Markup, res.Err
}

// Page renders every element in the order it was first configured.
func (s *Stage) Page(ctx context.Context) (string, error) {
	res := s.Do(ctx, Command{Type: CommandPage})
	return res.Markup, res.Err
}

// List returns a snapshot of every element.
func (s *Stage) List() []Summary {
	s.Lock()
	defer s.Unlock()

	out := make([]Summary, 0, len(s.order))
	for _, id := range s.order {
		e := s.elements[id]
		out = append(out, Summary{
			ID:       id,
			Revision: e.revision,
			Kind:     e.el.Config().Kind.ClassName(),
			State:    e.el.State().String(),
			Class:    e.el.Class(),
			Style:    e.el.Style(),
		})
	}
	return out
}

func (s *Stage) Uptime() time.Duration {
	s.Lock()
	defer s.Unlock()
	if s.started.IsZero() {
		return 0
	}
	return time.Since(s.started)
}

func (s *Stage) configure(spec types.ElementSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	s.Lock()
	defer s.Unlock()

	// A new element is built on every configure so the browser swaps in
	// fresh markup and reports a first render for it.
	el, err := spec.Element(fx.BridgeFunc(s.capture), s.defaults)
	if err != nil {
		return err
	}

	s.revision++
	if _, ok := s.elements[spec.ID]; !ok {
		s.order = append(s.order, spec.ID)
	}
	s.elements[spec.ID] = &entry{el: el, revision: s.revision}
	return nil
}

func (s *Stage) remove(id string) error {
	s.Lock()
	defer s.Unlock()

	if _, ok := s.elements[id]; !ok {
		return ErrNotFound
	}
	delete(s.elements, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// capture is the bridge of every staged element. It only runs inside
// rendered, with the stage locked.
func (s *Stage) capture(el fx.Handle, class, style string) error {
	s.pending = append(s.pending, Apply{Element: string(el), Class: class, Style: style})
	return nil
}

func (s *Stage) rendered(id string, firstRender bool) Result {
	s.Lock()
	defer s.Unlock()

	e, ok := s.elements[id]
	if !ok {
		return Result{Err: ErrNotFound}
	}

	s.pending = nil
	rerender, err := e.el.AfterRender(firstRender)
	res := Result{Rerender: rerender, Apply: s.pending, Err: err}
	if res.Apply == nil {
		res.Apply = []Apply{}
	}
	s.pending = nil

	log.Debug("element rendered", "id", id, "first", firstRender, "rerender", rerender, "applied", len(res.Apply))
	return res
}

func (s *Stage) markup(id string) Result {
	s.Lock()
	defer s.Unlock()

	e, ok := s.elements[id]
	if !ok {
		return Result{Err: ErrNotFound}
	}

	var sb strings.Builder
	err := e.el.Render(&sb)
	return Result{Markup: sb.String(), Err: err}
}

func (s *Stage) page() Result {
	s.Lock()
	defer s.Unlock()

	var sb strings.Builder
	for _, id := range s.order {
		if err := s.elements[id].el.Render(&sb); err != nil {
			return Result{Err: err}
		}
	}
	return Result{Markup: sb.String()}
}
