package tools

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aristath/fundplan/internal/events"
	"github.com/aristath/fundplan/internal/metrics"
	"github.com/rs/zerolog"
)

// ErrUnknownTool is returned when a slug matches no registered tool
var ErrUnknownTool = errors.New("unknown tool")

// Tool lifecycle states reported by Status.
const (
	StateIdle    = "idle"
	StateRunning = "running"
	StateExited  = "exited"
)

// Status reports the lifecycle of a tool's most recent launch
type Status struct {
	StartedAt *time.Time `json:"started_at,omitempty"`
	State     string     `json:"state"`
	ExitError string     `json:"exit_error,omitempty"`
	PID       int        `json:"pid,omitempty"`
}

type toolState struct {
	startedAt time.Time
	exitErr   string
	pid       int
	running   bool
}

// Service launches registered tools and tracks their processes
type Service struct {
	bySlug map[string]Tool
	states map[string]*toolState
	runner Runner
	bus    *events.Bus
	tools  []Tool
	log    zerolog.Logger
	mu     sync.RWMutex
}

// NewService creates a new tools service. A nil runner spawns real
// processes.
func NewService(toolList []Tool, runner Runner, bus *events.Bus, log zerolog.Logger) *Service {
	if runner == nil {
		runner = execRunner{}
	}

	bySlug := make(map[string]Tool, len(toolList))
	for _, tool := range toolList {
		bySlug[tool.Slug] = tool
	}

	return &Service{
		tools:  toolList,
		bySlug: bySlug,
		states: make(map[string]*toolState),
		runner: runner,
		bus:    bus,
		log:    log.With().Str("service", "tools").Logger(),
	}
}

// Tools returns the registered tools in registry order
func (s *Service) Tools() []Tool {
	return s.tools
}

// Find looks up a tool by slug
func (s *Service) Find(slug string) (Tool, bool) {
	tool, ok := s.bySlug[slug]
	return tool, ok
}

// Launch starts a tool as a detached subprocess and begins tracking it.
// Relaunching a tool replaces its tracked state; the previous process is
// left alone.
func (s *Service) Launch(slug string) (Status, error) {
	tool, ok := s.bySlug[slug]
	if !ok {
		return Status{}, ErrUnknownTool
	}

	proc, err := s.runner.Start(tool.Command[0], tool.Command[1:]...)
	if err != nil {
		return Status{}, fmt.Errorf("start %s: %w", tool.Slug, err)
	}

	pid := proc.PID()
	s.mu.Lock()
	s.states[slug] = &toolState{
		pid:       pid,
		startedAt: time.Now(),
		running:   true,
	}
	s.mu.Unlock()

	metrics.ToolLaunches.WithLabelValues(tool.Slug).Inc()

	if s.bus != nil {
		s.bus.Emit(events.ToolLaunched, "tools", &events.ToolLaunchedData{
			Name: tool.Name,
			PID:  pid,
		})
	}

	s.log.Info().
		Str("tool", tool.Slug).
		Int("pid", pid).
		Msg("Tool launched")

	go s.watch(slug, proc)

	return s.Status(slug)
}

// Status reports the current state of a tool's most recent launch
func (s *Service) Status(slug string) (Status, error) {
	if _, ok := s.bySlug[slug]; !ok {
		return Status{}, ErrUnknownTool
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[slug]
	if !ok {
		return Status{State: StateIdle}, nil
	}

	startedAt := state.startedAt
	status := Status{
		PID:       state.pid,
		StartedAt: &startedAt,
	}
	if state.running {
		status.State = StateRunning
	} else {
		status.State = StateExited
		status.ExitError = state.exitErr
	}
	return status, nil
}

// watch waits for the process to exit and flips the tracked state. The PID
// guard keeps a stale watcher from clobbering a relaunch.
func (s *Service) watch(slug string, proc Process) {
	err := proc.Wait()

	s.mu.Lock()
	state := s.states[slug]
	if state != nil && state.pid == proc.PID() {
		state.running = false
		if err != nil {
			state.exitErr = err.Error()
		}
	}
	s.mu.Unlock()

	logEvent := s.log.Debug().Str("tool", slug).Int("pid", proc.PID())
	if err != nil {
		logEvent = logEvent.Err(err)
	}
	logEvent.Msg("Tool exited")
}
