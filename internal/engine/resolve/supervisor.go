package resolve

import (
	"context"
	"sync"

	"github.com/MdAbusufiyan/lab-buddy/internal/core/domain"
)

// Task is a unit of background work run by the Supervisor.
type Task func(ctx context.Context) (any, error)

// Outcome is a completed task's result, tagged with the identity of the
// query that produced it.
type Outcome struct {
	ID    uint64
	Value any
	Err   error
}

// Supervisor runs at most one background task at a time. Submit rejects
// while the slot is busy; Supersede replaces the pending interest so that a
// superseded task's outcome is discarded instead of delivered. Outcomes
// arrive on a single channel drained by the orchestrating flow.
type Supervisor struct {
	outcomes chan Outcome

	mu      sync.Mutex
	active  bool
	latest  uint64
	pending *pendingTask
}

type pendingTask struct {
	ctx  context.Context
	id   uint64
	task Task
}

// NewSupervisor creates an idle supervisor.
func NewSupervisor() *Supervisor {
	return &Supervisor{
		outcomes: make(chan Outcome, 8),
	}
}

// Outcomes is the single delivery point for completed task results.
func (s *Supervisor) Outcomes() <-chan Outcome {
	return s.outcomes
}

// Submit starts the task if the slot is free and rejects otherwise.
func (s *Supervisor) Submit(ctx context.Context, id uint64, task Task) error {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return domain.ErrTaskSlotBusy
	}
	s.active = true
	s.latest = id
	s.mu.Unlock()

	go s.run(ctx, id, task)
	return nil
}

// Supersede makes id the task of interest. If the slot is busy the task is
// parked (replacing any previously parked task) and starts when the slot
// frees; the running task's outcome is dropped as stale.
func (s *Supervisor) Supersede(ctx context.Context, id uint64, task Task) {
	s.mu.Lock()
	s.latest = id
	if s.active {
		s.pending = &pendingTask{ctx: ctx, id: id, task: task}
		s.mu.Unlock()
		return
	}
	s.active = true
	s.mu.Unlock()

	go s.run(ctx, id, task)
}

func (s *Supervisor) run(ctx context.Context, id uint64, task Task) {
	value, err := task(ctx)

	s.mu.Lock()
	stale := id != s.latest
	next := s.pending
	s.pending = nil
	if next == nil {
		s.active = false
	}
	s.mu.Unlock()

	if !stale {
		select {
		case s.outcomes <- Outcome{ID: id, Value: value, Err: err}:
		default:
			// Drain has fallen behind; dropping beats blocking the slot.
		}
	}

	if next != nil {
		go s.run(next.ctx, next.id, next.task)
	}
}
