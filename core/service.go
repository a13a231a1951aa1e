package core

import (
	"fmt"
	"sync"
)

// Service is the reusable created→started→ready→stopping→done lifecycle
// underneath every Actor, grounded on
// original_source/libactors/aio/service/service.py but expressed with
// goroutines and closed channels standing in for asyncio.Event/Task.
//
// The setup/serve/teardown hooks are plain funcs carried by the worker value
// passed to Start (Go has no virtual dispatch) — see Actor.start.
type Service struct {
	mu      sync.Mutex
	started bool

	readyCh chan struct{}
	stopCh  chan struct{}
	doneCh  chan struct{}

	stopOnce  sync.Once
	readyOnce sync.Once
	doneOnce  sync.Once

	stopCallbacks []func()

	runErr error
}

// NewService creates a Service in the "created" state.
func NewService() *Service {
	return &Service{
		readyCh: make(chan struct{}),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// worker is the full setup → ready → serve → teardown → done contract
// (spec.md §4.2). Start runs it on its own goroutine.
type worker struct {
	setup    func() error
	serve    func() error
	teardown func() error
}

// Start runs the worker's lifecycle on a new goroutine. Panics if the
// service was already started (mirrors the Python ServiceException on
// double-start).
func (s *Service) Start(w worker) {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		panic(fmt.Sprintf("actorkit: service %p already started", s))
	}
	s.started = true
	s.mu.Unlock()

	go s.runWorker(w)
}

func (s *Service) runWorker(w worker) {
	setupOK := false
	var runErr error

	// teardown always runs, setup success or failure, mirroring the
	// Python original's serve()'s outer try/finally (original_source's
	// libactors/actor/actor.py:270-282): shutdown_event.set() and
	// remove_actor() are unconditional there, so a failing initialize()
	// still leaves the actor removed from the registry instead of leaked.
	defer func() {
		// stopping must be marked before teardown runs: Actor.teardown's
		// Core.removeActor requires the service to already be stopping,
		// which a plain setup failure (no explicit Stop() call) would
		// otherwise never have marked.
		s.markStopping()
		if w.teardown != nil {
			if err := w.teardown(); err != nil && runErr == nil {
				runErr = err
			}
		}
		s.mu.Lock()
		s.runErr = runErr
		s.mu.Unlock()
		s.markDone()
		if !setupOK {
			// ready must be released only after done is fully recorded:
			// WaitReady checks doneCh once readyCh closes, and that check
			// only sees a consistent runErr/teardown outcome if both were
			// already recorded first.
			s.markReady()
		}
	}()

	if w.setup != nil {
		if err := w.setup(); err != nil {
			runErr = err
			return
		}
	}
	setupOK = true
	s.markReady()

	if w.serve != nil {
		if err := w.serve(); err != nil {
			runErr = err
		}
	}
}

// Stop requests the service to stop: runs registered stop callbacks and
// marks the stop signal. Idempotent.
func (s *Service) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		callbacks := append([]func(){}, s.stopCallbacks...)
		s.mu.Unlock()

		for _, cb := range callbacks {
			cb()
		}
		close(s.stopCh)
	})
}

// AddStopCallback registers a callback invoked (once, best-effort) when
// Stop is called. No-op if the service is already stopping.
func (s *Service) AddStopCallback(cb func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.stopCh:
		return
	default:
	}
	s.stopCallbacks = append(s.stopCallbacks, cb)
}

// Wait blocks until the service is done.
func (s *Service) Wait() {
	<-s.doneCh
}

// WaitReady blocks until the service is ready, then returns the terminal
// error if the worker already failed during setup.
func (s *Service) WaitReady() error {
	<-s.readyCh
	select {
	case <-s.doneCh:
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.runErr
	default:
		return nil
	}
}

// WaitStop blocks until Stop has been requested.
func (s *Service) WaitStop() <-chan struct{} {
	return s.stopCh
}

// Stopping reports whether Stop has been requested.
func (s *Service) Stopping() bool {
	select {
	case <-s.stopCh:
		return true
	default:
		return false
	}
}

// Ready reports whether the service has finished setup.
func (s *Service) Ready() bool {
	select {
	case <-s.readyCh:
		return true
	default:
		return false
	}
}

// Done reports whether the service worker has fully exited.
func (s *Service) Done() bool {
	select {
	case <-s.doneCh:
		return true
	default:
		return false
	}
}

// Err returns the terminal error, if the worker is done and failed.
func (s *Service) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runErr
}

func (s *Service) markReady() { s.readyOnce.Do(func() { close(s.readyCh) }) }
func (s *Service) markStopping() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}
func (s *Service) markDone() { s.doneOnce.Do(func() { close(s.doneCh) }) }
