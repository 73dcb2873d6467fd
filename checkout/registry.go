package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Registry tracks the orchestrators that are currently running.
type Registry struct {
	ctx    context.Context
	repo   Repository
	logger *slog.Logger

	mu      sync.Mutex
	running map[uuid.UUID]*Orchestrator
	wg      sync.WaitGroup
}

// NewRegistry creates a registry whose orchestrators stop when ctx is done.
func NewRegistry(ctx context.Context, repo Repository, logger *slog.Logger) *Registry {
	return &Registry{
		ctx:     ctx,
		repo:    repo,
		logger:  logger,
		running: make(map[uuid.UUID]*Orchestrator),
	}
}

// Start persists c and begins running it.
func (r *Registry) Start(ctx context.Context, c Checkout, services Services) (*Orchestrator, error) {
	r.mu.Lock()
	_, exists := r.running[c.ID]
	r.mu.Unlock()
	if exists {
		return nil, NewCheckoutAlreadyExistsError(fmt.Sprintf("Checkout %s is already running", c.ID), nil)
	}

	if err := r.repo.CreateCheckout(ctx, c); err != nil {
		return nil, err
	}

	o := NewOrchestrator(c, services, r.repo, r.logger)

	r.mu.Lock()
	r.running[c.ID] = o
	r.mu.Unlock()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer r.remove(c.ID)
		o.Run(r.ctx)
	}()

	return o, nil
}

func (r *Registry) Get(id uuid.UUID) (*Orchestrator, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.running[id]
	return o, ok
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.running)
}

// Wait blocks until every orchestrator has stopped.
func (r *Registry) Wait() {
	r.wg.Wait()
}

func (r *Registry) remove(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.running, id)
}
