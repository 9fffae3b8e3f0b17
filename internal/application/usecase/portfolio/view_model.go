package portfolio

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/khoahotran/portfolio-view/internal/domain/portfolio"
)

type State int

const (
	StateUninitialized State = iota
	StateReady
)

func (s State) String() string {
	if s == StateReady {
		return "ready"
	}
	return "uninitialized"
}

// ViewModel holds the snapshot for one page activation. It moves from
// Uninitialized to Ready exactly once and never back.
type ViewModel struct {
	load     *LoadPortfolioUseCase
	once     sync.Once
	snapshot atomic.Pointer[portfolio.Snapshot]
}

func NewViewModel(load *LoadPortfolioUseCase) *ViewModel {
	return &ViewModel{load: load}
}

// Initialize loads and publishes the snapshot on the first call. Later
// calls return the already published snapshot without touching the store.
func (vm *ViewModel) Initialize(ctx context.Context) portfolio.Snapshot {
	vm.once.Do(func() {
		s := vm.load.Execute(ctx).Snapshot
		vm.snapshot.Store(&s)
	})
	return vm.snapshot.Load().Clone()
}

// Snapshot returns a copy of the published snapshot, or ok=false while
// the view model is still Uninitialized.
func (vm *ViewModel) Snapshot() (portfolio.Snapshot, bool) {
	s := vm.snapshot.Load()
	if s == nil {
		return portfolio.Snapshot{}, false
	}
	return s.Clone(), true
}

func (vm *ViewModel) State() State {
	if vm.snapshot.Load() == nil {
		return StateUninitialized
	}
	return StateReady
}
