package portfolio

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-view/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-view/pkg/logger"
)

func TestViewModel_Lifecycle(t *testing.T) {
	store := newFakeStore(map[string]string{
		portfolio.KeyBasicInfo: `{"name":"Ada","skills":["Go"]}`,
	})
	vm := NewViewModel(NewLoadPortfolioUseCase(store, logger.NewNopLogger()))

	assert.Equal(t, StateUninitialized, vm.State())
	_, ok := vm.Snapshot()
	assert.False(t, ok)

	snap := vm.Initialize(context.Background())
	assert.Equal(t, StateReady, vm.State())
	assert.Equal(t, "Ada", snap.BasicInfo.Name)

	published, ok := vm.Snapshot()
	require.True(t, ok)
	assert.Equal(t, snap, published)
}

func TestViewModel_InitializeIsOneShot(t *testing.T) {
	store := newFakeStore(map[string]string{
		portfolio.KeyBasicInfo: `{"name":"Ada"}`,
	})
	vm := NewViewModel(NewLoadPortfolioUseCase(store, logger.NewNopLogger()))

	vm.Initialize(context.Background())
	calls := store.getCall

	require.NoError(t, store.Set(context.Background(), portfolio.KeyBasicInfo, `{"name":"Grace"}`))
	again := vm.Initialize(context.Background())

	assert.Equal(t, calls, store.getCall, "second Initialize must not read the store")
	assert.Equal(t, "Ada", again.BasicInfo.Name)
}

func TestViewModel_SnapshotCopiesCannotMutatePublishedState(t *testing.T) {
	store := newFakeStore(map[string]string{
		portfolio.KeyBasicInfo: `{"skills":["Go","Rust"]}`,
	})
	vm := NewViewModel(NewLoadPortfolioUseCase(store, logger.NewNopLogger()))

	snap := vm.Initialize(context.Background())
	snap.BasicInfo.Skills[0] = "COBOL"

	published, _ := vm.Snapshot()
	assert.Equal(t, []string{"Go", "Rust"}, published.BasicInfo.Skills)
}

func TestViewModel_ConcurrentReadersSeeWholeSnapshot(t *testing.T) {
	store := newFakeStore(map[string]string{
		portfolio.KeyBasicInfo:   `{"name":"Ada"}`,
		portfolio.KeyExperiences: `[{"company":"A"}]`,
		portfolio.KeyProjects:    `[{"name":"P"}]`,
	})
	vm := NewViewModel(NewLoadPortfolioUseCase(store, logger.NewNopLogger()))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			vm.Initialize(context.Background())
		}()
		go func() {
			defer wg.Done()
			if snap, ok := vm.Snapshot(); ok {
				assert.Equal(t, "Ada", snap.BasicInfo.Name)
				assert.Len(t, snap.Experiences, 1)
				assert.Len(t, snap.Projects, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, StateReady, vm.State())
	assert.Equal(t, len(portfolio.Keys), store.getCall)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "uninitialized", StateUninitialized.String())
	assert.Equal(t, "ready", StateReady.String())
}
