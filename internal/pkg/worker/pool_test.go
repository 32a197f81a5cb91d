package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"fincatech.io/itam/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

func newTestPools(t *testing.T, cfg PoolConfig) *Pools {
	t.Helper()
	pools, err := NewPools(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}
	t.Cleanup(pools.Shutdown)
	return pools
}

func TestNewPools_Defaults(t *testing.T) {
	pools := newTestPools(t, DefaultPoolConfig())
	if pools.General == nil || pools.Storage == nil {
		t.Fatal("NewPools() left a pool nil")
	}
}

func TestSubmit_RunsTask(t *testing.T) {
	pools := newTestPools(t, PoolConfig{GeneralPoolSize: 4, StoragePoolSize: 2})

	done := make(chan struct{})
	err := pools.General.Submit(context.Background(), func(ctx context.Context) {
		close(done)
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task never ran")
	}
}

func TestSubmit_RejectsCancelledContext(t *testing.T) {
	pools := newTestPools(t, DefaultPoolConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pools.Storage.Submit(ctx, func(ctx context.Context) {
		t.Error("task must not run on a dead context")
	})
	if err != context.Canceled {
		t.Errorf("Submit() error = %v, want context.Canceled", err)
	}
}

func TestSubmitDetached_PoolRouting(t *testing.T) {
	// Unknown names fall through to the general pool rather than erroring,
	// so best-effort callers never have to care.
	for _, poolName := range []string{"general", "storage", "unknown"} {
		t.Run(poolName, func(t *testing.T) {
			pools := newTestPools(t, DefaultPoolConfig())

			var ran atomic.Bool
			var wg sync.WaitGroup
			wg.Add(1)
			if err := pools.SubmitDetached(poolName, func(ctx context.Context) {
				ran.Store(true)
				wg.Done()
			}); err != nil {
				t.Fatalf("SubmitDetached(%q) error = %v", poolName, err)
			}
			wg.Wait()
			if !ran.Load() {
				t.Errorf("SubmitDetached(%q) task never ran", poolName)
			}
		})
	}
}

func TestMetrics_ReportsCapacity(t *testing.T) {
	pools := newTestPools(t, PoolConfig{GeneralPoolSize: 8, StoragePoolSize: 3})

	metrics := pools.Metrics()
	general, ok := metrics["general"].(map[string]int)
	if !ok {
		t.Fatal("general metrics missing")
	}
	if general["cap"] != 8 {
		t.Errorf("general cap = %d, want 8", general["cap"])
	}
	storage, ok := metrics["storage"].(map[string]int)
	if !ok {
		t.Fatal("storage metrics missing")
	}
	if storage["cap"] != 3 {
		t.Errorf("storage cap = %d, want 3", storage["cap"])
	}
}

func TestSubmit_CancelWhileQueued(t *testing.T) {
	pools := newTestPools(t, PoolConfig{GeneralPoolSize: 1, StoragePoolSize: 1})

	release := make(chan struct{})
	started := make(chan struct{})
	_ = pools.General.Submit(context.Background(), func(ctx context.Context) {
		close(started)
		<-release
	})
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		// Queued behind the blocker; cancellation races the slot becoming
		// free. Either outcome is fine as long as nothing panics.
		_ = pools.General.Submit(ctx, func(ctx context.Context) {})
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()
	close(release)
	wg.Wait()
}
