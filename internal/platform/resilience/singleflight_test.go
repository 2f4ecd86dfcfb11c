package resilience

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			_, err, _ := g.Do("roster", func() (any, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestSingleFlight_DoesNotKeepResults(t *testing.T) {
	var g SingleFlight
	var counter int32

	for i := 0; i < 3; i++ {
		_, _, shared := g.Do("lineups", func() (any, error) {
			atomic.AddInt32(&counter, 1)
			return nil, nil
		})
		if shared {
			t.Fatalf("sequential call %d must not be shared", i)
		}
	}
	if got := atomic.LoadInt32(&counter); got != 3 {
		t.Fatalf("expected every sequential call to execute, got %d", got)
	}
}

func TestSingleFlight_WaiterHonoursContext(t *testing.T) {
	var g SingleFlight
	release := make(chan struct{})
	started := make(chan struct{})

	go func() {
		_, _, _ = g.Do("slow", func() (any, error) {
			close(started)
			<-release
			return "done", nil
		})
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err, shared := g.DoContext(ctx, "slow", func() (any, error) {
		t.Errorf("waiter must not execute fn")
		return nil, nil
	})
	close(release)

	if !shared {
		t.Fatalf("expected waiter to join the in-flight call")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestSingleFlight_CallerCancelDoesNotFailOthers(t *testing.T) {
	var g SingleFlight
	release := make(chan struct{})
	started := make(chan struct{})

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err, _ := g.DoContext(leaderCtx, "roster", func() (any, error) {
			close(started)
			<-release
			return "done", nil
		})
		leaderErr <- err
	}()
	<-started

	type result struct {
		val    any
		err    error
		shared bool
	}
	waiter := make(chan result, 1)
	go func() {
		val, err, shared := g.DoContext(context.Background(), "roster", func() (any, error) {
			t.Errorf("waiter must not execute fn")
			return nil, nil
		})
		waiter <- result{val: val, err: err, shared: shared}
	}()

	cancelLeader()
	if err := <-leaderErr; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected the cancelled caller to see context.Canceled, got %v", err)
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	got := <-waiter
	if got.err != nil {
		t.Fatalf("expected waiter to receive the shared result, got %v", got.err)
	}
	if got.val != "done" || !got.shared {
		t.Fatalf("unexpected waiter result: %+v", got)
	}
}
