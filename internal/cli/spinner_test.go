package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerStartStop(t *testing.T) {
	spin := newSpinnerWithContext(context.Background(), "working")

	spin.Start()
	time.Sleep(100 * time.Millisecond)
	spin.Stop()

	if spin.Cancelled() == false {
		// Stop cancels the internal context, so Cancelled reports true
		// after a normal stop as well.
		t.Error("Cancelled() = false after Stop()")
	}
}

func TestSpinnerStopTwice(t *testing.T) {
	spin := newSpinnerWithContext(context.Background(), "working")

	spin.Start()
	spin.Stop()
	spin.Stop() // must not panic or deadlock
}

func TestSpinnerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	spin := newSpinnerWithContext(ctx, "working")

	spin.Start()
	cancel()

	done := make(chan struct{})
	go func() {
		spin.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop() did not return after context cancellation")
	}
}
