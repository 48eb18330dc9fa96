package listener_test

import (
	"context"
	"testing"
	"time"

	"github.com/kanzihq/whatsapp-go/listener"
)

func TestCoordinator_ResolveDelivers(t *testing.T) {
	c := listener.NewCoordinator()
	id := listener.UserUpdate{Sender: "2557...", Recipient: "1555..."}

	resCh := make(chan *listener.Result, 1)
	errCh := make(chan error, 1)
	go func() {
		res, err := c.Listen(context.Background(), id)
		resCh <- res
		errCh <- err
	}()

	// give the goroutine a chance to register before resolving.
	time.Sleep(10 * time.Millisecond)

	if ok := c.Resolve(id, "hello"); !ok {
		t.Fatalf("Resolve() = false, want true")
	}

	res := <-resCh
	if err := <-errCh; err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	if res.State != listener.StateDelivered {
		t.Fatalf("State = %v, want %v", res.State, listener.StateDelivered)
	}
	if res.Update != "hello" {
		t.Fatalf("Update = %v, want hello", res.Update)
	}
}

func TestCoordinator_ResolveNoWaiter(t *testing.T) {
	c := listener.NewCoordinator()
	id := listener.TemplateStatusUpdate{TemplateID: "order_confirmation"}

	if ok := c.Resolve(id, "status"); ok {
		t.Fatalf("Resolve() = true, want false when nothing is registered")
	}
}

func TestCoordinator_Timeout(t *testing.T) {
	c := listener.NewCoordinator()
	id := listener.UserUpdate{Sender: "a", Recipient: "b"}

	res, err := c.Listen(context.Background(), id, listener.WithTimeout(10*time.Millisecond))
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	if res.State != listener.StateTimeout {
		t.Fatalf("State = %v, want %v", res.State, listener.StateTimeout)
	}
}

func TestCoordinator_ContextCanceled(t *testing.T) {
	c := listener.NewCoordinator()
	id := listener.UserUpdate{Sender: "a", Recipient: "b"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := c.Listen(ctx, id)
	if err == nil {
		t.Fatalf("Listen() error = nil, want context.Canceled")
	}
	if res.State != listener.StateCanceled {
		t.Fatalf("State = %v, want %v", res.State, listener.StateCanceled)
	}
}

func TestCoordinator_Stop(t *testing.T) {
	c := listener.NewCoordinator()
	id := listener.UserUpdate{Sender: "a", Recipient: "b"}

	resCh := make(chan *listener.Result, 1)
	go func() {
		res, _ := c.Listen(context.Background(), id)
		resCh <- res
	}()

	time.Sleep(10 * time.Millisecond)
	c.Stop(id)

	res := <-resCh
	if res.State != listener.StateStopped {
		t.Fatalf("State = %v, want %v", res.State, listener.StateStopped)
	}
}

func TestCoordinator_FilterSkipsNonMatchingWaiterFIFO(t *testing.T) {
	c := listener.NewCoordinator()
	id := listener.UserUpdate{Sender: "a", Recipient: "b"}

	first := make(chan *listener.Result, 1)
	second := make(chan *listener.Result, 1)

	go func() {
		res, _ := c.Listen(context.Background(), id, listener.WithFilter(func(u any) bool {
			return u != "match-second"
		}))
		first <- res
	}()
	time.Sleep(5 * time.Millisecond)

	go func() {
		res, _ := c.Listen(context.Background(), id)
		second <- res
	}()
	time.Sleep(5 * time.Millisecond)

	if ok := c.Resolve(id, "match-second"); !ok {
		t.Fatalf("Resolve() = false, want true")
	}

	res := <-second
	if res.State != listener.StateDelivered {
		t.Fatalf("second waiter State = %v, want delivered", res.State)
	}

	if ok := c.Resolve(id, "anything"); !ok {
		t.Fatalf("second Resolve() = false, want true")
	}
	res = <-first
	if res.State != listener.StateDelivered {
		t.Fatalf("first waiter State = %v, want delivered", res.State)
	}
}

func TestCoordinator_CancelerEndsWaitWithUpdate(t *testing.T) {
	c := listener.NewCoordinator()
	id := listener.UserUpdate{Sender: "a", Recipient: "b"}

	resCh := make(chan *listener.Result, 1)
	go func() {
		res, _ := c.Listen(context.Background(), id,
			listener.WithFilter(func(u any) bool { return u == "yes" }),
			listener.WithCanceler(func(u any) bool { return u == "abort" }),
		)
		resCh <- res
	}()

	time.Sleep(10 * time.Millisecond)

	// neither filter nor canceler match: the waiter stays registered and
	// the update falls through to the handler registry.
	if c.Resolve(id, "irrelevant") {
		t.Fatalf("Resolve() = true for an update matching neither predicate")
	}

	// the canceler matches: the wait ends with StateCanceled carrying the
	// cancelling update, and the update is not reported as consumed.
	if c.Resolve(id, "abort") {
		t.Fatalf("Resolve() = true for a cancelling update, want false so handlers still run")
	}

	res := <-resCh
	if res.State != listener.StateCanceled {
		t.Fatalf("State = %v, want %v", res.State, listener.StateCanceled)
	}
	if res.Update != "abort" {
		t.Fatalf("Update = %v, want the cancelling update", res.Update)
	}

	// the registry is empty again.
	if c.Resolve(id, "yes") {
		t.Fatalf("registry should be empty after cancellation")
	}
}

func TestCoordinator_FilterWinsOverCanceler(t *testing.T) {
	c := listener.NewCoordinator()
	id := listener.UserUpdate{Sender: "a", Recipient: "b"}

	resCh := make(chan *listener.Result, 1)
	go func() {
		res, _ := c.Listen(context.Background(), id,
			listener.WithFilter(func(u any) bool { return true }),
			listener.WithCanceler(func(u any) bool { return true }),
		)
		resCh <- res
	}()

	time.Sleep(10 * time.Millisecond)

	if !c.Resolve(id, "both-match") {
		t.Fatalf("Resolve() = false, want true when the filter matches")
	}

	res := <-resCh
	if res.State != listener.StateDelivered {
		t.Fatalf("State = %v, want delivered when both predicates match", res.State)
	}
}
