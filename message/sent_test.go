package message

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kanzihq/whatsapp-go/listener"
)

type fakeInbound struct {
	replyTo    string
	buttonID   string
	buttonText string
	listID     string
	listTitle  string
	listDesc   string
}

func (f *fakeInbound) ReplyToID() string { return f.replyTo }

func (f *fakeInbound) ButtonReply() (string, string, bool) {
	return f.buttonID, f.buttonText, f.buttonID != ""
}

func (f *fakeInbound) ListReply() (string, string, string, bool) {
	return f.listID, f.listTitle, f.listDesc, f.listID != ""
}

type fakeStatus struct {
	messageID string
	status    string
}

func (f *fakeStatus) StatusMessageID() string { return f.messageID }
func (f *fakeStatus) StatusName() string      { return f.status }

func sentForTest(coordinator *listener.Coordinator) *SentMessage {
	return &SentMessage{
		coordinator: coordinator,
		id:          "wamid.SENT",
		from:        "277321005464405",
		to:          "972544401243",
	}
}

// resolveEventually retries Resolve until a waiter has registered, since the
// wait methods run on another goroutine.
func resolveEventually(t *testing.T, c *listener.Coordinator, id listener.Identifier, update any) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if c.Resolve(id, update) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}

	t.Fatalf("no waiter consumed the update before the deadline")
}

func TestSentMessage_WaitForReply(t *testing.T) {
	coordinator := listener.NewCoordinator()
	sent := sentForTest(coordinator)

	reply := &fakeInbound{replyTo: sent.id}

	got := make(chan any, 1)
	errs := make(chan error, 1)
	go func() {
		update, err := sent.WaitForReply(context.Background(), 2*time.Second, nil)
		got <- update
		errs <- err
	}()

	// an unrelated inbound message for the same pair must not satisfy the
	// wait; it falls through to the handler path instead.
	time.Sleep(10 * time.Millisecond)
	if coordinator.Resolve(sent.identifier(), &fakeInbound{replyTo: "wamid.OTHER"}) {
		t.Fatalf("a non-reply should not be consumed by WaitForReply")
	}

	resolveEventually(t, coordinator, sent.identifier(), reply)

	if update := <-got; update != reply {
		t.Fatalf("WaitForReply() update = %v, want the reply", update)
	}
	if err := <-errs; err != nil {
		t.Fatalf("WaitForReply() error = %v", err)
	}

	// the registry must be empty again once the wait completed.
	if coordinator.Resolve(sent.identifier(), reply) {
		t.Fatalf("registry should be empty after the wait completed")
	}
}

func TestSentMessage_WaitForClick(t *testing.T) {
	coordinator := listener.NewCoordinator()
	sent := sentForTest(coordinator)

	type clicked struct {
		id, title string
		err       error
	}

	got := make(chan clicked, 1)
	go func() {
		id, title, err := sent.WaitForClick(context.Background(), 2*time.Second)
		got <- clicked{id: id, title: title, err: err}
	}()

	resolveEventually(t, coordinator, sent.identifier(),
		&fakeInbound{replyTo: sent.id, buttonID: "confirm", buttonText: "Confirm"})

	result := <-got
	if result.err != nil {
		t.Fatalf("WaitForClick() error = %v", result.err)
	}
	if result.id != "confirm" || result.title != "Confirm" {
		t.Fatalf("WaitForClick() = (%q, %q), want (confirm, Confirm)", result.id, result.title)
	}
}

func TestSentMessage_WaitForSelection(t *testing.T) {
	coordinator := listener.NewCoordinator()
	sent := sentForTest(coordinator)

	type selected struct {
		id, title, description string
		err                    error
	}

	got := make(chan selected, 1)
	go func() {
		id, title, description, err := sent.WaitForSelection(context.Background(), 2*time.Second)
		got <- selected{id: id, title: title, description: description, err: err}
	}()

	resolveEventually(t, coordinator, sent.identifier(),
		&fakeInbound{replyTo: sent.id, listID: "row-1", listTitle: "First", listDesc: "The first row"})

	result := <-got
	if result.err != nil {
		t.Fatalf("WaitForSelection() error = %v", result.err)
	}
	if result.id != "row-1" || result.title != "First" || result.description != "The first row" {
		t.Fatalf("WaitForSelection() = (%q, %q, %q)", result.id, result.title, result.description)
	}
}

func TestSentMessage_WaitUntilRead(t *testing.T) {
	coordinator := listener.NewCoordinator()
	sent := sentForTest(coordinator)

	got := make(chan error, 1)
	go func() {
		_, err := sent.WaitUntilRead(context.Background(), 2*time.Second)
		got <- err
	}()

	time.Sleep(10 * time.Millisecond)
	// a delivered status for this message is not a read receipt.
	if coordinator.Resolve(sent.identifier(), &fakeStatus{messageID: sent.id, status: "delivered"}) {
		t.Fatalf("a delivered status should not satisfy WaitUntilRead")
	}
	// a read status for another message must not match either.
	if coordinator.Resolve(sent.identifier(), &fakeStatus{messageID: "wamid.OTHER", status: "read"}) {
		t.Fatalf("a read status for another message should not satisfy WaitUntilRead")
	}

	resolveEventually(t, coordinator, sent.identifier(), &fakeStatus{messageID: sent.id, status: "read"})

	if err := <-got; err != nil {
		t.Fatalf("WaitUntilRead() error = %v", err)
	}
}

func TestSentMessage_NoCoordinator(t *testing.T) {
	sent := sentForTest(nil)

	_, err := sent.WaitForReply(context.Background(), time.Second, nil)
	if !errors.Is(err, ErrNoCoordinator) {
		t.Fatalf("WaitForReply() error = %v, want ErrNoCoordinator", err)
	}
}

func TestSentTemplate_WaitForCompletion(t *testing.T) {
	coordinator := listener.NewCoordinator()
	sent := &SentTemplate{
		SentMessage:  sentForTest(coordinator),
		templateName: "order_confirmation",
	}

	got := make(chan any, 1)
	errs := make(chan error, 1)
	go func() {
		update, err := sent.WaitForCompletion(context.Background(), "4259470267138702", 2*time.Second)
		got <- update
		errs <- err
	}()

	decision := map[string]string{"event": "APPROVED"}
	resolveEventually(t, coordinator, listener.TemplateStatusUpdate{TemplateID: "4259470267138702"}, decision)

	if err := <-errs; err != nil {
		t.Fatalf("WaitForCompletion() error = %v", err)
	}
	if update := <-got; update == nil {
		t.Fatalf("WaitForCompletion() update = nil")
	}
}
