package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/kanzihq/whatsapp-go/listener"
	"github.com/kanzihq/whatsapp-go/webhooks/handler"
)

func textNotification(phoneNumberID, from, body string) *handler.Notification {
	return &handler.Notification{
		Object: "whatsapp_business_account",
		Entry: []handler.Entry{
			{
				ID: "entry-1",
				Changes: []handler.Change{
					{
						Field: handler.ChangeFieldMessages.String(),
						Value: &handler.Value{
							MessagingProduct: "whatsapp",
							Metadata:         &handler.Metadata{PhoneNumberID: phoneNumberID},
							Messages: []*handler.Message{
								{
									From: from,
									ID:   "wamid.1",
									Type: "text",
									Text: &handler.Text{Body: body},
								},
							},
						},
					},
				},
			},
		},
	}
}

func TestHandler_HandleNotification_DispatchesTextMessage(t *testing.T) {
	var gotBody string
	h := &handler.Handler{
		TextMessageHandler: handler.MessageHandlerFunc[handler.Text](
			func(ctx context.Context, nctx *handler.MessageNotificationContext, mctx *handler.MessageInfo, text *handler.Text) error {
				gotBody = text.Body

				return nil
			}),
	}

	resp := h.HandleNotification(context.Background(), textNotification("1234", "9198765", "hello"))

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("StatusCode = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if gotBody != "hello" {
		t.Fatalf("text body = %q, want %q", gotBody, "hello")
	}
}

func TestHandler_HandleNotification_UnsetHandlerDoesNotPanic(t *testing.T) {
	h := &handler.Handler{}

	resp := h.HandleNotification(context.Background(), textNotification("1234", "9198765", "hello"))

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("StatusCode = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

func TestHandler_HandleNotification_FilterPhoneNumberIDDropsMismatch(t *testing.T) {
	called := false
	h := &handler.Handler{
		FilterPhoneNumberID: "want-this-one",
		TextMessageHandler: handler.MessageHandlerFunc[handler.Text](
			func(ctx context.Context, nctx *handler.MessageNotificationContext, mctx *handler.MessageInfo, text *handler.Text) error {
				called = true

				return nil
			}),
	}

	h.HandleNotification(context.Background(), textNotification("some-other-number", "9198765", "hello"))

	if called {
		t.Fatalf("handler invoked for a phone_number_id that does not match FilterPhoneNumberID")
	}
}

func TestHandler_HandleNotification_FilterPhoneNumberIDAllowsMatch(t *testing.T) {
	called := false
	h := &handler.Handler{
		FilterPhoneNumberID: "1234",
		TextMessageHandler: handler.MessageHandlerFunc[handler.Text](
			func(ctx context.Context, nctx *handler.MessageNotificationContext, mctx *handler.MessageInfo, text *handler.Text) error {
				called = true

				return nil
			}),
	}

	h.HandleNotification(context.Background(), textNotification("1234", "9198765", "hello"))

	if !called {
		t.Fatalf("handler not invoked for a phone_number_id that matches FilterPhoneNumberID")
	}
}

func TestHandler_HandleNotification_ErrorHandlerControlsStatusCode(t *testing.T) {
	wantErr := errors.New("boom")
	h := &handler.Handler{
		TextMessageHandler: handler.MessageHandlerFunc[handler.Text](
			func(ctx context.Context, nctx *handler.MessageNotificationContext, mctx *handler.MessageInfo, text *handler.Text) error {
				return wantErr
			}),
		ErrorHandler: func(ctx context.Context, err error) error {
			return err
		},
	}

	resp := h.HandleNotification(context.Background(), textNotification("1234", "9198765", "hello"))

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("StatusCode = %d, want %d", resp.StatusCode, http.StatusInternalServerError)
	}
}

func TestHandler_HandleNotification_ErrorHandlerSwallowsError(t *testing.T) {
	h := &handler.Handler{
		TextMessageHandler: handler.MessageHandlerFunc[handler.Text](
			func(ctx context.Context, nctx *handler.MessageNotificationContext, mctx *handler.MessageInfo, text *handler.Text) error {
				return errors.New("boom")
			}),
		ErrorHandler: func(ctx context.Context, err error) error {
			return nil
		},
	}

	resp := h.HandleNotification(context.Background(), textNotification("1234", "9198765", "hello"))

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("StatusCode = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

// A waiter registered on the Coordinator for a given sender/recipient pair
// consumes the update before the bound TextMessageHandler runs, unless
// ContinueHandling opts back in.
func TestHandler_HandleNotification_CoordinatorConsumesBeforeHandler(t *testing.T) {
	coord := listener.NewCoordinator()
	called := false
	h := &handler.Handler{
		Coordinator: coord,
		TextMessageHandler: handler.MessageHandlerFunc[handler.Text](
			func(ctx context.Context, nctx *handler.MessageNotificationContext, mctx *handler.MessageInfo, text *handler.Text) error {
				called = true

				return nil
			}),
	}

	resultCh := make(chan *listener.Result, 1)
	go func() {
		res, err := coord.Listen(context.Background(), listener.UserUpdate{Sender: "9198765", Recipient: "1234"})
		if err != nil {
			t.Errorf("Listen() error = %v", err)
		}
		resultCh <- res
	}()

	// give the goroutine a chance to register before delivery.
	time.Sleep(10 * time.Millisecond)

	h.HandleNotification(context.Background(), textNotification("1234", "9198765", "hello"))

	res := <-resultCh
	if res.State != listener.StateDelivered {
		t.Fatalf("State = %v, want %v", res.State, listener.StateDelivered)
	}
	if called {
		t.Fatalf("TextMessageHandler ran even though a waiter consumed the update and ContinueHandling is false")
	}
}

func TestHandler_HandleNotification_ContinueHandlingRunsBothCoordinatorAndHandler(t *testing.T) {
	coord := listener.NewCoordinator()
	called := false
	h := &handler.Handler{
		Coordinator:      coord,
		ContinueHandling: true,
		TextMessageHandler: handler.MessageHandlerFunc[handler.Text](
			func(ctx context.Context, nctx *handler.MessageNotificationContext, mctx *handler.MessageInfo, text *handler.Text) error {
				called = true

				return nil
			}),
	}

	resultCh := make(chan *listener.Result, 1)
	go func() {
		res, _ := coord.Listen(context.Background(), listener.UserUpdate{Sender: "9198765", Recipient: "1234"})
		resultCh <- res
	}()

	time.Sleep(10 * time.Millisecond)

	h.HandleNotification(context.Background(), textNotification("1234", "9198765", "hello"))

	<-resultCh
	if !called {
		t.Fatalf("TextMessageHandler did not run even though ContinueHandling is true")
	}
}

func TestHandler_HandleNotification_ButtonReplyDispatch(t *testing.T) {
	var gotID string
	h := &handler.Handler{
		ButtonReplyMessageHandler: handler.MessageHandlerFunc[handler.ButtonReply](
			func(ctx context.Context, nctx *handler.MessageNotificationContext, mctx *handler.MessageInfo, br *handler.ButtonReply) error {
				gotID = br.ID

				return nil
			}),
	}

	notification := &handler.Notification{
		Entry: []handler.Entry{
			{
				Changes: []handler.Change{
					{
						Field: handler.ChangeFieldMessages.String(),
						Value: &handler.Value{
							Messages: []*handler.Message{
								{
									From: "9198765",
									ID:   "wamid.2",
									Type: "interactive",
									Interactive: &handler.Interactive{
										Type:        handler.InteractiveTypeButtonReply,
										ButtonReply: &handler.ButtonReply{ID: "opt-1", Title: "Option 1"},
									},
								},
							},
						},
					},
				},
			},
		},
	}

	h.HandleNotification(context.Background(), notification)

	if gotID != "opt-1" {
		t.Fatalf("button reply id = %q, want %q", gotID, "opt-1")
	}
}

func TestHandler_HandleNotification_StatusChangeDispatch(t *testing.T) {
	var gotStatus string
	h := &handler.Handler{
		MessageStatusChangeHandler: handler.MessageChangeValueHandlerFunc[handler.Status](
			func(ctx context.Context, nctx *handler.MessageNotificationContext, status *handler.Status) error {
				gotStatus = status.StatusValue

				return nil
			}),
	}

	notification := &handler.Notification{
		Entry: []handler.Entry{
			{
				Changes: []handler.Change{
					{
						Field: handler.ChangeFieldMessages.String(),
						Value: &handler.Value{
							Statuses: []*handler.Status{
								{ID: "wamid.3", RecipientID: "9198765", StatusValue: "delivered"},
							},
						},
					},
				},
			},
		},
	}

	h.HandleNotification(context.Background(), notification)

	if gotStatus != "delivered" {
		t.Fatalf("status = %q, want %q", gotStatus, "delivered")
	}
}

// Three handlers registered for text messages in order: H1's filter rejects,
// H2 and H3 both match. With continue-handling off only H2 runs; with it on,
// H2 and H3 both run.
func TestMessageHandlerChain_FirstMatchWinsOrAllRun(t *testing.T) {
	run := func(continueHandling bool) []string {
		var ran []string
		record := func(name string) func(context.Context, *handler.MessageNotificationContext, *handler.MessageInfo, *handler.Text) error {
			return func(context.Context, *handler.MessageNotificationContext, *handler.MessageInfo, *handler.Text) error {
				ran = append(ran, name)

				return nil
			}
		}

		chain := handler.NewMessageHandlerChain[handler.Text](continueHandling).
			RegisterFunc(record("H1"), func(context.Context, *handler.MessageNotificationContext, *handler.MessageInfo, *handler.Text) bool {
				return false
			}).
			RegisterFunc(record("H2"), func(context.Context, *handler.MessageNotificationContext, *handler.MessageInfo, *handler.Text) bool {
				return true
			}).
			RegisterFunc(record("H3"), func(context.Context, *handler.MessageNotificationContext, *handler.MessageInfo, *handler.Text) bool {
				return true
			})

		h := &handler.Handler{TextMessageHandler: chain}
		h.HandleNotification(context.Background(), textNotification("1234", "9198765", "hello"))

		return ran
	}

	if got := run(false); len(got) != 1 || got[0] != "H2" {
		t.Fatalf("continue_handling=false ran %v, want [H2]", got)
	}
	if got := run(true); len(got) != 2 || got[0] != "H2" || got[1] != "H3" {
		t.Fatalf("continue_handling=true ran %v, want [H2 H3]", got)
	}
}

func TestMessageHandlerChain_StopHandlingEndsChain(t *testing.T) {
	var ran []string
	chain := handler.NewMessageHandlerChain[handler.Text](true).
		RegisterFunc(func(context.Context, *handler.MessageNotificationContext, *handler.MessageInfo, *handler.Text) error {
			ran = append(ran, "first")

			return handler.StopHandling
		}).
		RegisterFunc(func(context.Context, *handler.MessageNotificationContext, *handler.MessageInfo, *handler.Text) error {
			ran = append(ran, "second")

			return nil
		})

	h := &handler.Handler{TextMessageHandler: chain}
	h.HandleNotification(context.Background(), textNotification("1234", "9198765", "hello"))

	if len(ran) != 1 || ran[0] != "first" {
		t.Fatalf("ran %v, want StopHandling to end the chain after the first handler", ran)
	}
}

func TestMessageHandlerChain_ContinueHandlingOverridesStopPolicy(t *testing.T) {
	var ran []string
	chain := handler.NewMessageHandlerChain[handler.Text](false).
		RegisterFunc(func(context.Context, *handler.MessageNotificationContext, *handler.MessageInfo, *handler.Text) error {
			ran = append(ran, "first")

			return handler.ContinueHandling
		}).
		RegisterFunc(func(context.Context, *handler.MessageNotificationContext, *handler.MessageInfo, *handler.Text) error {
			ran = append(ran, "second")

			return nil
		})

	h := &handler.Handler{TextMessageHandler: chain}
	h.HandleNotification(context.Background(), textNotification("1234", "9198765", "hello"))

	if len(ran) != 2 {
		t.Fatalf("ran %v, want ContinueHandling to let the next handler run despite the stop-first policy", ran)
	}
}
