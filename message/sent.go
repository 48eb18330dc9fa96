//  Copyright 2023 Pius Alfred <me.pius1102@gmail.com>
//
//  Permission is hereby granted, free of charge, to any person obtaining a copy of this software
//  and associated documentation files (the “Software”), to deal in the Software without restriction,
//  including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense,
//  and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so,
//  subject to the following conditions:
//
//  The above copyright notice and this permission notice shall be included in all copies or substantial
//  portions of the Software.
//
//  THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT
//  LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
//  IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY,
//  WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE
//  SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package message

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kanzihq/whatsapp-go/listener"
)

// ErrNoCoordinator is returned by a SentMessage wait method when the Client
// that sent it was built without a listener.Coordinator (see WithCoordinator).
var ErrNoCoordinator = errors.New("message: client has no listener.Coordinator")

// SentMessage is what a successful send returns. It wraps the raw Graph
// Response with the addressing pair (from_phone_id, to_user's wa_id) and,
// when the Client was built WithCoordinator, exposes shortcuts that block
// for the customer's next reply, button click, list selection, or a
// delivery/read receipt for this exact message. The reply/click/selection
// shortcuts hand back whatever concrete type the caller's webhooks handler
// decoded the update into (asserted against listener.InboundMessage), since
// this package cannot import that handler package without an import cycle.
type SentMessage struct {
	*Response

	coordinator *listener.Coordinator
	id          string
	from        string
	to          string
}

// ID is the Graph message id Meta assigned this send, or "" if the response
// carried none.
func (s *SentMessage) ID() string { return s.id }

func (s *SentMessage) identifier() listener.Identifier {
	return listener.UserUpdate{Sender: s.to, Recipient: s.from}
}

func (s *SentMessage) listen(ctx context.Context, timeout time.Duration, filter listener.Filter) (any, error) {
	if s.coordinator == nil {
		return nil, ErrNoCoordinator
	}

	opts := []listener.Option{listener.WithFilter(filter)}
	if timeout > 0 {
		opts = append(opts, listener.WithTimeout(timeout))
	}

	result, err := s.coordinator.Listen(ctx, s.identifier(), opts...)
	if err != nil {
		return nil, fmt.Errorf("message: wait for %s: %w", s.id, err)
	}
	if result.State != listener.StateDelivered {
		return nil, fmt.Errorf("message: wait for %s: %s", s.id, result.State)
	}

	return result.Update, nil
}

// WaitForReply blocks until the recipient sends any message back whose
// reply context names this SentMessage, the wait is canceled, ctx is done,
// or timeout elapses (zero means no timeout). extra, if non-nil, further
// restricts which reply satisfies the wait. The returned value is whatever
// concrete type the handler decoded the inbound message into.
func (s *SentMessage) WaitForReply(ctx context.Context, timeout time.Duration, extra listener.Filter) (any, error) {
	return s.listen(ctx, timeout, func(update any) bool {
		im, ok := update.(listener.InboundMessage)
		if !ok || im.ReplyToID() != s.id {
			return false
		}
		return extra == nil || extra(update)
	})
}

// WaitForClick blocks for an interactive button reply to this message and
// returns the clicked button's id and title.
func (s *SentMessage) WaitForClick(ctx context.Context, timeout time.Duration) (id, title string, err error) {
	update, err := s.WaitForReply(ctx, timeout, func(update any) bool {
		_, _, ok := update.(listener.InboundMessage).ButtonReply() //nolint: forcetypeassert // guarded by WaitForReply
		return ok
	})
	if err != nil {
		return "", "", err
	}

	id, title, _ = update.(listener.InboundMessage).ButtonReply() //nolint: forcetypeassert // guarded above

	return id, title, nil
}

// WaitForSelection blocks for an interactive list selection reply to this
// message and returns the selected item's id, title and description.
func (s *SentMessage) WaitForSelection(ctx context.Context, timeout time.Duration) (id, title, description string, err error) {
	update, err := s.WaitForReply(ctx, timeout, func(update any) bool {
		_, _, _, ok := update.(listener.InboundMessage).ListReply() //nolint: forcetypeassert // guarded by WaitForReply
		return ok
	})
	if err != nil {
		return "", "", "", err
	}

	id, title, description, _ = update.(listener.InboundMessage).ListReply() //nolint: forcetypeassert // guarded above

	return id, title, description, nil
}

func (s *SentMessage) waitForStatus(ctx context.Context, timeout time.Duration, want string) (any, error) {
	return s.listen(ctx, timeout, func(update any) bool {
		st, ok := update.(listener.InboundStatus)
		return ok && st.StatusMessageID() == s.id && st.StatusName() == want
	})
}

// WaitUntilDelivered blocks until Meta reports this message as delivered.
func (s *SentMessage) WaitUntilDelivered(ctx context.Context, timeout time.Duration) (any, error) {
	return s.waitForStatus(ctx, timeout, "delivered")
}

// WaitUntilRead blocks until the recipient has read this message.
func (s *SentMessage) WaitUntilRead(ctx context.Context, timeout time.Duration) (any, error) {
	return s.waitForStatus(ctx, timeout, "read")
}

// SentTemplate is the SentMessage returned by SendTemplate. It additionally
// carries the template's name and language so WaitForCompletion can
// recognize the message_template_status_update event that announces the
// template's next approval/rejection/pause decision.
type SentTemplate struct {
	*SentMessage

	templateName     string
	templateLanguage string
}

// TemplateName is the name of the template that was sent.
func (s *SentTemplate) TemplateName() string { return s.templateName }

// WaitForCompletion blocks until a message_template_status_update event
// arrives for templateID (the template's numeric Graph id, e.g. resolved via
// a prior templates lookup — Graph does not echo it back from a send), the
// wait is canceled, ctx is done, or timeout elapses. The returned value is
// whatever concrete type the handler decoded the notification into.
func (s *SentTemplate) WaitForCompletion(ctx context.Context, templateID string, timeout time.Duration) (any, error) {
	if s.coordinator == nil {
		return nil, ErrNoCoordinator
	}

	var opts []listener.Option
	if timeout > 0 {
		opts = append(opts, listener.WithTimeout(timeout))
	}

	result, err := s.coordinator.Listen(ctx, listener.TemplateStatusUpdate{TemplateID: templateID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("message: wait for template %s completion: %w", s.templateName, err)
	}
	if result.State != listener.StateDelivered {
		return nil, fmt.Errorf("message: wait for template %s completion: %s", s.templateName, result.State)
	}

	return result.Update, nil
}
