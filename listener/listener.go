/*
 *  Copyright 2023 Pius Alfred <me.pius1102@gmail.com>
 *
 *  Permission is hereby granted, free of charge, to any person obtaining a copy of this software
 *  and associated documentation files (the “Software”), to deal in the Software without restriction,
 *  including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense,
 *  and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so,
 *  subject to the following conditions:
 *
 *  The above copyright notice and this permission notice shall be included in all copies or substantial
 *  portions of the Software.
 *
 *  THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT
 *  LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
 *  IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY,
 *  WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE
 *  SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 */

// Package listener implements a rendezvous point between inbound webhook
// updates and code that is blocked waiting for one of them. A handler calls
// Coordinator.Resolve as updates arrive; a caller elsewhere blocks in
// Coordinator.Listen until a matching update shows up, the wait is canceled,
// or it times out.
package listener

import (
	"context"
	"sync"
	"time"
)

// Kind discriminates the two identifier shapes a waiter can register under.
type Kind string

const (
	KindUserUpdate     Kind = "user_update"
	KindTemplateStatus Kind = "template_status"
)

type (
	// Identifier addresses a registration slot in the Coordinator. Two
	// identifiers address the same slot when their Kind and Key agree.
	Identifier interface {
		Kind() Kind
		Key() string
	}

	// UserUpdate identifies updates exchanged between a specific business
	// phone number (Recipient) and a specific customer (Sender).
	UserUpdate struct {
		Sender    string
		Recipient string
	}

	// TemplateStatusUpdate identifies quality/status changes for one
	// message template.
	TemplateStatusUpdate struct {
		TemplateID string
	}
)

func (u UserUpdate) Kind() Kind { return KindUserUpdate }
func (u UserUpdate) Key() string { return u.Sender + "\x00" + u.Recipient }

func (t TemplateStatusUpdate) Kind() Kind     { return KindTemplateStatus }
func (t TemplateStatusUpdate) Key() string    { return t.TemplateID }

// State is the terminal state a Listen call resolved with.
type State int

const (
	// StateDelivered means an update matching the filter arrived.
	StateDelivered State = iota
	// StateCanceled means the canceler predicate matched an update, or the
	// caller's context or cancel channel fired first. When a canceler
	// matched, Result.Update carries the cancelling update.
	StateCanceled
	// StateTimeout means the configured timeout elapsed first.
	StateTimeout
	// StateStopped means the registration was evicted by Stop.
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateDelivered:
		return "delivered"
	case StateCanceled:
		return "canceled"
	case StateTimeout:
		return "timeout"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Result is returned by Listen once a wait reaches a terminal state.
type Result struct {
	State  State
	Update any
}

// Filter decides whether an update satisfies a particular waiter. A nil
// filter matches everything.
type Filter func(update any) bool

type (
	// InboundMessage is implemented by whatever concrete type a webhooks
	// handler decodes an inbound user message into. Code that waits for a
	// reply (e.g. message.SentMessage) type-asserts an update to this
	// interface to recognize replies, button clicks and list selections
	// without importing the handler package itself.
	InboundMessage interface {
		// ReplyToID is the id of the message this one replies to, or "" if
		// it carries no reply context.
		ReplyToID() string
		// ButtonReply reports the id/title of the button the user clicked,
		// and ok=false if this update isn't a button reply.
		ButtonReply() (id, title string, ok bool)
		// ListReply reports the id/title/description of the item the user
		// selected, and ok=false if this update isn't a list reply.
		ListReply() (id, title, description string, ok bool)
	}

	// InboundStatus is implemented by whatever concrete type a webhooks
	// handler decodes a message status notification into.
	InboundStatus interface {
		// StatusMessageID is the id of the message this status describes.
		StatusMessageID() string
		// StatusName is "sent", "delivered", "read" or "failed".
		StatusName() string
	}
)

type waitOptions struct {
	filter   Filter
	canceler Filter
	timeout  time.Duration
	cancel   <-chan struct{}
}

// Option configures a Listen call.
type Option func(*waitOptions)

// WithFilter restricts delivery to updates for which filter returns true.
// Updates that don't match fall through to the next registered waiter.
func WithFilter(filter Filter) Option {
	return func(o *waitOptions) {
		o.filter = filter
	}
}

// WithTimeout bounds how long Listen blocks before returning StateTimeout.
// A zero duration (the default) means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *waitOptions) {
		o.timeout = d
	}
}

// WithCanceler registers a second predicate evaluated against every update
// the filter rejected. An update matching the canceler ends the wait with
// StateCanceled and the cancelling update attached; Resolve still reports
// that update as not consumed, so the handler registry also receives it.
func WithCanceler(canceler Filter) Option {
	return func(o *waitOptions) {
		o.canceler = canceler
	}
}

// WithCancel supplies an external channel that, when closed, ends the wait
// with StateCanceled.
func WithCancel(cancel <-chan struct{}) Option {
	return func(o *waitOptions) {
		o.cancel = cancel
	}
}

type waiter struct {
	filter   Filter
	canceler Filter
	resultCh chan Result
}

// Coordinator is the registry of pending waiters. The zero value is not
// usable; construct one with NewCoordinator. A Coordinator is safe for
// concurrent use.
type Coordinator struct {
	mu      sync.Mutex
	waiters map[string][]*waiter
}

// NewCoordinator returns an empty Coordinator.
func NewCoordinator() *Coordinator {
	return &Coordinator{waiters: make(map[string][]*waiter)}
}

func slot(id Identifier) string {
	return string(id.Kind()) + ":" + id.Key()
}

// Listen registers a waiter for id and blocks until an update matching the
// waiter's filter is delivered via Resolve, the wait is stopped via Stop,
// ctx is done, the cancel option fires, or the timeout option elapses.
//
// The registry lock is never held while this call is blocked; it is taken
// only to register and unregister the waiter, so Resolve on another
// goroutine is never blocked by a slow or long-lived caller.
func (c *Coordinator) Listen(ctx context.Context, id Identifier, opts ...Option) (*Result, error) {
	o := &waitOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	w := &waiter{filter: o.filter, canceler: o.canceler, resultCh: make(chan Result, 1)}
	key := slot(id)

	c.mu.Lock()
	c.waiters[key] = append(c.waiters[key], w)
	c.mu.Unlock()

	defer c.evict(key, w)

	var timeoutCh <-chan time.Time
	if o.timeout > 0 {
		timer := time.NewTimer(o.timeout)
		defer timer.Stop()
		timeoutCh = timer.C
	}

	select {
	case res := <-w.resultCh:
		return &res, nil
	case <-ctx.Done():
		return &Result{State: StateCanceled}, ctx.Err()
	case <-o.cancel:
		return &Result{State: StateCanceled}, nil
	case <-timeoutCh:
		return &Result{State: StateTimeout}, nil
	}
}

func (c *Coordinator) evict(key string, w *waiter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	list := c.waiters[key]
	for i, ww := range list {
		if ww == w {
			c.waiters[key] = append(list[:i], list[i+1:]...)
			break
		}
	}

	if len(c.waiters[key]) == 0 {
		delete(c.waiters, key)
	}
}

// Resolve offers update to the first FIFO-ordered waiter registered under
// id. For each waiter the filter is evaluated first (nil matches
// everything); a match delivers the update and ends the wait. A waiter
// whose filter rejected the update then has its canceler evaluated; a
// match ends the wait with StateCanceled and the cancelling update
// attached. A waiter matching neither is left in place. Resolve reports
// whether some waiter consumed the update; callers typically treat a false
// result as "run the handler registry instead, nothing was listening for
// this".
func (c *Coordinator) Resolve(id Identifier, update any) bool {
	key := slot(id)

	c.mu.Lock()
	list := c.waiters[key]
	var chosen *waiter
	state := StateDelivered
	idx := -1
	for i, w := range list {
		if w.filter == nil || w.filter(update) {
			chosen = w
			idx = i
			break
		}
		if w.canceler != nil && w.canceler(update) {
			chosen = w
			state = StateCanceled
			idx = i
			break
		}
	}
	if chosen != nil {
		c.waiters[key] = append(append([]*waiter{}, list[:idx]...), list[idx+1:]...)
		if len(c.waiters[key]) == 0 {
			delete(c.waiters, key)
		}
	}
	c.mu.Unlock()

	if chosen == nil {
		return false
	}

	chosen.resultCh <- Result{State: state, Update: update}
	return state == StateDelivered
}

// Stop evicts every waiter registered under id and wakes each with
// StateStopped. It is a no-op if nothing is registered.
func (c *Coordinator) Stop(id Identifier) {
	key := slot(id)

	c.mu.Lock()
	list := c.waiters[key]
	delete(c.waiters, key)
	c.mu.Unlock()

	for _, w := range list {
		w.resultCh <- Result{State: StateStopped}
	}
}
