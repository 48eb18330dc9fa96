/*
 * Copyright 2023 Pius Alfred <me.pius1102@gmail.com>
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy of this software
 * and associated documentation files (the “Software”), to deal in the Software without restriction,
 * including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense,
 * and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so,
 * subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all copies or substantial
 * portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT
 * LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
 * IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY,
 * WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE
 * SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 */

package handler

import (
	"context"
	"errors"

	"github.com/kanzihq/whatsapp-go"
)

// Sentinel values a chained handler returns to steer the chain. They are
// control signals, never surfaced to the caller as errors.
const (
	// StopHandling terminates the chain for this update, regardless of the
	// chain's continue-handling policy.
	StopHandling = whatsapp.Error("handler: stop handling")
	// ContinueHandling lets the chain proceed to the next handler even when
	// the chain stops after the first match by default.
	ContinueHandling = whatsapp.Error("handler: continue handling")
)

type (
	// MessageFilter gates one registration in a MessageHandlerChain. All
	// filters of a registration must return true for its handler to run.
	MessageFilter[T any] func(ctx context.Context, nctx *MessageNotificationContext, mctx *MessageInfo, message *T) bool

	chained[T any] struct {
		filters []MessageFilter[T]
		handler MessageHandler[T]
	}

	// MessageHandlerChain stores several ordered, independently filtered
	// handlers for a single message variant. It implements
	// MessageHandler[T], so a chain slots into any of Handler's per-variant
	// fields:
	//
	//	chain := handler.NewMessageHandlerChain[handler.Text](false).
	//	    Register(adminHandler, isAdmin).
	//	    Register(fallbackHandler)
	//	h := &handler.Handler{TextMessageHandler: chain}
	//
	// Handlers run in registration order. For each, the filters are
	// evaluated sequentially; any false skips it. When all pass, the
	// handler runs: with continue-handling off (the default policy) the
	// first handler that returns without ContinueHandling wins and the
	// chain stops; with it on, every matching handler runs. StopHandling
	// ends the chain either way.
	MessageHandlerChain[T any] struct {
		handlers         []chained[T]
		continueHandling bool
	}
)

// NewMessageHandlerChain returns an empty chain. continueHandling picks the
// policy applied after a handler returns normally: false stops at the first
// match, true runs every matching handler.
func NewMessageHandlerChain[T any](continueHandling bool) *MessageHandlerChain[T] {
	return &MessageHandlerChain[T]{continueHandling: continueHandling}
}

// Register appends a handler gated by filters. It returns the chain so
// registrations can be fluently stacked.
func (c *MessageHandlerChain[T]) Register(h MessageHandler[T], filters ...MessageFilter[T]) *MessageHandlerChain[T] {
	c.handlers = append(c.handlers, chained[T]{filters: filters, handler: h})

	return c
}

// RegisterFunc is Register for a bare function.
func (c *MessageHandlerChain[T]) RegisterFunc(
	fn func(ctx context.Context, nctx *MessageNotificationContext, mctx *MessageInfo, message *T) error,
	filters ...MessageFilter[T],
) *MessageHandlerChain[T] {
	return c.Register(MessageHandlerFunc[T](fn), filters...)
}

func (entry chained[T]) matches(ctx context.Context, nctx *MessageNotificationContext, mctx *MessageInfo, message *T) bool {
	for _, filter := range entry.filters {
		if filter != nil && !filter(ctx, nctx, mctx, message) {
			return false
		}
	}

	return true
}

// Handle implements MessageHandler[T] by running the chain.
func (c *MessageHandlerChain[T]) Handle(ctx context.Context, nctx *MessageNotificationContext,
	mctx *MessageInfo, message *T,
) error {
	for _, entry := range c.handlers {
		if entry.handler == nil || !entry.matches(ctx, nctx, mctx, message) {
			continue
		}

		err := entry.handler.Handle(ctx, nctx, mctx, message)
		switch {
		case errors.Is(err, StopHandling):
			return nil
		case errors.Is(err, ContinueHandling):
			continue
		case err != nil:
			return err
		}

		if !c.continueHandling {
			return nil
		}
	}

	return nil
}
