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
	"fmt"
	"net/http"
	"sync"

	"github.com/kanzihq/whatsapp-go/config"
	"github.com/kanzihq/whatsapp-go/listener"
	whttp "github.com/kanzihq/whatsapp-go/pkg/http"
)

type Client struct {
	mu          *sync.Mutex
	reader      config.Reader
	config      *config.Config
	sender      RequestSender
	coordinator *listener.Coordinator
}

// wrap builds the SentMessage the send methods return, attaching whichever
// listener.Coordinator the Client was constructed with (nil is fine — the
// wait methods then return ErrNoCoordinator).
func (c *Client) wrap(response *Response, recipient string) *SentMessage {
	sent := &SentMessage{
		Response:    response,
		coordinator: c.coordinator,
		from:        c.config.PhoneNumberID,
		to:          recipient,
	}
	if len(response.Messages) > 0 {
		sent.id = response.Messages[0].ID
	}

	return sent
}

func (c *Client) SendText(ctx context.Context, request *Request[Text]) (*SentMessage, error) {
	response, err := sendTrackedMessage(ctx, c, request.Recipient, request.ReplyTo, request.Tracker, request.Message, WithTextMessage)
	if err != nil {
		return nil, err
	}

	return c.wrap(response, request.Recipient), nil
}

func (c *Client) SendLocation(ctx context.Context, request *Request[Location]) (*SentMessage, error) {
	response, err := sendTrackedMessage(ctx, c, request.Recipient, request.ReplyTo, request.Tracker, request.Message, WithLocationMessage)
	if err != nil {
		return nil, err
	}

	return c.wrap(response, request.Recipient), nil
}

func (c *Client) SendVideo(ctx context.Context, request *Request[Video]) (*SentMessage, error) {
	response, err := sendTrackedMessage(ctx, c, request.Recipient, request.ReplyTo, request.Tracker, request.Message, WithVideo)
	if err != nil {
		return nil, err
	}

	return c.wrap(response, request.Recipient), nil
}

func (c *Client) SendReaction(ctx context.Context, request *Request[Reaction]) (*SentMessage, error) {
	response, err := sendTrackedMessage(ctx, c, request.Recipient, request.ReplyTo, request.Tracker, request.Message, WithReaction)
	if err != nil {
		return nil, err
	}

	return c.wrap(response, request.Recipient), nil
}

func (c *Client) SendTemplate(ctx context.Context, request *Request[Template]) (*SentTemplate, error) {
	response, err := sendTrackedMessage(ctx, c, request.Recipient, request.ReplyTo, request.Tracker, request.Message, WithTemplateMessage)
	if err != nil {
		return nil, err
	}

	sent := &SentTemplate{SentMessage: c.wrap(response, request.Recipient), templateName: request.Message.Name}
	if request.Message.Language != nil {
		sent.templateLanguage = request.Message.Language.Code
	}

	return sent, nil
}

func (c *Client) SendImage(ctx context.Context, request *Request[Image]) (*SentMessage, error) {
	response, err := sendTrackedMessage(ctx, c, request.Recipient, request.ReplyTo, request.Tracker, request.Message, WithImage)
	if err != nil {
		return nil, err
	}

	return c.wrap(response, request.Recipient), nil
}

func (c *Client) SendAudio(ctx context.Context, request *Request[Audio]) (*SentMessage, error) {
	response, err := sendTrackedMessage(ctx, c, request.Recipient, request.ReplyTo, request.Tracker, request.Message, WithAudio)
	if err != nil {
		return nil, err
	}

	return c.wrap(response, request.Recipient), nil
}

func (c *Client) RequestLocation(ctx context.Context, request *Request[string]) (*SentMessage, error) {
	response, err := sendTrackedMessage(ctx, c, request.Recipient, request.ReplyTo, request.Tracker, request.Message, WithRequestLocationMessage)
	if err != nil {
		return nil, err
	}

	return c.wrap(response, request.Recipient), nil
}

func (c *Client) SendDocument(ctx context.Context, request *Request[Document]) (*SentMessage, error) {
	response, err := sendTrackedMessage(ctx, c, request.Recipient, request.ReplyTo, request.Tracker, request.Message, WithDocument)
	if err != nil {
		return nil, err
	}

	return c.wrap(response, request.Recipient), nil
}

func (c *Client) SendSticker(ctx context.Context, request *Request[Sticker]) (*SentMessage, error) {
	response, err := sendTrackedMessage(ctx, c, request.Recipient, request.ReplyTo, request.Tracker, request.Message, WithSticker)
	if err != nil {
		return nil, err
	}

	return c.wrap(response, request.Recipient), nil
}

func (c *Client) SendContacts(ctx context.Context, request *Request[Contacts]) (*SentMessage, error) {
	response, err := sendTrackedMessage(ctx, c, request.Recipient, request.ReplyTo, request.Tracker, request.Message, WithContacts)
	if err != nil {
		return nil, err
	}

	return c.wrap(response, request.Recipient), nil
}

func (c *Client) SendInteractiveMessage(ctx context.Context, request *Request[Interactive]) (*SentMessage, error) {
	response, err := sendTrackedMessage(ctx, c, request.Recipient, request.ReplyTo, request.Tracker, request.Message, WithInteractiveMessage)
	if err != nil {
		return nil, err
	}

	return c.wrap(response, request.Recipient), nil
}

func (c *Client) ReloadConfig(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var err error
	c.config, err = c.reader.Read(ctx)
	if err != nil {
		return fmt.Errorf("reload config: %w", err)
	}

	return nil
}

// ClientOption configures a Client after its required fields are set.
type ClientOption func(*Client)

// WithCoordinator attaches the listener.Coordinator a running webhooks
// handler resolves inbound updates against, letting Client.SendXxx's
// SentMessage results block for replies, clicks, selections, receipts and
// template decisions.
func WithCoordinator(coordinator *listener.Coordinator) ClientOption {
	return func(c *Client) {
		c.coordinator = coordinator
	}
}

func NewClient(ctx context.Context, reader config.Reader, sender whttp.Sender[Message],
	middlewares []SenderMiddleware, opts ...ClientOption,
) (*Client, error) {
	conf, err := reader.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	s := &BaseSender{sender}
	sf := s.SendRequest
	if len(middlewares) > 0 {
		for i := len(middlewares) - 1; i >= 0; i-- {
			mw := middlewares[i]
			if mw != nil {
				sf = mw(sf)
			}
		}
	}

	c := &Client{
		mu:     &sync.Mutex{},
		reader: reader,
		config: conf,
		sender: RequestSenderFunc(sf),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c, nil
}

func (c *Client) SendMessage(ctx context.Context, message *Message) (*Response, error) {
	req := NewBaseRequest(
		message,
		WithBaseRequestMethod(http.MethodPost),
		WithBaseRequestEndpoints(Endpoint),
		WithBaseRequestType(whttp.RequestTypeSendMessage),
		WithBaseRequestDecodeOptions(whttp.DecodeOptions{
			DisallowUnknownFields: true,
			DisallowEmptyResponse: true,
			InspectResponseError:  true,
		}),
	)

	response, err := c.sender.SendRequest(ctx, c.config, req)
	if err != nil {
		return nil, fmt.Errorf("send: %w", err)
	}

	return response, nil
}

func (c *Client) UpdateStatus(ctx context.Context, request *StatusUpdateRequest) (*StatusUpdateResponse, error) {
	ms := string(request.Status)
	message := &Message{
		Product:   MessagingProduct,
		Status:    &ms,
		MessageID: &request.MessageID,
	}

	if request.WithTypingIndicator {
		message.TypingIndicator = &TypingIndicator{Type: "text"}
	}

	req := NewBaseRequest(
		message,
		WithBaseRequestMethod(http.MethodPost),
		WithBaseRequestEndpoints(Endpoint),
		WithBaseRequestType(whttp.RequestTypeUpdateStatus),
		WithBaseRequestDecodeOptions(whttp.DecodeOptions{
			DisallowUnknownFields: true,
			DisallowEmptyResponse: false,
			InspectResponseError:  true,
		}),
	)

	response, err := c.sender.SendRequest(ctx, c.config, req)
	if err != nil {
		return nil, fmt.Errorf("update message Status: %w", err)
	}

	return &StatusUpdateResponse{Success: response.Success}, nil
}
