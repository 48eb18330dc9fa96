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

package message

import (
	"context"

	"github.com/kanzihq/whatsapp-go/pkg/types"
)

type (
	// Service is the outbound message orchestrator contract. Client is its
	// canonical implementation; every send returns a SentMessage (SendTemplate
	// returns the richer SentTemplate) carrying enough addressing information
	// to block for a reply, click, selection, receipt or template decision
	// via the listener package.
	Service interface {
		SendText(ctx context.Context, request *Request[Text]) (*SentMessage, error)
		SendLocation(ctx context.Context, request *Request[Location]) (*SentMessage, error)
		SendVideo(ctx context.Context, request *Request[Video]) (*SentMessage, error)
		SendReaction(ctx context.Context, request *Request[Reaction]) (*SentMessage, error)
		SendTemplate(ctx context.Context, request *Request[Template]) (*SentTemplate, error)
		SendImage(ctx context.Context, request *Request[Image]) (*SentMessage, error)
		SendAudio(ctx context.Context, request *Request[Audio]) (*SentMessage, error)
		SendDocument(ctx context.Context, request *Request[Document]) (*SentMessage, error)
		SendSticker(ctx context.Context, request *Request[Sticker]) (*SentMessage, error)
		SendContacts(ctx context.Context, request *Request[Contacts]) (*SentMessage, error)
		RequestLocation(ctx context.Context, request *Request[string]) (*SentMessage, error)
		SendInteractiveMessage(ctx context.Context, request *Request[Interactive]) (*SentMessage, error)
	}

	// Sender is implemented by BaseClient and Client. sendMessage uses it to dispatch
	// the final wire Message regardless of which client built it.
	Sender interface {
		SendMessage(ctx context.Context, message *Message) (*Response, error)
	}
)

const (
	Endpoint                = "/messages"
	MessagingProduct        = "whatsapp"
	RecipientTypeIndividual = "individual"
	RecipientTypeGroup      = "group"
	TypeText                = "text"
	TypeVideo               = "video"
	TypeAudio               = "audio"
	TypeSticker             = "sticker"
	TypeDocument            = "document"
	TypeImage               = "image"
	TypeLocation            = "location"
	TypeReaction            = "reaction"
	TypeContacts            = "contacts"
	TypeInteractive         = "interactive"
	TypeTemplate            = "template"
)

type (
	Text struct {
		PreviewURL bool   `json:"preview_url,omitempty"`
		Body       string `json:"body,omitempty"`
	}

	Location struct {
		Longitude float64 `json:"longitude"`
		Latitude  float64 `json:"latitude"`
		Name      string  `json:"name"`
		Address   string  `json:"address"`
	}

	Context struct {
		MessageID string `json:"message_id"`
	}

	Reaction struct {
		MessageID string `json:"message_id"`
		Emoji     string `json:"emoji"`
	}

	Message struct {
		Product               string           `json:"messaging_product"`
		To                    string           `json:"to"`
		RecipientType         string           `json:"recipient_type"`
		Type                  string           `json:"type"`
		PreviewURL            bool             `json:"preview_url,omitempty"`
		Context               *Context         `json:"context,omitempty"`
		Text                  *Text            `json:"text,omitempty"`
		Location              *Location        `json:"location,omitempty"`
		Reaction              *Reaction        `json:"reaction,omitempty"`
		Contacts              Contacts         `json:"contacts,omitempty"`
		Interactive           *Interactive     `json:"interactive,omitempty"`
		Document              *Document        `json:"document,omitempty"`
		Sticker               *Sticker         `json:"sticker,omitempty"`
		Video                 *Video           `json:"video,omitempty"`
		Image                 *Image           `json:"image,omitempty"`
		Audio                 *Audio           `json:"audio,omitempty"`
		Status                *string          `json:"status,omitempty"`     // used to update message status
		MessageID             *string          `json:"message_id,omitempty"` // used to update message status
		Template              *Template        `json:"template,omitempty"`
		TypingIndicator       *TypingIndicator `json:"typing_indicator,omitempty"`
		BizOpaqueCallbackData *string          `json:"biz_opaque_callback_data,omitempty"`
	}

	Option func(message *Message)

	Response struct {
		Product         string             `json:"messaging_product,omitempty"`
		Contacts        []*ResponseContact `json:"contacts,omitempty"`
		Messages        []*ID              `json:"messages,omitempty"`
		MessageMetadata types.Metadata     `json:"-"`
		Success         bool               `json:"success"`
	}

	ID struct {
		ID            string `json:"id,omitempty"`
		MessageStatus string `json:"message_status,omitempty"`
	}

	ResponseContact struct {
		Input      string `json:"input"`
		WhatsappID string `json:"wa_id"`
	}
)

func New(recipient string, options ...Option) (*Message, error) {
	msg := &Message{
		Product:       MessagingProduct,
		To:            recipient,
		RecipientType: RecipientTypeIndividual,
		Type:          "",
		PreviewURL:    false,
		Context:       nil,
		Text:          nil,
	}

	for _, option := range options {
		if option != nil {
			option(msg)
		}
	}

	if err := msg.Validate(); err != nil {
		return nil, err
	}

	return msg, nil
}

func WithImage(image *Image) Option {
	return func(message *Message) {
		message.Type = TypeImage
		message.Image = image
	}
}

func WithAudio(image *Audio) Option {
	return func(message *Message) {
		message.Type = TypeAudio
		message.Audio = image
	}
}

func WithSticker(image *Sticker) Option {
	return func(message *Message) {
		message.Type = TypeSticker
		message.Sticker = image
	}
}

func WithVideo(image *Video) Option {
	return func(message *Message) {
		message.Type = TypeVideo
		message.Video = image
	}
}

func WithDocument(doc *Document) Option {
	return func(message *Message) {
		message.Document = doc
		message.Type = TypeDocument
	}
}

func WithContacts(contacts *Contacts) Option {
	return func(message *Message) {
		message.Type = TypeContacts
		message.Contacts = *contacts
	}
}

func WithReaction(reaction *Reaction) Option {
	return func(message *Message) {
		message.Type = TypeReaction
		message.Reaction = reaction
	}
}

func WithMessageAsReplyTo(messageID string) Option {
	return func(message *Message) {
		message.Context = &Context{MessageID: messageID}
	}
}

// WithTracker attaches data as the outbound biz_opaque_callback_data field.
// Meta echoes it back verbatim on the eventual status notifications (and on
// any reply, per §4.D), letting a handler recover it later — raw for a plain
// string, or via callback.Codec.Encode for a structured callback.Record.
func WithTracker(data string) Option {
	return func(message *Message) {
		if data != "" {
			message.BizOpaqueCallbackData = &data
		}
	}
}

func WithTextMessage(text *Text) Option {
	return func(message *Message) {
		message.Type = TypeText
		message.Text = text
	}
}

func WithLocationMessage(location *Location) Option {
	return func(message *Message) {
		message.Type = TypeLocation
		message.Location = location
	}
}

func WithRecipientType(recipientType string) Option {
	return func(message *Message) {
		message.RecipientType = recipientType
	}
}

type (
	MediaInfo struct {
		ID       string `json:"id,omitempty"`
		Caption  string `json:"caption,omitempty"`
		MimeType string `json:"mime_type,omitempty"`
		Sha256   string `json:"sha256,omitempty"`
		Filename string `json:"filename,omitempty"`
		Animated bool   `json:"animated,omitempty"` // used with stickers true if animated
	}

	Media struct {
		ID       string `json:"id,omitempty"`
		Link     string `json:"link,omitempty"`
		Caption  string `json:"caption,omitempty"`
		Filename string `json:"filename,omitempty"`
		Provider string `json:"provider,omitempty"`
	}

	Document struct {
		ID       string `json:"id,omitempty"`
		Link     string `json:"link,omitempty"`
		Caption  string `json:"caption,omitempty"`
		Filename string `json:"filename,omitempty"`
	}

	Video struct {
		ID      string `json:"id,omitempty"`
		Link    string `json:"link,omitempty"`
		Caption string `json:"caption,omitempty"`
	}

	Image struct {
		ID       string `json:"id,omitempty"`
		Link     string `json:"link,omitempty"`
		Caption  string `json:"caption,omitempty"`
		Filename string `json:"filename,omitempty"`
	}

	Sticker struct {
		ID string `json:"id,omitempty"`
	}

	Audio struct {
		ID string `json:"id,omitempty"`
	}

	TypingIndicator struct {
		Type string `json:"type"`
	}
)
