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

package webhooks

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// A real signed notification: the body signed with HMAC-SHA256 under
// signedBodySecret (long since reset) yields exactly signedBodyHeader.
const (
	signedBody       = `{"object":"whatsapp_business_account","entry":[{"id":"264937493375603","changes":[{"value":{"messaging_product":"whatsapp","metadata":{"display_phone_number":"15550953877","phone_number_id":"277321005464405"},"contacts":[{"profile":{"name":"PyWa Tests"},"wa_id":"972544401243"}],"messages":[{"from":"972544401243","id":"wamid.HBgMOTcyNTQ0NDAxMjQzFQIAEhggM0RFQTNCMEEwRTY3QzUwODYzMDc4NjQ4QzM4ODAxM0YA","timestamp":"1730231903","text":{"body":"Hey there! I am using PyWa."},"type":"text"}]},"field":"messages"}]}]}`
	signedBodySecret = "1222e786b144d0e85b9f365372d93676"
	signedBodyHeader = "sha256=54edfa1d7259e0eb13c677cc7d73d1b5c86cfa12433d19156e058ab9251bc441"
)

func TestValidateSignature_CannedVector(t *testing.T) {
	err := ValidatePayloadSignature(http.Header{
		SignatureHeaderKey: []string{signedBodyHeader},
	}, []byte(signedBody), signedBodySecret)
	if err != nil {
		t.Fatalf("ValidatePayloadSignature() error = %v, want nil", err)
	}
}

func TestValidateSignature_SingleByteMutationInvalidates(t *testing.T) {
	mutated := []byte(signedBody)
	mutated[10] ^= 0x01

	err := ValidatePayloadSignature(http.Header{
		SignatureHeaderKey: []string{signedBodyHeader},
	}, mutated, signedBodySecret)
	if err == nil {
		t.Fatalf("ValidatePayloadSignature() should fail for a mutated body")
	}
}

func TestParseMessageType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want MessageType
	}{
		{"text", TextMessageType},
		{"image", ImageMessageType},
		{"interactive", InteractiveMessageType},
		{"reaction", ReactionMessageType},
		{"order", OrderMessageType},
		{"no-such-type", ""},
	}

	for _, tt := range cases {
		if got := ParseMessageType(tt.in); got != tt.want {
			t.Errorf("ParseMessageType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func staticConfigReader(conf *Config) ConfigReader {
	return ConfigReaderFunc(func(*http.Request) (*Config, error) {
		return conf, nil
	})
}

func countingHandler(counter *atomic.Int64) NotificationHandler {
	return NotificationHandlerFunc(func(context.Context, *Notification) *Response {
		counter.Add(1)

		return &Response{StatusCode: http.StatusOK}
	})
}

func TestListener_HandleSubscriptionVerification(t *testing.T) {
	var calls atomic.Int64
	listener := NewListener(countingHandler(&calls), staticConfigReader(&Config{Token: "topsecret"}))

	t.Run("matching token echoes challenge", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet,
			"/webhook?hub.mode=subscribe&hub.verify_token=topsecret&hub.challenge=12345", nil)
		w := httptest.NewRecorder()

		listener.HandleSubscriptionVerification(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
		if w.Body.String() != "12345" {
			t.Fatalf("body = %q, want the challenge echoed back", w.Body.String())
		}
	})

	t.Run("wrong token is forbidden", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet,
			"/webhook?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=12345", nil)
		w := httptest.NewRecorder()

		listener.HandleSubscriptionVerification(w, r)

		if w.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusForbidden)
		}
	})
}

func TestListener_HandleNotification_BadSignature(t *testing.T) {
	var calls atomic.Int64
	listener := NewListener(countingHandler(&calls), staticConfigReader(&Config{
		Validate:  true,
		AppSecret: signedBodySecret,
	}))

	r := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader([]byte(signedBody)))
	r.Header.Set(SignatureHeaderKey, "sha256=deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef")
	w := httptest.NewRecorder()

	listener.HandleNotification(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	if calls.Load() != 0 {
		t.Fatalf("handler ran %d times for a notification with a bad signature", calls.Load())
	}
}

func TestListener_HandleNotification_MalformedBody(t *testing.T) {
	var calls atomic.Int64
	listener := NewListener(countingHandler(&calls), staticConfigReader(&Config{}))

	r := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader([]byte(`{"entry": not-json`)))
	w := httptest.NewRecorder()

	listener.HandleNotification(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if calls.Load() != 0 {
		t.Fatalf("handler ran %d times for a malformed notification", calls.Load())
	}
}

func TestListener_HandleNotification_ValidSignedNotification(t *testing.T) {
	var calls atomic.Int64
	listener := NewListener(countingHandler(&calls), staticConfigReader(&Config{
		Validate:  true,
		AppSecret: signedBodySecret,
	}))

	r := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader([]byte(signedBody)))
	r.Header.Set(SignatureHeaderKey, signedBodyHeader)
	w := httptest.NewRecorder()

	listener.HandleNotification(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if calls.Load() != 1 {
		t.Fatalf("handler ran %d times, want 1", calls.Load())
	}
}

func TestListener_HandleNotification_DuplicateDropped(t *testing.T) {
	var calls atomic.Int64
	set := NewDedupeSet()

	// the handler re-posts the same signed body while the first request is
	// still being processed, the way a provider retry would land.
	var listener *Listener
	handler := NotificationHandlerFunc(func(context.Context, *Notification) *Response {
		calls.Add(1)

		retry := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader([]byte(signedBody)))
		retry.Header.Set(SignatureHeaderKey, signedBodyHeader)
		w := httptest.NewRecorder()
		listener.HandleNotification(w, retry)

		if w.Code != http.StatusOK {
			t.Errorf("retry status = %d, want %d", w.Code, http.StatusOK)
		}

		return &Response{StatusCode: http.StatusOK}
	})

	listener = NewListener(handler, staticConfigReader(&Config{})).Apply(WithDedupe(set))

	r := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader([]byte(signedBody)))
	r.Header.Set(SignatureHeaderKey, signedBodyHeader)
	w := httptest.NewRecorder()

	listener.HandleNotification(w, r)

	if calls.Load() != 1 {
		t.Fatalf("handler ran %d times, want exactly 1 for a duplicate POST", calls.Load())
	}
	if set.Seen(DedupeKey(signedBodyHeader, []byte(signedBody))) {
		t.Fatalf("dedupe key should be evicted once the response has been produced")
	}
}

func TestDedupeSet(t *testing.T) {
	set := NewDedupeSet()
	key := DedupeKey("", []byte("body"))

	if !set.Add(key) {
		t.Fatalf("first Add() = false, want true")
	}
	if set.Add(key) {
		t.Fatalf("second Add() = true, want false")
	}
	if !set.Seen(key) {
		t.Fatalf("Seen() = false after Add")
	}

	set.Remove(key)
	if set.Seen(key) {
		t.Fatalf("Seen() = true after Remove")
	}
}

func TestDedupeKey(t *testing.T) {
	if DedupeKey("sha256=abc", []byte("body")) != "sha256=abc" {
		t.Fatalf("DedupeKey should prefer the signature header")
	}

	a := DedupeKey("", []byte("body"))
	b := DedupeKey("", []byte("body"))
	if a != b || a == "" {
		t.Fatalf("structural keys should be stable and non-empty")
	}
	if DedupeKey("", []byte("other")) == a {
		t.Fatalf("different bodies should hash to different keys")
	}
}
