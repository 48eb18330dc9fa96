package message_test

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/kanzihq/whatsapp-go/callback"
	"github.com/kanzihq/whatsapp-go/message"
)

type userData struct {
	ID    int
	Name  string
	Admin bool
}

func (u userData) record() callback.Record {
	return callback.Record{
		Type:   "user",
		Fields: []string{strconv.Itoa(u.ID), u.Name, strconv.FormatBool(u.Admin)},
	}
}

func userDataFactory() callback.Factory {
	return callback.TypedFactory("user", func(r callback.Record) (any, error) {
		id, err := strconv.Atoi(r.Fields[0])
		if err != nil {
			return nil, err
		}
		admin, err := strconv.ParseBool(r.Fields[2])
		if err != nil {
			return nil, err
		}

		return userData{ID: id, Name: r.Fields[1], Admin: admin}, nil
	})
}

// A tracker attached to a send must appear verbatim as
// biz_opaque_callback_data in the outbound payload, and the same string,
// coming back on a status update, must decode to the original value.
func TestTracker_RoundTrip(t *testing.T) {
	codec := callback.NewCodec()
	original := userData{ID: 7, Name: "a", Admin: true}

	encoded, err := codec.Encode(original.record())
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	msg, err := message.New("12345",
		message.WithTextMessage(&message.Text{Body: "hi"}),
		message.WithTracker(encoded),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var wire map[string]any
	if err := json.Unmarshal(payload, &wire); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if wire["biz_opaque_callback_data"] != encoded {
		t.Fatalf("biz_opaque_callback_data = %v, want %q", wire["biz_opaque_callback_data"], encoded)
	}

	// the provider echoes the string back on the matching status update.
	record, err := codec.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	decoded, err := userDataFactory()(record)
	if err != nil {
		t.Fatalf("factory error = %v", err)
	}
	if decoded != original {
		t.Fatalf("decoded = %+v, want %+v", decoded, original)
	}
}
