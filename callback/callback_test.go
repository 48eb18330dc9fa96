package callback_test

import (
	"testing"

	"github.com/kanzihq/whatsapp-go/callback"
)

func TestCodec_EncodeDecodeRoundTrip(t *testing.T) {
	c := callback.NewCodec()
	r := callback.Record{Type: "user", Fields: []string{"1234", "xxx", "true"}}

	s, err := c.Encode(r)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if s != "user:1234:xxx:true" {
		t.Fatalf("Encode() = %q, want %q", s, "user:1234:xxx:true")
	}

	got, err := c.Decode(s)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Type != r.Type || len(got.Fields) != len(r.Fields) {
		t.Fatalf("Decode() = %+v, want %+v", got, r)
	}
	for i := range r.Fields {
		if got.Fields[i] != r.Fields[i] {
			t.Fatalf("Decode().Fields[%d] = %q, want %q", i, got.Fields[i], r.Fields[i])
		}
	}
}

func TestCodec_EncodeRejectsSeparatorInField(t *testing.T) {
	c := callback.NewCodec()
	_, err := c.Encode(callback.Record{Type: "user", Fields: []string{"has:colon"}})
	if err == nil {
		t.Fatalf("Encode() error = nil, want ErrSeparatorInField")
	}
}

func TestCodec_EncodeWithLimit(t *testing.T) {
	c := callback.NewCodec()
	_, err := c.EncodeWithLimit(callback.Record{Type: "user", Fields: []string{"a"}}, 3)
	if err == nil {
		t.Fatalf("EncodeWithLimit() error = nil, want ErrPayloadTooLong")
	}
}

func TestCodec_EncodeAllDecodeAll(t *testing.T) {
	c := callback.NewCodec()
	user := callback.Record{Type: "user", Fields: []string{"1234", "xxx"}}
	group := callback.Record{Type: "group", Fields: []string{"3456", "yyy"}}

	s, err := c.EncodeAll(user, group)
	if err != nil {
		t.Fatalf("EncodeAll() error = %v", err)
	}
	if s != "user:1234:xxx~group:3456:yyy" {
		t.Fatalf("EncodeAll() = %q", s)
	}

	records, err := c.DecodeAll(s)
	if err != nil {
		t.Fatalf("DecodeAll() error = %v", err)
	}
	if len(records) != 2 || records[0].Type != "user" || records[1].Type != "group" {
		t.Fatalf("DecodeAll() = %+v", records)
	}
}

func TestTypedFactory(t *testing.T) {
	c := callback.NewCodec()
	factory := callback.TypedFactory("user", func(r callback.Record) (any, error) {
		return r.Fields[0], nil
	})

	rec, err := c.Decode("user:1234")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	v, err := factory(rec)
	if err != nil {
		t.Fatalf("factory() error = %v", err)
	}
	if v != "1234" {
		t.Fatalf("factory() = %v, want 1234", v)
	}

	mismatched, err := c.Decode("group:3456")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if _, err := factory(mismatched); err == nil {
		t.Fatalf("factory() error = nil, want ErrTypeMismatch")
	}
}

func TestCodec_CustomSeparators(t *testing.T) {
	c := callback.NewCodec(callback.WithFieldSeparator("#"), callback.WithRecordSeparator("!"))
	s, err := c.Encode(callback.Record{Type: "1", Fields: []string{"1234", "xxx"}})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if s != "1#1234#xxx" {
		t.Fatalf("Encode() = %q", s)
	}
}
