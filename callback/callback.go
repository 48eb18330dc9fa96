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

// Package callback implements the structured callback-data wire format: an
// opaque string that travels round-trip inside a button id, a list row id,
// or biz_opaque_callback_data, and identifies server-side intent without any
// server-side state.
//
// Unlike the reference implementation this format is modeled on, a Record's
// type tag is a string chosen by the caller rather than an index assigned by
// a package-level counter, so encoding never depends on how many record
// types have been declared so far in the process.
package callback

import (
	"fmt"
	"strings"

	"github.com/kanzihq/whatsapp-go"
)

const (
	// DefaultFieldSeparator joins a Record's type tag and its fields.
	DefaultFieldSeparator = ":"
	// DefaultRecordSeparator joins multiple encoded records packed into a
	// single callback string.
	DefaultRecordSeparator = "~"
)

const (
	ErrSeparatorInField = whatsapp.Error("callback: field contains a reserved separator")
	ErrEmptyPayload     = whatsapp.Error("callback: payload is empty")
	ErrPayloadTooLong   = whatsapp.Error("callback: encoded payload exceeds the size limit")
	ErrTypeMismatch     = whatsapp.Error("callback: type tag does not match factory")
)

// Record is a typed, serializable callback payload. Type discriminates which
// shape Fields holds; Fields are the record's values in declaration order.
type Record struct {
	Type   string
	Fields []string
}

// Codec encodes and decodes Records using configurable separators. The zero
// value is not ready for use; construct one with NewCodec.
type Codec struct {
	fieldSep  string
	recordSep string
}

// Option configures a Codec.
type Option func(*Codec)

// WithFieldSeparator overrides the separator joining a record's type tag and
// fields. It must be a single character and must never appear in a field.
func WithFieldSeparator(sep string) Option {
	return func(c *Codec) {
		if sep != "" {
			c.fieldSep = sep
		}
	}
}

// WithRecordSeparator overrides the separator joining multiple records
// packed into one callback string.
func WithRecordSeparator(sep string) Option {
	return func(c *Codec) {
		if sep != "" {
			c.recordSep = sep
		}
	}
}

// NewCodec returns a Codec using DefaultFieldSeparator and
// DefaultRecordSeparator unless overridden by opts.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{fieldSep: DefaultFieldSeparator, recordSep: DefaultRecordSeparator}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

func (c *Codec) validate(r Record) error {
	if strings.Contains(r.Type, c.fieldSep) || strings.Contains(r.Type, c.recordSep) {
		return ErrSeparatorInField
	}
	for _, f := range r.Fields {
		if strings.Contains(f, c.fieldSep) || strings.Contains(f, c.recordSep) {
			return ErrSeparatorInField
		}
	}
	return nil
}

// Encode serializes a single Record as "<type><sep><field><sep><field>...".
func (c *Codec) Encode(r Record) (string, error) {
	if err := c.validate(r); err != nil {
		return "", err
	}
	parts := make([]string, 0, len(r.Fields)+1)
	parts = append(parts, r.Type)
	parts = append(parts, r.Fields...)
	return strings.Join(parts, c.fieldSep), nil
}

// EncodeWithLimit is Encode plus a check that the result fits limit bytes,
// the platform constraint on the field the string is ultimately destined
// for (e.g. 256 for a reply button id, 200 for a list row id).
func (c *Codec) EncodeWithLimit(r Record, limit int) (string, error) {
	s, err := c.Encode(r)
	if err != nil {
		return "", err
	}
	if len(s) > limit {
		return "", fmt.Errorf("%w: %d bytes > %d", ErrPayloadTooLong, len(s), limit)
	}
	return s, nil
}

// Decode parses a single encoded Record. Decode(Encode(x)) == x for any
// Record whose fields contain neither separator.
func (c *Codec) Decode(s string) (Record, error) {
	if s == "" {
		return Record{}, ErrEmptyPayload
	}
	parts := strings.Split(s, c.fieldSep)
	return Record{Type: parts[0], Fields: parts[1:]}, nil
}

// EncodeAll packs multiple records into one callback string, each encoded
// independently and joined by the record separator.
func (c *Codec) EncodeAll(records ...Record) (string, error) {
	encoded := make([]string, len(records))
	for i, r := range records {
		s, err := c.Encode(r)
		if err != nil {
			return "", err
		}
		encoded[i] = s
	}
	return strings.Join(encoded, c.recordSep), nil
}

// DecodeAll is the inverse of EncodeAll.
func (c *Codec) DecodeAll(s string) ([]Record, error) {
	if s == "" {
		return nil, ErrEmptyPayload
	}
	parts := strings.Split(s, c.recordSep)
	records := make([]Record, len(parts))
	for i, p := range parts {
		r, err := c.Decode(p)
		if err != nil {
			return nil, err
		}
		records[i] = r
	}
	return records, nil
}

// Factory turns a decoded Record into a caller-defined value. It is what a
// handler registry binds to recover typed callback data out of an update's
// opaque data/tracker string.
type Factory func(Record) (any, error)

// TypedFactory wraps build so it only runs for records whose Type equals
// typeTag; otherwise it reports ErrTypeMismatch. A handler registry uses
// this to derive the "reject updates whose type tag does not match" filter
// for a bound factory automatically.
func TypedFactory(typeTag string, build func(Record) (any, error)) Factory {
	return func(r Record) (any, error) {
		if r.Type != typeTag {
			return nil, ErrTypeMismatch
		}
		return build(r)
	}
}

// Matches reports whether s, once decoded, carries the given type tag. It is
// the filter a bound Factory contributes ahead of a handler's own filters.
func (c *Codec) Matches(s, typeTag string) bool {
	r, err := c.Decode(s)
	if err != nil {
		return false
	}
	return r.Type == typeTag
}
