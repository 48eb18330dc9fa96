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
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// DedupeSet collapses provider retries: the same notification body, signed
// with the same header (or hashing to the same structural key), is
// processed at most once per key while it remains in the set. Add/test
// under the same lock discipline as the listener registry: never held
// across a handler invocation.
type DedupeSet struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewDedupeSet returns an empty DedupeSet ready for use.
func NewDedupeSet() *DedupeSet {
	return &DedupeSet{seen: make(map[string]struct{})}
}

// DedupeKey derives the key ExtractAndValidatePayload's caller should pass
// to Seen/Add/Remove: the signature header verbatim when present (it
// already uniquely identifies the body under the app secret), otherwise a
// structural SHA-256 hash of the raw body.
func DedupeKey(signatureHeader string, body []byte) string {
	if signatureHeader != "" {
		return signatureHeader
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// Seen reports whether key is currently in the set.
func (d *DedupeSet) Seen(key string) bool {
	d.mu.Lock()
	_, ok := d.seen[key]
	d.mu.Unlock()
	return ok
}

// Add inserts key, reporting false if it was already present (in which
// case the caller should skip processing).
func (d *DedupeSet) Add(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.seen[key]; ok {
		return false
	}
	d.seen[key] = struct{}{}
	return true
}

// Remove evicts key once processing for it has finished, keeping the set
// bounded to in-flight and recently-retried requests rather than growing
// for the life of the process.
func (d *DedupeSet) Remove(key string) {
	d.mu.Lock()
	delete(d.seen, key)
	d.mu.Unlock()
}
