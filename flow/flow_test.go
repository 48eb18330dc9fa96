package flow_test

import (
	"bytes"
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kanzihq/whatsapp-go/flow"
)

func testPrivateKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa.GenerateKey() error = %v", err)
	}

	return key
}

func testLoader(key *rsa.PrivateKey) func(ctx context.Context) (*rsa.PrivateKey, error) {
	return func(ctx context.Context) (*rsa.PrivateKey, error) {
		return key, nil
	}
}

// encryptRequestForTest builds the {encrypted_flow_data, encrypted_aes_key,
// initial_vector} envelope the way the provider would, so DecryptRequest can
// be exercised without a live Graph round trip.
func encryptRequestForTest(t *testing.T, pub *rsa.PublicKey, plaintext []byte) (req *flow.Request, aesKey, iv []byte) {
	t.Helper()

	aesKey = make([]byte, 16)
	if _, err := rand.Read(aesKey); err != nil {
		t.Fatalf("rand.Read(aesKey) error = %v", err)
	}

	iv = make([]byte, 12)
	if _, err := rand.Read(iv); err != nil {
		t.Fatalf("rand.Read(iv) error = %v", err)
	}

	block, err := aes.NewCipher(aesKey)
	if err != nil {
		t.Fatalf("aes.NewCipher() error = %v", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		t.Fatalf("cipher.NewGCM() error = %v", err)
	}

	sealed := gcm.Seal(nil, iv, plaintext, nil)

	wrappedKey, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, aesKey, nil)
	if err != nil {
		t.Fatalf("rsa.EncryptOAEP() error = %v", err)
	}

	req = &flow.Request{
		EncryptedFlowData: base64.StdEncoding.EncodeToString(sealed),
		EncryptedAesKey:   base64.StdEncoding.EncodeToString(wrappedKey),
		InitialVector:     base64.StdEncoding.EncodeToString(iv),
	}

	return req, aesKey, iv
}

func TestDataExchangeHandlerImpl_DecryptRequest_RoundTrip(t *testing.T) {
	key := testPrivateKey(t)
	plaintext := []byte(`{"version":"3.0","action":"INIT","screen":"","data":{},"flow_token":"my_flow_token"}`)
	req, aesKey, iv := encryptRequestForTest(t, &key.PublicKey, plaintext)

	h := flow.NewDataExchangeHandler(testLoader(key), flow.DataExchangeHandlerFunc(
		func(ctx context.Context, request *flow.DataExchangeRequest) (*flow.Response, error) {
			t.Fatalf("Handle() should not be invoked by DecryptRequest directly")

			return nil, nil
		}))

	decrypted, err := h.DecryptRequest(context.Background(), req)
	if err != nil {
		t.Fatalf("DecryptRequest() error = %v", err)
	}

	if string(decrypted.FlowData) != string(plaintext) {
		t.Fatalf("DecryptRequest() flow data = %s, want %s", decrypted.FlowData, plaintext)
	}
	if !bytes.Equal(decrypted.AesKey, aesKey) {
		t.Fatalf("DecryptRequest() aes key mismatch")
	}
	if !bytes.Equal(decrypted.InitialVector, iv) {
		t.Fatalf("DecryptRequest() iv mismatch")
	}
}

// TestDataExchangeHandlerImpl_EncryptResponse_FlippedIV exercises the single
// non-obvious crypto detail in the Flows endpoint: the response is encrypted
// with the bitwise-complemented request IV, so decrypting the response with
// the un-complemented IV must fail (spec §8 invariant 7).
func TestDataExchangeHandlerImpl_EncryptResponse_FlippedIV(t *testing.T) {
	key := testPrivateKey(t)
	plaintext := []byte(`{"version":"3.0","action":"INIT","screen":"","data":{}}`)
	req, aesKey, iv := encryptRequestForTest(t, &key.PublicKey, plaintext)

	h := flow.NewDataExchangeHandler(testLoader(key), flow.DataExchangeHandlerFunc(
		func(ctx context.Context, request *flow.DataExchangeRequest) (*flow.Response, error) {
			return nil, nil
		}))

	decrypted, err := h.DecryptRequest(context.Background(), req)
	if err != nil {
		t.Fatalf("DecryptRequest() error = %v", err)
	}

	response := &flow.Response{Screen: "SUCCESS", Data: map[string]interface{}{"key": "value"}}

	encoded, err := h.EncryptResponse(response, decrypted)
	if err != nil {
		t.Fatalf("EncryptResponse() error = %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("base64 decode response = %v", err)
	}

	flippedIV := make([]byte, len(iv))
	for i, b := range iv {
		flippedIV[i] = b ^ 0xFF
	}

	block, err := aes.NewCipher(aesKey)
	if err != nil {
		t.Fatalf("aes.NewCipher() error = %v", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		t.Fatalf("cipher.NewGCM() error = %v", err)
	}

	if _, err := gcm.Open(nil, iv, raw, nil); err == nil {
		t.Fatalf("decrypting with the un-complemented IV should fail")
	}

	plain, err := gcm.Open(nil, flippedIV, raw, nil)
	if err != nil {
		t.Fatalf("decrypting with the flipped IV should succeed: %v", err)
	}

	var got flow.Response
	if err := json.Unmarshal(plain, &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if got.Screen != response.Screen {
		t.Fatalf("Screen = %q, want %q", got.Screen, response.Screen)
	}
}

func TestDataExchangeHandlerImpl_Handle_PingHealthCheck(t *testing.T) {
	key := testPrivateKey(t)
	plaintext := []byte(`{"version":"3.0","action":"ping","data":{}}`)
	req, _, _ := encryptRequestForTest(t, &key.PublicKey, plaintext)

	called := false
	h := flow.NewDataExchangeHandler(testLoader(key), flow.DataExchangeHandlerFunc(
		func(ctx context.Context, request *flow.DataExchangeRequest) (*flow.Response, error) {
			called = true

			return &flow.Response{}, nil
		})).Apply(flow.WithHealthCheckHandling(true))

	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/flow", bytes.NewReader(body))

	h.Handle(w, r)

	if called {
		t.Fatalf("bound handler should not be invoked for a ping when health-check handling is enabled")
	}
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestDataExchangeHandlerImpl_Handle_ErrorAcknowledgment(t *testing.T) {
	key := testPrivateKey(t)
	plaintext := []byte(`{"version":"3.0","action":"data_exchange","data":{"error":"boom"}}`)
	req, _, _ := encryptRequestForTest(t, &key.PublicKey, plaintext)

	called := false
	h := flow.NewDataExchangeHandler(testLoader(key), flow.DataExchangeHandlerFunc(
		func(ctx context.Context, request *flow.DataExchangeRequest) (*flow.Response, error) {
			called = true

			return &flow.Response{}, nil
		})).Apply(flow.WithErrorAcknowledgment(true))

	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/flow", bytes.NewReader(body))

	h.Handle(w, r)

	if called {
		t.Fatalf("bound handler should not be invoked when data.error is present and acknowledgment is enabled")
	}
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestDataExchangeHandlerImpl_Handle_DecryptionFailureReturns421(t *testing.T) {
	key := testPrivateKey(t)
	other := testPrivateKey(t)
	plaintext := []byte(`{"version":"3.0","action":"INIT","data":{}}`)
	req, _, _ := encryptRequestForTest(t, &other.PublicKey, plaintext)

	h := flow.NewDataExchangeHandler(testLoader(key), flow.DataExchangeHandlerFunc(
		func(ctx context.Context, request *flow.DataExchangeRequest) (*flow.Response, error) {
			t.Fatalf("bound handler should not be invoked when decryption fails")

			return nil, nil
		}))

	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/flow", bytes.NewReader(body))

	h.Handle(w, r)

	if w.Code != 421 {
		t.Fatalf("status = %d, want 421 so the provider refreshes its public key", w.Code)
	}
}

func TestDataExchangeHandlerImpl_Handle_InvokesCallback(t *testing.T) {
	key := testPrivateKey(t)
	plaintext := []byte(`{"version":"3.0","action":"data_exchange","screen":"SIGN_UP","data":{}}`)
	req, _, _ := encryptRequestForTest(t, &key.PublicKey, plaintext)

	var gotAction string
	h := flow.NewDataExchangeHandler(testLoader(key), flow.DataExchangeHandlerFunc(
		func(ctx context.Context, request *flow.DataExchangeRequest) (*flow.Response, error) {
			gotAction = request.Action

			return flow.CreateNextScreenResponse(flow.NextScreenResponseData{
				Screen: "SUCCESS",
				Data:   map[string]interface{}{},
			}), nil
		}))

	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/flow", bytes.NewReader(body))

	h.Handle(w, r)

	if gotAction != "data_exchange" {
		t.Fatalf("callback saw action = %q, want %q", gotAction, "data_exchange")
	}
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}
