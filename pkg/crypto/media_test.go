package crypto_test

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"testing"

	wacrypto "github.com/kanzihq/whatsapp-go/pkg/crypto"
)

// encryptFlowMediaForTest builds a CDN file (ciphertext plus the 10-byte
// HMAC trailer) and its encryption_metadata the way the provider does.
func encryptFlowMediaForTest(t *testing.T, plain, encryptionKey, hmacKey, iv []byte) ([]byte, wacrypto.EncryptedMediaMetadata) {
	t.Helper()

	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		t.Fatalf("aes.NewCipher() error = %v", err)
	}

	padLen := block.BlockSize() - len(plain)%block.BlockSize()
	padded := append(append([]byte{}, plain...), make([]byte, padLen)...)
	for i := len(plain); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	mac := hmac.New(sha256.New, hmacKey)
	mac.Write(iv)
	mac.Write(ciphertext)
	cdnFile := append(ciphertext, mac.Sum(nil)[:10]...)

	fileSum := sha256.Sum256(cdnFile)
	plainSum := sha256.Sum256(plain)

	return cdnFile, wacrypto.EncryptedMediaMetadata{
		EncryptionKey: base64.StdEncoding.EncodeToString(encryptionKey),
		HMACKey:       base64.StdEncoding.EncodeToString(hmacKey),
		IV:            base64.StdEncoding.EncodeToString(iv),
		PlaintextHash: base64.StdEncoding.EncodeToString(plainSum[:]),
		EncryptedHash: base64.StdEncoding.EncodeToString(fileSum[:]),
	}
}

func flowMediaFixture(t *testing.T, plain []byte) ([]byte, wacrypto.EncryptedMediaMetadata) {
	t.Helper()

	encryptionKey := make([]byte, 32)
	hmacKey := make([]byte, 32)
	iv := make([]byte, 16)
	for i := range encryptionKey {
		encryptionKey[i] = byte(i)
		hmacKey[i] = byte(255 - i)
	}
	for i := range iv {
		iv[i] = byte(i + 1)
	}

	return encryptFlowMediaForTest(t, plain, encryptionKey, hmacKey, iv)
}

func TestDecryptFlowMedia_RoundTrip(t *testing.T) {
	plain := []byte("a small uploaded flow asset")
	cdnFile, meta := flowMediaFixture(t, plain)

	got, err := wacrypto.DecryptFlowMedia(cdnFile, meta)
	if err != nil {
		t.Fatalf("DecryptFlowMedia() error = %v", err)
	}
	if string(got) != string(plain) {
		t.Fatalf("DecryptFlowMedia() = %q, want %q", got, plain)
	}
}

func TestDecryptFlowMedia_RejectsTamperedCiphertext(t *testing.T) {
	cdnFile, meta := flowMediaFixture(t, []byte("payload"))
	cdnFile[0] ^= 0x01

	_, err := wacrypto.DecryptFlowMedia(cdnFile, meta)
	if !errors.Is(err, wacrypto.ErrMediaIntegrity) {
		t.Fatalf("DecryptFlowMedia() error = %v, want ErrMediaIntegrity", err)
	}
}

func TestDecryptFlowMedia_RejectsTamperedTrailer(t *testing.T) {
	cdnFile, meta := flowMediaFixture(t, []byte("payload"))
	cdnFile[len(cdnFile)-1] ^= 0x01

	// keep encrypted_hash consistent so the failure is attributable to the
	// HMAC trailer, not the outer file hash.
	fileSum := sha256.Sum256(cdnFile)
	meta.EncryptedHash = base64.StdEncoding.EncodeToString(fileSum[:])

	_, err := wacrypto.DecryptFlowMedia(cdnFile, meta)
	if !errors.Is(err, wacrypto.ErrMediaIntegrity) {
		t.Fatalf("DecryptFlowMedia() error = %v, want ErrMediaIntegrity", err)
	}
}

func TestDecryptFlowMedia_RejectsTamperedPlaintextHash(t *testing.T) {
	cdnFile, meta := flowMediaFixture(t, []byte("payload"))
	meta.PlaintextHash = base64.StdEncoding.EncodeToString(make([]byte, 32))

	_, err := wacrypto.DecryptFlowMedia(cdnFile, meta)
	if !errors.Is(err, wacrypto.ErrMediaIntegrity) {
		t.Fatalf("DecryptFlowMedia() error = %v, want ErrMediaIntegrity", err)
	}
}

func TestDecryptFlowMedia_RejectsWrongEncryptionKey(t *testing.T) {
	cdnFile, meta := flowMediaFixture(t, []byte("payload"))
	meta.EncryptionKey = base64.StdEncoding.EncodeToString(make([]byte, 32))

	_, err := wacrypto.DecryptFlowMedia(cdnFile, meta)
	if !errors.Is(err, wacrypto.ErrMediaIntegrity) {
		t.Fatalf("DecryptFlowMedia() error = %v, want ErrMediaIntegrity", err)
	}
}

// Canned fixture: a real encrypted CDN file (a tiny JPEG a user uploaded
// inside a flow) and its encryption_metadata, with the expected plaintext.
// The keys involved are long since reset.
const (
	seedCDNFileB64 = "hGHSftflZvBUJFl2o6Oww6k+K8o31YEMd+cvYZJRzv6oPupQkTULWy+D0jNnQtTw1GOVd8aiPrM4f1vvh40sWc7p46+IBJFl/PlkS1zQjl6kiNcQMUpJMlQT4fVCUg0edN5PQEu9lURRsSgAhOXt6TDw02uw8gGIKDcl0MYzPJGWnNQquy7toUQBRN36lmVL2eQ0SBYOuGVD/hr7FC8bgZPvxcJ94dKdyt+WsFbpNvxMOYJLRf4R6oqeE3sZq2EFylcRoyNCopOVJpI1fuzFUXQW7YgNFusGJNgcncy+Y5+eC2t6L/9LGIpnKHdPOXTXzNd6YZTjhWE8jzy2GV3+dpKnVLYMRYYE+9u4spMdEqM+sQF2Ut7L37KzRdpIdstnG1rQginaFK1Mm5kDCqlw2jgRYMj+6kFlhdecDX+I2SCvyJOY5+EgWcLGyJs5m2aihERMt/yrHNN5SLXtRcndadFm/xiEzbyAkaQEZ1qFmmXYwVBmK6o9CJt+MBaWm9MTXbFaytT4KPQUArUTUgZ3WcTz5jsQVMoJ9UPmKTX379FEVyv1lMB5nd2QgRwpcn1ORZgxbUDtn3H7XuD6UjvfFs4IMZVpPXv+S10="
	seedPlainB64   = "/9j/4AAQSkZJRgABAQAAAQABAAD/2wCEAAYGBgYHBgcICAcKCwoLCg8ODAwODxYQERAREBYiFRkVFRkVIh4kHhweJB42KiYmKjY+NDI0PkxERExfWl98fKcBBgYGBgcGBwgIBwoLCgsKDw4MDA4PFhAREBEQFiIVGRUVGRUiHiQeHB4kHjYqJiYqNj40MjQ+TERETF9aX3x8p//CABEIAAEAAQMBIgACEQEDEQH/xAAnAAEBAAAAAAAAAAAAAAAAAAAABgEBAAAAAAAAAAAAAAAAAAAAAP/aAAwDAQACEAMQAAACqgf/xAAC/9oADAMBAAIAAwAAACED/8QAAv/aAAwDAQACAAMAAAAQ8//EABQRAQAAAAAAAAAAAAAAAAAAAAD/2gAIAQIBAT8Af//EABQRAQAAAAAAAAAAAAAAAAAAAAD/2gAIAQMBAT8Af//EABQQAQAAAAAAAAAAAAAAAAAAAAD/2gAIAQEAAT8Cf//EABQQAQAAAAAAAAAAAAAAAAAAAAD/2gAIAQEAAT8hf//EABQQAQAAAAAAAAAAAAAAAAAAAAD/2gAIAQEAAT8Qf//Z"
)

var seedMediaMetadata = wacrypto.EncryptedMediaMetadata{
	EncryptionKey: "202pQMDtZoAMwJwZJFVPqQOgdJRBahBmGywwSXz5tAY=",
	HMACKey:       "A/72TYylRAHTg/CdXpBtC6T6qcJ2C7Cf2qzZ/hqVASM=",
	IV:            "t1MOy02KXLbsH+NYkqkRXQ==",
	PlaintextHash: "ZvSgxwXg5fWL7v7ggGHXtMCZYTf/nVFasOdX0p6kiP4=",
	EncryptedHash: "pDhRHkyevzgkdg5ObY+MfzW5J6/ObZj/OrmAvyUeYA8=",
}

func TestDecryptFlowMedia_CannedFixture(t *testing.T) {
	cdnFile, err := base64.StdEncoding.DecodeString(seedCDNFileB64)
	if err != nil {
		t.Fatalf("base64 decode cdn file error = %v", err)
	}
	wantPlain, err := base64.StdEncoding.DecodeString(seedPlainB64)
	if err != nil {
		t.Fatalf("base64 decode plaintext error = %v", err)
	}

	got, err := wacrypto.DecryptFlowMedia(cdnFile, seedMediaMetadata)
	if err != nil {
		t.Fatalf("DecryptFlowMedia() error = %v", err)
	}
	if !bytes.Equal(got, wantPlain) {
		t.Fatalf("DecryptFlowMedia() plaintext mismatch: got %d bytes, want %d", len(got), len(wantPlain))
	}
}
