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

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"github.com/kanzihq/whatsapp-go"
)

const ErrMediaIntegrity = whatsapp.Error("crypto: flow media integrity check failed")

// mediaHMACTrailerSize is how many bytes of the HMAC-SHA256 digest the
// provider appends to the encrypted CDN file.
const mediaHMACTrailerSize = 10

// EncryptedMediaMetadata is the encryption_metadata object attached to a
// file a user uploaded inside a flow. All fields are base64 strings on the
// wire.
type EncryptedMediaMetadata struct {
	EncryptionKey string `json:"encryption_key"`
	HMACKey       string `json:"hmac_key"`
	IV            string `json:"iv"`
	PlaintextHash string `json:"plaintext_hash"`
	EncryptedHash string `json:"encrypted_hash"`
}

// DecryptFlowMedia implements the scheme used when a flow carries an
// uploaded file, distinct from the data-exchange envelope crypto: the CDN
// file is ciphertext followed by a 10-byte HMAC-SHA256 trailer keyed by
// hmac_key over iv‖ciphertext; the payload itself is AES-256-CBC with
// PKCS#7 padding under encryption_key. Three checks run before the
// plaintext is trusted: SHA-256 of the full CDN file against
// encrypted_hash, the HMAC trailer, and SHA-256 of the plaintext against
// plaintext_hash. Any mismatch is reported as ErrMediaIntegrity; this
// function never returns a partially trusted plaintext.
func DecryptFlowMedia(cdnFile []byte, meta EncryptedMediaMetadata) ([]byte, error) {
	encryptionKey, err := base64.StdEncoding.DecodeString(meta.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("%w: decode encryption_key: %w", ErrMediaIntegrity, err)
	}
	hmacKey, err := base64.StdEncoding.DecodeString(meta.HMACKey)
	if err != nil {
		return nil, fmt.Errorf("%w: decode hmac_key: %w", ErrMediaIntegrity, err)
	}
	iv, err := base64.StdEncoding.DecodeString(meta.IV)
	if err != nil {
		return nil, fmt.Errorf("%w: decode iv: %w", ErrMediaIntegrity, err)
	}
	encryptedHash, err := base64.StdEncoding.DecodeString(meta.EncryptedHash)
	if err != nil {
		return nil, fmt.Errorf("%w: decode encrypted_hash: %w", ErrMediaIntegrity, err)
	}
	plaintextHash, err := base64.StdEncoding.DecodeString(meta.PlaintextHash)
	if err != nil {
		return nil, fmt.Errorf("%w: decode plaintext_hash: %w", ErrMediaIntegrity, err)
	}

	if len(encryptionKey) != 32 {
		return nil, fmt.Errorf("%w: encryption key must be 32 bytes, got %d", ErrMediaIntegrity, len(encryptionKey))
	}
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("%w: iv must be %d bytes, got %d", ErrMediaIntegrity, aes.BlockSize, len(iv))
	}
	if len(cdnFile) <= mediaHMACTrailerSize {
		return nil, fmt.Errorf("%w: cdn file too short", ErrMediaIntegrity)
	}

	fileSum := sha256.Sum256(cdnFile)
	if subtle.ConstantTimeCompare(fileSum[:], encryptedHash) != 1 {
		return nil, fmt.Errorf("%w: encrypted_hash mismatch", ErrMediaIntegrity)
	}

	ciphertext := cdnFile[:len(cdnFile)-mediaHMACTrailerSize]
	trailer := cdnFile[len(cdnFile)-mediaHMACTrailerSize:]

	mac := hmac.New(sha256.New, hmacKey)
	mac.Write(iv)
	mac.Write(ciphertext)
	if subtle.ConstantTimeCompare(mac.Sum(nil)[:mediaHMACTrailerSize], trailer) != 1 {
		return nil, fmt.Errorf("%w: hmac mismatch", ErrMediaIntegrity)
	}

	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMediaIntegrity, err)
	}
	if len(ciphertext)%block.BlockSize() != 0 {
		return nil, fmt.Errorf("%w: ciphertext not block-aligned", ErrMediaIntegrity)
	}

	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ciphertext)

	plain, err = unpadPKCS7(plain)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMediaIntegrity, err)
	}

	plainSum := sha256.Sum256(plain)
	if subtle.ConstantTimeCompare(plainSum[:], plaintextHash) != 1 {
		return nil, fmt.Errorf("%w: plaintext_hash mismatch", ErrMediaIntegrity)
	}

	return plain, nil
}
