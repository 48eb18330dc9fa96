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
	"crypto/des" //nolint:gosec // des-EDE3-CBC is what openssl still emits for encrypted PKCS#8 keys by default.
	"crypto/rsa"
	"crypto/sha1" //nolint:gosec // HMAC-SHA1 is PBKDF2's RFC 8018 default PRF, not used for anything else.
	"crypto/sha256"
	"crypto/sha512"
	"crypto/x509"
	"encoding/asn1"
	"encoding/pem"
	"fmt"
	"hash"

	"golang.org/x/crypto/pbkdf2"

	"github.com/kanzihq/whatsapp-go"
)

const (
	ErrDecodePrivateKeyPEM    = whatsapp.Error("crypto: could not decode PEM block")
	ErrUnsupportedKeyEncoding = whatsapp.Error("crypto: unsupported encrypted private key encoding")
	ErrPrivateKeyNotRSA       = whatsapp.Error("crypto: decoded private key is not an RSA key")
)

// oid values from RFC 8018 (PKCS #5 v2.0) and RFC 3565, the only algorithm
// identifiers this loader understands.
var (
	oidPBES2          = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 5, 13}
	oidPBKDF2         = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 5, 12}
	oidAES256CBC      = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 1, 42}
	oidAES128CBC      = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 1, 2}
	oidDESEDE3CBC     = asn1.ObjectIdentifier{1, 2, 840, 113549, 3, 7}
	oidHMACWithSHA1   = asn1.ObjectIdentifier{1, 2, 840, 113549, 2, 7}
	oidHMACWithSHA256 = asn1.ObjectIdentifier{1, 2, 840, 113549, 2, 9}
	oidHMACWithSHA512 = asn1.ObjectIdentifier{1, 2, 840, 113549, 2, 11}
)

// newPRFHash returns the hash constructor for a PBKDF2 PRF algorithm
// identifier, defaulting to HMAC-SHA1 (RFC 8018's default) when prf is the
// zero value, i.e. absent from the ASN.1 structure.
func newPRFHash(prf algorithmIdentifier) func() hash.Hash {
	switch {
	case prf.Algorithm.Equal(oidHMACWithSHA256):
		return sha256.New
	case prf.Algorithm.Equal(oidHMACWithSHA512):
		return sha512.New
	case prf.Algorithm.Equal(oidHMACWithSHA1), prf.Algorithm == nil:
		return sha1.New
	default:
		return sha1.New
	}
}

type encryptedPrivateKeyInfo struct {
	Algo      algorithmIdentifier
	Encrypted []byte
}

type algorithmIdentifier struct {
	Algorithm  asn1.ObjectIdentifier
	Parameters asn1.RawValue
}

type pbes2Params struct {
	KeyDerivationFunc algorithmIdentifier
	EncryptionScheme  algorithmIdentifier
}

type pbkdf2Params struct {
	Salt           []byte
	IterationCount int
	KeyLength      int `asn1:"optional"`
	PRF            algorithmIdentifier `asn1:"optional"`
}

// LoadRSAPrivateKey parses the business_private_key configured for the Flow
// data-exchange endpoint (§4.A, §6). When password is empty the PEM block
// is assumed unencrypted (PKCS#1 or PKCS#8). When non-empty, the block must
// be a PKCS#8 EncryptedPrivateKeyInfo using PBES2/PBKDF2 with an
// AES-128-CBC, AES-256-CBC or DES-EDE3-CBC cipher, the modern replacement for the legacy OpenSSL "Proc-Type:
// 4,ENCRYPTED" scheme the standard library's now-deprecated
// x509.DecryptPEMBlock used to handle.
func LoadRSAPrivateKey(pemBytes, password []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, ErrDecodePrivateKeyPEM
	}

	der := block.Bytes
	if len(password) > 0 {
		var err error
		der, err = decryptPKCS8(der, password)
		if err != nil {
			return nil, fmt.Errorf("crypto: decrypt private key: %w", err)
		}
	}

	key, err := parseRSAKey(der)
	if err != nil {
		return nil, err
	}

	return key, nil
}

func parseRSAKey(der []byte) (*rsa.PrivateKey, error) {
	if key, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("crypto: parse private key: %w", err)
	}

	rsaKey, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, ErrPrivateKeyNotRSA
	}

	return rsaKey, nil
}

func decryptPKCS8(der, password []byte) ([]byte, error) {
	var info encryptedPrivateKeyInfo
	if _, err := asn1.Unmarshal(der, &info); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedKeyEncoding, err)
	}

	if !info.Algo.Algorithm.Equal(oidPBES2) {
		return nil, fmt.Errorf("%w: algorithm %v", ErrUnsupportedKeyEncoding, info.Algo.Algorithm)
	}

	var params pbes2Params
	if _, err := asn1.Unmarshal(info.Algo.Parameters.FullBytes, &params); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedKeyEncoding, err)
	}

	if !params.KeyDerivationFunc.Algorithm.Equal(oidPBKDF2) {
		return nil, fmt.Errorf("%w: kdf %v", ErrUnsupportedKeyEncoding, params.KeyDerivationFunc.Algorithm)
	}

	var kdf pbkdf2Params
	if _, err := asn1.Unmarshal(params.KeyDerivationFunc.Parameters.FullBytes, &kdf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedKeyEncoding, err)
	}

	var keyLen int
	var newCipher func([]byte) (cipher.Block, error)
	var iv []byte

	switch {
	case params.EncryptionScheme.Algorithm.Equal(oidAES256CBC):
		keyLen = 32
		newCipher = aes.NewCipher
	case params.EncryptionScheme.Algorithm.Equal(oidAES128CBC):
		keyLen = 16
		newCipher = aes.NewCipher
	case params.EncryptionScheme.Algorithm.Equal(oidDESEDE3CBC):
		keyLen = 24
		newCipher = des.NewTripleDESCipher
	default:
		return nil, fmt.Errorf("%w: cipher %v", ErrUnsupportedKeyEncoding, params.EncryptionScheme.Algorithm)
	}

	if _, err := asn1.Unmarshal(params.EncryptionScheme.Parameters.FullBytes, &iv); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedKeyEncoding, err)
	}

	derivedKey := pbkdf2.Key(password, kdf.Salt, kdf.IterationCount, keyLen, newPRFHash(kdf.PRF))

	block, err := newCipher(derivedKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedKeyEncoding, err)
	}

	if len(info.Encrypted)%block.BlockSize() != 0 {
		return nil, fmt.Errorf("%w: ciphertext not block-aligned", ErrUnsupportedKeyEncoding)
	}

	plain := make([]byte, len(info.Encrypted))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, info.Encrypted)

	return unpadPKCS7(plain)
}

func unpadPKCS7(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty plaintext", ErrUnsupportedKeyEncoding)
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > len(data) {
		return nil, fmt.Errorf("%w: invalid padding", ErrUnsupportedKeyEncoding)
	}
	return data[:len(data)-padLen], nil
}
