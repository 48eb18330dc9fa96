package crypto_test

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1" //nolint:gosec // matches PBKDF2's RFC 8018 default PRF used by the fixture below.
	"crypto/x509"
	"encoding/asn1"
	"encoding/pem"
	"testing"

	"golang.org/x/crypto/pbkdf2"

	wacrypto "github.com/kanzihq/whatsapp-go/pkg/crypto"
)

// Mirrors the ASN.1 shapes pkg/crypto/keys.go's decryptPKCS8 parses, so this
// test can build a password-protected PKCS#8 PEM block without depending on
// any unexported type.
type (
	algorithmIdentifier struct {
		Algorithm  asn1.ObjectIdentifier
		Parameters asn1.RawValue
	}

	pbes2Params struct {
		KeyDerivationFunc algorithmIdentifier
		EncryptionScheme  algorithmIdentifier
	}

	pbkdf2Params struct {
		Salt           []byte
		IterationCount int
	}

	encryptedPrivateKeyInfo struct {
		Algo      algorithmIdentifier
		Encrypted []byte
	}
)

var (
	oidPBES2     = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 5, 13}
	oidPBKDF2    = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 5, 12}
	oidAES256CBC = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 1, 42}
)

func marshalRawValue(t *testing.T, v interface{}) asn1.RawValue {
	t.Helper()

	encoded, err := asn1.Marshal(v)
	if err != nil {
		t.Fatalf("asn1.Marshal() error = %v", err)
	}

	var raw asn1.RawValue
	if _, err := asn1.Unmarshal(encoded, &raw); err != nil {
		t.Fatalf("asn1.Unmarshal() error = %v", err)
	}

	return raw
}

// encryptedPKCS8PEM builds a password-protected PKCS#8 "ENCRYPTED PRIVATE
// KEY" PEM block using PBES2/PBKDF2 + AES-256-CBC, the scheme
// pkg/crypto/keys.go's decryptPKCS8 understands.
func encryptedPKCS8PEM(t *testing.T, key *rsa.PrivateKey, password []byte) []byte {
	t.Helper()

	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		t.Fatalf("x509.MarshalPKCS8PrivateKey() error = %v", err)
	}

	salt := make([]byte, 8)
	if _, err := rand.Read(salt); err != nil {
		t.Fatalf("rand.Read(salt) error = %v", err)
	}

	iv := make([]byte, 16)
	if _, err := rand.Read(iv); err != nil {
		t.Fatalf("rand.Read(iv) error = %v", err)
	}

	const iterations = 2048

	derivedKey := pbkdf2.Key(password, salt, iterations, 32, sha1.New)

	block, err := aes.NewCipher(derivedKey)
	if err != nil {
		t.Fatalf("aes.NewCipher() error = %v", err)
	}

	padLen := block.BlockSize() - len(der)%block.BlockSize()
	padded := append(append([]byte{}, der...), make([]byte, padLen)...)
	for i := len(der); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}

	encrypted := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(encrypted, padded)

	ivRaw := marshalRawValue(t, iv)

	info := encryptedPrivateKeyInfo{
		Algo: algorithmIdentifier{
			Algorithm: oidPBES2,
			Parameters: marshalRawValue(t, pbes2Params{
				KeyDerivationFunc: algorithmIdentifier{
					Algorithm: oidPBKDF2,
					Parameters: marshalRawValue(t, pbkdf2Params{
						Salt:           salt,
						IterationCount: iterations,
					}),
				},
				EncryptionScheme: algorithmIdentifier{
					Algorithm:  oidAES256CBC,
					Parameters: ivRaw,
				},
			}),
		},
		Encrypted: encrypted,
	}

	infoDER, err := asn1.Marshal(info)
	if err != nil {
		t.Fatalf("asn1.Marshal(info) error = %v", err)
	}

	return pem.EncodeToMemory(&pem.Block{Type: "ENCRYPTED PRIVATE KEY", Bytes: infoDER})
}

func TestLoadRSAPrivateKey_UnencryptedPKCS8(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa.GenerateKey() error = %v", err)
	}

	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		t.Fatalf("x509.MarshalPKCS8PrivateKey() error = %v", err)
	}

	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})

	got, err := wacrypto.LoadRSAPrivateKey(pemBytes, nil)
	if err != nil {
		t.Fatalf("LoadRSAPrivateKey() error = %v", err)
	}
	if got.D.Cmp(key.D) != 0 {
		t.Fatalf("LoadRSAPrivateKey() returned a different key")
	}
}

func TestLoadRSAPrivateKey_UnencryptedPKCS1(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa.GenerateKey() error = %v", err)
	}

	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})

	got, err := wacrypto.LoadRSAPrivateKey(pemBytes, nil)
	if err != nil {
		t.Fatalf("LoadRSAPrivateKey() error = %v", err)
	}
	if got.D.Cmp(key.D) != 0 {
		t.Fatalf("LoadRSAPrivateKey() returned a different key")
	}
}

func TestLoadRSAPrivateKey_PasswordProtected(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa.GenerateKey() error = %v", err)
	}

	pemBytes := encryptedPKCS8PEM(t, key, []byte("pywa"))

	got, err := wacrypto.LoadRSAPrivateKey(pemBytes, []byte("pywa"))
	if err != nil {
		t.Fatalf("LoadRSAPrivateKey() error = %v", err)
	}
	if got.D.Cmp(key.D) != 0 {
		t.Fatalf("LoadRSAPrivateKey() returned a different key")
	}
}

func TestLoadRSAPrivateKey_WrongPasswordFails(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa.GenerateKey() error = %v", err)
	}

	pemBytes := encryptedPKCS8PEM(t, key, []byte("pywa"))

	if _, err := wacrypto.LoadRSAPrivateKey(pemBytes, []byte("wrong")); err == nil {
		t.Fatalf("LoadRSAPrivateKey() error = nil, want a decrypt/parse failure for the wrong password")
	}
}

func TestLoadRSAPrivateKey_InvalidPEM(t *testing.T) {
	if _, err := wacrypto.LoadRSAPrivateKey([]byte("not a pem block"), nil); err == nil {
		t.Fatalf("LoadRSAPrivateKey() error = nil, want ErrDecodePrivateKeyPEM")
	}
}
