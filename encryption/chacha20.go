package encryption

import (
	"crypto/rand"
	"errors"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

var errChaChaKey = errors.New("xchacha20poly1305: key must be 32 bytes")

// ChaCha20Encryptor implements XChaCha20-Poly1305.
type ChaCha20Encryptor struct{}

func NewChaCha20Encryptor() *ChaCha20Encryptor {
	return &ChaCha20Encryptor{}
}

func (c *ChaCha20Encryptor) Name() string {
	return "xchacha20-poly1305"
}

func (c *ChaCha20Encryptor) KeySizes() []int {
	return []int{chacha20poly1305.KeySize}
}

// Encrypt returns the random 24 byte nonce followed by the sealed data.
func (c *ChaCha20Encryptor) Encrypt(key, data, additionalData []byte) ([]byte, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, errChaChaKey
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(data)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return aead.Seal(nonce, nonce, data, additionalData), nil
}

func (c *ChaCha20Encryptor) Decrypt(key, encryptedData, additionalData []byte) ([]byte, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, errChaChaKey
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}

	nonceSize := aead.NonceSize()
	if len(encryptedData) < nonceSize {
		return nil, errors.New("ciphertext too short")
	}

	nonce, ciphertext := encryptedData[:nonceSize], encryptedData[nonceSize:]
	return aead.Open(nil, nonce, ciphertext, additionalData)
}

var _ Cipher = (*ChaCha20Encryptor)(nil)
