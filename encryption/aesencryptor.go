package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"io"
)

// AESEncryptor implements AES-GCM, the key length selects AES-128, AES-192 or AES-256.
type AESEncryptor struct{}

func NewAESEncryptor() *AESEncryptor {
	return &AESEncryptor{}
}

func (e *AESEncryptor) Name() string {
	return "aes-gcm"
}

func (e *AESEncryptor) KeySizes() []int {
	return []int{16, 24, 32}
}

func (e *AESEncryptor) aead(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Encrypt returns the random nonce followed by the sealed data.
func (e *AESEncryptor) Encrypt(key, data, additionalData []byte) ([]byte, error) {
	gcm, err := e.aead(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize(), gcm.NonceSize()+len(data)+gcm.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, data, additionalData), nil
}

func (e *AESEncryptor) Decrypt(key, encryptedData, additionalData []byte) ([]byte, error) {
	gcm, err := e.aead(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(encryptedData) < nonceSize {
		return nil, errors.New("ciphertext too short")
	}

	nonce, ciphertext := encryptedData[:nonceSize], encryptedData[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, additionalData)
}

var _ Cipher = (*AESEncryptor)(nil)
