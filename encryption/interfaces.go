package encryption

// Cipher seals envelope bodies. additionalData is authenticated but not
// encrypted, it binds the plaintext frame header to the ciphertext.
type Cipher interface {
	Name() string
	KeySizes() []int
	Encrypt(key, data, additionalData []byte) ([]byte, error)
	Decrypt(key, encryptedData, additionalData []byte) ([]byte, error)
}

// ValidKey reports whether key has a length the cipher accepts.
func ValidKey(c Cipher, key []byte) bool {
	for _, n := range c.KeySizes() {
		if len(key) == n {
			return true
		}
	}
	return false
}
