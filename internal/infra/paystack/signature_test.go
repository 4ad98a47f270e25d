package paystack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	secret := "sk_test_secret"
	body := []byte(`{"event":"charge.success","data":{"reference":"ref-123"}}`)

	t.Run("accepts a signature computed with the same secret", func(t *testing.T) {
		sig := ComputeSignature(secret, body)
		assert.True(t, VerifySignature(secret, body, sig))
	})

	t.Run("rejects a signature computed with another secret", func(t *testing.T) {
		sig := ComputeSignature("sk_test_other", body)
		assert.False(t, VerifySignature(secret, body, sig))
	})

	t.Run("rejects a signature for a tampered body", func(t *testing.T) {
		sig := ComputeSignature(secret, body)
		tampered := []byte(`{"event":"charge.success","data":{"reference":"ref-999"}}`)
		assert.False(t, VerifySignature(secret, tampered, sig))
	})

	t.Run("rejects an empty signature", func(t *testing.T) {
		assert.False(t, VerifySignature(secret, body, ""))
	})

	t.Run("rejects a non-hex signature", func(t *testing.T) {
		assert.False(t, VerifySignature(secret, body, "not-hex-at-all"))
	})
}
