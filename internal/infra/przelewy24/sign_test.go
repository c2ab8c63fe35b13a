//go:build unit

package przelewy24

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistrationSign(t *testing.T) {
	t.Run("matches the canonical JSON digest", func(t *testing.T) {
		// The gateway re-derives the digest over this exact byte sequence, so
		// the canonical form is pinned here, not just the determinism.
		canonical := `{"sessionId":"masterclass_1_1000","merchantId":64195,"amount":25000,"currency":"PLN","crc":"d27c3f1b0e14a8c2"}`
		sum := sha512.Sum384([]byte(canonical))

		got := RegistrationSign("masterclass_1_1000", 64195, 25000, "PLN", "d27c3f1b0e14a8c2")
		assert.Equal(t, hex.EncodeToString(sum[:]), got)
	})

	t.Run("deterministic", func(t *testing.T) {
		first := RegistrationSign("s", 1, 100, "PLN", "crc")
		second := RegistrationSign("s", 1, 100, "PLN", "crc")
		assert.Equal(t, first, second)
	})

	t.Run("any field change flips the signature", func(t *testing.T) {
		base := RegistrationSign("s", 1, 100, "PLN", "crc")

		assert.NotEqual(t, base, RegistrationSign("s2", 1, 100, "PLN", "crc"))
		assert.NotEqual(t, base, RegistrationSign("s", 2, 100, "PLN", "crc"))
		assert.NotEqual(t, base, RegistrationSign("s", 1, 101, "PLN", "crc"))
		assert.NotEqual(t, base, RegistrationSign("s", 1, 100, "EUR", "crc"))
		assert.NotEqual(t, base, RegistrationSign("s", 1, 100, "PLN", "crc2"))
	})
}

func TestVerifySign(t *testing.T) {
	t.Run("matches the canonical JSON digest", func(t *testing.T) {
		canonical := `{"sessionId":"masterclass_1_1000","orderId":987654,"amount":25000,"currency":"PLN","crc":"d27c3f1b0e14a8c2"}`
		sum := sha512.Sum384([]byte(canonical))

		got := VerifySign("masterclass_1_1000", 987654, 25000, "PLN", "d27c3f1b0e14a8c2")
		assert.Equal(t, hex.EncodeToString(sum[:]), got)
	})

	t.Run("uses orderId, not merchantId", func(t *testing.T) {
		reg := RegistrationSign("s", 7, 100, "PLN", "crc")
		ver := VerifySign("s", 7, 100, "PLN", "crc")
		assert.NotEqual(t, reg, ver)
	})
}

func TestSignPayloadEncoding(t *testing.T) {
	// 96 hex characters of SHA-384.
	sign := RegistrationSign("s", 1, 100, "PLN", "crc")
	assert.Len(t, sign, 96)
	_, err := hex.DecodeString(sign)
	assert.NoError(t, err)
}
