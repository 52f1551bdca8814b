package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCRC32C(t *testing.T) {
	// Standard check value for CRC-32C.
	assert.Equal(t, uint32(0xe3069283), CRC32C([]byte("123456789")))
}

func TestCRC32CBase64(t *testing.T) {
	// 0xe3069283 big-endian.
	assert.Equal(t, "4waSgw==", CRC32CBase64([]byte("123456789")))
}
