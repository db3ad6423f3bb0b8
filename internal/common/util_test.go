package common

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRandHexString(t *testing.T) {
	s, err := MakeRandHexString(16)
	require.NoError(t, err)
	assert.Len(t, s, 32)

	_, err = hex.DecodeString(s)
	assert.NoError(t, err)

	empty, err := MakeRandHexString(0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGenerateRandByteArray(t *testing.T) {
	a := GenerateRandByteArray(DeviceKeySize)
	b := GenerateRandByteArray(DeviceKeySize)

	assert.Len(t, a, DeviceKeySize)
	assert.Len(t, b, DeviceKeySize)
	if string(a) == string(b) {
		t.Logf("two random %d-byte arrays are identical; extremely unlikely", DeviceKeySize)
	}
}

func TestWipeByteArray(t *testing.T) {
	buf := []byte("password")
	WipeByteArray(buf)
	assert.Equal(t, make([]byte, 8), buf)

	WipeByteArray(nil)
}
