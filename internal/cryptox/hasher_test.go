package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256Hasher_KnownDigest(t *testing.T) {
	h := SHA256Hasher{}

	// sha256("password123")
	assert.Equal(t, "ef92b778bafe771e89245b89ecbc08a44a4e166c06659911881f383d4473e94f", h.Hash("password123"))
	assert.Len(t, h.Hash(""), 64)
}

func TestSHA256Hasher_Deterministic(t *testing.T) {
	h := SHA256Hasher{}
	assert.Equal(t, h.Hash("secret"), h.Hash("secret"))
	assert.NotEqual(t, h.Hash("secret"), h.Hash("Secret"))
}

func TestArgon2Hasher_DependsOnPepper(t *testing.T) {
	a := NewArgon2Hasher("pepper-a")
	b := NewArgon2Hasher("pepper-b")

	d1 := a.Hash("secret")
	assert.Len(t, d1, 64)
	assert.Equal(t, d1, a.Hash("secret"))
	assert.NotEqual(t, d1, b.Hash("secret"))
	assert.NotEqual(t, d1, SHA256Hasher{}.Hash("secret"))
}

func TestNewHasher(t *testing.T) {
	h, err := NewHasher("", "")
	require.NoError(t, err)
	assert.IsType(t, SHA256Hasher{}, h)

	h, err = NewHasher(AlgorithmSHA256, "ignored")
	require.NoError(t, err)
	assert.IsType(t, SHA256Hasher{}, h)

	h, err = NewHasher(AlgorithmArgon2, "pepper")
	require.NoError(t, err)
	assert.IsType(t, &Argon2Hasher{}, h)

	_, err = NewHasher(AlgorithmArgon2, "")
	require.Error(t, err)

	_, err = NewHasher("md5", "")
	require.Error(t, err)
}
