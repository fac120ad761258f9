package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageError_MessageAndUnwrap(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := NewStorageError("catalog", "add product", cause)

	assert.Equal(t, "catalog: failed to add product: disk I/O error", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrStorage)
}

func TestStorageError_MatchesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("handler: %w", NewStorageError("cart", "place order", errors.New("locked")))

	var se *StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "cart", se.Component)
	assert.Equal(t, "place order", se.Op)
	assert.ErrorIs(t, err, ErrStorage)
	assert.NotErrorIs(t, err, ErrEmptyCart)
}

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}
