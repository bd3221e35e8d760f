package primitive_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rodoufu/serde/primitive"
)

func Example() {
	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		fmt.Println(k, k.IsUnsigned(), k.Expecting())
	}
	// Output:
	// KindUint8 true u8
	// KindUint16 true u16
	// KindUint32 true u32
	// KindUint64 true u64
	// KindString false a string
	// KindBytes false a byte array
}

func TestBitsAndMax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind primitive.KindEnum
		bits int
		max  uint64
		name string
	}{
		{primitive.KindUint8, 8, 255, "u8"},
		{primitive.KindUint16, 16, 65535, "u16"},
		{primitive.KindUint32, 32, 4294967295, "u32"},
		{primitive.KindUint64, 64, 18446744073709551615, "u64"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()

			assert.True(t, tt.kind.IsUnsigned())
			assert.Equal(t, tt.bits, tt.kind.Bits())
			assert.Equal(t, tt.max, tt.kind.Max())
			assert.Equal(t, tt.name, tt.kind.Expecting())
		})
	}

	assert.Panics(t, func() { primitive.KindString.Bits() })
	assert.Equal(t, "a string", primitive.KindString.Expecting())
	assert.False(t, primitive.KindBytes.IsUnsigned())
}
