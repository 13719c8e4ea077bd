package pointer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetsAreInverses(t *testing.T) {
	for k := int8(0); k < 8; k++ {
		b := Back(k)
		assert.Equal(t, -Dx[k], Dx[b])
		assert.Equal(t, -Dy[k], Dy[b])
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, conv := range []Convention{Whitebox, Esri} {
		for k := int8(0); k < 8; k++ {
			code := conv.Encode(k)
			got, err := conv.Decode(code)
			require.NoError(t, err)
			assert.Equal(t, k, got, "%s k=%d", conv, k)
		}
		got, err := conv.Decode(conv.Encode(None))
		require.NoError(t, err)
		assert.Equal(t, None, got)
	}
}

func TestConventionMappings(t *testing.T) {
	// Whitebox codes start at the north-east diagonal, ESRI due east
	k, err := Whitebox.Decode(1.)
	require.NoError(t, err)
	assert.Equal(t, 1, Dx[k])
	assert.Equal(t, -1, Dy[k])

	k, err = Esri.Decode(1.)
	require.NoError(t, err)
	assert.Equal(t, 1, Dx[k])
	assert.Equal(t, 0, Dy[k])

	k, err = Esri.Decode(128.)
	require.NoError(t, err)
	assert.Equal(t, 1, Dx[k])
	assert.Equal(t, -1, Dy[k])
}

func TestDecodeRejectsInvalidCodes(t *testing.T) {
	for _, code := range []float64{3., 5., 12., 129., 200., -1., 1.5} {
		for _, conv := range []Convention{Whitebox, Esri} {
			_, err := conv.Decode(code)
			require.ErrorIs(t, err, ErrInvalidPointer, "code %g must be rejected, not treated as no-direction", code)
		}
	}
}
