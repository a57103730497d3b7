package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIdentifier(t *testing.T) {
	s, ok := NormalizeIdentifier("  makDJR186 ")
	require.True(t, ok)
	assert.Equal(t, "MAKDJR186", s)

	_, ok = NormalizeIdentifier("")
	assert.False(t, ok)

	_, ok = NormalizeIdentifier("   ")
	assert.False(t, ok)
}

func TestNormalizeIdentifierIdempotent(t *testing.T) {
	for _, raw := range []string{"abc", " Dew-DCB184 ", "MAK123"} {
		once, ok := NormalizeIdentifier(raw)
		require.True(t, ok)
		twice, ok := NormalizeIdentifier(once)
		require.True(t, ok)
		assert.Equal(t, once, twice)
	}
}

func TestFingerprintTitle(t *testing.T) {
	fp, ok := FingerprintTitle("DeWalt Drill!!")
	require.True(t, ok)
	assert.Equal(t, "dewalt drill", fp)

	other, ok := FingerprintTitle("dewalt   drill")
	require.True(t, ok)
	assert.Equal(t, fp, other)

	_, ok = FingerprintTitle("!!! ---")
	assert.False(t, ok)

	_, ok = FingerprintTitle("")
	assert.False(t, ok)
}

func TestFingerprintTitleIdempotent(t *testing.T) {
	fp, ok := FingerprintTitle("Makita DJR186Z 18V Recip Saw (Body Only)")
	require.True(t, ok)
	again, ok := FingerprintTitle(fp)
	require.True(t, ok)
	assert.Equal(t, fp, again)
}

func TestHashFingerprint(t *testing.T) {
	h1, ok := HashFingerprint("dewalt drill")
	require.True(t, ok)
	assert.Len(t, h1, 64)

	h2, ok := HashFingerprint("dewalt drill")
	require.True(t, ok)
	assert.Equal(t, h1, h2)

	h3, ok := HashFingerprint("makita drill")
	require.True(t, ok)
	assert.NotEqual(t, h1, h3)

	_, ok = HashFingerprint("")
	assert.False(t, ok)
}
