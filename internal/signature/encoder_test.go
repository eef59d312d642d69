package signature

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPNGDataURI builds a small PNG and returns it as a base64 data URI plus
// the source image for pixel comparison.
func testPNGDataURI(t *testing.T) (string, image.Image) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 60), G: uint8(y * 60), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), img
}

func TestEncode(t *testing.T) {
	t.Run("Should round-trip pixel content", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		require.NoError(t, err)

		dataURI, src := testPNGDataURI(t)
		ref, err := Encode(dataURI, store)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(ref, "/uploads/"))
		assert.True(t, strings.HasSuffix(ref, ".png"))

		stored, err := store.Get(ref)
		require.NoError(t, err)
		decoded, err := png.Decode(bytes.NewReader(stored))
		require.NoError(t, err)

		bounds := src.Bounds()
		assert.Equal(t, bounds, decoded.Bounds())
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
				sr, sg, sb, sa := src.At(x, y).RGBA()
				dr, dg, db, da := decoded.At(x, y).RGBA()
				require.Equal(t, [4]uint32{sr, sg, sb, sa}, [4]uint32{dr, dg, db, da}, "pixel (%d,%d)", x, y)
			}
		}
	})

	t.Run("Should accept payloads without the data URI prefix", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		require.NoError(t, err)

		dataURI, _ := testPNGDataURI(t)
		bare := strings.TrimPrefix(dataURI, "data:image/png;base64,")
		ref, err := Encode(bare, store)
		require.NoError(t, err)
		assert.NotEmpty(t, ref)
	})

	t.Run("Should reject malformed base64", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		require.NoError(t, err)

		_, err = Encode("data:image/png;base64,!!!not-base64!!!", store)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "base64")
	})

	t.Run("Should reject non-PNG payloads", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		require.NoError(t, err)

		notPNG := base64.StdEncoding.EncodeToString([]byte("plain text"))
		_, err = Encode("data:image/png;base64,"+notPNG, store)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PNG")
	})
}

func TestFileStore(t *testing.T) {
	t.Run("Should generate unique references", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		require.NoError(t, err)

		ref1, err := store.Put([]byte("a"))
		require.NoError(t, err)
		ref2, err := store.Put([]byte("b"))
		require.NoError(t, err)
		assert.NotEqual(t, ref1, ref2)
	})

	t.Run("Should fail reading a missing reference", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		require.NoError(t, err)

		_, err = store.Get("/uploads/missing.png")
		assert.Error(t, err)
	})
}
