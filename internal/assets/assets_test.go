package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func fullFS(t *testing.T) fstest.MapFS {
	data := pngBytes(t)
	fsys := fstest.MapFS{}
	for _, name := range All {
		fsys[FileName(name)] = &fstest.MapFile{Data: data}
	}
	return fsys
}

func TestLoadFSResolvesAllSprites(t *testing.T) {
	lib, err := LoadFS(fullFS(t))
	require.NoError(t, err)

	for _, name := range All {
		img := lib.Image(name)
		require.NotNil(t, img, name)
		assert.Equal(t, 4, img.Bounds().Dx())
	}
}

func TestLoadFSMissingFileIsFatal(t *testing.T) {
	fsys := fullFS(t)
	delete(fsys, FileName(EnemyElite))

	lib, err := LoadFS(fsys)
	assert.Nil(t, lib)
	assert.ErrorIs(t, err, ErrMissingAsset)
	assert.Contains(t, err.Error(), string(EnemyElite))
}

func TestLoadFSCorruptFile(t *testing.T) {
	fsys := fullFS(t)
	fsys[FileName(Player)] = &fstest.MapFile{Data: []byte("not a png")}

	_, err := LoadFS(fsys)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingAsset)
}

func TestLoadFromDirectory(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, ErrMissingAsset)
}

func TestLoadOrBuiltin(t *testing.T) {
	lib, err := LoadOrBuiltin("")
	require.NoError(t, err)
	assert.NotNil(t, lib.Image(EnemyElite))

	_, err = LoadOrBuiltin(t.TempDir())
	assert.ErrorIs(t, err, ErrMissingAsset)
}

func TestBuiltinHasEverySprite(t *testing.T) {
	lib := Builtin()
	for _, name := range All {
		img := lib.Image(name)
		require.NotNil(t, img, name)
		assert.Equal(t, builtinSize, img.Bounds().Dx())
	}

	// Player nose points up: top row center is drawn, bottom corners empty.
	player := lib.Image(Player)
	_, _, _, a := player.At(builtinSize/2, builtinSize-2).RGBA()
	assert.NotZero(t, a)
	_, _, _, a = player.At(0, 0).RGBA()
	assert.Zero(t, a)
}

func TestNilLibrary(t *testing.T) {
	var lib *Library
	assert.Nil(t, lib.Image(Player))
}
