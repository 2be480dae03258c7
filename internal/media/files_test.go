package media

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBase64StripsDataURLPrefix(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("hello"))

	data, err := DecodeBase64("data:audio/mp3;base64," + payload)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	data, err = DecodeBase64(payload)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
}

func TestDecodeBase64RejectsGarbage(t *testing.T) {
	_, err := DecodeBase64("not base64 at all!!!")
	assert.Error(t, err)
}

func TestAudioExtSniffing(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"id3", []byte{0x49, 0x44, 0x33, 0x04}, ".mp3"},
		{"ogg", []byte("OggS\x00\x02"), ".ogg"},
		{"wav", []byte("RIFF\x24\x08\x00\x00WAVE"), ".wav"},
		{"m4a", []byte("\x00\x00\x00\x20ftypM4A "), ".m4a"},
		{"webm", []byte("\x1aE\xdf\xa3\x01"), ".webm"},
		{"mp3 frame sync", []byte{0xFF, 0xFB, 0x90, 0x00}, ".mp3"},
		{"unknown", []byte{0x00, 0x01, 0x02, 0x03}, ".mp3"},
		{"too short", []byte{0x49}, ".mp3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, audioExt(tt.data))
		})
	}
}

func TestSaveAudioAndRemove(t *testing.T) {
	root := t.TempDir()
	store := NewFileStore(root)

	url, err := store.SaveAudio([]byte("OggS fake audio"), "entry-1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/audio/entry-1/"))
	assert.True(t, strings.HasSuffix(url, ".ogg"))

	onDisk := filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(url, "/")))
	_, err = os.Stat(onDisk)
	require.NoError(t, err)

	require.NoError(t, store.Remove(url))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveStaysInsideStoreRoot(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "media")
	require.NoError(t, os.MkdirAll(root, 0755))

	victim := filepath.Join(base, "victim.txt")
	require.NoError(t, os.WriteFile(victim, []byte("keep me"), 0644))

	store := NewFileStore(root)

	require.NoError(t, store.Remove("/audio/../../victim.txt"))
	_, err := os.Stat(victim)
	assert.NoError(t, err, "file outside the media root must survive")

	require.NoError(t, store.Remove("/images/../../victim.txt"))
	_, err = os.Stat(victim)
	assert.NoError(t, err)

	// A legitimate URL under the root still resolves.
	url, err := store.SaveAudio([]byte("OggS fake audio"), "entry-1")
	require.NoError(t, err)
	require.NoError(t, store.Remove(url))
}

func TestRemoveExternalURLIsNoOp(t *testing.T) {
	store := NewFileStore(t.TempDir())

	assert.NoError(t, store.Remove("https://cdn.example.com/clip.mp3"))
	assert.NoError(t, store.Remove("/audio/entry-1/never-existed.mp3"))
}

func TestSaveImageDetectsPNG(t *testing.T) {
	store := NewFileStore(t.TempDir())

	png := append([]byte{0x89}, []byte("PNG\r\n\x1a\n")...)
	url, err := store.SaveImage(png, "entry-1")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".png"))

	url, err = store.SaveImage([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0, 0, 0}, "entry-1")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".jpg"))
}
