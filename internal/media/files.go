// Package media stores attachment bytes on the filesystem and hands out
// the URL paths the static file server exposes them under.
package media

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStore writes audio and image blobs under root and addresses them
// as /audio/... and /images/... URLs.
type FileStore struct {
	root string
}

// NewFileStore creates a file store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{root: dir}
}

// DecodeBase64 strips an optional data-URL prefix (e.g.
// "data:audio/mp3;base64,") and decodes the payload.
func DecodeBase64(encoded string) ([]byte, error) {
	if strings.Contains(encoded, ",") {
		parts := strings.Split(encoded, ",")
		if len(parts) > 1 {
			encoded = parts[1]
		}
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 payload: %w", err)
	}
	return data, nil
}

// audioExt detects the file extension from common audio format signatures.
func audioExt(data []byte) string {
	if len(data) < 4 {
		return ".mp3"
	}
	switch {
	case len(data) >= 3 && data[0] == 0x49 && data[1] == 0x44 && data[2] == 0x33:
		return ".mp3" // ID3 tag (MP3 with metadata)
	case len(data) >= 4 && string(data[0:4]) == "OggS":
		return ".ogg"
	case len(data) >= 12 && string(data[8:12]) == "WAVE":
		return ".wav"
	case len(data) >= 8 && string(data[4:8]) == "ftyp":
		return ".m4a" // MP4 audio
	case len(data) >= 4 && string(data[0:4]) == "\x1aE\xdf\xa3":
		return ".webm"
	case data[0] == 0xFF && (data[1]&0xE0) == 0xE0:
		return ".mp3" // MP3 frame sync
	default:
		return ".mp3"
	}
}

func (s *FileStore) write(kind, owner string, data []byte, ext string) (string, error) {
	dir := filepath.Join(s.root, kind, owner)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s directory: %w", kind, err)
	}

	filename := uuid.New().String() + ext
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s file: %w", kind, err)
	}

	return fmt.Sprintf("/%s/%s/%s", kind, owner, filename), nil
}

// SaveAudio stores audio bytes for an entry and returns the URL path the
// static server exposes them under.
func (s *FileStore) SaveAudio(data []byte, entryID string) (string, error) {
	return s.write("audio", entryID, data, audioExt(data))
}

// SaveCapture stores a finished recording that is not attached to an
// entry yet.
func (s *FileStore) SaveCapture(data []byte) (string, error) {
	return s.write("audio", "captures", data, audioExt(data))
}

// SaveImage stores image bytes for an entry.
func (s *FileStore) SaveImage(data []byte, entryID string) (string, error) {
	ext := ".jpg"
	if len(data) >= 8 && string(data[1:4]) == "PNG" {
		ext = ".png"
	}
	return s.write("images", entryID, data, ext)
}

// Remove releases the file behind a URL previously returned by this
// store. Removing an unknown or external URL is a no-op, as is any URL
// whose cleaned path would escape the store root.
func (s *FileStore) Remove(url string) error {
	trimmed := strings.TrimPrefix(url, "/")
	if !strings.HasPrefix(trimmed, "audio/") && !strings.HasPrefix(trimmed, "images/") {
		return nil
	}
	root := filepath.Clean(s.root)
	path := filepath.Join(root, filepath.FromSlash(trimmed))
	if !strings.HasPrefix(path, root+string(os.PathSeparator)) {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove media file: %w", err)
	}
	return nil
}
