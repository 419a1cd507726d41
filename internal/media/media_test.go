package media_test

import (
	"bytes"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"patient-portal/internal/media"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}

func TestEncode(t *testing.T) {
	out, err := media.Encode(bytes.NewReader(pngBytes))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(out, prefix) {
		t.Fatalf("wrong prefix: %.40q", out)
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(out, prefix))
	if err != nil {
		t.Fatalf("payload not base64: %v", err)
	}
	if !bytes.Equal(decoded, pngBytes) {
		t.Error("payload does not round-trip")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestEncodeReadFailure(t *testing.T) {
	_, err := media.Encode(failingReader{})
	if !errors.Is(err, media.ErrUnreadableFile) {
		t.Fatalf("expected ErrUnreadableFile, got %v", err)
	}
}

func TestEncodeEmptyInput(t *testing.T) {
	_, err := media.Encode(bytes.NewReader(nil))
	if !errors.Is(err, media.ErrUnreadableFile) {
		t.Fatalf("expected ErrUnreadableFile, got %v", err)
	}
}

func TestEncodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.png")
	if err := os.WriteFile(path, pngBytes, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := media.EncodeFile(path)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.HasPrefix(out, "data:image/png;base64,") {
		t.Errorf("wrong prefix: %.40q", out)
	}

	if _, err := media.EncodeFile(filepath.Join(t.TempDir(), "missing.png")); !errors.Is(err, media.ErrUnreadableFile) {
		t.Errorf("expected ErrUnreadableFile for missing file, got %v", err)
	}
}
