// Package media converts uploaded images into inline data URIs so a record
// can carry its own photo without real file storage.
package media

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"
)

// ErrUnreadableFile means the underlying read failed; the operation that
// needed the encoding is aborted with nothing written.
var ErrUnreadableFile = errors.New("unreadable file")

// Encode reads r fully and returns a data URI embedding the sniffed MIME
// type and the base64 payload, usable directly as an image source.
func Encode(r io.Reader) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("%w: empty input", ErrUnreadableFile)
	}
	mime := mimetype.Detect(raw)
	return fmt.Sprintf("data:%s;base64,%s", mime.String(), base64.StdEncoding.EncodeToString(raw)), nil
}

// EncodeFile opens and encodes the image at path.
func EncodeFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	defer f.Close()
	return Encode(f)
}
