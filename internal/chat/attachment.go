package chat

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
)

// Attachment references content carried by a message. The core never
// downloads it; either Inline holds the bytes or Handle lets the owning
// backend retrieve them.
type Attachment struct {
	Name     string `json:"name"`
	MIMEType string `json:"mime_type"`
	Size     int64  `json:"size"`
	Inline   []byte `json:"inline,omitempty"`
	Handle   string `json:"handle,omitempty"`
}

// HumanSize renders Size with decimal units.
func (a Attachment) HumanSize() string {
	switch {
	case a.Size > 1_000_000_000:
		return fmt.Sprintf("%dGB", a.Size/1_000_000_000)
	case a.Size > 1_000_000:
		return fmt.Sprintf("%dMB", a.Size/1_000_000)
	case a.Size > 1_000:
		return fmt.Sprintf("%dKB", a.Size/1_000)
	default:
		return fmt.Sprintf("%dB", a.Size)
	}
}

// Line is the one-line description shown in place of the content.
func (a Attachment) Line() string {
	where := "remote"
	if len(a.Inline) > 0 {
		where = "inline"
	}
	return fmt.Sprintf("+ %s %s (%s)", a.Name, a.HumanSize(), where)
}

// MaxInline bounds attachments read from disk to be sent inline.
const MaxInline = 16 << 20

// ReadAttachment loads a file as an inline attachment. The MIME type comes
// from the extension, or from the content when the extension is unknown.
func ReadAttachment(path string) (Attachment, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Attachment{}, err
	}
	if info.Size() > MaxInline {
		return Attachment{}, fmt.Errorf("%s is %d bytes, over the %d byte inline limit", path, info.Size(), MaxInline)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Attachment{}, err
	}
	typ := mime.TypeByExtension(filepath.Ext(path))
	if typ == "" {
		typ = http.DetectContentType(data)
	}
	return Attachment{
		Name:     filepath.Base(path),
		MIMEType: typ,
		Size:     int64(len(data)),
		Inline:   data,
	}, nil
}
