// Package fs loads documents from disk for the viewer.
package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

const (
	sniffSize               = 4096
	nonPrintableLimitPct = 30

	// MaxDocumentBytes bounds what ReadText loads.
	MaxDocumentBytes int64 = 8 * 1024 * 1024
)

var (
	// ErrBinaryFile is returned by ReadText for content that is not text.
	ErrBinaryFile = errors.New("not a text file")
	// ErrFileTooLarge is returned by ReadText for files over MaxDocumentBytes.
	ErrFileTooLarge = errors.New("file too large")
)

// Encoding is the byte-order mark found at the start of a file.
type Encoding int

const (
	EncodingPlain Encoding = iota
	EncodingUTF8BOM
	EncodingUTF16LE
	EncodingUTF16BE
)

var binaryExtensions = strings.Fields(`
	.7z .a .avi .bin .bmp .class .dll .dylib .exe .gif .gz .ico .iso .jar .jpeg .jpg
	.mov .mp3 .mp4 .o .pdf .png .so .tar .tgz .wasm .webp .woff .woff2 .xz .zip`)

// ReadText loads path as UTF-8, decoding BOM-marked UTF-8 and UTF-16.
func ReadText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = f.Close()
	}()

	content, err := io.ReadAll(io.LimitReader(f, MaxDocumentBytes+1))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if int64(len(content)) > MaxDocumentBytes {
		return "", fmt.Errorf("%s: %w", path, ErrFileTooLarge)
	}
	if !IsText(path, content) {
		return "", fmt.Errorf("%s: %w", path, ErrBinaryFile)
	}
	return Decode(content), nil
}

// IsText reports whether content looks like text. Well-known binary
// extensions are rejected before sniffing.
func IsText(path string, content []byte) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, bin := range binaryExtensions {
		if ext == bin {
			return false
		}
	}
	if len(content) == 0 {
		return true
	}

	sample := content
	if len(sample) > sniffSize {
		sample = sample[:sniffSize]
	}
	if DetectEncoding(sample) != EncodingPlain {
		return true
	}
	if bytes.IndexByte(sample, 0x00) != -1 {
		return false
	}
	if utf8.Valid(sample) {
		return true
	}

	odd := 0
	for _, b := range sample {
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' && b != 0x1b {
			odd++
		}
	}
	return odd*100/len(sample) < nonPrintableLimitPct
}

// DetectEncoding inspects the byte-order mark of sample.
func DetectEncoding(sample []byte) Encoding {
	switch {
	case bytes.HasPrefix(sample, []byte{0xEF, 0xBB, 0xBF}):
		return EncodingUTF8BOM
	case bytes.HasPrefix(sample, []byte{0xFF, 0xFE}):
		return EncodingUTF16LE
	case bytes.HasPrefix(sample, []byte{0xFE, 0xFF}):
		return EncodingUTF16BE
	default:
		return EncodingPlain
	}
}

// Decode converts content to a UTF-8 string, dropping any byte-order mark.
func Decode(content []byte) string {
	switch DetectEncoding(content) {
	case EncodingUTF8BOM:
		return string(content[3:])
	case EncodingUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case EncodingUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	default:
		return string(content)
	}
}

func decodeUTF16(content []byte, endian unicode.Endianness) string {
	out, err := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder().Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(out)
}
