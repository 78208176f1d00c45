package fs

import (
	"bufio"
	"errors"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const textDetectionSampleSize = 4096

// Encoding identifies how a datafile's bytes were written.
type Encoding int

const (
	EncodingUTF8 Encoding = iota
	EncodingUTF8BOM
	EncodingUTF16LE
	EncodingUTF16BE
	EncodingWindows1252
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8BOM:
		return "utf-8-bom"
	case EncodingUTF16LE:
		return "utf-16le"
	case EncodingUTF16BE:
		return "utf-16be"
	case EncodingWindows1252:
		return "windows-1252"
	default:
		return "utf-8"
	}
}

// TextFile is an open datafile whose reads yield UTF-8 text.
type TextFile struct {
	io.Reader
	Encoding Encoding
	file     *os.File
}

// Close releases the underlying file.
func (t *TextFile) Close() error {
	if t == nil || t.file == nil {
		return nil
	}
	err := t.file.Close()
	t.file = nil
	return err
}

// OpenText opens path for reading as text. Byte order marks select UTF-8 or
// UTF-16 decoding; content that is not valid UTF-8 is read as Windows-1252,
// the code page Windows exports fall back to.
func OpenText(path string) (*TextFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	br := bufio.NewReaderSize(f, textDetectionSampleSize)
	sample, err := br.Peek(textDetectionSampleSize)
	if err != nil && !errors.Is(err, io.EOF) {
		_ = f.Close()
		return nil, err
	}

	enc := DetectEncoding(sample)
	return &TextFile{
		Reader:   NewTextReader(br, enc),
		Encoding: enc,
		file:     f,
	}, nil
}

// NewTextReader wraps r so that it yields UTF-8 for the given encoding.
func NewTextReader(r io.Reader, enc Encoding) io.Reader {
	switch enc {
	case EncodingUTF8BOM, EncodingUTF16LE, EncodingUTF16BE:
		return transform.NewReader(r, unicode.BOMOverride(transform.Nop))
	case EncodingWindows1252:
		return transform.NewReader(r, charmap.Windows1252.NewDecoder())
	default:
		return r
	}
}

// DetectEncoding inspects the leading bytes of a file.
func DetectEncoding(sample []byte) Encoding {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return EncodingUTF8BOM
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return EncodingUTF16LE
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return EncodingUTF16BE
		}
	}
	if validUTF8Sample(sample) {
		return EncodingUTF8
	}
	return EncodingWindows1252
}

// validUTF8Sample tolerates a rune cut off by the end of a full sample.
func validUTF8Sample(sample []byte) bool {
	if utf8.Valid(sample) {
		return true
	}
	if len(sample) < textDetectionSampleSize {
		return false
	}
	for cut := 1; cut < utf8.UTFMax; cut++ {
		if utf8.Valid(sample[:len(sample)-cut]) {
			return true
		}
	}
	return false
}
