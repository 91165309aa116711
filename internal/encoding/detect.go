package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	xenc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Charset names the encoding an upload was decoded from.
type Charset string

const (
	UTF8        Charset = "UTF-8"
	UTF16LE     Charset = "UTF-16LE"
	UTF16BE     Charset = "UTF-16BE"
	Windows1252 Charset = "windows-1252"
	ISO885915   Charset = "ISO-8859-15"
)

var decoders = map[Charset]xenc.Encoding{
	UTF16LE:     unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	UTF16BE:     unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	Windows1252: charmap.Windows1252,
	ISO885915:   charmap.ISO8859_15,
}

var boms = []struct {
	prefix  []byte
	charset Charset
}{
	{[]byte{0xEF, 0xBB, 0xBF}, UTF8},
	{[]byte{0xFF, 0xFE}, UTF16LE},
	{[]byte{0xFE, 0xFF}, UTF16BE},
}

// sniffLen is how much of an upload is inspected. Spreadsheet headers with
// accents ("Cédula", "Descripción") fall well inside it.
const sniffLen = 4096

// Decode detects the charset of an uploaded spreadsheet and returns a reader
// producing UTF-8 with any BOM removed.
//
// A BOM wins, then valid UTF-8 is passed through, then chardet is asked.
// Excel on Windows saves CSV as Windows-1252, so that is the fallback.
func Decode(r io.Reader) (io.Reader, Charset, error) {
	br := bufio.NewReaderSize(r, sniffLen)

	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF {
		return nil, "", fmt.Errorf("peek: %w", err)
	}

	for _, bom := range boms {
		if bytes.HasPrefix(head, bom.prefix) {
			_, _ = br.Discard(len(bom.prefix))
			return decode(br, bom.charset), bom.charset, nil
		}
	}

	if utf8.Valid(head) {
		return br, UTF8, nil
	}

	cs := guess(head)

	return decode(br, cs), cs, nil
}

func guess(head []byte) Charset {
	result, err := chardet.NewTextDetector().DetectBest(head)
	if err != nil {
		return Windows1252
	}

	switch result.Charset {
	case "UTF-8":
		return UTF8
	case "ISO-8859-15":
		return ISO885915
	case "UTF-16LE":
		return UTF16LE
	case "UTF-16BE":
		return UTF16BE
	}

	// ISO-8859-1 is a subset of windows-1252 for printable text.
	return Windows1252
}

func decode(r io.Reader, cs Charset) io.Reader {
	enc, ok := decoders[cs]
	if !ok {
		return r
	}

	return transform.NewReader(r, enc.NewDecoder())
}
