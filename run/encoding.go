package run

import (
	"bytes"
	"fmt"
	"regexp"

	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}

	// @charset must be the very first thing in a stylesheet and use this
	// exact form to be honored.
	charsetRule = regexp.MustCompile(`^@charset "([^"]{1,40})";`)
)

// codePage describes how stylesheet bytes were turned into text. Nil enc
// means input was taken as UTF-8.
type codePage struct {
	enc    encoding.Encoding
	name   string
	source string // bom, flag, @charset, config or default
}

// decodeStylesheet converts data to UTF-8. Byte order mark wins, then forced
// encoding, then @charset rule, then configured fallback.
func decodeStylesheet(data []byte, forced, fallback encoding.Encoding, log *zap.Logger) ([]byte, codePage, error) {
	cp := selectCodePage(data, forced, fallback, log)
	if cp.enc == nil {
		return data, cp, nil
	}
	text, _, err := transform.Bytes(unicode.BOMOverride(cp.enc.NewDecoder()), data)
	if err != nil {
		return nil, cp, fmt.Errorf("unable to decode stylesheet from %s: %w", cp.name, err)
	}
	return text, cp, nil
}

func selectCodePage(data []byte, forced, fallback encoding.Encoding, log *zap.Logger) codePage {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return codePage{enc: unicode.UTF8BOM, name: "UTF-8", source: "bom"}
	case bytes.HasPrefix(data, bomUTF16BE):
		return codePage{enc: unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), name: "UTF-16BE", source: "bom"}
	case bytes.HasPrefix(data, bomUTF16LE):
		return codePage{enc: unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), name: "UTF-16LE", source: "bom"}
	}
	if forced != nil {
		return codePage{enc: forced, name: encodingName(forced), source: "flag"}
	}
	if m := charsetRule.FindSubmatch(data); m != nil {
		if enc, name := charset.Lookup(string(m[1])); enc != nil {
			return codePage{enc: enc, name: name, source: "@charset"}
		}
		log.Warn("Unknown @charset in stylesheet, ignoring", zap.ByteString("charset", m[1]))
	}
	if fallback != nil {
		return codePage{enc: fallback, name: encodingName(fallback), source: "config"}
	}
	return codePage{name: "UTF-8", source: "default"}
}

// encodeStylesheet converts text back into the code page it was read from.
func encodeStylesheet(text []byte, cp codePage) ([]byte, error) {
	if cp.enc == nil {
		return text, nil
	}
	data, _, err := transform.Bytes(cp.enc.NewEncoder(), text)
	if err != nil {
		return nil, fmt.Errorf("unable to encode stylesheet to %s: %w", cp.name, err)
	}
	return data, nil
}

// lookupEncoding resolves IANA character set name. Empty name means UTF-8
// and yields nil encoding.
func lookupEncoding(name string) (encoding.Encoding, error) {
	if len(name) == 0 {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, fmt.Errorf("character set %q is not supported", name)
	}
	return enc, nil
}

func encodingName(enc encoding.Encoding) string {
	if n, err := ianaindex.IANA.Name(enc); err == nil {
		return n
	}
	return fmt.Sprintf("%v", enc)
}
