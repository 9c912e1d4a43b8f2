// Package zpl carries the demo shipping label used by the entry points and
// the text-to-bytes step that targets a printer code page. Label content is
// never parsed or validated here; it travels through the dispatchers as
// opaque bytes.
package zpl

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// SampleLabel is a complete shipping label used to prefill forms and as the
// CLI default when no label file is given.
const SampleLabel = "^XA" +
	"^FX Top section with company logo, name and address." +
	"^CF0,60^FO50,50^GB100,100,100^FS^FO75,75^FR^GB100,100,100^FS^FO88,88^GB50,50,50^FS" +
	"^FO220,50^FDInternational Shipping, Inc.^FS" +
	"^CF0,40^FO220,100^FD1000 Shipping Lane^FS^FO220,135^FDJakarta 38102^FS^FO220,170^FDIndonesia (IDN)^FS" +
	"^FO50,250^GB700,1,3^FS" +
	"^FX Second section with recipient address and permit information." +
	"^CFA,30^FO50,300^FDDonal Gurning^FS^FO50,340^FD100 Main Street^FS^FO50,380^FDSpringfield TN 39021^FS^FO50,420^FDUnited States (USA)^FS" +
	"^CFA,15^FO600,300^GB150,150,3^FS^FO638,340^FDPermit^FS^FO638,390^FD123456^FS" +
	"^FO50,500^GB700,1,3^FS" +
	"^FX Third section with barcode." +
	"^BY5,2,270^FO175,550^BC^FD1234567890^FS" +
	"^FX Fourth section (the two boxes on the bottom)." +
	"^FO50,900^GB700,250,3^FS^FO400,900^GB1,250,3^FS" +
	"^CF0,40^FO100,960^FDShipping Ctr. X34B-1^FS^FO100,1010^FDREF1 F00B47^FS^FO100,1060^FDREF2 BL4H8^FS" +
	"^CF0,190^FO485,965^FDCA^FS" +
	"^XZ"

// LoadSample reads a label override from path, joining lines with CRLF the
// way label files are usually authored for Zebra printers. An empty path
// falls back to SampleLabel.
func LoadSample(path string) (string, error) {
	if path == "" {
		return SampleLabel, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening label file: %w", err)
	}
	defer f.Close()

	var builder strings.Builder
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		builder.WriteString(strings.TrimRight(scanner.Text(), "\r"))
		builder.WriteString("\r\n")
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading label file: %w", err)
	}
	return builder.String(), nil
}

// Charset names a code page the label text is encoded to before dispatch.
type Charset string

const (
	CharsetUTF8   Charset = "utf-8"
	CharsetCP850  Charset = "cp850"
	CharsetLatin1 Charset = "latin-1"
)

// Charsets lists the supported code pages, UTF-8 first as the default.
func Charsets() []Charset {
	return []Charset{CharsetUTF8, CharsetCP850, CharsetLatin1}
}

// Encode turns label text into the byte stream handed to a dispatcher. An
// empty charset means UTF-8 passthrough. Text that cannot be represented in
// the chosen code page is an error, not silent substitution.
func Encode(command string, charset Charset) ([]byte, error) {
	switch charset {
	case "", CharsetUTF8:
		return []byte(command), nil
	case CharsetCP850:
		return encodeWith(charmap.CodePage850, command)
	case CharsetLatin1:
		return encodeWith(charmap.ISO8859_1, command)
	default:
		return nil, fmt.Errorf("unknown charset %q", charset)
	}
}

func encodeWith(cm *charmap.Charmap, s string) ([]byte, error) {
	out, _, err := transform.Bytes(cm.NewEncoder(), []byte(s))
	if err != nil {
		return nil, fmt.Errorf("encoding to %s: %w", cm, err)
	}
	return out, nil
}
