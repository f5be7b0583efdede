package parser

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// newXMLDecoder returns a decoder over already-decoded text. Any declared
// charset is ignored since the content is a Go string at this point.
func newXMLDecoder(content string) *xml.Decoder {
	d := xml.NewDecoder(strings.NewReader(content))
	d.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	return d
}

// walkElements calls fn for every start element named local, in document order.
// fn may consume the element with DecodeElement.
func walkElements(content, local string, fn func(d *xml.Decoder, se xml.StartElement) error) error {
	d := newXMLDecoder(content)
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to decode xml: %w", err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != local {
			continue
		}
		if err := fn(d, se); err != nil {
			return fmt.Errorf("failed to decode <%s>: %w", local, err)
		}
	}
}

func attr(se xml.StartElement, local string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// parseNumber reads a finite decimal value, ignoring surrounding whitespace
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
