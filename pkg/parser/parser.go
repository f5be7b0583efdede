// Package parser turns track files (GPX, TCX, KML, CSV) into an ordered
// sequence of coordinates.
//
// Parsing is lenient: individual points that cannot be read are dropped
// without error. The only hard failures are an unknown file extension and a
// result with fewer than MinPoints coordinates.
package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kass/go-route-analyzer/pkg/models"
)

// MinPoints is the smallest number of coordinates that forms a route
const MinPoints = 2

// Format is a supported track file extension
type Format string

const (
	FormatGPX Format = "gpx"
	FormatTCX Format = "tcx"
	FormatKML Format = "kml"
	FormatCSV Format = "csv"
)

var (
	ErrUnsupportedFormat  = errors.New("unsupported format")
	ErrInsufficientPoints = errors.New("insufficient points")
)

// UnsupportedFormatError reports a file extension no parser handles
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: %q (supported: %s)",
		e.Extension, strings.Join(SupportedExtensions(), ", "))
}

func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// InsufficientPointsError reports a parse that produced fewer than MinPoints
// coordinates. Cause holds the document-level decode error, if any.
type InsufficientPointsError struct {
	Count int
	Cause error
}

func (e *InsufficientPointsError) Error() string {
	msg := fmt.Sprintf("insufficient points: need at least %d coordinates, found %d", MinPoints, e.Count)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *InsufficientPointsError) Is(target error) bool {
	return target == ErrInsufficientPoints
}

func (e *InsufficientPointsError) Unwrap() error {
	return e.Cause
}

type parseFunc func(content string) ([]models.Location, error)

var parsers = map[Format]parseFunc{
	FormatGPX: parseGPX,
	FormatTCX: parseTCX,
	FormatKML: parseKML,
	FormatCSV: parseCSV,
}

// SupportedExtensions lists the accepted file extensions
func SupportedExtensions() []string {
	return []string{string(FormatGPX), string(FormatTCX), string(FormatKML), string(FormatCSV)}
}

// ExtensionOf returns the lowercased substring after the last '.' of filename.
// A name without a dot is returned lowercased in full.
func ExtensionOf(filename string) string {
	base := filepath.Base(filename)
	if i := strings.LastIndex(base, "."); i >= 0 {
		return strings.ToLower(base[i+1:])
	}
	return strings.ToLower(base)
}

// Parse extracts the coordinates of content according to ext.
// Errors match ErrUnsupportedFormat or ErrInsufficientPoints via errors.Is.
func Parse(content, ext string) ([]models.Location, error) {
	ext = strings.ToLower(ext)
	parse, ok := parsers[Format(ext)]
	if !ok {
		return nil, &UnsupportedFormatError{Extension: ext}
	}

	points, err := parse(content)
	if err != nil {
		return nil, &InsufficientPointsError{Count: 0, Cause: err}
	}
	if len(points) < MinPoints {
		return nil, &InsufficientPointsError{Count: len(points)}
	}

	return points, nil
}
