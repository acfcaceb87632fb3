package kml

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/xml"
)

// Extension is the enforced output file extension.
const Extension = ".kml"

// Render serializes the document as UTF-8 text with its XML declaration and
// two-space indentation. If pretty printing fails, the unformatted but valid
// serialization is returned instead of failing the export.
func Render(doc *etree.Document) string {
	raw, err := doc.WriteToString()
	if err != nil {
		log.Error().Err(err).Msg("Failed to serialize KML document")
		return ""
	}

	pretty := doc.Copy()
	pretty.Indent(2)

	s, err := pretty.WriteToString()
	if err != nil {
		log.Warn().Err(err).Msg("Pretty-printing failed, falling back to unformatted output")
		return raw
	}

	return s
}

// Compact returns a minified serialization of the document, for smaller
// files on large placemark sets. Falls back to the plain serialization when
// minification fails.
func Compact(doc *etree.Document) string {
	raw, err := doc.WriteToString()
	if err != nil {
		log.Error().Err(err).Msg("Failed to serialize KML document")
		return ""
	}

	m := minify.New()
	m.AddFunc("text/xml", xml.Minify)

	out, err := m.String("text/xml", raw)
	if err != nil {
		log.Warn().Err(err).Msg("XML minification failed, keeping plain output")
		return raw
	}

	return out
}

// NormalizeExtension forces the output path to end in .kml, replacing
// whatever extension the caller supplied.
func NormalizeExtension(path string) string {
	ext := filepath.Ext(path)
	if strings.EqualFold(ext, Extension) {
		return path
	}
	return strings.TrimSuffix(path, ext) + Extension
}

// WriteFile attempts a single write of the rendered document. Failures
// (permissions, missing directory, full disk) come back as an error for the
// caller to report; nothing panics past this boundary.
func WriteFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write kml file: %w", err)
	}
	return nil
}
