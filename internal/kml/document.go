package kml

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Namespace identifies the generated document as KML 2.2.
const Namespace = "http://www.opengis.net/kml/2.2"

// ErrEmptyStore is returned by Build when the store holds no placemarks and
// there is nothing to seed the first folder group with.
var ErrEmptyStore = errors.New("kml: store has no placemarks")

// Build renders the ordered, flagged store into a KML document tree: one
// Document holding one Folder element per contiguous run of equal folder
// labels, each carrying the Placemark elements flagged for export. A folder
// whose placemarks were all suppressed still produces an empty Folder
// element. Returns the number of Placemark elements emitted.
//
// The store must already be ordered; Build never re-sorts, and an unsorted
// store may fragment one folder into several Folder elements.
func Build(store *Store, mapName, mapDescription string) (*etree.Document, int, error) {
	if store.Len() == 0 {
		return nil, 0, ErrEmptyStore
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("kml")
	root.CreateAttr("xmlns", Namespace)

	document := root.CreateElement("Document")
	document.CreateElement("name").SetText(mapName)
	document.CreateElement("description").SetText(mapDescription)

	marks := store.Placemarks()

	folder := document.CreateElement("Folder")
	folder.CreateElement("name").SetText(marks[0].Folder)
	current := marks[0].Folder

	emitted := 0
	for _, pm := range marks {
		// The folder boundary check runs regardless of the export flag, so
		// a folder of fully suppressed placemarks still appears, empty.
		if pm.Folder != current {
			folder = document.CreateElement("Folder")
			folder.CreateElement("name").SetText(pm.Folder)
			current = pm.Folder
		}

		if !pm.Export {
			continue
		}

		el := folder.CreateElement("Placemark")
		if pm.Name != "" {
			dir, base := splitSource(pm.Name)
			el.CreateElement("name").SetText(base)
			el.CreateElement("description").SetText(dir)
		}
		point := el.CreateElement("Point")
		point.CreateElement("coordinates").SetText(formatCoordinates(pm.Longitude, pm.Latitude))
		emitted++
	}

	return doc, emitted, nil
}

// splitSource splits a source identifier into its location part and its
// label part: the last path segment becomes the placemark name, the rest
// its description.
func splitSource(name string) (dir, base string) {
	dir, base = filepath.Split(name)
	dir = strings.TrimSuffix(dir, string(filepath.Separator))
	return dir, base
}

// formatCoordinates renders "lon,lat" — longitude first, the KML
// convention — at the full precision of the stored values.
func formatCoordinates(lon, lat float64) string {
	return strconv.FormatFloat(lon, 'f', -1, 64) + "," + strconv.FormatFloat(lat, 'f', -1, 64)
}
