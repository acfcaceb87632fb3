// Package scanner walks image folders and extracts EXIF GPS coordinates.
package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/rwcarlsen/goexif/exif"
)

// Geotag is one geotagged image found during a scan.
type Geotag struct {
	Path string
	Lat  float64
	Lon  float64
}

// imageExtensions lists the file types inspected for GPS tags. DNG and TIFF
// share the TIFF container goexif understands.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".dng":  true,
	".tif":  true,
	".tiff": true,
}

// isCandidate reports whether a file name looks like an image worth opening.
// AppleDouble sidecar files ("._*") carry no usable EXIF and are skipped.
func isCandidate(name string) bool {
	if strings.HasPrefix(name, "._") {
		return false
	}
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

// ScanFolder recursively collects GPS coordinates from image files under
// folder. Files with unreadable EXIF or without GPS tags are skipped, not
// fatal; only a failed directory walk is an error.
func ScanFolder(folder string) ([]Geotag, error) {
	var tags []Geotag
	scanned := 0

	err := filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isCandidate(d.Name()) {
			return nil
		}

		scanned++
		lat, lon, err := readGPS(path)
		if err != nil {
			log.Debug().Err(err).Str("file", path).Msg("No GPS info in file")
			return nil
		}

		tags = append(tags, Geotag{Path: path, Lat: lat, Lon: lon})
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("folder", folder).
		Int("files_scanned", scanned).
		Int("files_with_gps", len(tags)).
		Msg("Folder scan complete")

	return tags, nil
}

// readGPS opens one image and decodes its EXIF GPS position. goexif applies
// the N/S and E/W reference signs itself.
func readGPS(path string) (lat, lon float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer func() { _ = f.Close() }()

	x, err := exif.Decode(f)
	if err != nil {
		return 0, 0, err
	}

	return x.LatLong()
}
