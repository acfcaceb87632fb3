// Package kml owns the placemark collection, its ordering and
// minimum-distance filtering, and the KML document serialization.
package kml

import (
	"sort"

	"github.com/laroch02/photokml/internal/geo"

	"github.com/rs/zerolog/log"
)

// Placemark is a single exportable geographic point.
type Placemark struct {
	Name      string  // source identifier, usually the originating file path; may be empty
	Folder    string  // grouping key for the output Folder element
	Latitude  float64 // signed decimal degrees
	Longitude float64 // signed decimal degrees
	Export    bool    // set by Filter; undefined before filtering runs
}

// Store owns the ordered placemark collection for one export cycle. Before
// Reorder runs, insertion order is the only guarantee. Duplicate records are
// legal input.
type Store struct {
	marks []Placemark
}

// NewStore returns an empty store. Every store owns its own collection;
// nothing is shared between instances.
func NewStore() *Store {
	return &Store{marks: []Placemark{}}
}

// Add appends a placemark in insertion order. Reorder must run again before
// the next filter or export.
func (s *Store) Add(lat, lon float64, name, folder string) {
	s.marks = append(s.marks, Placemark{
		Name:      name,
		Folder:    folder,
		Latitude:  lat,
		Longitude: lon,
	})
}

// Len returns the number of placemarks in the store.
func (s *Store) Len() int {
	return len(s.marks)
}

// Placemarks exposes the records in their current order. The slice is the
// store's own; callers must not retain it across mutations.
func (s *Store) Placemarks() []Placemark {
	return s.marks
}

// Reorder stably sorts the store by (folder ascending, latitude ascending)
// so that records sharing a folder are contiguous and the greedy filter
// walks a deterministic order. Records with equal keys keep their previous
// relative order.
func (s *Store) Reorder() {
	sort.SliceStable(s.marks, func(i, j int) bool {
		if s.marks[i].Folder != s.marks[j].Folder {
			return s.marks[i].Folder < s.marks[j].Folder
		}
		return s.marks[i].Latitude < s.marks[j].Latitude
	})
}

// Filter assigns the Export flag on every record with a greedy single pass
// in the current order: a record strictly closer than minDistanceMeters to
// any already-kept record is suppressed, otherwise it joins the kept list.
// The kept list spans the whole store, not one folder. Returns the number
// of records flagged for export.
//
// The comparison is strict less-than, so a zero threshold keeps everything
// (exact duplicates included) and a record exactly at the threshold
// distance survives. The result is a function of the current order and the
// threshold only, so re-running with the same inputs is idempotent. Each
// decision depends on all prior decisions; this pass must stay sequential.
func (s *Store) Filter(minDistanceMeters float64) int {
	kept := make([]int, 0, len(s.marks))

	for i := range s.marks {
		s.marks[i].Export = true
		for _, k := range kept {
			d := geo.DistanceMeters(
				s.marks[i].Latitude, s.marks[i].Longitude,
				s.marks[k].Latitude, s.marks[k].Longitude)
			if d < minDistanceMeters {
				s.marks[i].Export = false
				break
			}
		}
		if s.marks[i].Export {
			kept = append(kept, i)
		}
	}

	log.Debug().
		Float64("min_distance_m", minDistanceMeters).
		Int("kept", len(kept)).
		Int("total", len(s.marks)).
		Msg("Placemarks filtered")

	return len(kept)
}
