package mapdata

import "sync"

// Zone is a named, colored region: either a polygon (Coordinates ring of
// [lat,lng] pairs) or a circle (Center + Radius). Duplicate names are
// permitted.
type Zone struct {
	Name        string      `json:"name"`
	Color       string      `json:"color"`
	Coordinates [][]float64 `json:"coordinates,omitempty"`
	Center      []float64   `json:"center,omitempty"`
	Radius      float64     `json:"radius,omitempty"`
}

// Place is a point of interest with a category label and icon URL.
type Place struct {
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Coordinates []float64 `json:"coordinates"`
	Icon        string    `json:"icon"`
}

// Point is a live marker keyed semantically by label, not by id.
type Point struct {
	ID       int       `json:"id"`
	Position []float64 `json:"position"`
	Label    string    `json:"label"`
}

// Document is the whole map data payload served to clients.
type Document struct {
	Zones  []Zone  `json:"zones"`
	Places []Place `json:"places"`
	Points []Point `json:"points"`
}

// appendedPointID is stamped on every point appended through UpsertPoint.
// The upstream data contract keys points by label; ids are carried but not
// unique, and consumers must not rely on them.
const appendedPointID = 1

// Store holds the process-global map document. The document is volatile: it
// is seeded at construction and resets on restart. All access goes through
// the mutex-guarded methods; snapshots are deep copies so callers can never
// alias internal state.
type Store struct {
	mu  sync.RWMutex
	doc Document
}

// NewStore returns a store seeded with the default document.
func NewStore() *Store {
	return &Store{doc: defaultDocument()}
}

// Snapshot returns a deep copy of the current document.
func (s *Store) Snapshot() Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyDocument(s.doc)
}

// Replace swaps in a caller-supplied document wholesale. No validation is
// applied beyond the document shape; any caller reaching this can erase all
// zones, places, and points.
func (s *Store) Replace(doc Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = copyDocument(doc)
}

// UpsertPoint moves the first point whose label matches, keeping its id and
// label untouched. Unknown labels append a new point stamped with
// appendedPointID. Returns a copy of the full points list and whether an
// existing point was updated.
func (s *Store) UpsertPoint(label string, lat, lng float64) ([]Point, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := false
	for i := range s.doc.Points {
		if s.doc.Points[i].Label == label {
			s.doc.Points[i].Position = []float64{lat, lng}
			updated = true
			break
		}
	}
	if !updated {
		s.doc.Points = append(s.doc.Points, Point{
			ID:       appendedPointID,
			Position: []float64{lat, lng},
			Label:    label,
		})
	}
	return copyPoints(s.doc.Points), updated
}

// SetPlaceIcon replaces the icon URL of the first place with the given name.
// Reports whether a place matched.
func (s *Store) SetPlaceIcon(name, iconURL string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Places {
		if s.doc.Places[i].Name == name {
			s.doc.Places[i].Icon = iconURL
			return true
		}
	}
	return false
}

// copyDocument deep-copies doc, preserving nil slices so a replaced document
// reads back structurally identical.
func copyDocument(doc Document) Document {
	out := Document{Points: copyPoints(doc.Points)}
	if doc.Zones != nil {
		out.Zones = make([]Zone, len(doc.Zones))
	}
	if doc.Places != nil {
		out.Places = make([]Place, len(doc.Places))
	}
	for i, z := range doc.Zones {
		cz := z
		if z.Coordinates != nil {
			cz.Coordinates = make([][]float64, len(z.Coordinates))
			for j, pair := range z.Coordinates {
				cz.Coordinates[j] = append([]float64(nil), pair...)
			}
		}
		if z.Center != nil {
			cz.Center = append([]float64(nil), z.Center...)
		}
		out.Zones[i] = cz
	}
	for i, p := range doc.Places {
		cp := p
		cp.Coordinates = append([]float64(nil), p.Coordinates...)
		out.Places[i] = cp
	}
	return out
}

func copyPoints(points []Point) []Point {
	if points == nil {
		return nil
	}
	out := make([]Point, len(points))
	for i, p := range points {
		cp := p
		cp.Position = append([]float64(nil), p.Position...)
		out[i] = cp
	}
	return out
}
