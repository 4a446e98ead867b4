package routelink

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// LoadLinksJSON loads the full static link catalog from a JSON array file
func LoadLinksJSON(fname string) ([]*RoadLink, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read links file")
	}
	var links []*RoadLink
	if err := json.Unmarshal(data, &links); err != nil {
		return nil, errors.Wrap(err, "Can't parse links file")
	}
	if len(links) == 0 {
		return nil, errors.Errorf("Links file is empty at '%s'", fname)
	}
	return links, nil
}

// LinkPositionIndex maps link identifier to its 0-based position in the
// catalog. The paginated speed-band feed returns records in catalog order, so
// the position tells the caller which page holds a link's observation.
func LinkPositionIndex(links []*RoadLink) map[LinkID]int {
	index := make(map[LinkID]int, len(links))
	for position, link := range links {
		if link.ID == "" {
			continue
		}
		if _, ok := index[link.ID]; ok {
			continue
		}
		index[link.ID] = position
	}
	return index
}
