package routelink

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// speedBandRecord mirrors one record of the live traffic speed feed. The feed
// ships speeds as strings; absent or malformed values become the -1 sentinel.
type speedBandRecord struct {
	LinkID       LinkID `json:"LinkID"`
	RoadName     string `json:"RoadName"`
	SpeedBand    *int   `json:"SpeedBand"`
	MinimumSpeed string `json:"MinimumSpeed"`
	MaximumSpeed string `json:"MaximumSpeed"`
}

func parseSpeed(value string) float64 {
	if value == "" {
		return -1
	}
	speed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return -1
	}
	return speed
}

// ParseSpeedBands converts a JSON array of speed feed records into the
// observation map keyed by link identifier. Records without a link id are
// skipped; an empty map is a valid result (history building then pads with
// the default band).
func ParseSpeedBands(data []byte) (map[LinkID]SpeedBandObservation, error) {
	var records []speedBandRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrap(err, "Can't parse speed bands")
	}

	observations := make(map[LinkID]SpeedBandObservation, len(records))
	for _, record := range records {
		if record.LinkID == "" {
			continue
		}
		obs := SpeedBandObservation{
			Band:     -1,
			MinSpeed: parseSpeed(record.MinimumSpeed),
			MaxSpeed: parseSpeed(record.MaximumSpeed),
			RoadName: record.RoadName,
		}
		if record.SpeedBand != nil {
			obs.Band = *record.SpeedBand
		}
		observations[record.LinkID] = obs
	}
	return observations, nil
}

// LoadSpeedBandsJSON reads a speed feed snapshot file into the observation map
func LoadSpeedBandsJSON(fname string) (map[LinkID]SpeedBandObservation, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read speed bands file")
	}
	return ParseSpeedBands(data)
}
