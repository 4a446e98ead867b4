package routelink

const (
	// DefaultMinHistoryLength is the length of the feature sequence handed
	// to the speed predictor
	DefaultMinHistoryLength = 5

	// defaultSpeedBand is the mid-range band used when no observation is
	// available at all
	defaultSpeedBand = 3

	maxSpeedBand = 8
)

// SpeedBandObservation is a per-link snapshot from the live speed feed. Band
// is the discrete 0-8 value; negative means the feed carried no band. Speeds
// are km/h; negative means absent.
type SpeedBandObservation struct {
	Band     int
	MinSpeed float64
	MaxSpeed float64
	RoadName string
}

// bandValue derives the discrete band: directly when present, otherwise
// inferred from the midpoint of min/max speed.
func (obs SpeedBandObservation) bandValue() (int, bool) {
	if obs.Band >= 0 {
		return obs.Band, true
	}
	if obs.MinSpeed >= 0 && obs.MaxSpeed >= 0 {
		return bandFromSpeed((obs.MinSpeed + obs.MaxSpeed) / 2.0), true
	}
	return 0, false
}

// bandFromSpeed buckets a km/h speed by fixed 10 km/h steps:
// <10 -> 0, <20 -> 1, ..., >=80 -> 8
func bandFromSpeed(kmh float64) int {
	if kmh < 0 {
		return 0
	}
	band := int(kmh / 10.0)
	if band > maxSpeedBand {
		return maxSpeedBand
	}
	return band
}

// BuildSpeedHistory assembles the fixed-length ordered band sequence for the
// predictor. Candidate links are walked in fixed priority: target's inbound
// neighbors, current link, target link, next links in route order, target's
// outbound neighbors; duplicates keep their first occurrence. A band is
// appended only when it differs from the immediately preceding one, so the
// sequence stays informative rather than flat. Short sequences are padded by
// repeating the last value; with no observations at all the whole sequence
// defaults to the mid-range band.
func BuildSpeedHistory(target, current *RouteLinkNode, nextLinks []*RouteLinkNode, observations map[LinkID]SpeedBandObservation, minLength int) []int {
	if minLength <= 0 {
		minLength = DefaultMinHistoryLength
	}

	candidates := make([]LinkID, 0, len(target.InboundIDs())+len(target.OutboundIDs())+len(nextLinks)+2)
	seen := make(map[LinkID]struct{})
	appendID := func(id LinkID) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		candidates = append(candidates, id)
	}

	for _, id := range target.InboundIDs() {
		appendID(id)
	}
	appendID(current.ID())
	appendID(target.ID())
	for _, node := range nextLinks {
		appendID(node.ID())
	}
	for _, id := range target.OutboundIDs() {
		appendID(id)
	}

	history := make([]int, 0, minLength)
	for _, id := range candidates {
		if len(history) == minLength {
			break
		}
		obs, ok := observations[id]
		if !ok {
			continue
		}
		band, ok := obs.bandValue()
		if !ok {
			continue
		}
		if len(history) > 0 && history[len(history)-1] == band {
			continue
		}
		history = append(history, band)
	}

	if len(history) == 0 {
		for i := 0; i < minLength; i++ {
			history = append(history, defaultSpeedBand)
		}
		return history
	}
	for len(history) < minLength {
		history = append(history, history[len(history)-1])
	}
	return history
}

// SpeedHistory builds the predictor feature sequence from this window's
// links and given observations
func (window *AnalysisWindow) SpeedHistory(observations map[LinkID]SpeedBandObservation, minLength int) []int {
	return BuildSpeedHistory(window.Target(), window.Current(), window.NextLinks(), observations, minLength)
}
