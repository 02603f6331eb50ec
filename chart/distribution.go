package chart

import (
	"github.com/lunarium-dev/ganzhi/cycle"
	"github.com/lunarium-dev/ganzhi/pillar"
)

// Element weights per qi position. Visible stems always count 1.0;
// hidden stems descend by position, any position past the table keeps
// the residual weight. The tiers are conventional and debated among
// practitioners, which is why they live here as data.
const visibleWeight = 1.0

var hiddenWeights = [...]float64{0.7, 0.5, 0.3}

// DistributionOptions configures the element tally.
type DistributionOptions struct {
	// IncludeHidden adds the weighted hidden-stem contribution.
	IncludeHidden bool
}

// DefaultDistributionOptions includes hidden stems.
func DefaultDistributionOptions() DistributionOptions {
	return DistributionOptions{IncludeHidden: true}
}

// Distribution tallies weighted elemental presence across the pillar
// set. Every element maps to a non-negative accumulator; elements with
// no presence stay at zero. opts may be nil for the defaults.
func Distribution(pillars []pillar.Pillar, opts *DistributionOptions) map[cycle.Element]float64 {
	o := DefaultDistributionOptions()
	if opts != nil {
		o = *opts
	}

	dist := make(map[cycle.Element]float64, len(cycle.Elements))
	for _, el := range cycle.Elements {
		dist[el] = 0
	}

	for _, p := range pillars {
		dist[p.Stem.Element] += visibleWeight
		if !o.IncludeHidden {
			continue
		}
		for i, h := range p.Branch.Hidden {
			w := hiddenWeights[len(hiddenWeights)-1]
			if i < len(hiddenWeights) {
				w = hiddenWeights[i]
			}
			dist[h.Element] += w
		}
	}
	return dist
}
