package chart

import (
	"strings"

	"github.com/lunarium-dev/ganzhi/interact"
	"github.com/lunarium-dev/ganzhi/tengod"
)

// annualLabel tags the transit branch in detector input and output.
const annualLabel = "annual"

// AnnualOverlay computes the interaction profile of one calendar year
// against a natal chart: the annual pillar, its Ten God relative to the
// Day Master, and every interaction over the natal+annual branch set,
// both unfiltered and restricted to records the annual branch takes
// part in.
//
// Errors: ErrNilChart, pillar.ErrInvalidDate, cycle.ErrUnknownStem,
// tengod.ErrUndefinedRelation.
func (e *Engine) AnnualOverlay(c *Chart, year int) (*Overlay, error) {
	if c == nil {
		return nil, ErrNilChart
	}

	ap, err := e.deriver.Annual(year)
	if err != nil {
		return nil, err
	}

	dayMaster, err := e.reg.StemByName(c.DayMaster.Stem)
	if err != nil {
		return nil, err
	}
	annualGod, err := tengod.TenGod(dayMaster, ap.Stem)
	if err != nil {
		return nil, err
	}

	entries := make([]interact.Entry, 0, 5)
	for i, p := range c.Pillars.List() {
		entries = append(entries, interact.Entry{Branch: p.Branch, Label: natalLabels[i]})
	}
	entries = append(entries, interact.Entry{Branch: ap.Branch, Label: annualLabel})

	all, err := interact.Detect(entries, e.tables)
	if err != nil {
		return nil, err
	}

	var annualOnly []interact.Record
	for _, rec := range all {
		if involvesLabel(rec, annualLabel) {
			annualOnly = append(annualOnly, rec)
		}
	}

	return &Overlay{
		AnnualPillar:       ap,
		AnnualTenGod:       annualGod,
		AnnualInteractions: annualOnly,
		AllInteractions:    all,
	}, nil
}

// involvesLabel reports whether any participant carries the label.
func involvesLabel(rec interact.Record, label string) bool {
	prefix := label + ":"
	for _, b := range rec.Branches {
		if strings.HasPrefix(b, prefix) {
			return true
		}
	}
	return false
}
