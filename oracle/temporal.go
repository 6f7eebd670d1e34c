package oracle

import (
	"time"

	"github.com/astroracle/starway/core"
)

// Decay constants for the two temporal axes. A record launched exactly on
// the reference date scores 1.0; affinity halves at one divisor of offset.
const (
	originDecayDays    = 365.0 // long-horizon affinity
	celestialDecayDays = 30.0  // weights recency strongly
)

// ResolveOrigin scores the catalog against a birth date under long-horizon
// decay. Pure and deterministic: identical inputs on an unchanged catalog
// yield bit-identical results.
func (e *Engine) ResolveOrigin(birthDate time.Time) core.MatchResult {
	return e.resolveTemporal(birthDate, core.BasisOrigin, originDecayDays)
}

// ResolveCelestial scores the catalog against a reference date (usually
// today) under short-horizon decay.
func (e *Engine) ResolveCelestial(referenceDate time.Time) core.MatchResult {
	return e.resolveTemporal(referenceDate, core.BasisCelestial, celestialDecayDays)
}

// resolveTemporal keeps the strictly-highest-scoring record; the first-seen
// record wins exact ties. Records with unparseable launch dates are skipped
// per-record. An empty or fully-unscorable catalog yields the absent result
// with score 0.0, which is not an error condition.
func (e *Engine) resolveTemporal(reference time.Time, basis core.Basis, decayDays float64) core.MatchResult {
	best := core.AbsentMatch(basis)
	records := e.catalog.Records()

	for i := range records {
		launch, err := records[i].LaunchTime()
		if err != nil {
			continue
		}
		days := core.DayOffset(reference, launch)
		score := 1.0 / (1.0 + float64(days)/decayDays)
		if score > best.Score {
			best.Starship = &records[i]
			best.Score = score
		}
	}

	best.Score = core.RoundScore(best.Score)
	return best
}
