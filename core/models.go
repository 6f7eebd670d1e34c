package core

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a deterministic identifier derived from entity content.
// Identical content always produces the same ID.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// LaunchDateLayout is the calendar date format used by catalog records.
const LaunchDateLayout = "2006-01-02"

// Basis names the axis a match was resolved on.
type Basis string

const (
	// BasisOrigin is the birth-date affinity axis.
	BasisOrigin Basis = "origin"
	// BasisCelestial is the current-date affinity axis.
	BasisCelestial Basis = "celestial"
	// BasisInquiry is the question-semantic affinity axis.
	BasisInquiry Basis = "inquiry"
)

// StarshipRecord is an immutable catalog entry. Records are loaded once at
// process start and shared read-only across all concurrent resolutions.
type StarshipRecord struct {
	ArchiveID            string   `json:"archive_id"`
	NameCN               string   `json:"name_cn"`
	NameOfficial         string   `json:"name_official"`
	LaunchDate           string   `json:"launch_date"` // YYYY-MM-DD
	Operator             string   `json:"operator,omitempty"`
	MissionDescription   string   `json:"mission_description,omitempty"`
	Status               string   `json:"status,omitempty"`
	OracleKeywords       []string `json:"oracle_keywords"`
	OracleText           string   `json:"oracle_text"`
	OracleInterpretation string   `json:"oracle_interpretation,omitempty"`
}

// LaunchTime parses the record's launch date as a UTC calendar date.
// A record whose date does not parse is skipped by temporal scoring,
// not treated as a catalog error.
func (r *StarshipRecord) LaunchTime() (time.Time, error) {
	return ParseDate(r.LaunchDate)
}

// Fingerprint returns a content-derived ID for the record.
func (r *StarshipRecord) Fingerprint() ID {
	return IDFromContent(r.ArchiveID + "|" + r.LaunchDate + "|" + r.OracleText)
}

// MatchResult is the outcome of resolving one axis. Starship is nil when the
// axis resolved to nothing; Score is then 0.0. This is the only cross-boundary
// shape clients render directly, so its JSON form must stay stable.
type MatchResult struct {
	Starship *StarshipRecord `json:"starship"`
	Score    float64         `json:"score"`
	Basis    Basis           `json:"basis"`
}

// AbsentMatch returns the well-defined "no selection" result for an axis.
func AbsentMatch(basis Basis) MatchResult {
	return MatchResult{Starship: nil, Score: 0.0, Basis: basis}
}

// Present reports whether the result carries a record.
func (m MatchResult) Present() bool {
	return m.Starship != nil
}

// RoundScore rounds a score to three decimals for serialization.
func RoundScore(score float64) float64 {
	return math.Round(score*1000) / 1000
}

// ResolutionBundle carries the three axis results plus the original request
// into interpretation synthesis. Any of the three slots may be absent; both
// the synthesizer and the fallback composer tolerate 0-3 present records.
type ResolutionBundle struct {
	BirthDate time.Time
	Question  string
	UserName  string
	Origin    MatchResult
	Celestial MatchResult
	Inquiry   MatchResult
}

// PresentCount returns how many of the three slots carry a record.
func (b *ResolutionBundle) PresentCount() int {
	n := 0
	if b.Origin.Present() {
		n++
	}
	if b.Celestial.Present() {
		n++
	}
	if b.Inquiry.Present() {
		n++
	}
	return n
}

// FragmentKind classifies a unit of incremental output.
type FragmentKind string

const (
	// FragmentResult carries a text delta.
	FragmentResult FragmentKind = "result"
	// FragmentCompleted terminates a stream successfully.
	FragmentCompleted FragmentKind = "completed"
	// FragmentError terminates a stream with a failure message.
	FragmentError FragmentKind = "error"
)

// StreamFragment is one unit of a server-push incremental response.
// Exactly one terminal fragment (completed or error) ends any stream.
type StreamFragment struct {
	Kind FragmentKind `json:"kind"`
	Text string       `json:"text,omitempty"`
}

// ResultFragment wraps a text delta.
func ResultFragment(delta string) StreamFragment {
	return StreamFragment{Kind: FragmentResult, Text: delta}
}

// CompletedFragment is the successful terminal fragment.
func CompletedFragment() StreamFragment {
	return StreamFragment{Kind: FragmentCompleted}
}

// ErrorFragment is the failure terminal fragment.
func ErrorFragment(msg string) StreamFragment {
	return StreamFragment{Kind: FragmentError, Text: msg}
}

// Terminal reports whether the fragment ends a stream.
func (f StreamFragment) Terminal() bool {
	return f.Kind == FragmentCompleted || f.Kind == FragmentError
}
