package oracle

import (
	"strings"

	"github.com/astroracle/starway/core"
)

// catalogSilentMessage is the fixed text returned when no record at all is
// present in the bundle.
const catalogSilentMessage = "星辰暂时沉默，请稍后再试或重新思考你的问题。宇宙的奥秘需要耐心和真诚才能揭示。"

// fallbackExcerptRunes caps the celestial excerpt in fallback composition.
const fallbackExcerptRunes = 100

// ComposeFallback deterministically assembles interpretation text from the
// bundle without any model call. Pure and total: it always returns non-empty
// text, which is the availability guarantee the whole engine rests on.
//
// Per present record it emits the shared role label plus either the curated
// oracle_interpretation or the record's oracle text (the celestial line is
// excerpted, the other two run in full).
func ComposeFallback(bundle *core.ResolutionBundle) string {
	var parts []string

	if r := bundle.Origin.Starship; r != nil {
		parts = append(parts, originLabel+" "+r.NameCN+"："+fallbackBody(r, false))
	}
	if r := bundle.Celestial.Starship; r != nil {
		parts = append(parts, celestialLabel+" "+r.NameCN+"："+fallbackBody(r, true))
	}
	if r := bundle.Inquiry.Starship; r != nil {
		parts = append(parts, inquiryLabel+" "+r.NameCN+"："+fallbackBody(r, false))
	}

	if len(parts) == 0 {
		return catalogSilentMessage
	}
	return strings.Join(parts, "\n\n")
}

func fallbackBody(r *core.StarshipRecord, excerpted bool) string {
	if r.OracleInterpretation != "" {
		return r.OracleInterpretation
	}
	if excerpted {
		return excerpt(r.OracleText, fallbackExcerptRunes)
	}
	return r.OracleText
}
