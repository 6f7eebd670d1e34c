// Copyright 2025 Starway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package oracle

import (
	"context"
	"strings"

	"github.com/astroracle/starway/core"
)

// selectedIDPrefix is the literal line prefix the selection model must emit.
const selectedIDPrefix = "SELECTED_ID:"

// selectionScore is the fixed confidence for a successful LLM selection.
// A single categorical answer carries no finer-grained confidence signal,
// so success is encoded as 0.9 for interface uniformity with the temporal
// axes; 1.0 is reserved for nothing in this system.
const selectionScore = 0.9

// ResolveInquiry selects the inquiry starship for a free-text question via
// one fast-model round trip. An empty question or empty catalog returns the
// absent result immediately, with no gateway call. Every failure mode
// (gateway error, missing SELECTED_ID line, unknown id) converts locally to
// the absent result; this method never returns an error. There is no
// keyword-based fallback selection.
func (e *Engine) ResolveInquiry(ctx context.Context, question string) core.MatchResult {
	absent := core.AbsentMatch(core.BasisInquiry)

	question = strings.TrimSpace(question)
	if question == "" || e.catalog.Len() == 0 {
		return absent
	}

	prompt := buildSelectionPrompt(question, e.catalog.Records())
	response, err := e.gateway.Complete(ctx, selectionSystemPrompt, prompt, e.fastModel)
	if err != nil {
		e.logger.Warn("inquiry selection failed", "err", err)
		return absent
	}

	archiveID, ok := parseSelectedID(response)
	if !ok {
		e.logger.Warn("selection response carries no SELECTED_ID line")
		return absent
	}

	record, ok := e.catalog.Get(archiveID)
	if !ok {
		e.logger.Warn("selected id not in catalog", "archive_id", archiveID)
		return absent
	}

	return core.MatchResult{Starship: record, Score: selectionScore, Basis: core.BasisInquiry}
}

// parseSelectedID scans response lines for the first one beginning with the
// SELECTED_ID prefix and returns the trimmed remainder.
func parseSelectedID(response string) (string, bool) {
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, selectedIDPrefix) {
			continue
		}
		id := strings.TrimSpace(strings.TrimPrefix(line, selectedIDPrefix))
		return id, id != ""
	}
	return "", false
}
