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
	"iter"
	"strings"

	"github.com/astroracle/starway/core"
)

// Interpret synthesizes the final interpretation for a bundle in one
// quality-model round trip. A bundle with no present record skips the
// round trip entirely and returns the fixed fallback text. On any gateway
// failure it returns the fallback composition instead; it never returns
// an error and never returns empty text.
func (e *Engine) Interpret(ctx context.Context, bundle core.ResolutionBundle) string {
	if bundle.PresentCount() == 0 {
		e.logger.Debug("no records present, skipping interpretation round trip")
		return ComposeFallback(&bundle)
	}

	text, err := e.gateway.Complete(ctx,
		interpretationSystemPrompt, buildInterpretationPrompt(&bundle), e.qualityModel)
	if err != nil {
		e.logger.Warn("interpretation failed, composing fallback", "err", err)
		return ComposeFallback(&bundle)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return ComposeFallback(&bundle)
	}
	return text
}

// InterpretStream synthesizes the interpretation as a single-pass,
// forward-only fragment sequence. Every non-empty delta from the gateway
// becomes one result fragment, in arrival order. The sequence is finite and
// ends with exactly one terminal fragment.
//
// A bundle with no present record produces the fixed fallback text as one
// result fragment plus a completion, with no gateway call. If the gateway
// call fails before or during streaming, the sequence degrades to one
// result fragment carrying the full fallback text, followed by a normal
// completion; a protocol error is never surfaced. If ctx is cancelled
// (client disconnected) the gateway read stops and no further fragments
// are produced; no partial result is persisted anywhere.
func (e *Engine) InterpretStream(ctx context.Context, bundle core.ResolutionBundle) iter.Seq[core.StreamFragment] {
	return func(yield func(core.StreamFragment) bool) {
		if bundle.PresentCount() == 0 {
			e.logger.Debug("no records present, skipping interpretation stream")
			if yield(core.ResultFragment(ComposeFallback(&bundle))) {
				yield(core.CompletedFragment())
			}
			return
		}

		prompt := buildInterpretationPrompt(&bundle)

		stopped := false
		err := e.gateway.CompleteStream(ctx, interpretationSystemPrompt, prompt, e.qualityModel,
			func(_ context.Context, delta []byte) error {
				if len(delta) == 0 {
					return nil
				}
				if !yield(core.ResultFragment(string(delta))) {
					stopped = true
					return errStreamStopped
				}
				return nil
			})

		if stopped {
			// The consumer walked away; it is owed nothing further.
			return
		}
		if err != nil {
			if ctx.Err() != nil {
				e.logger.Debug("interpretation stream cancelled")
				return
			}
			e.logger.Warn("interpretation stream failed, degrading to fallback", "err", err)
			if !yield(core.ResultFragment(ComposeFallback(&bundle))) {
				return
			}
		}
		yield(core.CompletedFragment())
	}
}
