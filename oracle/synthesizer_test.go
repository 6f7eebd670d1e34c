package oracle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astroracle/starway/ai"
	"github.com/astroracle/starway/core"
)

func presentBundle(t *testing.T, engine *Engine) core.ResolutionBundle {
	t.Helper()
	return core.ResolutionBundle{
		Question:  "我该换工作吗",
		Origin:    engine.ResolveOrigin(mustDate(t, "1990-05-10")),
		Celestial: engine.ResolveCelestial(mustDate(t, "1990-05-24")),
	}
}

func TestInterpret(t *testing.T) {
	ctx := context.Background()
	records := []core.StarshipRecord{
		record("SS-001", "旅行者一号", "1977-09-05"),
		record("SS-002", "哈勃", "1990-04-24"),
	}

	t.Run("returns trimmed model text", func(t *testing.T) {
		engine, gw := newTestEngine(t, records)
		gw.DefaultResponse = "  星舟已就位。\n"

		bundle := presentBundle(t, engine)
		got := engine.Interpret(ctx, bundle)
		assert.Equal(t, "星舟已就位。", got)
		assert.Equal(t, 1, gw.CompleteCalls())
		assert.Contains(t, gw.LastPrompt(), "旅行者一号")
	})

	t.Run("gateway error yields the fallback composition", func(t *testing.T) {
		engine, gw := newTestEngine(t, records)
		gw.CompleteFunc = func(context.Context, string, string, string) (string, error) {
			return "", errors.New("upstream down")
		}

		bundle := presentBundle(t, engine)
		got := engine.Interpret(ctx, bundle)
		assert.Equal(t, ComposeFallback(&bundle), got)
		assert.NotEmpty(t, got)
	})

	t.Run("empty bundle returns the silence literal with zero gateway calls", func(t *testing.T) {
		engine, gw := newTestEngine(t, nil)
		gw.DefaultResponse = "模型编造的解读文本。"

		bundle := engine.Resolve(ctx, Request{BirthDate: mustDate(t, "1990-05-10")})
		require.Equal(t, 0, bundle.PresentCount())

		got := engine.Interpret(ctx, bundle)
		assert.Equal(t, catalogSilentMessage, got)
		assert.Equal(t, 0, gw.TotalCalls())
	})

	t.Run("blank model text yields the fallback composition", func(t *testing.T) {
		engine, gw := newTestEngine(t, records)
		gw.DefaultResponse = "  \n\t "

		bundle := presentBundle(t, engine)
		assert.Equal(t, ComposeFallback(&bundle), engine.Interpret(ctx, bundle))
	})
}

func collect(seq func(func(core.StreamFragment) bool)) []core.StreamFragment {
	var got []core.StreamFragment
	for f := range seq {
		got = append(got, f)
	}
	return got
}

func TestInterpretStream(t *testing.T) {
	ctx := context.Background()
	records := []core.StarshipRecord{
		record("SS-001", "旅行者一号", "1977-09-05"),
	}

	t.Run("deltas arrive in order and end with completion", func(t *testing.T) {
		engine, gw := newTestEngine(t, records)
		gw.DefaultDeltas = []string{"星舟", "", "指向", "北方。"}

		bundle := presentBundle(t, engine)
		got := collect(engine.InterpretStream(ctx, bundle))

		require.Len(t, got, 4) // empty delta dropped
		assert.Equal(t, core.ResultFragment("星舟"), got[0])
		assert.Equal(t, core.ResultFragment("指向"), got[1])
		assert.Equal(t, core.ResultFragment("北方。"), got[2])
		assert.Equal(t, core.CompletedFragment(), got[3])
	})

	t.Run("gateway failure degrades to one fallback result plus completion", func(t *testing.T) {
		engine, gw := newTestEngine(t, records)
		gw.CompleteStreamFunc = func(context.Context, string, string, string, ai.StreamFunc) error {
			return errors.New("connection reset")
		}

		bundle := presentBundle(t, engine)
		got := collect(engine.InterpretStream(ctx, bundle))

		require.Len(t, got, 2)
		assert.Equal(t, core.FragmentResult, got[0].Kind)
		assert.Equal(t, ComposeFallback(&bundle), got[0].Text)
		assert.Equal(t, core.FragmentCompleted, got[1].Kind)
	})

	t.Run("mid-stream failure still ends with fallback and completion", func(t *testing.T) {
		engine, gw := newTestEngine(t, records)
		gw.CompleteStreamFunc = func(ctx context.Context, _, _, _ string, fn ai.StreamFunc) error {
			if err := fn(ctx, []byte("星舟")); err != nil {
				return err
			}
			return errors.New("connection reset")
		}

		bundle := presentBundle(t, engine)
		got := collect(engine.InterpretStream(ctx, bundle))

		require.Len(t, got, 3)
		assert.Equal(t, core.ResultFragment("星舟"), got[0])
		assert.Equal(t, ComposeFallback(&bundle), got[1].Text)
		assert.True(t, got[2].Terminal())
	})

	t.Run("empty bundle streams the silence literal with zero gateway calls", func(t *testing.T) {
		engine, gw := newTestEngine(t, nil)
		gw.DefaultDeltas = []string{"不该出现的内容"}

		bundle := engine.Resolve(ctx, Request{BirthDate: mustDate(t, "1990-05-10")})
		require.Equal(t, 0, bundle.PresentCount())

		got := collect(engine.InterpretStream(ctx, bundle))
		require.Len(t, got, 2)
		assert.Equal(t, core.FragmentResult, got[0].Kind)
		assert.Equal(t, catalogSilentMessage, got[0].Text)
		assert.True(t, got[1].Terminal())
		assert.Equal(t, 0, gw.TotalCalls())
	})

	t.Run("consumer stop propagates to the gateway read", func(t *testing.T) {
		engine, gw := newTestEngine(t, records)
		gw.DefaultDeltas = []string{"一", "二", "三"}

		bundle := presentBundle(t, engine)
		var got []core.StreamFragment
		for f := range engine.InterpretStream(ctx, bundle) {
			got = append(got, f)
			break
		}

		// Exactly one fragment observed, no terminal owed to a departed
		// consumer.
		require.Len(t, got, 1)
		assert.Equal(t, core.ResultFragment("一"), got[0])
	})

	t.Run("cancelled context produces no fragments", func(t *testing.T) {
		engine, gw := newTestEngine(t, records)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		gw.CompleteStreamFunc = func(ctx context.Context, _, _, _ string, _ ai.StreamFunc) error {
			return ctx.Err()
		}

		bundle := presentBundle(t, engine)
		got := collect(engine.InterpretStream(cancelled, bundle))
		assert.Empty(t, got)
	})
}
