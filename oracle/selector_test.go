package oracle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astroracle/starway/core"
)

func TestResolveInquiry(t *testing.T) {
	ctx := context.Background()
	records := []core.StarshipRecord{
		record("SS-001", "旅行者一号", "1977-09-05"),
		record("SS-002", "哈勃", "1990-04-24"),
	}

	t.Run("blank question short-circuits without a gateway call", func(t *testing.T) {
		engine, gw := newTestEngine(t, records)

		m := engine.ResolveInquiry(ctx, "   \t  ")
		assert.False(t, m.Present())
		assert.Equal(t, core.BasisInquiry, m.Basis)
		assert.Equal(t, 0, gw.TotalCalls())
	})

	t.Run("empty catalog short-circuits without a gateway call", func(t *testing.T) {
		engine, gw := newTestEngine(t, nil)

		m := engine.ResolveInquiry(ctx, "我该换工作吗")
		assert.False(t, m.Present())
		assert.Equal(t, 0, gw.TotalCalls())
	})

	t.Run("successful selection scores 0.9", func(t *testing.T) {
		engine, gw := newTestEngine(t, records)
		gw.DefaultResponse = "SELECTED_ID: SS-002"

		m := engine.ResolveInquiry(ctx, "我该换工作吗")
		require.True(t, m.Present())
		assert.Equal(t, "SS-002", m.Starship.ArchiveID)
		assert.Equal(t, 0.9, m.Score)
		assert.Equal(t, core.BasisInquiry, m.Basis)
		assert.Equal(t, 1, gw.CompleteCalls())
		assert.Contains(t, gw.LastPrompt(), "我该换工作吗")
		assert.Contains(t, gw.LastPrompt(), "SS-001")
	})

	t.Run("gateway error degrades to absent", func(t *testing.T) {
		engine, gw := newTestEngine(t, records)
		gw.CompleteFunc = func(context.Context, string, string, string) (string, error) {
			return "", errors.New("upstream timeout")
		}

		m := engine.ResolveInquiry(ctx, "我该换工作吗")
		assert.False(t, m.Present())
		assert.Equal(t, 0.0, m.Score)
	})

	t.Run("response without protocol line degrades to absent", func(t *testing.T) {
		engine, gw := newTestEngine(t, records)
		gw.DefaultResponse = "我认为 SS-002 最合适。"

		m := engine.ResolveInquiry(ctx, "我该换工作吗")
		assert.False(t, m.Present())
	})

	t.Run("unknown id degrades to absent", func(t *testing.T) {
		engine, gw := newTestEngine(t, records)
		gw.DefaultResponse = "SELECTED_ID: X7"

		m := engine.ResolveInquiry(ctx, "我该换工作吗")
		assert.False(t, m.Present())
	})
}

func TestParseSelectedID(t *testing.T) {
	tests := []struct {
		name     string
		response string
		wantID   string
		wantOK   bool
	}{
		{"bare line", "SELECTED_ID: SS-007", "SS-007", true},
		{"no trailing space", "SELECTED_ID:SS-007", "SS-007", true},
		{"surrounded by chatter", "好的。\nSELECTED_ID: SS-001\n祝好。", "SS-001", true},
		{"indented line", "   SELECTED_ID: SS-002  ", "SS-002", true},
		{"first protocol line wins", "SELECTED_ID: SS-001\nSELECTED_ID: SS-002", "SS-001", true},
		{"empty id", "SELECTED_ID:   ", "", false},
		{"no protocol line", "最匹配的是哈勃。", "", false},
		{"empty response", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := parseSelectedID(tt.response)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
