package oracle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astroracle/starway/ai/mock"
	"github.com/astroracle/starway/catalog"
	"github.com/astroracle/starway/core"
)

func record(id, name, launch string) core.StarshipRecord {
	return core.StarshipRecord{
		ArchiveID:    id,
		NameCN:       name,
		NameOfficial: name,
		LaunchDate:   launch,
		OracleText:   "神谕文本 " + id,
	}
}

func newTestEngine(t *testing.T, records []core.StarshipRecord) (*Engine, *mock.Gateway) {
	t.Helper()
	cat, err := catalog.New(records)
	require.NoError(t, err)
	gw := mock.NewGateway()
	engine, err := New(cat, gw)
	require.NoError(t, err)
	return engine, gw
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := core.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestResolveOrigin(t *testing.T) {
	t.Run("exact launch date scores 1.0", func(t *testing.T) {
		engine, _ := newTestEngine(t, []core.StarshipRecord{
			record("SS-001", "旅行者一号", "1977-09-05"),
			record("SS-002", "哈勃", "1990-05-10"),
		})

		m := engine.ResolveOrigin(mustDate(t, "1990-05-10"))
		require.True(t, m.Present())
		assert.Equal(t, "SS-002", m.Starship.ArchiveID)
		assert.Equal(t, 1.0, m.Score)
		assert.Equal(t, core.BasisOrigin, m.Basis)
	})

	t.Run("keeps the strictly highest score", func(t *testing.T) {
		engine, _ := newTestEngine(t, []core.StarshipRecord{
			record("SS-001", "远", "1977-09-05"),
			record("SS-002", "近", "1990-04-24"),
			record("SS-003", "更远", "1957-10-04"),
		})

		m := engine.ResolveOrigin(mustDate(t, "1990-05-10"))
		require.True(t, m.Present())
		assert.Equal(t, "SS-002", m.Starship.ArchiveID)
	})

	t.Run("first record wins exact ties", func(t *testing.T) {
		// Equidistant launches, one day on each side.
		engine, _ := newTestEngine(t, []core.StarshipRecord{
			record("SS-001", "前", "1990-05-09"),
			record("SS-002", "后", "1990-05-11"),
		})

		m := engine.ResolveOrigin(mustDate(t, "1990-05-10"))
		require.True(t, m.Present())
		assert.Equal(t, "SS-001", m.Starship.ArchiveID)
	})

	t.Run("skips unparseable launch dates", func(t *testing.T) {
		engine, _ := newTestEngine(t, []core.StarshipRecord{
			record("SS-001", "坏日期", "unknown"),
			record("SS-002", "好日期", "1990-05-10"),
		})

		m := engine.ResolveOrigin(mustDate(t, "1990-05-10"))
		require.True(t, m.Present())
		assert.Equal(t, "SS-002", m.Starship.ArchiveID)
	})

	t.Run("all dates unparseable is absent, not an error", func(t *testing.T) {
		engine, _ := newTestEngine(t, []core.StarshipRecord{
			record("SS-001", "坏日期", "not-a-date"),
		})

		m := engine.ResolveOrigin(mustDate(t, "1990-05-10"))
		assert.False(t, m.Present())
		assert.Equal(t, 0.0, m.Score)
	})

	t.Run("empty catalog is absent with score zero", func(t *testing.T) {
		engine, _ := newTestEngine(t, nil)
		m := engine.ResolveOrigin(mustDate(t, "1990-05-10"))
		assert.False(t, m.Present())
		assert.Equal(t, 0.0, m.Score)
	})

	t.Run("idempotent", func(t *testing.T) {
		engine, _ := newTestEngine(t, []core.StarshipRecord{
			record("SS-001", "旅行者一号", "1977-09-05"),
			record("SS-002", "哈勃", "1990-04-24"),
		})
		d := mustDate(t, "1984-02-29")
		first := engine.ResolveOrigin(d)
		second := engine.ResolveOrigin(d)
		assert.Equal(t, first, second)
	})
}

func TestDecayVariantsDiffer(t *testing.T) {
	// One record, 30 days offset: celestial = 1/(1+30/30) = 0.5,
	// origin = 1/(1+30/365) ≈ 0.924.
	engine, _ := newTestEngine(t, []core.StarshipRecord{
		record("SS-001", "哈勃", "1990-04-24"),
	})
	ref := mustDate(t, "1990-05-24")

	origin := engine.ResolveOrigin(ref)
	celestial := engine.ResolveCelestial(ref)

	require.True(t, origin.Present())
	require.True(t, celestial.Present())
	assert.Equal(t, origin.Starship.ArchiveID, celestial.Starship.ArchiveID)
	assert.Equal(t, 0.924, origin.Score)
	assert.Equal(t, 0.5, celestial.Score)
	assert.Equal(t, core.BasisCelestial, celestial.Basis)
}
