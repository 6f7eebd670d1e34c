package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astroracle/starway/core"
	badgerstore "github.com/astroracle/starway/storage/badger"
)

func sampleRecords() []core.StarshipRecord {
	return []core.StarshipRecord{
		{
			ArchiveID:      "SS-001",
			NameCN:         "旅行者一号",
			NameOfficial:   "Voyager 1",
			LaunchDate:     "1977-09-05",
			OracleKeywords: []string{"远行"},
			OracleText:     "离群的信标仍在发报。",
		},
		{
			ArchiveID:      "SS-002",
			NameCN:         "哈勃空间望远镜",
			NameOfficial:   "Hubble Space Telescope",
			LaunchDate:     "1990-04-24",
			OracleKeywords: []string{"洞察"},
			OracleText:     "修正之后才看见星云的细节。",
		},
	}
}

func TestNew(t *testing.T) {
	t.Run("valid records", func(t *testing.T) {
		c, err := New(sampleRecords())
		require.NoError(t, err)
		assert.Equal(t, 2, c.Len())

		r, ok := c.Get("SS-002")
		require.True(t, ok)
		assert.Equal(t, "哈勃空间望远镜", r.NameCN)

		_, ok = c.Get("SS-404")
		assert.False(t, ok)
	})

	t.Run("empty catalog is valid", func(t *testing.T) {
		c, err := New(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, c.Len())
		assert.Empty(t, c.Records())
	})

	t.Run("duplicate archive id rejected", func(t *testing.T) {
		records := sampleRecords()
		records[1].ArchiveID = records[0].ArchiveID
		_, err := New(records)
		assert.ErrorIs(t, err, core.ErrDuplicateArchiveID)
	})

	t.Run("invalid record rejected", func(t *testing.T) {
		records := sampleRecords()
		records[0].OracleText = ""
		_, err := New(records)
		assert.ErrorIs(t, err, core.ErrInvalidRecord)
	})
}

func TestFingerprint(t *testing.T) {
	a, err := New(sampleRecords())
	require.NoError(t, err)
	b, err := New(sampleRecords())
	require.NoError(t, err)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint(), "same content, same fingerprint")

	changed := sampleRecords()
	changed[0].OracleText = "别的神谕。"
	c, err := New(changed)
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestLoadFile(t *testing.T) {
	c, err := LoadFile(filepath.Join("testdata", "starships.json"))
	require.NoError(t, err)
	assert.Equal(t, 5, c.Len())

	r, ok := c.Get("SS-007")
	require.True(t, ok)
	assert.Equal(t, "Chang'e 5", r.NameOfficial)
	assert.Equal(t, "2020-11-24", r.LaunchDate)

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join("testdata", "nope.json"))
		assert.Error(t, err)
	})
}

func TestFromRepository(t *testing.T) {
	repo, err := badgerstore.NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()
	require.NoError(t, repo.PutStarships(ctx, sampleRecords()...))

	c, err := FromRepository(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	r, ok := c.Get("SS-001")
	require.True(t, ok)
	assert.Equal(t, "Voyager 1", r.NameOfficial)
}
