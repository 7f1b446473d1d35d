// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ubonasm/edustudy/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.LibraryConfig{LibraryDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecords() []types.PaperRecord {
	return []types.PaperRecord{
		{
			Title:         "Adaptive Learning Systems",
			Authors:       "Alice Smith",
			Year:          2021,
			Abstract:      "A study of adaptive learning.",
			Venue:         "Computers & Education",
			CitationCount: 42,
			URL:           "https://example.org/p/1",
		},
		{
			Title:         "Curriculum Design Patterns",
			Authors:       "Bob Jones",
			Year:          2019,
			Abstract:      types.AbstractNone,
			Venue:         types.VenueUnknown,
			CitationCount: 7,
		},
	}
}

func TestSaveAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	added, err := s.Save(ctx, testRecords(), "adaptive learning")
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	papers, err := s.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, papers, 2)

	assert.Equal(t, "Adaptive Learning Systems", papers[0].Title)
	assert.Equal(t, 2021, papers[0].Year)
	assert.Equal(t, "adaptive learning", papers[0].SearchQuery)
	assert.False(t, papers[0].SavedAt.IsZero())
}

func TestSaveSkipsDuplicateTitles(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	added, err := s.Save(ctx, testRecords(), "first query")
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	// Re-saving the same titles is a silent skip.
	added, err = s.Save(ctx, testRecords(), "second query")
	require.NoError(t, err)
	assert.Equal(t, 0, added)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestListFilter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Save(ctx, testRecords(), "q")
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter string
		want   int
	}{
		{"title match", "curriculum", 1},
		{"abstract match", "adaptive learning", 1},
		{"case insensitive", "ADAPTIVE", 1},
		{"no match", "soccer", 0},
		{"empty filter returns all", "", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			papers, err := s.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Len(t, papers, tt.want)
		})
	}
}

func TestClear(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Save(ctx, testRecords(), "q")
	require.NoError(t, err)

	removed, err := s.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSaveUnknownYearRoundTrips(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec := types.PaperRecord{
		Title:    "No Date Paper",
		Authors:  types.AuthorsUnknown,
		Year:     types.YearUnknown,
		Abstract: types.AbstractNone,
		Venue:    types.VenueUnknown,
	}
	_, err := s.Save(ctx, []types.PaperRecord{rec}, "q")
	require.NoError(t, err)

	papers, err := s.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, papers, 1)
	assert.Equal(t, types.YearUnknown, papers[0].Year)
	assert.False(t, papers[0].HasYear())
}

func TestOpenCreatesDirectory(t *testing.T) {
	dir := t.TempDir() + "/nested/library"
	s, err := Open(types.LibraryConfig{LibraryDir: dir})
	require.NoError(t, err)
	defer s.Close()

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
