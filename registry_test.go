package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	reg := testRegistry()

	assert.Equal(t, 0, FindIndex(reg, "liquid_radio"))
	assert.Equal(t, 1, FindIndex(reg, "drone_zone"))
	assert.Equal(t, -1, FindIndex(reg, "unknown_id"))

	// ids compare case-insensitively
	assert.Equal(t, 0, FindIndex(reg, "Liquid_Radio"))
}

func TestAdd(t *testing.T) {
	reg := Registry{}

	err := Add(&reg, "jazz_fm", "Jazz FM", "", testSources())
	require.NoError(t, err)
	assert.Equal(t, 0, FindIndex(reg, "jazz_fm"))
	assert.Len(t, reg, 1)
}

func TestAddDuplicateLeavesRegistryUnchanged(t *testing.T) {
	reg := testRegistry()
	before := append(Registry(nil), reg...)

	err := Add(&reg, "liquid_radio", "Another Liquid", "", testSources())
	assert.Equal(t, ErrDuplicateStation, err)
	assert.Equal(t, before, reg)

	// differs only by case, still a duplicate
	err = Add(&reg, "LIQUID_RADIO", "Shouty Liquid", "", testSources())
	assert.Equal(t, ErrDuplicateStation, err)
	assert.Equal(t, before, reg)
}

func TestAddInvalidLeavesRegistryUnchanged(t *testing.T) {
	reg := testRegistry()

	err := Add(&reg, "jazz_fm", "Jazz FM", "", nil)
	assert.Equal(t, ErrInvalidSource, err)
	assert.Len(t, reg, 2)
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	reg := Registry{}
	require.NoError(t, Add(&reg, "a_fm", "A FM", "", testSources()))
	require.NoError(t, Add(&reg, "b_fm", "B FM", "", testSources()))
	require.NoError(t, Add(&reg, "c_fm", "C FM", "", testSources()))

	assert.Equal(t, []string{"a_fm", "b_fm", "c_fm"},
		[]string{reg[0].ID, reg[1].ID, reg[2].ID})
}

func TestAddFromRecordMergesNewID(t *testing.T) {
	reg := testRegistry()
	logger := &testLogger{}

	grew := AddFromRecord(&reg, StationRecord{
		ID:     "jazz_fm",
		Title:  "Jazz FM",
		Source: testSources(),
	}, logger)

	assert.True(t, grew)
	assert.Equal(t, 2, FindIndex(reg, "jazz_fm"))
	assert.Empty(t, logger.lines)
}

func TestAddFromRecordDiscardsDuplicateSilently(t *testing.T) {
	reg := testRegistry()
	logger := &testLogger{}

	grew := AddFromRecord(&reg, StationRecord{
		ID:          "liquid_radio",
		Title:       "Stored Liquid",
		Description: "stale copy",
		Source:      testSources(),
	}, logger)

	assert.False(t, grew)
	assert.Len(t, reg, 2)
	// the seeded entry stays authoritative
	assert.Equal(t, "Liquid Radio", reg[FindIndex(reg, "liquid_radio")].Title)
	// duplicates are steady state, not worth a log line
	assert.Empty(t, logger.lines)
}

func TestAddFromRecordDiscardsInvalidWithLog(t *testing.T) {
	reg := testRegistry()
	logger := &testLogger{}

	grew := AddFromRecord(&reg, StationRecord{ID: "broken", Title: "Broken"}, logger)

	assert.False(t, grew)
	assert.Len(t, reg, 2)
	require.Len(t, logger.lines, 1)
	assert.Contains(t, logger.lines[0], "broken")
}

func TestRemoveIsIdempotent(t *testing.T) {
	reg := testRegistry()

	assert.True(t, Remove(&reg, "drone_zone"))
	assert.Len(t, reg, 1)

	assert.False(t, Remove(&reg, "drone_zone"))
	assert.Len(t, reg, 1)

	assert.False(t, Remove(&reg, "never_existed"))
}

func TestUpdateReplacesInPlace(t *testing.T) {
	reg := testRegistry()
	replacement, err := NewStation("liquid_radio", "Liquid Radio 2", "rebranded", testSources())
	require.NoError(t, err)

	require.NoError(t, Update(&reg, "liquid_radio", replacement))
	assert.Equal(t, 0, FindIndex(reg, "liquid_radio"))
	assert.Equal(t, "Liquid Radio 2", reg[0].Title)
	assert.Len(t, reg, 2)
}

func TestUpdateUnknownID(t *testing.T) {
	reg := testRegistry()
	replacement, err := NewStation("jazz_fm", "Jazz FM", "", testSources())
	require.NoError(t, err)

	assert.Equal(t, ErrStationNotFound, Update(&reg, "jazz_fm", replacement))
	assert.Len(t, reg, 2)
}
