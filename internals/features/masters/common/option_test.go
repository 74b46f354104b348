package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDropdownOptionsListsActiveByName(t *testing.T) {
	db := setupTestDB(t)
	seedWidgets(t, db, "Beta", "Alpha")

	opts, err := DropdownOptions(db, "widgets", "")
	require.NoError(t, err)
	require.Len(t, opts, 2)
	assert.Equal(t, "Alpha", opts[0].Name)
	assert.Equal(t, "Beta", opts[1].Name)
	assert.NotZero(t, opts[0].ID)
}

func TestDropdownOptionsSubstringSearch(t *testing.T) {
	db := setupTestDB(t)
	seedWidgets(t, db, "Alpha", "Alphabet", "Beta")

	opts, err := DropdownOptions(db, "widgets", "Alpha")
	require.NoError(t, err)
	require.Len(t, opts, 2)
	assert.Equal(t, "Alpha", opts[0].Name)
	assert.Equal(t, "Alphabet", opts[1].Name)

	opts, err = DropdownOptions(db, "widgets", "phab")
	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.Equal(t, "Alphabet", opts[0].Name)
}

func TestDropdownOptionsExcludesDeactivated(t *testing.T) {
	db := setupTestDB(t)
	ids := seedWidgets(t, db, "Alpha", "Beta")
	require.NoError(t, BulkUpdateStatus(db, "widgets", "Widget", ids[:1], 0, 1))

	opts, err := DropdownOptions(db, "widgets", "")
	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.Equal(t, "Beta", opts[0].Name)
}

func TestDropdownOptionsNoMatches(t *testing.T) {
	db := setupTestDB(t)
	seedWidgets(t, db, "Alpha")

	opts, err := DropdownOptions(db, "widgets", "zzz")
	require.NoError(t, err)
	assert.NotNil(t, opts)
	assert.Empty(t, opts)
}
