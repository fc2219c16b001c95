package models

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStateFile(t *testing.T) {
	t.Helper()
	StatePath = filepath.Join(t.TempDir(), "state.json")
	State = TapState{}
	require.NoError(t, State.Create())
}

func TestStateRoundTrip(t *testing.T) {
	setupStateFile(t)

	require.NoError(t, State.Set("campaign_reports", "2023-01-04T00:00:00Z", false))
	require.NoError(t, State.Set("email_reports", "2023-01-10T00:00:00Z", true))

	var reread TapState
	require.NoError(t, reread.Read())

	bookmark, ok := reread.Bookmarks["campaign_reports"]
	require.True(t, ok)
	assert.Equal(t, "2023-01-04T00:00:00Z", bookmark.ReplicationKeyValue)
	assert.False(t, bookmark.Inclusive)

	bookmark, ok = reread.Bookmarks["email_reports"]
	require.True(t, ok)
	assert.True(t, bookmark.Inclusive)
	assert.NotEmpty(t, bookmark.UpdatedAt)
}

func TestStateGetUnknownStream(t *testing.T) {
	setupStateFile(t)

	_, ok := State.Get("sms_reports")
	assert.False(t, ok)
}

func TestStateSetOverwritesBookmark(t *testing.T) {
	setupStateFile(t)

	require.NoError(t, State.Set("campaign_reports", "2023-01-04T00:00:00Z", false))
	require.NoError(t, State.Set("campaign_reports", "2023-01-07T00:00:00Z", false))

	bookmark, _ := State.Get("campaign_reports")
	assert.Equal(t, "2023-01-07T00:00:00Z", bookmark.ReplicationKeyValue)
}

func TestStateReadMissingFile(t *testing.T) {
	StatePath = filepath.Join(t.TempDir(), "state.json")

	var state TapState
	assert.Error(t, state.Read())
}
