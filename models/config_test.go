package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidateRequiredFields(t *testing.T) {
	config := TapConfig{StartDate: "2023-01-01"}
	assert.Error(t, config.Validate(), "missing api_key must be fatal")

	config = TapConfig{APIKey: "k"}
	assert.Error(t, config.Validate(), "missing start_date must be fatal")

	config = TapConfig{APIKey: "k", StartDate: "2023-01-01"}
	assert.NoError(t, config.Validate())
}

func TestConfigValidateDates(t *testing.T) {
	config := TapConfig{APIKey: "k", StartDate: "not-a-date"}
	assert.Error(t, config.Validate())

	config = TapConfig{APIKey: "k", StartDate: "2023-01-01", EndDate: "01/02/2023"}
	assert.Error(t, config.Validate())

	config = TapConfig{APIKey: "k", StartDate: "2023-01-01T12:00:00Z", EndDate: "2023-02-01"}
	assert.NoError(t, config.Validate())
}

func TestConfigApplyDefaults(t *testing.T) {
	config := TapConfig{APIKey: "k", StartDate: "2023-01-01"}
	config.ApplyDefaults()

	assert.Equal(t, DefaultDomain, config.Domain)
	assert.Equal(t, DefaultAPIVersion, config.APIVersion)
	assert.Equal(t, DefaultWindowDays, config.WindowDays)
	assert.Equal(t, DefaultPageSize, config.PageSize)
}

func TestConfigEndDefaultsToRunStart(t *testing.T) {
	runStart := time.Date(2023, 6, 1, 9, 30, 0, 0, time.UTC)

	config := TapConfig{APIKey: "k", StartDate: "2023-01-01"}
	assert.Equal(t, runStart, config.End(runStart))

	config.EndDate = "2023-03-01"
	assert.Equal(t, time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), config.End(runStart))
}

func TestConfigFilterIDs(t *testing.T) {
	config := TapConfig{
		CampaignIDs:  []string{"1", "2"},
		SupplierIDs:  []string{"all"},
		ResponderIDs: nil,
	}

	assert.Equal(t, []string{"1", "2"}, config.FilterIDs("campaign_ids"))
	assert.Nil(t, config.FilterIDs("supplier_ids"), "the all wildcard disables filtering")
	assert.Nil(t, config.FilterIDs("responder_ids"))
	assert.Nil(t, config.FilterIDs(""))
}

func TestParseTime(t *testing.T) {
	parsed, err := ParseTime("2023-01-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC), parsed)

	parsed, err = ParseTime("2023-01-05T08:15:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 1, 5, 8, 15, 0, 0, time.UTC), parsed)

	_, err = ParseTime("05/01/2023")
	assert.Error(t, err)
}
