package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var Config TapConfig

const (
	DefaultDomain     = "casesondemand"
	DefaultAPIVersion = "v1.3"
	DefaultWindowDays = 30
	DefaultPageSize   = 500
)

// TapConfig is the immutable run configuration parsed from the config JSON.
// Defaults are applied once at startup; streams only ever read it.
type TapConfig struct {
	APIKey       string   `json:"api_key" validate:"required"`
	Domain       string   `json:"domain,omitempty"`
	APIVersion   string   `json:"api_version,omitempty"`
	StartDate    string   `json:"start_date" validate:"required"`
	EndDate      string   `json:"end_date,omitempty"`
	CampaignIDs  []string `json:"campaign_ids,omitempty"`
	SupplierIDs  []string `json:"supplier_ids,omitempty"`
	ResponderIDs []string `json:"responder_ids,omitempty"`
	BuyerIDs     []string `json:"buyer_ids,omitempty"`
	WindowDays   int      `json:"window_days,omitempty"`
	PageSize     int      `json:"page_size,omitempty"`
	UserAgent    string   `json:"user_agent,omitempty"`
}

// ApplyDefaults fills zero-valued optional fields
func (c *TapConfig) ApplyDefaults() {
	if c.Domain == "" {
		c.Domain = DefaultDomain
	}
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if c.WindowDays <= 0 {
		c.WindowDays = DefaultWindowDays
	}
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
}

// Validate checks required fields and date formats; fatal at startup on failure
func (c *TapConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if _, err := ParseTime(c.StartDate); err != nil {
		return fmt.Errorf("invalid config start_date %q: %w", c.StartDate, err)
	}

	if c.EndDate != "" {
		if _, err := ParseTime(c.EndDate); err != nil {
			return fmt.Errorf("invalid config end_date %q: %w", c.EndDate, err)
		}
	}

	return nil
}

// Start returns the configured start_date as a time
func (c *TapConfig) Start() time.Time {
	t, _ := ParseTime(c.StartDate)
	return t
}

// End returns the configured end_date, defaulting to runStart when absent
func (c *TapConfig) End(runStart time.Time) time.Time {
	if c.EndDate == "" {
		return runStart.UTC()
	}
	t, _ := ParseTime(c.EndDate)
	return t
}

// FilterIDs returns the configured ID list for a filter set name.
// The literal ["all"] wildcard is treated as no filter.
func (c *TapConfig) FilterIDs(set string) []string {
	var ids []string
	switch set {
	case "campaign_ids":
		ids = c.CampaignIDs
	case "supplier_ids":
		ids = c.SupplierIDs
	case "responder_ids":
		ids = c.ResponderIDs
	case "buyer_ids":
		ids = c.BuyerIDs
	}

	if len(ids) == 1 && ids[0] == "all" {
		return nil
	}
	return ids
}

// ParseTime accepts the ISO-8601 shapes the LeadByte API uses: a full
// timestamp or a plain date
func ParseTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("expected RFC3339 or YYYY-MM-DD")
}
