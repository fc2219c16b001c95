package streams

import (
	"fmt"

	"github.com/5amCurfew/tap-leadbyte/models"
	util "github.com/5amCurfew/tap-leadbyte/util"
)

const (
	FullTable   = "FULL_TABLE"
	Incremental = "INCREMENTAL"
)

// Stream statically declares one LeadByte endpoint: its schema, keys,
// replication method and where records sit in the response envelope.
// Descriptors are fixed for the process lifetime; schema discovery never
// inspects live responses.
type Stream struct {
	Name              string
	Path              string
	KeyProperties     []string
	ReplicationMethod string
	ReplicationKey    string

	// RecordsPath locates the records array in the response envelope;
	// nil means the response body is the array itself
	RecordsPath []string

	Schema map[string]interface{}

	// FilterFieldPath/FilterSet bind a configured ID list to a record
	// field for client-side filtering of full-table streams
	FilterFieldPath []string
	FilterSet       string

	// PostProcess derives declared fields from the raw row before it is
	// conformed to the schema
	PostProcess func(map[string]interface{})
}

// All is the fixed registry of the 12 supported streams
var All = []*Stream{
	{
		Name:              "email_reports",
		Path:              "/reports/email",
		KeyProperties:     []string{"campaign_id", "responder_id", "supplier_id", "push_id"},
		ReplicationMethod: Incremental,
		ReplicationKey:    "date",
		RecordsPath:       []string{"data"},
		Schema:            emailReportsSchema,
		PostProcess:       flattenReportKeys,
	},
	{
		Name:              "sms_reports",
		Path:              "/reports/sms",
		KeyProperties:     []string{"campaign.id", "responder.id", "supplier.id", "push.id"},
		ReplicationMethod: Incremental,
		ReplicationKey:    "date",
		RecordsPath:       []string{"data"},
		Schema:            smsReportsSchema,
	},
	{
		Name:              "bulk_email_reports",
		Path:              "/reports/bulkemail",
		KeyProperties:     []string{"campaign.id", "responder.id", "supplier.id", "push.id"},
		ReplicationMethod: Incremental,
		ReplicationKey:    "date",
		RecordsPath:       []string{"data"},
		Schema:            bulkEmailReportsSchema,
	},
	{
		Name:              "bulk_sms_reports",
		Path:              "/reports/bulksms",
		KeyProperties:     []string{"campaign.id", "responder.id", "supplier.id", "push.id"},
		ReplicationMethod: Incremental,
		ReplicationKey:    "date",
		RecordsPath:       []string{"data"},
		Schema:            bulkSmsReportsSchema,
	},
	{
		Name:              "supplier_reports",
		Path:              "/reports/supplier",
		KeyProperties:     []string{"campaign.id", "supplier.id"},
		ReplicationMethod: Incremental,
		ReplicationKey:    "date",
		RecordsPath:       []string{"data"},
		Schema:            supplierReportsSchema,
	},
	{
		Name:              "buyer_reports",
		Path:              "/reports/buyer",
		KeyProperties:     []string{"campaign.id", "buyer.id"},
		ReplicationMethod: Incremental,
		ReplicationKey:    "date",
		RecordsPath:       []string{"data"},
		Schema:            buyerReportsSchema,
	},
	{
		Name:              "campaign_reports",
		Path:              "/reports/campaign",
		KeyProperties:     []string{"campaign.id", "date"},
		ReplicationMethod: Incremental,
		ReplicationKey:    "date",
		RecordsPath:       []string{"data"},
		Schema:            campaignReportsSchema,
	},
	{
		Name:              "lead_activity_reports",
		Path:              "/reports/leadactivity",
		KeyProperties:     []string{"campaign.id", "date"},
		ReplicationMethod: Incremental,
		ReplicationKey:    "date",
		RecordsPath:       []string{"data"},
		Schema:            leadActivityReportsSchema,
	},
	{
		Name:              "campaigns",
		Path:              "/campaigns",
		KeyProperties:     []string{"id"},
		ReplicationMethod: FullTable,
		Schema:            campaignsSchema,
		FilterFieldPath:   []string{"id"},
		FilterSet:         "campaign_ids",
	},
	{
		Name:              "deliveries",
		Path:              "/deliveries",
		KeyProperties:     []string{"id"},
		ReplicationMethod: FullTable,
		RecordsPath:       []string{"deliveries"},
		Schema:            deliveriesSchema,
		FilterFieldPath:   []string{"campaign", "id"},
		FilterSet:         "campaign_ids",
	},
	{
		Name:              "responders",
		Path:              "/responders",
		KeyProperties:     []string{"id"},
		ReplicationMethod: FullTable,
		RecordsPath:       []string{"data"},
		Schema:            respondersSchema,
		FilterFieldPath:   []string{"id"},
		FilterSet:         "responder_ids",
	},
	{
		Name:              "buyers",
		Path:              "/buyers",
		KeyProperties:     []string{"company"},
		ReplicationMethod: FullTable,
		RecordsPath:       []string{"buyers"},
		Schema:            buyersSchema,
		FilterFieldPath:   []string{"external_ref"},
		FilterSet:         "buyer_ids",
	},
}

// Lookup returns the stream descriptor for name
func Lookup(name string) (*Stream, bool) {
	for _, s := range All {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Selected resolves a list of stream names to descriptors; an empty list
// selects every stream
func Selected(names []string) ([]*Stream, error) {
	if len(names) == 0 {
		return All, nil
	}

	selected := make([]*Stream, 0, len(names))
	for _, name := range names {
		s, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown stream %q", name)
		}
		selected = append(selected, s)
	}
	return selected, nil
}

// CatalogEntry serializes the descriptor for the catalog file
func (s *Stream) CatalogEntry() models.CatalogEntry {
	return models.CatalogEntry{
		Stream:            s.Name,
		TapStreamID:       s.Name,
		KeyProperties:     s.KeyProperties,
		ReplicationMethod: s.ReplicationMethod,
		ReplicationKey:    s.ReplicationKey,
		Schema:            s.Schema,
	}
}

// flattenReportKeys derives the flattened primary key fields the
// email_reports schema declares from the nested report objects
func flattenReportKeys(record map[string]interface{}) {
	record["campaign_id"] = util.GetValueAtPath([]string{"campaign", "id"}, record)
	record["responder_id"] = util.GetValueAtPath([]string{"responder", "id"}, record)
	record["supplier_id"] = util.GetValueAtPath([]string{"supplier", "id"}, record)
	record["push_id"] = util.GetValueAtPath([]string{"push", "id"}, record)
}
