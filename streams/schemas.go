package streams

// Declared JSON schemas for the 12 LeadByte resources. Field sets and
// types follow the REST API reference; every report schema carries the
// date period field used as the replication key.

func schema(properties map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
}

func typ(t string) map[string]interface{} {
	return map[string]interface{}{"type": []interface{}{t, "null"}}
}

func object(properties map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"type":       []interface{}{"object", "null"},
		"properties": properties,
	}
}

func array(items map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"type":  []interface{}{"array", "null"},
		"items": items,
	}
}

func campaignRef(idType string) map[string]interface{} {
	return object(map[string]interface{}{
		"id":        typ(idType),
		"name":      typ("string"),
		"reference": typ("string"),
	})
}

func supplierRef(idType string) map[string]interface{} {
	return object(map[string]interface{}{
		"id":   typ(idType),
		"name": typ("string"),
		"sid":  typ("string"),
	})
}

func responderRef() map[string]interface{} {
	return object(map[string]interface{}{
		"id":        typ("integer"),
		"reference": typ("string"),
	})
}

func advertiserRef() map[string]interface{} {
	return object(map[string]interface{}{
		"id":   typ("integer"),
		"name": typ("string"),
	})
}

var emailReportsSchema = schema(map[string]interface{}{
	"date":      typ("string"),
	"campaign":  campaignRef("integer"),
	"responder": responderRef(),
	"supplier":  supplierRef("integer"),
	"push": object(map[string]interface{}{
		"id":   typ("integer"),
		"name": typ("string"),
	}),
	"advertiser":   advertiserRef(),
	"sent":         typ("string"),
	"delivered":    typ("string"),
	"opened":       typ("string"),
	"clicks":       typ("string"),
	"conversions":  typ("string"),
	"bounced":      typ("string"),
	"unsubscribed": typ("string"),
	"cost":         typ("string"),
	"revenue":      typ("string"),
	"profit":       typ("string"),
	"currency":     typ("string"),

	// flattened key fields derived from the nested objects
	"campaign_id":  typ("integer"),
	"responder_id": typ("integer"),
	"supplier_id":  typ("integer"),
	"push_id":      typ("integer"),
})

var smsReportsSchema = schema(map[string]interface{}{
	"date":      typ("string"),
	"campaign":  campaignRef("integer"),
	"responder": responderRef(),
	"supplier":  supplierRef("integer"),
	"push": object(map[string]interface{}{
		"id":       typ("integer"),
		"name":     typ("string"),
		"redirect": typ("string"),
	}),
	"advertiser":  advertiserRef(),
	"sent":        typ("string"),
	"pending":     typ("string"),
	"undelivered": typ("string"),
	"delivered":   typ("string"),
	"clicks":      typ("string"),
	"conversions": typ("string"),
	"cost":        typ("string"),
	"revenue":     typ("string"),
	"profit":      typ("string"),
	"currency":    typ("string"),
})

var bulkEmailReportsSchema = schema(map[string]interface{}{
	"date":      typ("string"),
	"campaign":  campaignRef("integer"),
	"responder": responderRef(),
	"supplier":  supplierRef("integer"),
	"push": object(map[string]interface{}{
		"id":   typ("integer"),
		"name": typ("string"),
	}),
	"advertiser":   advertiserRef(),
	"sent":         typ("string"),
	"delivered":    typ("string"),
	"opened":       typ("string"),
	"clicks":       typ("string"),
	"conversions":  typ("string"),
	"bounced":      typ("string"),
	"unsubscribed": typ("string"),
	"cost":         typ("string"),
	"revenue":      typ("string"),
	"profit":       typ("string"),
	"currency":     typ("string"),
})

var bulkSmsReportsSchema = schema(map[string]interface{}{
	"date":      typ("string"),
	"campaign":  campaignRef("integer"),
	"responder": responderRef(),
	"supplier":  supplierRef("integer"),
	"push": object(map[string]interface{}{
		"id":       typ("integer"),
		"name":     typ("string"),
		"redirect": typ("string"),
	}),
	"advertiser":  advertiserRef(),
	"sent":        typ("string"),
	"pending":     typ("string"),
	"undelivered": typ("string"),
	"delivered":   typ("string"),
	"clicks":      typ("string"),
	"conversions": typ("string"),
	"cost":        typ("string"),
	"revenue":     typ("string"),
	"profit":      typ("string"),
	"currency":    typ("string"),
})

var supplierReportsSchema = schema(map[string]interface{}{
	"date":            typ("string"),
	"campaign":        campaignRef("string"),
	"supplier":        supplierRef("string"),
	"leads":           typ("integer"),
	"valid":           typ("integer"),
	"invalid":         typ("integer"),
	"validCR":         typ("number"),
	"pending":         typ("integer"),
	"rejected":        typ("integer"),
	"payable":         typ("integer"),
	"sold":            typ("integer"),
	"returns":         typ("integer"),
	"payableCR":       typ("number"),
	"payout":          typ("number"),
	"emailCost":       typ("number"),
	"smsCost":         typ("number"),
	"validationCost":  typ("number"),
	"revenue":         typ("number"),
	"profit":          typ("number"),
	"eCPL":            typ("number"),
	"eRPL":            typ("number"),
	"payoutAdjusted":  typ("number"),
	"revenueAdjusted": typ("number"),
	"profitAdjusted":  typ("number"),
	"eCPLAdjusted":    typ("number"),
	"eRPLAdjusted":    typ("number"),
	"currency":        typ("string"),
})

var buyerReportsSchema = schema(map[string]interface{}{
	"date":     typ("string"),
	"campaign": campaignRef("string"),
	"supplier": supplierRef("string"),
	"buyer": object(map[string]interface{}{
		"id":   typ("string"),
		"name": typ("string"),
		"bid":  typ("string"),
	}),
	"posted":          typ("integer"),
	"accepted":        typ("integer"),
	"sold":            typ("integer"),
	"rejected":        typ("integer"),
	"approvedCR":      typ("number"),
	"returned":        typ("integer"),
	"returnedPercent": typ("number"),
	"revenue":         typ("number"),
	"RPL":             typ("number"),
	"RPS":             typ("number"),
	"currency":        typ("string"),
})

var campaignReportsSchema = schema(map[string]interface{}{
	"campaign":       campaignRef("string"),
	"supplier":       supplierRef("string"),
	"date":           typ("string"),
	"leads":          typ("integer"),
	"valid":          typ("integer"),
	"invalid":        typ("integer"),
	"pending":        typ("integer"),
	"rejections":     typ("integer"),
	"payable":        typ("integer"),
	"sold":           typ("integer"),
	"returns":        typ("integer"),
	"payout":         typ("number"),
	"emailCost":      typ("number"),
	"smsCost":        typ("number"),
	"validationCost": typ("number"),
	"revenue":        typ("number"),
	"profit":         typ("number"),
	"currency":       typ("string"),
})

var leadActivityReportsSchema = schema(map[string]interface{}{
	"campaign": campaignRef("integer"),
	"supplier": supplierRef("string"),
	"date":     typ("string"),
	"count":    typ("integer"),
})

var campaignsSchema = schema(map[string]interface{}{
	"id":          typ("string"),
	"name":        typ("string"),
	"reference":   typ("string"),
	"description": typ("string"),
	"currency":    typ("string"),
	"country":     typ("string"),
	"sms_field":   typ("string"),
	"active":      typ("string"),
	"sup_visible": typ("string"),
	"archived":    typ("string"),
})

var deliveriesSchema = schema(map[string]interface{}{
	"id":            typ("string"),
	"reference":     typ("string"),
	"status":        typ("string"),
	"campaign":      campaignRef("string"),
	"deliver_to":    typ("string"),
	"remote_system": object(map[string]interface{}{}),
})

var respondersSchema = schema(map[string]interface{}{
	"id":        typ("string"),
	"reference": typ("string"),
	"status":    typ("string"),
	"campaign":  campaignRef("string"),
	"suppression": object(map[string]interface{}{
		"id":        typ("string"),
		"name":      typ("string"),
		"reference": typ("string"),
	}),
	"supplier":   typ("string"),
	"pause_from": typ("string"),
	"pause_to":   typ("string"),
	"pushes": array(object(map[string]interface{}{
		"push_id":            typ("string"),
		"name":               typ("string"),
		"type":               typ("string"),
		"advertiser":         typ("string"),
		"marketing_category": typ("string"),
		"sent":               typ("string"),
		"pending":            typ("integer"),
		"undelivered":        typ("integer"),
		"delivered":          typ("integer"),
		"opened":             typ("string"),
		"clicks":             typ("string"),
		"conversions":        typ("string"),
		"bounced":            typ("string"),
		"unsubscribed":       typ("string"),
		"cost":               typ("string"),
		"revenue":            typ("string"),
		"profit":             typ("number"),
		"currency":           typ("string"),
		"active":             typ("string"),
		"link":               typ("string"),
	})),
})

var buyersSchema = schema(map[string]interface{}{
	"company":        typ("string"),
	"street1":        typ("string"),
	"towncity":       typ("string"),
	"county":         typ("string"),
	"country":        typ("string"),
	"postcode":       typ("string"),
	"phone":          typ("string"),
	"external_ref":   typ("string"),
	"external_ref_2": typ("string"),
	"status":         typ("string"),
	"credit_amount":  typ("string"),
	"credit_balance": typ("string"),
})
