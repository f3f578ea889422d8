package repository

import (
	"os"
	"time"

	"github.com/shopspring/decimal"
)

const (
	companyIDIndex          = "company_id-index"
	workOrderIDIndex        = "work_order_id-index"
	companyPaymentDateIndex = "company_id-data_pagamento-index"
)

// timeKeyFormat is RFC3339 with fixed-width nanoseconds so that the
// lexicographic order of stored strings matches chronological order on
// range keys.
const timeKeyFormat = "2006-01-02T15:04:05.000000000Z07:00"

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func formatTimeKey(t time.Time) string {
	return t.UTC().Format(timeKeyFormat)
}

func parseTimeKey(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatOptionalTimeKey(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTimeKey(*t)
}

func parseOptionalTimeKey(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTimeKey(s)
	return &t
}

func decimalToRecord(d decimal.Decimal) string {
	return d.String()
}

func decimalFromRecord(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func optionalDecimalFromRecord(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d := decimalFromRecord(s)
	return &d
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
