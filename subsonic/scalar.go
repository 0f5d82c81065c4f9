package subsonic

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Millis is a point in time expressed as milliseconds since the Unix epoch.
type Millis int64

// Time returns m as a UTC time. The zero value maps to the zero time.
func (m Millis) Time() time.Time {
	if m == 0 {
		return time.Time{}
	}
	return time.UnixMilli(int64(m)).UTC()
}

var (
	trueSpellings  = []string{"true", "1", "yes"}
	falseSpellings = []string{"false", "0", "no"}
)

// isoLayouts are tried in order for timestamps sent as strings.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NormalizeBool turns a wire boolean (literal, string or integer) into a bool.
func NormalizeBool(field string, v any) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		for _, spelling := range trueSpellings {
			if strings.EqualFold(s, spelling) {
				return true, nil
			}
		}
		for _, spelling := range falseSpellings {
			if strings.EqualFold(s, spelling) {
				return false, nil
			}
		}
	case json.Number:
		if n, ok := integral(t); ok {
			return n != 0, nil
		}
	}
	return false, &MalformedScalar{Field: field, Value: v, Want: "boolean"}
}

// NormalizeTimestamp turns a wire timestamp into epoch milliseconds. Numbers and
// numeric strings are taken as milliseconds; other strings must be ISO-8601.
// A null token yields nil.
func NormalizeTimestamp(field string, v any) (*int64, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case json.Number:
		if n, ok := integral(t); ok {
			return &n, nil
		}
	case string:
		s := strings.TrimSpace(t)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return &n, nil
		}
		for _, layout := range isoLayouts {
			ts, err := time.ParseInLocation(layout, s, time.UTC)
			if err == nil {
				ms := ts.UTC().UnixMilli()
				return &ms, nil
			}
		}
	}
	return nil, &MalformedScalar{Field: field, Value: v, Want: "timestamp"}
}

// MillisToTime converts epoch milliseconds into a time. Nil and zero mean
// "no value" and yield nil.
func MillisToTime(ms *int64) *time.Time {
	if ms == nil || *ms == 0 {
		return nil
	}
	t := time.UnixMilli(*ms).UTC()
	return &t
}

// integral reports n as an int64 when it holds a whole number.
func integral(n json.Number) (int64, bool) {
	if i, err := n.Int64(); err == nil {
		return i, true
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}
