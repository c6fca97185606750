package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInt converts various types to int using explicit type switching.
// It handles standard integer types, floats, strings, and byte slices.
// Values that cannot be read as an integer yield 0.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case uint:
		return int(v)
	case uint64:
		return int(v)
	case uint32:
		return int(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
			return 0
		}
		return int(v)
	case float32:
		return ToInt(float64(v))
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(v))
		return i
	case []byte:
		return ToInt(string(v))
	case fmt.Stringer:
		return ToInt(v.String())
	default:
		return 0
	}
}

// ToBool converts various types to bool.
// It handles bool, numeric types (1=true), and strings ("1", "true").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int, int64, int32, uint, uint64, uint32, float64:
		return ToInt(v) == 1
	case string:
		return v == "1" || strings.ToLower(v) == "true"
	case []byte:
		return ToBool(string(v))
	default:
		return false
	}
}

// ToAppID reads a game id from a loosely typed value: a number, a numeric
// string, or an object carrying an "appid" field. ok is false for anything
// that is not a positive integer.
func ToAppID(val any) (string, bool) {
	switch v := val.(type) {
	case map[string]any:
		inner, found := v["appid"]
		if !found {
			return "", false
		}
		return ToAppID(inner)
	case nil, bool:
		return "", false
	}
	id := ToInt(val)
	if id <= 0 {
		return "", false
	}
	return strconv.Itoa(id), true
}

// AppIDs parses a loosely typed list into unique positive game ids, keeping first-seen order.
func AppIDs(values []any) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, val := range values {
		id, ok := ToAppID(val)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
