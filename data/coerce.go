package data

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Coercion converts a stored raw value to a requested scalar type on a
// best-effort basis: numeric kinds widen or truncate, strings are parsed,
// and anything unconvertible reports absence instead of an error. Narrow
// integer targets (byte, int16, rune) truncate out-of-range values the
// same way a Go conversion does.

func coerceBool(val any) (bool, bool) {
	switch t := val.(type) {
	case bool:
		return t, true
	case string:
		switch strings.ToLower(t) {
		case "true", "yes", "y", "t", "1":
			return true, true
		case "false", "no", "n", "f", "0":
			return false, true
		}
		return false, false
	}
	if f, ok := coerceFloat64(val); ok {
		return f != 0, true
	}
	return false, false
}

func coerceInt64(val any) (int64, bool) {
	switch t := val.(type) {
	case int:
		return int64(t), true
	case int8:
		return int64(t), true
	case int16:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case uint:
		return int64(t), true
	case uint8:
		return int64(t), true
	case uint16:
		return int64(t), true
	case uint32:
		return int64(t), true
	case uint64:
		return int64(t), true
	case float32:
		return int64(t), true
	case float64:
		return int64(t), true
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64); err == nil {
			return i, true
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return int64(f), true
		}
	}
	return 0, false
}

func coerceInt(val any) (int, bool) {
	i, ok := coerceInt64(val)
	return int(i), ok
}

func coerceFloat64(val any) (float64, bool) {
	switch t := val.(type) {
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

func coerceFloat32(val any) (float32, bool) {
	f, ok := coerceFloat64(val)
	return float32(f), ok
}

func coerceString(val any) (string, bool) {
	switch t := val.(type) {
	case string:
		return t, true
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprint(t), true
	}
	return "", false
}

func coerceRune(val any) (rune, bool) {
	if s, ok := val.(string); ok {
		if s == "" {
			return 0, false
		}
		r, _ := utf8.DecodeRuneInString(s)
		return r, true
	}
	i, ok := coerceInt64(val)
	return rune(i), ok
}

func coerceByte(val any) (byte, bool) {
	i, ok := coerceInt64(val)
	return byte(i), ok
}

func coerceInt16(val any) (int16, bool) {
	i, ok := coerceInt64(val)
	return int16(i), ok
}
