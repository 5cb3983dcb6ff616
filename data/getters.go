package data

import "reflect"

// Typed scalar getters. Each delegates to a best-effort coercion of the
// stored raw value and reports absence on failure rather than erroring.

// GetBool returns the value at q coerced to a bool.
func (v *View) GetBool(q Query) (bool, bool) {
	val, ok := v.Get(q)
	if !ok {
		return false, false
	}
	return coerceBool(val)
}

// GetInt returns the value at q coerced to an int.
func (v *View) GetInt(q Query) (int, bool) {
	val, ok := v.Get(q)
	if !ok {
		return 0, false
	}
	return coerceInt(val)
}

// GetInt64 returns the value at q coerced to an int64.
func (v *View) GetInt64(q Query) (int64, bool) {
	val, ok := v.Get(q)
	if !ok {
		return 0, false
	}
	return coerceInt64(val)
}

// GetFloat64 returns the value at q coerced to a float64.
func (v *View) GetFloat64(q Query) (float64, bool) {
	val, ok := v.Get(q)
	if !ok {
		return 0, false
	}
	return coerceFloat64(val)
}

// GetString returns the value at q coerced to a string.
func (v *View) GetString(q Query) (string, bool) {
	val, ok := v.Get(q)
	if !ok {
		return "", false
	}
	return coerceString(val)
}

// rawList returns the list-or-array value at q as []any. Any slice kind
// qualifies; scalars and views do not.
func (v *View) rawList(q Query) ([]any, bool) {
	val, ok := v.Get(q)
	if !ok {
		return nil, false
	}
	if list, ok := val.([]any); ok {
		return list, true
	}
	rv := reflect.ValueOf(val)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// GetList returns a copy of the list stored at q, reporting absence unless
// the value is a list or array.
func (v *View) GetList(q Query) ([]any, bool) {
	return v.rawList(q)
}

// coerceList coerces a stored list element-wise. Elements that fail
// coercion are silently dropped rather than aborting the whole read; this
// best-effort policy is deliberate.
func coerceList[T any](v *View, q Query, coerce func(any) (T, bool)) ([]T, bool) {
	list, ok := v.rawList(q)
	if !ok {
		return nil, false
	}
	out := make([]T, 0, len(list))
	for _, el := range list {
		if t, ok := coerce(el); ok {
			out = append(out, t)
		}
	}
	return out, true
}

// GetStringList returns the list at q with every element coerced to a
// string.
func (v *View) GetStringList(q Query) ([]string, bool) {
	return coerceList(v, q, coerceString)
}

// GetBoolList returns the list at q with every element coerced to a bool.
func (v *View) GetBoolList(q Query) ([]bool, bool) {
	return coerceList(v, q, coerceBool)
}

// GetByteList returns the list at q with every element coerced to a byte.
func (v *View) GetByteList(q Query) ([]byte, bool) {
	return coerceList(v, q, coerceByte)
}

// GetInt16List returns the list at q with every element coerced to an
// int16.
func (v *View) GetInt16List(q Query) ([]int16, bool) {
	return coerceList(v, q, coerceInt16)
}

// GetIntList returns the list at q with every element coerced to an int.
func (v *View) GetIntList(q Query) ([]int, bool) {
	return coerceList(v, q, coerceInt)
}

// GetInt64List returns the list at q with every element coerced to an
// int64.
func (v *View) GetInt64List(q Query) ([]int64, bool) {
	return coerceList(v, q, coerceInt64)
}

// GetFloat32List returns the list at q with every element coerced to a
// float32.
func (v *View) GetFloat32List(q Query) ([]float32, bool) {
	return coerceList(v, q, coerceFloat32)
}

// GetFloat64List returns the list at q with every element coerced to a
// float64.
func (v *View) GetFloat64List(q Query) ([]float64, bool) {
	return coerceList(v, q, coerceFloat64)
}

// GetRuneList returns the list at q with every element coerced to a rune.
func (v *View) GetRuneList(q Query) ([]rune, bool) {
	return coerceList(v, q, coerceRune)
}

// GetMapList returns the map-typed elements of the list at q; elements of
// any other kind are dropped.
func (v *View) GetMapList(q Query) ([]map[string]any, bool) {
	return coerceList(v, q, func(el any) (map[string]any, bool) {
		m, ok := el.(map[string]any)
		return m, ok
	})
}

// GetViewList returns the view-typed elements of the list at q; elements
// of any other kind are dropped.
func (v *View) GetViewList(q Query) ([]*View, bool) {
	return coerceList(v, q, func(el any) (*View, bool) {
		view, ok := el.(*View)
		return view, ok
	})
}
