package data

import (
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// View is one level of a hierarchical document tree. It holds an ordered
// mapping from single-segment string keys to values, where a value may be
// a scalar, a list, a plain map or a nested *View.
//
// Views hang off a single root Container. Every view knows its parent, its
// container and the absolute query from the root to itself; these links
// are navigation only and never change after creation.
type View struct {
	parent    *View
	container *Container
	path      Query

	// keys preserves insertion order for iteration and serialization.
	// Re-setting an existing key keeps its original position.
	keys   []string
	values map[string]any
}

// Container is the root view of a document tree. It owns the identity
// shared by all of its descendants: every view in a tree reports the same
// container, the container's path is empty and its parent is itself.
type Container = View

// NewContainer creates an empty root container.
func NewContainer() *Container {
	c := &View{values: make(map[string]any)}
	c.parent = c
	c.container = c
	return c
}

// newChild materializes the view stored under key. The child's path is the
// parent's path extended by that single segment.
func (v *View) newChild(key string) *View {
	return &View{
		parent:    v,
		container: v.container,
		path:      v.path.Then(NewQuery(key)),
		values:    make(map[string]any),
	}
}

// Container returns the root of the tree this view belongs to.
func (v *View) Container() *Container {
	return v.container
}

// Parent returns the owning view, or the view itself for the root.
func (v *View) Parent() *View {
	return v.parent
}

// Path returns the absolute query from the root container to this view.
// It is empty for the root.
func (v *View) Path() Query {
	return v.path
}

// Name returns the key this view is stored under in its parent, "" for
// the root.
func (v *View) Name() string {
	return v.path.Last()
}

func (v *View) put(key string, value any) {
	if _, ok := v.values[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.values[key] = value
}

func (v *View) delete(key string) {
	if _, ok := v.values[key]; !ok {
		return
	}
	delete(v.values, key)
	if i := slices.Index(v.keys, key); i >= 0 {
		v.keys = slices.Delete(v.keys, i, i+1)
	}
}

// owner resolves every part but the last, returning the view that owns the
// final segment. With create set, missing or non-view intermediate values
// are replaced by fresh child views; without it, resolution fails softly at
// the first gap. Single shared traversal for all public operations.
func (v *View) owner(parts []string, create bool) (*View, bool) {
	cur := v
	for _, part := range parts[:len(parts)-1] {
		child, ok := cur.values[part].(*View)
		if !ok {
			if !create {
				return nil, false
			}
			child = cur.newChild(part)
			cur.put(part, child)
		}
		cur = child
	}
	return cur, true
}

// Contains reports whether a value, including a nested view, is present at
// the exact path q. The zero query resolves to the view itself.
func (v *View) Contains(q Query) bool {
	parts := q.Parts()
	if len(parts) == 0 {
		return true
	}
	own, ok := v.owner(parts, false)
	if !ok {
		return false
	}
	_, ok = own.values[parts[len(parts)-1]]
	return ok
}

// ContainsAll reports whether every query is present, failing fast on the
// first missing one.
func (v *View) ContainsAll(qs ...Query) bool {
	for _, q := range qs {
		if !v.Contains(q) {
			return false
		}
	}
	return true
}

// Get returns the value stored at q. Slice-typed values are returned as
// independent copies so stored data can never be mutated through a read.
// The zero query returns the view itself.
func (v *View) Get(q Query) (any, bool) {
	parts := q.Parts()
	if len(parts) == 0 {
		return v, true
	}
	own, ok := v.owner(parts, false)
	if !ok {
		return nil, false
	}
	val, ok := own.values[parts[len(parts)-1]]
	if !ok {
		return nil, false
	}
	return copySliceValue(val), true
}

// GetView returns the nested view at q, reporting absence if the value is
// missing or not a view.
func (v *View) GetView(q Query) (*View, bool) {
	val, ok := v.Get(q)
	if !ok {
		return nil, false
	}
	view, ok := val.(*View)
	if !ok {
		return nil, false
	}
	return view, true
}

// Set writes value at q, creating any missing intermediate views along the
// path. Views and Serializables are deep-copied key by key into the
// destination; lists are normalized recursively so the stored tree never
// aliases the caller's containers; maps become nested views with keys
// coerced to strings; slices are defensively copied. Everything else is
// stored as-is.
func (v *View) Set(q Query, value any) error {
	if value == nil {
		return ErrNilValue
	}
	parts := q.Parts()
	if len(parts) == 0 {
		return ErrEmptyQuery
	}

	switch val := value.(type) {
	case *View:
		if val == v || val == v.container {
			return ErrSelfReference
		}
		return v.copyViewInto(q, val)
	case Serializable:
		c := val.ToContainer()
		if c == nil {
			return ErrNilValue
		}
		if c == v.container || c.Equal(v) {
			return ErrSelfReference
		}
		return v.copyViewInto(q, c)
	}

	own, _ := v.owner(parts, true)
	key := parts[len(parts)-1]

	switch val := value.(type) {
	case []any:
		list, err := normalizeList(val)
		if err != nil {
			return err
		}
		own.put(key, list)
	case []byte:
		own.put(key, slices.Clone(val))
	case []int16:
		own.put(key, slices.Clone(val))
	case []int32:
		own.put(key, slices.Clone(val))
	case []int:
		own.put(key, slices.Clone(val))
	case []int64:
		own.put(key, slices.Clone(val))
	case []float32:
		own.put(key, slices.Clone(val))
	case []float64:
		own.put(key, slices.Clone(val))
	case []bool:
		own.put(key, slices.Clone(val))
	case []string:
		own.put(key, slices.Clone(val))
	default:
		if rv := reflect.ValueOf(value); rv.Kind() == reflect.Map {
			return own.setMap(key, rv)
		}
		own.put(key, value)
	}
	return nil
}

// setMap creates a child view under key and sets every map entry into it.
// Entries are applied in sorted key order so the resulting layout is
// deterministic regardless of map iteration order.
func (v *View) setMap(key string, rv reflect.Value) error {
	sub, err := v.CreateView(NewQuery(key))
	if err != nil {
		return err
	}
	for _, k := range sortedMapKeys(rv) {
		if err := sub.Set(NewQuery(k.name), rv.MapIndex(k.value).Interface()); err != nil {
			return err
		}
	}
	return nil
}

type mapKey struct {
	name  string
	value reflect.Value
}

func sortedMapKeys(rv reflect.Value) []mapKey {
	keys := make([]mapKey, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, mapKey{name: fmt.Sprint(k.Interface()), value: k})
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].name < keys[j].name })
	return keys
}

// copyViewInto deep-copies the subtree rooted at src to q. The destination
// view is created even when src is empty. The source is snapshotted before
// the destination exists: when q lies inside src, copying directly would
// feed the copy its own output and never terminate.
func (v *View) copyViewInto(q Query, src *View) error {
	snap := src.Copy()
	dst, err := v.CreateView(q)
	if err != nil {
		return err
	}
	return copyInto(dst, snap)
}

func copyInto(dst, src *View) error {
	for _, key := range slices.Clone(src.keys) {
		val := src.values[key]
		if child, ok := val.(*View); ok {
			sub, err := dst.CreateView(NewQuery(key))
			if err != nil {
				return err
			}
			if err := copyInto(sub, child); err != nil {
				return err
			}
			continue
		}
		if err := dst.Set(NewQuery(key), copySliceValue(val)); err != nil {
			return err
		}
	}
	return nil
}

// normalizeList converts every element of a list into its stored
// representation: serializables decompose into containers, views are
// copied into fresh containers, maps and nested lists are rebuilt so the
// stored list never retains the caller's mutable containers.
func normalizeList(list []any) ([]any, error) {
	out := make([]any, 0, len(list))
	for _, el := range list {
		norm, err := normalizeElement(el)
		if err != nil {
			return nil, err
		}
		out = append(out, norm)
	}
	return out, nil
}

func normalizeElement(el any) (any, error) {
	switch t := el.(type) {
	case nil:
		return nil, ErrNilValue
	case *View:
		c := NewContainer()
		if err := copyInto(c, t); err != nil {
			return nil, err
		}
		return c, nil
	case Serializable:
		c := t.ToContainer()
		if c == nil {
			return nil, ErrNilValue
		}
		return c, nil
	case []any:
		return normalizeList(t)
	}
	if rv := reflect.ValueOf(el); rv.Kind() == reflect.Map {
		return normalizeMap(rv)
	}
	return copySliceValue(el), nil
}

// normalizeMap rebuilds a map value as a plain map[string]any with keys
// coerced to strings. Map elements inside lists stay maps rather than
// becoming views.
func normalizeMap(rv reflect.Value) (map[string]any, error) {
	out := make(map[string]any, rv.Len())
	for _, k := range sortedMapKeys(rv) {
		norm, err := normalizeElement(rv.MapIndex(k.value).Interface())
		if err != nil {
			return nil, err
		}
		out[k.name] = norm
	}
	return out, nil
}

// Remove detaches the value stored at q. Removing through a missing
// intermediate view, or a key that was never set, is a silent no-op.
func (v *View) Remove(q Query) {
	parts := q.Parts()
	if len(parts) == 0 {
		return
	}
	own, ok := v.owner(parts, false)
	if !ok {
		return
	}
	own.delete(parts[len(parts)-1])
}

// CreateView ensures the full chain of views for q exists, creating any
// missing levels, and returns the view at the terminal path. An existing
// view at the terminal path is returned as-is with its children intact; a
// non-view value there is replaced.
func (v *View) CreateView(q Query) (*View, error) {
	parts := q.Parts()
	if len(parts) == 0 {
		return nil, ErrEmptyQuery
	}
	own, _ := v.owner(parts, true)
	key := parts[len(parts)-1]
	if child, ok := own.values[key].(*View); ok {
		return child, nil
	}
	child := own.newChild(key)
	own.put(key, child)
	return child, nil
}

// CreateViewFromMap creates the view at q and populates it recursively
// from m, turning nested maps into nested views.
func (v *View) CreateViewFromMap(q Query, m map[string]any) (*View, error) {
	section, err := v.CreateView(q)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if sub, ok := m[k].(map[string]any); ok {
			if _, err := section.CreateViewFromMap(NewQuery(k), sub); err != nil {
				return nil, err
			}
			continue
		}
		if err := section.Set(NewQuery(k), m[k]); err != nil {
			return nil, err
		}
	}
	return section, nil
}

// Keys returns the keys of this view as queries. With deep set it also
// recurses into every nested view, producing a compound query for each
// descendant. Order is the insertion order of the traversal: all immediate
// keys first, then the descendants of each view-valued key.
func (v *View) Keys(deep bool) []Query {
	out := make([]Query, 0, len(v.keys))
	for _, k := range v.keys {
		out = append(out, NewQuery(k))
	}
	if deep {
		for _, k := range v.keys {
			child, ok := v.values[k].(*View)
			if !ok {
				continue
			}
			for _, sub := range child.Keys(true) {
				out = append(out, NewQuery(k).Then(sub))
			}
		}
	}
	return out
}

// Values pairs every key from Keys(deep) with its resolved value. With
// deep set, nested views are expanded into nested maps so the result is a
// plain, serialization-ready tree.
func (v *View) Values(deep bool) map[Query]any {
	out := make(map[Query]any, len(v.keys))
	for _, q := range v.Keys(deep) {
		val, ok := v.Get(q)
		if !ok {
			continue
		}
		if child, isView := val.(*View); isView && deep {
			out[q] = child.Values(true)
			continue
		}
		out[q] = val
	}
	return out
}

// GetMap returns the value at q as a plain map[string]any, recursively
// flattening nested views, maps and lists into serialization-ready
// containers. It reports absence unless the value is a view or a map.
func (v *View) GetMap(q Query) (map[string]any, bool) {
	val, ok := v.Get(q)
	if !ok {
		return nil, false
	}
	switch t := val.(type) {
	case *View:
		return plainMapOf(t), true
	}
	if rv := reflect.ValueOf(val); rv.Kind() == reflect.Map {
		out := make(map[string]any, rv.Len())
		for _, k := range sortedMapKeys(rv) {
			out[k.name] = ensureMapping(rv.MapIndex(k.value).Interface())
		}
		return out, true
	}
	return nil, false
}

func plainMapOf(v *View) map[string]any {
	out := make(map[string]any, len(v.keys))
	for _, k := range v.keys {
		out[k] = ensureMapping(v.values[k])
	}
	return out
}

func ensureMapping(val any) any {
	switch t := val.(type) {
	case *View:
		return plainMapOf(t)
	case []any:
		out := make([]any, 0, len(t))
		for _, el := range t {
			out = append(out, ensureMapping(el))
		}
		return out
	}
	if rv := reflect.ValueOf(val); rv.Kind() == reflect.Map {
		out := make(map[string]any, rv.Len())
		for _, k := range sortedMapKeys(rv) {
			out[k.name] = ensureMapping(rv.MapIndex(k.value).Interface())
		}
		return out
	}
	return copySliceValue(val)
}

// Copy produces an independent root container holding a value-identical
// copy of this view's contents. Mutating either tree never affects the
// other.
func (v *View) Copy() *Container {
	c := NewContainer()
	// The source invariants guarantee copyInto cannot fail here.
	_ = copyInto(c, v)
	return c
}

// Equal reports structural equality: two views are equal iff their entry
// sets are equal and their paths are equal. Entry order does not
// participate.
func (v *View) Equal(o *View) bool {
	if v == o {
		return true
	}
	if v == nil || o == nil {
		return false
	}
	if v.path != o.path || len(v.values) != len(o.values) {
		return false
	}
	for k, val := range v.values {
		oval, ok := o.values[k]
		if !ok || !valueEqual(val, oval) {
			return false
		}
	}
	return true
}

func valueEqual(a, b any) bool {
	if av, ok := a.(*View); ok {
		bv, ok := b.(*View)
		return ok && av.Equal(bv)
	}
	if as, ok := a.([]any); ok {
		bs, ok := b.([]any)
		if !ok || len(as) != len(bs) {
			return false
		}
		for i := range as {
			if !valueEqual(as[i], bs[i]) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}

// Hash returns a digest consistent with Equal, combining the entry set and
// the path. Entries are summed so the digest is independent of insertion
// order, matching Equal.
func (v *View) Hash() uint64 {
	var h uint64
	for k, val := range v.values {
		h += xxhash.Sum64String(k + "=" + canonicalString(val))
	}
	return h ^ xxhash.Sum64String(v.path.String())
}

func canonicalString(val any) string {
	switch t := val.(type) {
	case *View:
		return strconv.FormatUint(t.Hash(), 16)
	case []any:
		parts := make([]string, 0, len(t))
		for _, el := range t {
			parts = append(parts, canonicalString(el))
		}
		return "[" + strings.Join(parts, ",") + "]"
	}
	return fmt.Sprintf("%T/%v", val, val)
}

// String returns a debug form including the path, when non-empty, and the
// map contents in insertion order.
func (v *View) String() string {
	var b strings.Builder
	b.WriteString("View{")
	if !v.path.Empty() {
		fmt.Fprintf(&b, "path=%s, ", v.path)
	}
	b.WriteString("map={")
	for i, k := range v.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", k, v.values[k])
	}
	b.WriteString("}}")
	return b.String()
}

// copySliceValue clones slice-typed values by their runtime element kind
// so stored arrays are never aliased between the tree and its callers.
// Non-slice values pass through unchanged.
func copySliceValue(val any) any {
	switch t := val.(type) {
	case []byte:
		return slices.Clone(t)
	case []int16:
		return slices.Clone(t)
	case []int32:
		return slices.Clone(t)
	case []int:
		return slices.Clone(t)
	case []int64:
		return slices.Clone(t)
	case []float32:
		return slices.Clone(t)
	case []float64:
		return slices.Clone(t)
	case []bool:
		return slices.Clone(t)
	case []string:
		return slices.Clone(t)
	case []any:
		return slices.Clone(t)
	}
	return val
}
