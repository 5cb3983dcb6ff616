// Package data provides a hierarchical, path-addressed document model for
// structured game state such as player data, plugin configuration and
// NBT-like trees.
//
// The central type is View: one level of a document tree holding an ordered
// mapping from string keys to values. Values may be scalars, lists, plain
// maps or nested views. Views are addressed by a Query, a dotted path that
// may traverse several levels in a single call:
//
//	c := data.NewContainer()
//	c.Set(data.NewQuery("player", "stats", "kills"), 12)
//	kills, ok := c.GetInt(data.ParseQuery("player.stats.kills"))
//
// Writing through a path that does not yet exist creates the intermediate
// views automatically. Reading or removing through a missing path is never
// an error: reads report absence and removes are no-ops.
//
// A View performs no encoding itself; its structural shape matches
// JSON-like and NBT-like nested-map formats. MarshalYAML and UnmarshalYAML
// translate whole containers to and from YAML documents.
//
// Views are not safe for concurrent use. A container shared across
// goroutines must be serialized by the caller.
package data
