// Package slate defines the plugin platform API for Dragonfly servers.
//
// Slate is a contract layer: it declares the shape of the game, its
// registries, events, scoreboards, recipes, particles and world-generation
// concepts that a separate runtime implements. The package carries almost
// no executable logic of its own; the exception is the data subpackage, a
// hierarchical path-addressed document model used for serializing
// structured game state.
//
// # Quick Start
//
// Plugins receive a Game from the runtime and work against its contracts:
//
//	func Enable(g slate.Game) {
//	    g.EventManager().Subscribe(onChat,
//	        slate.IncludeEvent[*slate.EventChat](),
//	        slate.ReceiveCancelled(false))
//
//	    team, _ := slate.CreateBuilder[slate.TeamBuilder](g.Registry())
//	    team.Name("red").Color(slate.TextColorRed).Build()
//	}
//
// # Game Data
//
// Structured state lives in data containers:
//
//	c := data.NewContainer()
//	c.Set(data.NewQuery("stats", "kills"), 12)
//	kills, ok := c.GetInt(data.ParseQuery("stats.kills"))
//
// Any type implementing data.Serializable can be stored directly and
// rebuilt through the game's serialization registry.
//
// # Catalog Types
//
// Named game values (display slots, plant types, criteria) implement
// CatalogType and are looked up through the GameRegistry:
//
//	slot, ok := slate.GetType[slate.DisplaySlot](g.Registry(), "sidebar")
//	all := slate.AllOf[slate.Criterion](g.Registry())
package slate

// Version is the Slate API version.
const Version = "1.0.0"
