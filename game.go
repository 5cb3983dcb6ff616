package slate

import (
	"time"

	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/google/uuid"

	"github.com/oriumgames/slate/data"
)

// Game is the root of the platform: the runtime hands one Game to every
// plugin. All other contracts are reached through it.
type Game interface {
	// Platform describes the implementation backing this API.
	Platform() Platform

	// Server returns the game server currently running.
	Server() Server

	// Registry returns the registry of catalog types and builders.
	Registry() *GameRegistry

	// EventManager returns the manager plugins subscribe to events with.
	EventManager() EventManager

	// Scheduler returns the task scheduler of the runtime.
	Scheduler() Scheduler

	// SerializationRegistry returns the registry of data builders used to
	// rebuild typed objects from data views.
	SerializationRegistry() *data.Registry

	// PluginManager returns the manager of loaded plugins.
	PluginManager() PluginManager
}

// Platform describes the runtime implementing this API.
type Platform interface {
	// Name returns the implementation name, e.g. "slate-runtime".
	Name() string

	// Version returns the implementation version.
	Version() string

	// APIVersion returns the version of the Slate API the implementation
	// was built against.
	APIVersion() string

	// MinecraftVersion returns the game version the server accepts.
	MinecraftVersion() string
}

// Server exposes the running game server: its players, worlds and global
// messaging.
type Server interface {
	// Players returns all players currently online.
	Players() []*player.Player

	// Player looks a player up by UUID.
	Player(id uuid.UUID) (*player.Player, bool)

	// PlayerByName looks a player up by their exact name.
	PlayerByName(name string) (*player.Player, bool)

	// Worlds returns all loaded worlds.
	Worlds() []*world.World

	// DefaultWorld returns the world new players spawn into.
	DefaultWorld() *world.World

	// Broadcast sends a message to every online player and the console.
	Broadcast(message string)

	// MaxPlayers returns the player cap, 0 for unlimited.
	MaxPlayers() int

	// MOTD returns the server's message of the day.
	MOTD() string
}

// EventManager dispatches game events to subscribed listeners. Dispatch
// semantics (ordering, re-entrancy) are defined by the runtime.
type EventManager interface {
	// Subscribe registers listener for the events selected by the given
	// filter options. Listener signatures are validated by the runtime.
	Subscribe(listener any, opts ...SubscriptionOption) error

	// Unsubscribe removes every subscription held by listener.
	Unsubscribe(listener any)

	// Post dispatches an event to all matching listeners and reports
	// whether it was cancelled.
	Post(event any, cause Cause) bool
}

// Scheduler runs plugin work on the server's schedule.
type Scheduler interface {
	// Execute runs fn on the next tick.
	Execute(fn func())

	// Delayed runs fn once after the given delay.
	Delayed(fn func(), delay time.Duration) Task

	// Repeating runs fn every interval until the task is cancelled.
	Repeating(fn func(), interval time.Duration) Task
}

// Task is a handle to work submitted to the Scheduler.
type Task interface {
	// Cancel stops the task from running again. Cancelling a finished
	// task is a no-op.
	Cancel()
}

// PluginManager tracks the plugins loaded into the runtime.
type PluginManager interface {
	// Plugin looks a plugin up by ID.
	Plugin(id string) (PluginContainer, bool)

	// Plugins returns all loaded plugins.
	Plugins() []PluginContainer

	// IsLoaded reports whether the plugin with the given ID is loaded.
	IsLoaded(id string) bool
}

// PluginContainer wraps a loaded plugin and its metadata.
type PluginContainer interface {
	// ID returns the unique plugin identifier.
	ID() string

	// Name returns the human-readable plugin name.
	Name() string

	// Version returns the plugin version.
	Version() string

	// Instance returns the plugin instance itself.
	Instance() any
}
