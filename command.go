package slate

import (
	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/player"
)

// MessageSink receives messages produced while executing a command.
type MessageSink interface {
	// SendMessage delivers a message to the sink.
	SendMessage(message string)
}

// CommandSource is the origin of a command invocation: a player, the
// console, or a command block.
type CommandSource interface {
	MessageSink

	// Name returns the display name of the source.
	Name() string

	// HasPermission reports whether the source holds the given permission
	// node.
	HasPermission(node string) bool
}

// CommandManager registers commands with the runtime and routes their
// execution.
type CommandManager interface {
	// Register makes the command available under the given aliases. The
	// first alias is the primary name.
	Register(owner PluginContainer, command Command, aliases ...string) error

	// Get looks a registered command up by alias.
	Get(alias string) (Command, bool)

	// Process parses and runs a raw command line on behalf of source.
	Process(source CommandSource, line string) error
}

// Command is a command callable by a CommandSource.
type Command interface {
	// Execute runs the command with the already-split arguments.
	Execute(source CommandSource, args []string) error

	// Description returns a short help line for the command.
	Description() string

	// Usage returns the usage string shown on malformed input.
	Usage() string
}

// PlayerSource adapts a dragonfly player to a CommandSource.
type PlayerSource struct {
	p *player.Player
}

// NewPlayerSource wraps p as a CommandSource.
func NewPlayerSource(p *player.Player) *PlayerSource {
	return &PlayerSource{p: p}
}

// Player returns the wrapped player.
func (s *PlayerSource) Player() *player.Player {
	return s.p
}

// Name returns the player's name.
func (s *PlayerSource) Name() string {
	return s.p.Name()
}

// SendMessage forwards a message to the player's chat.
func (s *PlayerSource) SendMessage(message string) {
	s.p.Message(message)
}

// HasPermission reports whether the player holds the permission node.
// Permission backends are provided by the runtime; the API default grants
// everything to operators only.
func (s *PlayerSource) HasPermission(string) bool {
	return false
}

// SourcePlayer extracts the player behind a dragonfly command source, if
// the command was run by one.
func SourcePlayer(src cmd.Source) (*player.Player, bool) {
	p, ok := src.(*player.Player)
	return p, ok
}
