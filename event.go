package slate

import (
	"time"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/player/skin"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

// Event types wrap Dragonfly handler parameters. Subscribing to Slate
// events decouples plugin handlers from Dragonfly's signature changes.

// Cancellable is implemented by events whose default action can be
// prevented by a listener.
type Cancellable interface {
	Cancel()
}

// EventJoin is emitted when a player joins the server.
type EventJoin struct {
	Player *player.Player
}

// EventQuit is emitted when a player quits the server.
type EventQuit struct {
	Player *player.Player
}

// EventChat is emitted when a player sends a chat message. Listeners may
// rewrite the message in place.
type EventChat struct {
	Ctx     *player.Context
	Message *string
}

func (e *EventChat) Cancel() { e.Ctx.Cancel() }

// EventChangeSettings is emitted when a player changes their client
// settings. Fields record the state after the change.
type EventChangeSettings struct {
	Player         *player.Player
	Locale         string
	ViewDistance   int
	ChatVisible    bool
	ChatColors     bool
	SkinPartsShown []string
}

// EventMove is emitted when a player moves.
type EventMove struct {
	Ctx      *player.Context
	Position mgl64.Vec3
	Rotation cube.Rotation
}

func (e *EventMove) Cancel() { e.Ctx.Cancel() }

// EventTeleport is emitted when a player is teleported.
type EventTeleport struct {
	Ctx      *player.Context
	Position mgl64.Vec3
}

func (e *EventTeleport) Cancel() { e.Ctx.Cancel() }

// EventChangeWorld is emitted when a player changes worlds.
type EventChangeWorld struct {
	Player *player.Player
	Before *world.World
	After  *world.World
}

// EventInteractEntity is emitted when a player interacts with an entity.
type EventInteractEntity struct {
	Ctx    *player.Context
	Entity world.Entity
}

func (e *EventInteractEntity) Cancel() { e.Ctx.Cancel() }

// EventAttackEntity is emitted when a player attacks an entity. Force and
// Height control the knockback applied when the attack goes through.
type EventAttackEntity struct {
	Ctx      *player.Context
	Entity   world.Entity
	Force    *float64
	Height   *float64
	Critical *bool
}

func (e *EventAttackEntity) Cancel() { e.Ctx.Cancel() }

// EventHurt is emitted when a player is hurt.
type EventHurt struct {
	Ctx      *player.Context
	Damage   *float64
	Immune   bool
	Immunity *time.Duration
	Source   world.DamageSource
}

func (e *EventHurt) Cancel() { e.Ctx.Cancel() }

// EventHeal is emitted when a player is healed.
type EventHeal struct {
	Ctx    *player.Context
	Health *float64
	Source world.HealingSource
}

func (e *EventHeal) Cancel() { e.Ctx.Cancel() }

// EventDeath is emitted when a player dies.
type EventDeath struct {
	Player        *player.Player
	Source        world.DamageSource
	KeepInventory *bool
}

// EventRespawn is emitted when a player respawns. Listeners may redirect
// the respawn position and world.
type EventRespawn struct {
	Player   *player.Player
	Position *mgl64.Vec3
	World    **world.World
}

// EventSkinChange is emitted when a player changes their skin.
type EventSkinChange struct {
	Ctx  *player.Context
	Skin *skin.Skin
}

func (e *EventSkinChange) Cancel() { e.Ctx.Cancel() }

// EventBlockBreak is emitted when a player breaks a block. Drops and
// Experience may be rewritten before the block is removed.
type EventBlockBreak struct {
	Ctx        *player.Context
	Position   cube.Pos
	Drops      *[]item.Stack
	Experience *int
}

func (e *EventBlockBreak) Cancel() { e.Ctx.Cancel() }

// EventBlockPlace is emitted when a player places a block.
type EventBlockPlace struct {
	Ctx      *player.Context
	Position cube.Pos
	Block    world.Block
}

func (e *EventBlockPlace) Cancel() { e.Ctx.Cancel() }

// EventItemUse is emitted when a player uses the held item.
type EventItemUse struct {
	Ctx *player.Context
}

func (e *EventItemUse) Cancel() { e.Ctx.Cancel() }

// EventItemUseOnBlock is emitted when a player uses an item on a block.
type EventItemUseOnBlock struct {
	Ctx      *player.Context
	Position cube.Pos
	Face     cube.Face
	ClickPos mgl64.Vec3
}

func (e *EventItemUseOnBlock) Cancel() { e.Ctx.Cancel() }

// EventItemConsume is emitted when a player consumes an item.
type EventItemConsume struct {
	Ctx  *player.Context
	Item item.Stack
}

func (e *EventItemConsume) Cancel() { e.Ctx.Cancel() }

// EventItemDrop is emitted when a player drops an item.
type EventItemDrop struct {
	Ctx  *player.Context
	Item item.Stack
}

func (e *EventItemDrop) Cancel() { e.Ctx.Cancel() }

// EventItemPickup is emitted when a player picks up an item.
type EventItemPickup struct {
	Ctx  *player.Context
	Item *item.Stack
}

func (e *EventItemPickup) Cancel() { e.Ctx.Cancel() }

// EventCommandExecution is emitted when a player executes a command.
type EventCommandExecution struct {
	Ctx     *player.Context
	Command cmd.Command
	Args    []string
}

func (e *EventCommandExecution) Cancel() { e.Ctx.Cancel() }
