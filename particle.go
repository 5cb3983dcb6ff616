package slate

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ParticleType identifies a particle visual.
type ParticleType struct {
	id   string
	name string
}

func (t ParticleType) ID() string   { return t.id }
func (t ParticleType) Name() string { return t.name }

var (
	ParticleTypeFlame      = ParticleType{id: "flame", name: "Flame"}
	ParticleTypeSmoke      = ParticleType{id: "smoke", name: "Smoke"}
	ParticleTypeHeart      = ParticleType{id: "heart", name: "Heart"}
	ParticleTypeCrit       = ParticleType{id: "crit", name: "Critical Hit"}
	ParticleTypePortal     = ParticleType{id: "portal", name: "Portal"}
	ParticleTypeExplosion  = ParticleType{id: "explosion", name: "Explosion"}
	ParticleTypeRedstone   = ParticleType{id: "redstone", name: "Redstone"}
	ParticleTypeEnchant    = ParticleType{id: "enchant", name: "Enchant"}
	ParticleTypeSplash     = ParticleType{id: "splash", name: "Splash"}
	ParticleTypeSnowflake  = ParticleType{id: "snowflake", name: "Snowflake"}
	ParticleTypeVillager   = ParticleType{id: "villager", name: "Villager"}
	ParticleTypeNote       = ParticleType{id: "note", name: "Note"}
	ParticleTypeLava       = ParticleType{id: "lava", name: "Lava"}
	ParticleTypeWaterDrop  = ParticleType{id: "water_drop", name: "Water Drop"}
	ParticleTypeHappyVill  = ParticleType{id: "happy_villager", name: "Happy Villager"}
	ParticleTypeAngryVill  = ParticleType{id: "angry_villager", name: "Angry Villager"}
	ParticleTypeDragonsB   = ParticleType{id: "dragon_breath", name: "Dragon Breath"}
	ParticleTypeTotem      = ParticleType{id: "totem", name: "Totem"}
	ParticleTypeSoulFlame  = ParticleType{id: "soul_flame", name: "Soul Flame"}
	ParticleTypeCampfire   = ParticleType{id: "campfire_smoke", name: "Campfire Smoke"}
	ParticleTypeEndRod     = ParticleType{id: "end_rod", name: "End Rod"}
	ParticleTypeFirework   = ParticleType{id: "firework", name: "Firework"}
	ParticleTypeWitchSpell = ParticleType{id: "witch_spell", name: "Witch Spell"}
)

// ParticleEffect is an immutable description of particles to spawn:
// which type, how many, and the motion and offset applied per particle.
type ParticleEffect struct {
	typ    ParticleType
	motion mgl64.Vec3
	offset mgl64.Vec3
	count  int
}

// Type returns the particle visual.
func (e ParticleEffect) Type() ParticleType { return e.typ }

// Motion returns the initial velocity applied to each particle.
func (e ParticleEffect) Motion() mgl64.Vec3 { return e.motion }

// Offset returns the random spawn offset applied around the position.
func (e ParticleEffect) Offset() mgl64.Vec3 { return e.offset }

// Count returns how many particles are spawned.
func (e ParticleEffect) Count() int { return e.count }

// ParticleEffectBuilder assembles a ParticleEffect.
type ParticleEffectBuilder struct {
	effect ParticleEffect
	typed  bool
}

// NewParticleEffectBuilder returns a builder with a count of one and no
// motion or offset.
func NewParticleEffectBuilder() *ParticleEffectBuilder {
	b := &ParticleEffectBuilder{}
	return b.Reset()
}

// Reset restores the builder to its initial state.
func (b *ParticleEffectBuilder) Reset() *ParticleEffectBuilder {
	b.effect = ParticleEffect{count: 1}
	b.typed = false
	return b
}

// Type sets the particle visual.
func (b *ParticleEffectBuilder) Type(t ParticleType) *ParticleEffectBuilder {
	b.effect.typ = t
	b.typed = true
	return b
}

// Motion sets the initial velocity of each particle.
func (b *ParticleEffectBuilder) Motion(motion mgl64.Vec3) *ParticleEffectBuilder {
	b.effect.motion = motion
	return b
}

// Offset sets the random spawn offset around the position.
func (b *ParticleEffectBuilder) Offset(offset mgl64.Vec3) *ParticleEffectBuilder {
	b.effect.offset = offset
	return b
}

// Count sets how many particles are spawned.
func (b *ParticleEffectBuilder) Count(count int) *ParticleEffectBuilder {
	b.effect.count = count
	return b
}

// Build creates the effect. It fails when no type was set or the count is
// below one.
func (b *ParticleEffectBuilder) Build() (ParticleEffect, error) {
	if !b.typed {
		return ParticleEffect{}, fmt.Errorf("slate: particle effect requires a type")
	}
	if b.effect.count < 1 {
		return ParticleEffect{}, fmt.Errorf("slate: particle count must be at least 1, got %d", b.effect.count)
	}
	return b.effect, nil
}
