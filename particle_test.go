package slate_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/oriumgames/slate"
)

func TestParticleEffectBuilder(t *testing.T) {
	effect, err := slate.NewParticleEffectBuilder().
		Type(slate.ParticleTypeHeart).
		Motion(mgl64.Vec3{0, 0.5, 0}).
		Offset(mgl64.Vec3{1, 0, 1}).
		Count(12).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if effect.Type() != slate.ParticleTypeHeart {
		t.Fatalf("Type() = %v", effect.Type())
	}
	if effect.Motion() != (mgl64.Vec3{0, 0.5, 0}) || effect.Offset() != (mgl64.Vec3{1, 0, 1}) {
		t.Fatalf("Motion() = %v, Offset() = %v", effect.Motion(), effect.Offset())
	}
	if effect.Count() != 12 {
		t.Fatalf("Count() = %d", effect.Count())
	}
}

func TestParticleEffectBuilderDefaults(t *testing.T) {
	effect, err := slate.NewParticleEffectBuilder().Type(slate.ParticleTypeSmoke).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if effect.Count() != 1 {
		t.Fatalf("default Count() = %d, want 1", effect.Count())
	}
	if effect.Motion() != (mgl64.Vec3{}) || effect.Offset() != (mgl64.Vec3{}) {
		t.Fatal("default motion or offset not zero")
	}
}

func TestParticleEffectBuilderValidation(t *testing.T) {
	if _, err := slate.NewParticleEffectBuilder().Build(); err == nil {
		t.Fatal("expected error without a type")
	}
	if _, err := slate.NewParticleEffectBuilder().Type(slate.ParticleTypeCrit).Count(0).Build(); err == nil {
		t.Fatal("expected error for zero count")
	}
}

func TestParticleEffectBuilderReset(t *testing.T) {
	b := slate.NewParticleEffectBuilder().Type(slate.ParticleTypeLava).Count(64)
	b.Reset()
	if _, err := b.Build(); err == nil {
		t.Fatal("reset builder still built an effect")
	}
}
