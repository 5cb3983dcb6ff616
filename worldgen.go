package slate

import (
	"math/rand"

	"github.com/df-mc/dragonfly/server/world"
)

// Populator places features into a chunk after its base terrain exists:
// flowers, glowstone clusters, plants. Populators run once per chunk.
type Populator interface {
	// Populate places this populator's features into the chunk at pos.
	// The random source is seeded per chunk by the runtime.
	Populate(w *world.World, pos world.ChunkPos, r *rand.Rand)
}

// GeneratorPopulator shapes the base terrain of a chunk before Populators
// run. Implementations must only touch the chunk being generated.
type GeneratorPopulator interface {
	Generate(w *world.World, pos world.ChunkPos, r *rand.Rand)
}

// PopulatorFactory creates the standard populators of a world generator.
type PopulatorFactory interface {
	// Flower creates a populator placing flowers.
	Flower() FlowerPopulatorBuilder

	// Glowstone creates a populator placing glowstone clusters.
	Glowstone() GlowstonePopulatorBuilder

	// DoublePlant creates a populator placing two-block-tall plants.
	DoublePlant() DoublePlantPopulatorBuilder
}

// PlantType is a flower or plant variant placeable by a populator.
type PlantType struct {
	id   string
	name string
}

func (p PlantType) ID() string   { return p.id }
func (p PlantType) Name() string { return p.name }

var (
	PlantTypeDandelion = PlantType{id: "dandelion", name: "Dandelion"}
	PlantTypePoppy     = PlantType{id: "poppy", name: "Poppy"}
	PlantTypeOrchid    = PlantType{id: "blue_orchid", name: "Blue Orchid"}
	PlantTypeAllium    = PlantType{id: "allium", name: "Allium"}
	PlantTypeTulip     = PlantType{id: "tulip", name: "Tulip"}
	PlantTypeSunflower = PlantType{id: "sunflower", name: "Sunflower"}
	PlantTypeLilac     = PlantType{id: "lilac", name: "Lilac"}
	PlantTypeRoseBush  = PlantType{id: "rose_bush", name: "Rose Bush"}
	PlantTypePeony     = PlantType{id: "peony", name: "Peony"}
	PlantTypeTallGrass = PlantType{id: "tall_grass", name: "Tall Grass"}
)

// FlowerPopulatorBuilder configures a flower populator.
type FlowerPopulatorBuilder interface {
	ResettableBuilder[FlowerPopulatorBuilder]

	// PerChunk sets how many flowers are attempted per chunk.
	PerChunk(count int) FlowerPopulatorBuilder

	// Types sets the plant variants placed, chosen uniformly.
	Types(types ...PlantType) FlowerPopulatorBuilder

	Build() (Populator, error)
}

// GlowstonePopulatorBuilder configures a glowstone cluster populator.
type GlowstonePopulatorBuilder interface {
	ResettableBuilder[GlowstonePopulatorBuilder]

	// PerChunk sets how many clusters are attempted per chunk.
	PerChunk(count int) GlowstonePopulatorBuilder

	// ClusterSize sets how many blocks each cluster holds.
	ClusterSize(blocks int) GlowstonePopulatorBuilder

	// Height sets the vertical band clusters spawn in.
	Height(min, max int) GlowstonePopulatorBuilder

	Build() (Populator, error)
}

// DoublePlantPopulatorBuilder configures a two-block-tall plant populator.
type DoublePlantPopulatorBuilder interface {
	ResettableBuilder[DoublePlantPopulatorBuilder]

	// PerChunk sets how many plants are attempted per chunk.
	PerChunk(count int) DoublePlantPopulatorBuilder

	// Types sets the plant variants placed, chosen uniformly.
	Types(types ...PlantType) DoublePlantPopulatorBuilder

	Build() (Populator, error)
}
