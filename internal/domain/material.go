package domain

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Material identifies an item type in the host's fixed catalog
type Material string

// Air and fluid materials exist in the world but never carry item metadata.
const (
	MaterialAir     Material = "AIR"
	MaterialCaveAir Material = "CAVE_AIR"
	MaterialVoidAir Material = "VOID_AIR"
	MaterialWater   Material = "WATER"
	MaterialLava    Material = "LAVA"
)

// Weapons and tools
const (
	MaterialWoodenSword    Material = "WOODEN_SWORD"
	MaterialStoneSword     Material = "STONE_SWORD"
	MaterialIronSword      Material = "IRON_SWORD"
	MaterialGoldenSword    Material = "GOLDEN_SWORD"
	MaterialDiamondSword   Material = "DIAMOND_SWORD"
	MaterialNetheriteSword Material = "NETHERITE_SWORD"
	MaterialDiamondAxe     Material = "DIAMOND_AXE"
	MaterialBow            Material = "BOW"
	MaterialCrossbow       Material = "CROSSBOW"
	MaterialTrident        Material = "TRIDENT"
	MaterialMace           Material = "MACE"
)

// Misc items commonly used as ability carriers
const (
	MaterialStick          Material = "STICK"
	MaterialBlazeRod       Material = "BLAZE_ROD"
	MaterialFeather        Material = "FEATHER"
	MaterialEnderPearl     Material = "ENDER_PEARL"
	MaterialGoldenApple    Material = "GOLDEN_APPLE"
	MaterialNetherStar     Material = "NETHER_STAR"
	MaterialTotemOfUndying Material = "TOTEM_OF_UNDYING"
	MaterialFireCharge     Material = "FIRE_CHARGE"
	MaterialPaper          Material = "PAPER"
)

// materialCatalog maps every known material to whether it can hold item metadata
var materialCatalog = map[Material]bool{
	MaterialAir:     false,
	MaterialCaveAir: false,
	MaterialVoidAir: false,
	MaterialWater:   false,
	MaterialLava:    false,

	MaterialWoodenSword:    true,
	MaterialStoneSword:     true,
	MaterialIronSword:      true,
	MaterialGoldenSword:    true,
	MaterialDiamondSword:   true,
	MaterialNetheriteSword: true,
	MaterialDiamondAxe:     true,
	MaterialBow:            true,
	MaterialCrossbow:       true,
	MaterialTrident:        true,
	MaterialMace:           true,

	MaterialStick:          true,
	MaterialBlazeRod:       true,
	MaterialFeather:        true,
	MaterialEnderPearl:     true,
	MaterialGoldenApple:    true,
	MaterialNetherStar:     true,
	MaterialTotemOfUndying: true,
	MaterialFireCharge:     true,
	MaterialPaper:          true,
}

// ParseMaterial resolves a material name case-insensitively.
// Spaces and dashes are accepted in place of underscores.
func ParseMaterial(name string) (Material, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	m := Material(normalized)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}
	return m, nil
}

// Valid reports whether the material is in the catalog
func (m Material) Valid() bool {
	_, ok := materialCatalog[m]
	return ok
}

// IsItem reports whether stacks of this material can hold metadata
func (m Material) IsItem() bool {
	return materialCatalog[m]
}

// DisplayName renders DIAMOND_SWORD as "Diamond Sword"
func (m Material) DisplayName() string {
	// Casers are stateful, so each call gets its own
	return cases.Title(language.English).String(strings.ReplaceAll(strings.ToLower(string(m)), "_", " "))
}

func (m Material) String() string {
	return string(m)
}

// Materials returns the catalog sorted by name
func Materials() []Material {
	out := make([]Material, 0, len(materialCatalog))
	for m := range materialCatalog {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
