package world

// DungeonBiome is the theme of a whole dungeon.
type DungeonBiome uint8

const (
	BiomeGoblinWarren DungeonBiome = iota
	BiomeUndeadCrypt
	BiomeFungalGrotto
	BiomeOrcStronghold
	BiomeAbyssalTemple
	// BiomeDragonLair is reserved for the dungeon that ends in the cave.
	BiomeDragonLair
	BiomeBeastDen
	BiomeSerpentPit
)

// PlaceableBiomes lists every biome ForDungeon can return.
var PlaceableBiomes = []DungeonBiome{
	BiomeGoblinWarren,
	BiomeUndeadCrypt,
	BiomeFungalGrotto,
	BiomeOrcStronghold,
	BiomeAbyssalTemple,
	BiomeBeastDen,
	BiomeSerpentPit,
}

var (
	temperateBiomes = []DungeonBiome{
		BiomeGoblinWarren, BiomeUndeadCrypt, BiomeOrcStronghold, BiomeBeastDen, BiomeFungalGrotto,
	}
	jungleBiomes = []DungeonBiome{
		BiomeSerpentPit, BiomeUndeadCrypt, BiomeFungalGrotto, BiomeAbyssalTemple, BiomeGoblinWarren,
	}
)

// ForDungeon picks a biome for a dungeon whose entrance sits on row
// entranceY of an overworld mapHeight rows tall.
func ForDungeon(seed uint64, entranceY, mapHeight int) DungeonBiome {
	candidates := temperateBiomes
	if OverworldBiomeAt(entranceY, mapHeight) == OverworldJungle {
		candidates = jungleBiomes
	}
	return candidates[xorshift64(seed)%uint64(len(candidates))]
}

// StyleForLevel returns the visual style of one level of the dungeon.
func (b DungeonBiome) StyleForLevel(level int, isCave bool) DungeonStyle {
	if isCave {
		return StyleRedCavern
	}
	switch b {
	case BiomeGoblinWarren:
		if level <= 1 {
			return StyleDirtCaves
		}
		return StyleStoneBrick
	case BiomeUndeadCrypt:
		if level <= 1 {
			return StyleCatacombs
		}
		return StyleBoneCrypt
	case BiomeFungalGrotto:
		return StyleMossyCavern
	case BiomeOrcStronghold:
		if level == 0 {
			return StyleStoneBrick
		}
		return StyleLargeStone
	case BiomeAbyssalTemple:
		if level == 0 {
			return StyleIgneous
		}
		return StyleBlueTemple
	case BiomeBeastDen:
		if level <= 1 {
			return StyleBoneCave
		}
		return StyleBoneCrypt
	case BiomeSerpentPit:
		if level <= 1 {
			return StyleMossyTunnel
		}
		return StyleMossyCavern
	default:
		return StyleRedCavern
	}
}

// Name returns the display name of the biome.
func (b DungeonBiome) Name() string {
	switch b {
	case BiomeGoblinWarren:
		return "Goblin Warren"
	case BiomeUndeadCrypt:
		return "Undead Crypt"
	case BiomeFungalGrotto:
		return "Fungal Grotto"
	case BiomeOrcStronghold:
		return "Orc Stronghold"
	case BiomeAbyssalTemple:
		return "Abyssal Temple"
	case BiomeDragonLair:
		return "Dragon's Lair"
	case BiomeBeastDen:
		return "Beast Den"
	case BiomeSerpentPit:
		return "Serpent Pit"
	default:
		return "Unknown"
	}
}

func (b DungeonBiome) String() string {
	switch b {
	case BiomeGoblinWarren:
		return "goblin_warren"
	case BiomeUndeadCrypt:
		return "undead_crypt"
	case BiomeFungalGrotto:
		return "fungal_grotto"
	case BiomeOrcStronghold:
		return "orc_stronghold"
	case BiomeAbyssalTemple:
		return "abyssal_temple"
	case BiomeDragonLair:
		return "dragon_lair"
	case BiomeBeastDen:
		return "beast_den"
	case BiomeSerpentPit:
		return "serpent_pit"
	default:
		return "unknown"
	}
}

// OverworldBiome is a horizontal band of the overworld.
type OverworldBiome uint8

const (
	OverworldTemperate OverworldBiome = iota
	OverworldJungle
)

// OverworldBiomeAt returns the band for row y. The bottom 40% is jungle.
func OverworldBiomeAt(y, mapHeight int) OverworldBiome {
	if y >= mapHeight*60/100 {
		return OverworldJungle
	}
	return OverworldTemperate
}

func (b OverworldBiome) String() string {
	if b == OverworldJungle {
		return "jungle"
	}
	return "temperate_forest"
}

// DungeonStyle selects the wall and floor palette of a level.
type DungeonStyle uint8

const (
	StyleDirtCaves DungeonStyle = iota
	StyleStoneBrick
	StyleCatacombs
	StyleBoneCrypt
	StyleMossyCavern
	StyleLargeStone
	StyleIgneous
	StyleBlueTemple
	StyleBoneCave
	StyleMossyTunnel
	StyleRedCavern
)

// AllStyles lists every dungeon style.
var AllStyles = []DungeonStyle{
	StyleDirtCaves, StyleStoneBrick, StyleCatacombs, StyleBoneCrypt,
	StyleMossyCavern, StyleLargeStone, StyleIgneous, StyleBlueTemple,
	StyleBoneCave, StyleMossyTunnel, StyleRedCavern,
}

func (s DungeonStyle) String() string {
	switch s {
	case StyleDirtCaves:
		return "dirt_caves"
	case StyleStoneBrick:
		return "stone_brick"
	case StyleCatacombs:
		return "catacombs"
	case StyleBoneCrypt:
		return "bone_crypt"
	case StyleMossyCavern:
		return "mossy_cavern"
	case StyleLargeStone:
		return "large_stone"
	case StyleIgneous:
		return "igneous"
	case StyleBlueTemple:
		return "blue_temple"
	case StyleBoneCave:
		return "bone_cave"
	case StyleMossyTunnel:
		return "mossy_tunnel"
	case StyleRedCavern:
		return "red_cavern"
	default:
		return "unknown"
	}
}
