package party

import "github.com/questforge/adventure-api/internal/entities/adventure"

// The class catalog is fixed, in-memory reference data. Validation treats it
// as read-only truth for class-existence checks.
var classCatalog = []adventure.PartyMemberClass{
	{
		ID:          "barbarian",
		Name:        "Barbarian",
		Description: "A fierce warrior who channels rage into devastating attacks.",
		Abilities:   []string{"Rage", "Reckless Attack", "Intimidating Presence"},
		BaseStats: adventure.CoreStats{
			Strength:     16,
			Dexterity:    12,
			Intelligence: 8,
			Wisdom:       10,
			Charisma:     10,
			Constitution: 15,
		},
		ModelVersion: adventure.CurrentCharacterModelVersion,
	},
	{
		ID:          "mage",
		Name:        "Mage",
		Description: "A scholar of the arcane who bends raw magic to their will.",
		Abilities:   []string{"Fireball", "Arcane Shield", "Counterspell"},
		BaseStats: adventure.CoreStats{
			Strength:     8,
			Dexterity:    11,
			Intelligence: 16,
			Wisdom:       13,
			Charisma:     10,
			Constitution: 10,
		},
		ModelVersion: adventure.CurrentCharacterModelVersion,
	},
	{
		ID:          "priest",
		Name:        "Priest",
		Description: "A devoted healer whose faith mends wounds and wards off darkness.",
		Abilities:   []string{"Heal", "Bless", "Turn Undead"},
		BaseStats: adventure.CoreStats{
			Strength:     10,
			Dexterity:    10,
			Intelligence: 12,
			Wisdom:       16,
			Charisma:     13,
			Constitution: 12,
		},
		ModelVersion: adventure.CurrentCharacterModelVersion,
	},
	{
		ID:          "rogue",
		Name:        "Rogue",
		Description: "A cunning operative who strikes from the shadows.",
		Abilities:   []string{"Sneak Attack", "Lockpicking", "Evasion"},
		BaseStats: adventure.CoreStats{
			Strength:     10,
			Dexterity:    16,
			Intelligence: 12,
			Wisdom:       11,
			Charisma:     12,
			Constitution: 10,
		},
		ModelVersion: adventure.CurrentCharacterModelVersion,
	},
	{
		ID:          "bard",
		Name:        "Bard",
		Description: "A silver-tongued performer whose songs inspire allies and beguile foes.",
		Abilities:   []string{"Inspire", "Charm", "Cutting Words"},
		BaseStats: adventure.CoreStats{
			Strength:     9,
			Dexterity:    13,
			Intelligence: 12,
			Wisdom:       10,
			Charisma:     16,
			Constitution: 11,
		},
		ModelVersion: adventure.CurrentCharacterModelVersion,
	},
}

// AvailableClasses returns the fixed class catalog. Callers get a copy of
// the slice; the entries themselves are treated as immutable reference data.
func AvailableClasses() []adventure.PartyMemberClass {
	out := make([]adventure.PartyMemberClass, len(classCatalog))
	copy(out, classCatalog)
	return out
}

// ClassByID looks up a catalog entry by class id.
func ClassByID(id string) (adventure.PartyMemberClass, bool) {
	for _, class := range classCatalog {
		if class.ID == id {
			return class, true
		}
	}
	return adventure.PartyMemberClass{}, false
}
