package adventure

// CurrentCharacterModelVersion is the schema generation tag for party members
// and party configurations. Migration steps are keyed by it and applied in
// order; bumping it is the only sanctioned way to add a new generation.
const CurrentCharacterModelVersion = 1

// Core stat keys shared by the catalog and the attribute bridge.
const (
	StatStrength     = "strength"
	StatDexterity    = "dexterity"
	StatIntelligence = "intelligence"
	StatWisdom       = "wisdom"
	StatCharisma     = "charisma"
	StatConstitution = "constitution"
)

// CoreStatKeys lists the six base stats in display order.
var CoreStatKeys = []string{
	StatStrength,
	StatDexterity,
	StatIntelligence,
	StatWisdom,
	StatCharisma,
	StatConstitution,
}

// CoreStats holds the six fixed base stats every class carries. These are
// legacy fields and always present; dynamic attributes shadow them without
// ever deleting them.
type CoreStats struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
	Constitution int `json:"constitution"`
}

// Value returns the base stat for a core stat key.
func (s CoreStats) Value(key string) (int, bool) {
	switch key {
	case StatStrength:
		return s.Strength, true
	case StatDexterity:
		return s.Dexterity, true
	case StatIntelligence:
		return s.Intelligence, true
	case StatWisdom:
		return s.Wisdom, true
	case StatCharisma:
		return s.Charisma, true
	case StatConstitution:
		return s.Constitution, true
	default:
		return 0, false
	}
}

// AttributeConstraints bounds a dynamic attribute's value.
type AttributeConstraints struct {
	Min      int  `json:"min"`
	Max      int  `json:"max"`
	ReadOnly bool `json:"readonly,omitempty"`
}

// CharacterAttribute is a named, typed, constrained value attached to a
// character. Attributes with category "core" mirror base stats.
type CharacterAttribute struct {
	Value       any                   `json:"value"`
	Category    string                `json:"category"`
	DisplayName string                `json:"displayName,omitempty"`
	Description string                `json:"description,omitempty"`
	Constraints *AttributeConstraints `json:"constraints,omitempty"`
}

// CharacterTrait is an arbitrary tagged fact about a character with a
// provenance and timestamp.
type CharacterTrait struct {
	Value      any    `json:"value"`
	Source     string `json:"source,omitempty"`
	AcquiredAt int64  `json:"acquiredAt,omitempty"`
}

// CharacterRelationship is a directed, typed, strength-scored edge to
// another party member. Relationships are not automatically reciprocated.
type CharacterRelationship struct {
	Type     string         `json:"type"`
	Strength int            `json:"strength"`
	Data     map[string]any `json:"data,omitempty"`
}

// ExperienceData tracks accumulated experience for a member.
type ExperienceData struct {
	TotalXP    int            `json:"totalXP"`
	SkillXP    map[string]int `json:"skillXP"`
	Milestones []string       `json:"milestones"`
}

// PartyMemberClass is a catalog entry: effectively immutable reference data.
type PartyMemberClass struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Abilities   []string  `json:"abilities"`
	BaseStats   CoreStats `json:"baseStats"`

	// Extensible fields mirroring the character model. Unvalidated
	// passthrough; invariant-bearing data lives outside these.
	ExtendedAttributes map[string]CharacterAttribute `json:"extendedAttributes,omitempty"`
	AttributeSchema    map[string]any                `json:"attributeSchema,omitempty"`
	RelationshipTypes  []string                      `json:"relationshipTypes,omitempty"`
	TraitCategories    []string                      `json:"traitCategories,omitempty"`
	ModelVersion       int                           `json:"modelVersion"`
}

// PartyMember is one player-controlled character instance.
type PartyMember struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	ClassID          string         `json:"classId"`
	Level            int            `json:"level"`
	CustomAttributes map[string]any `json:"customAttributes,omitempty"`
	CreatedAt        int64          `json:"createdAt"`

	// Extensible character model. DynamicAttributes shadow base stats;
	// resolution falls back to the class's CoreStats for keys not present.
	DynamicAttributes map[string]CharacterAttribute    `json:"dynamicAttributes,omitempty"`
	Traits            map[string]CharacterTrait        `json:"traits,omitempty"`
	Relationships     map[string]CharacterRelationship `json:"relationships,omitempty"`
	Experience        *ExperienceData                  `json:"experienceData,omitempty"`
	ExtensionData     map[string]any                   `json:"extensionData,omitempty"`
	ModelVersion      int                              `json:"modelVersion"`
}

// PartyDynamics holds party-level derived qualities.
type PartyDynamics struct {
	Cohesion        int               `json:"cohesion"`
	Leadership      string            `json:"leadership,omitempty"`
	Specializations map[string]string `json:"specializations,omitempty"`
}

// PartyConfiguration is an ordered group of members with composition rules.
type PartyConfiguration struct {
	Members   []PartyMember `json:"members"`
	Formation string        `json:"formation,omitempty"`
	MaxSize   int           `json:"maxSize"`
	CreatedAt int64         `json:"createdAt"`

	PartyTraits   map[string]CharacterTrait `json:"partyTraits,omitempty"`
	Dynamics      *PartyDynamics            `json:"dynamics,omitempty"`
	ExtensionData map[string]any            `json:"extensionData,omitempty"`
	ModelVersion  int                       `json:"modelVersion"`
}
