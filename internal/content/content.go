// Package content loads game content (zones, buildings, quests, items,
// recipes and formula coefficients) from YAML and compiles it into the
// rule objects the engine runs on.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-idle/internal/combat"
	"github.com/KirkDiggler/rpg-idle/internal/economy"
	"github.com/KirkDiggler/rpg-idle/internal/entities"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/objectives"
	"github.com/KirkDiggler/rpg-idle/internal/progression"
	"github.com/KirkDiggler/rpg-idle/internal/quests"
	"github.com/KirkDiggler/rpg-idle/internal/town"
)

//go:embed default.yaml
var defaultPack []byte

// Material is a material the ledger can hold
type Material struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// ItemDef is a base item that recipes produce
type ItemDef struct {
	ID      string               `yaml:"id"`
	Name    string               `yaml:"name"`
	Slot    entities.Slot        `yaml:"slot"`
	Bonuses entities.ItemBonuses `yaml:"bonuses"`
}

// Recipe turns materials (and gold) into an item
type Recipe struct {
	ID     string       `yaml:"id"`
	ItemID string       `yaml:"item_id"`
	Cost   economy.Cost `yaml:"cost"`
}

// Pack is a whole content file
type Pack struct {
	Formula            combat.Formula      `yaml:"formula"`
	Tuning             progression.Tuning  `yaml:"tuning"`
	XPCurve            entities.XPCurve    `yaml:"xp_curve"`
	StartingAttributes entities.Attributes `yaml:"starting_attributes"`
	StartingGold       int64               `yaml:"starting_gold"`
	Materials          []Material          `yaml:"materials"`
	Items              []ItemDef           `yaml:"items"`
	Recipes            []Recipe            `yaml:"recipes"`
	Buildings          []town.Building     `yaml:"buildings"`
	Zones              []progression.Zone  `yaml:"zones"`
	Quests             []quests.Definition `yaml:"quests"`
}

// Default returns the embedded content pack
func Default() (*Pack, error) {
	return Parse(defaultPack)
}

// Load reads a pack from path; an empty path loads the embedded pack
func Load(path string) (*Pack, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read content file %s", path)
	}
	return Parse(data)
}

// Parse decodes a pack, rejecting unknown keys, and applies defaults
func Parse(data []byte) (*Pack, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Pack
	if err := dec.Decode(&p); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse content")
	}
	p.ApplyDefaults()
	return &p, nil
}

// ApplyDefaults fills sections the content left empty
func (p *Pack) ApplyDefaults() {
	if p.Formula == (combat.Formula{}) {
		p.Formula = combat.DefaultFormula()
	}
	if p.Tuning == (progression.Tuning{}) {
		p.Tuning = progression.DefaultTuning()
	}
	if p.XPCurve.Base == 0 {
		p.XPCurve.Base = 100
	}
	if p.XPCurve.Growth == 0 {
		p.XPCurve.Growth = 1.5
	}
	for i := range p.Zones {
		if p.Zones[i].BossHPMultiplier == 0 {
			p.Zones[i].BossHPMultiplier = 1
		}
	}
}

// Rules is compiled, validated content
type Rules struct {
	Calculator         *combat.Calculator
	Town               *town.Registry
	Zones              *progression.Controller
	Quests             []quests.Definition
	XPCurve            entities.XPCurve
	StartingAttributes entities.Attributes
	StartingGold       int64

	items   map[string]ItemDef
	recipes map[string]Recipe
	order   []string
}

// Item returns an item definition
func (r *Rules) Item(id string) (ItemDef, bool) {
	item, ok := r.items[id]
	return item, ok
}

// Recipe returns a recipe
func (r *Rules) Recipe(id string) (Recipe, bool) {
	recipe, ok := r.recipes[id]
	return recipe, ok
}

// Recipes returns every recipe in content order
func (r *Rules) Recipes() []Recipe {
	out := make([]Recipe, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.recipes[id])
	}
	return out
}

// Compile validates the pack and builds the rule objects
func (p *Pack) Compile() (*Rules, error) {
	calc, err := combat.NewCalculator(p.Formula)
	if err != nil {
		return nil, err
	}
	registry, err := town.NewRegistry(p.Buildings)
	if err != nil {
		return nil, err
	}
	zones, err := progression.NewController(p.Zones, p.Tuning)
	if err != nil {
		return nil, err
	}

	vb := errors.NewValidationBuilder()
	if p.XPCurve.Base < 1 {
		vb.Fieldf("xp_curve.base", "must be at least 1, got %d", p.XPCurve.Base)
	}
	if p.XPCurve.Growth < 1 {
		vb.Fieldf("xp_curve.growth", "must be at least 1, got %v", p.XPCurve.Growth)
	}
	errors.ValidateNonNegative("starting_gold", p.StartingGold, vb)

	rules := &Rules{
		Calculator:         calc,
		Town:               registry,
		Zones:              zones,
		XPCurve:            p.XPCurve,
		StartingAttributes: p.StartingAttributes,
		StartingGold:       p.StartingGold,
		items:              make(map[string]ItemDef, len(p.Items)),
		recipes:            make(map[string]Recipe, len(p.Recipes)),
	}

	for _, item := range p.Items {
		if item.ID == "" {
			vb.RequiredField("items.id")
			continue
		}
		if !item.Slot.Valid() {
			vb.Fieldf("items."+item.ID, "invalid slot %q", item.Slot)
		}
		if _, dup := rules.items[item.ID]; dup {
			vb.Fieldf("items."+item.ID, "duplicate item id")
		}
		rules.items[item.ID] = item
	}

	for _, recipe := range p.Recipes {
		if recipe.ID == "" {
			vb.RequiredField("recipes.id")
			continue
		}
		if _, ok := rules.items[recipe.ItemID]; !ok {
			vb.Fieldf("recipes."+recipe.ID, "unknown item %q", recipe.ItemID)
		}
		if recipe.Cost.IsZero() {
			vb.Fieldf("recipes."+recipe.ID, "cost must not be empty")
		}
		if _, dup := rules.recipes[recipe.ID]; dup {
			vb.Fieldf("recipes."+recipe.ID, "duplicate recipe id")
		}
		rules.recipes[recipe.ID] = recipe
		rules.order = append(rules.order, recipe.ID)
	}

	seen := make(map[string]bool, len(p.Quests))
	for i := range p.Quests {
		q := &p.Quests[i]
		if err := q.Validate(); err != nil {
			vb.Fieldf("quests."+q.ID, "%s", errors.GetMessage(err))
		}
		if seen[q.ID] {
			vb.Fieldf("quests."+q.ID, "duplicate quest id")
		}
		seen[q.ID] = true
	}
	rules.Quests = p.Quests

	if err := vb.Build(); err != nil {
		return nil, err
	}
	return rules, nil
}

// Warnings lists references content makes to things it does not define.
// They are not errors: objectives pointing at them simply never complete.
func (p *Pack) Warnings() []string {
	buildings := make(map[string]bool, len(p.Buildings))
	for _, b := range p.Buildings {
		buildings[b.ID] = true
	}
	zones := make(map[string]bool, len(p.Zones))
	monsters := make(map[string]bool)
	for _, z := range p.Zones {
		zones[z.ID] = true
		for _, m := range z.Monsters {
			monsters[m] = true
		}
	}
	materials := make(map[string]bool, len(p.Materials))
	for _, m := range p.Materials {
		materials[m.ID] = true
	}
	items := make(map[string]bool, len(p.Items))
	for _, item := range p.Items {
		items[item.ID] = true
	}

	var out []string
	for _, q := range p.Quests {
		for _, obj := range q.Objectives {
			var ref, kind string
			var known map[string]bool
			switch c := obj.Criterion.(type) {
			case objectives.KillMonster:
				ref, kind, known = c.MonsterID, "monster", monsters
			case objectives.DefeatBoss:
				ref, kind, known = c.BossZone, "zone", zones
			case objectives.CollectItem:
				ref, kind, known = c.ItemID, "item", items
			case objectives.GatherMaterial:
				ref, kind, known = c.MaterialID, "material", materials
			case objectives.UpgradeBuilding:
				ref, kind, known = c.BuildingID, "building", buildings
			case objectives.ReachLevel:
				continue
			default:
				var unknown objectives.Kind
				if obj.Criterion != nil {
					unknown = obj.Criterion.Kind()
				}
				out = append(out, fmt.Sprintf("quest %s objective %s has unknown kind %q", q.ID, obj.ID, unknown))
				continue
			}
			if ref != "" && !known[ref] {
				out = append(out, fmt.Sprintf("quest %s objective %s references unknown %s %q", q.ID, obj.ID, kind, ref))
			}
		}
	}
	return out
}
