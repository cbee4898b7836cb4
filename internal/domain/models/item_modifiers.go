package models

import (
	"modxml.dev/pkg/modxml/internal/domain/schema"
	m "modxml.dev/pkg/modxml/internal/model"
)

// ItemModifiers is item_modifiers.xml. Unlike most module files its root is
// <ItemModifiers>, not <base>.
type ItemModifiers struct {
	schema.Layout
	Modifiers []*ItemModifier
}

// ItemModifier scales the stats of an item of its modifier group.
type ItemModifier struct {
	schema.Layout
	ModifierGroup       m.Optional[string]
	ID                  m.Optional[string]
	Name                m.Optional[string]
	LootDropScore       m.Optional[m.Number]
	ProductionDropScore m.Optional[m.Number]
	Damage              m.Optional[m.Number]
	Speed               m.Optional[m.Number]
	MissileSpeed        m.Optional[m.Number]
	PriceFactor         m.Optional[m.Number]
	Quality             m.Optional[string]
	HitPoints           m.Optional[m.Number]
	HorseSpeed          m.Optional[m.Number]
	StackCount          m.Optional[m.Number]
	Armor               m.Optional[m.Number]
	Maneuver            m.Optional[m.Number]
	ChargeDamage        m.Optional[m.Number]
	HorseHitPoints      m.Optional[m.Number]
}

// ItemModifiersSchema binds item_modifiers.xml.
var ItemModifiersSchema = itemModifiersSchema()

func itemModifiersSchema() *schema.Schema[ItemModifiers] {
	type im = ItemModifier

	modifier := schema.New[im]("ItemModifier").
		Attr("modifier_group", func(o *im) *m.Optional[string] { return &o.ModifierGroup }).
		Attr("id", func(o *im) *m.Optional[string] { return &o.ID }).
		Attr("name", func(o *im) *m.Optional[string] { return &o.Name }).
		Number("loot_drop_score", func(o *im) *m.Optional[m.Number] { return &o.LootDropScore }).
		Number("production_drop_score", func(o *im) *m.Optional[m.Number] { return &o.ProductionDropScore }).
		Number("damage", func(o *im) *m.Optional[m.Number] { return &o.Damage }).
		Number("speed", func(o *im) *m.Optional[m.Number] { return &o.Speed }).
		Number("missile_speed", func(o *im) *m.Optional[m.Number] { return &o.MissileSpeed }).
		Number("price_factor", func(o *im) *m.Optional[m.Number] { return &o.PriceFactor }).
		Attr("quality", func(o *im) *m.Optional[string] { return &o.Quality }).
		Number("hit_points", func(o *im) *m.Optional[m.Number] { return &o.HitPoints }).
		Number("horse_speed", func(o *im) *m.Optional[m.Number] { return &o.HorseSpeed }).
		Number("stack_count", func(o *im) *m.Optional[m.Number] { return &o.StackCount }).
		Number("armor", func(o *im) *m.Optional[m.Number] { return &o.Armor }).
		Number("maneuver", func(o *im) *m.Optional[m.Number] { return &o.Maneuver }).
		Number("charge_damage", func(o *im) *m.Optional[m.Number] { return &o.ChargeDamage }).
		Number("horse_hit_points", func(o *im) *m.Optional[m.Number] { return &o.HorseHitPoints })

	root := schema.New[ItemModifiers]("ItemModifiers")
	schema.Many(root, modifier, func(o *ItemModifiers) *[]*ItemModifier { return &o.Modifiers })

	return root
}
