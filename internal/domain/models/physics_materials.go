package models

import (
	"modxml.dev/pkg/modxml/internal/domain/schema"
	m "modxml.dev/pkg/modxml/internal/model"
)

// PhysicsMaterials is physics_materials.xml.
type PhysicsMaterials struct {
	schema.Layout
	Header
	Materials            m.Optional[[]*PhysicsMaterial]
	CollisionInfoClasses m.Optional[[]*CollisionInfoClass]
}

// PhysicsMaterial describes surface response for one material id.
type PhysicsMaterial struct {
	schema.Layout
	ID                                  m.Optional[string]
	StaticFriction                      m.Optional[m.Number]
	DynamicFriction                     m.Optional[m.Number]
	Restitution                         m.Optional[m.Number]
	Softness                            m.Optional[m.Number]
	LinearDamping                       m.Optional[m.Number]
	AngularDamping                      m.Optional[m.Number]
	DisplayColor                        m.Optional[string]
	RainSplashesEnabled                 m.Optional[bool]
	Flammable                           m.Optional[bool]
	OverrideMaterialNameForImpactSounds m.Optional[string]
	DontStickMissiles                   m.Optional[bool]
	AttacksCanPassThrough               m.Optional[bool]
}

// CollisionInfoClass is a sound and collision class name.
type CollisionInfoClass struct {
	schema.Layout
	Name m.Optional[string]
}

// PhysicsMaterialsSchema binds physics_materials.xml.
var PhysicsMaterialsSchema = physicsMaterialsSchema()

func physicsMaterialsSchema() *schema.Schema[PhysicsMaterials] {
	type pm = PhysicsMaterial

	material := schema.New[pm]("physics_material").
		Attr("id", func(o *pm) *m.Optional[string] { return &o.ID }).
		Number("static_friction", func(o *pm) *m.Optional[m.Number] { return &o.StaticFriction }).
		Number("dynamic_friction", func(o *pm) *m.Optional[m.Number] { return &o.DynamicFriction }).
		Number("restitution", func(o *pm) *m.Optional[m.Number] { return &o.Restitution }).
		Number("softness", func(o *pm) *m.Optional[m.Number] { return &o.Softness }).
		Number("linear_damping", func(o *pm) *m.Optional[m.Number] { return &o.LinearDamping }).
		Number("angular_damping", func(o *pm) *m.Optional[m.Number] { return &o.AngularDamping }).
		Attr("display_color", func(o *pm) *m.Optional[string] { return &o.DisplayColor }).
		Bool("rain_splashes_enabled", func(o *pm) *m.Optional[bool] { return &o.RainSplashesEnabled }).
		Bool("flammable", func(o *pm) *m.Optional[bool] { return &o.Flammable }).
		Attr("override_material_name_for_impact_sounds", func(o *pm) *m.Optional[string] {
			return &o.OverrideMaterialNameForImpactSounds
		}).
		Bool("dont_stick_missiles", func(o *pm) *m.Optional[bool] { return &o.DontStickMissiles }).
		Bool("attacks_can_pass_through", func(o *pm) *m.Optional[bool] { return &o.AttacksCanPassThrough })

	class := schema.New[CollisionInfoClass]("sound_and_collision_info_class_definition").
		Attr("name", func(o *CollisionInfoClass) *m.Optional[string] { return &o.Name })

	root := baseRoot(func(o *PhysicsMaterials) *Header { return &o.Header })
	schema.Wrapped(root, "physics_materials", material, func(o *PhysicsMaterials) *m.Optional[[]*PhysicsMaterial] {
		return &o.Materials
	})
	schema.Wrapped(root, "sound_and_collision_info_class_definitions", class,
		func(o *PhysicsMaterials) *m.Optional[[]*CollisionInfoClass] { return &o.CollisionInfoClasses })

	return root
}
