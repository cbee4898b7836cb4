package models

import (
	"modxml.dev/pkg/modxml/internal/domain/schema"
	m "modxml.dev/pkg/modxml/internal/model"
)

// CombatParameters is combat_parameters.xml.
type CombatParameters struct {
	schema.Layout
	Header
	Definitions m.Optional[*CombatDefinitions]
	Parameters  m.Optional[[]*CombatParameter]
}

// CombatDefinitions holds named constants referenced by parameter values.
type CombatDefinitions struct {
	schema.Layout
	Defs []*CombatDefinition
}

// CombatDefinition is <def name="" val=""/>.
type CombatDefinition struct {
	schema.Layout
	Name  m.Optional[string]
	Value m.Optional[string]
}

// CombatParameter tunes collision and rotation limits for one body kind.
type CombatParameter struct {
	schema.Layout
	ID                              m.Optional[string]
	CollisionCheckStartingPercent   m.Optional[m.Number]
	CollisionDamageStartingPercent  m.Optional[m.Number]
	CollisionCheckEndingPercent     m.Optional[m.Number]
	VerticalRotLimitMultiplierUp    m.Optional[m.Number]
	VerticalRotLimitMultiplierDown  m.Optional[m.Number]
	LeftRiderRotLimit               m.Optional[m.Number]
	LeftRiderMinRotLimit            m.Optional[m.Number]
	RightRiderRotLimit              m.Optional[m.Number]
	RightRiderMinRotLimit           m.Optional[m.Number]
	RiderLookDownLimit              m.Optional[m.Number]
	LeftLadderRotLimit              m.Optional[m.Number]
	RightLadderRotLimit             m.Optional[m.Number]
	WeaponOffset                    m.Optional[m.Number]
	CollisionRadius                 m.Optional[m.Number]
	AlternativeAttackCooldownPeriod m.Optional[m.Number]
	HitBoneIndex                    m.Optional[m.Number]
	ShoulderHitBoneIndex            m.Optional[m.Number]
	LookSlopeBlendFactorUpLimit     m.Optional[m.Number]
	LookSlopeBlendFactorDownLimit   m.Optional[m.Number]
	LookSlopeBlendSpeedFactor       m.Optional[m.Number]
	CustomCollisionCapsule          m.Optional[*CollisionCapsule]
}

// CollisionCapsule overrides the default collision shape. Points are
// written as "x, y, z" and kept as strings.
type CollisionCapsule struct {
	schema.Layout
	P1     m.Optional[string]
	P2     m.Optional[string]
	Radius m.Optional[m.Number]
}

// CombatParametersSchema binds combat_parameters.xml.
var CombatParametersSchema = combatParametersSchema()

func combatParametersSchema() *schema.Schema[CombatParameters] {
	def := schema.New[CombatDefinition]("def").
		Attr("name", func(o *CombatDefinition) *m.Optional[string] { return &o.Name }).
		Attr("val", func(o *CombatDefinition) *m.Optional[string] { return &o.Value })

	defs := schema.New[CombatDefinitions]("definitions")
	schema.Many(defs, def, func(o *CombatDefinitions) *[]*CombatDefinition { return &o.Defs })

	capsule := schema.New[CollisionCapsule]("custom_collision_capsule").
		Attr("p1", func(o *CollisionCapsule) *m.Optional[string] { return &o.P1 }).
		Attr("p2", func(o *CollisionCapsule) *m.Optional[string] { return &o.P2 }).
		Number("r", func(o *CollisionCapsule) *m.Optional[m.Number] { return &o.Radius })

	param := schema.New[CombatParameter]("combat_parameter").
		Attr("id", func(o *CombatParameter) *m.Optional[string] { return &o.ID })

	numbers := []struct {
		name string
		get  func(*CombatParameter) *m.Optional[m.Number]
	}{
		{"collision_check_starting_percent", func(o *CombatParameter) *m.Optional[m.Number] { return &o.CollisionCheckStartingPercent }},
		{"collision_damage_starting_percent", func(o *CombatParameter) *m.Optional[m.Number] { return &o.CollisionDamageStartingPercent }},
		{"collision_check_ending_percent", func(o *CombatParameter) *m.Optional[m.Number] { return &o.CollisionCheckEndingPercent }},
		{"vertical_rot_limit_multiplier_up", func(o *CombatParameter) *m.Optional[m.Number] { return &o.VerticalRotLimitMultiplierUp }},
		{"vertical_rot_limit_multiplier_down", func(o *CombatParameter) *m.Optional[m.Number] { return &o.VerticalRotLimitMultiplierDown }},
		{"left_rider_rot_limit", func(o *CombatParameter) *m.Optional[m.Number] { return &o.LeftRiderRotLimit }},
		{"left_rider_min_rot_limit", func(o *CombatParameter) *m.Optional[m.Number] { return &o.LeftRiderMinRotLimit }},
		{"right_rider_rot_limit", func(o *CombatParameter) *m.Optional[m.Number] { return &o.RightRiderRotLimit }},
		{"right_rider_min_rot_limit", func(o *CombatParameter) *m.Optional[m.Number] { return &o.RightRiderMinRotLimit }},
		{"rider_look_down_limit", func(o *CombatParameter) *m.Optional[m.Number] { return &o.RiderLookDownLimit }},
		{"left_ladder_rot_limit", func(o *CombatParameter) *m.Optional[m.Number] { return &o.LeftLadderRotLimit }},
		{"right_ladder_rot_limit", func(o *CombatParameter) *m.Optional[m.Number] { return &o.RightLadderRotLimit }},
		{"weapon_offset", func(o *CombatParameter) *m.Optional[m.Number] { return &o.WeaponOffset }},
		{"collision_radius", func(o *CombatParameter) *m.Optional[m.Number] { return &o.CollisionRadius }},
		{"alternative_attack_cooldown_period", func(o *CombatParameter) *m.Optional[m.Number] { return &o.AlternativeAttackCooldownPeriod }},
		{"hit_bone_index", func(o *CombatParameter) *m.Optional[m.Number] { return &o.HitBoneIndex }},
		{"shoulder_hit_bone_index", func(o *CombatParameter) *m.Optional[m.Number] { return &o.ShoulderHitBoneIndex }},
		{"look_slope_blend_factor_up_limit", func(o *CombatParameter) *m.Optional[m.Number] { return &o.LookSlopeBlendFactorUpLimit }},
		{"look_slope_blend_factor_down_limit", func(o *CombatParameter) *m.Optional[m.Number] { return &o.LookSlopeBlendFactorDownLimit }},
		{"look_slope_blend_speed_factor", func(o *CombatParameter) *m.Optional[m.Number] { return &o.LookSlopeBlendSpeedFactor }},
	}
	for _, n := range numbers {
		param.Number(n.name, n.get)
	}

	schema.One(param, capsule, func(o *CombatParameter) *m.Optional[*CollisionCapsule] { return &o.CustomCollisionCapsule })

	root := baseRoot(func(o *CombatParameters) *Header { return &o.Header })
	schema.One(root, defs, func(o *CombatParameters) *m.Optional[*CombatDefinitions] { return &o.Definitions })
	schema.Wrapped(root, "combat_parameters", param, func(o *CombatParameters) *m.Optional[[]*CombatParameter] {
		return &o.Parameters
	})

	return root
}
