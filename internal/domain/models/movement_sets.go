package models

import (
	"modxml.dev/pkg/modxml/internal/domain/schema"
	m "modxml.dev/pkg/modxml/internal/model"
)

// MovementSets is movement_sets.xml.
type MovementSets struct {
	schema.Layout
	Sets []*MovementSet
}

// MovementSet names the action played for each movement direction.
type MovementSet struct {
	schema.Layout
	ID               m.Optional[string]
	Idle             m.Optional[string]
	Forward          m.Optional[string]
	Backward         m.Optional[string]
	Right            m.Optional[string]
	RightBack        m.Optional[string]
	Left             m.Optional[string]
	LeftBack         m.Optional[string]
	LeftToRight      m.Optional[string]
	RightToLeft      m.Optional[string]
	Rotate           m.Optional[string]
	ForwardAdder     m.Optional[string]
	BackwardAdder    m.Optional[string]
	RightAdder       m.Optional[string]
	RightBackAdder   m.Optional[string]
	LeftAdder        m.Optional[string]
	LeftBackAdder    m.Optional[string]
	LeftToRightAdder m.Optional[string]
	RightToLeftAdder m.Optional[string]
}

// MovementSetsSchema binds movement_sets.xml.
var MovementSetsSchema = movementSetsSchema()

func movementSetsSchema() *schema.Schema[MovementSets] {
	type ms = MovementSet

	set := schema.New[ms]("movement_set").
		Attr("id", func(o *ms) *m.Optional[string] { return &o.ID }).
		Attr("idle", func(o *ms) *m.Optional[string] { return &o.Idle }).
		Attr("forward", func(o *ms) *m.Optional[string] { return &o.Forward }).
		Attr("backward", func(o *ms) *m.Optional[string] { return &o.Backward }).
		Attr("right", func(o *ms) *m.Optional[string] { return &o.Right }).
		Attr("right_back", func(o *ms) *m.Optional[string] { return &o.RightBack }).
		Attr("left", func(o *ms) *m.Optional[string] { return &o.Left }).
		Attr("left_back", func(o *ms) *m.Optional[string] { return &o.LeftBack }).
		Attr("left_to_right", func(o *ms) *m.Optional[string] { return &o.LeftToRight }).
		Attr("right_to_left", func(o *ms) *m.Optional[string] { return &o.RightToLeft }).
		Attr("rotate", func(o *ms) *m.Optional[string] { return &o.Rotate }).
		Attr("forward_adder", func(o *ms) *m.Optional[string] { return &o.ForwardAdder }).
		Attr("backward_adder", func(o *ms) *m.Optional[string] { return &o.BackwardAdder }).
		Attr("right_adder", func(o *ms) *m.Optional[string] { return &o.RightAdder }).
		Attr("right_back_adder", func(o *ms) *m.Optional[string] { return &o.RightBackAdder }).
		Attr("left_adder", func(o *ms) *m.Optional[string] { return &o.LeftAdder }).
		Attr("left_back_adder", func(o *ms) *m.Optional[string] { return &o.LeftBackAdder }).
		Attr("left_to_right_adder", func(o *ms) *m.Optional[string] { return &o.LeftToRightAdder }).
		Attr("right_to_left_adder", func(o *ms) *m.Optional[string] { return &o.RightToLeftAdder })

	root := schema.New[MovementSets]("movement_sets")
	schema.Many(root, set, func(o *MovementSets) *[]*MovementSet { return &o.Sets })

	return root
}
