package models

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modxml.dev/pkg/modxml/internal/domain/schema"
	m "modxml.dev/pkg/modxml/internal/model"
	"modxml.dev/pkg/modxml/internal/xmltree"
)

func readSample(t *testing.T, name string) []byte {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	return data
}

func canonical(doc *xmltree.Document) *xmltree.Document {
	out := xmltree.Normalize(doc)
	trimText(out.Root)

	return out
}

func trimText(e *xmltree.Element) {
	e.Text = strings.TrimSpace(e.Text)

	for _, child := range e.Children {
		trimText(child)
	}
}

func TestRoundTrip_Samples(t *testing.T) {
	tests := []struct {
		file  string
		model string
	}{
		{"banner_icons.xml", "BannerIcons"},
		{"combat_parameters.xml", "CombatParameters"},
		{"item_modifiers.xml", "ItemModifiers"},
		{"movement_sets.xml", "MovementSets"},
		{"physics_materials.xml", "PhysicsMaterials"},
		{"skins.xml", "Skins"},
		{"std_module_strings_xml.xml", "LanguageStrings"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			doc, err := xmltree.Parse(readSample(t, tt.file))
			require.NoError(t, err)

			binding, err := Default().Resolve(m.Path(tt.file), doc)
			require.NoError(t, err)
			assert.Equal(t, tt.model, binding.Name)

			result, err := binding.Codec.RoundTrip(doc, schema.Strict())
			require.NoError(t, err)
			assert.Empty(t, result.Unmapped)

			reparsed, err := xmltree.Parse(result.Document.Bytes())
			require.NoError(t, err)

			assert.Equal(t, canonical(doc), canonical(reparsed))

			// Idempotent on its own output.
			again, err := binding.Codec.RoundTrip(reparsed)
			require.NoError(t, err)
			assert.Equal(t, result.Document.String(), again.Document.String())
		})
	}
}

func TestBannerIcons_TypedAccess(t *testing.T) {
	decoded, err := schema.Unmarshal(BannerIconsSchema, readSample(t, "banner_icons.xml"))
	require.NoError(t, err)

	root := decoded.Value
	assert.Equal(t, "banner_icons", root.Type.OrElse(""))

	data, ok := root.Data.Get()
	require.True(t, ok)
	require.Len(t, data.Groups, 2)

	backgrounds := data.Groups[0]
	assert.True(t, backgrounds.IsPattern.OrElse(false))
	require.Len(t, backgrounds.Backgrounds, 2)
	assert.False(t, backgrounds.Backgrounds[0].IsBaseBackground.IsPresent())
	assert.True(t, backgrounds.Backgrounds[1].IsBaseBackground.OrElse(false))

	icons := data.Groups[1].Icons
	require.Len(t, icons, 3)

	index, err := icons[2].TextureIndex.OrElse("").Int()
	require.NoError(t, err)
	assert.Equal(t, 2, index)
	assert.Equal(t, m.Number("02"), icons[2].TextureIndex.OrElse(""))

	material, ok := icons[2].MaterialName.Get()
	assert.True(t, ok)
	assert.Empty(t, material)

	colors, ok := data.Colors.Get()
	require.True(t, ok)
	require.Len(t, colors.Colors, 3)
	assert.False(t, colors.Colors[1].PlayerCanChooseForBackground.IsPresent())
	assert.False(t, colors.Colors[1].PlayerCanChooseForSigil.OrElse(true))
}

func TestCombatParameters_CapsuleAndDefinitions(t *testing.T) {
	decoded, err := schema.Unmarshal(CombatParametersSchema, readSample(t, "combat_parameters.xml"))
	require.NoError(t, err)

	defs, ok := decoded.Value.Definitions.Get()
	require.True(t, ok)
	require.Len(t, defs.Defs, 2)
	assert.True(t, defs.Defs[1].Value.IsPresent())

	params, ok := decoded.Value.Parameters.Get()
	require.True(t, ok)
	require.Len(t, params, 3)

	assert.False(t, params[0].CustomCollisionCapsule.IsPresent())

	capsule, ok := params[1].CustomCollisionCapsule.Get()
	require.True(t, ok)
	assert.Equal(t, "0, 0.8, 0.1", capsule.P2.OrElse(""))

	factor, err := params[1].LookSlopeBlendSpeedFactor.OrElse("").Float64()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, factor, 1e-9)
}

func TestItemModifiers_TypedAccess(t *testing.T) {
	decoded, err := schema.Unmarshal(ItemModifiersSchema, readSample(t, "item_modifiers.xml"))
	require.NoError(t, err)

	mods := decoded.Value.Modifiers
	require.Len(t, mods, 4)
	assert.Equal(t, "rusty", mods[0].ID.OrElse(""))
	assert.Equal(t, m.Number("-3"), mods[0].Damage.OrElse(""))
	assert.False(t, mods[0].HorseSpeed.IsPresent())

	hp, ok := mods[1].HitPoints.Get()
	assert.True(t, ok, "empty number attribute is present")
	assert.Empty(t, hp)

	assert.Equal(t, m.Number("1.5"), mods[2].Maneuver.OrElse(""))
	assert.Equal(t, m.Number("6"), mods[3].StackCount.OrElse(""))
}

func TestMovementSets_TypedAccess(t *testing.T) {
	decoded, err := schema.Unmarshal(MovementSetsSchema, readSample(t, "movement_sets.xml"))
	require.NoError(t, err)

	sets := decoded.Value.Sets
	require.Len(t, sets, 2)
	assert.Equal(t, "act_turn_unarmed", sets[0].Rotate.OrElse(""))
	assert.False(t, sets[0].ForwardAdder.IsPresent())
	assert.Equal(t, "act_run_forward_unarmed_adder", sets[1].ForwardAdder.OrElse(""))
	assert.True(t, sets[1].BackwardAdder.IsPresent())
	assert.False(t, sets[1].Idle.IsPresent())
}

func TestSkins_NestedWrappers(t *testing.T) {
	decoded, err := schema.Unmarshal(SkinsSchema, readSample(t, "skins.xml"))
	require.NoError(t, err)

	assert.Equal(t, "skin", decoded.Value.Type.OrElse(""))

	skins, ok := decoded.Value.Skins.Get()
	require.True(t, ok)
	require.Len(t, skins, 2)

	male := skins[0]
	skeleton, ok := male.Skeleton.Get()
	require.True(t, ok)
	assert.Equal(t, m.Number("1.0"), skeleton.Scale.OrElse(""))

	beards, ok := male.BeardMeshes.Get()
	assert.True(t, ok, "empty wrapper is present")
	assert.Empty(t, beards)

	voices, ok := male.VoiceTypes.Get()
	require.True(t, ok)
	require.Len(t, voices, 1)
	assert.Equal(t, "male_01", voices[0].SoundPrefix.OrElse(""))

	bodies, ok := male.BodyMeshes.Get()
	require.True(t, ok)
	assert.Equal(t, m.Number("0.50"), bodies[0].Build.OrElse(""))

	female := skins[1]
	assert.False(t, female.HairMeshes.IsPresent())
	assert.False(t, female.Age.IsPresent())
}

func TestPhysicsMaterials_InvalidBool(t *testing.T) {
	_, err := schema.Unmarshal(PhysicsMaterialsSchema, []byte(
		`<base type="physics_materials"><physics_materials><physics_material id="x" flammable="maybe"/></physics_materials></base>`))
	require.Error(t, err)

	var fieldErr *m.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "/base/physics_materials[0]/physics_material[0]", fieldErr.Path)
	assert.Equal(t, "flammable", fieldErr.Field)
	assert.Equal(t, "maybe", fieldErr.Value)
}

func TestLanguageStrings_Project(t *testing.T) {
	decoded, err := schema.Unmarshal(LanguageStringsSchema, []byte(`<base type="string">
	<tags><tag language="English"/></tags>
	<strings><string id="a" text=""/></strings>
</base>`))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"type": "string",
		"tags": []any{map[string]any{"language": "English"}},
		"strings": []any{
			map[string]any{"id": "a", "text": ""},
		},
	}, schema.Project(LanguageStringsSchema, decoded.Value))
}

func TestMappedName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"banner_icons.xml", "BannerIcons"},
		{"combat_parameters.XML", "CombatParameters"},
		{"dir/physics_materials.xml", "PhysicsMaterials"},
		{"looknfeel.xml", "LookAndFeel"},
		{"action.xml", "ActionType"},
		{"std_functions.xml", "LanguageBase"},
		{"std_anything_new.xml", "LanguageBase"},
		{"particle_systems2.xml", "ParticleSystems2"},
		{"Mixed_CASE", "MixedCase"},
		{"double__underscore", "DoubleUnderscore"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, MappedName(tt.in))
		})
	}
}

func TestResolve(t *testing.T) {
	registry, err := Default().WithDefinitions([]m.ModelDefinition{
		{Model: "PhysicsMaterials", Files: []string{"custom_*.xml"}, Source: "defs.yaml"},
	})
	require.NoError(t, err)

	doc := func(source string) *xmltree.Document {
		d, err := xmltree.Parse([]byte(source))
		require.NoError(t, err)

		return d
	}

	tests := []struct {
		name string
		file m.Path
		doc  *xmltree.Document
		want string
	}{
		{"definition", "mods/custom_mats.xml", doc(`<base/>`), "PhysicsMaterials"},
		{"definition wins over convention", "custom_strings.xml", doc(`<base/>`), "PhysicsMaterials"},
		{"convention", "banner_icons.xml", doc(`<base/>`), "BannerIcons"},
		{"alias", "std_functions.xml", doc(`<base/>`), "LanguageStrings"},
		{"glob", "module_strings.xml", doc(`<base/>`), "LanguageStrings"},
		{"root and type", "renamed.xml", doc(`<base type="combat_parameters"/>`), "CombatParameters"},
		{"root without type", "renamed.xml", doc(`<ItemModifiers/>`), "ItemModifiers"},
		{"flat root", "renamed.xml", doc(`<movement_sets/>`), "MovementSets"},
		{"skin type", "renamed.xml", doc(`<base type="skin"/>`), "Skins"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := registry.Resolve(tt.file, tt.doc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.Name)
		})
	}

	mismatches := []struct {
		name string
		doc  *xmltree.Document
		root string
	}{
		{"unknown root", doc(`<items/>`), "items"},
		{"unknown type", doc(`<base type="items"/>`), "base"},
		{"no type", doc(`<base/>`), "base"},
	}

	for _, tt := range mismatches {
		t.Run(tt.name, func(t *testing.T) {
			_, err := registry.Resolve("other.xml", tt.doc)

			var mismatch *m.ModelMismatchError
			require.ErrorAs(t, err, &mismatch)
			assert.Equal(t, m.Path("other.xml"), mismatch.File)
			assert.Equal(t, tt.root, mismatch.Root)
		})
	}
}

func TestWithDefinitions(t *testing.T) {
	_, err := Default().WithDefinitions([]m.ModelDefinition{{Model: "Nope", Source: "a.yaml"}})
	assert.ErrorIs(t, err, ErrUnknownModel)

	_, err = Default().WithDefinitions([]m.ModelDefinition{{Model: "BannerIcons", Files: []string{"[bad"}}})
	assert.Error(t, err)

	// The default registry is not modified.
	assert.Empty(t, Default().Definitions())
}

func TestRegistry_BindingsAndLookup(t *testing.T) {
	roots := make(map[string]string)
	names := make([]string, 0, len(Default().Bindings()))

	for _, b := range Default().Bindings() {
		names = append(names, b.Name)
		roots[b.Name] = b.Root
	}

	assert.Equal(t, []string{
		"BannerIcons", "CombatParameters", "ItemModifiers", "LanguageStrings",
		"MovementSets", "PhysicsMaterials", "Skins",
	}, names)
	assert.Equal(t, "base", roots["Skins"])
	assert.Equal(t, "ItemModifiers", roots["ItemModifiers"])
	assert.Equal(t, "movement_sets", roots["MovementSets"])

	b, ok := Default().Lookup("languagebase")
	require.True(t, ok)
	assert.Equal(t, "LanguageStrings", b.Name)

	_, ok = Default().Lookup("missing")
	assert.False(t, ok)
}
