package models

import (
	"path/filepath"
	"strings"
)

// specialNames resolves names the plain snake_case conversion gets wrong.
var specialNames = map[string]string{
	"action":                           "ActionType",
	"actions":                          "ActionTypes",
	"object":                           "GameObjectType",
	"objects":                          "GameObjects",
	"mp_crafting_pieces":               "MpCraftingPieces",
	"mpbodypropertytemplates":          "MpBodyPropertyTemplates",
	"mpclassdivisions":                 "MpClassDivisions",
	"mpcosmetics":                      "MpCosmetics",
	"before_transparents_graph":        "BeforeTransparentsGraph",
	"thumbnail_postfx_graphs":          "ThumbnailPostfxGraphs",
	"particle_systems2":                "ParticleSystems2",
	"particle_systems_hardcoded_misc1": "ParticleSystemsHardcodedMisc1",
	"particle_systems_hardcoded_misc2": "ParticleSystemsHardcodedMisc2",
	"looknfeel":                        "LookAndFeel",
	"flora_layer_sets":                 "FloraLayerSets",
	"prebaked_animations":              "PrebakedAnimations",
	"prerender":                        "Prerender",
}

const languagePrefix = "std_"

// MappedName converts an XML file name to its model name: banner_icons.xml
// becomes BannerIcons, looknfeel.xml becomes LookAndFeel and every std_*
// localization file maps to LanguageBase.
func MappedName(fileName string) string {
	name := filepath.Base(fileName)
	if ext := filepath.Ext(name); strings.EqualFold(ext, ".xml") {
		name = name[:len(name)-len(ext)]
	}

	lower := strings.ToLower(name)
	if lower == "" {
		return ""
	}

	if mapped, ok := specialNames[lower]; ok {
		return mapped
	}

	if strings.HasPrefix(lower, languagePrefix) {
		return "LanguageBase"
	}

	return pascalCase(lower)
}

func pascalCase(snake string) string {
	var b strings.Builder

	for _, part := range strings.Split(snake, "_") {
		if part == "" {
			continue
		}

		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}

	return b.String()
}
