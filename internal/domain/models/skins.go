package models

import (
	"modxml.dev/pkg/modxml/internal/domain/schema"
	m "modxml.dev/pkg/modxml/internal/model"
)

// Skins is skins.xml: the character skin definitions of each race.
type Skins struct {
	schema.Layout
	Header
	Skins m.Optional[[]*Skin]
}

// Skin is one race and gender appearance set.
type Skin struct {
	schema.Layout
	ID              m.Optional[string]
	Name            m.Optional[string]
	Race            m.Optional[string]
	Gender          m.Optional[string]
	Age             m.Optional[string]
	Skeleton        m.Optional[*SkinSkeleton]
	HairMeshes      m.Optional[[]*SkinMesh]
	BeardMeshes     m.Optional[[]*SkinMesh]
	VoiceTypes      m.Optional[[]*SkinVoice]
	FaceTextures    m.Optional[[]*SkinTexture]
	BodyMeshes      m.Optional[[]*SkinMesh]
	TattooMaterials m.Optional[[]*SkinTexture]
}

// SkinSkeleton selects the skeleton of a skin.
type SkinSkeleton struct {
	schema.Layout
	Name  m.Optional[string]
	Scale m.Optional[m.Number]
}

// SkinMesh is a hair, beard or body mesh entry.
type SkinMesh struct {
	schema.Layout
	ID            m.Optional[string]
	Name          m.Optional[string]
	Mesh          m.Optional[string]
	Material      m.Optional[string]
	HairCoverType m.Optional[string]
	BodyName      m.Optional[string]
	BodyPart      m.Optional[string]
	Weight        m.Optional[m.Number]
	Build         m.Optional[m.Number]
}

// SkinVoice is a voice type.
type SkinVoice struct {
	schema.Layout
	ID          m.Optional[string]
	Name        m.Optional[string]
	SoundPrefix m.Optional[string]
	Pitch       m.Optional[m.Number]
}

// SkinTexture is a face texture or tattoo material entry.
type SkinTexture struct {
	schema.Layout
	ID           m.Optional[string]
	Name         m.Optional[string]
	Texture      m.Optional[string]
	NormalMap    m.Optional[string]
	SpecularMap  m.Optional[string]
	ColorMask    m.Optional[string]
	AlphaTexture m.Optional[string]
}

// SkinsSchema binds skins.xml.
var SkinsSchema = skinsSchema()

func skinMeshSchema(name string) *schema.Schema[SkinMesh] {
	return schema.New[SkinMesh](name).
		Attr("id", func(o *SkinMesh) *m.Optional[string] { return &o.ID }).
		Attr("name", func(o *SkinMesh) *m.Optional[string] { return &o.Name }).
		Attr("mesh", func(o *SkinMesh) *m.Optional[string] { return &o.Mesh }).
		Attr("material", func(o *SkinMesh) *m.Optional[string] { return &o.Material }).
		Attr("hair_cover_type", func(o *SkinMesh) *m.Optional[string] { return &o.HairCoverType }).
		Attr("body_name", func(o *SkinMesh) *m.Optional[string] { return &o.BodyName }).
		Attr("body_part", func(o *SkinMesh) *m.Optional[string] { return &o.BodyPart }).
		Number("weight", func(o *SkinMesh) *m.Optional[m.Number] { return &o.Weight }).
		Number("build", func(o *SkinMesh) *m.Optional[m.Number] { return &o.Build })
}

func skinTextureSchema(name string) *schema.Schema[SkinTexture] {
	return schema.New[SkinTexture](name).
		Attr("id", func(o *SkinTexture) *m.Optional[string] { return &o.ID }).
		Attr("name", func(o *SkinTexture) *m.Optional[string] { return &o.Name }).
		Attr("texture", func(o *SkinTexture) *m.Optional[string] { return &o.Texture }).
		Attr("normal_map", func(o *SkinTexture) *m.Optional[string] { return &o.NormalMap }).
		Attr("specular_map", func(o *SkinTexture) *m.Optional[string] { return &o.SpecularMap }).
		Attr("color_mask", func(o *SkinTexture) *m.Optional[string] { return &o.ColorMask }).
		Attr("alpha_texture", func(o *SkinTexture) *m.Optional[string] { return &o.AlphaTexture })
}

func skinsSchema() *schema.Schema[Skins] {
	skeleton := schema.New[SkinSkeleton]("skeleton").
		Attr("name", func(o *SkinSkeleton) *m.Optional[string] { return &o.Name }).
		Number("scale", func(o *SkinSkeleton) *m.Optional[m.Number] { return &o.Scale })

	voice := schema.New[SkinVoice]("voice").
		Attr("id", func(o *SkinVoice) *m.Optional[string] { return &o.ID }).
		Attr("name", func(o *SkinVoice) *m.Optional[string] { return &o.Name }).
		Attr("sound_prefix", func(o *SkinVoice) *m.Optional[string] { return &o.SoundPrefix }).
		Number("pitch", func(o *SkinVoice) *m.Optional[m.Number] { return &o.Pitch })

	skin := schema.New[Skin]("skin").
		Attr("id", func(o *Skin) *m.Optional[string] { return &o.ID }).
		Attr("name", func(o *Skin) *m.Optional[string] { return &o.Name }).
		Attr("race", func(o *Skin) *m.Optional[string] { return &o.Race }).
		Attr("gender", func(o *Skin) *m.Optional[string] { return &o.Gender }).
		Attr("age", func(o *Skin) *m.Optional[string] { return &o.Age })
	schema.One(skin, skeleton, func(o *Skin) *m.Optional[*SkinSkeleton] { return &o.Skeleton })
	schema.Wrapped(skin, "hair_meshes", skinMeshSchema("hair_mesh"),
		func(o *Skin) *m.Optional[[]*SkinMesh] { return &o.HairMeshes })
	schema.Wrapped(skin, "beard_meshes", skinMeshSchema("beard_mesh"),
		func(o *Skin) *m.Optional[[]*SkinMesh] { return &o.BeardMeshes })
	schema.Wrapped(skin, "voice_types", voice, func(o *Skin) *m.Optional[[]*SkinVoice] { return &o.VoiceTypes })
	schema.Wrapped(skin, "face_textures", skinTextureSchema("face_texture"),
		func(o *Skin) *m.Optional[[]*SkinTexture] { return &o.FaceTextures })
	schema.Wrapped(skin, "body_meshes", skinMeshSchema("body_mesh"),
		func(o *Skin) *m.Optional[[]*SkinMesh] { return &o.BodyMeshes })
	schema.Wrapped(skin, "tattoo_materials", skinTextureSchema("tattoo_material"),
		func(o *Skin) *m.Optional[[]*SkinTexture] { return &o.TattooMaterials })

	root := baseRoot(func(o *Skins) *Header { return &o.Header })
	schema.Wrapped(root, "skins", skin, func(o *Skins) *m.Optional[[]*Skin] { return &o.Skins })

	return root
}
