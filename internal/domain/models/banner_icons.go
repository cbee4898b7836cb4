package models

import (
	"modxml.dev/pkg/modxml/internal/domain/schema"
	m "modxml.dev/pkg/modxml/internal/model"
)

// BannerIcons is banner_icons.xml.
type BannerIcons struct {
	schema.Layout
	Header
	Data m.Optional[*BannerIconData]
}

// BannerIconData holds the icon groups and the color palette.
type BannerIconData struct {
	schema.Layout
	Groups []*BannerIconGroup
	Colors m.Optional[*BannerColors]
}

// BannerIconGroup is a named set of backgrounds or sigils.
type BannerIconGroup struct {
	schema.Layout
	ID          m.Optional[m.Number]
	Name        m.Optional[string]
	IsPattern   m.Optional[bool]
	Backgrounds []*BannerBackground
	Icons       []*BannerIcon
}

// BannerBackground is a background mesh.
type BannerBackground struct {
	schema.Layout
	ID               m.Optional[m.Number]
	MeshName         m.Optional[string]
	IsBaseBackground m.Optional[bool]
}

// BannerIcon is a sigil texture slot.
type BannerIcon struct {
	schema.Layout
	ID           m.Optional[m.Number]
	MaterialName m.Optional[string]
	TextureIndex m.Optional[m.Number]
	IsReserved   m.Optional[bool]
}

// BannerColors is the banner palette.
type BannerColors struct {
	schema.Layout
	Colors []*BannerColor
}

// BannerColor is a palette entry.
type BannerColor struct {
	schema.Layout
	ID                           m.Optional[m.Number]
	Hex                          m.Optional[string]
	PlayerCanChooseForBackground m.Optional[bool]
	PlayerCanChooseForSigil      m.Optional[bool]
}

// BannerIconsSchema binds banner_icons.xml.
var BannerIconsSchema = bannerIconsSchema()

func bannerIconsSchema() *schema.Schema[BannerIcons] {
	background := schema.New[BannerBackground]("Background").
		Number("id", func(o *BannerBackground) *m.Optional[m.Number] { return &o.ID }).
		Attr("mesh_name", func(o *BannerBackground) *m.Optional[string] { return &o.MeshName }).
		Bool("is_base_background", func(o *BannerBackground) *m.Optional[bool] { return &o.IsBaseBackground })

	icon := schema.New[BannerIcon]("Icon").
		Number("id", func(o *BannerIcon) *m.Optional[m.Number] { return &o.ID }).
		Attr("material_name", func(o *BannerIcon) *m.Optional[string] { return &o.MaterialName }).
		Number("texture_index", func(o *BannerIcon) *m.Optional[m.Number] { return &o.TextureIndex }).
		Bool("is_reserved", func(o *BannerIcon) *m.Optional[bool] { return &o.IsReserved })

	group := schema.New[BannerIconGroup]("BannerIconGroup").
		Number("id", func(o *BannerIconGroup) *m.Optional[m.Number] { return &o.ID }).
		Attr("name", func(o *BannerIconGroup) *m.Optional[string] { return &o.Name }).
		Bool("is_pattern", func(o *BannerIconGroup) *m.Optional[bool] { return &o.IsPattern })
	schema.Many(group, background, func(o *BannerIconGroup) *[]*BannerBackground { return &o.Backgrounds })
	schema.Many(group, icon, func(o *BannerIconGroup) *[]*BannerIcon { return &o.Icons })

	color := schema.New[BannerColor]("Color").
		Number("id", func(o *BannerColor) *m.Optional[m.Number] { return &o.ID }).
		Attr("hex", func(o *BannerColor) *m.Optional[string] { return &o.Hex }).
		Bool("player_can_choose_for_background", func(o *BannerColor) *m.Optional[bool] {
			return &o.PlayerCanChooseForBackground
		}).
		Bool("player_can_choose_for_sigil", func(o *BannerColor) *m.Optional[bool] { return &o.PlayerCanChooseForSigil })

	colors := schema.New[BannerColors]("BannerColors")
	schema.Many(colors, color, func(o *BannerColors) *[]*BannerColor { return &o.Colors })

	data := schema.New[BannerIconData]("BannerIconData")
	schema.Many(data, group, func(o *BannerIconData) *[]*BannerIconGroup { return &o.Groups })
	schema.One(data, colors, func(o *BannerIconData) *m.Optional[*BannerColors] { return &o.Colors })

	root := baseRoot(func(o *BannerIcons) *Header { return &o.Header })
	schema.One(root, data, func(o *BannerIcons) *m.Optional[*BannerIconData] { return &o.Data })

	return root
}
