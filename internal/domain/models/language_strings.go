package models

import (
	"modxml.dev/pkg/modxml/internal/domain/schema"
	m "modxml.dev/pkg/modxml/internal/model"
)

// LanguageStrings is a localization file: std_*.xml, module_strings.xml and
// other *_strings.xml documents.
type LanguageStrings struct {
	schema.Layout
	Header
	Tags      m.Optional[[]*LanguageTag]
	Strings   m.Optional[[]*LocalizedString]
	Functions m.Optional[[]*LanguageFunction]
}

// LanguageTag names the language of the file.
type LanguageTag struct {
	schema.Layout
	Language m.Optional[string]
}

// LocalizedString is one translated entry.
type LocalizedString struct {
	schema.Layout
	ID   m.Optional[string]
	Text m.Optional[string]
}

// LanguageFunction is a text macro such as MAX or POW2.
type LanguageFunction struct {
	schema.Layout
	Name m.Optional[string]
	Body m.Optional[string]
}

// LanguageStringsSchema binds localization files.
var LanguageStringsSchema = languageStringsSchema()

func languageStringsSchema() *schema.Schema[LanguageStrings] {
	tag := schema.New[LanguageTag]("tag").
		Attr("language", func(o *LanguageTag) *m.Optional[string] { return &o.Language })

	str := schema.New[LocalizedString]("string").
		Attr("id", func(o *LocalizedString) *m.Optional[string] { return &o.ID }).
		Attr("text", func(o *LocalizedString) *m.Optional[string] { return &o.Text })

	fn := schema.New[LanguageFunction]("function").
		Attr("functionName", func(o *LanguageFunction) *m.Optional[string] { return &o.Name }).
		Attr("functionBody", func(o *LanguageFunction) *m.Optional[string] { return &o.Body })

	root := baseRoot(func(o *LanguageStrings) *Header { return &o.Header })
	schema.Wrapped(root, "tags", tag, func(o *LanguageStrings) *m.Optional[[]*LanguageTag] { return &o.Tags })
	schema.Wrapped(root, "strings", str, func(o *LanguageStrings) *m.Optional[[]*LocalizedString] { return &o.Strings })
	schema.Wrapped(root, "functions", fn, func(o *LanguageStrings) *m.Optional[[]*LanguageFunction] {
		return &o.Functions
	})

	return root
}
