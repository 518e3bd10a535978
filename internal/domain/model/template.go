package model

type DisplayStyle string

const (
	StyleList      DisplayStyle = "list"
	StyleGrid      DisplayStyle = "grid"
	StyleTable     DisplayStyle = "table"
	StyleCards     DisplayStyle = "cards"
	StyleAccordion DisplayStyle = "accordion"
	StyleTabs      DisplayStyle = "tabs"
)

var DisplayStyles = []DisplayStyle{StyleList, StyleGrid, StyleTable, StyleCards, StyleAccordion, StyleTabs}

func (s DisplayStyle) Valid() bool {
	for _, v := range DisplayStyles {
		if v == s {
			return true
		}
	}
	return false
}

type SpecificationTemplate struct {
	ID                 int64               `json:"id"`
	Name               LocalizedText       `json:"name"`
	DisplayName        LocalizedText       `json:"display_name"`
	Description        LocalizedText       `json:"description"`
	DisplayStyle       DisplayStyle        `json:"display_style"`
	Sequence           int                 `json:"sequence"`
	IsDefault          bool                `json:"is_default"`
	WebsiteVisible     bool                `json:"website_visible"`
	WebsiteDescription LocalizedText       `json:"website_description"`
	Active             bool                `json:"active"`
	ApplyToBrandIDs    []int64             `json:"apply_to_brand_ids"`
	ApplyToModelIDs    []int64             `json:"apply_to_model_ids"`
	CategoryIDs        []int64             `json:"category_ids"`
	CategoryCount      int                 `json:"category_count"`
	Lines              []SpecificationLine `json:"lines"`
}

// SpecificationLine binds one attribute into a template. ID is zero until persisted.
type SpecificationLine struct {
	ID               int64         `json:"id"`
	AttributeID      int64         `json:"attribute_id"`
	AttributeName    LocalizedText `json:"attribute_name"`
	Sequence         int           `json:"sequence"`
	IsRequired       bool          `json:"is_required"`
	IsVisible        bool          `json:"is_visible"`
	IsFilterable     bool          `json:"is_filterable"`
	HelpText         LocalizedText `json:"help_text"`
	Placeholder      LocalizedText `json:"placeholder"`
	CategorySequence int           `json:"category_sequence"`
}

// LinePatch is a shallow merge; nil fields are kept.
type LinePatch struct {
	AttributeID      *int64         `json:"attribute_id"`
	Sequence         *int           `json:"sequence"`
	IsRequired       *bool          `json:"is_required"`
	IsVisible        *bool          `json:"is_visible"`
	IsFilterable     *bool          `json:"is_filterable"`
	HelpText         *LocalizedText `json:"help_text"`
	Placeholder      *LocalizedText `json:"placeholder"`
	CategorySequence *int           `json:"category_sequence"`
}

func (l SpecificationLine) Apply(p LinePatch) SpecificationLine {
	if p.AttributeID != nil {
		l.AttributeID = *p.AttributeID
	}
	if p.Sequence != nil {
		l.Sequence = *p.Sequence
	}
	if p.IsRequired != nil {
		l.IsRequired = *p.IsRequired
	}
	if p.IsVisible != nil {
		l.IsVisible = *p.IsVisible
	}
	if p.IsFilterable != nil {
		l.IsFilterable = *p.IsFilterable
	}
	if p.HelpText != nil {
		l.HelpText = *p.HelpText
	}
	if p.Placeholder != nil {
		l.Placeholder = *p.Placeholder
	}
	if p.CategorySequence != nil {
		l.CategorySequence = *p.CategorySequence
	}
	return l
}

// SameContent compares the persisted fields of two lines.
func (l SpecificationLine) SameContent(other SpecificationLine) bool {
	return l.AttributeID == other.AttributeID &&
		l.Sequence == other.Sequence &&
		l.IsRequired == other.IsRequired &&
		l.IsVisible == other.IsVisible &&
		l.IsFilterable == other.IsFilterable &&
		l.CategorySequence == other.CategorySequence &&
		sameText(l.HelpText, other.HelpText) &&
		sameText(l.Placeholder, other.Placeholder)
}

func sameText(a, b LocalizedText) bool {
	if a.Kind() != b.Kind() {
		return a.IsBlank() && b.IsBlank()
	}
	if a.Kind() == TextPlain {
		return a.Plain() == b.Plain()
	}
	av, bv := a.Values(), b.Values()
	if len(av) != len(bv) {
		return false
	}
	for k, v := range av {
		if bv[k] != v {
			return false
		}
	}
	return true
}

// LineOp is one entry of an Odoo one2many command list.
type LineOp int

const (
	LineCreate LineOp = 0
	LineUpdate LineOp = 1
	LineDelete LineOp = 2
)

type LineCommand struct {
	Op   LineOp            `json:"op"`
	ID   int64             `json:"id"`
	Line SpecificationLine `json:"line"`
}

// TemplateFields holds the scalar part of a template.
type TemplateFields struct {
	Name               LocalizedText `json:"name"`
	DisplayName        LocalizedText `json:"display_name"`
	Description        LocalizedText `json:"description"`
	DisplayStyle       DisplayStyle  `json:"display_style"`
	Sequence           int           `json:"sequence"`
	IsDefault          bool          `json:"is_default"`
	WebsiteVisible     bool          `json:"website_visible"`
	WebsiteDescription LocalizedText `json:"website_description"`
	Active             bool          `json:"active"`
	ApplyToBrandIDs    []int64       `json:"apply_to_brand_ids"`
	ApplyToModelIDs    []int64       `json:"apply_to_model_ids"`
	CategoryIDs        []int64       `json:"category_ids"`
}

func (t SpecificationTemplate) Fields() TemplateFields {
	return TemplateFields{
		Name:               t.Name,
		DisplayName:        t.DisplayName,
		Description:        t.Description,
		DisplayStyle:       t.DisplayStyle,
		Sequence:           t.Sequence,
		IsDefault:          t.IsDefault,
		WebsiteVisible:     t.WebsiteVisible,
		WebsiteDescription: t.WebsiteDescription,
		Active:             t.Active,
		ApplyToBrandIDs:    append([]int64(nil), t.ApplyToBrandIDs...),
		ApplyToModelIDs:    append([]int64(nil), t.ApplyToModelIDs...),
		CategoryIDs:        append([]int64(nil), t.CategoryIDs...),
	}
}

type TemplateStatistics struct {
	Total          int `json:"total"`
	Default        int `json:"default"`
	WebsiteVisible int `json:"website_visible"`
	Lines          int `json:"lines"`
}

// TemplatePatch edits the scalar part of a template; nil fields are kept.
type TemplatePatch struct {
	Name               *LocalizedText `json:"name"`
	DisplayName        *LocalizedText `json:"display_name"`
	Description        *LocalizedText `json:"description"`
	DisplayStyle       *DisplayStyle  `json:"display_style"`
	Sequence           *int           `json:"sequence"`
	IsDefault          *bool          `json:"is_default"`
	WebsiteVisible     *bool          `json:"website_visible"`
	WebsiteDescription *LocalizedText `json:"website_description"`
	Active             *bool          `json:"active"`
	ApplyToBrandIDs    *[]int64       `json:"apply_to_brand_ids"`
	ApplyToModelIDs    *[]int64       `json:"apply_to_model_ids"`
	CategoryIDs        *[]int64       `json:"category_ids"`
}

func (f TemplateFields) Apply(p TemplatePatch) TemplateFields {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.DisplayName != nil {
		f.DisplayName = *p.DisplayName
	}
	if p.Description != nil {
		f.Description = *p.Description
	}
	if p.DisplayStyle != nil {
		f.DisplayStyle = *p.DisplayStyle
	}
	if p.Sequence != nil {
		f.Sequence = *p.Sequence
	}
	if p.IsDefault != nil {
		f.IsDefault = *p.IsDefault
	}
	if p.WebsiteVisible != nil {
		f.WebsiteVisible = *p.WebsiteVisible
	}
	if p.WebsiteDescription != nil {
		f.WebsiteDescription = *p.WebsiteDescription
	}
	if p.Active != nil {
		f.Active = *p.Active
	}
	if p.ApplyToBrandIDs != nil {
		f.ApplyToBrandIDs = append([]int64(nil), (*p.ApplyToBrandIDs)...)
	}
	if p.ApplyToModelIDs != nil {
		f.ApplyToModelIDs = append([]int64(nil), (*p.ApplyToModelIDs)...)
	}
	if p.CategoryIDs != nil {
		f.CategoryIDs = append([]int64(nil), (*p.CategoryIDs)...)
	}
	return f
}
