package odoo

import (
	"strings"

	"dealership-backoffice/internal/domain/model"

	"github.com/shopspring/decimal"
)

func putText(values map[string]any, key string, t *model.LocalizedText) {
	if t != nil {
		values[key] = textValue(*t)
	}
}

func putString(values map[string]any, key string, s *string) {
	if s != nil {
		values[key] = strings.TrimSpace(*s)
	}
}

func putBool(values map[string]any, key string, b *bool) {
	if b != nil {
		values[key] = *b
	}
}

func putInt(values map[string]any, key string, n *int) {
	if n != nil {
		values[key] = *n
	}
}

func putMoney(values map[string]any, key string, d *decimal.Decimal) {
	if d != nil {
		values[key] = money(*d)
	}
}

func attributeDraftValues(d model.AttributeDraft) map[string]any {
	values := map[string]any{
		"name":                textValue(d.Name),
		"display_type":        string(d.DisplayType),
		"is_key_attribute":    d.IsKeyAttribute,
		"is_filterable":       d.IsFilterable,
		"is_website_spec":     d.IsWebsiteSpec,
		"display_in_car_info": d.DisplayInCarInfo,
		"create_variant":      d.CreateVariant,
		"allow_multi_select":  d.AllowMultiSelect,
		"filter_priority":     d.FilterPriority,
	}
	setText(values, "display_name", d.DisplayName)
	setText(values, "description", d.Description)
	setString(values, "category_type", d.CategoryType)
	setString(values, "edit_widget", d.EditWidget)
	setString(values, "icon", d.Icon)
	setString(values, "car_info_icon", d.CarInfoIcon)
	return values
}

func attributePatchValues(p model.AttributePatch) map[string]any {
	values := make(map[string]any)
	putText(values, "name", p.Name)
	putText(values, "display_name", p.DisplayName)
	putText(values, "description", p.Description)
	if p.DisplayType != nil {
		values["display_type"] = string(*p.DisplayType)
	}
	putString(values, "category_type", p.CategoryType)
	putBool(values, "is_key_attribute", p.IsKeyAttribute)
	putBool(values, "is_filterable", p.IsFilterable)
	putBool(values, "is_website_spec", p.IsWebsiteSpec)
	putBool(values, "display_in_car_info", p.DisplayInCarInfo)
	putBool(values, "create_variant", p.CreateVariant)
	putBool(values, "allow_multi_select", p.AllowMultiSelect)
	putInt(values, "filter_priority", p.FilterPriority)
	putString(values, "edit_widget", p.EditWidget)
	putString(values, "icon", p.Icon)
	putString(values, "car_info_icon", p.CarInfoIcon)
	putInt(values, "sequence", p.Sequence)
	putBool(values, "active", p.Active)
	return values
}

func attributeValueDraftValues(attributeID int64, d model.AttributeValueDraft) map[string]any {
	values := map[string]any{
		"attribute_id":        attributeID,
		"name":                textValue(d.Name),
		"sequence":            d.Sequence,
		"active":              activeOrDefault(d.Active),
		"is_custom":           d.IsCustom,
		"default_extra_price": money(d.DefaultExtraPrice),
	}
	if d.Color != 0 {
		values["color"] = d.Color
	}
	setString(values, "html_color", d.HTMLColor)
	setString(values, "image", d.Image)
	return values
}

func attributeValuePatchValues(p model.AttributeValuePatch) map[string]any {
	values := make(map[string]any)
	putText(values, "name", p.Name)
	putInt(values, "sequence", p.Sequence)
	putBool(values, "active", p.Active)
	putInt(values, "color", p.Color)
	putString(values, "html_color", p.HTMLColor)
	putString(values, "image", p.Image)
	putBool(values, "is_custom", p.IsCustom)
	putMoney(values, "default_extra_price", p.DefaultExtraPrice)
	return values
}

func categoryDraftValues(d model.CategoryDraft) map[string]any {
	values := map[string]any{
		"name":                    textValue(d.Name),
		"active":                  activeOrDefault(d.Active),
		"sequence":                d.Sequence,
		"website_sequence":        d.WebsiteSequence,
		"is_information_category": d.IsInformationCategory,
		"is_inline_editable":      d.IsInlineEditable,
		"is_website_visible":      d.IsWebsiteVisible,
		"website_fold_by_default": d.WebsiteFoldByDefault,
	}
	setText(values, "display_name", d.DisplayName)
	setText(values, "description", d.Description)
	setString(values, "display_type", d.DisplayType)
	setString(values, "icon", d.Icon)
	setString(values, "icon_display_type", d.IconDisplayType)
	setText(values, "website_meta_title", d.WebsiteMetaTitle)
	setText(values, "website_meta_description", d.WebsiteMetaDescription)
	setText(values, "website_meta_keywords", d.WebsiteMetaKeywords)
	setText(values, "website_short_description", d.WebsiteShortDescription)
	setString(values, "website_url_key", d.WebsiteURLKey)
	setString(values, "website_display_style", d.WebsiteDisplayStyle)
	return values
}

func categoryPatchValues(p model.CategoryPatch) map[string]any {
	values := make(map[string]any)
	putText(values, "name", p.Name)
	putText(values, "display_name", p.DisplayName)
	putText(values, "description", p.Description)
	putBool(values, "active", p.Active)
	putInt(values, "sequence", p.Sequence)
	putInt(values, "website_sequence", p.WebsiteSequence)
	putString(values, "display_type", p.DisplayType)
	putString(values, "icon", p.Icon)
	putString(values, "icon_image", p.IconImage)
	putString(values, "icon_display_type", p.IconDisplayType)
	putBool(values, "is_information_category", p.IsInformationCategory)
	putBool(values, "is_inline_editable", p.IsInlineEditable)
	putBool(values, "is_website_visible", p.IsWebsiteVisible)
	putText(values, "website_meta_title", p.WebsiteMetaTitle)
	putText(values, "website_meta_description", p.WebsiteMetaDescription)
	putText(values, "website_meta_keywords", p.WebsiteMetaKeywords)
	putText(values, "website_short_description", p.WebsiteShortDescription)
	putString(values, "website_url_key", p.WebsiteURLKey)
	putString(values, "website_display_style", p.WebsiteDisplayStyle)
	putBool(values, "website_fold_by_default", p.WebsiteFoldByDefault)
	return values
}

func templateFieldValues(f model.TemplateFields) map[string]any {
	values := map[string]any{
		"name":               textValue(f.Name),
		"display_style":      string(f.DisplayStyle),
		"sequence":           f.Sequence,
		"is_default":         f.IsDefault,
		"website_visible":    f.WebsiteVisible,
		"active":             f.Active,
		"apply_to_brand_ids": replaceIDs(f.ApplyToBrandIDs),
		"apply_to_model_ids": replaceIDs(f.ApplyToModelIDs),
		"category_ids":       replaceIDs(f.CategoryIDs),
	}
	writeText(values, "display_name", f.DisplayName)
	writeText(values, "description", f.Description)
	writeText(values, "website_description", f.WebsiteDescription)
	return values
}

func templateLineValues(l model.SpecificationLine) map[string]any {
	values := map[string]any{
		"attribute_id":      l.AttributeID,
		"sequence":          l.Sequence,
		"is_required":       l.IsRequired,
		"is_visible":        l.IsVisible,
		"is_filterable":     l.IsFilterable,
		"category_sequence": l.CategorySequence,
	}
	writeText(values, "help_text", l.HelpText)
	writeText(values, "placeholder", l.Placeholder)
	return values
}

// lineCommands renders the one2many command list Odoo applies in one write.
func lineCommands(cmds []model.LineCommand) [][]any {
	res := make([][]any, 0, len(cmds))
	for _, cmd := range cmds {
		switch cmd.Op {
		case model.LineCreate:
			res = append(res, []any{0, 0, templateLineValues(cmd.Line)})
		case model.LineUpdate:
			res = append(res, []any{1, cmd.ID, templateLineValues(cmd.Line)})
		case model.LineDelete:
			res = append(res, []any{2, cmd.ID, 0})
		}
	}
	return res
}

func carValues(d model.CarData) map[string]any {
	values := map[string]any{
		"color_ids":      replaceIDs(d.ColorIDs),
		"cash_price":     money(d.CashPrice),
		"finance_price":  money(d.FinancePrice),
		"vat_percentage": money(d.VATPercentage),
		"status":         string(d.Status),
		"active":         d.Active,
		"is_featured":    d.IsFeatured,
		"sequence":       d.Sequence,
	}
	setRef(values, "brand_id", d.BrandID)
	setRef(values, "model_id", d.ModelID)
	setRef(values, "trim_id", d.TrimID)
	setRef(values, "year_id", d.YearID)
	setRef(values, "primary_color_id", d.PrimaryColorID)
	return values
}

func offerValues(d model.OfferData, banner *model.Upload) map[string]any {
	values := map[string]any{
		"name":                  textValue(d.Name),
		"apply_to_all_variants": d.ApplyToAllVariants,
		"start_date":            formatDate(d.StartDate),
		"end_date":              formatDate(d.EndDate),
		"discount_type":         string(d.DiscountType),
		"discount_value":        money(d.DiscountValue),
		"offer_tag":             string(d.OfferTag),
	}
	writeText(values, "description", d.Description)
	setRef(values, "car_id", d.CarID)
	setRef(values, "car_variant_id", d.CarVariantID)
	if banner != nil && banner.Base64 != "" {
		values["banner_image"] = banner.Base64
		values["banner_filename"] = banner.Filename
	}
	return values
}

func mediaValues(d model.MediaData) map[string]any {
	values := map[string]any{
		"name":            textValue(d.Name),
		"media_type":      d.MediaType,
		"content_type":    string(d.ContentType),
		"sequence":        d.Sequence,
		"is_primary":      d.IsPrimary,
		"is_featured":     d.IsFeatured,
		"is_public":       d.IsPublic,
		"website_visible": d.WebsiteVisible,
	}
	setRef(values, "car_id", d.CarID)
	setRef(values, "car_variant_id", d.CarVariantID)
	writeText(values, "description", d.Description)
	writeText(values, "alt_text", d.AltText)
	writeText(values, "seo_title", d.SEOTitle)
	writeText(values, "seo_description", d.SEODescription)

	switch d.ContentType {
	case model.ContentImage:
		putUpload(values, "image", d.File)
	case model.ContentVideoFile:
		putUpload(values, "video_file", d.File)
	case model.ContentDocument:
		putUpload(values, "document_file", d.File)
	case model.ContentVideoURL:
		setString(values, "video_url", d.URL)
	case model.ContentExternalLink:
		setString(values, "external_link", d.URL)
	case model.ContentIframe360, model.ContentIframeCode:
		if strings.TrimSpace(d.HTML) != "" {
			values["iframe_code"] = d.HTML
		}
	}
	return values
}

func putUpload(values map[string]any, key string, u *model.Upload) {
	if u == nil || u.Base64 == "" {
		return
	}
	values[key] = u.Base64
	values["filename"] = u.Filename
}

func settingsValues(s model.SystemSettings) map[string]any {
	values := map[string]any{
		"company_phone":            s.CompanyPhone,
		"company_email":            s.CompanyEmail,
		"whatsapp_business_number": s.WhatsappBusinessNumber,
		"customer_support_email":   s.CustomerSupportEmail,
		"facebook_url":             s.FacebookURL,
		"instagram_url":            s.InstagramURL,
		"youtube_url":              s.YoutubeURL,
		"snapchat_url":             s.SnapchatURL,
		"tiktok_url":               s.TiktokURL,
		"linkedin_url":             s.LinkedinURL,
		"x_url":                    s.XURL,
		"app_store_url":            s.AppStoreURL,
		"play_store_url":           s.PlayStoreURL,
		"google_analytics_id":      s.GoogleAnalyticsID,
		"google_tag_manager_id":    s.GoogleTagManagerID,
		"tiktok_pixel_id":          s.TiktokPixelID,
		"meta_pixel_id":            s.MetaPixelID,
		"snapchat_pixel_id":        s.SnapchatPixelID,
		"linkedin_pixel_id":        s.LinkedinPixelID,
		"x_pixel_id":               s.XPixelID,
		"primary_color":            s.PrimaryColor,
		"secondary_color":          s.SecondaryColor,
		"app_primary_color":        s.AppPrimaryColor,
		"app_secondary_color":      s.AppSecondaryColor,
		"android_app_version":      s.AndroidAppVersion,
		"android_min_version":      s.AndroidMinVersion,
		"ios_app_version":          s.IOSAppVersion,
		"ios_min_version":          s.IOSMinVersion,
		"force_update":             s.ForceUpdate,
		"enable_app_notifications": s.EnableAppNotifications,
		"enable_in_app_chat":       s.EnableInAppChat,
		"enable_car_comparison":    s.EnableCarComparison,
		"enable_app_booking":       s.EnableAppBooking,
		"enable_app_reviews":       s.EnableAppReviews,
		"cars_per_page":            s.CarsPerPage,
		"featured_cars_limit":      s.FeaturedCarsLimit,
		"maintenance_mode":         s.MaintenanceMode,
		"cache_duration":           s.CacheDuration,
	}
	writeText(values, "website_name", s.WebsiteName)
	writeText(values, "company_address", s.CompanyAddress)
	writeText(values, "copyright_text", s.CopyrightText)
	writeText(values, "meta_title", s.MetaTitle)
	writeText(values, "meta_description", s.MetaDescription)
	writeText(values, "meta_keywords", s.MetaKeywords)
	writeText(values, "app_name", s.AppName)
	return values
}
