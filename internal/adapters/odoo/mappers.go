package odoo

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"dealership-backoffice/internal/adapters/odoo/dto"
	"dealership-backoffice/internal/domain/model"
)

func mapAttribute(v dto.Attribute) model.Attribute {
	attr := model.Attribute{
		ID:               int64(v.ID),
		Name:             model.ParseLocalizedText(v.Name),
		DisplayName:      model.ParseLocalizedText(v.DisplayName),
		Description:      model.ParseLocalizedText(v.Description),
		DisplayType:      model.DisplayType(strings.TrimSpace(string(v.DisplayType))),
		CategoryType:     strings.TrimSpace(string(v.CategoryType)),
		IsKeyAttribute:   v.IsKeyAttribute,
		IsFilterable:     v.IsFilterable,
		IsWebsiteSpec:    v.IsWebsiteSpec,
		DisplayInCarInfo: v.DisplayInCarInfo,
		CreateVariant:    createVariantFlag(v.CreateVariant),
		AllowMultiSelect: v.AllowMultiSelect,
		FilterPriority:   v.FilterPriority,
		EditWidget:       strings.TrimSpace(string(v.EditWidget)),
		Icon:             strings.TrimSpace(string(v.Icon)),
		CarInfoIcon:      strings.TrimSpace(string(v.CarInfoIcon)),
		Sequence:         v.Sequence,
		Active:           activeOrDefault(v.Active),
	}
	if attr.DisplayName.IsBlank() {
		attr.DisplayName = attr.Name
	}
	if wd, err := time.Parse("2006-01-02 15:04:05", strings.TrimSpace(string(v.WriteDate))); err == nil {
		attr.WriteDate = wd
	}
	if len(v.ValueIDs) > 0 {
		attr.Values = make([]model.AttributeValue, 0, len(v.ValueIDs))
		for _, val := range v.ValueIDs {
			mapped := mapAttributeValue(val)
			if mapped.AttributeID == 0 {
				mapped.AttributeID = attr.ID
			}
			attr.Values = append(attr.Values, mapped)
		}
	}
	return attr
}

// createVariantFlag reads both the boolean and Odoo's selection form.
func createVariantFlag(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return false
		}
		return s != "" && s != "no_variant"
	}
	return string(raw) == "true"
}

func mapAttributeValue(v dto.AttributeValue) model.AttributeValue {
	return model.AttributeValue{
		ID:                int64(v.ID),
		AttributeID:       int64(v.AttributeID.ID),
		Name:              model.ParseLocalizedText(v.Name),
		DisplayName:       model.ParseLocalizedText(v.DisplayName),
		DisplayValue:      strings.TrimSpace(string(v.DisplayValue)),
		Sequence:          v.Sequence,
		Active:            activeOrDefault(v.Active),
		Color:             v.Color,
		HTMLColor:         strings.TrimSpace(string(v.HTMLColor)),
		Image:             strings.TrimSpace(string(v.Image)),
		IsCustom:          v.IsCustom,
		DefaultExtraPrice: v.DefaultExtraPrice.Decimal,
	}
}

func mapCategory(v dto.Category) model.AttributeCategory {
	cat := model.AttributeCategory{
		ID:                      int64(v.ID),
		Name:                    model.ParseLocalizedText(v.Name),
		DisplayName:             model.ParseLocalizedText(v.DisplayName),
		Description:             model.ParseLocalizedText(v.Description),
		Active:                  activeOrDefault(v.Active),
		Sequence:                v.Sequence,
		WebsiteSequence:         v.WebsiteSequence,
		DisplayType:             strings.TrimSpace(string(v.DisplayType)),
		Icon:                    strings.TrimSpace(string(v.Icon)),
		IconImage:               strings.TrimSpace(string(v.IconImage)),
		IconDisplayType:         strings.TrimSpace(string(v.IconDisplayType)),
		IsInformationCategory:   v.IsInformationCategory,
		IsInlineEditable:        v.IsInlineEditable,
		IsWebsiteVisible:        v.IsWebsiteVisible,
		WebsiteMetaTitle:        model.ParseLocalizedText(v.WebsiteMetaTitle),
		WebsiteMetaDescription:  model.ParseLocalizedText(v.WebsiteMetaDescription),
		WebsiteMetaKeywords:     model.ParseLocalizedText(v.WebsiteMetaKeywords),
		WebsiteShortDescription: model.ParseLocalizedText(v.WebsiteShortDescription),
		WebsiteURLKey:           strings.TrimSpace(string(v.WebsiteURLKey)),
		WebsiteDisplayStyle:     strings.TrimSpace(string(v.WebsiteDisplayStyle)),
		WebsiteFoldByDefault:    v.WebsiteFoldByDefault,
		AttributeCount:          v.AttributeCount,
	}
	if cat.DisplayName.IsBlank() {
		cat.DisplayName = cat.Name
	}
	return cat
}

func mapTemplate(v dto.Template) model.SpecificationTemplate {
	tpl := model.SpecificationTemplate{
		ID:                 int64(v.ID),
		Name:               model.ParseLocalizedText(v.Name),
		DisplayName:        model.ParseLocalizedText(v.DisplayName),
		Description:        model.ParseLocalizedText(v.Description),
		DisplayStyle:       model.DisplayStyle(strings.TrimSpace(string(v.DisplayStyle))),
		Sequence:           v.Sequence,
		IsDefault:          v.IsDefault,
		WebsiteVisible:     v.WebsiteVisible,
		WebsiteDescription: model.ParseLocalizedText(v.WebsiteDescription),
		Active:             activeOrDefault(v.Active),
		ApplyToBrandIDs:    v.ApplyToBrandIDs.IDs(),
		ApplyToModelIDs:    v.ApplyToModelIDs.IDs(),
		CategoryIDs:        v.CategoryIDs.IDs(),
		CategoryCount:      v.CategoryCount,
	}
	if len(v.Lines) > 0 {
		tpl.Lines = make([]model.SpecificationLine, 0, len(v.Lines))
		for _, l := range v.Lines {
			tpl.Lines = append(tpl.Lines, mapTemplateLine(l))
		}
	}
	return tpl
}

func mapTemplateLine(v dto.TemplateLine) model.SpecificationLine {
	return model.SpecificationLine{
		ID:               int64(v.ID),
		AttributeID:      int64(v.AttributeID.ID),
		AttributeName:    model.ParseLocalizedText(v.AttributeID.Name),
		Sequence:         v.Sequence,
		IsRequired:       v.IsRequired,
		IsVisible:        v.IsVisible,
		IsFilterable:     v.IsFilterable,
		HelpText:         model.ParseLocalizedText(v.HelpText),
		Placeholder:      model.ParseLocalizedText(v.Placeholder),
		CategorySequence: v.CategorySequence,
	}
}

func mapCar(v dto.Car) model.Car {
	return model.Car{
		ID:               int64(v.ID),
		Name:             model.ParseLocalizedText(v.Name),
		BrandID:          int64(v.BrandID.ID),
		ModelID:          int64(v.ModelID.ID),
		TrimID:           int64(v.TrimID.ID),
		YearID:           int64(v.YearID.ID),
		ColorIDs:         v.ColorIDs.IDs(),
		PrimaryColorID:   int64(v.PrimaryColorID.ID),
		CashPrice:        v.CashPrice.Decimal,
		CashPriceWithVAT: v.CashPriceWithVAT.Decimal,
		FinancePrice:     v.FinancePrice.Decimal,
		VATPercentage:    v.VATPercentage.Decimal,
		Status:           model.CarStatus(strings.TrimSpace(string(v.Status))),
		Active:           activeOrDefault(v.Active),
		IsFeatured:       v.IsFeatured,
		Sequence:         v.Sequence,
	}
}

func mapOffer(v dto.Offer) model.Offer {
	return model.Offer{
		ID:                 int64(v.ID),
		Name:               model.ParseLocalizedText(v.Name),
		Description:        model.ParseLocalizedText(v.Description),
		CarID:              int64(v.CarID.ID),
		CarVariantID:       int64(v.CarVariantID.ID),
		ApplyToAllVariants: v.ApplyToAllVariants,
		StartDate:          parseDate(v.StartDate),
		EndDate:            parseDate(v.EndDate),
		DiscountType:       model.DiscountType(strings.TrimSpace(string(v.DiscountType))),
		DiscountValue:      v.DiscountValue.Decimal,
		OriginalPrice:      v.OriginalPrice.Decimal,
		FinalPrice:         v.FinalPrice.Decimal,
		IsActive:           v.IsActive,
		OfferTag:           model.OfferTag(strings.TrimSpace(string(v.OfferTag))),
		BannerURL:          strings.TrimSpace(string(v.BannerURL)),
	}
}

func mapMedia(v dto.Media) model.Media {
	return model.Media{
		ID:             int64(v.ID),
		Name:           model.ParseLocalizedText(v.Name),
		CarID:          int64(v.CarID.ID),
		CarVariantID:   int64(v.CarVariantID.ID),
		MediaType:      strings.TrimSpace(string(v.MediaType)),
		ContentType:    model.ContentType(strings.TrimSpace(string(v.ContentType))),
		ImageURL:       strings.TrimSpace(string(v.ImageURL)),
		VideoURL:       strings.TrimSpace(string(v.VideoURL)),
		ExternalLink:   strings.TrimSpace(string(v.ExternalLink)),
		IframeCode:     string(v.IframeCode),
		Sequence:       v.Sequence,
		Description:    model.ParseLocalizedText(v.Description),
		AltText:        model.ParseLocalizedText(v.AltText),
		IsPrimary:      v.IsPrimary,
		IsFeatured:     v.IsFeatured,
		IsPublic:       v.IsPublic,
		Active:         activeOrDefault(v.Active),
		WebsiteVisible: v.WebsiteVisible,
		MimeType:       strings.TrimSpace(string(v.MimeType)),
		FileSize:       float64(v.FileSize),
		SEOTitle:       model.ParseLocalizedText(v.SEOTitle),
		SEODescription: model.ParseLocalizedText(v.SEODescription),
	}
}

func mapSettings(v dto.Settings) model.SystemSettings {
	return model.SystemSettings{
		ID:                     int64(v.ID),
		WebsiteName:            model.ParseLocalizedText(v.WebsiteName),
		CompanyPhone:           string(v.CompanyPhone),
		CompanyEmail:           strings.TrimSpace(string(v.CompanyEmail)),
		CompanyAddress:         model.ParseLocalizedText(v.CompanyAddress),
		WhatsappBusinessNumber: string(v.WhatsappBusinessNumber),
		CustomerSupportEmail:   strings.TrimSpace(string(v.CustomerSupportEmail)),
		CopyrightText:          model.ParseLocalizedText(v.CopyrightText),
		FacebookURL:            string(v.FacebookURL),
		InstagramURL:           string(v.InstagramURL),
		YoutubeURL:             string(v.YoutubeURL),
		SnapchatURL:            string(v.SnapchatURL),
		TiktokURL:              string(v.TiktokURL),
		LinkedinURL:            string(v.LinkedinURL),
		XURL:                   string(v.XURL),
		AppStoreURL:            string(v.AppStoreURL),
		PlayStoreURL:           string(v.PlayStoreURL),
		MetaTitle:              model.ParseLocalizedText(v.MetaTitle),
		MetaDescription:        model.ParseLocalizedText(v.MetaDescription),
		MetaKeywords:           model.ParseLocalizedText(v.MetaKeywords),
		GoogleAnalyticsID:      string(v.GoogleAnalyticsID),
		GoogleTagManagerID:     string(v.GoogleTagManagerID),
		TiktokPixelID:          string(v.TiktokPixelID),
		MetaPixelID:            string(v.MetaPixelID),
		SnapchatPixelID:        string(v.SnapchatPixelID),
		LinkedinPixelID:        string(v.LinkedinPixelID),
		XPixelID:               string(v.XPixelID),
		PrimaryColor:           strings.TrimSpace(string(v.PrimaryColor)),
		SecondaryColor:         strings.TrimSpace(string(v.SecondaryColor)),
		AppPrimaryColor:        strings.TrimSpace(string(v.AppPrimaryColor)),
		AppSecondaryColor:      strings.TrimSpace(string(v.AppSecondaryColor)),
		AppName:                model.ParseLocalizedText(v.AppName),
		AndroidAppVersion:      string(v.AndroidAppVersion),
		AndroidMinVersion:      string(v.AndroidMinVersion),
		IOSAppVersion:          string(v.IOSAppVersion),
		IOSMinVersion:          string(v.IOSMinVersion),
		ForceUpdate:            v.ForceUpdate,
		EnableAppNotifications: v.EnableAppNotifications,
		EnableInAppChat:        v.EnableInAppChat,
		EnableCarComparison:    v.EnableCarComparison,
		EnableAppBooking:       v.EnableAppBooking,
		EnableAppReviews:       v.EnableAppReviews,
		CarsPerPage:            v.CarsPerPage,
		FeaturedCarsLimit:      v.FeaturedCarsLimit,
		MaintenanceMode:        v.MaintenanceMode,
		CacheDuration:          v.CacheDuration,
	}
}
