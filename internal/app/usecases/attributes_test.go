package usecases

import (
	"context"
	"testing"

	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAttributeRequiresName(t *testing.T) {
	svc := &fakeAttributes{}
	notes := &recordingNotifier{}
	c := NewAttributeController(svc, &fakeValues{}, notes, logging.Nop{})

	_, err := c.Create(context.Background(), model.AttributeDraft{Name: model.Localized(map[model.Locale]string{model.LocaleEnglish: " "})})

	require.True(t, model.IsValidation(err))
	assert.Zero(t, svc.calls)
	require.Len(t, notes.all(), 1)
	assert.Equal(t, model.LevelError, notes.last().Level)
	assert.Equal(t, "Attribute name is required", notes.last().Message)
}

func TestCreateAttributeAppliesDefaults(t *testing.T) {
	svc := &fakeAttributes{}
	notes := &recordingNotifier{}
	c := NewAttributeController(svc, &fakeValues{}, notes, logging.Nop{})

	created, err := c.Create(context.Background(), model.AttributeDraft{Name: model.ConvertToTranslations("Engine")})
	require.NoError(t, err)
	require.Len(t, svc.created, 1)

	draft := svc.created[0]
	assert.Equal(t, "Engine", draft.DisplayName.Resolve(model.LocaleArabic))
	assert.Equal(t, model.DisplaySelect, draft.DisplayType)
	assert.Equal(t, model.DefaultFilterPriority, draft.FilterPriority)
	assert.Equal(t, created.ID, notes.last().EntityID)
	assert.Equal(t, "Attribute created successfully", notes.last().Message)
}

func TestCreateAttributeRejectsUnknownDisplayType(t *testing.T) {
	svc := &fakeAttributes{}
	c := NewAttributeController(svc, &fakeValues{}, nil, logging.Nop{})

	_, err := c.Create(context.Background(), model.AttributeDraft{Name: model.PlainText("Size"), DisplayType: "slider"})

	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "display_type")
	assert.Zero(t, svc.calls)
}

func TestDeleteAttributeDeclinedMakesNoCall(t *testing.T) {
	svc := &fakeAttributes{}
	notes := &recordingNotifier{}
	c := NewAttributeController(svc, &fakeValues{}, notes, logging.Nop{})

	err := c.Delete(context.Background(), 3, Confirmed(false))

	assert.ErrorIs(t, err, model.ErrNotConfirmed)
	assert.Zero(t, svc.calls)
	assert.Empty(t, notes.all())
}

func TestDeleteAttributeFailureNotifies(t *testing.T) {
	svc := &fakeAttributes{err: errBackend}
	notes := &recordingNotifier{}
	c := NewAttributeController(svc, &fakeValues{}, notes, logging.Nop{})

	err := c.Delete(context.Background(), 3, Confirmed(true))

	require.Error(t, err)
	assert.Equal(t, "Failed to delete attribute", notes.last().Message)
}

func TestDuplicateAttributeClearsFlagsAndSkipsValues(t *testing.T) {
	svc := &fakeAttributes{items: map[int64]model.Attribute{
		7: {
			ID:               7,
			Name:             model.Localized(map[model.Locale]string{model.LocaleEnglish: "Color", model.LocaleArabic: "اللون"}),
			DisplayType:      model.DisplayColor,
			IsKeyAttribute:   true,
			IsFilterable:     true,
			IsWebsiteSpec:    true,
			DisplayInCarInfo: true,
			CreateVariant:    true,
			AllowMultiSelect: true,
			FilterPriority:   3,
			Values:           []model.AttributeValue{{ID: 1}, {ID: 2}},
		},
	}}
	values := &fakeValues{}
	c := NewAttributeController(svc, values, nil, logging.Nop{})

	_, err := c.Duplicate(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, svc.created, 1)

	draft := svc.created[0]
	assert.Equal(t, "Color (Copy)", draft.Name.Resolve(model.LocaleEnglish))
	assert.Equal(t, "اللون (Copy)", draft.Name.Resolve(model.LocaleArabic))
	assert.Equal(t, "Color (Copy)", draft.DisplayName.Resolve(model.LocaleEnglish))
	assert.False(t, draft.IsKeyAttribute)
	assert.False(t, draft.IsFilterable)
	assert.False(t, draft.IsWebsiteSpec)
	assert.False(t, draft.DisplayInCarInfo)
	assert.False(t, draft.CreateVariant)
	assert.True(t, draft.AllowMultiSelect)
	assert.Equal(t, 3, draft.FilterPriority)
	assert.Zero(t, values.calls)
}

func TestToggleFilterablePatchesInverse(t *testing.T) {
	svc := &fakeAttributes{items: map[int64]model.Attribute{4: {ID: 4, IsFilterable: true}}}
	c := NewAttributeController(svc, &fakeValues{}, nil, logging.Nop{})

	next, err := c.ToggleFilterable(context.Background(), 4)
	require.NoError(t, err)
	assert.False(t, next)
	require.Len(t, svc.patches, 1)
	require.NotNil(t, svc.patches[0].IsFilterable)
	assert.False(t, *svc.patches[0].IsFilterable)
	assert.Nil(t, svc.patches[0].IsKeyAttribute)
}

func TestAttributeStatistics(t *testing.T) {
	svc := &fakeAttributes{items: map[int64]model.Attribute{
		1: {ID: 1, IsFilterable: true, IsKeyAttribute: true, Active: true, Values: []model.AttributeValue{{ID: 1}, {ID: 2}}},
		2: {ID: 2, IsWebsiteSpec: true, DisplayInCarInfo: true, Active: true, Values: []model.AttributeValue{{ID: 3}}},
		3: {ID: 3},
	}}
	c := NewAttributeController(svc, &fakeValues{}, nil, logging.Nop{})

	stats, err := c.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.AttributeStatistics{Total: 3, Filterable: 1, Key: 1, WebsiteSpec: 1, CarInfo: 1, Active: 2, ValuesTotal: 3}, stats)
}

func TestListFailureNotifiesLoad(t *testing.T) {
	notes := &recordingNotifier{}
	c := NewAttributeController(&fakeAttributes{err: errBackend}, &fakeValues{}, notes, logging.Nop{})

	_, err := c.List(context.Background(), model.AttributeFilter{})
	require.Error(t, err)
	assert.Equal(t, "Failed to load attributes", notes.last().Message)
}

func TestDuplicateAttributeWithBlankNameIsRejected(t *testing.T) {
	svc := &fakeAttributes{items: map[int64]model.Attribute{8: {ID: 8, DisplayType: model.DisplaySelect}}}
	notes := &recordingNotifier{}
	c := NewAttributeController(svc, &fakeValues{}, notes, logging.Nop{})

	_, err := c.Duplicate(context.Background(), 8)

	assert.True(t, model.IsValidation(err))
	assert.Empty(t, svc.created)
	assert.Equal(t, "Attribute name is required", notes.last().Message)
}
