package usecases

import (
	"context"
	"testing"

	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueSetAddAssignsSequences(t *testing.T) {
	svc := &fakeValues{}
	refreshed := 0
	set := NewValueSet(model.Attribute{ID: 1, DisplayType: model.DisplaySelect}, svc, nil, logging.Nop{}, func() { refreshed++ })

	for _, name := range []string{"Small", "Medium", "Large"} {
		_, err := set.Add(context.Background(), model.AttributeValueDraft{Name: model.PlainText(name)})
		require.NoError(t, err)
	}

	values := set.Values()
	require.Len(t, values, 3)
	assert.Equal(t, []int{10, 20, 30}, []int{values[0].Sequence, values[1].Sequence, values[2].Sequence})
	assert.Equal(t, 3, refreshed)
}

func TestValueSetAddRejectsBlankName(t *testing.T) {
	svc := &fakeValues{}
	set := NewValueSet(model.Attribute{ID: 1}, svc, nil, logging.Nop{}, nil)

	_, err := set.Add(context.Background(), model.AttributeValueDraft{})

	require.True(t, model.IsValidation(err))
	assert.Zero(t, svc.calls)
	assert.Empty(t, set.Values())
}

func TestValueSetAddRejectsBadHexColor(t *testing.T) {
	svc := &fakeValues{}
	set := NewValueSet(model.Attribute{ID: 1, DisplayType: model.DisplayColor}, svc, nil, logging.Nop{}, nil)

	_, err := set.Add(context.Background(), model.AttributeValueDraft{Name: model.PlainText("Red"), HTMLColor: "red"})

	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "HTML color must be a hex color", verr.Fields["html_color"])
	assert.Zero(t, svc.calls)
}

func TestValueSetFailedAddKeepsState(t *testing.T) {
	svc := &fakeValues{err: errBackend}
	notes := &recordingNotifier{}
	set := NewValueSet(model.Attribute{ID: 1}, svc, notes, logging.Nop{}, nil)

	_, err := set.Add(context.Background(), model.AttributeValueDraft{Name: model.PlainText("X")})

	require.Error(t, err)
	assert.Empty(t, set.Values())
	assert.Equal(t, "Failed to create attribute value", notes.last().Message)
}

func TestValueSetRemoveDeclined(t *testing.T) {
	svc := &fakeValues{}
	set := NewValueSet(model.Attribute{ID: 1, Values: []model.AttributeValue{{ID: 9}}}, svc, nil, logging.Nop{}, nil)

	err := set.Remove(context.Background(), 9, Confirmed(false))

	assert.ErrorIs(t, err, model.ErrNotConfirmed)
	assert.Zero(t, svc.calls)
	assert.Len(t, set.Values(), 1)
}

func TestValueSetRemoveConfirmed(t *testing.T) {
	svc := &fakeValues{}
	set := NewValueSet(model.Attribute{ID: 1, Values: []model.AttributeValue{{ID: 9}, {ID: 10}}}, svc, nil, logging.Nop{}, nil)

	require.NoError(t, set.Remove(context.Background(), 9, Confirmed(true)))
	values := set.Values()
	require.Len(t, values, 1)
	assert.Equal(t, int64(10), values[0].ID)
}

func TestValueSetUpdatePriceSendsSingleField(t *testing.T) {
	svc := &fakeValues{}
	set := NewValueSet(model.Attribute{ID: 1, Values: []model.AttributeValue{{ID: 9, Name: model.PlainText("Leather")}}}, svc, nil, logging.Nop{}, nil)

	_, err := set.UpdatePrice(context.Background(), 9, decimal.RequireFromString("1500.50"))
	require.NoError(t, err)
	require.Len(t, svc.patches, 1)
	assert.Nil(t, svc.patches[0].Name)
	assert.True(t, svc.patches[0].DefaultExtraPrice.Equal(decimal.RequireFromString("1500.5")))
}

func TestDisplayFor(t *testing.T) {
	red := model.AttributeValue{Name: model.PlainText("Red"), HTMLColor: "#EF4444"}
	assert.Equal(t, ValueDisplay{Kind: ValueSwatch, Text: "Red", Color: "#EF4444"}, DisplayFor(red, model.DisplayColor, model.LocaleEnglish))

	blank := model.AttributeValue{Name: model.PlainText("Unknown")}
	assert.Equal(t, FallbackSwatchColor, DisplayFor(blank, model.DisplayColor, model.LocaleEnglish).Color)

	img := model.AttributeValue{Name: model.PlainText("Logo"), Image: "https://cdn.example.com/a.png"}
	assert.Equal(t, ValueThumbnail, DisplayFor(img, model.DisplayImage, model.LocaleEnglish).Kind)

	inline := model.AttributeValue{Name: model.PlainText("Logo"), Image: "data:image/png;base64,AAAA"}
	assert.Equal(t, ValueThumbnail, DisplayFor(inline, model.DisplayImage, model.LocaleEnglish).Kind)

	broken := model.AttributeValue{Name: model.PlainText("Logo"), Image: "not-a-url"}
	assert.Equal(t, ValueDisplay{Kind: ValueText, Text: "Logo"}, DisplayFor(broken, model.DisplayImage, model.LocaleEnglish))

	withDisplay := model.AttributeValue{Name: model.PlainText("2.5"), DisplayValue: "2.5 L"}
	assert.Equal(t, "2.5 L", DisplayFor(withDisplay, model.DisplaySelect, model.LocaleEnglish).Text)
}

func TestPredefinedColorsPalette(t *testing.T) {
	require.Len(t, PredefinedColors, 14)
	assert.Equal(t, PaletteColor{Name: "Red", Hex: "#EF4444"}, PredefinedColors[0])
	assert.Equal(t, PaletteColor{Name: "Bronze", Hex: "#CD7F32"}, PredefinedColors[13])
}
