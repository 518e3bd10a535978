package usecases

import (
	"context"
	"testing"

	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequences(lines []model.SpecificationLine) []int {
	res := make([]int, 0, len(lines))
	for _, l := range lines {
		res = append(res, l.Sequence)
	}
	return res
}

func TestEditorAddAndRemoveLines(t *testing.T) {
	e := NewTemplateEditor(&fakeTemplates{}, nil, logging.Nop{})
	assert.Equal(t, EditorNew, e.State())
	assert.False(t, e.HasLines())

	for i := 0; i < 3; i++ {
		idx, err := e.AddLine()
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}
	assert.Equal(t, []int{10, 20, 30}, sequences(e.Lines()))
	assert.True(t, e.Lines()[0].IsVisible)

	require.NoError(t, e.RemoveLine(1))
	assert.Equal(t, []int{10, 30}, sequences(e.Lines()))

	assert.ErrorIs(t, e.RemoveLine(5), ErrLineOutOfRange)
	assert.ErrorIs(t, e.UpdateLine(-1, model.LinePatch{}), ErrLineOutOfRange)
}

func TestEditorMoveLineSwapsSequences(t *testing.T) {
	e := NewTemplateEditor(&fakeTemplates{}, nil, logging.Nop{})
	_, _ = e.AddLine()
	_, _ = e.AddLine()
	require.NoError(t, e.UpdateLine(0, model.LinePatch{AttributeID: int64Ptr(1)}))
	require.NoError(t, e.UpdateLine(1, model.LinePatch{AttributeID: int64Ptr(2)}))

	require.NoError(t, e.MoveLine(0, 1))

	lines := e.Lines()
	assert.Equal(t, int64(2), lines[0].AttributeID)
	assert.Equal(t, 10, lines[0].Sequence)
	assert.Equal(t, int64(1), lines[1].AttributeID)
	assert.Equal(t, 20, lines[1].Sequence)
}

func TestEditorSubmitValidatesLocally(t *testing.T) {
	svc := &fakeTemplates{}
	notes := &recordingNotifier{}
	e := NewTemplateEditor(svc, notes, logging.Nop{})
	_, _ = e.AddLine()

	_, err := e.Submit(context.Background())

	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Template name is required", verr.Fields["name"])
	assert.Equal(t, "Line 1: attribute is required", verr.Fields["lines.0.attribute_id"])
	assert.Zero(t, svc.calls)
	assert.Equal(t, model.LevelError, notes.last().Level)
}

func TestEditorCreatesWithLinesInOneSave(t *testing.T) {
	svc := &fakeTemplates{}
	notes := &recordingNotifier{}
	e := NewTemplateEditor(svc, notes, logging.Nop{})

	require.NoError(t, e.SetFields(model.TemplatePatch{Name: textPtr("Sedan")}))
	for _, attr := range []int64{11, 12} {
		idx, err := e.AddLine()
		require.NoError(t, err)
		require.NoError(t, e.UpdateLine(idx, model.LinePatch{AttributeID: int64Ptr(attr)}))
	}

	saved, err := e.Submit(context.Background())
	require.NoError(t, err)

	require.Len(t, svc.saves, 1)
	save := svc.saves[0]
	assert.Zero(t, save.id)
	assert.Equal(t, model.StyleList, save.fields.DisplayStyle)
	assert.Equal(t, "Sedan", save.fields.DisplayName.Resolve(model.LocaleEnglish))
	require.Len(t, save.lines, 2)
	assert.Equal(t, model.LineCreate, save.lines[0].Op)
	assert.Equal(t, model.LineCreate, save.lines[1].Op)

	assert.Equal(t, saved.ID, e.ID())
	assert.Equal(t, EditorSaved, e.State())
	assert.False(t, e.IsDirty())
	assert.Equal(t, "Template created successfully", notes.last().Message)
}

func TestEditorSubmitSendsLineDiff(t *testing.T) {
	svc := &fakeTemplates{items: map[int64]model.SpecificationTemplate{}}
	tpl := model.SpecificationTemplate{
		ID:           5,
		Name:         model.PlainText("SUV"),
		DisplayStyle: model.StyleGrid,
		Active:       true,
		Lines: []model.SpecificationLine{
			{ID: 11, AttributeID: 1, Sequence: 10, IsVisible: true},
			{ID: 12, AttributeID: 2, Sequence: 20, IsVisible: true},
		},
	}
	svc.items[5] = tpl
	e := OpenTemplateEditor(tpl, svc, nil, logging.Nop{})
	assert.Equal(t, EditorSaved, e.State())

	require.NoError(t, e.UpdateLine(0, model.LinePatch{IsRequired: boolPtr(true)}))
	require.NoError(t, e.RemoveLine(1))
	idx, err := e.AddLine()
	require.NoError(t, err)
	require.NoError(t, e.UpdateLine(idx, model.LinePatch{AttributeID: int64Ptr(3)}))
	assert.Equal(t, EditorDirty, e.State())

	saved, err := e.Submit(context.Background())
	require.NoError(t, err)

	require.Len(t, svc.saves, 1)
	cmds := svc.saves[0].lines
	require.Len(t, cmds, 3)
	assert.Equal(t, model.LineCommand{Op: model.LineUpdate, ID: 11, Line: model.SpecificationLine{ID: 11, AttributeID: 1, Sequence: 10, IsVisible: true, IsRequired: true}}, cmds[0])
	assert.Equal(t, model.LineCreate, cmds[1].Op)
	assert.Equal(t, int64(3), cmds[1].Line.AttributeID)
	assert.Equal(t, model.LineCommand{Op: model.LineDelete, ID: 12}, cmds[2])

	require.Len(t, saved.Lines, 2)
	assert.Equal(t, EditorSaved, e.State())
}

func TestEditorUnchangedLinesSendNoCommands(t *testing.T) {
	svc := &fakeTemplates{}
	tpl := model.SpecificationTemplate{ID: 5, Name: model.PlainText("SUV"), Lines: []model.SpecificationLine{{ID: 11, AttributeID: 1, Sequence: 10}}}
	e := OpenTemplateEditor(tpl, svc, nil, logging.Nop{})

	_, err := e.Submit(context.Background())
	require.NoError(t, err)
	require.Len(t, svc.saves, 1)
	assert.Equal(t, int64(5), svc.saves[0].id)
	assert.Empty(t, svc.saves[0].lines)
}

func TestEditorFailedSubmitStaysDirty(t *testing.T) {
	svc := &fakeTemplates{err: errBackend}
	notes := &recordingNotifier{}
	tpl := model.SpecificationTemplate{ID: 5, Name: model.PlainText("SUV")}
	e := OpenTemplateEditor(tpl, svc, notes, logging.Nop{})
	require.NoError(t, e.SetFields(model.TemplatePatch{IsDefault: boolPtr(true)}))

	_, err := e.Submit(context.Background())

	require.Error(t, err)
	assert.True(t, e.IsDirty())
	assert.Equal(t, EditorDirty, e.State())
	assert.True(t, e.Fields().IsDefault)
	assert.Equal(t, "Failed to update template", notes.last().Message)
}

func TestEditorDeleteBlocksFurtherEdits(t *testing.T) {
	svc := &fakeTemplates{}
	tpl := model.SpecificationTemplate{ID: 5, Name: model.PlainText("SUV")}
	e := OpenTemplateEditor(tpl, svc, nil, logging.Nop{})

	assert.ErrorIs(t, e.Delete(context.Background(), Confirmed(false)), model.ErrNotConfirmed)
	assert.Equal(t, EditorSaved, e.State())

	require.NoError(t, e.Delete(context.Background(), Confirmed(true)))
	assert.Equal(t, EditorDeleted, e.State())

	_, err := e.AddLine()
	assert.ErrorIs(t, err, ErrEditorDeleted)
	_, err = e.Submit(context.Background())
	assert.ErrorIs(t, err, ErrEditorDeleted)
}

func TestDiffLinesTreatsUnknownIDsAsNew(t *testing.T) {
	saved := []model.SpecificationLine{{ID: 1, AttributeID: 1}}
	current := []model.SpecificationLine{{ID: 1, AttributeID: 1}, {ID: 99, AttributeID: 2}}

	cmds := diffLines(saved, current)

	require.Len(t, cmds, 1)
	assert.Equal(t, model.LineCreate, cmds[0].Op)
	assert.Zero(t, cmds[0].Line.ID)
}

func TestDuplicateTemplateIsNotDefault(t *testing.T) {
	svc := &fakeTemplates{items: map[int64]model.SpecificationTemplate{
		5: {ID: 5, Name: model.PlainText("SUV"), IsDefault: true, Lines: []model.SpecificationLine{{ID: 11, AttributeID: 1}}},
	}}
	c := NewTemplateController(svc, nil, logging.Nop{})

	created, err := c.Duplicate(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, svc.saves, 1)
	assert.Equal(t, "SUV (Copy)", svc.saves[0].fields.Name.Resolve(model.LocaleEnglish))
	assert.False(t, svc.saves[0].fields.IsDefault)
	assert.Empty(t, svc.saves[0].lines)
	assert.Empty(t, created.Lines)
}

func TestTemplateControllerSaveUpdatesExisting(t *testing.T) {
	svc := &fakeTemplates{items: map[int64]model.SpecificationTemplate{
		5: {ID: 5, Name: model.PlainText("SUV"), Lines: []model.SpecificationLine{{ID: 11, AttributeID: 1, Sequence: 10}}},
	}}
	c := NewTemplateController(svc, nil, logging.Nop{})

	_, err := c.Save(context.Background(), 5, model.TemplatePatch{Name: textPtr("Crossover")}, []model.SpecificationLine{})
	require.NoError(t, err)
	require.Len(t, svc.saves, 1)
	assert.Equal(t, "Crossover", svc.saves[0].fields.Name.Resolve(model.LocaleEnglish))
	assert.Equal(t, []model.LineCommand{{Op: model.LineDelete, ID: 11}}, svc.saves[0].lines)
}

func TestTemplateControllerDeleteDeclinedMakesNoCall(t *testing.T) {
	svc := &fakeTemplates{}
	notes := &recordingNotifier{}
	c := NewTemplateController(svc, notes, logging.Nop{})

	err := c.Delete(context.Background(), 5, Confirmed(false))

	assert.ErrorIs(t, err, model.ErrNotConfirmed)
	assert.Zero(t, svc.calls)
	assert.Empty(t, notes.all())
}

func TestDuplicateTemplateWithBlankNameIsRejected(t *testing.T) {
	svc := &fakeTemplates{items: map[int64]model.SpecificationTemplate{9: {ID: 9}}}
	notes := &recordingNotifier{}
	c := NewTemplateController(svc, notes, logging.Nop{})

	_, err := c.Duplicate(context.Background(), 9)

	assert.True(t, model.IsValidation(err))
	assert.Empty(t, svc.saves)
	assert.Equal(t, "Template name is required", notes.last().Message)
}
