package usecases

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"dealership-backoffice/internal/adapters/odoo"
	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"
)

type EditorState string

const (
	EditorNew     EditorState = "new"
	EditorDirty   EditorState = "draft-dirty"
	EditorSaved   EditorState = "saved"
	EditorDeleted EditorState = "deleted"
)

var (
	ErrEditorDeleted  = errors.New("template was deleted")
	ErrLineOutOfRange = errors.New("line index out of range")
)

// TemplateEditor composes a specification template. Field and line edits stay
// local until Submit, which sends a single create or update carrying the line
// diff against the last saved snapshot.
type TemplateEditor struct {
	service  odoo.TemplateService
	reporter reporter

	mu          sync.Mutex
	id          int64
	state       EditorState
	dirty       bool
	saving      bool
	fields      model.TemplateFields
	lines       []model.SpecificationLine
	savedLines  []model.SpecificationLine
	savedFields model.TemplateFields
}

func NewTemplateEditor(service odoo.TemplateService, notifier Notifier, logger logging.LoggerService) *TemplateEditor {
	return &TemplateEditor{
		service:  service,
		reporter: newReporter(notifier, logger),
		state:    EditorNew,
		fields: model.TemplateFields{
			DisplayStyle: model.StyleList,
			Sequence:     10,
			Active:       true,
		},
	}
}

// OpenTemplateEditor starts from a persisted template in the saved state.
func OpenTemplateEditor(template model.SpecificationTemplate, service odoo.TemplateService, notifier Notifier, logger logging.LoggerService) *TemplateEditor {
	e := NewTemplateEditor(service, notifier, logger)
	e.snapshot(template)
	return e
}

func (e *TemplateEditor) snapshot(t model.SpecificationTemplate) {
	e.id = t.ID
	e.fields = t.Fields()
	e.savedFields = t.Fields()
	e.lines = append([]model.SpecificationLine(nil), t.Lines...)
	e.savedLines = append([]model.SpecificationLine(nil), t.Lines...)
	e.state = EditorSaved
	e.dirty = false
}

func (e *TemplateEditor) ID() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.id
}

func (e *TemplateEditor) State() EditorState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *TemplateEditor) IsDirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dirty
}

func (e *TemplateEditor) Fields() model.TemplateFields {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fields
}

func (e *TemplateEditor) Lines() []model.SpecificationLine {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]model.SpecificationLine(nil), e.lines...)
}

// HasLines is a hint only; a template without lines can still be saved.
func (e *TemplateEditor) HasLines() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.lines) > 0
}

func (e *TemplateEditor) SetFields(patch model.TemplatePatch) error {
	return e.edit(func() error {
		e.fields = e.fields.Apply(patch)
		return nil
	})
}

// AddLine appends an empty visible line and returns its index.
func (e *TemplateEditor) AddLine() (int, error) {
	var idx int
	err := e.edit(func() error {
		idx = len(e.lines)
		e.lines = append(e.lines, model.SpecificationLine{
			Sequence:  (idx + 1) * 10,
			IsVisible: true,
		})
		return nil
	})
	return idx, err
}

func (e *TemplateEditor) UpdateLine(index int, patch model.LinePatch) error {
	return e.edit(func() error {
		if index < 0 || index >= len(e.lines) {
			return fmt.Errorf("update line %d: %w", index, ErrLineOutOfRange)
		}
		e.lines[index] = e.lines[index].Apply(patch)
		return nil
	})
}

// RemoveLine drops one line; the remaining sequences are left as they are.
func (e *TemplateEditor) RemoveLine(index int) error {
	return e.edit(func() error {
		if index < 0 || index >= len(e.lines) {
			return fmt.Errorf("remove line %d: %w", index, ErrLineOutOfRange)
		}
		e.lines = append(e.lines[:index], e.lines[index+1:]...)
		return nil
	})
}

// MoveLine swaps two lines together with their sequences.
func (e *TemplateEditor) MoveLine(from, to int) error {
	return e.edit(func() error {
		if from < 0 || from >= len(e.lines) || to < 0 || to >= len(e.lines) {
			return fmt.Errorf("move line %d to %d: %w", from, to, ErrLineOutOfRange)
		}
		if from == to {
			return nil
		}
		a, b := e.lines[from], e.lines[to]
		a.Sequence, b.Sequence = b.Sequence, a.Sequence
		e.lines[from], e.lines[to] = b, a
		return nil
	})
}

// SetLines replaces the whole line list, keeping ids so the diff stays minimal.
func (e *TemplateEditor) SetLines(lines []model.SpecificationLine) error {
	return e.edit(func() error {
		e.lines = append([]model.SpecificationLine(nil), lines...)
		return nil
	})
}

func (e *TemplateEditor) edit(apply func() error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == EditorDeleted {
		return ErrEditorDeleted
	}
	if e.saving {
		return model.ErrSaveInProgress
	}
	if err := apply(); err != nil {
		return err
	}
	e.dirty = true
	if e.state == EditorSaved {
		e.state = EditorDirty
	}
	return nil
}

// Validate checks the local draft without touching the backend.
func (e *TemplateEditor) Validate() map[string]string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return validateTemplate(e.fields, e.lines)
}

func validateTemplate(fields model.TemplateFields, lines []model.SpecificationLine) map[string]string {
	errs := make(map[string]string)
	if fields.Name.IsBlank() {
		errs["name"] = "Template name is required"
	}
	if fields.DisplayStyle != "" && !fields.DisplayStyle.Valid() {
		errs["display_style"] = "Display style is invalid"
	}
	for i, line := range lines {
		if line.AttributeID == 0 {
			errs[fmt.Sprintf("lines.%d.attribute_id", i)] = fmt.Sprintf("Line %d: attribute is required", i+1)
		}
	}
	return errs
}

// Submit persists the draft. On failure the editor keeps its state and stays dirty.
func (e *TemplateEditor) Submit(ctx context.Context) (model.SpecificationTemplate, error) {
	e.mu.Lock()
	if e.state == EditorDeleted {
		e.mu.Unlock()
		return model.SpecificationTemplate{}, ErrEditorDeleted
	}
	if e.saving {
		e.mu.Unlock()
		return model.SpecificationTemplate{}, model.ErrSaveInProgress
	}
	id := e.id
	action := "update"
	if id == 0 {
		action = "create"
	}
	if err := validationError(validateTemplate(e.fields, e.lines)); err != nil {
		e.mu.Unlock()
		e.reporter.failure("template", action, id, err)
		return model.SpecificationTemplate{}, err
	}
	fields := e.fields
	if fields.DisplayStyle == "" {
		fields.DisplayStyle = model.StyleList
	}
	if fields.DisplayName.IsBlank() {
		fields.DisplayName = fields.Name
	}
	commands := diffLines(e.savedLines, e.lines)
	e.saving = true
	e.mu.Unlock()

	saved, err := e.service.SaveTemplate(ctx, id, fields, commands)

	e.mu.Lock()
	e.saving = false
	if err != nil {
		e.mu.Unlock()
		e.reporter.failure("template", action, id, err)
		return model.SpecificationTemplate{}, err
	}
	e.snapshot(saved)
	e.mu.Unlock()

	e.reporter.success("template", action, saved.ID, fmt.Sprintf("Template %sd successfully", action))
	return saved, nil
}

// Delete removes the persisted template; the editor becomes unusable.
func (e *TemplateEditor) Delete(ctx context.Context, confirmer Confirmer) error {
	e.mu.Lock()
	if e.state == EditorDeleted {
		e.mu.Unlock()
		return ErrEditorDeleted
	}
	if e.saving {
		e.mu.Unlock()
		return model.ErrSaveInProgress
	}
	id := e.id
	e.mu.Unlock()

	if err := confirm(ctx, confirmer, "Are you sure you want to delete this template?"); err != nil {
		return err
	}
	if id != 0 {
		if err := e.service.DeleteTemplate(ctx, id); err != nil {
			e.reporter.failure("template", "delete", id, err)
			return err
		}
	}

	e.mu.Lock()
	e.state = EditorDeleted
	e.dirty = false
	e.mu.Unlock()
	e.reporter.success("template", "delete", id, "Template deleted successfully")
	return nil
}

// diffLines renders current against saved as one2many commands: new lines are
// created, changed ones updated and vanished ones deleted.
func diffLines(saved, current []model.SpecificationLine) []model.LineCommand {
	byID := make(map[int64]model.SpecificationLine, len(saved))
	for _, l := range saved {
		byID[l.ID] = l
	}

	var cmds []model.LineCommand
	kept := make(map[int64]bool, len(current))
	for _, l := range current {
		if l.ID == 0 {
			cmds = append(cmds, model.LineCommand{Op: model.LineCreate, Line: l})
			continue
		}
		kept[l.ID] = true
		prev, ok := byID[l.ID]
		if !ok {
			cmds = append(cmds, model.LineCommand{Op: model.LineCreate, Line: clearLineID(l)})
			continue
		}
		if !prev.SameContent(l) {
			cmds = append(cmds, model.LineCommand{Op: model.LineUpdate, ID: l.ID, Line: l})
		}
	}
	for _, l := range saved {
		if !kept[l.ID] {
			cmds = append(cmds, model.LineCommand{Op: model.LineDelete, ID: l.ID})
		}
	}
	return cmds
}

func clearLineID(l model.SpecificationLine) model.SpecificationLine {
	l.ID = 0
	return l
}
