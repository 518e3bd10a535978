package usecases

import (
	"sync"

	"dealership-backoffice/internal/domain/model"
)

const fixValidationMessage = "Please fix validation errors before saving"

// formState is the bookkeeping every entity form shares. Validation runs on
// each update; saving guards against a second concurrent Save.
type formState struct {
	mu     sync.Mutex
	errors map[string]string
	dirty  bool
	saving bool
}

func (f *formState) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyErrors(f.errors)
}

func (f *formState) IsDirty() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dirty
}

func (f *formState) IsSaving() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saving
}

// beginSave must be called with mu held.
func (f *formState) beginSave() error {
	if f.saving {
		return model.ErrSaveInProgress
	}
	f.saving = true
	return nil
}

func (f *formState) endSave(success bool) {
	f.mu.Lock()
	f.saving = false
	if success {
		f.dirty = false
	}
	f.mu.Unlock()
}

func invalidResult[T any](data T, errs map[string]string) Result[T] {
	return Result[T]{
		Data:    data,
		Message: fixValidationMessage,
		Errors:  copyErrors(errs),
		Err:     &model.ValidationError{Fields: copyErrors(errs)},
	}
}

func busyResult[T any](data T) Result[T] {
	return Result[T]{Data: data, Message: model.ErrSaveInProgress.Error(), Err: model.ErrSaveInProgress}
}
