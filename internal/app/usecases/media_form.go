package usecases

import (
	"context"
	"io"
	"strings"

	"dealership-backoffice/internal/adapters/odoo"
	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"
)

type MediaForm struct {
	formState
	media    odoo.MediaService
	reporter reporter

	id      int64
	data    model.MediaData
	hasFile bool
}

func NewMediaForm(media odoo.MediaService, notifier Notifier, logger logging.LoggerService) *MediaForm {
	f := &MediaForm{media: media, reporter: newReporter(notifier, logger), data: model.NewMediaData()}
	f.errors = f.validate()
	return f
}

func EditMediaForm(m model.Media, media odoo.MediaService, notifier Notifier, logger logging.LoggerService) *MediaForm {
	f := &MediaForm{
		media:    media,
		reporter: newReporter(notifier, logger),
		id:       m.ID,
		data:     m.Data(),
		hasFile:  m.ImageURL != "" || m.MimeType != "",
	}
	f.errors = f.validate()
	return f
}

func (f *MediaForm) ID() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.id
}

func (f *MediaForm) Data() model.MediaData {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

// RequiredInput tells the caller which input the current content type needs.
func (f *MediaForm) RequiredInput() model.InputKind {
	kind, _ := f.Data().ContentType.Input()
	return kind
}

func (f *MediaForm) UpdateData(patch model.MediaPatch) {
	f.mu.Lock()
	defer f.mu.Unlock()
	prev := f.data.ContentType
	f.data = f.data.Apply(patch)
	if f.data.ContentType != prev {
		f.hasFile = false
	}
	f.dirty = true
	f.errors = f.validate()
}

// AttachFile sniffs and encodes a file for the current content type.
func (f *MediaForm) AttachFile(filename string, r io.Reader) error {
	content := f.Data().ContentType
	policy, ok := policyFor(content)
	if !ok {
		err := model.NewValidationError("file", "This content type does not take a file")
		f.reporter.failure("media file", "upload", f.ID(), err)
		return err
	}
	upload, err := EncodeUpload("file", filename, r, policy)
	if err != nil {
		f.reporter.failure("media file", "upload", f.ID(), err)
		return err
	}
	f.mu.Lock()
	f.data.File = upload
	f.dirty = true
	f.errors = f.validate()
	f.mu.Unlock()
	return nil
}

func (f *MediaForm) IsValid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.errors) == 0
}

// validate must be called with mu held.
func (f *MediaForm) validate() map[string]string {
	d := f.data
	errs := validateStruct(d)
	if d.CarID == 0 {
		errs["car_id"] = "Car is required"
	}
	kind, ok := d.ContentType.Input()
	if !ok {
		return errs
	}
	switch kind {
	case model.InputFile:
		if d.File == nil && !f.hasFile {
			errs["file"] = "File is required"
		}
	case model.InputURL:
		url := strings.TrimSpace(d.URL)
		if url == "" {
			errs["url"] = "URL is required"
		} else if err := validate.Var(url, "http_url"); err != nil {
			errs["url"] = "URL must be a valid URL"
		}
	case model.InputHTML:
		if strings.TrimSpace(d.HTML) == "" {
			errs["html"] = "Embed code is required"
		}
	}
	return errs
}

func (f *MediaForm) Save(ctx context.Context) Result[model.Media] {
	f.mu.Lock()
	f.errors = f.validate()
	if len(f.errors) > 0 {
		errs, id := copyErrors(f.errors), f.id
		f.mu.Unlock()
		f.reporter.failure("media", "save", id, &model.ValidationError{Fields: errs})
		return invalidResult(model.Media{}, errs)
	}
	if err := f.beginSave(); err != nil {
		f.mu.Unlock()
		return busyResult(model.Media{})
	}
	id, data := f.id, f.data
	f.mu.Unlock()

	var (
		media  model.Media
		err    error
		action = "update"
	)
	if id == 0 {
		action = "create"
		media, err = f.media.CreateMedia(ctx, data)
	} else {
		media, err = f.media.UpdateMedia(ctx, id, data)
	}
	if err != nil {
		f.endSave(false)
		return Result[model.Media]{Message: f.reporter.failure("media", action, id, err), Err: err}
	}

	f.mu.Lock()
	f.id = media.ID
	f.data = media.Data()
	f.hasFile = data.File != nil || f.hasFile
	f.errors = f.validate()
	f.mu.Unlock()
	f.endSave(true)

	message := "Media updated successfully"
	if action == "create" {
		message = "Media uploaded successfully"
	}
	f.reporter.success("media", action, media.ID, message)
	return Result[model.Media]{Success: true, Data: media, Message: message}
}

type MediaController struct {
	media    odoo.MediaService
	reporter reporter
	notifier Notifier
	logger   logging.LoggerService
}

func NewMediaController(media odoo.MediaService, notifier Notifier, logger logging.LoggerService) *MediaController {
	return &MediaController{media: media, reporter: newReporter(notifier, logger), notifier: notifier, logger: logger}
}

func (c *MediaController) List(ctx context.Context, filter model.MediaFilter) ([]model.Media, error) {
	items, err := c.media.ListMedia(ctx, filter)
	if err != nil {
		c.reporter.failure("media", "load", 0, err)
		return nil, err
	}
	return items, nil
}

func (c *MediaController) Get(ctx context.Context, id int64) (model.Media, error) {
	item, err := c.media.GetMedia(ctx, id)
	if err != nil {
		c.reporter.failure("media", "load", id, err)
		return model.Media{}, err
	}
	return item, nil
}

func (c *MediaController) New() *MediaForm {
	return NewMediaForm(c.media, c.notifier, c.logger)
}

func (c *MediaController) Open(ctx context.Context, id int64) (*MediaForm, error) {
	item, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return EditMediaForm(item, c.media, c.notifier, c.logger), nil
}

func (c *MediaController) Delete(ctx context.Context, id int64, confirmer Confirmer) error {
	if err := confirm(ctx, confirmer, "Are you sure you want to delete this media item?"); err != nil {
		return err
	}
	if err := c.media.DeleteMedia(ctx, id); err != nil {
		c.reporter.failure("media", "delete", id, err)
		return err
	}
	c.reporter.success("media", "delete", id, "Media deleted successfully")
	return nil
}

func (c *MediaController) SetPrimary(ctx context.Context, id int64) error {
	return c.setFlag(ctx, id, "is_primary", true, "Primary image updated")
}

func (c *MediaController) SetFeatured(ctx context.Context, id int64, featured bool) error {
	return c.setFlag(ctx, id, "is_featured", featured, "Featured flag updated")
}

func (c *MediaController) SetWebsiteVisible(ctx context.Context, id int64, visible bool) error {
	return c.setFlag(ctx, id, "website_visible", visible, "Website visibility updated")
}

func (c *MediaController) setFlag(ctx context.Context, id int64, field string, value bool, message string) error {
	if err := c.media.UpdateMediaFlags(ctx, id, map[string]bool{field: value}); err != nil {
		c.reporter.failure("media", "update", id, err)
		return err
	}
	c.reporter.success("media", "update", id, message)
	return nil
}

// Reorder persists a new order in one bulk call.
func (c *MediaController) Reorder(ctx context.Context, updates []model.MediaSequence) error {
	for _, u := range updates {
		if u.ID <= 0 {
			err := model.NewValidationError("updates", "Every item needs an id")
			c.reporter.failure("media order", "update", 0, err)
			return err
		}
	}
	if err := c.media.BulkUpdateSequence(ctx, updates); err != nil {
		c.reporter.failure("media order", "update", 0, err)
		return err
	}
	c.reporter.success("media", "update", 0, "Media order updated")
	return nil
}
