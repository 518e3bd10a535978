package usecases

import (
	"context"
	"fmt"
	"sync"

	"dealership-backoffice/internal/adapters/odoo"
	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"
)

const maxConcurrentLoads = 4

// ReferenceScope selects which selector lists to fetch. Models and trims are
// fetched only when their parent id is set.
type ReferenceScope struct {
	Brands     bool
	BrandID    int64
	ModelID    int64
	Years      bool
	Colors     bool
	Attributes bool
	Categories bool
}

func FullReferenceScope() ReferenceScope {
	return ReferenceScope{Brands: true, Years: true, Colors: true, Attributes: true, Categories: true}
}

type ReferenceData struct {
	Brands     []model.Brand             `json:"brands"`
	Models     []model.CarModel          `json:"models"`
	Trims      []model.Trim              `json:"trims"`
	Years      []model.Year              `json:"years"`
	Colors     []model.Color             `json:"colors"`
	Attributes []model.Attribute         `json:"attributes"`
	Categories []model.AttributeCategory `json:"categories"`
}

type ReferenceLoader struct {
	refs       odoo.ReferenceService
	attributes odoo.AttributeService
	categories odoo.CategoryService
	logger     logging.LoggerService
}

func NewReferenceLoader(refs odoo.ReferenceService, attributes odoo.AttributeService, categories odoo.CategoryService, logger logging.LoggerService) *ReferenceLoader {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &ReferenceLoader{refs: refs, attributes: attributes, categories: categories, logger: logger}
}

// Load fetches every requested list concurrently. A failed list comes back
// empty with its error keyed by list name; the others are unaffected.
func (l *ReferenceLoader) Load(ctx context.Context, scope ReferenceScope) (ReferenceData, map[string]error) {
	data := ReferenceData{
		Brands:     []model.Brand{},
		Models:     []model.CarModel{},
		Trims:      []model.Trim{},
		Years:      []model.Year{},
		Colors:     []model.Color{},
		Attributes: []model.Attribute{},
		Categories: []model.AttributeCategory{},
	}

	var tasks []loadTask
	if scope.Brands {
		tasks = append(tasks, loadTask{"brands", func() error {
			return assign(&data.Brands)(l.refs.ListBrands(ctx))
		}})
	}
	if scope.BrandID != 0 {
		tasks = append(tasks, loadTask{"models", func() error {
			return assign(&data.Models)(l.refs.ListModels(ctx, scope.BrandID))
		}})
	}
	if scope.ModelID != 0 {
		tasks = append(tasks, loadTask{"trims", func() error {
			return assign(&data.Trims)(l.refs.ListTrims(ctx, scope.ModelID))
		}})
	}
	if scope.Years {
		tasks = append(tasks, loadTask{"years", func() error {
			return assign(&data.Years)(l.refs.ListYears(ctx))
		}})
	}
	if scope.Colors {
		tasks = append(tasks, loadTask{"colors", func() error {
			return assign(&data.Colors)(l.refs.ListColors(ctx))
		}})
	}
	if scope.Attributes && l.attributes != nil {
		tasks = append(tasks, loadTask{"attributes", func() error {
			return assign(&data.Attributes)(l.attributes.ListAttributes(ctx, model.AttributeFilter{}))
		}})
	}
	if scope.Categories && l.categories != nil {
		tasks = append(tasks, loadTask{"categories", func() error {
			return assign(&data.Categories)(l.categories.ListCategories(ctx, model.CategoryFilter{}))
		}})
	}

	errs := make(map[string]error)
	var mu sync.Mutex
	sem := make(chan struct{}, maxConcurrentLoads)
	var wg sync.WaitGroup
	for _, task := range tasks {
		task := task
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			if err := task.run(); err != nil {
				l.logger.LogError(fmt.Sprintf("Failed to load %s", task.name), err)
				mu.Lock()
				errs[task.name] = err
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return data, errs
}

type loadTask struct {
	name string
	run  func() error
}

// assign stores a successful list into dst; a failed one leaves dst empty.
func assign[T any](dst *[]T) func([]T, error) error {
	return func(items []T, err error) error {
		if err != nil {
			return err
		}
		if items != nil {
			*dst = items
		}
		return nil
	}
}
