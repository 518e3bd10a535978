package usecases

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"dealership-backoffice/internal/domain/model"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the struct tags and keys messages by json field name.
func validateStruct(s any) map[string]string {
	errs := make(map[string]string)
	err := validate.Struct(s)
	if err == nil {
		return errs
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs["_"] = err.Error()
		return errs
	}
	for _, fe := range fieldErrs {
		errs[fe.Field()] = fieldMessage(fe)
	}
	return errs
}

func fieldMessage(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return label + " format is invalid"
	case "url", "http_url":
		return label + " must be a valid URL"
	case "hexcolor":
		return label + " must be a hex color"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", label, fe.Param())
	}
	return label + " is invalid"
}

// fieldLabel turns "company_email" into "Company email" and "facebook_url" into "Facebook URL".
func fieldLabel(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		switch w {
		case "url", "id", "vat", "seo", "html":
			words[i] = strings.ToUpper(w)
		}
	}
	label := strings.Join(words, " ")
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

func validationError(errs map[string]string) error {
	if len(errs) == 0 {
		return nil
	}
	return &model.ValidationError{Fields: errs}
}

func copyErrors(errs map[string]string) map[string]string {
	res := make(map[string]string, len(errs))
	for k, v := range errs {
		res[k] = v
	}
	return res
}
