// Package validation validates request payloads with go-playground/validator.
//
// A single validator instance is shared by all callers; it caches struct
// metadata and is safe for concurrent use. Field names in messages are the
// JSON names clients send, not Go field names.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"devcamper/internal/apperror"
	"devcamper/internal/model"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Get returns the shared validator, registering custom tags on first use.
func Get() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})

		// career: a single element of Bootcamp.Careers
		_ = validate.RegisterValidation("career", func(fl validator.FieldLevel) bool {
			return slices.Contains(model.Careers, fl.Field().String())
		})
	})
	return validate
}

// Struct validates s. Failures come back as a validation *apperror.Error
// whose message joins one sentence per offending field.
func Struct(s any) error {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return apperror.Internal(err, "Server Error")
	}
	return apperror.Wrap(ves, apperror.KindValidation, Message(ves))
}

// Message joins the translated field errors with ", ".
func Message(ves validator.ValidationErrors) string {
	msgs := make([]string, 0, len(ves))
	for _, fe := range ves {
		msgs = append(msgs, translate(fe))
	}
	return strings.Join(msgs, ", ")
}

var messages = map[string]string{
	"required": "Please add a %s",
	"email":    "Please add a valid email",
	"http_url": "Please use a valid URL with HTTP or HTTPS",
	"career":   "Please choose careers from: " + strings.Join(model.Careers, ", "),
}

// required messages that do not read well from the field name alone
var requiredMessages = map[string]string{
	"weeks":        "Please add number of weeks",
	"tuition":      "Please add a tuition cost",
	"minimumSkill": "Please add a minimum skill",
	"careers":      "Please add at least one career",
}

var messagesWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"gt":    "%s must be greater than %s",
}

func translate(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	if tag == "required" {
		if msg, ok := requiredMessages[field]; ok {
			return msg
		}
	}
	if tmpl, ok := messages[tag]; ok {
		if strings.Contains(tmpl, "%s") {
			return fmt.Sprintf(tmpl, field)
		}
		return tmpl
	}
	if tmpl, ok := messagesWithParam[tag]; ok {
		return fmt.Sprintf(tmpl, field, strings.ReplaceAll(param, " ", ", "))
	}

	isString := fe.Kind() == reflect.String
	switch tag {
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Please add at least %s %s", param, field)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if isString {
			return fmt.Sprintf("%s can not be more than %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}
