package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joshua-takyi/carrental/internal/models"
)

var phonePattern = regexp.MustCompile(`^(\+?\d{1,3}[-.\s]?)?\(?\d{1,4}\)?[-.\s]?\d{1,4}[-.\s]?\d{1,9}$`)

// Field specific messages, keyed by "<json field>.<tag>".
var fieldMessages = map[string]string{
	"carId.uuid":        "Invalid car ID format",
	"startDate.notpast": "Start date cannot be in the past",
	"endDate.gtfield":   "End date must be after start date",
}

var registerOnce sync.Once

// RegisterValidators installs the custom tags on gin's validator and makes
// field errors report JSON names. Safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("unexpected validator engine")
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		if err = v.RegisterValidation("phone", validatePhone); err != nil {
			return
		}
		err = v.RegisterValidation("notpast", validateNotPast)
	})
	return err
}

func jsonFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

func validatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

func validateNotPast(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !t.Before(time.Now())
}

// ValidationErrors turns a binding error into per-field messages.
func ValidationErrors(err error) []models.FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]models.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, models.FieldError{
				Field:   fe.Field(),
				Message: fieldMessage(fe),
			})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []models.FieldError{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("must be a %s", typeErr.Type.Kind()),
		}}
	}

	var timeErr *time.ParseError
	if errors.As(err, &timeErr) {
		return []models.FieldError{{
			Message: "Invalid date format. Use ISO 8601 format",
		}}
	}

	return []models.FieldError{{Message: "Invalid request body"}}
}

func fieldMessage(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "phone":
		return "Invalid phone number format"
	case "notpast":
		return "cannot be in the past"
	case "gtfield":
		return fmt.Sprintf("must be after %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	}
	return fmt.Sprintf("failed on the %s rule", fe.Tag())
}
