package api

import (
	"strings"

	"sweet-shop/internal/apperror"
	"sweet-shop/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const (
	MsgMissingFields = "Please provide all required fields"
	MsgQuantityLimit = "Quantity cannot exceed 9007199254740991"
)

// Validator wraps go-playground/validator for echo.
// swagger:ignore
type Validator struct {
	validator *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("sweetcategory", func(fl validator.FieldLevel) bool {
		return model.Category(fl.Field().String()).IsValid()
	})
	return &Validator{validator: v}
}

// Validate calls the underlying validator.
func (cv *Validator) Validate(i interface{}) error {
	if r, ok := i.(*UpdateSweetRequest); ok {
		return cv.validator.Struct(r.fields())
	}
	return cv.validator.Struct(i)
}

// messages for rule failures, keyed by field and tag.
var messages = map[string]string{
	"Name.min":               "Sweet name must be at least 2 characters long",
	"Name.max":               "Sweet name cannot exceed 100 characters",
	"Name.required":          "Sweet name is required",
	"Category.sweetcategory": "is not a valid category",
	"Category.required":      "Category is required",
	"Price.gte":              "Price cannot be negative",
	"Price.required":         "Price is required",
	"Quantity.gte":           "Quantity cannot be negative",
	"Quantity.lte":           MsgQuantityLimit,
	"Quantity.required":      "Quantity is required",
	"Description.max":        "Description cannot exceed 500 characters",
}

// ValidationError converts a validator failure into a validation error.
// A missing required field yields MsgMissingFields; rule failures are
// joined into one message.
func ValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.Wrap(err, apperror.KindValidation, err.Error())
	}
	var msgs []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return apperror.Wrap(err, apperror.KindValidation, MsgMissingFields)
		}
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		switch {
		case !ok:
			msg = fe.Error()
		case fe.Tag() == "sweetcategory":
			msg = categoryValue(fe.Value()) + " " + msg
		}
		msgs = append(msgs, msg)
	}
	return apperror.Wrap(err, apperror.KindValidation, strings.Join(msgs, ", "))
}

func categoryValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case *string:
		if t != nil {
			return *t
		}
	}
	return ""
}
