// Package forms declares the input forms of the client and validates them
// with go-playground/validator. Failures come back as
// *common.ValidationError keyed by the field names shown to the user.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrijs2005/biteshare/internal/client/models"
	"github.com/dmitrijs2005/biteshare/internal/common"
	"github.com/go-playground/validator/v10"
)

type SignupForm struct {
	Name     string `form:"name" validate:"required,max=100"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
	Role     string `form:"role" validate:"required,oneof=student donor"`
}

type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type StudentVerificationForm struct {
	StudentID string `form:"studentId" validate:"required"`
}

type PreferencesForm struct {
	Preferences models.PreferenceSet `form:"preferences" validate:"min=1"`
}

// RequestForm is a new assistance request. Money requests need an amount;
// food and essentials requests need at least one item.
type RequestForm struct {
	Type        string   `form:"type" validate:"required,oneof=food money essentials"`
	Title       string   `form:"title" validate:"required,max=120"`
	Description string   `form:"description" validate:"required,max=1000"`
	Urgency     string   `form:"urgency" validate:"required,oneof=low medium high"`
	Amount      int      `form:"amount" validate:"gte=0"`
	Items       []string `form:"items" validate:"dive,required"`
}

type DonationForm struct {
	Amount  int    `form:"amount" validate:"gt=0"`
	Message string `form:"message" validate:"max=280"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	v.RegisterStructValidation(requestRules, RequestForm{})
	return v
}

func requestRules(sl validator.StructLevel) {
	f := sl.Current().Interface().(RequestForm)
	switch models.Category(f.Type) {
	case models.CategoryMoney:
		if f.Amount <= 0 {
			sl.ReportError(f.Amount, "amount", "Amount", "money_amount", "")
		}
	case models.CategoryFood, models.CategoryEssentials:
		if len(f.Items) == 0 {
			sl.ReportError(f.Items, "items", "Items", "items_required", "")
		}
	}
}

// Normalize trims text fields and drops blank items.
func (f *RequestForm) Normalize() {
	f.Type = strings.ToLower(strings.TrimSpace(f.Type))
	f.Urgency = strings.ToLower(strings.TrimSpace(f.Urgency))
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)

	items := f.Items[:0]
	for _, it := range f.Items {
		if it = strings.TrimSpace(it); it != "" {
			items = append(items, it)
		}
	}
	f.Items = items
}

// Validate checks v against its validate tags.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &common.ValidationError{}
	for _, fe := range verrs {
		out.Add(fieldName(fe), message(fe))
	}
	return out
}

func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("select at least %s", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "money_amount":
		return "money requests need an amount greater than 0"
	case "items_required":
		return "add at least one item"
	}
	return "is invalid"
}
