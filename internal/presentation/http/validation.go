package httppresentation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Zhima-Mochi/minishop-checkout/internal/pkg/phone"
	"github.com/go-playground/validator/v10"
)

const tagPhone = "phone"

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(validateCustomerPhone, customerRequest{})
	return v
}

// validateCustomerPhone checks customerPhone against the layout of phoneCode.
func validateCustomerPhone(sl validator.StructLevel) {
	req := sl.Current().Interface().(customerRequest)
	if req.CustomerPhone == "" {
		return
	}
	if !phone.Validate(req.CustomerPhone, req.PhoneCode) {
		sl.ReportError(req.CustomerPhone, "customerPhone", "CustomerPhone", tagPhone, req.PhoneCode)
	}
}

// validationDetails turns validator errors into one message per field.
func validationDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fieldName(fe)
		switch fe.Tag() {
		case "required":
			details = append(details, fmt.Sprintf("%s is required", field))
		case tagPhone:
			details = append(details, fmt.Sprintf("%s: %s", field, phone.Error(fmt.Sprint(fe.Value()), fe.Param())))
		default:
			details = append(details, fmt.Sprintf("%s is invalid", field))
		}
	}
	return details
}

// fieldName drops the struct prefix from the namespace so embedded request
// fields read as their JSON names.
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	if i := strings.LastIndex(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
