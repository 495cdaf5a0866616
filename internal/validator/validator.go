// Package validator configures gin's binding validator: JSON field names in
// messages, English translations and the domain-specific tags.
package validator

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/DannyWilsonCodeShop/classcast-platform/pkg/joincode"
)

var (
	trans ut.Translator
	once  sync.Once
)

// Setup registers tag names, translations and custom tags on gin's binding
// engine. Safe to call more than once.
func Setup() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*govalidator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = fld.Tag.Get("form")
			}
			return name
		})

		_ = v.RegisterValidation("joincode", func(fl govalidator.FieldLevel) bool {
			return joincode.Valid(fl.Field().String())
		})

		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		trans, _ = uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(v, trans)
		_ = v.RegisterTranslation("joincode", trans,
			func(t ut.Translator) error {
				return t.Add("joincode", "{0} must be a 6-character join code", true)
			},
			func(t ut.Translator, fe govalidator.FieldError) string {
				msg, _ := t.T("joincode", fe.Field())
				return msg
			},
		)
	})
}

// TranslateErrors returns field name -> readable message for a binding error.
// Errors that are not validation errors come back under "detail".
func TranslateErrors(err error) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			if trans != nil {
				fields[fe.Field()] = fe.Translate(trans)
			} else {
				fields[fe.Field()] = fe.Error()
			}
		}
		return fields
	}

	fields["detail"] = err.Error()
	return fields
}

// Message flattens a binding error into one line for the error body.
func Message(err error) string {
	fields := TranslateErrors(err)
	if detail, ok := fields["detail"]; ok && len(fields) == 1 {
		return "invalid request body: " + detail
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fields[k])
	}
	return strings.Join(msgs, "; ")
}
