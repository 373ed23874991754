package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var categoryTypes = map[string]bool{
	"top":       true,
	"bottom":    true,
	"outer":     true,
	"dress":     true,
	"shoes":     true,
	"bag":       true,
	"accessory": true,
}

func init() {
	validate = validator.New()

	// 에러 필드명은 JSON 태그 기준
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidators()
}

func registerCustomValidators() {
	validate.RegisterValidation("categorytype", func(fl validator.FieldLevel) bool {
		return categoryTypes[fl.Field().String()]
	})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func GetValidator() *validator.Validate {
	return validate
}
