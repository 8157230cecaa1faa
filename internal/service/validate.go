package service

import "coride/internal/validation"

var validate = validation.New()

// check validates input against its struct tags.
func check(input interface{}) error {
	return validation.Translate(validate.Struct(input))
}
