package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/casaplex/casaplex/internal/domain/listing"
	"github.com/casaplex/casaplex/internal/domain/publication"
)

// RegisterValidations installs the domain value validations on gin's
// binding engine. Called once during router construction.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("dealtype", func(fl validator.FieldLevel) bool {
		return listing.DealType(fl.Field().String()).IsValid()
	})

	v.RegisterValidation("pubstatus", func(fl validator.FieldLevel) bool {
		return publication.Status(fl.Field().String()).IsValid()
	})
}
