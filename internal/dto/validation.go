package dto

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators adds the custom tags used by the request DTOs to v.
// Gin's default binding engine is passed in from the router setup.
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("decimal", isDecimal); err != nil {
		return err
	}
	return v.RegisterValidation("isodate", isISODate)
}

// isDecimal accepts a decimal string. An optional parameter caps the number
// of significant fractional digits, e.g. decimal=6 for a NUMERIC(20,6) column.
func isDecimal(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	if fl.Param() == "" {
		return true
	}
	scale, err := strconv.ParseInt(fl.Param(), 10, 32)
	if err != nil {
		return false
	}
	return d.Equal(d.Truncate(int32(scale)))
}

func isISODate(fl validator.FieldLevel) bool {
	_, err := parseDate(fl.Field().String())
	return err == nil
}
