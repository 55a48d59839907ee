package dto

import (
	"fmt"
	"reflect"

	"github.com/SscSPs/debit_card_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators teaches v about decimal fields and adds the positive_decimal tag.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	if err := v.RegisterValidation("positive_decimal", positiveDecimal); err != nil {
		return fmt.Errorf("failed to register positive_decimal validation: %w", err)
	}
	return nil
}

// decimalValue lets validator treat a decimal as its string form.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func positiveDecimal(fl validator.FieldLevel) bool {
	d, err := domain.ParseMoney(fl.Field().String())
	return err == nil && d.IsPositive()
}
