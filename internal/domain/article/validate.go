package article

import (
	"strings"
)

// Validation messages, returned to clients verbatim.
const (
	MsgNameEmpty         = "name must not be empty"
	MsgUnitEmpty         = "unit must not be empty"
	MsgQuantityRequired  = "quantity is required"
	MsgQuantityNegative  = "quantity must be ≥ 0"
	MsgThresholdRequired = "lowStockThreshold is required"
	MsgThresholdNegative = "lowStockThreshold must be ≥ 0"
)

// Validate returns the violated rules in field order, or nil.
func (in CreateInput) Validate() []string {
	var errs []string
	errs = checkNotBlank(errs, in.Name, MsgNameEmpty)
	errs = checkNonNegative(errs, in.Quantity, MsgQuantityRequired, MsgQuantityNegative)
	errs = checkNotBlank(errs, in.Unit, MsgUnitEmpty)
	errs = checkNonNegative(errs, in.LowStockThreshold, MsgThresholdRequired, MsgThresholdNegative)
	return errs
}

// Validate returns the violated rules in field order, or nil.
func (in MetadataInput) Validate() []string {
	var errs []string
	errs = checkNotBlank(errs, in.Name, MsgNameEmpty)
	errs = checkNotBlank(errs, in.Unit, MsgUnitEmpty)
	errs = checkNonNegative(errs, in.LowStockThreshold, MsgThresholdRequired, MsgThresholdNegative)
	return errs
}

// Validate returns the violated rules, or nil.
func (in QuantityInput) Validate() []string {
	return checkNonNegative(nil, in.Quantity, MsgQuantityRequired, MsgQuantityNegative)
}

func checkNotBlank(errs []string, v, msg string) []string {
	if strings.TrimSpace(v) == "" {
		return append(errs, msg)
	}
	return errs
}

func checkNonNegative(errs []string, v *int32, missing, negative string) []string {
	switch {
	case v == nil:
		return append(errs, missing)
	case *v < 0:
		return append(errs, negative)
	}
	return errs
}
