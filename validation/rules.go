package validation

const (
	RuleValidationRequiredField = "validation-required-field"
	RuleValidationTypeMismatch  = "validation-type-mismatch"
	RuleValidationInvalidFormat = "validation-invalid-format"
	RuleValidationAllowedValues = "validation-allowed-values"
	RuleValidationInvalidValue  = "validation-invalid-value"
	RuleValidationInvalidSyntax = "validation-invalid-syntax"
)
