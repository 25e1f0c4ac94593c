package models

// FieldError describes a single invalid field in a request body. The
// handler layer returns these under the "details" key of a 400 response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func required(details []FieldError, field, value string) []FieldError {
	if value == "" {
		details = append(details, FieldError{Field: field, Message: "is required"})
	}
	return details
}

func oneOf(details []FieldError, field, value string, allowed ...string) []FieldError {
	if value == "" {
		return details
	}
	for _, a := range allowed {
		if value == a {
			return details
		}
	}
	return append(details, FieldError{Field: field, Message: "has an invalid value"})
}
