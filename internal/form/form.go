package form

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Simplici0/auditcost/internal/costmodel"
)

// FieldError reports a form value that could not be accepted.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Parse reads one value per field from values. Every field is required,
// must be numeric and must not be below the field minimum.
func Parse(values url.Values) (costmodel.Input, error) {
	var in costmodel.Input

	for _, f := range Fields {
		v, err := parseMinFloat(values.Get(f.Key), f.Key, f.Min)
		if err != nil {
			return in, err
		}
		*f.get(&in) = v
	}

	if err := costmodel.Validate(in); err != nil {
		return in, err
	}
	return in, nil
}

// Encode is the inverse of Parse.
func Encode(in costmodel.Input) url.Values {
	values := url.Values{}
	for _, f := range Fields {
		values.Set(f.Key, formatValue(*f.get(&in)))
	}
	return values
}

// Groups returns the fields grouped by section, filled from values.
// Raw values are used so a rejected submission is shown back unchanged.
func Groups(values url.Values) []Group {
	groups := make([]Group, 0, 5)
	for _, f := range Fields {
		if len(groups) == 0 || groups[len(groups)-1].Title != f.Group {
			groups = append(groups, Group{Title: f.Group})
		}
		last := &groups[len(groups)-1]
		last.Fields = append(last.Fields, FieldValue{Field: f, Value: values.Get(f.Key)})
	}
	return groups
}

func parseMinFloat(raw, field string, minimum float64) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &FieldError{Field: field, Reason: "is required"}
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &FieldError{Field: field, Reason: "must be numeric"}
	}
	if value < minimum {
		return 0, &FieldError{Field: field, Reason: fmt.Sprintf("must be greater than or equal to %s", formatValue(minimum))}
	}
	return value, nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
