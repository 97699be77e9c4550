package request

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

// jsonFieldName reports validation failures under the JSON (or query) name of
// the field instead of the Go name.
func jsonFieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// FieldErrors converts binding validation failures into field -> message. It
// returns nil for errors that are not validation failures (malformed JSON).
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, ok := out[field]; ok {
			continue
		}
		out[field] = fieldMessage(field, fe)
	}
	return out
}

func fieldMessage(field string, fe validator.FieldError) string {
	label := strings.ReplaceAll(field, "_", " ")
	switch fe.Tag() {
	case "required":
		return "The " + label + " field is required."
	case "gte", "min":
		return "The " + label + " field must be at least " + fe.Param() + "."
	case "lte", "max":
		return "The " + label + " field must not be greater than " + fe.Param() + "."
	case "oneof":
		return "The selected " + label + " is invalid."
	case "datetime":
		return "The " + label + " field must match the format " + displayLayout(fe.Param()) + "."
	default:
		return "The " + label + " field is invalid."
	}
}

func displayLayout(layout string) string {
	return strings.NewReplacer("2006", "YYYY", "01", "MM", "02", "DD").Replace(layout)
}

// parseDate parses an optional YYYY-MM-DD value, recording a message in errs
// under field when it is malformed.
func parseDate(errs map[string]string, field string, v *string) *time.Time {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(*v))
	if err != nil {
		errs[field] = "The " + strings.ReplaceAll(field, "_", " ") + " field must match the format YYYY-MM-DD."
		return nil
	}
	return &t
}

// InvalidFields is returned by the ToInput conversions when a value passed
// the binding rules but still could not be interpreted.
type InvalidFields map[string]string

func (f InvalidFields) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	return "invalid fields: " + strings.Join(keys, ", ")
}

func (f InvalidFields) orNil() error {
	if len(f) == 0 {
		return nil
	}
	return f
}
