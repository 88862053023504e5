package item

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// SchemaURL identifies the embedded item schema.
	SchemaURL = "https://gameitem-admin.local/schemas/item.schema.json"

	schemaFile = "schema/item.schema.json"
	effectsKey = "effects"

	// RuleEffectsEmpty is reported when effects carries no known group.
	RuleEffectsEmpty = "nonempty"
)

//go:embed schema/item.schema.json
var schemaFS embed.FS

var rawMessageType = reflect.TypeFor[json.RawMessage]() //nolint:gochecknoglobals

// Validator checks candidate item records.
// It is safe for concurrent use.
type Validator struct {
	schema  *jsonschema.Schema
	structs *validator.Validate
}

// NewValidator compiles the embedded item schema and prepares the struct validator.
func NewValidator() (*Validator, error) {
	raw, err := schemaFS.ReadFile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}

	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource(SchemaURL, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}

	schema, err := compiler.Compile(SchemaURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}

	structs := validator.New()
	structs.RegisterTagNameFunc(jsonFieldName)

	if err = structs.RegisterValidation("slot", func(fl validator.FieldLevel) bool {
		return Slot(fl.Field().String()).Valid()
	}); err != nil {
		return nil, err
	}

	return &Validator{
		schema:  schema,
		structs: structs,
	}, nil
}

// Validate checks a raw JSON record and returns the decoded item.
// An effects value given as a JSON string is parsed once before the schema pass;
// if it does not parse, effects is treated as null and fails the object rules.
func (v *Validator) Validate(raw []byte) (Item, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return Item{}, &ValidationError{Violations: []Violation{{
			Rule:    "json",
			Message: err.Error(),
		}}}
	}

	if obj, ok := doc.(map[string]any); ok {
		if effects, present := obj[effectsKey]; present {
			obj[effectsKey] = unwrapEffects(effects)
		}
	}

	if err = v.schema.Validate(doc); err != nil {
		verr := schemaViolations(err)
		log.Debug().Err(verr).Msg("item rejected by schema")

		return Item{}, verr
	}

	normalized, err := json.Marshal(knownFields(doc, reflect.TypeFor[Item]()))
	if err != nil {
		return Item{}, &ValidationError{Violations: []Violation{{Rule: "json", Message: err.Error()}}}
	}

	var it Item
	if err = json.Unmarshal(normalized, &it); err != nil {
		return Item{}, &ValidationError{Violations: []Violation{{Rule: "decode", Message: err.Error()}}}
	}

	if err = v.ValidateItem(&it); err != nil {
		return Item{}, err
	}

	log.Debug().Str("id", it.ID).Msg("valid item input")

	return it, nil
}

// ValidateItem checks an already decoded item.
func (v *Validator) ValidateItem(it *Item) error {
	var violations []Violation

	if err := v.structs.Struct(it); err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			return err
		}

		for _, fe := range fieldErrors {
			violations = append(violations, Violation{
				Field:   fieldPath(fe.Namespace()),
				Rule:    fe.Tag(),
				Message: tagMessage(fe),
			})
		}
	}

	// runs after the children so a broken group is reported as such
	if it.Effects != nil && it.Effects.IsEmpty() {
		violations = append(violations, Violation{
			Field:   effectsKey,
			Rule:    RuleEffectsEmpty,
			Message: "effects must have at least one field defined",
		})
	}

	if len(violations) > 0 {
		verr := &ValidationError{Violations: violations}
		log.Debug().Err(verr).Str("id", it.ID).Msg("item rejected")

		return verr
	}

	return nil
}

// knownFields drops object keys that do not name a field of t exactly.
// encoding/json matches names case-insensitively, so a key like "ATTRIBUTES"
// would otherwise fill a group the schema never checked.
func knownFields(value any, t reflect.Type) any {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == rawMessageType {
		return value
	}

	switch t.Kind() {
	case reflect.Struct:
		obj, ok := value.(map[string]any)
		if !ok {
			return value
		}

		out := make(map[string]any, len(obj))

		for i := range t.NumField() {
			field := t.Field(i)

			name := jsonFieldName(field)
			if name == "" {
				continue
			}

			if v, present := obj[name]; present {
				out[name] = knownFields(v, field.Type)
			}
		}

		return out
	case reflect.Map:
		obj, ok := value.(map[string]any)
		if !ok {
			return value
		}

		out := make(map[string]any, len(obj))
		for k, v := range obj {
			out[k] = knownFields(v, t.Elem())
		}

		return out
	case reflect.Slice:
		arr, ok := value.([]any)
		if !ok {
			return value
		}

		out := make([]any, len(arr))
		for i, v := range arr {
			out[i] = knownFields(v, t.Elem())
		}

		return out
	default:
		return value
	}
}

func unwrapEffects(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}

	parsed, err := jsonschema.UnmarshalJSON(strings.NewReader(s))
	if err != nil {
		return nil
	}

	return parsed
}

func schemaViolations(err error) error {
	var schemaErr *jsonschema.ValidationError
	if !errors.As(err, &schemaErr) {
		return &ValidationError{Violations: []Violation{{Rule: "schema", Message: err.Error()}}}
	}

	printer := message.NewPrinter(language.English)

	var violations []Violation
	collectViolations(schemaErr, printer, &violations)

	return &ValidationError{Violations: violations}
}

// collectViolations walks the cause tree and keeps the leaves only.
func collectViolations(err *jsonschema.ValidationError, printer *message.Printer, out *[]Violation) {
	if len(err.Causes) > 0 {
		for _, cause := range err.Causes {
			collectViolations(cause, printer, out)
		}

		return
	}

	location := strings.Join(err.InstanceLocation, ".")

	if required, ok := err.ErrorKind.(*kind.Required); ok {
		for _, missing := range required.Missing {
			*out = append(*out, Violation{
				Field:   joinPath(location, missing),
				Rule:    "required",
				Message: "is required",
			})
		}

		return
	}

	rule := ""
	if keywords := err.ErrorKind.KeywordPath(); len(keywords) > 0 {
		rule = keywords[len(keywords)-1]
	}

	*out = append(*out, Violation{
		Field:   location,
		Rule:    rule,
		Message: err.ErrorKind.LocalizedString(printer),
	})
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "slot":
		names := make([]string, len(Slots))
		for i, s := range Slots {
			names[i] = s.String()
		}

		return fmt.Sprintf("must be one of %s, got %q", strings.Join(names, ", "), fe.Value())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0] //nolint:mnd
	if name == "-" {
		return ""
	}

	return name
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if _, rest, found := strings.Cut(namespace, "."); found {
		return rest
	}

	return namespace
}

func joinPath(base, name string) string {
	if base == "" {
		return name
	}

	return base + "." + name
}
