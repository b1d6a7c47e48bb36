package manifest

import (
	"bytes"
	"cmp"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/manifest.schema.json
var schemaBytes []byte

const schemaURL = "manifest.schema.json"

var printer = message.NewPrinter(language.English)

// manifestSchema compiles the embedded schema on first use.
var manifestSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return nil, fmt.Errorf("unmarshaling schema JSON: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	schema, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	return schema, nil
})

// ValidationResult contains the outcome of a shape validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single structural problem.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/content/1")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed
}

func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Validate decodes data in the given notation and checks its shape against
// the manifest schema. The error return is for decoding or schema
// compilation failures; shape problems are reported in the ValidationResult.
func Validate(data []byte, format Format) (*ValidationResult, error) {
	doc, err := decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}
	return validateDocument(doc)
}

// ValidateFile reads a file and checks its shape against the manifest schema.
func ValidateFile(path string) (*ValidationResult, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}
	return Validate(data, format)
}

func validateDocument(doc interface{}) (*ValidationResult, error) {
	schema, err := manifestSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	// Round-trip through JSON so numbers reach the validator as json.Number.
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &ValidationResult{
		Valid:  false,
		Issues: leafIssues(validationErr),
	}, nil
}

// leafIssues flattens a validation error tree into its distinct leaf
// failures, ordered by path, then keyword, then message. Both branches of a
// failed plugin oneOf are leaves.
func leafIssues(root *jsonschema.ValidationError) []ValidationIssue {
	seen := make(map[ValidationIssue]struct{})
	var issues []ValidationIssue

	pending := []*jsonschema.ValidationError{root}
	for len(pending) > 0 {
		ve := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if len(ve.Causes) > 0 {
			pending = append(pending, ve.Causes...)
			continue
		}
		issue, ok := leafIssue(ve)
		if !ok {
			continue
		}
		if _, dup := seen[issue]; dup {
			continue
		}
		seen[issue] = struct{}{}
		issues = append(issues, issue)
	}

	if len(issues) == 0 {
		return []ValidationIssue{{Message: root.Error()}}
	}
	slices.SortFunc(issues, func(a, b ValidationIssue) int {
		return cmp.Or(
			strings.Compare(a.Path, b.Path),
			strings.Compare(a.Keyword, b.Keyword),
			strings.Compare(a.Message, b.Message),
		)
	})
	return issues
}

// leafIssue reports false for container keywords, which carry no property
// information of their own.
func leafIssue(ve *jsonschema.ValidationError) (ValidationIssue, bool) {
	if ve.ErrorKind == nil {
		return ValidationIssue{}, false
	}
	kwPath := ve.ErrorKind.KeywordPath()
	if len(kwPath) == 0 {
		return ValidationIssue{}, false
	}
	issue := ValidationIssue{
		Keyword: kwPath[len(kwPath)-1],
		Message: ve.ErrorKind.LocalizedString(printer),
	}
	switch issue.Keyword {
	case "oneOf", "allOf", "$ref":
		return ValidationIssue{}, false
	}
	if len(ve.InstanceLocation) > 0 {
		issue.Path = "/" + strings.Join(ve.InstanceLocation, "/")
	}
	return issue, true
}
