package validate

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/example/innatural/internal/models"
)

//go:embed catalog.schema.json
var catalogSchema string

const schemaURL = "https://innaturalstores.com/schemas/catalog.schema.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.Draft = jsonschema.Draft2020
		if err := c.AddResource(schemaURL, strings.NewReader(catalogSchema)); err != nil {
			compileErr = fmt.Errorf("load catalog schema: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// Document checks the raw catalog bytes against the catalog JSON schema and
// then runs every Catalog check on the decoded document when doc is non-nil.
// Shape problems the typed decoder accepts, such as a missing key or a
// malformed identifier, are reported as SCHEMA errors.
func Document(raw []byte, doc *models.Catalog) *Result {
	r := &Result{}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		r.add(CheckSchema, SeverityError, "document", "invalid JSON: %v", err)
		return r
	}

	sch, err := schema()
	if err != nil {
		r.add(CheckSchema, SeverityError, "document", "%v", err)
		return r
	}

	if err := sch.Validate(v); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			r.add(CheckSchema, SeverityError, "document", "%v", err)
		} else {
			for _, leaf := range leaves(ve) {
				subject := leaf.InstanceLocation
				if subject == "" {
					subject = "/"
				}
				r.add(CheckSchema, SeverityError, subject, "%s", leaf.Message)
			}
		}
	}

	if doc != nil {
		rest := Catalog(doc)
		r.Errors = append(r.Errors, rest.Errors...)
		r.Warnings = append(r.Warnings, rest.Warnings...)
	}
	return r
}

func leaves(ve *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return []*jsonschema.ValidationError{ve}
	}
	var out []*jsonschema.ValidationError
	for _, cause := range ve.Causes {
		out = append(out, leaves(cause)...)
	}
	return out
}
