package surveyapi

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// resultSchemaJSON is the contract for the scoring response. "msg" is
// optional; extra fields are tolerated because the service has added
// diagnostic fields before without a version bump.
const resultSchemaJSON = `{
	"type": "object",
	"properties": {
		"score": {"type": "number"},
		"action": {"type": "string", "minLength": 1},
		"msg": {"type": "string"}
	},
	"required": ["score", "action"]
}`

var (
	resultSchemaOnce sync.Once
	resultSchema     *jsonschema.Schema
	resultSchemaErr  error
)

func compiledResultSchema() (*jsonschema.Schema, error) {
	resultSchemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(resultSchemaJSON), &def); err != nil {
			resultSchemaErr = fmt.Errorf("parse result schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://submit-result.json", def); err != nil {
			resultSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		resultSchema, resultSchemaErr = c.Compile("schema://submit-result.json")
	})
	return resultSchema, resultSchemaErr
}

// validateResult checks a raw scoring response against the contract
// before it is decoded into a SubmitResult.
func validateResult(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := compiledResultSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("response does not match scoring contract: %w", err)
	}
	return nil
}
