package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const skillListSchema = `{
	"type": "array",
	"items": {"type": "string"},
	"maxItems": 10
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(skillListSchema, `["Go", "SQL"]`)
	assert.NoError(t, err)
}

func TestValidateJSONString_WrongType(t *testing.T) {
	err := ValidateJSONString(skillListSchema, `{"skills": ["Go"]}`)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.NotEmpty(t, ve.Errors)
	assert.Equal(t, "(root)", ve.Errors[0].Field)
}

func TestValidateJSONString_FieldPathReported(t *testing.T) {
	schema := `{
		"type": "object",
		"properties": {
			"strengths": {"type": "array", "items": {"type": "string"}}
		},
		"required": ["strengths"]
	}`

	err := ValidateJSONString(schema, `{"strengths": [1, 2]}`)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Error(), "strengths")
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(skillListSchema, `not json at all`)
	require.Error(t, err)

	var sle *SchemaLoadError
	assert.True(t, errors.As(err, &sle))
}
