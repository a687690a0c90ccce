package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/cv-generator/internal/document"
	"github.com/jonathan/cv-generator/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCVSchema_ValidJSON(t *testing.T) {
	data, err := os.ReadFile("cv.schema.json")
	require.NoError(t, err, "should be able to read schema file")

	var v map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &v), "schema file should be valid JSON")
	assert.Contains(t, v, "$schema")
	assert.Contains(t, v, "definitions")
}

func TestCVSchema_AcceptsExampleInput(t *testing.T) {
	inputPath := filepath.Join("..", "inputs", "cv.yaml")
	if _, err := os.Stat(inputPath); err != nil {
		t.Skip("example input not available")
	}

	doc, err := document.Load(inputPath)
	require.NoError(t, err)

	err = schemas.ValidateDocument("cv.schema.json", doc.Interface())
	assert.NoError(t, err)
}

func TestCVSchema_RejectsUnknownSection(t *testing.T) {
	doc, err := document.Parse([]byte("cv:\n  hobbies: {type: section}\n"))
	require.NoError(t, err)

	err = schemas.ValidateDocument("cv.schema.json", doc.Interface())
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestCVSchema_AcceptsAnyScalarDates(t *testing.T) {
	input := "cv:\n" +
		"  education:\n" +
		"    type: section\n" +
		"    name: {en: Education}\n" +
		"    entries:\n" +
		"      - {start: 2019.5, end: true, school: X U, degree: {en: BSc}}\n" +
		"      - {start: false, end: 2020.25, school: X U, degree: {en: MSc}}\n" +
		"      - {start: 2021, end: null, school: X U, degree: {en: PhD}}\n"
	doc, err := document.Parse([]byte(input))
	require.NoError(t, err)

	err = schemas.ValidateDocument("cv.schema.json", doc.Interface())
	assert.NoError(t, err)
}
