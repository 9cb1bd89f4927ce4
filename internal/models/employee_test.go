package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeClone(t *testing.T) {
	original := &Employee{
		ID:        "emp-1",
		Name:      "Anna",
		Surname:   "Rossi",
		Documents: StringArray{"doc1", "doc2"},
		Qualifications: QualificationMap{
			"saldatore": {{"technique": "TIG", "material": "steel", "score": "4"}},
		},
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	// Mutating the clone must not leak into the original.
	clone.Documents[0] = "other"
	clone.Qualifications["saldatore"][0]["score"] = "1"
	clone.Name = "Luca"

	assert.Equal(t, "doc1", original.Documents[0])
	assert.Equal(t, "4", original.Qualifications["saldatore"][0]["score"])
	assert.Equal(t, "Anna", original.Name)
}

func TestEmployeeField(t *testing.T) {
	e := &Employee{
		Name:     "Anna",
		Surname:  "Rossi",
		Employed: EmployedYes,
		TaxCode:  "RSSNNA80A41H501X",
	}

	assert.Equal(t, "Anna", e.Field("name"))
	assert.Equal(t, "Rossi", e.Field("surname"))
	assert.Equal(t, EmployedYes, e.Field("employed"))
	assert.Equal(t, "RSSNNA80A41H501X", e.Field("tax_code"))
	assert.Equal(t, "", e.Field("unknown"))
}

func TestEmployeeHasDocument(t *testing.T) {
	e := &Employee{Documents: StringArray{"doc1"}}

	assert.True(t, e.HasDocument("doc1"))
	assert.False(t, e.HasDocument("doc2"))
}
