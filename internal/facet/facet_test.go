package facet

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestionale-hr/personnel-backend/internal/models"
)

func TestCategoriesSorted(t *testing.T) {
	categories := Categories()

	assert.Equal(t, []string{
		"capoTecnico", "carpentiere", "impiegato",
		"manovale", "saldatore", "tubista",
	}, categories)
}

func TestVisibleColumns(t *testing.T) {
	tests := []struct {
		category string
		want     []string
	}{
		{"tubista", []string{"name", "surname", "employed", "score"}},
		{"manovale", []string{"name", "surname", "employed", "score"}},
		{"saldatore", []string{"name", "surname", "employed", "technique", "material", "score"}},
		{"astronauta", []string{"name", "surname", "employed"}},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, VisibleColumns(tt.category))
		})
	}
}

func TestSearchFieldsExcludeScoreAndEmployed(t *testing.T) {
	assert.Equal(t, []string{"name", "surname"}, SearchFields("tubista"))
	assert.Equal(t, []string{"name", "surname", "technique", "material"}, SearchFields("saldatore"))
}

func TestFlatten(t *testing.T) {
	employees := []models.Employee{
		{
			ID:       "e1",
			Name:     "Anna",
			Surname:  "Rossi",
			Employed: models.EmployedYes,
			Qualifications: models.QualificationMap{
				"saldatore": {
					{"technique": "TIG", "material": "inox", "score": "8"},
					{"technique": "MIG", "material": "alluminio", "score": "7"},
				},
				"tubista": {
					{"score": "9"},
				},
			},
		},
		{
			ID:       "e2",
			Name:     "Luca",
			Surname:  "Bianchi",
			Employed: models.EmployedNo,
			Qualifications: models.QualificationMap{
				"saldatore": {
					{"technique": "MMA", "material": "acciaio", "score": "6"},
				},
			},
		},
		{ID: "e3", Name: "Mario", Surname: "Verdi"},
	}

	rows := Flatten(employees, "saldatore")

	require.Len(t, rows, 3)
	assert.Equal(t, "e1", rows[0].ID)
	assert.Equal(t, "TIG", rows[0].Field("technique"))
	assert.Equal(t, "MIG", rows[1].Field("technique"))
	assert.Equal(t, "e2", rows[2].ID)
	assert.Equal(t, "saldatore", rows[2].Field("qualification"))
}

func TestFlattenUnknownCategory(t *testing.T) {
	employees := []models.Employee{
		{ID: "e1", Qualifications: models.QualificationMap{"tubista": {{"score": "9"}}}},
	}

	assert.Empty(t, Flatten(employees, "astronauta"))
}

func TestFlattenNoEmployees(t *testing.T) {
	assert.Empty(t, Flatten(nil, "tubista"))
}

func TestRowField(t *testing.T) {
	row := Row{
		ID:         "e1",
		Name:       "Anna",
		Surname:    "Rossi",
		Employed:   models.EmployedYes,
		Category:   "saldatore",
		Attributes: models.QualificationEntry{"technique": "TIG", "score": "8"},
	}

	assert.Equal(t, "e1", row.Field("id"))
	assert.Equal(t, "Anna", row.Field("name"))
	assert.Equal(t, "Rossi", row.Field("surname"))
	assert.Equal(t, "yes", row.Field("employed"))
	assert.Equal(t, "saldatore", row.Field("qualification"))
	assert.Equal(t, "TIG", row.Field("technique"))
	assert.Equal(t, "8", row.Field("score"))
	assert.Equal(t, "", row.Field("missing"))
}

func TestRowMarshalJSONFlattensAttributes(t *testing.T) {
	row := Row{
		ID:         "e1",
		Name:       "Anna",
		Surname:    "Rossi",
		Employed:   models.EmployedYes,
		Category:   "saldatore",
		Attributes: models.QualificationEntry{"technique": "TIG", "material": "inox", "score": "8"},
	}

	data, err := json.Marshal(row)
	require.NoError(t, err)

	var obj map[string]string
	require.NoError(t, json.Unmarshal(data, &obj))
	assert.Equal(t, map[string]string{
		"id":            "e1",
		"name":          "Anna",
		"surname":       "Rossi",
		"employed":      "yes",
		"qualification": "saldatore",
		"technique":     "TIG",
		"material":      "inox",
		"score":         "8",
	}, obj)
}
