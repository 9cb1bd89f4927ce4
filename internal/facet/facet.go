// Package facet derives the visible columns of each qualification
// category and flattens nested qualification entries into table rows.
package facet

import (
	"encoding/json"
	"sort"

	"github.com/gestionale-hr/personnel-backend/internal/models"
)

// extraColumns maps each qualification category to the sub-attribute
// columns its entries expose. The mapping is a static table rather than
// a parsed compound key so unknown categories simply get no extras.
var extraColumns = map[string][]string{
	"tubista":     {"score"},
	"carpentiere": {"score"},
	"impiegato":   {"score"},
	"capoTecnico": {"score"},
	"manovale":    {"score"},
	"saldatore":   {"technique", "material", "score"},
}

// prefixColumns open every qualification table.
var prefixColumns = []string{"name", "surname", "employed"}

// Categories returns the known qualification categories in sorted order.
func Categories() []string {
	out := make([]string, 0, len(extraColumns))
	for category := range extraColumns {
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}

// VisibleColumns returns the ordered column keys for a category table:
// the fixed name/surname/employed prefix plus the category's own
// attributes. Unknown categories get the prefix only.
func VisibleColumns(category string) []string {
	columns := make([]string, 0, len(prefixColumns)+len(extraColumns[category]))
	columns = append(columns, prefixColumns...)
	columns = append(columns, extraColumns[category]...)
	return columns
}

// SearchFields returns the columns the free-text term is matched
// against on a qualification table: the visible columns minus score and
// employed, matching the roster screens.
func SearchFields(category string) []string {
	fields := make([]string, 0, len(prefixColumns)+len(extraColumns[category]))
	for _, column := range VisibleColumns(category) {
		if column == "score" || column == "employed" {
			continue
		}
		fields = append(fields, column)
	}
	return fields
}

// Row is one flattened qualification entry joined with the owning
// employee's identity attributes. It satisfies query.Row.
type Row struct {
	ID         string
	Name       string
	Surname    string
	Employed   string
	Category   string
	Attributes models.QualificationEntry
}

// Field returns a named attribute, falling back to the qualification
// entry's own attributes for category-specific columns.
func (r Row) Field(key string) string {
	switch key {
	case "id":
		return r.ID
	case "name":
		return r.Name
	case "surname":
		return r.Surname
	case "employed":
		return r.Employed
	case "qualification":
		return r.Category
	}
	return r.Attributes[key]
}

// MarshalJSON flattens the entry attributes into the row object, the
// shape the qualification tables render.
func (r Row) MarshalJSON() ([]byte, error) {
	obj := make(map[string]string, len(r.Attributes)+5)
	for k, v := range r.Attributes {
		obj[k] = v
	}
	obj["id"] = r.ID
	obj["name"] = r.Name
	obj["surname"] = r.Surname
	obj["employed"] = r.Employed
	obj["qualification"] = r.Category
	return json.Marshal(obj)
}

// Flatten produces one row per qualification entry found under the
// category across all employees. Employees without a qualifications map
// or without the category contribute nothing.
func Flatten(employees []models.Employee, category string) []Row {
	var rows []Row
	for i := range employees {
		employee := &employees[i]
		if employee.Qualifications == nil {
			continue
		}
		for _, entry := range employee.Qualifications[category] {
			rows = append(rows, Row{
				ID:         employee.ID,
				Name:       employee.Name,
				Surname:    employee.Surname,
				Employed:   employee.Employed,
				Category:   category,
				Attributes: entry,
			})
		}
	}
	return rows
}
