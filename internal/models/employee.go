package models

// Gender values accepted on an employee record
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Employed is stored as the yes/no string the roster filter compares against
const (
	EmployedYes = "yes"
	EmployedNo  = "no"
)

// QualificationEntry holds the attributes of a single qualification
// (e.g. score, technique, material). The shape varies by category.
type QualificationEntry map[string]string

// Employee represents a personnel record. The ID is assigned by the
// record store on first save and is immutable afterwards. Optional
// fields are kept as plain strings; empty means not provided.
type Employee struct {
	ID                   string           `json:"id" db:"id"`
	Name                 string           `json:"name" db:"name"`
	Surname              string           `json:"surname" db:"surname"`
	Email                string           `json:"email" db:"email"`
	Phone                string           `json:"phone" db:"phone"`
	Gender               string           `json:"gender" db:"gender"`
	Employed             string           `json:"employed" db:"employed"`
	TaxCode              string           `json:"tax_code" db:"tax_code"`
	Birthdate            string           `json:"birthdate" db:"birthdate"`
	BirthplaceCity       string           `json:"birthplace_city" db:"birthplace_city"`
	BirthplaceProvincia  string           `json:"birthplace_provincia" db:"birthplace_provincia"`
	BirthplaceNation     string           `json:"birthplace_nation" db:"birthplace_nation"`
	BirthplaceZipcode    string           `json:"birthplace_zipcode" db:"birthplace_zipcode"`
	LivingplaceAddress   string           `json:"livingplace_address" db:"livingplace_address"`
	LivingplaceCity      string           `json:"livingplace_city" db:"livingplace_city"`
	LivingplaceProvincia string           `json:"livingplace_provincia" db:"livingplace_provincia"`
	LivingplaceNation    string           `json:"livingplace_nation" db:"livingplace_nation"`
	LivingplaceZipcode   string           `json:"livingplace_zipcode" db:"livingplace_zipcode"`
	Documents            StringArray      `json:"documents" db:"documents"`
	Qualifications       QualificationMap `json:"qualifications" db:"qualifications"`
}

// Field returns the value of a named attribute as a string. Used by the
// query engine for search and categorical filtering.
func (e *Employee) Field(key string) string {
	switch key {
	case "id":
		return e.ID
	case "name":
		return e.Name
	case "surname":
		return e.Surname
	case "email":
		return e.Email
	case "phone":
		return e.Phone
	case "gender":
		return e.Gender
	case "employed":
		return e.Employed
	case "tax_code":
		return e.TaxCode
	case "birthdate":
		return e.Birthdate
	case "birthplace_city":
		return e.BirthplaceCity
	case "birthplace_provincia":
		return e.BirthplaceProvincia
	case "birthplace_nation":
		return e.BirthplaceNation
	case "birthplace_zipcode":
		return e.BirthplaceZipcode
	case "livingplace_address":
		return e.LivingplaceAddress
	case "livingplace_city":
		return e.LivingplaceCity
	case "livingplace_provincia":
		return e.LivingplaceProvincia
	case "livingplace_nation":
		return e.LivingplaceNation
	case "livingplace_zipcode":
		return e.LivingplaceZipcode
	}
	return ""
}

// Clone returns a deep copy. Edit sessions snapshot records with it so a
// rollback target cannot be mutated through the draft.
func (e *Employee) Clone() *Employee {
	c := *e
	if e.Documents != nil {
		c.Documents = make(StringArray, len(e.Documents))
		copy(c.Documents, e.Documents)
	}
	if e.Qualifications != nil {
		c.Qualifications = make(QualificationMap, len(e.Qualifications))
		for category, entries := range e.Qualifications {
			copied := make([]QualificationEntry, len(entries))
			for i, entry := range entries {
				ce := make(QualificationEntry, len(entry))
				for k, v := range entry {
					ce[k] = v
				}
				copied[i] = ce
			}
			c.Qualifications[category] = copied
		}
	}
	return &c
}

// HasDocument reports whether ref is already listed on the record.
func (e *Employee) HasDocument(ref string) bool {
	for _, doc := range e.Documents {
		if doc == ref {
			return true
		}
	}
	return false
}
