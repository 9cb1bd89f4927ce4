package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/gestionale-hr/personnel-backend/internal/models"
)

// ErrNotFound indicates the requested record does not exist. Handlers
// map it to a terminal "no such record" response, distinct from a
// transient store failure.
var ErrNotFound = errors.New("employee not found")

// employeeColumns is the full column list in scan order.
const employeeColumns = `
	id, name, surname, email, phone, gender, employed, tax_code,
	birthdate, birthplace_city, birthplace_provincia, birthplace_nation, birthplace_zipcode,
	livingplace_address, livingplace_city, livingplace_provincia, livingplace_nation, livingplace_zipcode,
	documents, qualifications`

// EmployeeRepository handles database operations for the employees table
type EmployeeRepository struct {
	db DB
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(db DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func scanEmployee(scan func(...interface{}) error) (*models.Employee, error) {
	e := &models.Employee{}
	err := scan(
		&e.ID, &e.Name, &e.Surname, &e.Email, &e.Phone, &e.Gender, &e.Employed, &e.TaxCode,
		&e.Birthdate, &e.BirthplaceCity, &e.BirthplaceProvincia, &e.BirthplaceNation, &e.BirthplaceZipcode,
		&e.LivingplaceAddress, &e.LivingplaceCity, &e.LivingplaceProvincia, &e.LivingplaceNation, &e.LivingplaceZipcode,
		&e.Documents, &e.Qualifications,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ListRecords retrieves every employee record.
func (r *EmployeeRepository) ListRecords() ([]models.Employee, error) {
	query := `SELECT` + employeeColumns + ` FROM employees`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []models.Employee
	for rows.Next() {
		e, err := scanEmployee(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return employees, nil
}

// GetRecord retrieves one employee by id.
func (r *EmployeeRepository) GetRecord(id string) (*models.Employee, error) {
	query := `SELECT` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(r.db.QueryRow(query, id).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

// CreateRecord inserts a new employee and returns the assigned id.
func (r *EmployeeRepository) CreateRecord(e *models.Employee) (string, error) {
	query := `
		INSERT INTO employees (
			name, surname, email, phone, gender, employed, tax_code,
			birthdate, birthplace_city, birthplace_provincia, birthplace_nation, birthplace_zipcode,
			livingplace_address, livingplace_city, livingplace_provincia, livingplace_nation, livingplace_zipcode,
			documents, qualifications
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id
	`

	var id string
	err := r.db.QueryRow(
		query,
		e.Name, e.Surname, e.Email, e.Phone, e.Gender, e.Employed, e.TaxCode,
		e.Birthdate, e.BirthplaceCity, e.BirthplaceProvincia, e.BirthplaceNation, e.BirthplaceZipcode,
		e.LivingplaceAddress, e.LivingplaceCity, e.LivingplaceProvincia, e.LivingplaceNation, e.LivingplaceZipcode,
		e.Documents, e.Qualifications,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to create employee: %w", err)
	}

	return id, nil
}

// UpdateRecord updates an existing employee and returns its id.
func (r *EmployeeRepository) UpdateRecord(e *models.Employee) (string, error) {
	query := `
		UPDATE employees SET
			name = $2, surname = $3, email = $4, phone = $5, gender = $6, employed = $7, tax_code = $8,
			birthdate = $9, birthplace_city = $10, birthplace_provincia = $11, birthplace_nation = $12, birthplace_zipcode = $13,
			livingplace_address = $14, livingplace_city = $15, livingplace_provincia = $16, livingplace_nation = $17, livingplace_zipcode = $18,
			documents = $19, qualifications = $20
		WHERE id = $1
		RETURNING id
	`

	var id string
	err := r.db.QueryRow(
		query,
		e.ID,
		e.Name, e.Surname, e.Email, e.Phone, e.Gender, e.Employed, e.TaxCode,
		e.Birthdate, e.BirthplaceCity, e.BirthplaceProvincia, e.BirthplaceNation, e.BirthplaceZipcode,
		e.LivingplaceAddress, e.LivingplaceCity, e.LivingplaceProvincia, e.LivingplaceNation, e.LivingplaceZipcode,
		e.Documents, e.Qualifications,
	).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to update employee: %w", err)
	}

	return id, nil
}

// DeleteRecord removes an employee permanently.
func (r *EmployeeRepository) DeleteRecord(id string) error {
	result, err := r.db.Exec(`DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
