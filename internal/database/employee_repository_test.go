package database

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestionale-hr/personnel-backend/internal/models"
)

var employeeTestColumns = []string{
	"id", "name", "surname", "email", "phone", "gender", "employed", "tax_code",
	"birthdate", "birthplace_city", "birthplace_provincia", "birthplace_nation", "birthplace_zipcode",
	"livingplace_address", "livingplace_city", "livingplace_provincia", "livingplace_nation", "livingplace_zipcode",
	"documents", "qualifications",
}

func addEmployeeRow(rows *sqlmock.Rows, id, name, surname string) *sqlmock.Rows {
	return rows.AddRow(
		id, name, surname, "mail@example.com", "+393331234567", "female", "yes", "RSSNNA80A41H501X",
		"1980-01-01", "Roma", "RM", "Italia", "00100",
		"Via Roma 1", "Roma", "RM", "Italia", "00100",
		[]byte(`{"abc_contract.pdf"}`), []byte(`{"tubista":[{"score":"9"}]}`),
	)
}

func TestListRecords(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewEmployeeRepository(&mockDatabase{db: db})

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(employeeTestColumns)
		addEmployeeRow(rows, "e1", "Anna", "Rossi")
		addEmployeeRow(rows, "e2", "Luca", "Bianchi")

		mock.ExpectQuery(`SELECT (.+) FROM employees`).WillReturnRows(rows)

		employees, err := repo.ListRecords()
		require.NoError(t, err)
		require.Len(t, employees, 2)
		assert.Equal(t, "Anna", employees[0].Name)
		assert.Equal(t, models.StringArray{"abc_contract.pdf"}, employees[0].Documents)
		assert.Equal(t, "9", employees[0].Qualifications["tubista"][0]["score"])
		assert.Equal(t, "e2", employees[1].ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty Table", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM employees`).
			WillReturnRows(sqlmock.NewRows(employeeTestColumns))

		employees, err := repo.ListRecords()
		require.NoError(t, err)
		assert.Empty(t, employees)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM employees`).
			WillReturnError(fmt.Errorf("database error"))

		employees, err := repo.ListRecords()
		assert.Error(t, err)
		assert.Nil(t, employees)
		assert.Contains(t, err.Error(), "failed to list employees")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewEmployeeRepository(&mockDatabase{db: db})

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(employeeTestColumns)
		addEmployeeRow(rows, "e1", "Anna", "Rossi")

		mock.ExpectQuery(`SELECT (.+) FROM employees WHERE id`).
			WithArgs("e1").
			WillReturnRows(rows)

		employee, err := repo.GetRecord("e1")
		require.NoError(t, err)
		require.NotNil(t, employee)
		assert.Equal(t, "e1", employee.ID)
		assert.Equal(t, "Rossi", employee.Surname)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM employees WHERE id`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		employee, err := repo.GetRecord("missing")
		assert.Nil(t, employee)
		assert.ErrorIs(t, err, ErrNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM employees WHERE id`).
			WithArgs("e1").
			WillReturnError(fmt.Errorf("database error"))

		employee, err := repo.GetRecord("e1")
		assert.Nil(t, employee)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "failed to get employee")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreateRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewEmployeeRepository(&mockDatabase{db: db})

	employee := &models.Employee{
		Name:     "Anna",
		Surname:  "Rossi",
		Email:    "anna.rossi@example.com",
		Phone:    "+393331234567",
		Gender:   models.GenderFemale,
		Employed: models.EmployedYes,
		TaxCode:  "RSSNNA80A41H501X",
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO employees`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("new-id"))

		id, err := repo.CreateRecord(employee)
		require.NoError(t, err)
		assert.Equal(t, "new-id", id)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO employees`).
			WillReturnError(fmt.Errorf("database error"))

		id, err := repo.CreateRecord(employee)
		assert.Error(t, err)
		assert.Empty(t, id)
		assert.Contains(t, err.Error(), "failed to create employee")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewEmployeeRepository(&mockDatabase{db: db})

	employee := &models.Employee{
		ID:       "e1",
		Name:     "Anna",
		Surname:  "Rossi",
		Email:    "anna.rossi@example.com",
		Phone:    "+393331234567",
		Gender:   models.GenderFemale,
		Employed: models.EmployedYes,
		TaxCode:  "RSSNNA80A41H501X",
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE employees SET`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("e1"))

		id, err := repo.UpdateRecord(employee)
		require.NoError(t, err)
		assert.Equal(t, "e1", id)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE employees SET`).
			WillReturnError(sql.ErrNoRows)

		id, err := repo.UpdateRecord(employee)
		assert.Empty(t, id)
		assert.ErrorIs(t, err, ErrNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE employees SET`).
			WillReturnError(fmt.Errorf("database error"))

		id, err := repo.UpdateRecord(employee)
		assert.Empty(t, id)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to update employee")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewEmployeeRepository(&mockDatabase{db: db})

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM employees WHERE id`).
			WithArgs("e1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteRecord("e1")
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM employees WHERE id`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteRecord("missing")
		assert.ErrorIs(t, err, ErrNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM employees WHERE id`).
			WithArgs("e1").
			WillReturnError(fmt.Errorf("database error"))

		err := repo.DeleteRecord("e1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete employee")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// mockDatabase adapts a sqlmock-backed *sql.DB to the DB interface.
type mockDatabase struct {
	db *sql.DB
}

func (m *mockDatabase) Get(dest interface{}, query string, args ...interface{}) error {
	return fmt.Errorf("Get not implemented in mock")
}

func (m *mockDatabase) Select(dest interface{}, query string, args ...interface{}) error {
	return fmt.Errorf("Select not implemented in mock")
}

func (m *mockDatabase) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return m.db.Query(query, args...)
}

func (m *mockDatabase) QueryRow(query string, args ...interface{}) *sql.Row {
	return m.db.QueryRow(query, args...)
}

func (m *mockDatabase) Exec(query string, args ...interface{}) (sql.Result, error) {
	return m.db.Exec(query, args...)
}

func (m *mockDatabase) Close() error {
	return m.db.Close()
}

func (m *mockDatabase) Ping() error {
	return m.db.Ping()
}
