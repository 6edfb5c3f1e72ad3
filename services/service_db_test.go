package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/estateregistry-api/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_DuplicateLoginID(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE login_id =`).
		WithArgs("taken", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "login_id", "password"}).
			AddRow("8f1c2d3e-0000-0000-0000-000000000001", "First Builder", "taken", "$2a$10$hash"))

	_, err := Register(dto.RegisterRequest{
		Name:     "Second Builder",
		LoginID:  "taken",
		Password: "hunter42",
	})
	require.ErrorIs(t, err, ErrConflict)

	// Only the lookup may run: any INSERT here would be an unexpected
	// call and fail the expectation check.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProject_StartsEmpty(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery(`INSERT INTO "projects"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).
			AddRow("9a0b1c2d-0000-0000-0000-000000000042"))

	svc := NewProjectService()
	project, err := svc.CreateProject("3e4f5a6b-0000-0000-0000-000000000007")
	require.NoError(t, err)

	assert.Equal(t, "9a0b1c2d-0000-0000-0000-000000000042", project.ID)
	assert.Equal(t, "3e4f5a6b-0000-0000-0000-000000000007", project.UserID)

	// Every section starts absent; completion is built up by later
	// partial saves.
	assert.Nil(t, project.BasicInfo)
	assert.Nil(t, project.PropertyInfo)
	assert.Empty(t, project.Amenities)
	assert.Nil(t, project.Gallery)
	assert.Empty(t, project.Documents)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveBasicInfo_DuplicateName(t *testing.T) {
	mock := newMockDB(t)

	projectID := "9a0b1c2d-0000-0000-0000-000000000042"
	ownerID := "3e4f5a6b-0000-0000-0000-000000000007"

	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).
			AddRow(projectID, ownerID))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "projects"`).
		WithArgs(ownerID, projectID, "Green Meadows").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	svc := NewProjectService()
	err := svc.SaveBasicInfo(projectID, dto.BasicInfoRequest{
		Name:           "Green Meadows",
		State:          "Maharashtra",
		Address:        "Plot 14, MIDC Road",
		CompletionDate: "2027-06-30",
		ProjectType:    "residential",
		City:           "Pune",
		LandStatus:     "clear",
		ReraNumber:     "P52100012345",
	})
	require.ErrorIs(t, err, ErrDuplicateName)

	// The section write must not happen when the name is taken.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveAmenities_ProjectVanished(t *testing.T) {
	mock := newMockDB(t)

	projectID := "9a0b1c2d-0000-0000-0000-000000000042"

	// The existence check still sees the row, then it is gone by the
	// time the update runs.
	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).
			AddRow(projectID, "3e4f5a6b-0000-0000-0000-000000000007"))
	mock.ExpectExec(`UPDATE "projects" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	svc := NewProjectService()
	err := svc.SaveAmenities(projectID, []string{"clubHouse", "childrenPlayArea"})
	require.ErrorIs(t, err, ErrProjectNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
