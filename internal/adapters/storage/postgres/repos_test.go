package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelter-admin/internal/domain/applications"
	"shelter-admin/internal/domain/events"
	"shelter-admin/internal/domain/projection"
	"shelter-admin/internal/domain/shelters"
	"shelter-admin/internal/platform/apperr"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAnimalsRepo_ListAvailable(t *testing.T) {
	db, pool := newMockDB(t)
	repo := NewAnimalsRepo(db)

	pool.mock.ExpectQuery(`SELECT a\.animalID, a\.animalName, a\.breed, a\.branchID FROM AnimalAdmits a WHERE NOT EXISTS \(.+ap\.applicationStatus = \$1\)`).
		WithArgs("Accepted").
		WillReturnRows(pgxmock.NewRows([]string{"animalid", "animalname", "breed", "branchid"}).
			AddRow(int64(1), "Rex", "Labrador", int64(10)).
			AddRow(int64(2), "Mia", "Siamese", int64(20)))

	got, err := repo.ListAvailable(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Rex", got[0].Name)
	assert.Equal(t, int64(20), got[1].BranchID)
	assert.Equal(t, 1, pool.released)
	assert.NoError(t, pool.mock.ExpectationsWereMet())
}

func TestApplicationsRepo_Submit(t *testing.T) {
	db, pool := newMockDB(t)
	repo := NewApplicationsRepo(db)

	pool.mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO Applies (branchID,adopterID,animalID,applicationStatus,applicationDate) VALUES ($1,$2,$3,$4,$5)")).
		WithArgs(int64(1), int64(2), int64(3), "Pending", day("2024-01-15")).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Submit(context.Background(), applications.Application{
		Key:    applications.Key{BranchID: 1, AdopterID: 2, AnimalID: 3},
		Status: applications.StatusPending,
		Date:   day("2024-01-15"),
	})
	require.NoError(t, err)
	assert.NoError(t, pool.mock.ExpectationsWereMet())
}

func TestApplicationsRepo_SubmitDuplicateIsConflict(t *testing.T) {
	db, pool := newMockDB(t)
	repo := NewApplicationsRepo(db)

	pool.mock.ExpectExec("INSERT INTO Applies").
		WithArgs(int64(1), int64(2), int64(3), "Pending", day("2024-01-15")).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, Message: "duplicate key value violates unique constraint"})

	err := repo.Submit(context.Background(), applications.Application{
		Key:    applications.Key{BranchID: 1, AdopterID: 2, AnimalID: 3},
		Status: applications.StatusPending,
		Date:   day("2024-01-15"),
	})
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.NotContains(t, apperr.PublicMessage(err), "duplicate key")
}

func TestApplicationsRepo_WithdrawMissingIsNotFound(t *testing.T) {
	db, pool := newMockDB(t)
	repo := NewApplicationsRepo(db)

	pool.mock.ExpectExec(regexp.QuoteMeta(
		"DELETE FROM Applies WHERE (branchID = $1 AND adopterID = $2 AND animalID = $3)")).
		WithArgs(int64(9), int64(9), int64(9)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Withdraw(context.Background(), applications.Key{BranchID: 9, AdopterID: 9, AnimalID: 9})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, 1, pool.released)
}

func TestApplicationsRepo_List(t *testing.T) {
	db, pool := newMockDB(t)
	repo := NewApplicationsRepo(db)

	pool.mock.ExpectQuery("SELECT branchID, adopterID, animalID, applicationStatus, applicationDate FROM Applies").
		WillReturnRows(pgxmock.NewRows([]string{"branchid", "adopterid", "animalid", "applicationstatus", "applicationdate"}).
			AddRow(int64(1), int64(2), int64(3), "Pending", day("2024-01-15")))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, applications.Key{BranchID: 1, AdopterID: 2, AnimalID: 3}, got[0].Key)
	assert.Equal(t, applications.StatusPending, got[0].Status)
}

func TestSheltersRepo_UpdateContact(t *testing.T) {
	db, pool := newMockDB(t)
	repo := NewSheltersRepo(db)

	pool.mock.ExpectExec(regexp.QuoteMeta("UPDATE Shelter SET phoneNum = $1, shelterAddress = $2 WHERE branchID = $3")).
		WithArgs("6045551234", "1 Main St, Vancouver", int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateContact(context.Background(), shelters.Shelter{BranchID: 1, PhoneNum: "6045551234", Address: "1 Main St, Vancouver"})
	require.NoError(t, err)
	assert.NoError(t, pool.mock.ExpectationsWereMet())
}

func TestEventsRepo_FilterBindsEveryValue(t *testing.T) {
	db, pool := newMockDB(t)
	repo := NewEventsRepo(db)

	pool.mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT eventID, title, eventLocation, eventDate, eventType FROM Events "+
			"WHERE eventLocation = $1 OR eventDate = to_date($2, 'YYYY-MM-DD') AND title = $3 "+
			"ORDER BY eventDate, eventID")).
		WithArgs("Vancouver", "2024-05-01", "Gala").
		WillReturnRows(pgxmock.NewRows([]string{"eventid", "title", "eventlocation", "eventdate", "eventtype"}).
			AddRow(int64(7), "Gala", "Vancouver", day("2024-05-01"), "Fundraiser"))

	got, err := repo.Filter(context.Background(), []events.Condition{
		{Attribute: events.AttrLocation, Value: "Vancouver", Connective: events.And},
		{Attribute: events.AttrDate, Value: "2024-05-01", Connective: events.Or},
		{Attribute: events.AttrTitle, Value: "Gala", Connective: events.And},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Fundraiser", got[0].Type)
	assert.NoError(t, pool.mock.ExpectationsWereMet())
}

func TestProjectionRepo_Project(t *testing.T) {
	db, pool := newMockDB(t)
	repo := NewProjectionRepo(db)

	pool.mock.ExpectQuery(regexp.QuoteMeta("SELECT email, donorName FROM Donor")).
		WillReturnRows(pgxmock.NewRows([]string{"email", "donorname"}).
			AddRow("a@x.test", "Ann").
			AddRow("b@x.test", "Bob"))

	got, err := repo.Project(context.Background(), projection.Query{Table: "Donor", Columns: []string{"email", "donorName"}})
	require.NoError(t, err)
	assert.Equal(t, [][]any{{"a@x.test", "Ann"}, {"b@x.test", "Bob"}}, got)
	assert.Equal(t, 1, pool.released)
}

func TestDemoTableRepo_InitiateToleratesMissingTable(t *testing.T) {
	db, pool := newMockDB(t)
	repo := NewDemoTableRepo(db)

	pool.mock.ExpectExec(dropDemoTable).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UndefinedTable})
	pool.mock.ExpectExec(regexp.QuoteMeta(createDemoTable)).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	require.NoError(t, repo.Initiate(context.Background()))
	assert.Equal(t, 1, pool.acquired)
	assert.Equal(t, 1, pool.released)
	assert.NoError(t, pool.mock.ExpectationsWereMet())
}

func TestDemoTableRepo_InitiatePropagatesOtherDropErrors(t *testing.T) {
	db, pool := newMockDB(t)
	repo := NewDemoTableRepo(db)

	pool.mock.ExpectExec(dropDemoTable).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.InsufficientPrivilege})

	err := repo.Initiate(context.Background())
	require.Error(t, err)
	assert.NoError(t, pool.mock.ExpectationsWereMet())
}

func TestDemoTableRepo_Count(t *testing.T) {
	db, pool := newMockDB(t)
	repo := NewDemoTableRepo(db)

	pool.mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM DEMOTABLE")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestDemoTableRepo_UpdateNameMissing(t *testing.T) {
	db, pool := newMockDB(t)
	repo := NewDemoTableRepo(db)

	pool.mock.ExpectExec(regexp.QuoteMeta("UPDATE DEMOTABLE SET name = $1 WHERE name = $2")).
		WithArgs("max", "rex").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateName(context.Background(), "rex", "max")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
