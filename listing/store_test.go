package listing

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{
	"id", "make", "model", "year", "price", "mileage", "condition", "transmission",
	"fuel_type", "body_type", "exterior_color", "interior_color", "description", "features",
	"image_url", "location", "vin", "created_at", "updated_at",
}

func addRow(rows *sqlmock.Rows, id, make, model string, year int, price float64, features string, vin any, created time.Time) {
	rows.AddRow(id, make, model, year, price, 15000, "used", "Automatic",
		"Gasoline", "Sedan", "Silver", "Black", "Clean title", features,
		"https://img.example/"+id+".jpg", "Austin, TX", vin, created, created)
}

func TestListNewestFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	newer := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	older := newer.Add(-24 * time.Hour)

	rows := sqlmock.NewRows(columns)
	addRow(rows, "a1", "Toyota", "Camry", 2021, 25000, `["Bluetooth","Backup Camera"]`, "4T1B11HK5JU123456", newer)
	addRow(rows, "b2", "Honda", "Civic", 2019, 18000, `[]`, nil, older)

	mock.ExpectQuery("SELECT (.+) FROM listings ORDER BY created_at DESC").
		WillReturnRows(rows)

	listings, err := NewStore(db).ListNewestFirst(context.Background())

	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "a1", listings[0].ID)
	assert.Equal(t, "2021 Toyota Camry", listings[0].Title())
	assert.Equal(t, ConditionUsed, listings[0].Condition)
	assert.Equal(t, []string{"Bluetooth", "Backup Camera"}, listings[0].Features)
	require.NotNil(t, listings[0].VIN)
	assert.Equal(t, "4T1B11HK5JU123456", *listings[0].VIN)
	assert.Equal(t, newer, listings[0].CreatedAt)

	assert.Equal(t, "b2", listings[1].ID)
	assert.Empty(t, listings[1].Features)
	assert.NotNil(t, listings[1].Features)
	assert.Nil(t, listings[1].VIN)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListNewestFirst_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM listings ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows(columns))

	listings, err := NewStore(db).ListNewestFirst(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, listings)
	assert.Empty(t, listings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListNewestFirst_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM listings").
		WillReturnError(errors.New("connection refused"))

	listings, err := NewStore(db).ListNewestFirst(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Nil(t, listings)
}

func TestListNewestFirst_BadFeatures(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(columns)
	addRow(rows, "a1", "Toyota", "Camry", 2021, 25000, `not json`, nil, time.Now())
	mock.ExpectQuery("SELECT (.+) FROM listings").WillReturnRows(rows)

	_, err = NewStore(db).ListNewestFirst(context.Background())
	assert.Error(t, err)
}

func TestGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(columns)
	addRow(rows, "a1", "Tesla", "Model 3", 2023, 42000, `["Autopilot"]`, nil, time.Now())
	mock.ExpectQuery("SELECT (.+) FROM listings WHERE id = \\$1").
		WithArgs("a1").
		WillReturnRows(rows)

	l, err := NewStore(db).Get(context.Background(), "a1")

	require.NoError(t, err)
	assert.Equal(t, "Tesla", l.Make)
	assert.Equal(t, []string{"Autopilot"}, l.Features)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM listings WHERE id = \\$1").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err = NewStore(db).Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	fixed := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(db)
	store.now = func() time.Time { return fixed }

	mock.ExpectExec("INSERT INTO listings").
		WithArgs(
			sqlmock.AnyArg(), "Ford", "F-150", 2022, 38000.0, 12000, "used", "Automatic",
			"Gasoline", "Truck", "", "", "", `["Tow Package"]`,
			"", "", nil, fixed, fixed,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	got, err := store.Insert(context.Background(), Listing{
		Make:         "Ford",
		Model:        "F-150",
		Year:         2022,
		Price:        38000,
		Mileage:      12000,
		Condition:    ConditionUsed,
		Transmission: "Automatic",
		FuelType:     "Gasoline",
		BodyType:     "Truck",
		Features:     []string{"Tow Package"},
	})

	require.NoError(t, err)
	assert.Len(t, got.ID, 36)
	assert.Equal(t, fixed, got.CreatedAt)
	assert.Equal(t, fixed, got.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_Validation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewStore(db)
	base := Listing{Make: "Ford", Model: "Focus", Condition: ConditionNew}

	tests := []struct {
		name   string
		mutate func(l *Listing)
	}{
		{name: "missing make", mutate: func(l *Listing) { l.Make = "" }},
		{name: "missing model", mutate: func(l *Listing) { l.Model = "" }},
		{name: "unknown condition", mutate: func(l *Listing) { l.Condition = "certified" }},
		{name: "negative price", mutate: func(l *Listing) { l.Price = -1 }},
		{name: "negative mileage", mutate: func(l *Listing) { l.Mileage = -5 }},
		{name: "feature with separator", mutate: func(l *Listing) { l.Features = []string{"Heated; Cooled Seats"} }},
		{name: "blank feature", mutate: func(l *Listing) { l.Features = []string{"Sunroof", " "} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := base
			tt.mutate(&l)
			_, err := store.Insert(context.Background(), l)
			assert.Error(t, err)
		})
	}

	_, err = store.Insert(context.Background(), Listing{Make: "A", Model: "B", Condition: "x"})
	assert.ErrorIs(t, err, ErrInvalidCondition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM listings").WillReturnResult(sqlmock.NewResult(0, 7))

	n, err := NewStore(db).DeleteAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
}

func TestDistinct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT DISTINCT body_type FROM listings").
		WillReturnRows(sqlmock.NewRows([]string{"body_type"}).AddRow("SUV").AddRow("Sedan"))

	values, err := NewStore(db).Distinct(context.Background(), "body_type")
	require.NoError(t, err)
	assert.Equal(t, []string{"SUV", "Sedan"}, values)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDistinct_RejectsUnknownColumn(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = NewStore(db).Distinct(context.Background(), "price; DROP TABLE listings")
	assert.Error(t, err)
}

func TestConditionLabel(t *testing.T) {
	assert.Equal(t, "NEW", ConditionNew.Label())
	assert.Equal(t, "USED", ConditionUsed.Label())
	assert.Equal(t, "", Condition("other").Label())
	assert.False(t, Condition("").Valid())
}
