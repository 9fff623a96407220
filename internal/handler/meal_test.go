package handler_test

import (
	"context"
	"net/http"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/fitness-tracker/internal/nutrition"
	"github.com/iliyamo/fitness-tracker/internal/utils"
)

// fakeFacts satisfies nutrition.Lookuper with canned results.
type fakeFacts struct {
	facts nutrition.Facts
	err   error
}

func (f *fakeFacts) Lookup(_ context.Context, _ string) (nutrition.Facts, error) {
	if f.err != nil {
		return nutrition.Facts{}, f.err
	}
	return f.facts, nil
}

func authToken(t *testing.T) string {
	t.Helper()
	tok, err := utils.NewAccessToken(testSecret, 1, "a@x.com", 15)
	require.NoError(t, err)
	return tok.Token
}

func TestCreateMealWithLookup(t *testing.T) {
	lookup := &fakeFacts{facts: nutrition.Facts{
		Name: "Banana", Calories: 89, Protein: 1.1, Carbs: 22.8, Fats: 0.3,
	}}
	e, mock := newServer(t, lookup)
	token := authToken(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO meals")).
		WithArgs(uint64(1), "2024-02-10", "Banana", 89.0, 1.1, 22.8, 0.3).
		WillReturnResult(sqlmock.NewResult(5, 1))

	rec := doJSON(e, http.MethodPost, "/v1/meals", token,
		`{"date":"2024-02-10","name":"banana","lookup":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMealLookupNotFoundCreatesNoRecord(t *testing.T) {
	lookup := &fakeFacts{err: nutrition.ErrNotFound}
	e, mock := newServer(t, lookup)
	token := authToken(t)

	rec := doJSON(e, http.MethodPost, "/v1/meals", token,
		`{"date":"2024-02-10","name":"banana","lookup":true}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	// no INSERT was expected and none must have happened
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMealLookupUnavailableCreatesNoRecord(t *testing.T) {
	lookup := &fakeFacts{err: nutrition.ErrLookupUnavailable}
	e, mock := newServer(t, lookup)
	token := authToken(t)

	rec := doJSON(e, http.MethodPost, "/v1/meals", token,
		`{"date":"2024-02-10","name":"banana","lookup":true}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMealManualMacros(t *testing.T) {
	e, mock := newServer(t, nil)
	token := authToken(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO meals")).
		WithArgs(uint64(1), "2024-02-10", "Oatmeal", 150.0, 5.0, 27.0, 2.5).
		WillReturnResult(sqlmock.NewResult(6, 1))

	rec := doJSON(e, http.MethodPost, "/v1/meals", token,
		`{"date":"2024-02-10","name":"Oatmeal","calories":150,"protein":5,"carbs":27,"fats":2.5}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNutritionSearchPassThrough(t *testing.T) {
	lookup := &fakeFacts{facts: nutrition.Facts{Name: "Banana", Calories: 89}}
	e, mock := newServer(t, lookup)
	token := authToken(t)

	rec := doJSON(e, http.MethodGet, "/v1/nutrition/search?q=banana", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Banana")
	// searching never writes anything
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNutritionSearchNotFound(t *testing.T) {
	lookup := &fakeFacts{err: nutrition.ErrNotFound}
	e, _ := newServer(t, lookup)
	token := authToken(t)

	rec := doJSON(e, http.MethodGet, "/v1/nutrition/search?q=banana", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
