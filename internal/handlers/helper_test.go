package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"finance-tracker/internal/database"
	"finance-tracker/internal/preferences"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/tracker"
	"finance-tracker/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// testEnv wires the handlers against a real in-memory store.
type testEnv struct {
	db      *database.DB
	tracker *tracker.Tracker
	echo    *echo.Echo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := database.SetupTestDB(t)
	t.Cleanup(func() { database.CleanupTestDB(t, db) })

	log := logrus.New()
	log.SetOutput(io.Discard)

	userRepo := repositories.NewUserRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	templateRepo := repositories.NewTemplateRepository(db.DB)

	trk := tracker.New(
		userRepo, categoryRepo, transactionRepo, templateRepo,
		preferences.NewStore(t.TempDir()),
		log,
		tracker.WithLocation(func() *time.Location { return time.UTC }),
	)

	e := echo.New()
	e.Validator = NewRequestValidator(validation.GetValidator().GetValidate())

	RegisterRoutes(e, &Registry{
		Users:        NewUserHandler(trk, userRepo),
		Categories:   NewCategoryHandler(trk, categoryRepo),
		Transactions: NewTransactionHandler(trk, transactionRepo, categoryRepo),
		Templates:    NewTemplateHandler(trk, templateRepo, categoryRepo),
		View:         NewViewHandler(trk, categoryRepo),
		Health:       NewHealthCheckHandler(db),
	})

	return &testEnv{db: db, tracker: trk, echo: e}
}

func (env *testEnv) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)
	return rec
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	decodeBody(t, rec, &resp)
	return resp.Error.Code
}
