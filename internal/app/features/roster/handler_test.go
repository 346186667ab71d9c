package roster_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"
	"time"

	uierrors "github.com/dalemusser/mentorhub/internal/app/features/errors"
	"github.com/dalemusser/mentorhub/internal/app/features/roster"
	mentorstore "github.com/dalemusser/mentorhub/internal/app/store/mentors"
	studentstore "github.com/dalemusser/mentorhub/internal/app/store/students"
	"github.com/dalemusser/mentorhub/internal/app/system/auth"
	"github.com/dalemusser/mentorhub/internal/app/system/catalog"
	"github.com/dalemusser/mentorhub/internal/app/system/csvutil"
	"github.com/dalemusser/mentorhub/internal/app/system/ratelimit"
	"github.com/dalemusser/mentorhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminKey = "let-me-in"

func sessions(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager("test-session-key-must-be-32-chars-long", "mh", "", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("session manager: %v", err)
	}
	return sm
}

func gate(t *testing.T) *auth.AdminGate {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(adminKey), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	g, err := auth.NewAdminGate(string(hash), ratelimit.New(5, time.Minute), nil, zap.NewNop())
	if err != nil {
		t.Fatalf("gate: %v", err)
	}
	return g
}

func newHandler(t *testing.T, db *mongo.Database) *roster.Handler {
	t.Helper()
	logger := zap.NewNop()
	return roster.NewHandler(db, catalog.Default(), sessions(t), nil, nil, uierrors.NewErrorLogger(logger), logger)
}

func serve(h *roster.Handler, g *auth.AdminGate, req *http.Request) *testutil.ResponseRecorder {
	rec := testutil.NewRecorder()
	roster.Routes(h, g).ServeHTTP(rec, req)
	return rec
}

func csvRequest(target, body string) *http.Request {
	req := testutil.NewBodyRequest(http.MethodPost, target, "text/csv", body)
	req.Header.Set(auth.AdminKeyHeader, adminKey)
	return req
}

func TestUploadStudents_Sample(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHandler(t, db)
	g := gate(t)

	rec := serve(h, g, csvRequest("/students", csvutil.SampleStudentsCSV))
	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		Kind  string `json:"kind"`
		Count int    `json:"count"`
	}
	rec.DecodeJSON(t, &resp)
	if resp.Kind != "students" || resp.Count != 2 {
		t.Errorf("got %+v, want students/2", resp)
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	got, err := studentstore.New(db).List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "STU001" || got[1].Name != "Jane Smith" {
		t.Errorf("stored roster: %+v", got)
	}
}

func TestUploadStudents_Multipart(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHandler(t, db)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "students.csv")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	_, _ = fw.Write([]byte("name\nAsha\nRavi\nMeera\n"))
	_ = mw.Close()

	req := testutil.NewBodyRequest(http.MethodPost, "/students", mw.FormDataContentType(), buf.String())
	req.Header.Set(auth.AdminKeyHeader, adminKey)
	rec := serve(h, gate(t), req)
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"count":3`)
}

func TestUploadStudents_RowErrorsKeepExistingRoster(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHandler(t, db)
	g := gate(t)

	serve(h, g, csvRequest("/students", csvutil.SampleStudentsCSV)).AssertStatus(t, http.StatusOK)

	bad := "id,name,email\nSTU001,A,a@x.org\nSTU001,B,b@x.org\nSTU003,C,not-an-email\n"
	rec := serve(h, g, csvRequest("/students", bad))
	rec.AssertStatus(t, http.StatusUnprocessableEntity)

	var resp struct {
		Error   string              `json:"error"`
		Details []csvutil.RowError `json:"details"`
	}
	rec.DecodeJSON(t, &resp)
	if len(resp.Details) != 2 {
		t.Fatalf("details: got %d row errors, want 2 (%s)", len(resp.Details), resp.Error)
	}
	if !strings.Contains(resp.Error, "2 row(s)") {
		t.Errorf("error summary: %q", resp.Error)
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	n, _ := studentstore.New(db).Count(ctx)
	if n != 2 {
		t.Errorf("previous roster should survive a rejected upload; count=%d", n)
	}
}

func TestUploadStudents_EmptyAndHeaderless(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHandler(t, db)
	g := gate(t)

	serve(h, g, csvRequest("/students", "id,name\n\n")).AssertStatus(t, http.StatusUnprocessableEntity)
	serve(h, g, csvRequest("/students", "foo,bar\n1,2\n")).AssertStatus(t, http.StatusUnprocessableEntity)
}

func TestUploadMentors_Sample(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHandler(t, db)

	rec := serve(h, gate(t), csvRequest("/mentors", csvutil.SampleMentorsCSV))
	rec.AssertStatus(t, http.StatusOK)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	got, err := mentorstore.New(db).List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d mentors, want 2", len(got))
	}
	if len(got[1].Availability) != 2 || got[1].Availability[1] != "2025-10-18" {
		t.Errorf("MEN002 availability: %v", got[1].Availability)
	}
	if len(got[1].AvailableSlots) != 1 || got[1].AvailableSlots[0] != "afternoon" {
		t.Errorf("MEN002 slots: %v", got[1].AvailableSlots)
	}
}

func TestUploadMentors_BadSlot(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHandler(t, db)

	body := "id,name,availability,slots\nMEN001,Dr. K,2025-10-16,morning\n"
	rec := serve(h, gate(t), csvRequest("/mentors", body))
	rec.AssertStatus(t, http.StatusUnprocessableEntity)
	rec.AssertContains(t, "morning")
}

func TestUpload_RequiresAdminKey(t *testing.T) {
	h := &roster.Handler{Log: zap.NewNop()}

	req := testutil.NewBodyRequest(http.MethodPost, "/students", "text/csv", csvutil.SampleStudentsCSV)
	serve(h, gate(t), req).AssertStatus(t, http.StatusUnauthorized)
}

func TestListStudents_SPOCFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHandler(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := h.Students.ReplaceAll(ctx, testutil.Students(5, "A", "B")); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	var all struct {
		Count int `json:"count"`
	}
	rec := serve(h, gate(t), testutil.NewRequest(http.MethodGet, "/students"))
	rec.AssertStatus(t, http.StatusOK)
	rec.DecodeJSON(t, &all)
	if all.Count != 5 {
		t.Errorf("unfiltered count: got %d, want 5", all.Count)
	}

	var onlyB struct {
		SPOC     string `json:"spoc"`
		Count    int    `json:"count"`
		Students []struct {
			ID string `json:"id"`
		} `json:"students"`
	}
	rec = serve(h, gate(t), testutil.NewRequest(http.MethodGet, "/students?spoc=B"))
	rec.AssertStatus(t, http.StatusOK)
	rec.DecodeJSON(t, &onlyB)
	if onlyB.SPOC != "B" || onlyB.Count != 2 || onlyB.Students[0].ID != "STU002" {
		t.Errorf("filtered: got %+v", onlyB)
	}
}

func TestServeSample(t *testing.T) {
	h := &roster.Handler{Sessions: sessions(t), Catalog: catalog.Default(), Log: zap.NewNop()}
	g := gate(t)

	rec := serve(h, g, testutil.NewRequest(http.MethodGet, "/samples/mentors.csv"))
	rec.AssertStatus(t, http.StatusOK)
	if rec.Body.String() != csvutil.SampleMentorsCSV {
		t.Errorf("sample body mismatch: %q", rec.Body.String())
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "sample_mentors.csv") {
		t.Errorf("Content-Disposition: %q", cd)
	}

	serve(h, g, testutil.NewRequest(http.MethodGet, "/samples/coaches.csv")).AssertStatus(t, http.StatusNotFound)
}

func TestListSPOCs(t *testing.T) {
	h := &roster.Handler{Sessions: sessions(t), Catalog: catalog.Default(), Log: zap.NewNop()}

	var resp struct {
		SPOCs []string `json:"spocs"`
	}
	rec := serve(h, gate(t), testutil.NewRequest(http.MethodGet, "/spocs"))
	rec.AssertStatus(t, http.StatusOK)
	rec.DecodeJSON(t, &resp)
	if len(resp.SPOCs) != 15 {
		t.Errorf("got %d SPOCs, want 15", len(resp.SPOCs))
	}
}
