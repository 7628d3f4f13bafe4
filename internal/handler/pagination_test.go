package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContext(t *testing.T, rawQuery string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return c, w
}

func TestParsePagination_Defaults(t *testing.T) {
	c, _ := testContext(t, "")
	limit, skip, ok := parsePagination(c)
	if !ok {
		t.Fatal("defaults must parse")
	}
	if limit != 20 || skip != 0 {
		t.Fatalf("defaults = (%d, %d), want (20, 0)", limit, skip)
	}
}

func TestParsePagination_Explicit(t *testing.T) {
	c, _ := testContext(t, "limit=5&skip=10")
	limit, skip, ok := parsePagination(c)
	if !ok {
		t.Fatal("explicit values must parse")
	}
	if limit != 5 || skip != 10 {
		t.Fatalf("got (%d, %d), want (5, 10)", limit, skip)
	}
}

func TestParsePagination_RejectsInvalid(t *testing.T) {
	cases := []string{
		"limit=0",
		"limit=-1",
		"limit=abc",
		"skip=-5",
		"skip=xyz",
	}
	for _, query := range cases {
		c, w := testContext(t, query)
		if _, _, ok := parsePagination(c); ok {
			t.Fatalf("%q accepted, want rejection", query)
		}
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%q: status %d, want 400", query, w.Code)
		}
	}
}

func TestParseIDList(t *testing.T) {
	c, _ := testContext(t, "course_ids=a&course_ids=b,c&course_ids=%20d%20")
	ids := parseIDList(c, "course_ids")
	want := []string{"a", "b", "c", "d"}
	if len(ids) != len(want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("got %v, want %v", ids, want)
		}
	}
}

func TestParseIDList_Empty(t *testing.T) {
	c, _ := testContext(t, "")
	if ids := parseIDList(c, "course_ids"); ids != nil {
		t.Fatalf("expected nil for absent param, got %v", ids)
	}
}
