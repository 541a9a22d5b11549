package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/avdeyev/studydesk/internal/catalog"
)

func newCatalogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handler := NewCatalogHandler(catalog.New())
	engine.GET("/api/catalog/courses", handler.Courses)
	engine.GET("/api/catalog/faculties", handler.Faculties)
	engine.GET("/api/catalog/work-types", handler.WorkTypes)
	engine.GET("/api/catalog/semesters", handler.Semesters)
	engine.GET("/api/catalog/subjects", handler.Subjects)
	return engine
}

func getList(t *testing.T, engine *gin.Engine, path string) []string {
	t.Helper()
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s: status = %d", path, w.Code)
	}
	var list []string
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("GET %s: unmarshal: %v", path, err)
	}
	return list
}

func TestCatalogEndpoints(t *testing.T) {
	engine := newCatalogRouter()

	if got := getList(t, engine, "/api/catalog/courses"); len(got) != 4 {
		t.Fatalf("courses = %v", got)
	}
	if got := getList(t, engine, "/api/catalog/faculties"); len(got) != 3 {
		t.Fatalf("faculties = %v", got)
	}
	if got := getList(t, engine, "/api/catalog/work-types"); len(got) != 4 {
		t.Fatalf("work types = %v", got)
	}
}

func TestSemestersEndpoint(t *testing.T) {
	engine := newCatalogRouter()

	want := []string{"3 семестр", "4 семестр"}
	if got := getList(t, engine, "/api/catalog/semesters?course=2+курс"); !reflect.DeepEqual(got, want) {
		t.Fatalf("semesters = %v, want %v", got, want)
	}
	if got := getList(t, engine, "/api/catalog/semesters?course=unknown"); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}

func TestSubjectsEndpoint(t *testing.T) {
	engine := newCatalogRouter()

	want := []string{"Предмет 1", "Предмет 2", "Предмет 3"}
	if got := getList(t, engine, "/api/catalog/subjects?faculty=Факультет+1"); !reflect.DeepEqual(got, want) {
		t.Fatalf("subjects = %v, want %v", got, want)
	}
	if got := getList(t, engine, "/api/catalog/subjects"); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}
