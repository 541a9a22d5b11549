package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Task source keys accepted by the wizard. The persisted order carries the
// display label, not the key.
const (
	TaskSourceUpload = "upload"
	TaskSourceMoodle = "moodle"
)

var (
	courses   = []string{"1 курс", "2 курс", "3 курс", "4 курс"}
	faculties = []string{"Факультет 1", "Факультет 2", "Факультет 3"}

	subjectsByFaculty = map[string][]string{
		"Факультет 1": {"Предмет 1", "Предмет 2", "Предмет 3"},
		"Факультет 2": {"Предмет 4", "Предмет 5", "Предмет 6"},
		"Факультет 3": {"Предмет 7", "Предмет 8", "Предмет 9"},
	}

	workTypes = []string{
		"Промежуточная работа",
		"Практическая работа",
		"Проектная работа",
		"Задание за весь семестр",
	}

	taskSourceLabels = map[string]string{
		TaskSourceUpload: "загрузка файла",
		TaskSourceMoodle: "вход в Moodle",
	}
)

// Catalog is the static reference data source: faculties, courses, subjects,
// work types and the course-to-semester derivation. All lookups are pure.
type Catalog struct{}

// New returns the catalog backed by the built-in data set.
func New() *Catalog {
	return &Catalog{}
}

// Courses returns the fixed course list.
func (c *Catalog) Courses() []string {
	return append([]string(nil), courses...)
}

// Faculties returns the fixed faculty list.
func (c *Catalog) Faculties() []string {
	return append([]string(nil), faculties...)
}

// WorkTypes returns the fixed work type list.
func (c *Catalog) WorkTypes() []string {
	return append([]string(nil), workTypes...)
}

// SemestersFor derives the two semesters covered by a course: for course
// ordinal n these are 2n-1 and 2n. Returns nil for an unrecognized course.
func (c *Catalog) SemestersFor(course string) []string {
	if !contains(courses, course) {
		return nil
	}
	fields := strings.Fields(course)
	if len(fields) == 0 {
		return nil
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n <= 0 {
		return nil
	}
	return []string{
		fmt.Sprintf("%d семестр", 2*n-1),
		fmt.Sprintf("%d семестр", 2*n),
	}
}

// SubjectsFor returns the subject list of a faculty, nil when the faculty is
// unknown or has no subjects.
func (c *Catalog) SubjectsFor(faculty string) []string {
	subjects, ok := subjectsByFaculty[faculty]
	if !ok {
		return nil
	}
	return append([]string(nil), subjects...)
}

// ValidCourse reports whether course is in the fixed course list.
func (c *Catalog) ValidCourse(course string) bool {
	return contains(courses, course)
}

// ValidFaculty reports whether faculty is in the fixed faculty list.
func (c *Catalog) ValidFaculty(faculty string) bool {
	return contains(faculties, faculty)
}

// ValidWorkType reports whether workType is in the fixed work type list.
func (c *Catalog) ValidWorkType(workType string) bool {
	return contains(workTypes, workType)
}

// ValidTaskSource reports whether key is a known task source.
func (c *Catalog) ValidTaskSource(key string) bool {
	_, ok := taskSourceLabels[key]
	return ok
}

// TaskSourceLabel maps a task source key to its display label, empty for an
// unknown key.
func (c *Catalog) TaskSourceLabel(key string) string {
	return taskSourceLabels[key]
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
