package wizard

import "time"

// Step is the wizard position. Steps are strictly ordered; every valid input
// advances to the next one except StepSubjects, which re-renders in place
// until the done sentinel.
type Step int

const (
	StepCourse Step = iota
	StepSemester
	StepFaculty
	StepSubjects
	StepDeadline
	StepTaskSource
	StepWorkType
	StepDone
)

func (s Step) String() string {
	switch s {
	case StepCourse:
		return "COURSE"
	case StepSemester:
		return "SEMESTER"
	case StepFaculty:
		return "FACULTY"
	case StepSubjects:
		return "SUBJECTS"
	case StepDeadline:
		return "DEADLINE"
	case StepTaskSource:
		return "TASK_SOURCE"
	case StepWorkType:
		return "WORK_TYPE"
	case StepDone:
		return "DONE"
	}
	return "UNKNOWN"
}

// Draft accumulates order fields while a session walks the wizard. A draft is
// owned by exactly one session and never leaves the session store until every
// field is populated and valid.
type Draft struct {
	Course      string
	Semester    string
	Faculty     string
	Subjects    []string
	Deadline    time.Time
	DeadlineRaw string
	TaskSource  string
	WorkType    string
	Step        Step
}

// ToggleSubject adds the subject when absent and removes it when present,
// preserving the insertion order of the remaining selection.
func (d *Draft) ToggleSubject(subject string) {
	for i, s := range d.Subjects {
		if s == subject {
			d.Subjects = append(d.Subjects[:i], d.Subjects[i+1:]...)
			return
		}
	}
	d.Subjects = append(d.Subjects, subject)
}

// HasSubject reports whether the subject is currently selected.
func (d *Draft) HasSubject(subject string) bool {
	for _, s := range d.Subjects {
		if s == subject {
			return true
		}
	}
	return false
}

// Complete reports whether every field required for persistence is populated.
func (d *Draft) Complete() bool {
	return d.Course != "" &&
		d.Semester != "" &&
		d.Faculty != "" &&
		len(d.Subjects) > 0 &&
		!d.Deadline.IsZero() &&
		d.TaskSource != "" &&
		d.WorkType != ""
}
