package wizard

import (
	"errors"
	"time"
)

// DoneSentinel finishes subject selection.
const DoneSentinel = "done"

// DeadlineLayout is the only accepted deadline format (DD.MM.YYYY).
const DeadlineLayout = "02.01.2006"

// ErrNoSession is returned when input arrives for a session that was never
// started or was already cancelled.
var ErrNoSession = errors.New("no active wizard session")

// ValidationError rejects a single input. The session stays on the same step
// and the adapter re-prompts with Message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// OutcomeKind classifies the result of a submitted input.
type OutcomeKind int

const (
	// OutcomeNext advanced to (or re-rendered) a prompt.
	OutcomeNext OutcomeKind = iota
	// OutcomeRetry rejected the input; Err explains why and Prompt re-renders
	// the same step.
	OutcomeRetry
	// OutcomeCompleted finished the wizard; Draft is complete and ready for
	// persistence.
	OutcomeCompleted
	// OutcomeAborted terminated the session without an order (faculty with an
	// empty subject catalog).
	OutcomeAborted
)

// Outcome is the wizard's answer to one input.
type Outcome struct {
	Kind   OutcomeKind
	Prompt *Prompt
	Draft  *Draft
	Err    *ValidationError
}

// Catalog is the static lookup collaborator consumed by the wizard.
type Catalog interface {
	Courses() []string
	Faculties() []string
	WorkTypes() []string
	SemestersFor(course string) []string
	SubjectsFor(faculty string) []string
	ValidCourse(course string) bool
	ValidFaculty(faculty string) bool
	ValidWorkType(workType string) bool
	ValidTaskSource(key string) bool
}

// Wizard is the step-ordered order collection state machine. It is shared by
// both transport adapters; all per-conversation state lives in the session
// store, keyed by an adapter-owned session id.
type Wizard struct {
	sessions SessionStore
	catalog  Catalog
	now      func() time.Time
}

// New constructs the wizard over the given session store and catalog.
func New(sessions SessionStore, catalog Catalog) *Wizard {
	return &Wizard{sessions: sessions, catalog: catalog, now: time.Now}
}

// Start opens (or restarts) a session at the course step and returns the
// first prompt.
func (w *Wizard) Start(sessionID string) *Prompt {
	w.sessions.Put(sessionID, &Draft{Step: StepCourse})
	return w.coursePrompt()
}

// Cancel discards the session's draft. Safe to call for unknown sessions.
func (w *Wizard) Cancel(sessionID string) {
	w.sessions.Delete(sessionID)
}

// Clear removes the session after its completed draft has been persisted.
// Kept separate from Cancel only for call-site clarity: a failed commit must
// NOT clear the session, so the same completion can be retried.
func (w *Wizard) Clear(sessionID string) {
	w.sessions.Delete(sessionID)
}

// Submit feeds one user input into the session's current step.
func (w *Wizard) Submit(sessionID, input string) (Outcome, error) {
	draft, ok := w.sessions.Get(sessionID)
	if !ok {
		return Outcome{}, ErrNoSession
	}

	switch draft.Step {
	case StepCourse:
		return w.submitCourse(draft, input), nil
	case StepSemester:
		return w.submitSemester(draft, input), nil
	case StepFaculty:
		return w.submitFaculty(sessionID, draft, input), nil
	case StepSubjects:
		return w.submitSubjects(draft, input), nil
	case StepDeadline:
		return w.submitDeadline(draft, input), nil
	case StepTaskSource:
		return w.submitTaskSource(draft, input), nil
	case StepWorkType:
		return w.submitWorkType(draft, input), nil
	case StepDone:
		// Re-submission after a failed commit: the draft is intact, offer it
		// for persistence again.
		return Outcome{Kind: OutcomeCompleted, Draft: draft}, nil
	}
	return Outcome{}, ErrNoSession
}

func (w *Wizard) submitCourse(d *Draft, input string) Outcome {
	if !w.catalog.ValidCourse(input) {
		return retry(w.coursePrompt(), "Пожалуйста, выберите курс из списка.")
	}
	d.Course = input
	d.Step = StepSemester
	return next(w.semesterPrompt(d))
}

func (w *Wizard) submitSemester(d *Draft, input string) Outcome {
	if !contains(w.catalog.SemestersFor(d.Course), input) {
		return retry(w.semesterPrompt(d), "Пожалуйста, выберите семестр из списка.")
	}
	d.Semester = input
	d.Step = StepFaculty
	return next(w.facultyPrompt())
}

func (w *Wizard) submitFaculty(sessionID string, d *Draft, input string) Outcome {
	if !w.catalog.ValidFaculty(input) {
		return retry(w.facultyPrompt(), "Пожалуйста, выберите факультет из списка.")
	}
	if len(w.catalog.SubjectsFor(input)) == 0 {
		w.sessions.Delete(sessionID)
		return Outcome{
			Kind:   OutcomeAborted,
			Prompt: &Prompt{Text: "Извините, для вашего факультета пока нет доступных предметов."},
		}
	}
	d.Faculty = input
	d.Subjects = nil
	d.Step = StepSubjects
	return next(w.subjectsPrompt(d))
}

func (w *Wizard) submitSubjects(d *Draft, input string) Outcome {
	if input == DoneSentinel {
		if len(d.Subjects) == 0 {
			return retry(w.subjectsPrompt(d), "Пожалуйста, выберите хотя бы один предмет.")
		}
		d.Step = StepDeadline
		return next(w.deadlinePrompt())
	}
	if !contains(w.catalog.SubjectsFor(d.Faculty), input) {
		return retry(w.subjectsPrompt(d), "Такого предмета нет в списке.")
	}
	d.ToggleSubject(input)
	return next(w.subjectsPrompt(d))
}

func (w *Wizard) submitDeadline(d *Draft, input string) Outcome {
	now := w.now()
	deadline, err := time.ParseInLocation(DeadlineLayout, input, now.Location())
	if err != nil || deadline.Format(DeadlineLayout) != input {
		return retry(w.deadlinePrompt(),
			"Некорректный формат даты. Пожалуйста, введите дату в формате ДД.ММ.ГГГГ:")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if deadline.Before(today) {
		return retry(w.deadlinePrompt(),
			"Дата не может быть в прошлом. Пожалуйста, введите корректную дату:")
	}
	d.Deadline = deadline
	d.DeadlineRaw = input
	d.Step = StepTaskSource
	return next(w.taskSourcePrompt())
}

func (w *Wizard) submitTaskSource(d *Draft, input string) Outcome {
	if !w.catalog.ValidTaskSource(input) {
		return retry(w.taskSourcePrompt(), "Пожалуйста, выберите вариант из списка.")
	}
	d.TaskSource = input
	d.Step = StepWorkType
	return next(w.workTypePrompt())
}

func (w *Wizard) submitWorkType(d *Draft, input string) Outcome {
	if !w.catalog.ValidWorkType(input) {
		return retry(w.workTypePrompt(), "Пожалуйста, выберите тип работы из списка.")
	}
	d.WorkType = input
	d.Step = StepDone
	return Outcome{Kind: OutcomeCompleted, Draft: d}
}

func next(p *Prompt) Outcome {
	return Outcome{Kind: OutcomeNext, Prompt: p}
}

func retry(p *Prompt, message string) Outcome {
	return Outcome{Kind: OutcomeRetry, Prompt: p, Err: &ValidationError{Message: message}}
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
