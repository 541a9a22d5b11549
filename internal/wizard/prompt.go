package wizard

import (
	"fmt"
	"strings"
)

// Option is a selectable prompt value. Label is what the adapter shows, Value
// is what it must submit back. Selected marks toggled subjects.
type Option struct {
	Label    string
	Value    string
	Selected bool
}

// Prompt tells the adapter what to present next. A prompt without options
// expects free-text input. Columns is a layout hint for button transports.
type Prompt struct {
	Text    string
	Options []Option
	Columns int
}

func (w *Wizard) coursePrompt() *Prompt {
	return &Prompt{
		Text:    "Добро пожаловать в сервис заказа учебных работ!\n\nПожалуйста, выберите ваш курс:",
		Options: plainOptions(w.catalog.Courses()),
		Columns: 2,
	}
}

func (w *Wizard) semesterPrompt(d *Draft) *Prompt {
	return &Prompt{
		Text:    fmt.Sprintf("Вы выбрали %s. Теперь выберите семестр:", d.Course),
		Options: plainOptions(w.catalog.SemestersFor(d.Course)),
		Columns: 2,
	}
}

func (w *Wizard) facultyPrompt() *Prompt {
	return &Prompt{
		Text:    "Отлично! Теперь выберите ваш факультет:",
		Options: plainOptions(w.catalog.Faculties()),
		Columns: 2,
	}
}

func (w *Wizard) subjectsPrompt(d *Draft) *Prompt {
	var text string
	if len(d.Subjects) == 0 {
		text = "Выберите предмет(ы).\n" +
			"• Нажмите на предмет, чтобы выбрать/отменить выбор.\n" +
			"• Когда закончите, нажмите «Готово»."
	} else {
		var b strings.Builder
		b.WriteString("Выбранные предметы:\n")
		for _, s := range d.Subjects {
			fmt.Fprintf(&b, "• %s\n", s)
		}
		b.WriteString("\nВыберите предмет(ы) или нажмите «Готово»:")
		text = b.String()
	}

	subjects := w.catalog.SubjectsFor(d.Faculty)
	options := make([]Option, 0, len(subjects)+1)
	for _, s := range subjects {
		options = append(options, Option{Label: s, Value: s, Selected: d.HasSubject(s)})
	}
	options = append(options, Option{Label: "Готово", Value: DoneSentinel})

	return &Prompt{Text: text, Options: options, Columns: 1}
}

func (w *Wizard) deadlinePrompt() *Prompt {
	return &Prompt{Text: "Укажите срок сдачи задания (в формате ДД.ММ.ГГГГ):"}
}

func (w *Wizard) taskSourcePrompt() *Prompt {
	return &Prompt{
		Text: "Как вы хотите предоставить задание?",
		Options: []Option{
			{Label: "Загрузить файл с заданием", Value: "upload"},
			{Label: "Войти в Moodle", Value: "moodle"},
		},
		Columns: 1,
	}
}

func (w *Wizard) workTypePrompt() *Prompt {
	return &Prompt{
		Text:    "Выберите тип работы:",
		Options: plainOptions(w.catalog.WorkTypes()),
		Columns: 1,
	}
}

func plainOptions(values []string) []Option {
	options := make([]Option, 0, len(values))
	for _, v := range values {
		options = append(options, Option{Label: v, Value: v})
	}
	return options
}
