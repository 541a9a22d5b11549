package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/avdeyev/studydesk/internal/domain/model"
	"github.com/avdeyev/studydesk/internal/wizard"
)

// keyboard lays the prompt options out as inline buttons, honoring the
// prompt's column hint and marking toggled subjects.
func keyboard(p *wizard.Prompt) tgbotapi.InlineKeyboardMarkup {
	columns := p.Columns
	if columns <= 0 {
		columns = 2
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	row := make([]tgbotapi.InlineKeyboardButton, 0, columns)
	for _, opt := range p.Options {
		label := opt.Label
		if opt.Selected {
			label = "✅ " + label
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, opt.Value))
		if len(row) == columns {
			rows = append(rows, row)
			row = make([]tgbotapi.InlineKeyboardButton, 0, columns)
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func summary(order *model.Order) string {
	var b strings.Builder
	b.WriteString("📋 *Ваша заявка оформлена!*\n\n")
	fmt.Fprintf(&b, "*Курс:* %s\n", order.Course)
	fmt.Fprintf(&b, "*Семестр:* %s\n", order.Semester)
	fmt.Fprintf(&b, "*Факультет:* %s\n", order.Faculty)
	fmt.Fprintf(&b, "*Предмет(ы):* %s\n", order.Subjects)
	fmt.Fprintf(&b, "*Срок сдачи:* %s\n", order.Deadline.Format(wizard.DeadlineLayout))
	fmt.Fprintf(&b, "*Способ загрузки:* %s\n", order.TaskSource)
	fmt.Fprintf(&b, "*Тип работы:* %s\n\n", order.WorkType)
	b.WriteString("Спасибо за заказ! С вами свяжется наш менеджер для уточнения деталей.")
	return b.String()
}

func ordersList(orders []model.Order) string {
	var b strings.Builder
	b.WriteString("Ваши заказы:\n")
	for _, o := range orders {
		fmt.Fprintf(&b, "• %s, %s — до %s (%s)\n",
			o.Subjects, o.WorkType, o.Deadline.Format(wizard.DeadlineLayout), statusLabel(o.Status))
	}
	return b.String()
}

func statusLabel(status model.OrderStatus) string {
	switch status {
	case model.OrderStatusPending:
		return "в обработке"
	case model.OrderStatusInProgress:
		return "в работе"
	case model.OrderStatusDone:
		return "выполнен"
	}
	return string(status)
}
