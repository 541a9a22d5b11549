package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/avdeyev/studydesk/internal/domain/model"
	"github.com/avdeyev/studydesk/internal/wizard"
)

const commitFailedText = "Не удалось сохранить заказ. Пожалуйста, попробуйте ещё раз."

// Facade exposes the subset of application functionality required by the bot.
type Facade interface {
	ResolveTelegramUser(ctx context.Context, chatID int64) (*model.User, error)
	PlaceOrder(ctx context.Context, userID int64, draft *wizard.Draft) (*model.Order, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
}

// telegramAPI is the slice of tgbotapi.BotAPI the bot depends on; tests plug
// in a fake.
type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Bot is the chat transport adapter: it long-polls Telegram, feeds user
// actions into the shared wizard and persists completed drafts. A session is
// keyed by chat id, so one chat runs at most one draft at a time.
type Bot struct {
	token       string
	pollTimeout time.Duration
	wizard      *wizard.Wizard
	facade      Facade
	logger      *slog.Logger

	appCtx context.Context

	mu     sync.Mutex
	api    telegramAPI
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New constructs the bot. An empty token yields a disabled bot whose Start is
// a no-op, which keeps the web adapter usable without Telegram credentials.
func New(ctx context.Context, token string, pollTimeout time.Duration, wiz *wizard.Wizard, facade Facade, logger *slog.Logger) *Bot {
	return &Bot{
		token:       token,
		pollTimeout: pollTimeout,
		wizard:      wiz,
		facade:      facade,
		logger:      logger,
		appCtx:      ctx,
	}
}

// Start authorizes against the Telegram API and launches the update loop.
func (b *Bot) Start(context.Context) error {
	if b.token == "" {
		b.logger.Info("telegram bot disabled: no token configured")
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.api == nil {
		api, err := tgbotapi.NewBotAPI(b.token)
		if err != nil {
			return fmt.Errorf("telegram connect: %w", err)
		}
		b.api = api
	}

	runCtx, cancel := context.WithCancel(b.appCtx)
	b.cancel = cancel

	b.wg.Add(1)
	go b.poll(runCtx)

	b.logger.Info("telegram bot started")
	return nil
}

// Stop terminates the update loop and waits for in-flight handling.
func (b *Bot) Stop() {
	b.mu.Lock()
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
	if b.api != nil {
		b.api.StopReceivingUpdates()
	}
	b.mu.Unlock()

	b.wg.Wait()
}

func (b *Bot) poll(ctx context.Context) {
	defer b.wg.Done()

	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = int(b.pollTimeout.Seconds())
	updates := b.api.GetUpdatesChan(cfg)

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			prompt := b.wizard.Start(sessionID(chatID))
			b.present(chatID, 0, prompt.Text, prompt)
		case "cancel":
			b.wizard.Cancel(sessionID(chatID))
			b.sendText(chatID, "Заказ отменен. Если хотите начать заново, нажмите /start.")
		case "orders":
			b.sendOrders(ctx, chatID)
		default:
			b.sendText(chatID, "Неизвестная команда. Нажмите /start, чтобы оформить заказ.")
		}
		return
	}

	// Plain text feeds the current step; only the deadline step expects it.
	b.dispatchInput(ctx, chatID, 0, msg.Text)
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		b.logger.Error("answer callback failed", slog.String("error", err.Error()))
	}
	if cb.Message == nil {
		return
	}
	b.dispatchInput(ctx, cb.Message.Chat.ID, cb.Message.MessageID, cb.Data)
}

// dispatchInput routes one input into the wizard and renders the outcome.
// A positive messageID edits the originating keyboard message in place.
func (b *Bot) dispatchInput(ctx context.Context, chatID int64, messageID int, input string) {
	out, err := b.wizard.Submit(sessionID(chatID), input)
	if err != nil {
		if errors.Is(err, wizard.ErrNoSession) {
			b.sendText(chatID, "Нажмите /start, чтобы начать оформление заказа.")
			return
		}
		b.logger.Error("wizard submit failed", slog.String("error", err.Error()))
		return
	}

	switch out.Kind {
	case wizard.OutcomeNext:
		b.present(chatID, messageID, out.Prompt.Text, out.Prompt)
	case wizard.OutcomeRetry:
		b.present(chatID, messageID, out.Err.Message, out.Prompt)
	case wizard.OutcomeAborted:
		b.present(chatID, messageID, out.Prompt.Text, nil)
	case wizard.OutcomeCompleted:
		b.commit(ctx, chatID, messageID, out.Draft)
	}
}

func (b *Bot) commit(ctx context.Context, chatID int64, messageID int, draft *wizard.Draft) {
	usr, err := b.facade.ResolveTelegramUser(ctx, chatID)
	if err != nil {
		b.logger.Error("resolve telegram user failed", slog.String("error", err.Error()))
		b.sendText(chatID, commitFailedText)
		return
	}

	order, err := b.facade.PlaceOrder(ctx, usr.ID, draft)
	if err != nil {
		// Draft stays in the session so the user can retry the commit.
		b.logger.Error("place order failed",
			slog.Int64("user_id", usr.ID),
			slog.String("error", err.Error()),
		)
		b.sendText(chatID, commitFailedText)
		return
	}
	b.wizard.Clear(sessionID(chatID))

	text := summary(order)
	if messageID > 0 {
		edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
		edit.ParseMode = tgbotapi.ModeMarkdown
		b.send(edit)
		return
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	b.send(msg)
}

func (b *Bot) sendOrders(ctx context.Context, chatID int64) {
	usr, err := b.facade.ResolveTelegramUser(ctx, chatID)
	if err != nil {
		b.logger.Error("resolve telegram user failed", slog.String("error", err.Error()))
		b.sendText(chatID, "Не удалось получить список заказов.")
		return
	}

	orders, err := b.facade.Orders(ctx, usr.ID)
	if err != nil {
		b.logger.Error("list orders failed", slog.String("error", err.Error()))
		b.sendText(chatID, "Не удалось получить список заказов.")
		return
	}
	if len(orders) == 0 {
		b.sendText(chatID, "У вас пока нет заказов. Нажмите /start, чтобы оформить первый.")
		return
	}
	b.sendText(chatID, ordersList(orders))
}

func (b *Bot) present(chatID int64, messageID int, text string, p *wizard.Prompt) {
	if p != nil && len(p.Options) > 0 {
		markup := keyboard(p)
		if messageID > 0 {
			b.send(tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, markup))
			return
		}
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ReplyMarkup = markup
		b.send(msg)
		return
	}

	if messageID > 0 {
		b.send(tgbotapi.NewEditMessageText(chatID, messageID, text))
		return
	}
	b.sendText(chatID, text)
}

func (b *Bot) sendText(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		b.logger.Error("telegram send failed", slog.String("error", err.Error()))
	}
}

func sessionID(chatID int64) string {
	return fmt.Sprintf("tg-%d", chatID)
}
