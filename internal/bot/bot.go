// Package bot is the Telegram transport. It resolves incoming messages
// and button presses to flow intents and sends the spoken responses
// back as chat messages.
package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/616xold/rehab-budd-islem/internal/flow"
	"github.com/616xold/rehab-budd-islem/pkg/models"
)

// MenuButton is one inline keyboard button.
type MenuButton struct {
	Text         string
	CallbackData string
}

// createKeyboard builds an inline keyboard from rows of menu buttons.
func createKeyboard(buttons [][]MenuButton) tgbotapi.InlineKeyboardMarkup {
	var keyboard [][]tgbotapi.InlineKeyboardButton
	for _, row := range buttons {
		var keyboardRow []tgbotapi.InlineKeyboardButton
		for _, button := range row {
			keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonData(button.Text, button.CallbackData))
		}
		keyboard = append(keyboard, keyboardRow)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}

// Bot is the Telegram bot application.
type Bot struct {
	api   *tgbotapi.BotAPI
	token string
	flow  *flow.Flow
}

// New creates a bot over the given flow. The token is validated at
// Start, not here.
func New(token string, f *flow.Flow) (*Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is not set")
	}
	return &Bot{token: token, flow: f}, nil
}

// Start connects to Telegram and processes updates until the channel is
// closed by Stop.
func (b *Bot) Start() error {
	botAPI, err := tgbotapi.NewBotAPI(b.token)
	if err != nil {
		return fmt.Errorf("unable to create bot: %v", err)
	}
	b.api = botAPI
	log.Infof("Authorized on account %s", botAPI.Self.UserName)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	for update := range updates {
		go b.handleUpdate(update)
	}
	return nil
}

// Stop shuts down the update channel so Start returns.
func (b *Bot) Stop() {
	if b.api != nil {
		b.api.StopReceivingUpdates()
	}
	log.Info("Bot stopped")
}

// SendReminder implements the scheduler's Notifier interface. User IDs
// double as chat IDs for Telegram private chats.
func (b *Bot) SendReminder(userID, message string) error {
	chatID, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user id %q: %v", userID, err)
	}

	msg := tgbotapi.NewMessage(chatID, message)
	msg.ReplyMarkup = createKeyboard(mainMenuButtons())
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send reminder to user %s: %v", userID, err)
	}
	return nil
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		b.handleMessage(update.Message)
	case update.CallbackQuery != nil:
		b.handleCallbackQuery(update.CallbackQuery)
	}
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	userID := strconv.FormatInt(message.From.ID, 10)

	var turn flow.Turn
	if message.IsCommand() {
		turn = b.commandTurn(userID, message)
	} else {
		turn = classify(userID, message.Text)
	}

	resp := b.flow.Handle(turn)
	b.reply(message.Chat.ID, resp)
}

func (b *Bot) commandTurn(userID string, message *tgbotapi.Message) flow.Turn {
	args := strings.TrimSpace(message.CommandArguments())
	switch message.Command() {
	case "start":
		return flow.Turn{UserID: userID, Intent: flow.IntentLaunch}
	case "physical":
		return startTurn(userID, models.TypePhysical)
	case "speech":
		return startTurn(userID, models.TypeSpeech)
	case "cognitive":
		return startTurn(userID, models.TypeCognitive)
	case "next":
		return flow.Turn{UserID: userID, Intent: flow.IntentNextExercise}
	case "repeat":
		return flow.Turn{UserID: userID, Intent: flow.IntentRepeatExercise}
	case "skip":
		return flow.Turn{UserID: userID, Intent: flow.IntentSkipExercise}
	case "easier":
		return adjustTurn(userID, "easier")
	case "harder":
		return adjustTurn(userID, "harder")
	case "progress":
		return flow.Turn{UserID: userID, Intent: flow.IntentGetProgress}
	case "summary":
		return flow.Turn{UserID: userID, Intent: flow.IntentSessionSummary}
	case "remind":
		return flow.Turn{UserID: userID, Intent: flow.IntentSetReminder,
			Params: map[string]string{flow.ParamHour: args}}
	case "cancelreminder":
		return flow.Turn{UserID: userID, Intent: flow.IntentCancelReminder}
	case "deletedata":
		return flow.Turn{UserID: userID, Intent: flow.IntentDeleteData}
	case "stop", "end":
		return flow.Turn{UserID: userID, Intent: flow.IntentEndSession}
	case "help":
		return flow.Turn{UserID: userID, Intent: flow.IntentHelp}
	default:
		return flow.Turn{UserID: userID, Intent: flow.IntentFallback,
			Params: map[string]string{flow.ParamText: message.Text}}
	}
}

func (b *Bot) handleCallbackQuery(callback *tgbotapi.CallbackQuery) {
	userID := strconv.FormatInt(callback.From.ID, 10)

	// Acknowledge the press so the client stops its spinner.
	if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		log.WithError(err).Warn("failed to answer callback query")
	}

	turn := callbackTurn(userID, callback.Data)
	resp := b.flow.Handle(turn)
	b.reply(callback.Message.Chat.ID, resp)
}

// callbackTurn maps button callback data like "start:physical" or
// "feedback:comfortable" to a flow turn.
func callbackTurn(userID, data string) flow.Turn {
	action, arg := data, ""
	if i := strings.IndexByte(data, ':'); i >= 0 {
		action, arg = data[:i], data[i+1:]
	}

	switch action {
	case "start":
		return startTurn(userID, arg)
	case "next":
		return flow.Turn{UserID: userID, Intent: flow.IntentNextExercise}
	case "repeat":
		return flow.Turn{UserID: userID, Intent: flow.IntentRepeatExercise}
	case "skip":
		return flow.Turn{UserID: userID, Intent: flow.IntentSkipExercise}
	case "adjust":
		return adjustTurn(userID, arg)
	case "feedback":
		return flow.Turn{UserID: userID, Intent: flow.IntentFeedback,
			Params: map[string]string{flow.ParamFeedback: arg}}
	case "resume":
		if arg == "yes" {
			return flow.Turn{UserID: userID, Intent: flow.IntentYes}
		}
		return flow.Turn{UserID: userID, Intent: flow.IntentNo}
	case "progress":
		return flow.Turn{UserID: userID, Intent: flow.IntentGetProgress}
	case "end":
		return flow.Turn{UserID: userID, Intent: flow.IntentEndSession}
	case "help":
		return flow.Turn{UserID: userID, Intent: flow.IntentHelp}
	default:
		return flow.Turn{UserID: userID, Intent: flow.IntentFallback,
			Params: map[string]string{flow.ParamText: data}}
	}
}

// classify resolves free-form text to an intent. Telegram has no speech
// model, so a small keyword matcher stands in for one.
func classify(userID, text string) flow.Turn {
	t := strings.ToLower(strings.TrimSpace(text))

	switch {
	case t == "yes" || t == "yeah" || t == "yep" || t == "sure":
		return flow.Turn{UserID: userID, Intent: flow.IntentYes}
	case t == "no" || t == "nope" || t == "nah":
		return flow.Turn{UserID: userID, Intent: flow.IntentNo}
	case strings.Contains(t, "physical"):
		return startTurn(userID, models.TypePhysical)
	case strings.Contains(t, "speech"):
		return startTurn(userID, models.TypeSpeech)
	case strings.Contains(t, "cognitive") || strings.Contains(t, "memory"):
		return startTurn(userID, models.TypeCognitive)
	case strings.Contains(t, "comfort") || strings.Contains(t, "challeng") ||
		strings.Contains(t, "too hard") || strings.Contains(t, "easy"):
		return flow.Turn{UserID: userID, Intent: flow.IntentFeedback,
			Params: map[string]string{flow.ParamFeedback: t}}
	case strings.Contains(t, "easier") || strings.Contains(t, "harder"):
		return adjustTurn(userID, t)
	case strings.Contains(t, "progress") || strings.Contains(t, "streak") || strings.Contains(t, "stats"):
		return flow.Turn{UserID: userID, Intent: flow.IntentGetProgress}
	case strings.Contains(t, "remind"):
		return flow.Turn{UserID: userID, Intent: flow.IntentSetReminder,
			Params: map[string]string{flow.ParamHour: t}}
	default:
		return flow.Turn{UserID: userID, Intent: flow.IntentFallback,
			Params: map[string]string{flow.ParamText: text}}
	}
}

func startTurn(userID, exerciseType string) flow.Turn {
	return flow.Turn{UserID: userID, Intent: flow.IntentStartSession,
		Params: map[string]string{flow.ParamExerciseType: exerciseType}}
}

func adjustTurn(userID, direction string) flow.Turn {
	return flow.Turn{UserID: userID, Intent: flow.IntentAdjustDifficulty,
		Params: map[string]string{flow.ParamDirection: direction}}
}

func (b *Bot) reply(chatID int64, resp flow.Response) {
	msg := tgbotapi.NewMessage(chatID, resp.Text)
	msg.ReplyMarkup = keyboardFor(resp)
	if _, err := b.api.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("failed to send message")
	}
}

// keyboardFor picks the inline keyboard that matches the response: the
// session controls during a session, the main menu otherwise.
func keyboardFor(resp flow.Response) tgbotapi.InlineKeyboardMarkup {
	if resp.EndSession {
		return createKeyboard(mainMenuButtons())
	}
	if strings.Contains(resp.Text, "Would you like to continue where you left off?") {
		return createKeyboard([][]MenuButton{{
			{Text: "Continue", CallbackData: "resume:yes"},
			{Text: "Start fresh", CallbackData: "resume:no"},
		}})
	}
	if strings.Contains(resp.Text, "How was that exercise?") {
		return createKeyboard([][]MenuButton{{
			{Text: "Comfortable", CallbackData: "feedback:comfortable"},
			{Text: "Challenging", CallbackData: "feedback:challenging"},
			{Text: "Too hard", CallbackData: "feedback:too hard"},
		}})
	}
	if strings.Contains(resp.Text, "Exercise ") || strings.Contains(resp.Text, "First up:") {
		return createKeyboard(sessionButtons())
	}
	return createKeyboard(mainMenuButtons())
}

func mainMenuButtons() [][]MenuButton {
	return [][]MenuButton{
		{
			{Text: "🏋️ Physical", CallbackData: "start:physical"},
			{Text: "🗣 Speech", CallbackData: "start:speech"},
			{Text: "🧠 Cognitive", CallbackData: "start:cognitive"},
		},
		{
			{Text: "📊 My Progress", CallbackData: "progress"},
			{Text: "❓ Help", CallbackData: "help"},
		},
	}
}

func sessionButtons() [][]MenuButton {
	return [][]MenuButton{
		{
			{Text: "✅ Next", CallbackData: "next"},
			{Text: "🔁 Repeat", CallbackData: "repeat"},
			{Text: "⏭ Skip", CallbackData: "skip"},
		},
		{
			{Text: "Easier", CallbackData: "adjust:easier"},
			{Text: "Harder", CallbackData: "adjust:harder"},
			{Text: "🛑 End", CallbackData: "end"},
		},
	}
}
