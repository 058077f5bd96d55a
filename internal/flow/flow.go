// Package flow turns user intents into spoken responses. It owns the
// in-memory map of live sessions, mirrors every mutation into the resume
// store, and never surfaces internal errors to the user.
package flow

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/616xold/rehab-budd-islem/internal/catalog"
	"github.com/616xold/rehab-budd-islem/internal/difficulty"
	"github.com/616xold/rehab-budd-islem/internal/progress"
	"github.com/616xold/rehab-budd-islem/internal/session"
	"github.com/616xold/rehab-budd-islem/pkg/models"
)

// Intent names accepted by Handle.
const (
	IntentLaunch           = "launch"
	IntentStartSession     = "start_session"
	IntentNextExercise     = "next_exercise"
	IntentRepeatExercise   = "repeat_exercise"
	IntentSkipExercise     = "skip_exercise"
	IntentAdjustDifficulty = "adjust_difficulty"
	IntentFeedback         = "difficulty_feedback"
	IntentYes              = "yes"
	IntentNo               = "no"
	IntentGetProgress      = "get_progress"
	IntentSessionSummary   = "session_summary"
	IntentSetReminder      = "set_reminder"
	IntentCancelReminder   = "cancel_reminder"
	IntentDeleteData       = "delete_data"
	IntentHelp             = "help"
	IntentEndSession       = "end_session"
	IntentFallback         = "fallback"
)

// Parameter keys used in Turn.Params.
const (
	ParamExerciseType = "exercise_type"
	ParamDirection    = "direction"
	ParamFeedback     = "feedback"
	ParamHour         = "hour"
	ParamText         = "text"
)

// Turn is one user utterance, already resolved to an intent by the
// transport layer.
type Turn struct {
	UserID string
	Intent string
	Params map[string]string
}

// Response is what gets spoken back. EndSession tells the transport the
// conversation is over.
type Response struct {
	Text       string
	EndSession bool
}

// Flow dispatches turns against the session engine, the adaptation
// engine and the progress tracker.
type Flow struct {
	catalog  catalog.Catalog
	engine   *difficulty.Engine
	tracker  *progress.Tracker
	resume   *session.ResumeManager
	askEvery int

	mu            sync.Mutex
	active        map[string]*session.Session
	pendingResume map[string]bool
}

// New wires a flow over the given collaborators. askEvery sets the
// feedback cadence for new sessions.
func New(cat catalog.Catalog, engine *difficulty.Engine, tracker *progress.Tracker, resume *session.ResumeManager, askEvery int) *Flow {
	return &Flow{
		catalog:       cat,
		engine:        engine,
		tracker:       tracker,
		resume:        resume,
		askEvery:      askEvery,
		active:        make(map[string]*session.Session),
		pendingResume: make(map[string]bool),
	}
}

// Handle processes one turn. It never returns an error; failures are
// logged and answered with an apology so the conversation can continue.
func (f *Flow) Handle(turn Turn) Response {
	f.mu.Lock()
	defer f.mu.Unlock()

	if turn.Params == nil {
		turn.Params = map[string]string{}
	}

	switch turn.Intent {
	case IntentLaunch:
		return f.handleLaunch(turn)
	case IntentStartSession:
		return f.handleStart(turn)
	case IntentNextExercise:
		return f.handleNext(turn)
	case IntentRepeatExercise:
		return f.handleRepeat(turn)
	case IntentSkipExercise:
		return f.handleSkip(turn)
	case IntentAdjustDifficulty:
		return f.handleAdjust(turn)
	case IntentFeedback:
		return f.handleFeedback(turn)
	case IntentYes:
		return f.handleYes(turn)
	case IntentNo:
		return f.handleNo(turn)
	case IntentGetProgress:
		return f.handleProgress(turn)
	case IntentSessionSummary:
		return f.handleSessionSummary(turn)
	case IntentSetReminder:
		return f.handleSetReminder(turn)
	case IntentCancelReminder:
		return f.handleCancelReminder(turn)
	case IntentDeleteData:
		return f.handleDeleteData(turn)
	case IntentHelp:
		return f.handleHelp(turn)
	case IntentEndSession:
		return f.handleEnd(turn)
	default:
		return f.handleFallback(turn)
	}
}

func (f *Flow) handleLaunch(turn Turn) Response {
	snap, err := f.resume.Load(turn.UserID)
	if err == nil && snap != nil {
		f.pendingResume[turn.UserID] = true
		remaining := len(snap.ExerciseIDs) - snap.CurrentIndex
		if remaining < 1 {
			remaining = 1
		}
		return Response{Text: fmt.Sprintf(
			"Welcome back to Rehab Buddy! You have an unfinished %s session with %d %s remaining. "+
				"Would you like to continue where you left off?",
			snap.ExerciseType, remaining, plural(remaining, "exercise"))}
	}
	if err != nil && !errors.Is(err, session.ErrNoResumableSession) {
		log.WithError(err).WithField("user_id", turn.UserID).Warn("resume lookup failed on launch")
	}

	summary, err := f.tracker.Summary(turn.UserID)
	if err == nil && summary.CurrentStreak > 0 {
		return Response{Text: fmt.Sprintf(
			"Welcome back to Rehab Buddy! You're on a %d day streak. "+
				"Which type of exercises would you like today: physical, speech, or cognitive?",
			summary.CurrentStreak)}
	}
	return Response{Text: msgWelcome}
}

func (f *Flow) handleStart(turn Turn) Response {
	delete(f.pendingResume, turn.UserID)

	exerciseType := models.NormalizeExerciseType(turn.Params[ParamExerciseType])
	sess, err := session.Start(f.catalog, f.engine, turn.UserID, exerciseType, f.askEvery)
	if err != nil {
		if errors.Is(err, session.ErrEmptyRoutine) {
			return Response{Text: msgEmptyRoutine}
		}
		log.WithError(err).WithField("user_id", turn.UserID).Error("failed to start session")
		return Response{Text: msgApology}
	}

	f.active[turn.UserID] = sess
	f.mirror(sess)

	// A level-up earned last session is announced once, here.
	prefix := ""
	if claimed, err := f.tracker.ConsumeCongratulation(turn.UserID); err == nil && claimed {
		prefix = congratulationMessage(sess.State.Difficulty) + " "
	}

	return Response{Text: prefix + fmt.Sprintf(
		"Great, let's start your %s session at %s level. There are %d exercises. First up: %s When you're done, say 'next'.",
		sess.State.ExerciseType, sess.State.Difficulty, sess.Total(),
		catalog.FormattedInstructions(sess.Current()))}
}

func (f *Flow) handleNext(turn Turn) Response {
	sess, ok := f.active[turn.UserID]
	if !ok {
		return Response{Text: msgNoSession}
	}

	err := sess.Advance()
	if errors.Is(err, session.ErrNoMoreExercises) {
		return f.finishSession(turn.UserID, sess)
	}
	if err != nil {
		log.WithError(err).WithField("user_id", turn.UserID).Error("failed to advance session")
		return Response{Text: msgApology}
	}
	f.mirror(sess)
	return Response{Text: f.exercisePrompt(sess)}
}

func (f *Flow) handleRepeat(turn Turn) Response {
	sess, ok := f.active[turn.UserID]
	if !ok {
		return Response{Text: msgNoSession}
	}
	sess.Repeat()
	f.mirror(sess)
	return Response{Text: "Sure, one more time. " + catalog.FormattedInstructions(sess.Current())}
}

func (f *Flow) handleSkip(turn Turn) Response {
	sess, ok := f.active[turn.UserID]
	if !ok {
		return Response{Text: msgNoSession}
	}

	err := sess.Skip()
	if errors.Is(err, session.ErrNoMoreExercises) {
		return f.finishSession(turn.UserID, sess)
	}
	if err != nil {
		log.WithError(err).WithField("user_id", turn.UserID).Error("failed to skip exercise")
		return Response{Text: msgApology}
	}
	f.mirror(sess)
	return Response{Text: "Okay, skipping that one. " + f.exercisePrompt(sess)}
}

func (f *Flow) handleAdjust(turn Turn) Response {
	easier := !wantsHarder(turn.Params[ParamDirection])

	newLevel, err := f.engine.Step(turn.UserID, easier, true)
	if err != nil {
		log.WithError(err).WithField("user_id", turn.UserID).Error("failed to adjust difficulty")
		return Response{Text: msgApology}
	}

	sess, inSession := f.active[turn.UserID]
	if !inSession {
		return Response{Text: fmt.Sprintf(
			"Done. Your exercises are now set to %s level. It will apply to your next session.", newLevel)}
	}

	if err := sess.ReloadAfterDifficultyChange(); err != nil {
		log.WithError(err).WithField("user_id", turn.UserID).Error("failed to reload session")
		return Response{Text: msgApology}
	}
	f.mirror(sess)

	direction := "easier"
	if !easier {
		direction = "more challenging"
	}
	return Response{Text: fmt.Sprintf(
		"Okay, making things %s. You're now at %s level. %s",
		direction, newLevel, f.exercisePrompt(sess))}
}

func (f *Flow) handleFeedback(turn Turn) Response {
	sess, ok := f.active[turn.UserID]
	if !ok {
		return Response{Text: msgNoSession}
	}

	level := normalizeFeedback(turn.Params[ParamFeedback])
	if level == "" {
		return Response{Text: "You can say comfortable, challenging, or too hard. How did that exercise feel?"}
	}

	result, err := sess.RecordFeedback(level)
	if err != nil {
		log.WithError(err).WithField("user_id", turn.UserID).Error("failed to record feedback")
		return Response{Text: msgApology}
	}
	f.mirror(sess)

	if result.Changed && result.Immediate {
		if err := sess.ReloadAfterDifficultyChange(); err != nil {
			log.WithError(err).WithField("user_id", turn.UserID).Error("failed to reload session")
			return Response{Text: msgApology}
		}
		f.mirror(sess)
		return Response{Text: fmt.Sprintf(
			"Thanks for letting me know. Let's make things a bit easier with %s level exercises. %s",
			result.NewLevel, f.exercisePrompt(sess))}
	}

	ack := "Thanks for the feedback!"
	if level == models.FeedbackComfortable {
		ack = "Great to hear!"
	}
	return Response{Text: ack + " Say 'next' when you're ready to continue."}
}

func (f *Flow) handleYes(turn Turn) Response {
	if !f.pendingResume[turn.UserID] {
		return Response{Text: msgHelpGeneral}
	}
	delete(f.pendingResume, turn.UserID)

	snap, err := f.resume.Load(turn.UserID)
	if err != nil || snap == nil {
		return Response{Text: msgChooseType}
	}

	sess, err := session.Resume(f.catalog, f.engine, turn.UserID, snap, f.askEvery)
	if err != nil {
		log.WithError(err).WithField("user_id", turn.UserID).Error("failed to resume session")
		return Response{Text: msgChooseType}
	}

	f.active[turn.UserID] = sess
	f.mirror(sess)
	return Response{Text: fmt.Sprintf(
		"Welcome back to your %s session. You're on exercise %d of %d. %s",
		sess.State.ExerciseType, sess.State.CurrentIndex+1, sess.Total(),
		catalog.FormattedInstructions(sess.Current()))}
}

func (f *Flow) handleNo(turn Turn) Response {
	if !f.pendingResume[turn.UserID] {
		return Response{Text: msgHelpGeneral}
	}
	delete(f.pendingResume, turn.UserID)

	if err := f.resume.Clear(turn.UserID); err != nil {
		log.WithError(err).WithField("user_id", turn.UserID).Warn("failed to clear saved session")
	}
	return Response{Text: msgChooseType}
}

func (f *Flow) handleProgress(turn Turn) Response {
	summary, err := f.tracker.Summary(turn.UserID)
	if err != nil {
		log.WithError(err).WithField("user_id", turn.UserID).Error("failed to load progress summary")
		return Response{Text: msgApology}
	}
	return Response{Text: progressMessage(summary)}
}

func (f *Flow) handleSessionSummary(turn Turn) Response {
	sess, ok := f.active[turn.UserID]
	if !ok {
		return Response{Text: msgNoSession}
	}

	state := sess.State
	text := fmt.Sprintf("You're doing a %s session at %s level, on exercise %d of %d.",
		state.ExerciseType, state.Difficulty, state.CurrentIndex+1, sess.Total())
	if n := len(state.Skips); n > 0 {
		text += fmt.Sprintf(" You've skipped %d %s so far.", n, plural(n, "exercise"))
	}
	return Response{Text: text + " Say 'next' to keep going."}
}

func (f *Flow) handleSetReminder(turn Turn) Response {
	hour, ok := parseHour(turn.Params[ParamHour])
	if !ok {
		return Response{Text: "What time would you like your daily reminder? You can say an hour, like 9 AM or 6 PM."}
	}

	if err := f.tracker.SetReminder(turn.UserID, hour); err != nil {
		log.WithError(err).WithField("user_id", turn.UserID).Error("failed to set reminder")
		return Response{Text: msgApology}
	}
	return Response{Text: fmt.Sprintf(
		"All set! I'll remind you to exercise every day at %s.", formatHour(hour))}
}

func (f *Flow) handleCancelReminder(turn Turn) Response {
	if err := f.tracker.CancelReminder(turn.UserID); err != nil {
		log.WithError(err).WithField("user_id", turn.UserID).Error("failed to cancel reminder")
		return Response{Text: msgApology}
	}
	return Response{Text: msgReminderCancelled}
}

func (f *Flow) handleDeleteData(turn Turn) Response {
	delete(f.active, turn.UserID)
	delete(f.pendingResume, turn.UserID)

	if err := f.tracker.DeleteData(turn.UserID); err != nil {
		log.WithError(err).WithField("user_id", turn.UserID).Error("failed to delete user data")
		return Response{Text: msgApology}
	}
	return Response{Text: "I've deleted all your progress data, including streaks, history, and any saved session. " +
		"If you start a new session you'll begin from scratch at beginner level."}
}

func (f *Flow) handleHelp(turn Turn) Response {
	if _, ok := f.active[turn.UserID]; ok {
		return Response{Text: msgHelpInSession}
	}
	return Response{Text: msgHelpGeneral}
}

func (f *Flow) handleEnd(turn Turn) Response {
	sess, ok := f.active[turn.UserID]
	if !ok {
		delete(f.pendingResume, turn.UserID)
		return Response{Text: msgGoodbye, EndSession: true}
	}
	delete(f.active, turn.UserID)

	state := sess.State
	if !state.Completed {
		// The in-progress exercise counts as worked on.
		completed := state.CurrentIndex + 1
		if err := f.tracker.LogPartial(turn.UserID, state.SessionID, state.ExerciseType, completed, sess.Total()); err != nil {
			log.WithError(err).WithField("user_id", turn.UserID).Warn("failed to log partial session")
		}
		if err := f.resume.Save(&sess.State); err != nil {
			log.WithError(err).WithField("user_id", turn.UserID).Warn("failed to save session for resume")
		}
		return Response{Text: fmt.Sprintf(
			"No problem, you completed %d of %d exercises. I've saved your place so you can pick up where you left off. %s",
			completed, sess.Total(), msgGoodbye), EndSession: true}
	}
	return Response{Text: msgGoodbye, EndSession: true}
}

func (f *Flow) handleFallback(turn Turn) Response {
	text := strings.ToLower(turn.Params[ParamText])

	// Users often answer with a bare keyword the transport could not
	// resolve; sniff the common ones before giving up.
	switch {
	case strings.Contains(text, "skip"):
		return f.handleSkip(turn)
	case strings.Contains(text, "next") || strings.Contains(text, "done"):
		return f.handleNext(turn)
	case strings.Contains(text, "repeat") || strings.Contains(text, "again"):
		return f.handleRepeat(turn)
	case strings.Contains(text, "easier") || strings.Contains(text, "harder"):
		turn.Params[ParamDirection] = text
		return f.handleAdjust(turn)
	case f.inSession(turn.UserID) && normalizeFeedback(text) != "":
		turn.Params[ParamFeedback] = text
		return f.handleFeedback(turn)
	case strings.Contains(text, "stop") || strings.Contains(text, "quit") || strings.Contains(text, "exit"):
		return f.handleEnd(turn)
	case strings.Contains(text, "help"):
		return f.handleHelp(turn)
	}
	return Response{Text: msgDidNotUnderstand}
}

// finishSession completes the session, records it, clears the saved
// snapshot and builds the wrap-up message with streak and, when earned,
// the level-up congratulation.
func (f *Flow) finishSession(userID string, sess *session.Session) Response {
	delete(f.active, userID)

	result, err := sess.Complete()
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("failed to evaluate session")
	}

	streak, err := f.tracker.LogCompletion(userID, sess.State.ExerciseType)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("failed to log completion")
	}
	if err := f.resume.Clear(userID); err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("failed to clear saved session")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "That was the last exercise. Fantastic work, you've completed your %s session! ", sess.State.ExerciseType)
	if msg := streakMessage(streak); msg != "" {
		b.WriteString(msg)
		b.WriteString(" ")
	}
	if result.Congratulate {
		fmt.Fprintf(&b, "You've been doing so well that your next session will be at %s level. ", result.NewLevel)
	} else if result.Changed && result.Easier {
		fmt.Fprintf(&b, "I've adjusted your next session to %s level so it feels more comfortable. ", result.NewLevel)
	}
	b.WriteString("See you next time!")

	return Response{Text: b.String(), EndSession: true}
}

func (f *Flow) inSession(userID string) bool {
	_, ok := f.active[userID]
	return ok
}

// mirror writes the current session state into the resume store so an
// abrupt disconnect never loses the user's place.
func (f *Flow) mirror(sess *session.Session) {
	if err := f.resume.Save(&sess.State); err != nil {
		log.WithError(err).WithField("user_id", sess.State.UserID).Warn("failed to mirror session state")
	}
}

// exercisePrompt renders the current exercise and, when the cadence flag
// is set for this position, appends the feedback question in the same
// turn.
func (f *Flow) exercisePrompt(sess *session.Session) string {
	text := fmt.Sprintf("Exercise %d of %d: %s",
		sess.State.CurrentIndex+1, sess.Total(), catalog.FormattedInstructions(sess.Current()))
	if sess.State.ShouldAskFeedback {
		text += " " + msgFeedbackPrompt
	}
	return text
}

// wantsHarder reports whether the spoken direction asks for more
// challenge. Anything else is treated as a request to go easier.
func wantsHarder(direction string) bool {
	d := strings.ToLower(direction)
	for _, marker := range []string{"hard", "difficult", "challeng", "up", "advance"} {
		if strings.Contains(d, marker) {
			return true
		}
	}
	return false
}

// normalizeFeedback maps a free-form feedback utterance onto one of the
// known levels, or "" when it matches none. Order matters: "challenging"
// contains no hard/difficult marker, but any remaining mention of hard
// or difficult means the exercise was too hard and must trigger the
// safety step-down.
func normalizeFeedback(raw string) string {
	t := strings.ToLower(raw)
	switch {
	case strings.Contains(t, "comfort") || strings.Contains(t, "easy") || strings.Contains(t, "fine") || strings.Contains(t, "good") || strings.Contains(t, "okay"):
		return models.FeedbackComfortable
	case strings.Contains(t, "challeng"):
		return models.FeedbackChallenging
	case strings.Contains(t, "hard") || strings.Contains(t, "difficult") || strings.Contains(t, "too much"):
		return models.FeedbackTooHard
	default:
		return ""
	}
}

// parseHour accepts "9", "09", "9 am", "6 pm", "18" and returns the
// 24-hour value.
func parseHour(raw string) (int, bool) {
	t := strings.ToLower(strings.TrimSpace(raw))
	if t == "" {
		return 0, false
	}

	pm := strings.Contains(t, "pm") || strings.Contains(t, "p.m")
	am := strings.Contains(t, "am") || strings.Contains(t, "a.m")

	digits := strings.Builder{}
	for _, r := range t {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		} else if digits.Len() > 0 {
			break
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}

	hour := 0
	fmt.Sscanf(digits.String(), "%d", &hour)
	if pm && hour < 12 {
		hour += 12
	}
	if am && hour == 12 {
		hour = 0
	}
	if hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}

func formatHour(hour int) string {
	switch {
	case hour == 0:
		return "midnight"
	case hour == 12:
		return "noon"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}
