package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/616xold/rehab-budd-islem/internal/catalog"
	"github.com/616xold/rehab-budd-islem/internal/difficulty"
	"github.com/616xold/rehab-budd-islem/internal/progress"
	"github.com/616xold/rehab-budd-islem/internal/session"
	"github.com/616xold/rehab-budd-islem/pkg/models"
)

type memStore struct {
	records map[string]*models.UserProgress
}

func newMemStore() *memStore {
	return &memStore{records: make(map[string]*models.UserProgress)}
}

func (s *memStore) Get(userID string) (*models.UserProgress, error) {
	return s.records[userID], nil
}

func (s *memStore) Put(p *models.UserProgress) error {
	s.records[p.UserID] = p
	return nil
}

func (s *memStore) Delete(userID string) error {
	delete(s.records, userID)
	return nil
}

func newTestFlow() (*Flow, *memStore) {
	store := newMemStore()
	engine := difficulty.New(store)
	tracker := progress.NewTracker(store)
	resume := session.NewResumeManager(store, 7)
	return New(catalog.NewStatic(), engine, tracker, resume, 2), store
}

func turn(intent string, params map[string]string) Turn {
	return Turn{UserID: "user-1", Intent: intent, Params: params}
}

func startPhysical(t *testing.T, f *Flow) {
	t.Helper()
	resp := f.Handle(turn(IntentStartSession, map[string]string{ParamExerciseType: models.TypePhysical}))
	require.Contains(t, resp.Text, "physical session at beginner level")
}

func TestLaunch_NewUser(t *testing.T) {
	f, _ := newTestFlow()

	resp := f.Handle(turn(IntentLaunch, nil))
	assert.Contains(t, resp.Text, "Welcome to Rehab Buddy")
	assert.False(t, resp.EndSession)
}

func TestStartSession(t *testing.T) {
	f, _ := newTestFlow()

	resp := f.Handle(turn(IntentStartSession, map[string]string{ParamExerciseType: "physical"}))
	assert.Contains(t, resp.Text, "There are 5 exercises")
	assert.Contains(t, resp.Text, "Shoulder Rolls")
}

func TestNext_AsksForFeedbackOnCadence(t *testing.T) {
	f, _ := newTestFlow()
	startPhysical(t, f)

	// With a cadence of 2, the advance that lands on every even-numbered
	// exercise carries the feedback question in the same turn.
	resp := f.Handle(turn(IntentNextExercise, nil))
	assert.Contains(t, resp.Text, "Exercise 2 of 5")
	assert.Contains(t, resp.Text, "How was that exercise?")

	resp = f.Handle(turn(IntentNextExercise, nil))
	assert.Contains(t, resp.Text, "Exercise 3 of 5")
	assert.NotContains(t, resp.Text, "How was that exercise?")

	resp = f.Handle(turn(IntentNextExercise, nil))
	assert.Contains(t, resp.Text, "Exercise 4 of 5")
	assert.Contains(t, resp.Text, "How was that exercise?")
}

func TestSessionRunsToCompletion(t *testing.T) {
	f, store := newTestFlow()
	startPhysical(t, f)

	var resp Response
	for i := 0; i < 5; i++ {
		resp = f.Handle(turn(IntentNextExercise, nil))
	}

	assert.True(t, resp.EndSession)
	assert.Contains(t, resp.Text, "completed your physical session")
	assert.Contains(t, resp.Text, "day one of a new streak")

	record := store.records["user-1"]
	require.NotNil(t, record)
	assert.Equal(t, 1, record.SessionsCompleted)
	assert.Nil(t, record.Snapshot, "completed session leaves no resume snapshot")

	// The session is gone; another next reports no active session.
	resp = f.Handle(turn(IntentNextExercise, nil))
	assert.Contains(t, resp.Text, "don't have an active session")
}

func TestSkip_InSession(t *testing.T) {
	f, _ := newTestFlow()
	startPhysical(t, f)

	resp := f.Handle(turn(IntentSkipExercise, nil))
	assert.Contains(t, resp.Text, "skipping")
	assert.Contains(t, resp.Text, "Exercise 2 of 5")
}

func TestAdjustDifficulty_OutOfSession(t *testing.T) {
	f, store := newTestFlow()

	resp := f.Handle(turn(IntentAdjustDifficulty, map[string]string{ParamDirection: "make it harder"}))
	assert.Contains(t, resp.Text, "set to intermediate level")
	assert.Equal(t, "intermediate", store.records["user-1"].DifficultyLevel)
}

func TestAdjustDifficulty_InSessionReloads(t *testing.T) {
	f, _ := newTestFlow()
	startPhysical(t, f)

	resp := f.Handle(turn(IntentAdjustDifficulty, map[string]string{ParamDirection: "harder"}))
	assert.Contains(t, resp.Text, "more challenging")
	assert.Contains(t, resp.Text, "intermediate level")
	assert.Contains(t, resp.Text, "of 5")
}

func TestFeedback_TooHardMakesSessionEasier(t *testing.T) {
	f, store := newTestFlow()

	// At intermediate, too-hard feedback drops the user mid-session.
	require.NoError(t, difficulty.New(store).Set("user-1", difficulty.Intermediate))
	resp := f.Handle(turn(IntentStartSession, map[string]string{ParamExerciseType: "physical"}))
	require.Contains(t, resp.Text, "intermediate level")

	resp = f.Handle(turn(IntentFeedback, map[string]string{ParamFeedback: "that was too hard"}))
	assert.Contains(t, resp.Text, "easier")
	assert.Contains(t, resp.Text, "beginner level")
	assert.Equal(t, "beginner", store.records["user-1"].DifficultyLevel)
}

func TestFeedback_PlainHardStepsDown(t *testing.T) {
	f, store := newTestFlow()

	require.NoError(t, difficulty.New(store).Set("user-1", difficulty.Intermediate))
	resp := f.Handle(turn(IntentStartSession, map[string]string{ParamExerciseType: "physical"}))
	require.Contains(t, resp.Text, "intermediate level")

	// "hard" without the "too" still means the session is too much.
	resp = f.Handle(turn(IntentFeedback, map[string]string{ParamFeedback: "that was hard"}))
	assert.Contains(t, resp.Text, "easier")
	assert.Contains(t, resp.Text, "beginner level")
	assert.Equal(t, "beginner", store.records["user-1"].DifficultyLevel)
}

func TestFallback_FeedbackInSession(t *testing.T) {
	f, store := newTestFlow()

	require.NoError(t, difficulty.New(store).Set("user-1", difficulty.Intermediate))
	f.Handle(turn(IntentStartSession, map[string]string{ParamExerciseType: "physical"}))

	resp := f.Handle(turn(IntentFallback, map[string]string{ParamText: "hard"}))
	assert.Contains(t, resp.Text, "easier")
	assert.Equal(t, "beginner", store.records["user-1"].DifficultyLevel)
}

func TestFeedback_Unrecognized(t *testing.T) {
	f, _ := newTestFlow()
	startPhysical(t, f)

	resp := f.Handle(turn(IntentFeedback, map[string]string{ParamFeedback: "purple"}))
	assert.Contains(t, resp.Text, "comfortable, challenging, or too hard")
}

func TestEndSession_SavesPlaceAndLogsPartial(t *testing.T) {
	f, store := newTestFlow()
	startPhysical(t, f)
	f.Handle(turn(IntentNextExercise, nil))

	resp := f.Handle(turn(IntentEndSession, nil))
	assert.True(t, resp.EndSession)
	// The exercise the user stopped on counts as worked on.
	assert.Contains(t, resp.Text, "completed 2 of 5 exercises")

	record := store.records["user-1"]
	require.NotNil(t, record)
	require.NotNil(t, record.Snapshot)
	assert.Equal(t, 1, record.Snapshot.CurrentIndex)
	require.Len(t, record.PartialSessions, 1)
	assert.Equal(t, 40.0, record.PartialSessions[0].Percentage)
}

func TestLaunch_OffersResumeAndYesContinues(t *testing.T) {
	f, _ := newTestFlow()
	startPhysical(t, f)
	f.Handle(turn(IntentNextExercise, nil))
	f.Handle(turn(IntentEndSession, nil))

	resp := f.Handle(turn(IntentLaunch, nil))
	assert.Contains(t, resp.Text, "unfinished physical session")
	assert.Contains(t, resp.Text, "4 exercises remaining")

	resp = f.Handle(turn(IntentYes, nil))
	assert.Contains(t, resp.Text, "exercise 2 of 5")
}

func TestLaunch_ResumeDeclinedClearsSnapshot(t *testing.T) {
	f, store := newTestFlow()
	startPhysical(t, f)
	f.Handle(turn(IntentEndSession, nil))

	f.Handle(turn(IntentLaunch, nil))
	resp := f.Handle(turn(IntentNo, nil))
	assert.Contains(t, resp.Text, "start fresh")
	assert.Nil(t, store.records["user-1"].Snapshot)
}

func TestYes_WithoutPendingQuestion(t *testing.T) {
	f, _ := newTestFlow()

	resp := f.Handle(turn(IntentYes, nil))
	assert.Contains(t, resp.Text, "guide you through rehabilitation exercises")
}

func TestHelp_InAndOutOfSession(t *testing.T) {
	f, _ := newTestFlow()

	resp := f.Handle(turn(IntentHelp, nil))
	assert.Equal(t, msgHelpGeneral, resp.Text)

	startPhysical(t, f)
	resp = f.Handle(turn(IntentHelp, nil))
	assert.Equal(t, msgHelpInSession, resp.Text)
}

func TestGetProgress(t *testing.T) {
	f, _ := newTestFlow()

	resp := f.Handle(turn(IntentGetProgress, nil))
	assert.Contains(t, resp.Text, "haven't completed any sessions yet")

	startPhysical(t, f)
	for i := 0; i < 5; i++ {
		f.Handle(turn(IntentNextExercise, nil))
	}
	resp = f.Handle(turn(IntentGetProgress, nil))
	assert.Contains(t, resp.Text, "completed 1 session in total")
	assert.Contains(t, resp.Text, "current streak is 1 day")
}

func TestSessionSummary(t *testing.T) {
	f, _ := newTestFlow()
	startPhysical(t, f)
	f.Handle(turn(IntentSkipExercise, nil))

	resp := f.Handle(turn(IntentSessionSummary, nil))
	assert.Contains(t, resp.Text, "exercise 2 of 5")
	assert.Contains(t, resp.Text, "skipped 1 exercise")
}

func TestSetReminder(t *testing.T) {
	f, store := newTestFlow()

	resp := f.Handle(turn(IntentSetReminder, map[string]string{ParamHour: "6 pm"}))
	assert.Contains(t, resp.Text, "6 PM")
	record := store.records["user-1"]
	assert.True(t, record.ReminderSet)
	assert.Equal(t, 18, record.ReminderHour)

	resp = f.Handle(turn(IntentSetReminder, map[string]string{ParamHour: ""}))
	assert.Contains(t, resp.Text, "What time")
}

func TestCongratulation_AnnouncedOnNextStart(t *testing.T) {
	f, store := newTestFlow()
	startPhysical(t, f)

	// All-comfortable feedback across the session earns a level up.
	for i := 0; i < 2; i++ {
		f.Handle(turn(IntentFeedback, map[string]string{ParamFeedback: "comfortable"}))
		f.Handle(turn(IntentNextExercise, nil))
	}
	f.Handle(turn(IntentFeedback, map[string]string{ParamFeedback: "comfortable"}))

	var resp Response
	for !resp.EndSession {
		resp = f.Handle(turn(IntentNextExercise, nil))
	}
	assert.Contains(t, resp.Text, "next session will be at intermediate level")
	assert.True(t, store.records["user-1"].PendingCongratulation)

	resp = f.Handle(turn(IntentStartSession, map[string]string{ParamExerciseType: "physical"}))
	assert.Contains(t, resp.Text, "Congratulations")
	assert.Contains(t, resp.Text, "intermediate level")
	assert.False(t, store.records["user-1"].PendingCongratulation)

	// The congratulation is consumed; a third session starts plainly.
	f.Handle(turn(IntentEndSession, nil))
	resp = f.Handle(turn(IntentStartSession, map[string]string{ParamExerciseType: "physical"}))
	assert.NotContains(t, resp.Text, "Congratulations")
}

func TestDeleteData_EndsSessionAndWipesRecord(t *testing.T) {
	f, store := newTestFlow()
	startPhysical(t, f)

	resp := f.Handle(turn(IntentDeleteData, nil))
	assert.Contains(t, resp.Text, "deleted all your progress data")
	assert.Nil(t, store.records["user-1"])

	resp = f.Handle(turn(IntentNextExercise, nil))
	assert.Contains(t, resp.Text, "don't have an active session")
}

func TestFallback_SniffsKeywords(t *testing.T) {
	f, _ := newTestFlow()
	startPhysical(t, f)

	resp := f.Handle(turn(IntentFallback, map[string]string{ParamText: "please skip this one"}))
	assert.Contains(t, resp.Text, "skipping")

	resp = f.Handle(turn(IntentFallback, map[string]string{ParamText: "gibberish"}))
	assert.Equal(t, msgDidNotUnderstand, resp.Text)
}

func TestParseHour(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"9", 9, true},
		{"9 am", 9, true},
		{"6 pm", 18, true},
		{"12 pm", 12, true},
		{"12 am", 0, true},
		{"18", 18, true},
		{"remind me at 7 pm", 19, true},
		{"sometime", 0, false},
		{"", 0, false},
		{"25", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseHour(tt.in)
		assert.Equalf(t, tt.ok, ok, "parseHour(%q)", tt.in)
		if tt.ok {
			assert.Equalf(t, tt.want, got, "parseHour(%q)", tt.in)
		}
	}
}

func TestNormalizeFeedback(t *testing.T) {
	assert.Equal(t, models.FeedbackTooHard, normalizeFeedback("that was too hard"))
	assert.Equal(t, models.FeedbackTooHard, normalizeFeedback("hard"))
	assert.Equal(t, models.FeedbackTooHard, normalizeFeedback("really difficult"))
	assert.Equal(t, models.FeedbackChallenging, normalizeFeedback("pretty challenging"))
	assert.Equal(t, models.FeedbackComfortable, normalizeFeedback("comfortable"))
	assert.Equal(t, models.FeedbackComfortable, normalizeFeedback("it was easy"))
	assert.Equal(t, "", normalizeFeedback("purple"))
}

func TestWantsHarder(t *testing.T) {
	assert.True(t, wantsHarder("make it harder"))
	assert.True(t, wantsHarder("more challenging please"))
	assert.False(t, wantsHarder("easier"))
	assert.False(t, wantsHarder(""))
}
