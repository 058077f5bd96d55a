package flow

import (
	"fmt"
	"strings"

	"github.com/616xold/rehab-budd-islem/internal/progress"
)

// Fixed response texts. Anything not parameterized lives here so the
// handlers stay readable.
const (
	msgWelcome = "Welcome to Rehab Buddy, your personal rehabilitation exercise coach! " +
		"I can guide you through physical, speech, or cognitive exercises. " +
		"Which type would you like to work on today?"

	msgChooseType = "No problem, we'll start fresh. Would you like physical, speech, or cognitive exercises?"

	msgHelpGeneral = "I can guide you through rehabilitation exercises. " +
		"Say 'start physical exercises', 'start speech exercises', or 'start cognitive exercises' to begin. " +
		"You can also ask 'what's my progress', say 'set a reminder', or say 'make it easier' or 'make it harder' at any time. " +
		"What would you like to do?"

	msgHelpInSession = "You're in the middle of a session. " +
		"Say 'next' to continue, 'repeat' to hear the exercise again, or 'skip' to move on. " +
		"You can say 'make it easier' or 'make it harder' to adjust the difficulty, or 'stop' to end the session. " +
		"Your progress will be saved if you stop early."

	msgGoodbye = "Great work today! Remember, consistency is key to recovery. See you next time!"

	msgNoSession = "You don't have an active session right now. " +
		"Say 'start physical exercises', 'start speech exercises', or 'start cognitive exercises' to begin."

	msgFeedbackPrompt = "How was that exercise? You can say comfortable, challenging, or too hard."

	msgApology = "Sorry, something went wrong on my end. Let's try that again."

	msgDidNotUnderstand = "Sorry, I didn't catch that. " +
		"You can say 'next', 'repeat', 'skip', or 'help' to hear your options."

	msgEmptyRoutine = "I couldn't find any exercises for that routine right now. " +
		"Please try a different exercise type."

	msgReminderCancelled = "Okay, I've cancelled your daily exercise reminders. " +
		"You can set them up again anytime by saying 'set a reminder'."
)

// streakMessage returns the encouragement line for the streak reached at
// session completion. Milestones get their own wording.
func streakMessage(streak int) string {
	switch {
	case streak >= 30:
		return fmt.Sprintf("Incredible! You've kept your streak going for %d days. A full month of dedication to your recovery!", streak)
	case streak >= 14:
		return fmt.Sprintf("Two weeks strong! That's a %d day streak. Your commitment is really paying off.", streak)
	case streak >= 7:
		return fmt.Sprintf("Amazing! You've hit a %d day streak. A whole week of consistent exercise!", streak)
	case streak >= 3:
		return fmt.Sprintf("You're on a %d day streak. Keep the momentum going!", streak)
	case streak == 1:
		return "That's day one of a new streak. Come back tomorrow to keep it going!"
	case streak > 1:
		return fmt.Sprintf("You're on a %d day streak!", streak)
	default:
		return ""
	}
}

// congratulationMessage is spoken when the adaptation engine bumped the
// user up a level on the strength of their feedback.
func congratulationMessage(newLevel string) string {
	return fmt.Sprintf("Congratulations! You've been doing so well that I've moved you up to %s level exercises.", newLevel)
}

// progressMessage renders the aggregate progress summary as speech.
func progressMessage(s *progress.Summary) string {
	var b strings.Builder
	if s.SessionsCompleted == 0 {
		return "You haven't completed any sessions yet, but today is a great day to start! " +
			"Say 'start physical exercises' to begin your first session."
	}

	fmt.Fprintf(&b, "You've completed %d %s in total", s.SessionsCompleted, plural(s.SessionsCompleted, "session"))
	if s.SessionsThisWeek > 0 {
		fmt.Fprintf(&b, ", including %d this week", s.SessionsThisWeek)
	}
	b.WriteString(". ")

	parts := make([]string, 0, 3)
	if s.PhysicalSessions > 0 {
		parts = append(parts, fmt.Sprintf("%d physical", s.PhysicalSessions))
	}
	if s.SpeechSessions > 0 {
		parts = append(parts, fmt.Sprintf("%d speech", s.SpeechSessions))
	}
	if s.CognitiveSessions > 0 {
		parts = append(parts, fmt.Sprintf("%d cognitive", s.CognitiveSessions))
	}
	if len(parts) > 0 {
		fmt.Fprintf(&b, "That breaks down to %s. ", strings.Join(parts, ", "))
	}

	if s.CurrentStreak > 0 {
		fmt.Fprintf(&b, "Your current streak is %d %s", s.CurrentStreak, plural(s.CurrentStreak, "day"))
		if s.MaxStreak > s.CurrentStreak {
			fmt.Fprintf(&b, ", and your best ever is %d days", s.MaxStreak)
		}
		b.WriteString(". ")
	} else if s.MaxStreak > 0 {
		fmt.Fprintf(&b, "Your best streak so far is %d %s. ", s.MaxStreak, plural(s.MaxStreak, "day"))
	}

	fmt.Fprintf(&b, "You're currently working at %s level. Keep it up!", s.DifficultyLevel)
	return b.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
