package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRand struct{ v float64 }

func (f fixedRand) Float64() float64 { return f.v }

var (
	potionRand = fixedRand{v: 0.2}
	poisonRand = fixedRand{v: 0.9}
)

// playQuiz answers every question; correct says how many to get right.
func playQuiz(t *testing.T, a *Attempt, correct int) {
	t.Helper()
	for i := 0; i < QuestionsPerBattle; i++ {
		q, err := a.Question()
		require.NoError(t, err)

		choice := q.Correct
		if i >= correct {
			choice = (q.Correct + 1) % QuestionsPerBattle
		}
		_, err = a.Answer(choice)
		require.NoError(t, err)
		require.NoError(t, a.Advance())
	}
}

func runActing(t *testing.T, a *Attempt) {
	t.Helper()
	require.Equal(t, StateActing, a.State())
	for i := 0; i < ActingTicks; i++ {
		_, err := a.TickActing()
		require.NoError(t, err)
	}
	require.Equal(t, StateResolving, a.State())
}

func TestSelectionRules(t *testing.T) {
	_, err := NewAttempt("nobody", 1, 0, potionRand)
	assert.ErrorIs(t, err, ErrUnknownShadow)

	_, err = NewAttempt("isolation", 1, 0, potionRand)
	assert.ErrorIs(t, err, ErrShadowLocked)

	_, err = NewAttempt("doubt", 0, 0, potionRand)
	assert.ErrorIs(t, err, ErrInvalidDay)
	_, err = NewAttempt("doubt", 8, 7, potionRand)
	assert.ErrorIs(t, err, ErrInvalidDay)

	// Day 1 is open with zero lives; day d needs d-1 lives.
	_, err = NewAttempt("doubt", 1, 0, potionRand)
	assert.NoError(t, err)

	_, err = NewAttempt("doubt", 3, 1, potionRand)
	var locked DayLockedError
	require.ErrorAs(t, err, &locked)
	assert.Equal(t, 3, locked.Day)
	assert.Equal(t, 2, locked.RequiredLives)

	_, err = NewAttempt("doubt", 3, 2, potionRand)
	assert.NoError(t, err)
	_, err = NewAttempt("doubt", 7, 6, potionRand)
	assert.NoError(t, err)
}

func TestDaysUnlocked(t *testing.T) {
	assert.Equal(t, 1, DaysUnlocked(0))
	assert.Equal(t, 4, DaysUnlocked(3))
	assert.Equal(t, 7, DaysUnlocked(6))
	assert.Equal(t, 7, DaysUnlocked(7))
}

func TestAnsweringFlow(t *testing.T) {
	a, err := NewAttempt("doubt", 1, 0, potionRand)
	require.NoError(t, err)
	require.Equal(t, StateAnswering, a.State())
	require.Equal(t, 1, a.QuestionNumber())

	// Must answer before advancing.
	assert.Error(t, a.Advance())

	_, err = a.Answer(-1)
	assert.ErrorIs(t, err, ErrAnswerOutOfRange)
	_, err = a.Answer(4)
	assert.ErrorIs(t, err, ErrAnswerOutOfRange)

	q, err := a.Question()
	require.NoError(t, err)
	res, err := a.Answer(q.Correct)
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.False(t, res.Last)
	assert.NotEmpty(t, res.Explanation)

	// No backtracking: the answer is final.
	_, err = a.Answer(q.Correct)
	assert.ErrorIs(t, err, ErrAlreadyAnswered)

	require.NoError(t, a.Advance())
	assert.Equal(t, 2, a.QuestionNumber())
}

func TestScore(t *testing.T) {
	for correct, want := range map[int]int{0: 0, 1: 25, 2: 50, 3: 75, 4: 100} {
		a, err := NewAttempt("distraction", 1, 0, potionRand)
		require.NoError(t, err)
		playQuiz(t, a, correct)
		assert.Equal(t, want, a.Score(), "correct=%d", correct)
	}
}

func TestActingIsMandatoryEvenOnLoss(t *testing.T) {
	a, err := NewAttempt("doubt", 1, 0, potionRand)
	require.NoError(t, err)
	playQuiz(t, a, 0)

	// Cannot resolve before the countdown runs out.
	_, err = a.Resolve()
	require.Error(t, err)

	runActing(t, a)
	res, err := a.Resolve()
	require.NoError(t, err)
	assert.False(t, res.Won)
	assert.Equal(t, OutcomeNone, res.Outcome)
	assert.Equal(t, 0, res.LifeDelta)
}

func TestResolveWinPotion(t *testing.T) {
	a, err := NewAttempt("doubt", 1, 0, potionRand)
	require.NoError(t, err)
	playQuiz(t, a, 4)
	runActing(t, a)

	res, err := a.Resolve()
	require.NoError(t, err)
	assert.True(t, res.Won)
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, OutcomePotion, res.Outcome)
	assert.Equal(t, 2, res.LifeDelta)
	assert.Equal(t, StateReporting, a.State())

	// Terminal: cannot resolve twice.
	_, err = a.Resolve()
	assert.Error(t, err)
}

func TestResolveWinPoisonNullifies(t *testing.T) {
	a, err := NewAttempt("doubt", 1, 0, poisonRand)
	require.NoError(t, err)
	playQuiz(t, a, 4)
	runActing(t, a)

	res, err := a.Resolve()
	require.NoError(t, err)
	assert.True(t, res.Won)
	assert.Equal(t, OutcomePoison, res.Outcome)
	assert.Equal(t, 0, res.LifeDelta)
}

func TestThreeOfFourIsALoss(t *testing.T) {
	a, err := NewAttempt("doubt", 2, 1, potionRand)
	require.NoError(t, err)
	playQuiz(t, a, 3)
	runActing(t, a)

	res, err := a.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 75, res.Score)
	assert.False(t, res.Won)
	assert.Equal(t, 0, res.LifeDelta)
}

func TestCatalogShape(t *testing.T) {
	for _, s := range Shadows() {
		if !s.Enabled {
			_, err := BattleFor(s.ID, 1)
			assert.ErrorIs(t, err, ErrNoBattle, "locked shadow %s has content", s.ID)
			continue
		}
		for day := 1; day <= LivesToCapture; day++ {
			b, err := BattleFor(s.ID, day)
			require.NoError(t, err, "%s day %d", s.ID, day)
			assert.Equal(t, day, b.Day)
			assert.Equal(t, s.ID, b.ShadowID)
			for qi, q := range b.Questions {
				assert.NotEmpty(t, q.Prompt, "%s day %d q%d", s.ID, day, qi)
				assert.GreaterOrEqual(t, q.Correct, 0)
				assert.Less(t, q.Correct, QuestionsPerBattle)
				for _, opt := range q.Options {
					assert.NotEmpty(t, opt)
				}
			}
		}
	}
}

func TestDrawIsUniformlySplit(t *testing.T) {
	assert.Equal(t, OutcomePotion, Draw(fixedRand{v: 0.0}))
	assert.Equal(t, OutcomePotion, Draw(fixedRand{v: 0.499}))
	assert.Equal(t, OutcomePoison, Draw(fixedRand{v: 0.5}))
	assert.Equal(t, OutcomePoison, Draw(fixedRand{v: 0.999}))
}
