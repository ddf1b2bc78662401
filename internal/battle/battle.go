package battle

import (
	"fmt"
)

type State string

const (
	StateSelecting State = "selecting"
	StateAnswering State = "answering"
	StateActing    State = "acting"
	StateResolving State = "resolving"
	StateReporting State = "reporting"
)

const (
	QuestionsPerBattle = 4
	LivesToCapture     = 7
	WinningScore       = 80
	ActingTicks        = 10
)

// Attempt is one play-through of a single battle day. It advances strictly
// through Answering → Acting → Resolving → Reporting; every transition is
// validated and there is no backtracking once an answer is recorded.
type Attempt struct {
	battle *Battle
	rng    Rand

	state      State
	question   int
	answers    []int
	correct    int
	actingLeft int
	outcome    Outcome
}

// NewAttempt validates selection rules (enabled shadow, unlocked day for the
// given livesDefeated) and returns an attempt in the Answering state.
func NewAttempt(shadowID string, day, livesDefeated int, rng Rand) (*Attempt, error) {
	s, err := FindShadow(shadowID)
	if err != nil {
		return nil, err
	}
	if err := CanSelectShadow(s); err != nil {
		return nil, err
	}
	if err := CanSelectDay(livesDefeated, day); err != nil {
		return nil, err
	}
	b, err := BattleFor(shadowID, day)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = DefaultRand()
	}
	return &Attempt{
		battle:     b,
		rng:        rng,
		state:      StateAnswering,
		actingLeft: ActingTicks,
	}, nil
}

func (a *Attempt) State() State    { return a.state }
func (a *Attempt) Battle() *Battle { return a.battle }

// QuestionNumber is 1-based for display.
func (a *Attempt) QuestionNumber() int { return a.question + 1 }

func (a *Attempt) Question() (*Question, error) {
	if a.state != StateAnswering {
		return nil, fmt.Errorf("no current question in state %q", a.state)
	}
	return &a.battle.Questions[a.question], nil
}

type AnswerResult struct {
	Correct       bool
	CorrectOption int
	Explanation   string
	Last          bool
}

// Answer records the chosen option for the current question. The answer is
// final; Advance moves to the next question (or to Acting) after the caller
// has shown feedback.
func (a *Attempt) Answer(option int) (*AnswerResult, error) {
	if a.state != StateAnswering {
		return nil, fmt.Errorf("answer in state %q", a.state)
	}
	if len(a.answers) > a.question {
		return nil, ErrAlreadyAnswered
	}
	if option < 0 || option >= QuestionsPerBattle {
		return nil, ErrAnswerOutOfRange
	}

	q := a.battle.Questions[a.question]
	a.answers = append(a.answers, option)
	correct := option == q.Correct
	if correct {
		a.correct++
	}
	return &AnswerResult{
		Correct:       correct,
		CorrectOption: q.Correct,
		Explanation:   q.Explanation,
		Last:          a.question == QuestionsPerBattle-1,
	}, nil
}

// Advance moves past an answered question: to the next question, or to the
// Acting phase once all four are answered.
func (a *Attempt) Advance() error {
	if a.state != StateAnswering {
		return fmt.Errorf("advance in state %q", a.state)
	}
	if len(a.answers) <= a.question {
		return fmt.Errorf("advance before answering question %d", a.QuestionNumber())
	}
	if a.question < QuestionsPerBattle-1 {
		a.question++
		return nil
	}
	a.state = StateActing
	return nil
}

// Score is the quiz score in percent.
func (a *Attempt) Score() int {
	return a.correct * 100 / QuestionsPerBattle
}

// ActingRemaining reports how many countdown units are left.
func (a *Attempt) ActingRemaining() int { return a.actingLeft }

// TickActing consumes one countdown unit of the focus action. The phase is
// mandatory regardless of score; when the countdown reaches zero the attempt
// moves to Resolving.
func (a *Attempt) TickActing() (remaining int, err error) {
	if a.state != StateActing {
		return 0, fmt.Errorf("tick in state %q", a.state)
	}
	a.actingLeft--
	if a.actingLeft <= 0 {
		a.actingLeft = 0
		a.state = StateResolving
	}
	return a.actingLeft, nil
}

type Resolution struct {
	ShadowID  string
	Day       int
	Score     int
	Won       bool
	Outcome   Outcome
	LifeDelta int
}

// Resolve settles the attempt. A winning score draws a treasure outcome:
// Potion grants 2 lives, Poison nullifies the win. A losing score draws
// nothing and changes nothing; the day stays replayable.
func (a *Attempt) Resolve() (*Resolution, error) {
	if a.state != StateResolving {
		return nil, fmt.Errorf("resolve in state %q", a.state)
	}
	res := &Resolution{
		ShadowID: a.battle.ShadowID,
		Day:      a.battle.Day,
		Score:    a.Score(),
	}
	if res.Score >= WinningScore {
		res.Won = true
		a.outcome = Draw(a.rng)
		res.Outcome = a.outcome
		if a.outcome == OutcomePotion {
			res.LifeDelta = 2
		}
	}
	a.state = StateReporting
	return res, nil
}
