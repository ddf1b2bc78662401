package companion

import "strings"

// The fallback table is fixed and deterministic: replies are keyed by
// progress bucket, with keyword rules checked in declaration order before
// the bucket default. It never fails and always yields a user-facing string.

type progressBucket int

const (
	bucketNotStarted progressBucket = iota // 0%
	bucketEarly                            // <25%
	bucketQuarter                          // <50%
	bucketHalf                             // <75%
	bucketAlmost                           // <100%
	bucketDone                             // 100%
)

func bucketFor(percent int) progressBucket {
	switch {
	case percent <= 0:
		return bucketNotStarted
	case percent < 25:
		return bucketEarly
	case percent < 50:
		return bucketQuarter
	case percent < 75:
		return bucketHalf
	case percent < 100:
		return bucketAlmost
	default:
		return bucketDone
	}
}

type fallbackRule struct {
	keywords []string
	reply    string
}

var fallbackRules = map[progressBucket][]fallbackRule{
	bucketNotStarted: {
		{keywords: []string{"tired", "exhausted"}, reply: "Low energy is exactly when the smallest habit counts double. Pick the easiest one on your list and just start it."},
		{keywords: []string{"shadow", "battle"}, reply: "The shadows can wait until you've warmed up. Complete one habit first, then take the fight to them."},
		{keywords: []string{"help", "stuck"}, reply: "Don't plan, just pick: the first habit on your list, two minutes, right now. Momentum does the rest."},
	},
	bucketEarly: {
		{keywords: []string{"tired", "exhausted"}, reply: "You already started, which is the hard part. One more small habit and then rest guilt-free."},
		{keywords: []string{"shadow", "battle"}, reply: "You've drawn first blood on the day. A shadow battle would fit nicely while you're moving."},
	},
	bucketQuarter: {
		{keywords: []string{"shadow", "battle"}, reply: "A quarter of the day is yours. The shadows notice when you show up like this."},
	},
	bucketHalf: {
		{keywords: []string{"tired", "exhausted"}, reply: "Past halfway and feeling it, that's normal. Finish one more and call it a strong day if you need to."},
	},
	bucketAlmost: {
		{keywords: []string{"shadow", "battle"}, reply: "One habit from a perfect day. A battle won now would make it legendary."},
	},
	bucketDone: {},
}

var fallbackDefaults = map[progressBucket]string{
	bucketNotStarted: "A blank day isn't a failure, it's a starting line. Pick one habit and make the first mark.",
	bucketEarly:      "You're on the board. Keep the chain going: one small habit at a time.",
	bucketQuarter:    "Solid progress already. The middle of the day is where streaks are made.",
	bucketHalf:       "More than half done. You're carrying the day, not the other way around.",
	bucketAlmost:     "So close to a clean sweep. One more and today goes in the books.",
	bucketDone:       "Every habit done. Nothing left to prove today, just enjoy having won it.",
}

// fallbackReply is the deterministic local stand-in for the external service.
func fallbackReply(progressPercent int, userText string) string {
	b := bucketFor(progressPercent)
	text := strings.ToLower(userText)
	for _, rule := range fallbackRules[b] {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.reply
			}
		}
	}
	return fallbackDefaults[b]
}
