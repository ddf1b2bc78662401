package battle

// Question is immutable quiz content. Correct indexes into Options.
type Question struct {
	Prompt      string
	Options     [QuestionsPerBattle]string
	Correct     int
	Explanation string
}

// Battle is immutable content for one day of one shadow's ladder. Only the
// outcome of playing it mutates stored state.
type Battle struct {
	ShadowID  string
	Day       int
	Title     string
	Questions [QuestionsPerBattle]Question
}

func BattleFor(shadowID string, day int) (*Battle, error) {
	if day < 1 || day > LivesToCapture {
		return nil, ErrInvalidDay
	}
	days, ok := battleCatalog[shadowID]
	if !ok || day > len(days) {
		return nil, ErrNoBattle
	}
	b := days[day-1]
	return &b, nil
}

var battleCatalog = map[string][]Battle{
	"doubt": {
		{
			ShadowID: "doubt", Day: 1, Title: "Naming the Voice",
			Questions: [4]Question{
				{
					Prompt:      "What usually triggers self-doubt?",
					Options:     [4]string{"A concrete skill gap", "Comparing yourself to others", "Too much sleep", "Eating late"},
					Correct:     1,
					Explanation: "Doubt is most often comparison talking, not an honest skills audit.",
				},
				{
					Prompt:      "The fastest way to weaken a doubting thought is to…",
					Options:     [4]string{"Argue with it all day", "Ignore every thought", "Name it and let it pass", "Repeat it out loud"},
					Correct:     2,
					Explanation: "Labeling a thought as 'just doubt' separates you from it.",
				},
				{
					Prompt:      "A fixed mindset says ability is…",
					Options:     [4]string{"Trainable", "Static", "Random", "Borrowed"},
					Correct:     1,
					Explanation: "Fixed mindset treats ability as a ceiling; growth mindset treats it as a slope.",
				},
				{
					Prompt:      "Small wins matter because they…",
					Options:     [4]string{"Impress other people", "Replace the need for goals", "Build evidence against doubt", "Take no effort"},
					Correct:     2,
					Explanation: "Each win is a data point your doubt has to argue against.",
				},
			},
		},
		{
			ShadowID: "doubt", Day: 2, Title: "Evidence over Feelings",
			Questions: [4]Question{
				{
					Prompt:      "\"I always fail\" is an example of…",
					Options:     [4]string{"Overgeneralization", "Healthy realism", "Planning", "Reflection"},
					Correct:     0,
					Explanation: "One setback rarely supports 'always'. Catch the absolute words.",
				},
				{
					Prompt:      "When doubt makes a claim, first ask…",
					Options:     [4]string{"Who is to blame?", "What is the evidence?", "How do I hide this?", "Why me?"},
					Correct:     1,
					Explanation: "Treat the claim like a hypothesis and check the record.",
				},
				{
					Prompt:      "A thought record works by…",
					Options:     [4]string{"Suppressing emotion", "Writing thoughts down to examine them", "Distracting yourself", "Venting to everyone"},
					Correct:     1,
					Explanation: "Thoughts on paper are easier to test than thoughts in your head.",
				},
				{
					Prompt:      "Discomfort during practice usually signals…",
					Options:     [4]string{"You should stop", "You are learning", "You chose wrong", "Nothing"},
					Correct:     1,
					Explanation: "Strain at the edge of ability is what growth feels like.",
				},
			},
		},
		{
			ShadowID: "doubt", Day: 3, Title: "The Inner Critic",
			Questions: [4]Question{
				{
					Prompt:      "Talking to yourself like a friend is called…",
					Options:     [4]string{"Self-pity", "Self-compassion", "Denial", "Bragging"},
					Correct:     1,
					Explanation: "Self-compassion keeps standards without the cruelty.",
				},
				{
					Prompt:      "Perfectionism mostly produces…",
					Options:     [4]string{"Perfect work", "Paralysis and delay", "Speed", "Confidence"},
					Correct:     1,
					Explanation: "Waiting for perfect keeps work unshipped and doubt fed.",
				},
				{
					Prompt:      "A useful standard for a first attempt is…",
					Options:     [4]string{"Flawless", "Better than everyone", "Done and honest", "Secret"},
					Correct:     2,
					Explanation: "Done creates feedback; flawless creates waiting.",
				},
				{
					Prompt:      "Criticism from your inner voice deserves…",
					Options:     [4]string{"Automatic belief", "The same scrutiny as any claim", "A louder voice", "Shame"},
					Correct:     1,
					Explanation: "The critic is a commentator, not a judge with evidence.",
				},
			},
		},
		{
			ShadowID: "doubt", Day: 4, Title: "Comparison Traps",
			Questions: [4]Question{
				{
					Prompt:      "Comparing your start to someone's middle is…",
					Options:     [4]string{"Motivating data", "A rigged comparison", "Required", "Accurate"},
					Correct:     1,
					Explanation: "You see their highlight reel and your rehearsal.",
				},
				{
					Prompt:      "The most useful comparison is against…",
					Options:     [4]string{"Strangers online", "Your past self", "Celebrities", "Siblings"},
					Correct:     1,
					Explanation: "You-yesterday is the only fair baseline you have.",
				},
				{
					Prompt:      "Envy can be converted into…",
					Options:     [4]string{"A signal of what you value", "Proof you lost", "A grudge", "Nothing"},
					Correct:     0,
					Explanation: "Envy points at something you want; want points at a goal.",
				},
				{
					Prompt:      "Curating your inputs (feeds, media) is…",
					Options:     [4]string{"Censorship", "A legitimate defense of attention and mood", "Weakness", "Impossible"},
					Correct:     1,
					Explanation: "What you scroll is what you compare against.",
				},
			},
		},
		{
			ShadowID: "doubt", Day: 5, Title: "Acting Anyway",
			Questions: [4]Question{
				{
					Prompt:      "Confidence mostly comes from…",
					Options:     [4]string{"Waiting to feel ready", "Acting before feeling ready", "Being told you're good", "Luck"},
					Correct:     1,
					Explanation: "Action produces competence; competence produces confidence.",
				},
				{
					Prompt:      "A 'fear ladder' means…",
					Options:     [4]string{"Avoiding fear entirely", "Facing scaled-down versions first", "One giant leap", "Ranking your fears and stopping"},
					Correct:     1,
					Explanation: "Graded exposure shrinks fear one rung at a time.",
				},
				{
					Prompt:      "Shipping imperfect work teaches you…",
					Options:     [4]string{"Nothing", "That feedback beats prediction", "To hide mistakes", "To quit"},
					Correct:     1,
					Explanation: "Real responses beat imagined catastrophes every time.",
				},
				{
					Prompt:      "The two-minute rule says…",
					Options:     [4]string{"Rest two minutes per hour", "Start with a version that takes two minutes", "Quit after two minutes", "Plan for two minutes"},
					Correct:     1,
					Explanation: "A tiny start defeats the doubt that guards the big task.",
				},
			},
		},
		{
			ShadowID: "doubt", Day: 6, Title: "Identity Work",
			Questions: [4]Question{
				{
					Prompt:      "\"I'm the kind of person who shows up\" is…",
					Options:     [4]string{"An identity-based habit statement", "A brag", "A lie", "A goal with a deadline"},
					Correct:     0,
					Explanation: "Identity statements make the habit about who you are, not what you chase.",
				},
				{
					Prompt:      "Every completed habit is a…",
					Options:     [4]string{"Vote for your chosen identity", "Rounding error", "Debt", "Coincidence"},
					Correct:     0,
					Explanation: "Repetition is how an identity gets elected.",
				},
				{
					Prompt:      "Setbacks say what about identity?",
					Options:     [4]string{"It was fake", "Nothing by themselves; patterns matter", "Start over at zero", "Hide them"},
					Correct:     1,
					Explanation: "One missed day is noise; the trend is the signal.",
				},
				{
					Prompt:      "Doubt shrinks fastest when…",
					Options:     [4]string{"You wait it out", "Your actions contradict it daily", "You argue at night", "You tell no one"},
					Correct:     1,
					Explanation: "Contradicting evidence, repeated, is the only argument doubt respects.",
				},
			},
		},
		{
			ShadowID: "doubt", Day: 7, Title: "Facing the Shadow",
			Questions: [4]Question{
				{
					Prompt:      "The goal of this fight was never to…",
					Options:     [4]string{"Silence doubt forever", "Hear doubt less loudly", "Act despite doubt", "Collect wins"},
					Correct:     0,
					Explanation: "Doubt visits everyone; captured means it no longer drives.",
				},
				{
					Prompt:      "When doubt returns after this, you will…",
					Options:     [4]string{"Panic", "Name it, check evidence, act", "Quit the streak", "Wait for motivation"},
					Correct:     1,
					Explanation: "You now have a procedure, not just a feeling.",
				},
				{
					Prompt:      "Your streak is proof of…",
					Options:     [4]string{"Luck", "A repeatable system", "Talent only", "Nothing"},
					Correct:     1,
					Explanation: "Systems survive bad days; bursts of motivation don't.",
				},
				{
					Prompt:      "The strongest reply to \"you can't\" is…",
					Options:     [4]string{"\"Watch the record\"", "\"You're right\"", "\"Maybe later\"", "Silence and retreat"},
					Correct:     0,
					Explanation: "Your log of completed days argues for you.",
				},
			},
		},
	},
	"distraction": {
		{
			ShadowID: "distraction", Day: 1, Title: "The Attention Economy",
			Questions: [4]Question{
				{
					Prompt:      "Most apps are designed to maximize…",
					Options:     [4]string{"Your goals", "Time-on-screen", "Your focus", "Battery life"},
					Correct:     1,
					Explanation: "Engagement is the product; your attention is the inventory.",
				},
				{
					Prompt:      "Variable rewards (likes, pulls-to-refresh) work like…",
					Options:     [4]string{"A paycheck", "A slot machine", "A calendar", "An alarm"},
					Correct:     1,
					Explanation: "Unpredictable rewards are the most habit-forming kind.",
				},
				{
					Prompt:      "A notification is best treated as…",
					Options:     [4]string{"An order", "Someone else's agenda for your attention", "An emergency", "Harmless"},
					Correct:     1,
					Explanation: "Defaults favor the sender, not you.",
				},
				{
					Prompt:      "The first defense against distraction is…",
					Options:     [4]string{"Willpower in the moment", "Shaping the environment beforehand", "Multitasking", "Caffeine"},
					Correct:     1,
					Explanation: "A phone in another room beats a phone resisted heroically.",
				},
			},
		},
		{
			ShadowID: "distraction", Day: 2, Title: "The Cost of Switching",
			Questions: [4]Question{
				{
					Prompt:      "After an interruption, refocusing takes roughly…",
					Options:     [4]string{"A few seconds", "Many minutes", "No time", "An hour of sleep"},
					Correct:     1,
					Explanation: "Attention residue lingers far longer than the interruption itself.",
				},
				{
					Prompt:      "Multitasking on cognitive work is really…",
					Options:     [4]string{"Parallel processing", "Rapid, costly switching", "A skill anyone can master", "Restful"},
					Correct:     1,
					Explanation: "The brain alternates; each switch pays a toll.",
				},
				{
					Prompt:      "Batching shallow tasks (email, messages) works because…",
					Options:     [4]string{"They disappear", "Switching costs are paid once, not constantly", "It impresses others", "It takes longer"},
					Correct:     1,
					Explanation: "One context switch per batch instead of one per message.",
				},
				{
					Prompt:      "An open loop (unfinished task in mind) causes…",
					Options:     [4]string{"Peace", "Intrusive reminders until written down", "Better memory", "Speed"},
					Correct:     1,
					Explanation: "Parking a loop in a trusted list quiets the nagging.",
				},
			},
		},
		{
			ShadowID: "distraction", Day: 3, Title: "Deep Work Blocks",
			Questions: [4]Question{
				{
					Prompt:      "Deep work means…",
					Options:     [4]string{"Long hours", "Distraction-free focus on a demanding task", "Working underground", "Urgent work"},
					Correct:     1,
					Explanation: "Depth is about the quality of attention, not the clock.",
				},
				{
					Prompt:      "A good focus block has…",
					Options:     [4]string{"No end time", "A set start, end, and single target", "Music videos", "Email open"},
					Correct:     1,
					Explanation: "Boundaries turn focus from a mood into an appointment.",
				},
				{
					Prompt:      "When an urge to check something hits mid-block…",
					Options:     [4]string{"Check quickly", "Note it and return after the block", "Abandon the block", "Fight it angrily"},
					Correct:     1,
					Explanation: "The note satisfies the urge without paying the switch cost.",
				},
				{
					Prompt:      "Focus is best thought of as…",
					Options:     [4]string{"A fixed talent", "A trainable capacity", "Genetic luck", "A mood"},
					Correct:     1,
					Explanation: "Like a muscle, it grows with progressive, boring reps.",
				},
			},
		},
		{
			ShadowID: "distraction", Day: 4, Title: "Digital Hygiene",
			Questions: [4]Question{
				{
					Prompt:      "The home screen of your phone should hold…",
					Options:     [4]string{"Everything", "Tools, not feeds", "Games", "Red badges"},
					Correct:     1,
					Explanation: "Make the default path boring and the feed path long.",
				},
				{
					Prompt:      "Grayscale mode helps because…",
					Options:     [4]string{"It saves battery only", "Color is part of the hook", "It looks cool", "It blocks calls"},
					Correct:     1,
					Explanation: "Muted color makes the slot machine less shiny.",
				},
				{
					Prompt:      "Checking your phone first thing in the morning…",
					Options:     [4]string{"Sets someone else's agenda for your day", "Is harmless", "Improves focus", "Is required"},
					Correct:     0,
					Explanation: "The first input of the day frames the rest of it.",
				},
				{
					Prompt:      "App time limits work best when…",
					Options:     [4]string{"Easy to override", "Paired with a replacement activity", "Secret", "Punitive"},
					Correct:     1,
					Explanation: "Attention abhors a vacuum; give it somewhere to go.",
				},
			},
		},
		{
			ShadowID: "distraction", Day: 5, Title: "Boredom Training",
			Questions: [4]Question{
				{
					Prompt:      "Reaching for the phone at every dull moment trains…",
					Options:     [4]string{"Patience", "An intolerance for boredom", "Creativity", "Memory"},
					Correct:     1,
					Explanation: "Every micro-check teaches the brain that boredom is optional.",
				},
				{
					Prompt:      "Letting yourself be bored sometimes leads to…",
					Options:     [4]string{"Nothing", "Mind-wandering and ideas", "Anxiety only", "Sleep"},
					Correct:     1,
					Explanation: "Default-mode wandering is where loose ends connect.",
				},
				{
					Prompt:      "A 'boredom rep' is…",
					Options:     [4]string{"A queue with no phone", "A nap", "A long scroll", "A complaint"},
					Correct:     0,
					Explanation: "Waiting without a screen is focus training in the wild.",
				},
				{
					Prompt:      "Stimulation and satisfaction are…",
					Options:     [4]string{"The same", "Different; one fades as the other grows", "Both bad", "Unrelated to habits"},
					Correct:     1,
					Explanation: "Endless stimulation crowds out the slower, durable rewards.",
				},
			},
		},
		{
			ShadowID: "distraction", Day: 6, Title: "Defending the Calendar",
			Questions: [4]Question{
				{
					Prompt:      "Time-blocking means…",
					Options:     [4]string{"Blocking people", "Assigning work to specific hours in advance", "Working nonstop", "Avoiding meetings"},
					Correct:     1,
					Explanation: "A plan made calm beats choices made distracted.",
				},
				{
					Prompt:      "Saying no to a low-value ask protects…",
					Options:     [4]string{"Nothing", "The yes you already gave your priorities", "Your image", "Only your mood"},
					Correct:     1,
					Explanation: "Every yes spends hours that were promised elsewhere.",
				},
				{
					Prompt:      "The best slot for the hardest work is…",
					Options:     [4]string{"Whenever", "Your peak-energy hours, guarded", "After midnight always", "During meetings"},
					Correct:     1,
					Explanation: "Match the hardest task to the strongest hours.",
				},
				{
					Prompt:      "A shutdown ritual at day's end…",
					Options:     [4]string{"Wastes time", "Closes loops so evenings actually restore you", "Is superstition", "Only suits managers"},
					Correct:     1,
					Explanation: "Reviewed and parked, tasks stop following you home.",
				},
			},
		},
		{
			ShadowID: "distraction", Day: 7, Title: "Facing the Shadow",
			Questions: [4]Question{
				{
					Prompt:      "Attention is ultimately…",
					Options:     [4]string{"Infinite", "What your life is made of", "A corporate asset", "Overrated"},
					Correct:     1,
					Explanation: "Where attention goes, hours and years follow.",
				},
				{
					Prompt:      "The shadow is captured when…",
					Options:     [4]string{"You never feel a pull again", "You choose your focus by default", "Your phone breaks", "You go offline forever"},
					Correct:     1,
					Explanation: "The pull remains; the choice is now yours.",
				},
				{
					Prompt:      "After a lapse into an old scrolling habit…",
					Options:     [4]string{"All progress is lost", "Resume the system; the trend is intact", "Delete everything", "Give up until Monday"},
					Correct:     1,
					Explanation: "Systems absorb lapses; identities survive them.",
				},
				{
					Prompt:      "The final discipline of focus is…",
					Options:     [4]string{"Willpower forever", "Designing defaults so focus is the easy path", "Moving to a cabin", "More apps"},
					Correct:     1,
					Explanation: "Make the right thing the lazy thing and it will last.",
				},
			},
		},
	},
}
