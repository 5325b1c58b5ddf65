package catalog

// dashboard is the fixed display order of the seven course modules.
// Four of them are catalog-only: their lessons have not been authored,
// so Get returns ErrNotFound while Describe and List still work.
var dashboard = []Summary{
	{
		ID:          "brainstorming",
		Title:       "Brainstorming",
		Description: "Learn to generate and organize creative ideas for your stories with proven techniques.",
		Level:       LevelBeginner,
		Duration:    "30 mins",
		Icon:        IconLightbulb,
		StepCount:   7,
	},
	{
		ID:          "plotting",
		Title:       "Plotting",
		Description: "Master the art of creating compelling plot structures that keep readers engaged.",
		Level:       LevelBeginner,
		Duration:    "40 mins",
		Icon:        IconBook,
		StepCount:   3,
	},
	{
		ID:          "characters",
		Title:       "Creating Characters",
		Description: "Build memorable, three-dimensional characters that readers will love and remember.",
		Level:       LevelIntermediate,
		Duration:    "50 mins",
		Icon:        IconUsers,
		StepCount:   3,
	},
	{
		ID:          "conflict",
		Title:       "Conflict",
		Description: "Discover how to create meaningful conflicts that drive your story forward.",
		Level:       LevelIntermediate,
		Duration:    "40 mins",
		Icon:        IconZap,
	},
	{
		ID:          "structure",
		Title:       "Story Structure",
		Description: "Learn the fundamental frameworks that make stories satisfying and complete.",
		Level:       LevelIntermediate,
		Duration:    "60 mins",
		Icon:        IconBuilding,
	},
	{
		ID:          "inciting-incidents",
		Title:       "Inciting Incidents",
		Description: "Master the critical moments that launch your story into motion.",
		Level:       LevelAdvanced,
		Duration:    "35 mins",
		Icon:        IconStar,
	},
	{
		ID:          "black-moment",
		Title:       "The Black Moment",
		Description: "Create powerful climactic moments that test your characters and readers.",
		Level:       LevelAdvanced,
		Duration:    "45 mins",
		Icon:        IconHeart,
	},
}

var modules = map[string]Module{
	"brainstorming": {
		ID:          "brainstorming",
		Title:       "Brainstorming",
		Description: "Learn to generate and organize creative ideas for your stories with proven techniques.",
		Level:       LevelBeginner,
		Duration:    "30 mins",
		Icon:        IconLightbulb,
		Steps: []Step{
			{
				ID:      "intro",
				Title:   "Welcome to Brainstorming",
				Content: "Brainstorming is the foundation of great storytelling. In this lesson, you'll learn proven techniques to generate creative ideas and organize them into compelling story concepts.",
				Kind:    StepTutorial,
			},
			{
				ID:      "what-if",
				Title:   `The "What If" Technique`,
				Content: `The most powerful brainstorming tool is asking "What if?" This simple question opens up endless possibilities for your stories.`,
				Kind:    StepTutorial,
			},
			{
				ID:       "practice-what-if",
				Title:    `Practice: Generate Your "What If" Ideas`,
				Content:  `Now it's your turn! Write down 5 different "What if" scenarios. Don't worry about making them perfect – just let your imagination flow.`,
				Kind:     StepExercise,
				AIPrompt: `I'm learning about brainstorming for creative writing. Can you help me understand how to create compelling "What if" scenarios for stories? Please provide some examples and guide me through the process.`,
			},
			{
				ID:      "mind-mapping",
				Title:   "Mind Mapping Your Ideas",
				Content: `Once you have your "What if" scenarios, it's time to expand them using mind mapping. This visual technique helps you explore connections and develop your ideas further.`,
				Kind:    StepTutorial,
			},
			{
				ID:       "create-mind-map",
				Title:    "Create Your Mind Map",
				Content:  `Choose your favorite "What if" scenario from the previous exercise and create a mind map around it. Think about characters, settings, conflicts, and outcomes.`,
				Kind:     StepExercise,
				AIPrompt: `I have a "What if" scenario for a story and I want to create a mind map to develop it further. Can you help me explore different aspects like characters, settings, conflicts, and potential plot developments?`,
			},
			{
				ID:      "organizing-ideas",
				Title:   "Organizing Your Ideas",
				Content: "Great brainstorming creates lots of ideas, but you need to organize them effectively. Learn how to sort, prioritize, and connect your creative concepts.",
				Kind:    StepTutorial,
			},
			{
				ID:       "final-concept",
				Title:    "Develop Your Story Concept",
				Content:  "Time to bring it all together! Use your brainstorming work to create a clear, compelling story concept that you're excited to develop further.",
				Kind:     StepPrompt,
				AIPrompt: "I've been brainstorming ideas for a story. Can you help me refine my concept and make sure it has all the essential elements for a compelling story? I'd like feedback on my story concept and suggestions for improvement.",
			},
		},
	},
	"plotting": {
		ID:          "plotting",
		Title:       "Plotting",
		Description: "Master the art of creating compelling plot structures that keep readers engaged.",
		Level:       LevelBeginner,
		Duration:    "40 mins",
		Icon:        IconBook,
		Steps: []Step{
			{
				ID:      "intro",
				Title:   "Understanding Plot Structure",
				Content: "Plot is the sequence of events that make up your story. A well-structured plot keeps readers engaged and creates a satisfying reading experience.",
				Kind:    StepTutorial,
			},
			{
				ID:      "three-act",
				Title:   "The Three-Act Structure",
				Content: "The most fundamental plot structure is the three-act format: Setup, Confrontation, and Resolution. This timeless structure works for stories of all lengths.",
				Kind:    StepTutorial,
			},
			{
				ID:       "plot-your-story",
				Title:    "Plot Your Story",
				Content:  "Take your story concept and organize it into the three-act structure. What happens in each act? How do the acts connect?",
				Kind:     StepExercise,
				AIPrompt: "I'm learning about the three-act story structure. Can you help me understand how to organize my story idea into Setup, Confrontation, and Resolution? I'd like guidance on what should happen in each act.",
			},
		},
	},
	"characters": {
		ID:          "characters",
		Title:       "Creating Characters",
		Description: "Build memorable, three-dimensional characters that readers will love and remember.",
		Level:       LevelIntermediate,
		Duration:    "50 mins",
		Icon:        IconUsers,
		Steps: []Step{
			{
				ID:      "intro",
				Title:   "Character Development Fundamentals",
				Content: "Great characters are the heart of great stories. Learn how to create characters that feel real and drive your plot forward.",
				Kind:    StepTutorial,
			},
			{
				ID:      "character-arc",
				Title:   "Character Arcs",
				Content: "Characters should change throughout your story. A character arc shows how your protagonist grows and evolves from beginning to end.",
				Kind:    StepTutorial,
			},
			{
				ID:       "create-character",
				Title:    "Create Your Main Character",
				Content:  "Design your protagonist with depth and complexity. What are their goals, fears, and flaws? How will they change?",
				Kind:     StepExercise,
				AIPrompt: "I'm creating a main character for my story. Can you help me develop a well-rounded protagonist with clear motivations, flaws, and a compelling character arc? I want to make sure they feel real and relatable.",
			},
		},
	},
}
