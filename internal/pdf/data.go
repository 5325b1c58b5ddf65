package pdf

// Builtin returns the course content library: one guide and one
// reference card per dashboard module.
func Builtin() Library {
	return Library{Guides: builtinGuides, Cards: builtinCards}
}

var builtinGuides = map[string]Guide{
	"brainstorming": {
		Title:    "Story Ideas That Rock!",
		Subtitle: "A Fun Guide to Brainstorming Amazing Stories",
		ModuleID: "brainstorming",
		AgeGroup: "Perfect for ages 10 and up!",
		Sections: []Section{
			{
				Heading: "The Magic 'What If' Question",
				Body:    "The coolest way to create awesome stories is by asking 'What if?' It's like having a magic wand that turns boring stuff into exciting adventures!",
				Examples: []Example{
					{
						Title:       "School Adventures",
						Scenario:    "Going to school",
						Before:      "Emma walks to school like every other day.",
						After:       "What if Emma discovered that her school was actually a secret training academy for superheroes, and she was the only one who didn't know?",
						Explanation: "See how we took something super normal (going to school) and made it exciting? That's the magic of 'What if!'",
					},
					{
						Title:       "Pet Power!",
						Scenario:    "Having a pet",
						Before:      "Jake has a pet hamster named Fluffy.",
						After:       "What if Jake's hamster Fluffy could talk, but only Jake could hear him, and Fluffy knew all the neighborhood secrets?",
						Explanation: "Pets are perfect for 'What if' stories because everyone loves animals and can imagine them doing amazing things!",
					},
					{
						Title:       "Homework Heroes",
						Scenario:    "Doing homework",
						Before:      "Sarah sits down to do her math homework.",
						After:       "What if every math problem Sarah solved correctly made something magical happen in real life - but wrong answers caused chaos?",
						Explanation: "Even boring homework can become an adventure with the right 'What if' question!",
					},
				},
				Tips: []string{
					"Start with something you do every day (brushing teeth, walking the dog, doing homework)",
					"Add something magical, mysterious, or just plain weird",
					"Ask yourself: 'What would happen if...?'",
					"The weirder, the better! Don't worry if it sounds silly - silly can be awesome!",
				},
			},
			{
				Heading: "Mind Maps: Your Idea Explosion Tool",
				Body:    "Mind maps are like drawing a picture of your thoughts! You start with one idea in the middle, then draw lines to connect all the cool stuff you think of.",
				Examples: []Example{
					{
						Title:       "Pizza Mind Map Example",
						Scenario:    "Starting with 'Magic Pizza'",
						After:       "Magic Pizza -> Toppings that give powers -> Pepperoni = super speed -> Mushrooms = invisibility -> Cheese = flying -> Pizza delivery boy becomes superhero -> Must save the world from evil vegetables -> Broccoli army attacks -> Final battle at the school cafeteria",
						Explanation: "See how one silly idea (magic pizza) led to a whole adventure story? That's how mind maps work!",
					},
				},
				Exercises: []Exercise{
					{
						Title:        "Your First Mind Map",
						Instructions: "1. Pick something you love (video games, sports, your pet, etc.)\n2. Write it in the middle of a page\n3. Draw lines coming out like sun rays\n4. Write down everything you think of\n5. Keep adding more lines and ideas\n6. Don't stop until you have at least 20 ideas!",
						Example:      "If you pick 'My Dog,' you might think of: tricks, walks, treats, barking, other dogs, the park, squirrels, adventures, getting lost, finding treasure...",
						Workspace:    true,
						Difficulty:   DifficultyEasy,
					},
				},
			},
		},
	},

	"plotting": {
		Title:    "Building Epic Adventures!",
		Subtitle: "How to Plan Stories That Keep Everyone Reading",
		ModuleID: "plotting",
		AgeGroup: "Perfect for ages 10 and up!",
		Sections: []Section{
			{
				Heading: "The Story Roller Coaster",
				Body:    "Every great story is like a roller coaster - it starts slow, builds up excitement, has a big thrilling moment, then brings you safely back down. Let's learn how to build your own story roller coaster!",
				Examples: []Example{
					{
						Title:       "The Lost Puppy Adventure",
						Scenario:    "Finding a lost pet",
						Before:      "A kid finds a lost puppy and returns it.",
						After:       "Beginning: Maya finds a lost puppy in the park. Middle: She tries to find the owner but discovers the puppy has a magical collar that lets it talk - and it's actually a prince from another world who needs her help! End: Maya helps the puppy-prince save his kingdom and he gives her a magical friendship bracelet before returning home.",
						Explanation: "See how we started simple, added excitement in the middle, and ended with the problem solved plus a special reward?",
					},
					{
						Title:       "The Science Fair Disaster",
						Scenario:    "School project",
						Before:      "A student does a science project.",
						After:       "Beginning: Alex builds a volcano for the science fair. Middle: The volcano accidentally creates a real tiny dragon that starts causing chaos around school! End: Alex must catch the dragon and figure out how to send it back to where it came from before the principal finds out.",
						Explanation: "This story takes a normal school situation and makes it magical and exciting!",
					},
				},
				Tips: []string{
					"Start with your character in their normal world",
					"Something exciting or weird happens to change everything",
					"The character tries to fix things but it gets harder",
					"Finally, they solve the problem and learn something new",
				},
			},
		},
	},

	"characters": {
		Title:    "Creating Characters Kids Will Love!",
		Subtitle: "How to Make Characters That Feel Like Real Friends",
		ModuleID: "characters",
		AgeGroup: "Perfect for ages 10 and up!",
		Sections: []Section{
			{
				Heading: "Making Characters Feel Real",
				Body:    "The best characters feel like real people you'd want to hang out with (or maybe run away from if they're the bad guy!). Here's how to make characters that jump off the page.",
				Examples: []Example{
					{
						Title:       "The Shy Kid Who's Actually Brave",
						Scenario:    "School setting",
						Before:      "Alex is quiet and doesn't talk much.",
						After:       "Alex is super shy and never raises their hand in class, but when their little sister gets picked on by bullies, Alex becomes a fierce protector who stands up to kids twice their size.",
						Explanation: "This character is interesting because they have two sides - shy AND brave. Real people are like this too!",
					},
					{
						Title:       "The Class Clown with a Secret",
						Scenario:    "Friendship story",
						Before:      "Sam makes everyone laugh.",
						After:       "Sam tells jokes all day and makes everyone laugh, but secretly feels really lonely because they think people only like them when they're being funny, not when they're just being themselves.",
						Explanation: "Sometimes the funniest people are actually sad inside. This makes Sam feel real and makes us care about them.",
					},
					{
						Title:       "The Perfect Student's Problem",
						Scenario:    "Academic pressure",
						Before:      "Riley gets good grades.",
						After:       "Riley gets straight A's and everyone thinks they're perfect, but they're terrified of making mistakes and stay up all night worrying about tests. When they finally get a B+, they think their world is ending.",
						Explanation: "Even 'perfect' characters need problems to make them interesting and relatable!",
					},
				},
				Tips: []string{
					"Give your character something they're good at AND something they struggle with",
					"Think about what they want most and what they're most afraid of",
					"Make them act like real kids you know - with good days and bad days",
					"Give them a hobby, favorite food, or something that makes them unique",
				},
			},
		},
	},

	"conflict": {
		Title:    "Creating Epic Conflicts!",
		Subtitle: "How to Make Problems That Create Amazing Stories",
		ModuleID: "conflict",
		AgeGroup: "Perfect for ages 10 and up!",
		Sections: []Section{
			{
				Heading: "Problems Make Stories Exciting",
				Body:    "Without problems, stories would be super boring! Imagine reading about someone who woke up, had a perfect day, and went to bed happy. YAWN! Problems create excitement and make us want to keep reading.",
				Examples: []Example{
					{
						Title:       "The Friendship Dilemma",
						Scenario:    "Friend conflict",
						Before:      "Two friends disagree about something.",
						After:       "Maya's two best friends both invite her to their birthday parties on the same day. She can't hurt either friend's feelings, but she can't be in two places at once! She tries to go to both parties but ends up missing the important moments at each one.",
						Explanation: "This is a problem every kid can understand - wanting to make everyone happy but not being able to!",
					},
					{
						Title:       "The Pet Responsibility Challenge",
						Scenario:    "Family responsibility",
						Before:      "A kid wants a pet.",
						After:       "Jordan finally convinces their parents to get a dog, but they promise to take care of it completely. When the dog gets sick and needs expensive medicine, Jordan realizes they spent all their allowance on video games and can't help pay for it.",
						Explanation: "This shows how getting what we want can create new, harder problems!",
					},
				},
				Tips: []string{
					"Make problems that feel real to kids (friend drama, family rules, school stress)",
					"Start with small problems that get bigger",
					"Make your character choose between two things they both want",
					"Remember: the harder the problem, the more exciting the solution!",
				},
			},
		},
	},

	"structure": {
		Title:    "Building Amazing Story Structures!",
		Subtitle: "How to Organize Your Stories Like a Pro",
		ModuleID: "structure",
		AgeGroup: "Perfect for ages 10 and up!",
		Sections: []Section{
			{
				Heading: "The Story Roller Coaster",
				Body:    "Every great story is like a roller coaster ride! It starts slow (getting on), builds up excitement (climbing the big hill), has a thrilling moment (the big drop), then brings you safely back down. Let's learn how to build your own story roller coaster!",
				Examples: []Example{
					{
						Title:       "The Magic Backpack Adventure",
						Scenario:    "School adventure",
						Before:      "A kid finds a magic backpack.",
						After:       "Beginning: Sam finds a weird old backpack at a garage sale. Middle: Every time Sam puts something in the backpack, it comes to life! First a toy dinosaur, then a drawing of a dragon. But when Sam accidentally puts in homework about volcanoes, a real mini-volcano appears and starts causing chaos at school! End: Sam figures out how to reverse the magic and saves the day, but keeps the backpack for future adventures.",
						Explanation: "See how we started normal, added magic and problems, then solved everything with the character being smarter and braver?",
					},
				},
				Tips: []string{
					"Start with your character in their normal world",
					"Add something exciting that changes everything",
					"Make the problem get bigger and scarier",
					"Let your character save the day using what they've learned",
				},
			},
		},
	},

	"inciting-incidents": {
		Title:    "Story Starters That Hook Readers!",
		Subtitle: "How to Begin Stories That Nobody Can Put Down",
		ModuleID: "inciting-incidents",
		AgeGroup: "Perfect for ages 10 and up!",
		Sections: []Section{
			{
				Heading: "The Moment Everything Changes",
				Body:    "The inciting incident is like pressing the START button on a video game - it's the moment when the normal, boring world suddenly becomes an adventure! It's what makes readers think 'Whoa, what happens next?'",
				Examples: []Example{
					{
						Title:       "The Mysterious Text Message",
						Scenario:    "Modern mystery",
						Before:      "A kid gets a text message.",
						After:       "While doing homework, Zoe's phone buzzes with a text from an unknown number: 'The treasure is hidden where the old oak remembers the lightning.' But Zoe lives in a new neighborhood with no old trees, and she's never told anyone about her secret obsession with treasure hunting.",
						Explanation: "This incident is perfect because it's mysterious, personal, and makes us immediately want to know more!",
					},
					{
						Title:       "The Substitute Teacher Secret",
						Scenario:    "School mystery",
						Before:      "A new substitute teacher arrives.",
						After:       "When Ms. Rodriguez, the substitute teacher, accidentally drops her bag, instead of normal teacher stuff, out spills a map of the school, night-vision goggles, and a walkie-talkie. She quickly stuffs everything back and acts like nothing happened, but Alex saw everything.",
						Explanation: "This makes us wonder: What is the substitute teacher really doing? Is she a spy? A treasure hunter? We have to keep reading!",
					},
				},
				Tips: []string{
					"Make it happen early - don't wait too long!",
					"Make it weird, mysterious, or exciting",
					"Connect it to something your character cares about",
					"Make readers immediately ask 'What happens next?'",
				},
			},
		},
	},

	"black-moment": {
		Title:    "The Darkest Hour!",
		Subtitle: "How to Create Moments That Make Readers Worry",
		ModuleID: "black-moment",
		AgeGroup: "Perfect for ages 10 and up!",
		Sections: []Section{
			{
				Heading: "When Everything Goes Wrong",
				Body:    "The black moment is when your character feels like they've lost everything and can't win. It's like when you're playing a video game and you're down to your last life, facing the final boss, and it looks impossible. But that's what makes the victory so awesome!",
				Examples: []Example{
					{
						Title:       "The Science Fair Disaster",
						Scenario:    "School competition",
						Before:      "A student's project breaks.",
						After:       "The night before the science fair, Emma's volcano project - the one she's worked on for months - explodes and destroys not only her project but also her little brother's art homework and her mom's important work papers. Her family is angry, her project is ruined, and the science fair is tomorrow. She sits in her room thinking she's the worst daughter and student ever.",
						Explanation: "This feels terrible for Emma, but it's also when she'll discover she's stronger and more creative than she thought!",
					},
					{
						Title:       "The Lost Best Friend",
						Scenario:    "Friendship crisis",
						Before:      "Two friends have a fight.",
						After:       "After the biggest fight ever, Kai's best friend Maya won't talk to him, sits with different people at lunch, and even unfriended him online. When Kai overhears Maya telling someone 'I never want to see Kai again,' he realizes he might have lost his best friend forever. He feels completely alone and like it's all his fault.",
						Explanation: "This is every kid's worst nightmare - losing their best friend. But it's also when Kai will learn how to truly apologize and be a better friend.",
					},
				},
				Tips: []string{
					"Make your character feel like they've lost what matters most",
					"Show them thinking it's all their fault",
					"Make it feel really, really hard to fix",
					"But remember - this is when they'll find their inner strength!",
				},
			},
		},
	},
}

var builtinCards = map[string]ReferenceCard{
	"brainstorming": {
		Title: "Brainstorming Cheat Sheet",
		Tips: []string{
			"Ask 'What if?' about normal stuff",
			"Combine two random things",
			"Make mind maps with pictures",
			"Write down EVERY idea, even silly ones",
			"Start with what you know and love",
		},
		Examples: []string{
			"What if my backpack was magic?",
			"What if dogs could drive cars?",
			"What if homework did itself?",
		},
	},
	"plotting": {
		Title: "Story Planning Cheat Sheet",
		Tips: []string{
			"Start with normal life",
			"Add something exciting that changes everything",
			"Make problems get bigger and harder",
			"Character learns and grows",
			"Everything gets solved in an awesome way",
		},
		Examples: []string{
			"Normal -> Magic appears -> Chaos -> Learning -> Victory",
		},
	},
	"characters": {
		Title: "Character Creation Cheat Sheet",
		Tips: []string{
			"Give them something they're good at",
			"Give them something they struggle with",
			"What do they want most?",
			"What are they afraid of?",
			"What makes them unique?",
		},
		Examples: []string{
			"Shy but brave",
			"Funny but lonely",
			"Smart but forgetful",
		},
	},
	"conflict": {
		Title: "Problem-Making Cheat Sheet",
		Tips: []string{
			"Make problems kids can relate to",
			"Start small, then make it bigger",
			"Force characters to choose between good things",
			"The harder the problem, the better the solution",
		},
		Examples: []string{
			"Friend drama",
			"Family rules",
			"School stress",
			"Pet problems",
		},
	},
	"structure": {
		Title: "Story Structure Cheat Sheet",
		Tips: []string{
			"Beginning: Normal world + something changes",
			"Middle: Problems get bigger + character struggles",
			"End: Character wins using what they learned",
		},
		Examples: []string{
			"Like a roller coaster: slow start -> big climb -> exciting drop -> safe landing",
		},
	},
	"inciting-incidents": {
		Title: "Story Starters Cheat Sheet",
		Tips: []string{
			"Happen early in the story",
			"Make readers ask 'What happens next?'",
			"Connect to what character cares about",
			"Be mysterious, exciting, or weird",
		},
		Examples: []string{
			"Mysterious message",
			"Strange new person",
			"Weird discovery",
			"Unexpected invitation",
		},
	},
	"black-moment": {
		Title: "Dark Moments Cheat Sheet",
		Tips: []string{
			"Character loses what matters most",
			"Feels like it's all their fault",
			"Seems impossible to fix",
			"But this is when they find inner strength!",
		},
		Examples: []string{
			"Lost best friend",
			"Failed at something important",
			"Disappointed family",
			"Broke something precious",
		},
	},
}
