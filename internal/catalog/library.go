package catalog

import "github.com/616xold/rehab-budd-islem/pkg/models"

// defaultRoutines maps exercise type and difficulty to the ordered list
// of exercise ids making up one session.
var defaultRoutines = map[string]map[string][]string{
	models.TypePhysical: {
		DifficultyBeginner:     {"phys_b_1", "phys_b_2", "phys_b_3", "phys_b_4", "phys_b_5"},
		DifficultyIntermediate: {"phys_i_1", "phys_i_2", "phys_i_3", "phys_i_4", "phys_i_5"},
		DifficultyAdvanced:     {"phys_a_1", "phys_a_2", "phys_a_3", "phys_a_4", "phys_a_5"},
	},
	models.TypeSpeech: {
		DifficultyBeginner:     {"speech_b_1", "speech_b_2", "speech_b_3", "speech_b_4", "speech_b_5"},
		DifficultyIntermediate: {"speech_i_1", "speech_i_2", "speech_i_3", "speech_i_4", "speech_i_5"},
		DifficultyAdvanced:     {"speech_a_1", "speech_a_2", "speech_a_3", "speech_a_4", "speech_a_5"},
	},
	models.TypeCognitive: {
		DifficultyBeginner:     {"cog_b_1", "cog_b_2", "cog_b_3", "cog_b_4", "cog_b_5"},
		DifficultyIntermediate: {"cog_i_1", "cog_i_2", "cog_i_3", "cog_i_4", "cog_i_5"},
		DifficultyAdvanced:     {"cog_a_1", "cog_a_2", "cog_a_3", "cog_a_4", "cog_a_5"},
	},
}

// defaultLibrary is the built-in exercise content, organized by type and
// difficulty.
var defaultLibrary = []models.ExerciseRecord{
	// Physical - beginner
	{
		ID:           "phys_b_1",
		Name:         "Shoulder Rolls",
		Type:         models.TypePhysical,
		Difficulty:   DifficultyBeginner,
		Instructions: "Sit comfortably with your back straight. Slowly roll your shoulders forward in a circular motion. Do this 5 times, then roll your shoulders backward 5 times. Take your time with each movement.",
		Repetitions:  5,
		Rest:         5,
		Precautions:  "Stop if you feel pain or discomfort.",
	},
	{
		ID:           "phys_b_2",
		Name:         "Wrist Rotations",
		Type:         models.TypePhysical,
		Difficulty:   DifficultyBeginner,
		Instructions: "Hold your affected arm out in front of you with your elbow bent. Slowly rotate your wrist in a circular motion, 5 times clockwise and 5 times counterclockwise. Keep your movements smooth and controlled.",
		Repetitions:  5,
		Rest:         5,
		Precautions:  "Keep your movements within a comfortable range.",
	},
	{
		ID:           "phys_b_3",
		Name:         "Finger Taps",
		Type:         models.TypePhysical,
		Difficulty:   DifficultyBeginner,
		Instructions: "Place your hand flat on a table or your lap. Slowly lift each finger one at a time, then lower it back down. Start with your thumb and work through to your little finger. Repeat this sequence 5 times.",
		Repetitions:  5,
		Rest:         5,
		Precautions:  "Don't force any movement that causes pain.",
	},
	{
		ID:           "phys_b_4",
		Name:         "Ankle Rotations",
		Type:         models.TypePhysical,
		Difficulty:   DifficultyBeginner,
		Instructions: "Sit comfortably with your feet flat on the floor. Lift your affected foot slightly off the ground and rotate your ankle in a circular motion. Do 5 circles clockwise, then 5 circles counterclockwise.",
		Repetitions:  5,
		Rest:         5,
		Precautions:  "Keep the movement slow and controlled.",
	},
	{
		ID:           "phys_b_5",
		Name:         "Seated Trunk Rotations",
		Type:         models.TypePhysical,
		Difficulty:   DifficultyBeginner,
		Instructions: "Sit upright in a chair with your feet flat on the floor. Place your hands on your thighs. Slowly turn your upper body to the right as far as is comfortable. Hold for 2 seconds, then return to center. Now turn to the left. Repeat 5 times on each side.",
		Repetitions:  5,
		Rest:         5,
		Precautions:  "Keep your movements slow and controlled. Don't twist beyond what's comfortable.",
	},

	// Physical - intermediate
	{
		ID:           "phys_i_1",
		Name:         "Arm Raises",
		Type:         models.TypePhysical,
		Difficulty:   DifficultyIntermediate,
		Instructions: "Sit with your back straight. Slowly raise your affected arm out to the side, up to shoulder height if possible. Hold for 3 seconds, then slowly lower it back down. Repeat this 8 times, taking a short rest between repetitions.",
		Repetitions:  8,
		Rest:         10,
		Precautions:  "Only raise your arm as high as is comfortable. Stop if you feel pain.",
	},
	{
		ID:           "phys_i_2",
		Name:         "Elbow Bends",
		Type:         models.TypePhysical,
		Difficulty:   DifficultyIntermediate,
		Instructions: "Hold your affected arm out in front of you, palm facing up. Slowly bend your elbow to bring your hand toward your shoulder. Hold for 2 seconds, then slowly straighten your arm again. Repeat this 8 times.",
		Repetitions:  8,
		Rest:         10,
		Precautions:  "Keep your movements smooth and controlled.",
	},
	{
		ID:           "phys_i_3",
		Name:         "Knee Straightening",
		Type:         models.TypePhysical,
		Difficulty:   DifficultyIntermediate,
		Instructions: "Sit in a chair with your feet flat on the floor. Slowly straighten your affected leg until it's as straight as possible, without locking your knee. Hold for 3 seconds, then slowly lower it back down. Repeat 8 times.",
		Repetitions:  8,
		Rest:         10,
		Precautions:  "Don't lock your knee at full extension.",
	},
	{
		ID:           "phys_i_4",
		Name:         "Seated Marching",
		Type:         models.TypePhysical,
		Difficulty:   DifficultyIntermediate,
		Instructions: "Sit upright in a chair with your feet flat on the floor. Slowly lift your right knee up, then lower it back down. Now lift your left knee. Continue alternating for a total of 10 lifts, 5 on each side.",
		Repetitions:  10,
		Rest:         10,
		Precautions:  "Hold onto the chair if needed for balance.",
	},
	{
		ID:           "phys_i_5",
		Name:         "Finger-to-Nose",
		Type:         models.TypePhysical,
		Difficulty:   DifficultyIntermediate,
		Instructions: "Sit with your back straight. Extend your affected arm out to the side at shoulder height. Slowly bring your index finger to touch your nose, then extend your arm back out. Repeat this 8 times.",
		Repetitions:  8,
		Rest:         10,
		Precautions:  "Move slowly and focus on accuracy.",
	},

	// Physical - advanced
	{
		ID:           "phys_a_1",
		Name:         "Standing Balance",
		Type:         models.TypePhysical,
		Difficulty:   DifficultyAdvanced,
		Instructions: "Stand behind a sturdy chair, holding the back for support. Slowly lift one foot off the ground and try to balance on the other foot. Hold for 10 seconds if possible, then switch feet. Repeat 5 times on each side.",
		Repetitions:  5,
		Duration:     10,
		Rest:         15,
		Precautions:  "Always have something sturdy nearby to hold onto. Stop if you feel unsteady.",
	},
	{
		ID:           "phys_a_2",
		Name:         "Sit-to-Stand",
		Type:         models.TypePhysical,
		Difficulty:   DifficultyAdvanced,
		Instructions: "Sit in a chair with your feet flat on the floor. Slowly stand up without using your hands if possible. Once standing, pause for a moment, then slowly sit back down. Repeat 10 times.",
		Repetitions:  10,
		Rest:         15,
		Precautions:  "Use your hands for support if needed. Stop if you feel unsteady.",
	},
	{
		ID:           "phys_a_3",
		Name:         "Wall Push-Ups",
		Type:         models.TypePhysical,
		Difficulty:   DifficultyAdvanced,
		Instructions: "Stand facing a wall, about arm's length away. Place your palms flat against the wall at shoulder height. Slowly bend your elbows to bring your body toward the wall, then push back to the starting position. Repeat 10 times.",
		Repetitions:  10,
		Rest:         15,
		Precautions:  "Keep your body straight from head to heels. Stop if you feel pain in your shoulders or wrists.",
	},
	{
		ID:           "phys_a_4",
		Name:         "Heel-Toe Walking",
		Type:         models.TypePhysical,
		Difficulty:   DifficultyAdvanced,
		Instructions: "Stand near a wall or countertop for support if needed. Walk forward by placing the heel of one foot directly in front of the toes of your other foot. Take 10 steps forward, then 10 steps backward.",
		Repetitions:  10,
		Rest:         15,
		Precautions:  "Stay near something you can hold onto for balance. Look ahead, not down at your feet.",
	},
	{
		ID:           "phys_a_5",
		Name:         "Diagonal Arm Movements",
		Type:         models.TypePhysical,
		Difficulty:   DifficultyAdvanced,
		Instructions: "Stand or sit with your back straight. Start with your affected arm down by your side. Slowly raise it diagonally across your body, as if reaching for the opposite shoulder. Then return to the starting position. Repeat 10 times.",
		Repetitions:  10,
		Rest:         15,
		Precautions:  "Move slowly and with control. Stop if you feel pain.",
	},

	// Speech - beginner
	{
		ID:           "speech_b_1",
		Name:         "Deep Breathing",
		Type:         models.TypeSpeech,
		Difficulty:   DifficultyBeginner,
		Instructions: "Sit comfortably with your back straight. Take a deep breath in through your nose for a count of 4, hold for a count of 2, then exhale slowly through your mouth for a count of 6. Repeat this 5 times.",
		Repetitions:  5,
		Rest:         5,
		Precautions:  "Don't rush. Focus on smooth, controlled breathing.",
	},
	{
		ID:           "speech_b_2",
		Name:         "Lip Exercises",
		Type:         models.TypeSpeech,
		Difficulty:   DifficultyBeginner,
		Instructions: "Purse your lips tightly, hold for 5 seconds, then relax. Next, smile widely, hold for 5 seconds, then relax. Repeat this sequence 5 times.",
		Repetitions:  5,
		Rest:         5,
		Precautions:  "Don't strain your facial muscles.",
	},
	{
		ID:           "speech_b_3",
		Name:         "Tongue Exercises",
		Type:         models.TypeSpeech,
		Difficulty:   DifficultyBeginner,
		Instructions: "Stick your tongue out straight, hold for 5 seconds, then relax. Next, try to touch your chin with your tongue, hold, then relax. Finally, try to touch your nose with your tongue, hold, then relax. Repeat this sequence 5 times.",
		Repetitions:  5,
		Rest:         5,
		Precautions:  "Don't strain. It's okay if you can't reach your nose or chin.",
	},
	{
		ID:           "speech_b_4",
		Name:         "Vowel Sounds",
		Type:         models.TypeSpeech,
		Difficulty:   DifficultyBeginner,
		Instructions: "Take a deep breath and say 'Ahhh' for as long as you can on one breath. Rest, then repeat with 'Eeee', 'Oooo', 'Uhhh', and 'Iiii'. Try to make each sound last at least 5 seconds.",
		Repetitions:  5,
		Duration:     5,
		Rest:         5,
		Precautions:  "Don't strain your voice. Stop if you feel discomfort.",
	},
	{
		ID:           "speech_b_5",
		Name:         "Simple Word Repetition",
		Type:         models.TypeSpeech,
		Difficulty:   DifficultyBeginner,
		Instructions: "Repeat each word after me, speaking clearly: 'Cat', 'Dog', 'House', 'Tree', 'Book'. Say each word twice before moving to the next one.",
		Repetitions:  2,
		Rest:         5,
		Precautions:  "Focus on clarity rather than speed.",
	},

	// Speech - intermediate
	{
		ID:           "speech_i_1",
		Name:         "Tongue Twisters",
		Type:         models.TypeSpeech,
		Difficulty:   DifficultyIntermediate,
		Instructions: "Try to say this tongue twister slowly and clearly: 'She sells seashells by the seashore.' Repeat it 3 times, gradually increasing your speed while maintaining clarity.",
		Repetitions:  3,
		Rest:         10,
		Precautions:  "Focus on clarity first, then speed. Don't rush.",
	},
	{
		ID:           "speech_i_2",
		Name:         "Sentence Repetition",
		Type:         models.TypeSpeech,
		Difficulty:   DifficultyIntermediate,
		Instructions: "Repeat each sentence after me, focusing on clear pronunciation: 'The quick brown fox jumps over the lazy dog.' 'How much wood would a woodchuck chuck if a woodchuck could chuck wood?' 'Peter Piper picked a peck of pickled peppers.'",
		Repetitions:  2,
		Rest:         10,
		Precautions:  "Take your time. It's okay to break longer sentences into parts.",
	},
	{
		ID:           "speech_i_3",
		Name:         "Volume Control",
		Type:         models.TypeSpeech,
		Difficulty:   DifficultyIntermediate,
		Instructions: "Say the days of the week, starting with a whisper and gradually increasing your volume with each day. Then do the reverse, starting loud and getting softer: 'Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday.'",
		Repetitions:  2,
		Rest:         10,
		Precautions:  "Don't strain your voice at the loudest level.",
	},
	{
		ID:           "speech_i_4",
		Name:         "Reading Aloud",
		Type:         models.TypeSpeech,
		Difficulty:   DifficultyIntermediate,
		Instructions: "If you have a book or newspaper nearby, read a short paragraph aloud, focusing on clear pronunciation. If not, try reciting a familiar poem or song lyrics. Speak slowly and deliberately.",
		Repetitions:  1,
		Duration:     60,
		Rest:         10,
		Precautions:  "Take breaks if you get tired or frustrated.",
	},
	{
		ID:           "speech_i_5",
		Name:         "Word Categories",
		Type:         models.TypeSpeech,
		Difficulty:   DifficultyIntermediate,
		Instructions: "Name as many items as you can in each category. Take about 15 seconds per category: 'Fruits', 'Animals', 'Colors', 'Things in a kitchen', 'Types of transportation'.",
		Repetitions:  1,
		Duration:     75,
		Rest:         10,
		Precautions:  "Don't worry about how many items you can name. Focus on clear pronunciation.",
	},

	// Speech - advanced
	{
		ID:           "speech_a_1",
		Name:         "Storytelling",
		Type:         models.TypeSpeech,
		Difficulty:   DifficultyAdvanced,
		Instructions: "Create a short story about your day or a recent event. Speak for about 1 minute, focusing on clear speech and logical flow. Try to include details about who, what, when, where, and why.",
		Repetitions:  1,
		Duration:     60,
		Rest:         15,
		Precautions:  "Take your time. It's okay to pause and think.",
	},
	{
		ID:           "speech_a_2",
		Name:         "Debate Practice",
		Type:         models.TypeSpeech,
		Difficulty:   DifficultyAdvanced,
		Instructions: "Choose a simple topic like 'Dogs vs. Cats' or 'Summer vs. Winter'. Present arguments for both sides, speaking for about 30 seconds on each side. Focus on clear articulation and persuasive speaking.",
		Repetitions:  1,
		Duration:     60,
		Rest:         15,
		Precautions:  "This is challenging. Take breaks if needed.",
	},
	{
		ID:           "speech_a_3",
		Name:         "Complex Tongue Twisters",
		Type:         models.TypeSpeech,
		Difficulty:   DifficultyAdvanced,
		Instructions: "Try this challenging tongue twister: 'The sixth sick sheikh's sixth sheep's sick.' Start slowly, then gradually increase your speed while maintaining clarity. Repeat 5 times.",
		Repetitions:  5,
		Rest:         15,
		Precautions:  "Don't worry if it's difficult. The challenge helps strengthen speech muscles.",
	},
	{
		ID:           "speech_a_4",
		Name:         "Phone Conversation",
		Type:         models.TypeSpeech,
		Difficulty:   DifficultyAdvanced,
		Instructions: "Pretend you're making a phone call to schedule an appointment. Practice what you would say, including greeting, stating your purpose, responding to questions, and concluding the call. Speak clearly and at a natural pace.",
		Repetitions:  1,
		Duration:     60,
		Rest:         15,
		Precautions:  "This simulates real-world communication. Take your time.",
	},
	{
		ID:           "speech_a_5",
		Name:         "Speech Intonation",
		Type:         models.TypeSpeech,
		Difficulty:   DifficultyAdvanced,
		Instructions: "Say the sentence 'I didn't say she stole the money' seven times, each time emphasizing a different word. This changes the meaning each time. For example: 'I didn't say she stole the money', 'I didn't SAY she stole the money', and so on.",
		Repetitions:  7,
		Rest:         15,
		Precautions:  "Focus on how changing emphasis changes meaning.",
	},

	// Cognitive - beginner
	{
		ID:           "cog_b_1",
		Name:         "Number Sequence",
		Type:         models.TypeCognitive,
		Difficulty:   DifficultyBeginner,
		Instructions: "I'll say a sequence of numbers, and I'd like you to repeat them back to me. Let's start with: 3, 8, 2. Now repeat those numbers in the same order.",
		Repetitions:  3,
		Rest:         5,
		Precautions:  "Take your time. This exercise helps with short-term memory.",
	},
	{
		ID:           "cog_b_2",
		Name:         "Word Association",
		Type:         models.TypeCognitive,
		Difficulty:   DifficultyBeginner,
		Instructions: "I'll say a word, and I'd like you to respond with a related word. For example, if I say 'dog', you might say 'cat' or 'pet'. Let's try: 'Sun', 'Book', 'Car', 'Water', 'House'.",
		Repetitions:  5,
		Rest:         5,
		Precautions:  "There are no wrong answers. Say whatever comes to mind.",
	},
	{
		ID:           "cog_b_3",
		Name:         "Simple Math",
		Type:         models.TypeCognitive,
		Difficulty:   DifficultyBeginner,
		Instructions: "Let's practice some simple addition. What is 5 plus 3? What is 7 plus 2? What is 4 plus 6? What is 8 plus 1? What is 9 plus 5?",
		Repetitions:  5,
		Rest:         5,
		Precautions:  "Take your time. This exercise helps with processing and calculation skills.",
	},
	{
		ID:           "cog_b_4",
		Name:         "Object Naming",
		Type:         models.TypeCognitive,
		Difficulty:   DifficultyBeginner,
		Instructions: "Look around the room you're in and name 5 objects you can see. Try to be specific, for example, say 'wooden chair' instead of just 'chair'.",
		Repetitions:  1,
		Duration:     30,
		Rest:         5,
		Precautions:  "This exercise helps with word finding and observation skills.",
	},
	{
		ID:           "cog_b_5",
		Name:         "Day Orientation",
		Type:         models.TypeCognitive,
		Difficulty:   DifficultyBeginner,
		Instructions: "Let's practice orientation. What day of the week is it today? What month is it? What year is it? What season is it? Is it morning, afternoon, or evening right now?",
		Repetitions:  1,
		Rest:         5,
		Precautions:  "This exercise helps with temporal orientation.",
	},

	// Cognitive - intermediate
	{
		ID:           "cog_i_1",
		Name:         "Reverse Numbers",
		Type:         models.TypeCognitive,
		Difficulty:   DifficultyIntermediate,
		Instructions: "I'll say a sequence of numbers, and I'd like you to repeat them back to me in reverse order. For example, if I say '1, 2, 3', you would say '3, 2, 1'. Let's try: '4, 7, 1', '9, 2, 8, 5', '3, 6, 1, 9, 2'.",
		Repetitions:  3,
		Rest:         10,
		Precautions:  "This is challenging for working memory. Take your time.",
	},
	{
		ID:           "cog_i_2",
		Name:         "Word Categories",
		Type:         models.TypeCognitive,
		Difficulty:   DifficultyIntermediate,
		Instructions: "I'll give you a category, and I'd like you to name as many items in that category as you can in 15 seconds. Let's try: 'Fruits', 'Animals', 'Countries', 'Occupations', 'Vehicles'.",
		Repetitions:  5,
		Duration:     15,
		Rest:         10,
		Precautions:  "This exercise helps with word retrieval and semantic memory.",
	},
	{
		ID:           "cog_i_3",
		Name:         "Mental Math",
		Type:         models.TypeCognitive,
		Difficulty:   DifficultyIntermediate,
		Instructions: "Let's practice some mental math. What is 12 plus 15? What is 23 minus 7? What is 6 times 4? What is 20 divided by 5? What is 18 plus 27?",
		Repetitions:  5,
		Rest:         10,
		Precautions:  "Take your time. This exercise helps with calculation and concentration.",
	},
	{
		ID:           "cog_i_4",
		Name:         "Spelling Backward",
		Type:         models.TypeCognitive,
		Difficulty:   DifficultyIntermediate,
		Instructions: "I'll say a word, and I'd like you to spell it backward. For example, if I say 'dog', you would say 'd-o-g' spelled backward is 'g-o-d'. Let's try: 'cat', 'book', 'house', 'water', 'friend'.",
		Repetitions:  5,
		Rest:         10,
		Precautions:  "This exercise challenges working memory and concentration.",
	},
	{
		ID:           "cog_i_5",
		Name:         "Sequential Instructions",
		Type:         models.TypeCognitive,
		Difficulty:   DifficultyIntermediate,
		Instructions: "I'll give you a series of instructions to follow in order. Listen carefully: Touch your nose, then clap your hands, then touch your ear. Now, touch your knee, then your shoulder, then your forehead, then clap twice.",
		Repetitions:  2,
		Rest:         10,
		Precautions:  "This exercise helps with sequential processing and following directions.",
	},

	// Cognitive - advanced
	{
		ID:           "cog_a_1",
		Name:         "Complex Number Sequences",
		Type:         models.TypeCognitive,
		Difficulty:   DifficultyAdvanced,
		Instructions: "I'll say a sequence of numbers, and I'd like you to continue the pattern. For example, if I say '2, 4, 6', the pattern is adding 2, so you would say '8'. Let's try: '3, 6, 9, 12...', '1, 3, 6, 10...', '2, 4, 8, 16...'.",
		Repetitions:  3,
		Rest:         15,
		Precautions:  "This exercise challenges pattern recognition and logical thinking.",
	},
	{
		ID:           "cog_a_2",
		Name:         "Word Puzzles",
		Type:         models.TypeCognitive,
		Difficulty:   DifficultyAdvanced,
		Instructions: "I'll give you a word puzzle. Rearrange the letters to form a common word. For example, 'ATC' rearranges to 'CAT'. Let's try: 'TIEM' (TIME), 'USHOE' (HOUSE), 'ARPK' (PARK), 'YROTS' (STORY).",
		Repetitions:  4,
		Rest:         15,
		Precautions:  "This exercise challenges problem-solving and language skills.",
	},
	{
		ID:           "cog_a_3",
		Name:         "Abstract Reasoning",
		Type:         models.TypeCognitive,
		Difficulty:   DifficultyAdvanced,
		Instructions: "I'll give you a scenario with a problem to solve. A man needs to cross a river with a fox, a chicken, and a bag of grain. His boat can only carry himself and one other item. If left alone, the fox will eat the chicken, and the chicken will eat the grain. How can he get everything across safely?",
		Repetitions:  1,
		Duration:     120,
		Rest:         15,
		Precautions:  "This is a challenging puzzle. Take your time and think step by step.",
	},
	{
		ID:           "cog_a_4",
		Name:         "Memory Story",
		Type:         models.TypeCognitive,
		Difficulty:   DifficultyAdvanced,
		Instructions: "I'll tell you a short story, and then ask you questions about it. Listen carefully: 'John went to the store on Tuesday. He bought milk, bread, and apples. The milk cost $2.50, the bread was $3.00, and the apples were $4.25. He paid with a $20 bill.' Now, what day did John go to the store? What items did he buy? How much did he spend in total? How much change did he receive?",
		Repetitions:  1,
		Duration:     60,
		Rest:         15,
		Precautions:  "This exercise challenges auditory memory and calculation skills.",
	},
	{
		ID:           "cog_a_5",
		Name:         "Verbal Fluency",
		Type:         models.TypeCognitive,
		Difficulty:   DifficultyAdvanced,
		Instructions: "I'll give you a letter, and I'd like you to name as many words as you can that start with that letter in 30 seconds. Let's try with the letter 'S'. Ready? Go!",
		Repetitions:  1,
		Duration:     30,
		Rest:         15,
		Precautions:  "This exercise challenges word retrieval and verbal fluency.",
	},
}
