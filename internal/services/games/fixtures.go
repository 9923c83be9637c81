package games

// Static content catalogs. These are fixtures, not algorithmic data: in
// production they would be served from a CDN or a content pipeline.

var imageCatalog = []ImageItem{
	{
		ID:          1,
		URL:         "https://images.unsplash.com/photo-1673255745677-e36f618550d1?fm=jpg&q=85",
		IsAI:        true,
		Description: "Futuristic AI Robot",
	},
	{
		ID:          2,
		URL:         "https://images.unsplash.com/photo-1549925245-f20a1bac6454?fm=jpg&q=85",
		IsAI:        false,
		Description: "Brain Visualization",
	},
	{
		ID:          3,
		URL:         "https://images.pexels.com/photos/8438864/pexels-photo-8438864.jpeg",
		IsAI:        false,
		Description: "Robot Playing Chess",
	},
	{
		ID:          4,
		URL:         "https://images.pexels.com/photos/8438954/pexels-photo-8438954.jpeg",
		IsAI:        false,
		Description: "AI vs Human Chess Match",
	},
	{
		ID:          5,
		URL:         "https://images.unsplash.com/photo-1677442136019-21780ecad995?fm=jpg&q=85",
		IsAI:        true,
		Description: "AI Technology",
	},
}

var textCatalog = []TextItem{
	{
		ID:     1,
		Text:   "The sun dipped below the horizon, painting the sky in brilliant shades of orange and pink. Sarah watched from her window, lost in the beauty of the moment.",
		IsAI:   false,
		Source: "Human Writer",
	},
	{
		ID:     2,
		Text:   "As an AI language model, I can assist you in generating content that meets your specific requirements. However, it's important to note that the effectiveness of this approach may vary depending on various factors.",
		IsAI:   true,
		Source: "AI Generated",
	},
	{
		ID:     3,
		Text:   "Innovation thrives at the intersection of creativity and technology. When human imagination meets computational power, extraordinary possibilities emerge from the synthesis.",
		IsAI:   true,
		Source: "AI Generated",
	},
	{
		ID:     4,
		Text:   "I remember my grandmother's kitchen always smelled like cinnamon and fresh bread. She'd tell us stories about her childhood while we helped her knead dough for Sunday dinner.",
		IsAI:   false,
		Source: "Human Writer",
	},
}

var audioCatalog = []AudioClip{
	{
		ID:          1,
		URL:         "https://www.soundjay.com/misc/sounds/bell-ringing-05.wav",
		IsAI:        false,
		Description: "Human-recorded bell sound",
		Duration:    3,
	},
	{
		ID:          2,
		URL:         "https://www.soundjay.com/buttons/sounds/button-3.wav",
		IsAI:        true,
		Description: "AI-generated button sound",
		Duration:    2,
	},
	{
		ID:          3,
		URL:         "https://www.soundjay.com/buttons/sounds/button-09.wav",
		IsAI:        false,
		Description: "Human-recorded click",
		Duration:    1,
	},
	{
		ID:          4,
		URL:         "https://www.soundjay.com/misc/sounds/bell-ringing-04.wav",
		IsAI:        true,
		Description: "AI-synthesized bell",
		Duration:    4,
	},
}

var writingPrompts = []string{
	"Write a short story about a time traveler who can only move forward one day at a time.",
	"Describe a world where colors have disappeared and one person can still see them.",
	"Tell the story of the last bookstore on Earth.",
	"Write about a character who can hear other people's thoughts but wishes they couldn't.",
	"Describe a day in the life of a superhero's pet.",
	"Write a story that takes place entirely in an elevator.",
	"Tell about a world where lying is impossible.",
	"Write about someone who finds a door that wasn't there yesterday.",
}

// Canned AI writings for the prompts that have one; the fallback response
// stands in for prompts without a dedicated sample
var aiWritings = map[string]string{
	writingPrompts[0]: "Each morning, Sarah woke knowing she had moved one day closer to her destination. The time machine hummed softly, its blue light indicating another successful jump. She couldn't go back, couldn't skip ahead - just one day forward, always forward. Today marked day 1,247 of her journey to find the cure that would save her daughter, still frozen in 2024.",
	writingPrompts[1]: "The world turned grey on a Tuesday. Everyone woke to find their vibrant reality drained of hue, except Maya. She alone saw the crimson roses, the azure sky, the golden sunlight. Maya became the keeper of color in a monochrome world, painting memories for those who could no longer see beauty.",
	writingPrompts[2]: "The sign read 'Miller's Books - Est. 1952' in faded letters. Inside, dust motes danced through streams of sunlight as Elena arranged the final shipment that would never come. Digital readers had won the war, and she was the last holdout. The books whispered their tales, hoping someone would still listen.",
}

const fallbackAIWriting = "The AI pondered the prompt deeply, crafting a response that balanced creativity with logic, weaving words into a tapestry of meaning that reflected both human emotion and artificial precision."

type patternFixture struct {
	Pattern string
	Next    string
	Options []string
}

var patternFixtures = []patternFixture{
	{Pattern: "ABAB", Next: "A", Options: []string{"A", "B", "C", "D"}},
	{Pattern: "AABB", Next: "A", Options: []string{"A", "B", "C", "D"}},
	{Pattern: "ABCD", Next: "A", Options: []string{"A", "B", "C", "D"}},
}

type logicGridFixture struct {
	Question string
	Options  []string
	Answer   string
}

var logicGridFixtures = []logicGridFixture{
	{
		Question: "If all cats are animals, and some animals are pets, which statement is true?",
		Options:  []string{"All cats are pets", "Some cats are pets", "No cats are pets", "Cannot be determined"},
		Answer:   "Cannot be determined",
	},
	{
		Question: "In a race, if Alice finishes before Bob, and Bob finishes before Charlie, who finishes first?",
		Options:  []string{"Alice", "Bob", "Charlie", "Cannot be determined"},
		Answer:   "Alice",
	},
}
