package interview

import "fmt"

// Fallback returns the built-in question set for a topic, used whenever
// generation is unavailable or produces an unusable set. The questions
// are generic study-habit and fundamentals prompts templated with the
// topic so a session always has exactly the standard shape.
func Fallback(topic string) []Question {
	return []Question{
		{
			ID:     1,
			Kind:   KindMCQ,
			Prompt: fmt.Sprintf("Which of these is the most effective first step when learning %s?", topic),
			Options: []string{
				"Memorize the entire official documentation",
				"Build a small project while reading the fundamentals",
				"Watch long tutorial playlists end to end",
				"Wait until you feel fully ready",
			},
			CorrectAnswer: "Build a small project while reading the fundamentals",
		},
		{
			ID:     2,
			Kind:   KindMCQ,
			Prompt: fmt.Sprintf("You hit a confusing error while practicing %s. What should you do first?", topic),
			Options: []string{
				"Read the error message carefully and reproduce it minimally",
				"Delete the project and start over",
				"Copy a random fix from a forum without reading it",
				"Ignore it and move to the next tutorial",
			},
			CorrectAnswer: "Read the error message carefully and reproduce it minimally",
		},
		{
			ID:     3,
			Kind:   KindMCQ,
			Prompt: fmt.Sprintf("In a %s interview, the interviewer asks something you do not know. The best response is:", topic),
			Options: []string{
				"Say what you do know, reason out loud, and admit the gap",
				"Change the subject to something you prepared",
				"Guess confidently and hope they do not notice",
				"Stay silent until they move on",
			},
			CorrectAnswer: "Say what you do know, reason out loud, and admit the gap",
		},
		{
			ID:     4,
			Kind:   KindCode,
			Prompt: fmt.Sprintf("Write a short snippet (any language) that demonstrates one core concept of %s you know well. Add a comment naming the concept.", topic),
			Hint:   "Pick the concept you would explain to a beginner first.",
		},
		{
			ID:     5,
			Kind:   KindCode,
			Prompt: fmt.Sprintf("Outline, in code or pseudocode, how you would structure a tiny starter project to practice %s.", topic),
			Hint:   "Think inputs, processing, output. Keep it under ten lines.",
		},
	}
}
