package cli

import "math/rand"

var generalCooldowns = []string{
	"Session complete. Close the file, take 3 slow breaths, and return to your day.",
	"Session complete. Stand up, drink water, and look at something far away for 30 seconds.",
	"Session complete. Write one real-world next step on paper, then stop here.",
	"Session complete. Take a short walk—no more prompts for the next 10 minutes.",
	"Session complete. Text one trusted person something ordinary and grounding.",
	"Session complete. Stretch your shoulders and unclench your jaw.",
	"Session complete. Save the summary, then step away from the screen.",
	"Session complete. Notice 5 things you can see, 4 you can feel, 3 you can hear.",
	"Session complete. Do one small task (dishes, laundry, fresh air) before returning.",
	"Session complete. This session is closed—rest is part of the method.",
}

var clinicalCooldowns = []string{
	"Session complete. Pause here and reconnect with your immediate surroundings.",
	"Session complete. If you feel unsettled, take a break and talk with someone supportive.",
	"Session complete. Grounding first—sleep, food, and routine matter more than analysis.",
}

// PickCooldown selects a closing message from the pool matching the session
// safety mode.
func PickCooldown(rng *rand.Rand, clinical bool) string {
	pool := generalCooldowns
	if clinical {
		pool = clinicalCooldowns
	}
	return pool[rng.Intn(len(pool))]
}
