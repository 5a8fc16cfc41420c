package actions

import (
	"math/rand"
	"strings"
)

const randomChildren = 100

var randomWords = []string{
	"got", "ability", "shop", "recall", "fruit", "easy", "dirty", "giant",
	"shaking", "ground", "weather", "lesson", "almost", "square", "forward",
	"bend", "cold", "broken", "distant", "adjective",
}

// randomName joins between 2 and limit random words.
func randomName(r *rand.Rand, limit int) string {
	if limit < 2 {
		limit = 2
	}
	count := 2 + r.Intn(limit-1)
	words := make([]string, count)
	for i := range words {
		words[i] = randomWords[r.Intn(len(randomWords))]
	}
	return strings.Join(words, " ")
}
