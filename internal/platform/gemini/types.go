package gemini

// promptData is the input to the prompt template.
type promptData struct {
	// Key is the two-digit number to find words for.
	Key string

	// FirstSounds and SecondSounds are the consonant sound families for the
	// key's two digits, e.g. "t, d, th" for digit 1.
	FirstSounds  string
	SecondSounds string

	// Exclude lists words already in the user's table, comma-separated.
	// Empty when there is nothing to exclude.
	Exclude string
}

// responseSchema is the JSON structure the model is instructed to return.
type responseSchema struct {
	Words []string `json:"words"`
}
