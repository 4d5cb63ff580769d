package ai

// QueryResult captures the structured output from the AI model.
type QueryResult struct {
	// Intent describes the user's primary goal.
	// Valid values: "recommend" (wants destination suggestions),
	// "packing" (wants packing help), "ask" (general travel question).
	Intent string `json:"intent"`

	// Destination is the place the user is asking about, when one was
	// mentioned. Nullable because not every question names a destination.
	Destination *string `json:"destination,omitempty"`

	// Interests lists activity categories detected in the message, mapped
	// onto the catalog's category names.
	Interests []string `json:"interests,omitempty"`

	// Reply is a short, friendly answer to the user.
	Reply string `json:"reply"`
}
