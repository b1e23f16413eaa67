package ports

// Console is the interactive terminal the workflow talks to.
//
// Prompt, PromptInt and Confirm keep asking until they get an acceptable answer
// and only fail when input is exhausted.
type Console interface {
	// Say prints an informational line.
	Say(msg string)

	// Warn prints a problem the user should notice.
	Warn(msg string)

	// Prompt asks for a non-empty line of text.
	Prompt(label string) (string, error)

	// PromptInt asks for an integer.
	PromptInt(label string) (int, error)

	// Confirm asks a yes/no question, answering defaultYes on an empty line.
	Confirm(label string, defaultYes bool) (bool, error)
}
