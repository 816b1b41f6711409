package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
)

// ConfirmFunc prompts the user for confirmation and returns true if confirmed.
type ConfirmFunc func(prompt string) (bool, error)

// NewConfirmFunc creates a ConfirmFunc using huh's interactive confirm component.
func NewConfirmFunc() ConfirmFunc {
	return func(prompt string) (bool, error) {
		var result bool
		err := huh.NewConfirm().
			Title(prompt).
			Value(&result).
			Run()
		return result, err
	}
}

// AlwaysYes returns a ConfirmFunc that always confirms.
func AlwaysYes() ConfirmFunc {
	return func(_ string) (bool, error) {
		return true, nil
	}
}

// PromptFunc prompts the user for free-text input and returns the response.
// The initial value is shown pre-filled.
type PromptFunc func(prompt string, initial string) (string, error)

// NewPromptFunc creates a PromptFunc using huh's interactive input component.
func NewPromptFunc() PromptFunc {
	return func(prompt string, initial string) (string, error) {
		result := initial
		err := huh.NewInput().
			Title(prompt).
			Value(&result).
			Run()
		return result, err
	}
}

// PromptKit bundles all prompt function types for dependency injection.
type PromptKit struct {
	Prompt  PromptFunc
	Confirm ConfirmFunc
}

// NewPromptKit creates a PromptKit with huh-based interactive implementations.
func NewPromptKit() PromptKit {
	return PromptKit{
		Prompt:  NewPromptFunc(),
		Confirm: NewConfirmFunc(),
	}
}

// NewAccessiblePromptKit creates a PromptKit running huh forms in accessible
// mode, one plain answer per line from in. It is used when stdin is not a
// terminal. An empty answer keeps the initial value; running out of input
// fails a prompt and declines a confirmation.
func NewAccessiblePromptKit(in io.Reader, out io.Writer) PromptKit {
	answers := &answerReader{r: bufio.NewReader(in)}

	run := func(field huh.Field) error {
		return huh.NewForm(huh.NewGroup(field)).
			WithAccessible(true).
			WithInput(answers).
			WithOutput(out).
			Run()
	}

	return PromptKit{
		Prompt: func(prompt string, initial string) (string, error) {
			if answers.eof {
				return "", io.EOF
			}
			title := prompt
			if initial != "" {
				title = fmt.Sprintf("%s [%s]", prompt, initial)
			}
			result := initial
			answers.delivered = 0
			if err := run(huh.NewInput().Title(title).Value(&result)); err != nil {
				return "", err
			}
			if answers.delivered == 0 {
				return "", io.EOF
			}
			return result, nil
		},
		Confirm: func(prompt string) (bool, error) {
			if answers.eof {
				return false, nil
			}
			var confirmed bool
			if err := run(huh.NewConfirm().Title(prompt).Value(&confirmed)); err != nil {
				return false, err
			}
			return confirmed, nil
		},
	}
}

// answerReader hands huh at most one line per Read. huh scans every field
// with a fresh scanner, so a larger read would swallow later answers.
type answerReader struct {
	r         *bufio.Reader
	eof       bool
	delivered int
}

func (a *answerReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		b, err := a.r.ReadByte()
		if err != nil {
			if err == io.EOF {
				a.eof = true
			}
			if n > 0 {
				break
			}
			return 0, err
		}
		p[n] = b
		n++
		if b == '\n' {
			break
		}
	}
	a.delivered += n
	return n, nil
}
