package app

import (
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// cliPrompt asks for confirmation on the terminal outside the timer
// interface.
type cliPrompt struct {
	assumeYes bool
	// confirm runs the question interactively; replaced in tests.
	confirm func(question string) (bool, error)
}

func newCLIPrompt(assumeYes bool) *cliPrompt {
	return &cliPrompt{
		assumeYes: assumeYes,
		confirm:   askConfirm,
	}
}

func askConfirm(question string) (bool, error) {
	var ok bool

	err := huh.NewConfirm().
		Title(question).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()

	return ok, err
}

func (p *cliPrompt) Confirm(question string) bool {
	if p.assumeYes {
		return true
	}

	ok, err := p.confirm(question)
	if err != nil {
		// an aborted prompt is a no
		return false
	}

	return ok
}

func (p *cliPrompt) Notice(msg string) {
	pterm.Info.Println(msg)
}
