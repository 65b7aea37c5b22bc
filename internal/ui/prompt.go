package ui

import (
	"github.com/AlecAivazis/survey/v2"
)

// Confirm asks the user a yes/no question, defaulting to no.
func Confirm(message string) (bool, error) {
	confirmed := false
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}

// Input asks the user for a single line of text.
func Input(message, defaultValue string) (string, error) {
	answer := ""
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", err
	}
	return answer, nil
}

// Password asks the user for a secret without echoing it.
func Password(message string) (string, error) {
	answer := ""
	prompt := &survey.Password{Message: message}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", err
	}
	return answer, nil
}
