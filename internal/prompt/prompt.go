// Package prompt holds the instructions sent to the generation model for each
// explanation mode. Only the system instruction changes between modes.
package prompt

import (
	"errors"
	"fmt"

	"github.com/kdduha/explain-camera/backend/internal/models"
)

var ErrInvalidMode = errors.New("invalid mode")

var systemPrompts = map[models.Mode]string{
	models.ModeKid:     systemPromptKid,
	models.ModeStudent: systemPromptStudent,
	models.ModeExpert:  systemPromptExpert,
}

type Pair struct {
	System string
	User   string
}

func System(mode models.Mode) (string, error) {
	p, ok := systemPrompts[mode]
	if !ok {
		return "", fmt.Errorf("%w: %q, must be one of %v", ErrInvalidMode, mode, models.Modes)
	}
	return p, nil
}

func User() string {
	return userPrompt
}

func Get(mode models.Mode) (Pair, error) {
	system, err := System(mode)
	if err != nil {
		return Pair{}, err
	}
	return Pair{System: system, User: User()}, nil
}
