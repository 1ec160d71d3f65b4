package models

import "fmt"

// Mode selects the audience an explanation is written for.
type Mode string

const (
	ModeKid     Mode = "kid"
	ModeStudent Mode = "student"
	ModeExpert  Mode = "expert"
)

// Modes lists the supported modes in display order.
var Modes = []Mode{ModeKid, ModeStudent, ModeExpert}

func (m Mode) Valid() bool {
	switch m {
	case ModeKid, ModeStudent, ModeExpert:
		return true
	}
	return false
}

func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("invalid mode %q: must be one of kid, student, expert", s)
	}
	return m, nil
}

// AnalyzeRequest represents request for analyze endpoint
type AnalyzeRequest struct {
	Image string `json:"image" example:"data:image/jpeg;base64,/9j/4AAQSkZJRgABAQ..."`
	Mode  Mode   `json:"mode" enums:"kid,student,expert" example:"kid"`
}

func (r AnalyzeRequest) Validate() error {
	if r.Image == "" {
		return fmt.Errorf("image is empty")
	}
	if _, err := ParseMode(string(r.Mode)); err != nil {
		return err
	}
	return nil
}

type AnalyzeResponse struct {
	Explanation string `json:"explanation" example:"I see a fluffy dog! It looks very happy."`
	Mode        Mode   `json:"mode" example:"kid"`
	Timestamp   string `json:"timestamp" example:"2026-01-02T15:04:05Z"`
	Success     bool   `json:"success" example:"true"`
}

type ErrorResponse struct {
	Detail string `json:"detail" example:"Image too small (minimum 100x100 pixels)"`
}
