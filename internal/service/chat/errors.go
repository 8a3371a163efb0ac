package chat

import "errors"

var (
	ErrEmptyQuestion      = errors.New("question text is required")
	ErrBadVerification    = errors.New("verificationType must be correct or incorrect")
	ErrCorrectionRequired = errors.New("updatedText is required for an incorrect verdict")
	ErrNotFound           = errors.New("chat not found")
	ErrClinicNotFound     = errors.New("clinic not found")
	ErrAnswerUnavailable  = errors.New("AI answer unavailable")
)
