package validator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/s21platform/chat-gateway/internal/model"
	"github.com/s21platform/chat-gateway/internal/rest"
)

const (
	minPasswordLength = 8
	maxNicknameLength = 32
	maxRoomNameLength = 64
	maxMessageLength  = 2000
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateRegister(req *rest.RegisterRequest) error {
	if strings.TrimSpace(req.UserID) == "" {
		return model.NewValidationError("user_id", fmt.Errorf("user_id is required"))
	}

	nickname := strings.TrimSpace(req.Nickname)
	if nickname == "" {
		return model.NewValidationError("nickname", fmt.Errorf("nickname is required"))
	}
	if len([]rune(nickname)) > maxNicknameLength {
		return model.NewValidationError("nickname", fmt.Errorf("nickname exceeds maximum length of %d characters", maxNicknameLength))
	}
	if strings.ContainsAny(nickname, " \t\n") {
		return model.NewValidationError("nickname", fmt.Errorf("nickname cannot contain whitespace"))
	}

	return v.validatePassword(req.Password)
}

// validatePassword enforces the weak-password rule: at least 8 characters
// with at least one letter and one digit.
func (v *Validator) validatePassword(password string) error {
	if len([]rune(password)) < minPasswordLength {
		return model.NewValidationError("password", fmt.Errorf("password must be at least %d characters", minPasswordLength))
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return model.NewValidationError("password", fmt.Errorf("password must contain at least one letter and one digit"))
	}

	return nil
}

func (v *Validator) ValidateCreateRoom(req *rest.CreateRoomRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return model.NewValidationError("name", fmt.Errorf("room name is required"))
	}
	if len([]rune(name)) > maxRoomNameLength {
		return model.NewValidationError("name", fmt.Errorf("room name exceeds maximum length of %d characters", maxRoomNameLength))
	}

	return nil
}

func (v *Validator) ValidateSendMessage(req *rest.SendMessageRequest) error {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return model.NewValidationError("text", fmt.Errorf("text cannot be empty"))
	}
	if len([]rune(req.Text)) > maxMessageLength {
		return model.NewValidationError("text", fmt.Errorf("text exceeds maximum length of %d characters", maxMessageLength))
	}

	return nil
}
