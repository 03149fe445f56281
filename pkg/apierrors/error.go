package apierrors

import (
	"errors"
	"fmt"
	"net/http"

	"taskmanager/internal/core/domain"
	"taskmanager/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
)

// JsonErr represents the JSON structure for apierrors.
type JsonErr struct {
	ErrDetails Err `json:"error"`
}

// Err represents the error with a code and message.
type Err struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.ErrDetails.Code, e.ErrDetails.Message)
}

// CreateError generates a JsonErr with a translated message.
func CreateError(code int, msgKey string, lang string) JsonErr {
	message := GetTransErrorMsg(msgKey, lang)
	return JsonErr{ErrDetails: Err{code, message}}
}

// FromDomainError maps a task error to its HTTP status and message key.
// Errors outside the domain taxonomy map to 500 with fallbackKey, so storage
// details never reach the response body.
func FromDomainError(err error, fallbackKey string) (int, string) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, MsgTaskNotFound
	case errors.Is(err, domain.ErrEmptyTitle):
		return http.StatusBadRequest, MsgInvalidTaskTitle
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest, MsgInvalidTaskStatus
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, MsgInvalidTaskPayload
	default:
		return http.StatusInternalServerError, fallbackKey
	}
}

// GetTransErrorMsg retrieves the translated error message.
func GetTransErrorMsg(msgKey string, lang string) string {
	if translator.Translator == nil {
		return msgKey
	}

	l := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn)
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: msgKey})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
