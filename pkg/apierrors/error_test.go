package apierrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"testing"

	"taskmanager/internal/core/domain"
	"taskmanager/pkg/apierrors"
	"taskmanager/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMain(m *testing.M) {
	// Initialize minimal translator for tests
	translator.Translator = i18n.NewBundle(language.English)
	err := translator.Translator.AddMessages(language.English, &i18n.Message{
		ID:    "test_key",
		Other: "Test message",
	})
	if err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func TestCreateError_ReturnsJsonErr(t *testing.T) {
	err := apierrors.CreateError(400, "test_key", "en")
	assert.Equal(t, 400, err.ErrDetails.Code)
	assert.Equal(t, "Test message", err.ErrDetails.Message)
}

func TestGetTransErrorMsg_FallsBackToEnglish(t *testing.T) {
	msg := apierrors.GetTransErrorMsg("test_key", "fr")
	assert.Equal(t, "Test message", msg)
}

func TestGetTransErrorMsg_FallbackToKey(t *testing.T) {
	msg := apierrors.GetTransErrorMsg("unknown_key", "en")
	assert.Equal(t, "unknown_key", msg)
}

func TestJsonErr_ErrorMethod(t *testing.T) {
	err := apierrors.CreateError(500, "test_key", "en")
	assert.Equal(t, "Code: 500, Message: Test message", err.Error())
}

func TestFromDomainError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		key    string
	}{
		{"not found", domain.ErrTaskNotFound, http.StatusNotFound, apierrors.MsgTaskNotFound},
		{"wrapped not found", fmt.Errorf("get task: %w", domain.ErrTaskNotFound), http.StatusNotFound, apierrors.MsgTaskNotFound},
		{"empty title", domain.ErrEmptyTitle, http.StatusBadRequest, apierrors.MsgInvalidTaskTitle},
		{"invalid status", domain.ErrInvalidStatus, http.StatusBadRequest, apierrors.MsgInvalidTaskStatus},
		{"other validation", fmt.Errorf("%w: bad", domain.ErrValidation), http.StatusBadRequest, apierrors.MsgInvalidTaskPayload},
		{"unexpected", errors.New("connection refused"), http.StatusInternalServerError, apierrors.MsgFailListTasks},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, key := apierrors.FromDomainError(tc.err, apierrors.MsgFailListTasks)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.key, key)
		})
	}
}
