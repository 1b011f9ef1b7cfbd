package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commondto "github.com/conseccomms/conseccomms/internal/application/common/dto"
	feedbackdto "github.com/conseccomms/conseccomms/internal/application/feedback/dto"
	"github.com/conseccomms/conseccomms/internal/application/feedback/usecases"
	"github.com/conseccomms/conseccomms/internal/domain/setting"
	"github.com/conseccomms/conseccomms/internal/interfaces/http/handlers/testutil"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

type mockSubmitFeedbackUC struct {
	got    usecases.SubmitFeedbackCommand
	called bool
}

func (m *mockSubmitFeedbackUC) Execute(_ context.Context, cmd usecases.SubmitFeedbackCommand) (*feedbackdto.FeedbackDTO, error) {
	m.called = true
	m.got = cmd
	return &feedbackdto.FeedbackDTO{ID: 1, Message: cmd.Message, Category: "bug", Sentiment: "negative"}, nil
}

type mockListFeedbackUC struct {
	got usecases.ListFeedbackQuery
}

func (m *mockListFeedbackUC) Execute(_ context.Context, q usecases.ListFeedbackQuery) (*commondto.ListResult[feedbackdto.FeedbackDTO], error) {
	m.got = q
	return commondto.NewListResult[feedbackdto.FeedbackDTO](nil, 0, q.Page, q.PageSize), nil
}

func TestSubmitFeedback(t *testing.T) {
	submit := &mockSubmitFeedbackUC{}
	h := NewFeedbackHandler(submit, &mockListFeedbackUC{}, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/feedback", map[string]string{
		"message": "The export button is broken",
	})
	testutil.SetAuthContext(c, 2)
	testutil.SetSettingsContext(c, setting.Defaults())

	h.SubmitFeedback(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(2), submit.got.UserID)
	assert.True(t, submit.got.Preferences.AIInsights)
}

func TestSubmitFeedbackValidation(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{"empty", ""},
		{"too long", strings.Repeat("a", 5001)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			submit := &mockSubmitFeedbackUC{}
			h := NewFeedbackHandler(submit, &mockListFeedbackUC{}, logger.NewNopLogger())

			c, w := testutil.NewTestContext(http.MethodPost, "/feedback", map[string]string{"message": tt.message})
			testutil.SetAuthContext(c, 2)

			h.SubmitFeedback(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, submit.called)
		})
	}
}

func TestListFeedbackEmpty(t *testing.T) {
	list := &mockListFeedbackUC{}
	h := NewFeedbackHandler(&mockSubmitFeedbackUC{}, list, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/feedback", nil)
	testutil.SetAuthContext(c, 2)
	testutil.SetQueryParams(c, map[string]string{"page": "2", "page_size": "5"})

	h.ListFeedback(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, list.got.Page)
	assert.Equal(t, 5, list.got.PageSize)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var data testutil.ListData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.JSONEq(t, `[]`, string(data.Items))
}
