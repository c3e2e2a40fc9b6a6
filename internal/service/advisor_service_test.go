package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"margadarsaka-be/internal/constant"
	"margadarsaka-be/internal/dto"
	"margadarsaka-be/pkg/llm"
)

func newAdvisorService(provider *stubProvider) (IAdvisorService, *fakeUow) {
	factory, uow := newFakeFactory()
	svc := NewAdvisorService(factory, provider, newTestPubSub(), nopLogger{})
	return svc, uow
}

func TestCreateSessionSeedsSystemAndGreeting(t *testing.T) {
	svc, uow := newAdvisorService(&stubProvider{})
	userId := uuid.New()

	res, err := svc.CreateSession(context.Background(), userId)
	assert.NoError(t, err)
	assert.Equal(t, constant.AdvisorGreeting, res.Greeting)

	assert.Len(t, uow.messages, 2)
	assert.Equal(t, constant.ChatMessageRoleSystem, uow.messages[0].Role)
	assert.Equal(t, constant.AdvisorSystemPromptV1, uow.messages[0].Chat)
	assert.Equal(t, constant.ChatMessageRoleAssistant, uow.messages[1].Role)
}

func TestGetChatHistoryHidesSystemMessage(t *testing.T) {
	svc, _ := newAdvisorService(&stubProvider{})
	userId := uuid.New()

	created, err := svc.CreateSession(context.Background(), userId)
	assert.NoError(t, err)

	history, err := svc.GetChatHistory(context.Background(), userId, created.Id)
	assert.NoError(t, err)

	assert.Len(t, history, 1)
	assert.Equal(t, constant.ChatMessageRoleAssistant, history[0].Role)
	for _, msg := range history {
		assert.NotEqual(t, constant.ChatMessageRoleSystem, msg.Role)
	}
}

func TestSendChatPlainTurn(t *testing.T) {
	provider := &stubProvider{reply: "Consider building a portfolio first."}
	svc, uow := newAdvisorService(provider)
	userId := uuid.New()

	created, err := svc.CreateSession(context.Background(), userId)
	assert.NoError(t, err)

	res, err := svc.SendChat(context.Background(), userId, &dto.SendChatRequest{
		ChatSessionId: created.Id,
		Chat:          "How do I move into data science?",
	}, nil)
	assert.NoError(t, err)

	assert.Equal(t, "How do I move into data science?", res.Sent.Chat)
	assert.Equal(t, provider.reply, res.Reply.Chat)
	assert.Nil(t, res.ResumeScore)

	// System instruction is part of the assembled prompt even though it is
	// hidden from the transcript.
	assert.Contains(t, provider.lastPrompt, "system: ")
	assert.Contains(t, provider.lastPrompt, "user: How do I move into data science?")

	// system + greeting + user turn + reply
	assert.Len(t, uow.messages, 4)
}

func TestSendChatModelFailurePersistsNoTurn(t *testing.T) {
	provider := &stubProvider{err: fmt.Errorf("%w: upstream down", llm.ErrProviderUnavailable)}
	svc, uow := newAdvisorService(provider)
	userId := uuid.New()

	created, err := svc.CreateSession(context.Background(), userId)
	assert.NoError(t, err)

	_, err = svc.SendChat(context.Background(), userId, &dto.SendChatRequest{
		ChatSessionId: created.Id,
		Chat:          "How do I move into data science?",
	}, nil)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, llm.ErrProviderUnavailable))

	// Neither the user turn nor a reply lands in the transcript, only the
	// seeded system prompt and greeting remain.
	assert.Len(t, uow.messages, 2)
}

func TestSendChatResumeTurnStoresPlaceholderOnly(t *testing.T) {
	provider := &stubProvider{reply: "Strong resume, focus on projects."}
	svc, uow := newAdvisorService(provider)
	userId := uuid.New()

	created, err := svc.CreateSession(context.Background(), userId)
	assert.NoError(t, err)

	resumeText := "Experienced Go developer. Led a team of 5. Built microservices with Docker and Kubernetes."
	res, err := svc.SendChat(context.Background(), userId, &dto.SendChatRequest{
		ChatSessionId: created.Id,
	}, &ResumeUpload{
		Filename: "resume.txt",
		MIMEType: "text/plain",
		Data:     []byte(resumeText),
	})
	assert.NoError(t, err)

	// Transcript holds the placeholder, never the resume content.
	assert.Equal(t, constant.ResumeUploadedPlaceholder, res.Sent.Chat)
	for _, msg := range uow.messages {
		assert.NotContains(t, msg.Chat, "Experienced Go developer")
	}

	// The model sees the full extracted text, not the placeholder.
	assert.Contains(t, provider.lastPrompt, resumeText)
	assert.NotContains(t, provider.lastPrompt, constant.ResumeUploadedPlaceholder)

	assert.NotNil(t, res.ResumeScore)
	assert.Greater(t, res.ResumeScore.Score, 0)
}

func TestSendChatEmptyTurnRejected(t *testing.T) {
	provider := &stubProvider{reply: "nope"}
	svc, _ := newAdvisorService(provider)
	userId := uuid.New()

	created, err := svc.CreateSession(context.Background(), userId)
	assert.NoError(t, err)

	_, err = svc.SendChat(context.Background(), userId, &dto.SendChatRequest{
		ChatSessionId: created.Id,
	}, nil)
	assert.Error(t, err)
	assert.Equal(t, 0, provider.generateCalls)
}

func TestSendChatUnknownSessionRejected(t *testing.T) {
	provider := &stubProvider{reply: "nope"}
	svc, _ := newAdvisorService(provider)

	_, err := svc.SendChat(context.Background(), uuid.New(), &dto.SendChatRequest{
		ChatSessionId: uuid.New(),
		Chat:          "hello",
	}, nil)
	assert.Error(t, err)
	assert.Equal(t, 0, provider.generateCalls)
}

func TestDeleteSessionRemovesTranscript(t *testing.T) {
	svc, uow := newAdvisorService(&stubProvider{})
	userId := uuid.New()

	created, err := svc.CreateSession(context.Background(), userId)
	assert.NoError(t, err)

	err = svc.DeleteSession(context.Background(), userId, &dto.DeleteSessionRequest{
		ChatSessionId: created.Id,
	})
	assert.NoError(t, err)

	assert.Empty(t, uow.sessions)
	assert.Empty(t, uow.messages)
}
