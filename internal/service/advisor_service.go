package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"margadarsaka-be/internal/constant"
	"margadarsaka-be/internal/dto"
	"margadarsaka-be/internal/entity"
	"margadarsaka-be/internal/pkg/logger"
	"margadarsaka-be/internal/repository/specification"
	"margadarsaka-be/internal/repository/unitofwork"
	"margadarsaka-be/pkg/document"
	"margadarsaka-be/pkg/events"
	"margadarsaka-be/pkg/llm"
	"margadarsaka-be/pkg/prompt"
	"margadarsaka-be/pkg/resume"
)

// ResumeUpload carries an uploaded resume through one chat turn. The raw
// bytes never outlive the request.
type ResumeUpload struct {
	Filename string
	MIMEType string
	Data     []byte
}

type IAdvisorService interface {
	CreateSession(ctx context.Context, userId uuid.UUID) (*dto.CreateSessionResponse, error)
	GetAllSessions(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllSessionsResponse, error)
	GetChatHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error)
	SendChat(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest, upload *ResumeUpload) (*dto.SendChatResponse, error)
	DeleteSession(ctx context.Context, userId uuid.UUID, req *dto.DeleteSessionRequest) error
}

type advisorService struct {
	uowFactory  unitofwork.RepositoryFactory
	llmProvider llm.Provider
	pubSub      *gochannel.GoChannel
	log         logger.ILogger
}

func NewAdvisorService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.Provider,
	pubSub *gochannel.GoChannel,
	log logger.ILogger,
) IAdvisorService {
	return &advisorService{
		uowFactory:  uowFactory,
		llmProvider: llmProvider,
		pubSub:      pubSub,
		log:         log,
	}
}

// CreateSession seeds the transcript with the hidden system instruction and
// the visible greeting.
func (s *advisorService) CreateSession(ctx context.Context, userId uuid.UUID) (*dto.CreateSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	chatSession := entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     "Career advisor session",
		CreatedAt: now,
	}

	systemMessage := entity.ChatMessage{
		Id:            uuid.New(),
		Chat:          constant.AdvisorSystemPromptV1,
		Role:          constant.ChatMessageRoleSystem,
		ChatSessionId: chatSession.Id,
		CreatedAt:     now,
	}

	greeting := entity.ChatMessage{
		Id:            uuid.New(),
		Chat:          constant.AdvisorGreeting,
		Role:          constant.ChatMessageRoleAssistant,
		ChatSessionId: chatSession.Id,
		CreatedAt:     now.Add(1 * time.Second),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatSessionRepository().Create(ctx, &chatSession); err != nil {
		return nil, err
	}
	if err := uow.ChatMessageRepository().Create(ctx, &systemMessage); err != nil {
		return nil, err
	}
	if err := uow.ChatMessageRepository().Create(ctx, &greeting); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.CreateSessionResponse{
		Id:       chatSession.Id,
		Greeting: greeting.Chat,
	}, nil
}

func (s *advisorService) GetAllSessions(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllSessionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chatSessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.GetAllSessionsResponse, 0, len(chatSessions))
	for _, sess := range chatSessions {
		response = append(response, &dto.GetAllSessionsResponse{
			Id:        sess.Id,
			Title:     sess.Title,
			CreatedAt: sess.CreatedAt,
			UpdatedAt: sess.UpdatedAt,
		})
	}

	return response, nil
}

// GetChatHistory returns the displayed transcript. The system instruction is
// never part of it.
func (s *advisorService) GetChatHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.verifySession(ctx, uow, userId, sessionId); err != nil {
		return nil, err
	}

	chatMessages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.ExcludeRole{Role: constant.ChatMessageRoleSystem},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	resp := make([]*dto.GetChatHistoryResponse, 0, len(chatMessages))
	for _, msg := range chatMessages {
		resp = append(resp, &dto.GetChatHistoryResponse{
			Id:        msg.Id,
			Role:      msg.Role,
			Chat:      msg.Chat,
			CreatedAt: msg.CreatedAt,
		})
	}

	return resp, nil
}

// SendChat runs one advisor turn. For upload turns the extracted resume text
// goes to the model while only the placeholder lands in the transcript.
func (s *advisorService) SendChat(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest, upload *ResumeUpload) (*dto.SendChatResponse, error) {
	if req.Chat == "" && upload == nil {
		return nil, fmt.Errorf("empty message")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.verifySession(ctx, uow, userId, req.ChatSessionId); err != nil {
		return nil, err
	}

	// Full transcript, system message included: prompt assembly needs it.
	existing, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: req.ChatSessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	history := make([]llm.Message, 0, len(existing))
	for _, msg := range existing {
		history = append(history, llm.Message{Role: msg.Role, Content: msg.Chat})
	}

	displayedContent := req.Chat
	promptContent := req.Chat
	var resumeScore *dto.ResumeScoreDTO

	if upload != nil {
		extracted, err := document.ExtractText(bytes.NewReader(upload.Data), int64(len(upload.Data)), upload.MIMEType)
		if err != nil {
			s.log.Error("advisor", "resume extraction failed", map[string]interface{}{"error": err.Error(), "filename": upload.Filename})
			return nil, fmt.Errorf("could not read the uploaded resume")
		}

		displayedContent = constant.ResumeUploadedPlaceholder
		promptContent = extracted
		if req.Chat != "" {
			promptContent = extracted + "\n\n" + req.Chat
		}

		analysis := resume.Score(extracted)
		resumeScore = &dto.ResumeScoreDTO{
			Score:        analysis.Score,
			Stars:        analysis.Stars,
			KeywordHits:  len(analysis.KeywordHits),
			VerbHits:     analysis.VerbHits,
			MissingParts: analysis.MissingParts,
		}

		s.publishUsage(events.UsageEvent{
			Kind:       events.KindResumeUploaded,
			UserID:     userId.String(),
			SessionID:  req.ChatSessionId.String(),
			OccurredAt: time.Now(),
		})
	}

	fullPrompt := prompt.NewChatBuilder(history, promptContent).Build()

	reply, err := s.llmProvider.Generate(ctx, fullPrompt)
	if err != nil {
		s.log.Error("advisor", "model call failed", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	now := time.Now()
	userMessage := entity.ChatMessage{
		Id:            uuid.New(),
		Chat:          displayedContent,
		Role:          constant.ChatMessageRoleUser,
		ChatSessionId: req.ChatSessionId,
		CreatedAt:     now,
	}
	assistantMessage := entity.ChatMessage{
		Id:            uuid.New(),
		Chat:          reply,
		Role:          constant.ChatMessageRoleAssistant,
		ChatSessionId: req.ChatSessionId,
		CreatedAt:     now.Add(1 * time.Second),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().Create(ctx, &userMessage); err != nil {
		return nil, err
	}
	if err := uow.ChatMessageRepository().Create(ctx, &assistantMessage); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishUsage(events.UsageEvent{
		Kind:       events.KindChatTurn,
		UserID:     userId.String(),
		SessionID:  req.ChatSessionId.String(),
		PromptSize: len(fullPrompt),
		OccurredAt: time.Now(),
	})

	return &dto.SendChatResponse{
		ChatSessionId: req.ChatSessionId,
		Sent: &dto.SendChatResponseChat{
			Id:        userMessage.Id,
			Chat:      userMessage.Chat,
			Role:      userMessage.Role,
			CreatedAt: userMessage.CreatedAt,
		},
		Reply: &dto.SendChatResponseChat{
			Id:        assistantMessage.Id,
			Chat:      assistantMessage.Chat,
			Role:      assistantMessage.Role,
			CreatedAt: assistantMessage.CreatedAt,
		},
		ResumeScore: resumeScore,
	}, nil
}

func (s *advisorService) DeleteSession(ctx context.Context, userId uuid.UUID, req *dto.DeleteSessionRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.verifySession(ctx, uow, userId, req.ChatSessionId); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteByChatSessionId(ctx, req.ChatSessionId); err != nil {
		return err
	}
	if err := uow.ChatSessionRepository().Delete(ctx, req.ChatSessionId); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *advisorService) verifySession(ctx context.Context, uow unitofwork.UnitOfWork, userId, sessionId uuid.UUID) (*entity.ChatSession, error) {
	sess, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("session not found or access denied")
	}
	return sess, nil
}

func (s *advisorService) publishUsage(evt events.UsageEvent) {
	payload, err := json.Marshal(evt)
	if err != nil {
		return
	}
	if err := s.pubSub.Publish(events.TopicUsage, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		s.log.Warn("advisor", "usage publish failed", map[string]interface{}{"error": err.Error()})
	}
}
