package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"margadarsaka-be/internal/dto"
	"margadarsaka-be/internal/entity"
	"margadarsaka-be/internal/pkg/logger"
	"margadarsaka-be/internal/questionbank"
	"margadarsaka-be/internal/repository/memory"
	"margadarsaka-be/internal/repository/specification"
	"margadarsaka-be/internal/repository/unitofwork"
	"margadarsaka-be/pkg/events"
	"margadarsaka-be/pkg/llm"
	"margadarsaka-be/pkg/prompt"
	"margadarsaka-be/pkg/store"
)

type IAssessmentService interface {
	GetQuestions(ctx context.Context) *dto.GetQuestionsResponse
	SelectAnswer(ctx context.Context, userId uuid.UUID, req *dto.SelectAnswerRequest) (*dto.SelectAnswerResponse, error)
	Submit(ctx context.Context, userId uuid.UUID) (*dto.SubmitAssessmentResponse, error)
	GetHistory(ctx context.Context, userId uuid.UUID) (*dto.GetAssessmentHistoryResponse, error)
}

type assessmentService struct {
	uowFactory  unitofwork.RepositoryFactory
	llmProvider llm.Provider
	sessionRepo *memory.SessionRepository
	pubSub      *gochannel.GoChannel
	log         logger.ILogger
}

func NewAssessmentService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.Provider,
	sessionRepo *memory.SessionRepository,
	pubSub *gochannel.GoChannel,
	log logger.ILogger,
) IAssessmentService {
	return &assessmentService{
		uowFactory:  uowFactory,
		llmProvider: llmProvider,
		sessionRepo: sessionRepo,
		pubSub:      pubSub,
		log:         log,
	}
}

func (s *assessmentService) GetQuestions(ctx context.Context) *dto.GetQuestionsResponse {
	bank := questionbank.Questions()
	questions := make([]dto.QuestionDTO, len(bank))
	for i, q := range bank {
		questions[i] = dto.QuestionDTO{
			Number:  i + 1,
			Text:    q.Text,
			Options: q.Options,
		}
	}
	return &dto.GetQuestionsResponse{Questions: questions}
}

// SelectAnswer records one choice. Re-answering a question overwrites the
// previous choice; answering after a submit starts a fresh collecting cycle.
func (s *assessmentService) SelectAnswer(ctx context.Context, userId uuid.UUID, req *dto.SelectAnswerRequest) (*dto.SelectAnswerResponse, error) {
	index := req.QuestionNumber - 1
	if err := questionbank.Validate(index, req.Answer); err != nil {
		return nil, err
	}

	sess, found := s.sessionRepo.Get(userId.String())
	if !found || sess.Phase == store.PhaseSubmitted {
		sess = store.NewAssessmentSession(userId.String(), userId.String(), questionbank.Len())
	}

	sess.Answers[index] = req.Answer
	sess.Recompute()
	s.sessionRepo.Save(sess)

	answered := questionbank.Len() - len(sess.Unanswered())

	return &dto.SelectAnswerResponse{
		QuestionNumber: req.QuestionNumber,
		Answered:       answered,
		Total:          questionbank.Len(),
		Phase:          sess.Phase,
	}, nil
}

// Submit gates on a complete answer set before any model call is made, then
// persists the recommendation together with the answers that produced it.
func (s *assessmentService) Submit(ctx context.Context, userId uuid.UUID) (*dto.SubmitAssessmentResponse, error) {
	sess, found := s.sessionRepo.Get(userId.String())
	if !found {
		missing := make([]int, questionbank.Len())
		for i := range missing {
			missing[i] = i + 1
		}
		return nil, &prompt.IncompleteAnswersError{Missing: missing}
	}
	if sess.Phase == store.PhaseSubmitted {
		return nil, fmt.Errorf("assessment already submitted")
	}

	builder := prompt.NewQuizBuilder(sess.Answers)
	quizPrompt, err := builder.Build()
	if err != nil {
		return nil, err
	}

	recommendation, err := s.llmProvider.Generate(ctx, quizPrompt)
	if err != nil {
		s.log.Error("assessment", "model call failed", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	assessment := &entity.Assessment{
		Id:             uuid.New(),
		UserId:         userId,
		Answers:        append([]string(nil), sess.Answers...),
		Recommendation: recommendation,
		CreatedAt:      time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.AssessmentRepository().Create(ctx, assessment); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	sess.Phase = store.PhaseSubmitted
	s.sessionRepo.Save(sess)

	s.publishUsage(events.UsageEvent{
		Kind:       events.KindAssessmentSubmitted,
		UserID:     userId.String(),
		PromptSize: len(quizPrompt),
		OccurredAt: time.Now(),
	})

	return &dto.SubmitAssessmentResponse{
		AssessmentId:   assessment.Id,
		Recommendation: assessment.Recommendation,
		CreatedAt:      assessment.CreatedAt,
	}, nil
}

func (s *assessmentService) GetHistory(ctx context.Context, userId uuid.UUID) (*dto.GetAssessmentHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	assessments, err := uow.AssessmentRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.AssessmentHistoryItem, 0, len(assessments))
	for _, a := range assessments {
		items = append(items, dto.AssessmentHistoryItem{
			Id:             a.Id,
			Answers:        a.Answers,
			Recommendation: a.Recommendation,
			CreatedAt:      a.CreatedAt,
		})
	}

	return &dto.GetAssessmentHistoryResponse{Assessments: items}, nil
}

func (s *assessmentService) publishUsage(evt events.UsageEvent) {
	payload, err := json.Marshal(evt)
	if err != nil {
		return
	}
	if err := s.pubSub.Publish(events.TopicUsage, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		s.log.Warn("assessment", "usage publish failed", map[string]interface{}{"error": err.Error()})
	}
}
