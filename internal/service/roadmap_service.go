package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"margadarsaka-be/internal/dto"
	"margadarsaka-be/internal/pkg/logger"
	"margadarsaka-be/internal/pkg/mailer"
	"margadarsaka-be/pkg/events"
	"margadarsaka-be/pkg/llm"
	"margadarsaka-be/pkg/pdfgen"
	"margadarsaka-be/pkg/prompt"
)

type IRoadmapService interface {
	Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateRoadmapRequest) (*dto.GenerateRoadmapResponse, error)
	GeneratePDF(ctx context.Context, userId uuid.UUID, req *dto.GenerateRoadmapRequest) ([]byte, error)
	SendByEmail(ctx context.Context, userId uuid.UUID, req *dto.EmailRoadmapRequest) (*dto.EmailRoadmapResponse, error)
}

type roadmapService struct {
	llmProvider llm.Provider
	emailSvc    mailer.IEmailService
	pubSub      *gochannel.GoChannel
	log         logger.ILogger
}

func NewRoadmapService(
	llmProvider llm.Provider,
	emailSvc mailer.IEmailService,
	pubSub *gochannel.GoChannel,
	log logger.ILogger,
) IRoadmapService {
	return &roadmapService{
		llmProvider: llmProvider,
		emailSvc:    emailSvc,
		pubSub:      pubSub,
		log:         log,
	}
}

// Generate produces the roadmap text for a goal. An empty goal still goes to
// the model; the template itself asks for clarification in that case.
func (s *roadmapService) Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateRoadmapRequest) (*dto.GenerateRoadmapResponse, error) {
	roadmapPrompt := prompt.NewRoadmapBuilder(req.Goal).Build()

	roadmap, err := s.llmProvider.Generate(ctx, roadmapPrompt)
	if err != nil {
		s.log.Error("roadmap", "model call failed", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	s.publishUsage(events.UsageEvent{
		Kind:       events.KindRoadmapGenerated,
		UserID:     userId.String(),
		PromptSize: len(roadmapPrompt),
		OccurredAt: time.Now(),
	})

	return &dto.GenerateRoadmapResponse{
		Goal:    req.Goal,
		Roadmap: roadmap,
	}, nil
}

func (s *roadmapService) GeneratePDF(ctx context.Context, userId uuid.UUID, req *dto.GenerateRoadmapRequest) ([]byte, error) {
	res, err := s.Generate(ctx, userId, req)
	if err != nil {
		return nil, err
	}

	return pdfgen.NewGenerator("Career Roadmap").Generate(res.Roadmap)
}

func (s *roadmapService) SendByEmail(ctx context.Context, userId uuid.UUID, req *dto.EmailRoadmapRequest) (*dto.EmailRoadmapResponse, error) {
	pdfBytes, err := s.GeneratePDF(ctx, userId, &dto.GenerateRoadmapRequest{Goal: req.Goal})
	if err != nil {
		return nil, err
	}

	if err := s.emailSvc.SendRoadmap(req.Email, req.Goal, pdfBytes); err != nil {
		return nil, err
	}

	return &dto.EmailRoadmapResponse{
		Sent:  true,
		Email: req.Email,
	}, nil
}

func (s *roadmapService) publishUsage(evt events.UsageEvent) {
	payload, err := json.Marshal(evt)
	if err != nil {
		return
	}
	if err := s.pubSub.Publish(events.TopicUsage, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		s.log.Warn("roadmap", "usage publish failed", map[string]interface{}{"error": err.Error()})
	}
}
