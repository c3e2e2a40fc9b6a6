package service

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"margadarsaka-be/internal/entity"
	"margadarsaka-be/internal/repository/contract"
	"margadarsaka-be/internal/repository/specification"
	"margadarsaka-be/internal/repository/unitofwork"
	"margadarsaka-be/pkg/llm"
)

// --- In-memory unit of work ---

type fakeUow struct {
	users       []*entity.User
	sessions    []*entity.ChatSession
	messages    []*entity.ChatMessage
	assessments []*entity.Assessment

	commits int
}

type fakeUowFactory struct {
	uow *fakeUow
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newFakeFactory() (*fakeUowFactory, *fakeUow) {
	uow := &fakeUow{}
	return &fakeUowFactory{uow: uow}, uow
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }

func (u *fakeUow) Commit() error {
	u.commits++
	return nil
}

func (u *fakeUow) Rollback() error { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository {
	return &fakeUserRepo{uow: u}
}

func (u *fakeUow) ChatSessionRepository() contract.ChatSessionRepository {
	return &fakeChatSessionRepo{uow: u}
}

func (u *fakeUow) ChatMessageRepository() contract.ChatMessageRepository {
	return &fakeChatMessageRepo{uow: u}
}

func (u *fakeUow) AssessmentRepository() contract.AssessmentRepository {
	return &fakeAssessmentRepo{uow: u}
}

// --- Repositories ---

type fakeUserRepo struct{ uow *fakeUow }

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.uow.users = append(r.uow.users, user)
	return nil
}
func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }
func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }
func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	if len(r.uow.users) == 0 {
		return nil, nil
	}
	return r.uow.users[0], nil
}
func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.uow.users)), nil
}

type fakeChatSessionRepo struct{ uow *fakeUow }

func (r *fakeChatSessionRepo) Create(ctx context.Context, s *entity.ChatSession) error {
	r.uow.sessions = append(r.uow.sessions, s)
	return nil
}
func (r *fakeChatSessionRepo) Update(ctx context.Context, s *entity.ChatSession) error { return nil }
func (r *fakeChatSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.uow.sessions[:0]
	for _, s := range r.uow.sessions {
		if s.Id != id {
			kept = append(kept, s)
		}
	}
	r.uow.sessions = kept
	return nil
}
func (r *fakeChatSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok {
			for _, s := range r.uow.sessions {
				if s.Id == byID.ID {
					return s, nil
				}
			}
			return nil, nil
		}
	}
	if len(r.uow.sessions) == 0 {
		return nil, nil
	}
	return r.uow.sessions[0], nil
}
func (r *fakeChatSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	return r.uow.sessions, nil
}

type fakeChatMessageRepo struct{ uow *fakeUow }

func (r *fakeChatMessageRepo) Create(ctx context.Context, m *entity.ChatMessage) error {
	r.uow.messages = append(r.uow.messages, m)
	return nil
}
func (r *fakeChatMessageRepo) DeleteByChatSessionId(ctx context.Context, sessionId uuid.UUID) error {
	kept := r.uow.messages[:0]
	for _, m := range r.uow.messages {
		if m.ChatSessionId != sessionId {
			kept = append(kept, m)
		}
	}
	r.uow.messages = kept
	return nil
}
func (r *fakeChatMessageRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatMessage, error) {
	if len(r.uow.messages) == 0 {
		return nil, nil
	}
	return r.uow.messages[0], nil
}
func (r *fakeChatMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	excludedRole := ""
	for _, spec := range specs {
		if ex, ok := spec.(specification.ExcludeRole); ok {
			excludedRole = ex.Role
		}
	}

	var out []*entity.ChatMessage
	for _, m := range r.uow.messages {
		if excludedRole != "" && m.Role == excludedRole {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}
func (r *fakeChatMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.uow.messages)), nil
}

type fakeAssessmentRepo struct{ uow *fakeUow }

func (r *fakeAssessmentRepo) Create(ctx context.Context, a *entity.Assessment) error {
	r.uow.assessments = append(r.uow.assessments, a)
	return nil
}
func (r *fakeAssessmentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Assessment, error) {
	return r.uow.assessments, nil
}
func (r *fakeAssessmentRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.uow.assessments)), nil
}

// --- Provider stub ---

type stubProvider struct {
	reply         string
	err           error
	generateCalls int
	lastPrompt    string
}

func (p *stubProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return p.reply, p.err
}

func (p *stubProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	p.generateCalls++
	p.lastPrompt = prompt
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

// --- Logger stub ---

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error {
	return nil
}

func newTestPubSub() *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
}
