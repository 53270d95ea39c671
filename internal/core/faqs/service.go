package faqs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/pagination"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/validation"
)

const (
	minQuestionLength = 10
	minAnswerLength   = 20
)

type faqService struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new FAQ service
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &faqService{
		repo:   repo,
		logger: logger,
	}
}

// validate checks trimmed question/answer lengths and returns field-level messages
func validate(question, answer string) (string, string, error) {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)

	v := validation.New()
	if len(question) < minQuestionLength {
		v.Add("question", fmt.Sprintf("must be at least %d characters", minQuestionLength))
	}
	if len(answer) < minAnswerLength {
		v.Add("answer", fmt.Sprintf("must be at least %d characters", minAnswerLength))
	}
	if err := v.Err(); err != nil {
		return "", "", err
	}

	return question, answer, nil
}

// Create validates and persists a new FAQ
func (s *faqService) Create(ctx context.Context, question, answer string) (*FAQ, error) {
	question, answer, err := validate(question, answer)
	if err != nil {
		return nil, err
	}

	faq, err := s.repo.Create(ctx, &FAQ{Question: question, Answer: answer})
	if err != nil {
		return nil, err
	}

	s.logger.Info("faq created", "faq", faq.ID)
	return faq, nil
}

// Update validates and persists changes to an existing FAQ
func (s *faqService) Update(ctx context.Context, id int64, question, answer string) (*FAQ, error) {
	question, answer, err := validate(question, answer)
	if err != nil {
		return nil, err
	}

	faq, err := s.repo.Update(ctx, &FAQ{ID: id, Question: question, Answer: answer})
	if err != nil {
		return nil, err
	}

	s.logger.Info("faq updated", "faq", id)
	return faq, nil
}

// GetByID retrieves a single FAQ
func (s *faqService) GetByID(ctx context.Context, id int64) (*FAQ, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves a page of FAQs
func (s *faqService) List(ctx context.Context, params ListParams) ([]*FAQ, pagination.Pagination, error) {
	params.Page, params.PerPage = pagination.Normalize(params.Page, params.PerPage)
	params.Search = strings.TrimSpace(params.Search)
	return s.repo.List(ctx, params)
}

// Delete removes a FAQ
func (s *faqService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("faq deleted", "faq", id)
	return nil
}
