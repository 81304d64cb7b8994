package services

import (
	"context"
	"math/rand"
	"sort"
	"sync"

	"github.com/Caarnus/newburgh-lodge/internal/apperr"
	"github.com/Caarnus/newburgh-lodge/internal/constants"
	reqctx "github.com/Caarnus/newburgh-lodge/internal/context"
	"github.com/Caarnus/newburgh-lodge/internal/db/repositories"
	"github.com/Caarnus/newburgh-lodge/internal/models/dtos/requests"
	"github.com/Caarnus/newburgh-lodge/internal/models/dtos/responses"
	gormModels "github.com/Caarnus/newburgh-lodge/internal/models/gorm"
	"github.com/Caarnus/newburgh-lodge/internal/policies"
)

type TriviaService struct {
	repo   *repositories.TriviaRepository
	policy policies.TriviaQuestionPolicy

	// rand is not safe for concurrent use; randMu serializes every draw.
	randMu sync.Mutex
	rand   *rand.Rand
}

func NewTriviaService(repo *repositories.TriviaRepository, src rand.Source) *TriviaService {
	return &TriviaService{
		repo: repo,
		rand: rand.New(src),
	}
}

func (s *TriviaService) shuffle(n int, swap func(i, j int)) {
	s.randMu.Lock()
	defer s.randMu.Unlock()
	s.rand.Shuffle(n, swap)
}

func (s *TriviaService) intn(n int) int {
	s.randMu.Lock()
	defer s.randMu.Unlock()
	return s.rand.Intn(n)
}

// GetBoard composes a game board: a fixed number of distinct categories
// drawn uniformly without replacement (Bonus excluded), each column drawn
// uniformly without replacement and presented by ascending difficulty.
func (s *TriviaService) GetBoard(ctx context.Context, rc reqctx.RequestContext) (*responses.BoardResponse, error) {
	if !s.policy.ViewAny(rc.Capabilities) {
		return nil, apperr.ErrForbidden
	}

	questions, err := s.repo.ListExcludingCategory(ctx, constants.TriviaBonusCategory)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string][]gormModels.TriviaQuestion)
	categories := make([]string, 0)
	for _, q := range questions {
		if _, seen := byCategory[q.Category]; !seen {
			categories = append(categories, q.Category)
		}
		byCategory[q.Category] = append(byCategory[q.Category], q)
	}

	if len(categories) < constants.TriviaCategoryCount {
		return nil, apperr.ValidationErrors{"board": "not enough categories to build a board"}
	}

	s.shuffle(len(categories), func(i, j int) {
		categories[i], categories[j] = categories[j], categories[i]
	})
	selected := categories[:constants.TriviaCategoryCount]

	board := make(map[string][]responses.QuestionDTO, len(selected))
	for _, category := range selected {
		pool := byCategory[category]
		if len(pool) < constants.TriviaQuestionsPerColumn {
			return nil, apperr.ValidationErrors{"board": "not enough questions in category " + category}
		}

		s.shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		column := pool[:constants.TriviaQuestionsPerColumn]

		sort.SliceStable(column, func(i, j int) bool {
			return column[i].Difficulty < column[j].Difficulty
		})

		dtos := make([]responses.QuestionDTO, 0, len(column))
		for _, q := range column {
			dtos = append(dtos, questionDTO(&q))
		}
		board[category] = dtos
	}

	return &responses.BoardResponse{Board: board}, nil
}

// GetBonusQuestion draws uniformly from the Bonus category alone,
// independent of board composition.
func (s *TriviaService) GetBonusQuestion(ctx context.Context, rc reqctx.RequestContext) (*responses.QuestionDTO, error) {
	if !s.policy.ViewAny(rc.Capabilities) {
		return nil, apperr.ErrForbidden
	}

	pool, err := s.repo.ListByCategory(ctx, constants.TriviaBonusCategory)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, apperr.ErrNotFound
	}

	q := pool[s.intn(len(pool))]
	dto := questionDTO(&q)
	return &dto, nil
}

func (s *TriviaService) Create(ctx context.Context, rc reqctx.RequestContext, req requests.QuestionUpsertRequest) (*responses.QuestionDTO, error) {
	if !s.policy.Create(rc.Capabilities) {
		return nil, apperr.ErrForbidden
	}
	if err := validateQuestion(req); err != nil {
		return nil, err
	}

	question := gormModels.TriviaQuestion{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
		Reference:  req.Reference,
	}
	if err := s.repo.Create(ctx, &question); err != nil {
		return nil, err
	}

	dto := questionDTO(&question)
	return &dto, nil
}

func (s *TriviaService) Update(ctx context.Context, rc reqctx.RequestContext, id uint, req requests.QuestionUpsertRequest) (*responses.QuestionDTO, error) {
	question, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.policy.Update(rc.Capabilities, question) {
		return nil, apperr.ErrForbidden
	}
	if err := validateQuestion(req); err != nil {
		return nil, err
	}

	question.Question = req.Question
	question.Answer = req.Answer
	question.Category = req.Category
	question.Difficulty = req.Difficulty
	question.Reference = req.Reference
	if err := s.repo.Save(ctx, question); err != nil {
		return nil, err
	}

	dto := questionDTO(question)
	return &dto, nil
}

func (s *TriviaService) Delete(ctx context.Context, rc reqctx.RequestContext, id uint) error {
	question, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.policy.Delete(rc.Capabilities, question) {
		return apperr.ErrForbidden
	}
	return s.repo.Delete(ctx, question)
}

func validateQuestion(req requests.QuestionUpsertRequest) error {
	verrs := apperr.ValidationErrors{}
	if req.Question == "" {
		verrs.Add("question", "question is required")
	}
	if req.Answer == "" {
		verrs.Add("answer", "answer is required")
	}
	if req.Category == "" {
		verrs.Add("category", "category is required")
	}
	return verrs.OrNil()
}

func questionDTO(q *gormModels.TriviaQuestion) responses.QuestionDTO {
	return responses.QuestionDTO{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
		Reference:  q.Reference,
	}
}
