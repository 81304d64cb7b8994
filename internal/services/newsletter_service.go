package services

import (
	"context"

	"github.com/Caarnus/newburgh-lodge/internal/apperr"
	reqctx "github.com/Caarnus/newburgh-lodge/internal/context"
	"github.com/Caarnus/newburgh-lodge/internal/db/repositories"
	"github.com/Caarnus/newburgh-lodge/internal/models/dtos/requests"
	"github.com/Caarnus/newburgh-lodge/internal/models/dtos/responses"
	gormModels "github.com/Caarnus/newburgh-lodge/internal/models/gorm"
	"github.com/Caarnus/newburgh-lodge/internal/policies"
)

const newslettersPerPage = 10

type NewsletterService struct {
	repo   *repositories.NewsletterRepository
	policy policies.NewsletterPolicy
}

func NewNewsletterService(repo *repositories.NewsletterRepository) *NewsletterService {
	return &NewsletterService{repo: repo}
}

// List returns one page, newest first. The body is omitted from the index
// projection.
func (s *NewsletterService) List(ctx context.Context, page int) (*responses.NewsletterPage, error) {
	newsletters, total, err := s.repo.ListPage(ctx, page, newslettersPerPage)
	if err != nil {
		return nil, err
	}

	dtos := make([]responses.NewsletterDTO, 0, len(newsletters))
	for i := range newsletters {
		dto := newsletterDTO(&newsletters[i])
		dto.Body = ""
		dtos = append(dtos, dto)
	}

	return &responses.NewsletterPage{
		Newsletters: dtos,
		Total:       int(total),
		Page:        page,
		PerPage:     newslettersPerPage,
	}, nil
}

func (s *NewsletterService) Get(ctx context.Context, rc reqctx.RequestContext, id uint) (*responses.NewsletterDTO, error) {
	newsletter, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.policy.View(rc.Capabilities, newsletter) {
		return nil, apperr.ErrForbidden
	}

	dto := newsletterDTO(newsletter)
	return &dto, nil
}

func (s *NewsletterService) Create(ctx context.Context, rc reqctx.RequestContext, req requests.NewsletterUpsertRequest) (*responses.NewsletterDTO, error) {
	if !s.policy.Create(rc.Capabilities) {
		return nil, apperr.ErrForbidden
	}
	if err := validateNewsletter(req); err != nil {
		return nil, err
	}

	newsletter := gormModels.Newsletter{
		Title:   req.Title,
		Issue:   req.Issue,
		Summary: req.Summary,
		Body:    req.Body,
	}
	if req.IsPublic != nil {
		newsletter.IsPublic = *req.IsPublic
	}
	if rc.Authenticated() {
		actorID := rc.ActorID
		newsletter.CreatedBy = &actorID
	}

	if err := s.repo.Create(ctx, &newsletter); err != nil {
		return nil, err
	}

	dto := newsletterDTO(&newsletter)
	return &dto, nil
}

func (s *NewsletterService) Update(ctx context.Context, rc reqctx.RequestContext, id uint, req requests.NewsletterUpsertRequest) (*responses.NewsletterDTO, error) {
	newsletter, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.policy.Update(rc.Capabilities, newsletter) {
		return nil, apperr.ErrForbidden
	}
	if err := validateNewsletter(req); err != nil {
		return nil, err
	}

	newsletter.Title = req.Title
	newsletter.Issue = req.Issue
	newsletter.Summary = req.Summary
	newsletter.Body = req.Body
	if req.IsPublic != nil {
		newsletter.IsPublic = *req.IsPublic
	}

	if err := s.repo.Save(ctx, newsletter); err != nil {
		return nil, err
	}

	dto := newsletterDTO(newsletter)
	return &dto, nil
}

func (s *NewsletterService) Delete(ctx context.Context, rc reqctx.RequestContext, id uint) error {
	newsletter, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.policy.Delete(rc.Capabilities, newsletter) {
		return apperr.ErrForbidden
	}
	return s.repo.Delete(ctx, newsletter)
}

func validateNewsletter(req requests.NewsletterUpsertRequest) error {
	verrs := apperr.ValidationErrors{}
	if req.Title == "" {
		verrs.Add("title", "title is required")
	} else if len(req.Title) > maxFieldLength {
		verrs.Add("title", "title may not be longer than 255 characters")
	}
	if req.Body == "" {
		verrs.Add("body", "body is required")
	}
	return verrs.OrNil()
}

func newsletterDTO(n *gormModels.Newsletter) responses.NewsletterDTO {
	return responses.NewsletterDTO{
		ID:        n.ID,
		Title:     n.Title,
		Issue:     n.Issue,
		Summary:   n.Summary,
		Body:      n.Body,
		IsPublic:  n.IsPublic,
		CreatedAt: n.CreatedAt,
	}
}
