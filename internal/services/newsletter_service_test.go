package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Caarnus/newburgh-lodge/internal/apperr"
	"github.com/Caarnus/newburgh-lodge/internal/auth"
	reqctx "github.com/Caarnus/newburgh-lodge/internal/context"
	"github.com/Caarnus/newburgh-lodge/internal/db/repositories"
	"github.com/Caarnus/newburgh-lodge/internal/models/dtos/requests"
	gormModels "github.com/Caarnus/newburgh-lodge/internal/models/gorm"
	"gorm.io/gorm"
)

func seedNewsletters(t *testing.T, db *gorm.DB, count int, public bool) {
	t.Helper()
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		newsletter := gormModels.Newsletter{
			Title:    fmt.Sprintf("Issue %d", i+1),
			Body:     "Long form content",
			IsPublic: public,
		}
		newsletter.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		if err := db.Create(&newsletter).Error; err != nil {
			t.Fatalf("Failed to seed newsletter: %v", err)
		}
	}
}

func TestNewsletterService_ListPaginatesWithoutBody(t *testing.T) {
	db := setupTestDB(t)
	seedNewsletters(t, db, 12, true)
	svc := NewNewsletterService(repositories.NewNewsletterRepository(db))

	first, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("Failed to list newsletters: %v", err)
	}
	if first.Total != 12 || first.PerPage != 10 {
		t.Errorf("Expected total 12 per_page 10, got %d/%d", first.Total, first.PerPage)
	}
	if len(first.Newsletters) != 10 {
		t.Fatalf("Expected 10 newsletters on page 1, got %d", len(first.Newsletters))
	}
	if first.Newsletters[0].Title != "Issue 12" {
		t.Errorf("Expected newest issue first, got %q", first.Newsletters[0].Title)
	}
	for _, dto := range first.Newsletters {
		if dto.Body != "" {
			t.Errorf("Expected body omitted from the index, got %q on %q", dto.Body, dto.Title)
		}
	}

	second, err := svc.List(context.Background(), 2)
	if err != nil {
		t.Fatalf("Failed to list page 2: %v", err)
	}
	if len(second.Newsletters) != 2 {
		t.Errorf("Expected 2 newsletters on page 2, got %d", len(second.Newsletters))
	}
}

func TestNewsletterService_GetEnforcesVisibility(t *testing.T) {
	db := setupTestDB(t)
	seedNewsletters(t, db, 1, false)
	svc := NewNewsletterService(repositories.NewNewsletterRepository(db))

	if _, err := svc.Get(context.Background(), reqctx.RequestContext{}, 1); !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("Expected ErrForbidden for anonymous on a private issue, got %v", err)
	}

	memberRC := reqctx.RequestContext{ActorID: 2, Capabilities: auth.Capabilities{IsMember: true}}
	dto, err := svc.Get(context.Background(), memberRC, 1)
	if err != nil {
		t.Fatalf("Failed to fetch newsletter as member: %v", err)
	}
	if dto.Body == "" {
		t.Error("Expected the full body on the detail view")
	}

	if _, err := svc.Get(context.Background(), memberRC, 99); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for a missing issue, got %v", err)
	}
}

func TestNewsletterService_CreateValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNewsletterService(repositories.NewNewsletterRepository(db))
	rc := officerRC()

	_, err := svc.Create(context.Background(), rc, requests.NewsletterUpsertRequest{})
	var verrs apperr.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Expected validation error for an empty request, got %v", err)
	}
	for _, field := range []string{"title", "body"} {
		if _, ok := verrs[field]; !ok {
			t.Errorf("Expected the %s field flagged, got %v", field, verrs)
		}
	}

	memberRC := reqctx.RequestContext{ActorID: 2, Capabilities: auth.Capabilities{IsMember: true}}
	if _, err := svc.Create(context.Background(), memberRC, requests.NewsletterUpsertRequest{
		Title: "Trestle Board",
		Body:  "Content",
	}); !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("Expected ErrForbidden for a plain member, got %v", err)
	}
}

func TestNewsletterService_CreateRecordsAuthor(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNewsletterService(repositories.NewNewsletterRepository(db))
	rc := officerRC()

	dto, err := svc.Create(context.Background(), rc, requests.NewsletterUpsertRequest{
		Title:   "Trestle Board",
		Issue:   strPtr("2025-06"),
		Summary: strPtr("June happenings"),
		Body:    "Content",
	})
	if err != nil {
		t.Fatalf("Failed to create newsletter: %v", err)
	}

	var stored gormModels.Newsletter
	if err := db.First(&stored, dto.ID).Error; err != nil {
		t.Fatalf("Failed to reload newsletter: %v", err)
	}
	if stored.CreatedBy == nil || *stored.CreatedBy != rc.ActorID {
		t.Errorf("Expected created_by %d, got %v", rc.ActorID, stored.CreatedBy)
	}
	if stored.IsPublic {
		t.Error("Expected newsletters to default to private")
	}
}

func TestNewsletterService_DeleteRequiresSecretary(t *testing.T) {
	db := setupTestDB(t)
	seedNewsletters(t, db, 1, true)
	svc := NewNewsletterService(repositories.NewNewsletterRepository(db))

	if err := svc.Delete(context.Background(), officerRC(), 1); !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("Expected ErrForbidden for an officer delete, got %v", err)
	}

	secretaryRC := reqctx.RequestContext{ActorID: 3, Capabilities: auth.Capabilities{IsSecretary: true, IsMember: true}}
	if err := svc.Delete(context.Background(), secretaryRC, 1); err != nil {
		t.Fatalf("Failed to delete newsletter as secretary: %v", err)
	}
	if _, err := svc.Get(context.Background(), secretaryRC, 1); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}
