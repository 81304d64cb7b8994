package api

import (
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Caarnus/newburgh-lodge/internal/audit"
	"github.com/Caarnus/newburgh-lodge/internal/common"
	"github.com/Caarnus/newburgh-lodge/internal/config"
	"github.com/Caarnus/newburgh-lodge/internal/db"
	"github.com/Caarnus/newburgh-lodge/internal/db/repositories"
	"github.com/Caarnus/newburgh-lodge/internal/metrics"
	"github.com/Caarnus/newburgh-lodge/internal/services"
)

type Repositories struct {
	User        *repositories.UserRepository
	Role        *repositories.RoleRepository
	OrgEvent    *repositories.OrgEventRepository
	Newsletter  *repositories.NewsletterRepository
	ContentTile *repositories.ContentTileRepository
	Trivia      *repositories.TriviaRepository
	PastMaster  *repositories.PastMasterRepository
	AuditLog    *repositories.AuditLogRepository
}

type Services struct {
	Session     *common.SessionService
	Auth        *services.AuthService
	UserAdmin   *services.UserAdminService
	Events      *services.EventService
	Newsletters *services.NewsletterService
	Tiles       *services.ContentTileService
	Trivia      *services.TriviaService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Redis    *redis.Client
	Metrics  *metrics.MetricsRegistry
}

func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		User:        repositories.NewUserRepository(db.PgDB),
		Role:        repositories.NewRoleRepository(db.PgDB),
		OrgEvent:    repositories.NewOrgEventRepository(db.PgDB),
		Newsletter:  repositories.NewNewsletterRepository(db.PgDB),
		ContentTile: repositories.NewContentTileRepository(db.PgDB),
		Trivia:      repositories.NewTriviaRepository(db.PgDB),
		PastMaster:  repositories.NewPastMasterRepository(db.PgDB),
		AuditLog:    repositories.NewAuditLogRepository(db.DB),
	}

	redisClient := common.NewRedisClient()
	sessionSvc := common.NewSessionService(redisClient, config.AppConfig.SessionTTL)
	recorder := audit.NewRecorder()

	svcs := &Services{
		Session: sessionSvc,
		Auth:    services.NewAuthService(db.PgDB, repos.User, repos.Role),
		UserAdmin: services.NewUserAdminService(
			db.PgDB,
			repos.User,
			repos.Role,
			sessionSvc,
			recorder,
			config.AppConfig.PasswordConfirmTimeout,
		),
		Events:      services.NewEventService(repos.OrgEvent),
		Newsletters: services.NewNewsletterService(repos.Newsletter),
		Tiles:       services.NewContentTileService(repos.ContentTile),
		Trivia:      services.NewTriviaService(repos.Trivia, rand.NewSource(time.Now().UnixNano())),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Redis:    redisClient,
		Metrics:  metricsReg,
	}, nil
}
