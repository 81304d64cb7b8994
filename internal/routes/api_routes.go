package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/Caarnus/newburgh-lodge/internal/api"
	"github.com/Caarnus/newburgh-lodge/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {

	r.Route("/api/v1", func(v1 chi.Router) {

		// Public surface: anonymous visitors browse pages, the public
		// calendar, newsletters and the past-masters roll.
		v1.Get("/pages/{page}", api.PublicPageTilesHandler(deps.Services.Tiles))
		v1.Get("/events", api.ListEventsHandler(deps.Services.Events))
		v1.Get("/events/types", api.ListEventTypesHandler(deps.Services.Events))
		v1.Get("/events/{event_id}", api.GetEventHandler(deps.Services.Events))
		v1.Get("/newsletters", api.ListNewslettersHandler(deps.Services.Newsletters))
		v1.Get("/newsletters/{newsletter_id}", api.GetNewsletterHandler(deps.Services.Newsletters))
		v1.Get("/past-masters", api.ListPastMastersHandler(deps.Repo.PastMaster))

		// Auth
		v1.Post("/auth/register", api.RegisterHandler(deps.Services.Auth, deps.Services.Session))
		v1.Post("/auth/login", api.LoginHandler(deps.Services.Auth, deps.Services.Session, deps.Metrics))

		// Signed-in users group
		v1.Group(func(member chi.Router) {
			member.Use(middleware.RequireAuthMiddleware())

			member.Post("/auth/logout", api.LogoutHandler(deps.Services.Session, deps.Metrics))
			member.Post("/auth/confirm-password", api.ConfirmPasswordHandler(deps.Services.Auth, deps.Services.Session))

			// Trivia: policies gate degrees and officer perms inside
			// the service, the router only requires a session.
			member.Get("/trivia/board", api.TriviaBoardHandler(deps.Services.Trivia, deps.Metrics))
			member.Get("/trivia/bonus", api.TriviaBonusHandler(deps.Services.Trivia))
			member.Post("/trivia/questions", api.CreateQuestionHandler(deps.Services.Trivia))
			member.Put("/trivia/questions/{question_id}", api.UpdateQuestionHandler(deps.Services.Trivia))
			member.Delete("/trivia/questions/{question_id}", api.DeleteQuestionHandler(deps.Services.Trivia))

			// Officer content management
			member.Post("/events", api.CreateEventHandler(deps.Services.Events))
			member.Put("/events/{event_id}", api.UpdateEventHandler(deps.Services.Events))
			member.Delete("/events/{event_id}", api.DeleteEventHandler(deps.Services.Events))

			member.Post("/newsletters", api.CreateNewsletterHandler(deps.Services.Newsletters))
			member.Put("/newsletters/{newsletter_id}", api.UpdateNewsletterHandler(deps.Services.Newsletters))
			member.Delete("/newsletters/{newsletter_id}", api.DeleteNewsletterHandler(deps.Services.Newsletters))

			member.Get("/admin/pages/{page}", api.ManagePageTilesHandler(deps.Services.Tiles))
			member.Post("/admin/tiles", api.CreateTileHandler(deps.Services.Tiles))
			member.Put("/admin/tiles/reorder", api.ReorderTilesHandler(deps.Services.Tiles))
			member.Put("/admin/tiles/{tile_id}", api.UpdateTileHandler(deps.Services.Tiles))
			member.Delete("/admin/tiles/{tile_id}", api.DeleteTileHandler(deps.Services.Tiles))

			// Admin-only group (administrators and secretaries)
			member.Group(func(admin chi.Router) {
				admin.Use(middleware.RequireAdminAccessMiddleware())

				admin.Get("/admin/users", api.ListUsersHandler(deps.Services.UserAdmin))
				admin.Post("/admin/users", api.CreateUserHandler(deps.Services.UserAdmin))
				admin.Put("/admin/users", api.BulkUpdateUsersHandler(deps.Services.UserAdmin, deps.Metrics))
				admin.Put("/admin/users/{user_id}", api.UpdateUserHandler(deps.Services.UserAdmin))
				admin.Put("/admin/users/{user_id}/password", api.SetUserPasswordHandler(deps.Services.UserAdmin))

				admin.Get("/admin/audit", api.ListAuditLogHandler(deps.Repo.AuditLog))
			})
		})
	})
}
