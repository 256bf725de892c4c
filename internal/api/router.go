package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"taskly.com/internal/api/middleware"
	"taskly.com/internal/auth"
	"taskly.com/internal/config"
	"taskly.com/internal/service"
	"taskly.com/internal/store"
)

// Router registers all routes.
type Router struct {
	app    *fiber.App
	cfg    *config.Config
	db     *gorm.DB
	rdb    *redis.Client
	tokens *auth.TokenManager
	router fiber.Router // protected /api group
}

func NewRouter(app *fiber.App, cfg *config.Config, db *gorm.DB, rdb *redis.Client, tokens *auth.TokenManager) *Router {
	return &Router{
		app:    app,
		cfg:    cfg,
		db:     db,
		rdb:    rdb,
		tokens: tokens,
	}
}

// RegisterRoutes wires stores, services and handlers, then registers the
// public auth routes and the token-protected /api group.
func (r *Router) RegisterRoutes() {
	enforcer, err := auth.InitCasbin(r.db)
	if err != nil {
		log.Fatalf("Failed to initialize Casbin: %v", err)
	}

	userStore := store.NewUserStore(r.db)
	authHandler := NewAuthHandler(service.NewAuthService(userStore, r.tokens))
	taskHandler := NewTaskHandler(service.NewTaskService(r.db))
	teamHandler := NewTeamHandler(service.NewTeamService(r.db))
	projectHandler := NewProjectHandler(service.NewProjectService(r.db, r.rdb))
	documentHandler := NewDocumentHandler(service.NewDocumentService(r.db))

	// Public auth routes
	r.app.Post("/api/auth/signup", authHandler.SignUp)
	r.app.Post("/api/auth/login", authHandler.Login)

	// Protected /api group
	r.router = r.app.Group("/api")
	r.router.Use(middleware.JWTAuth(r.tokens, enforcer))

	r.registerAuthRoutes(authHandler)
	r.registerTaskRoutes(taskHandler)
	r.registerTeamRoutes(teamHandler)
	r.registerProjectRoutes(projectHandler)
	r.registerDocumentRoutes(documentHandler)
}

func (r *Router) registerAuthRoutes(h *AuthHandler) {
	r.router.Get("/auth/me", h.GetMe)
	r.router.Post("/auth/logout", h.Logout)
}

func (r *Router) registerTaskRoutes(h *TaskHandler) {
	tasks := r.router.Group("/tasks")
	tasks.Get("/", h.GetTasks)
	tasks.Get("/by-status/:status", h.GetTasksByStatus)
	tasks.Post("/", h.CreateTask)
	tasks.Get("/:id", h.GetTask)
	tasks.Put("/:id", h.UpdateTask)
	tasks.Delete("/:id", h.DeleteTask)
}

func (r *Router) registerTeamRoutes(h *TeamHandler) {
	teams := r.router.Group("/teams")
	teams.Get("/", h.GetTeams)
	teams.Post("/", h.CreateTeam)
	teams.Get("/:id", h.GetTeam)
	teams.Put("/:id", h.UpdateTeam)
	teams.Delete("/:id", h.DeleteTeam)
	teams.Post("/:teamId/members", h.AddMember)
	teams.Delete("/:teamId/members/:userId", h.RemoveMember)
}

func (r *Router) registerProjectRoutes(h *ProjectHandler) {
	projects := r.router.Group("/projects")
	projects.Get("/", h.GetProjects)
	projects.Post("/", h.CreateProject)
	projects.Get("/:id", h.GetProject)
	projects.Put("/:id", h.UpdateProject)
	projects.Delete("/:id", h.DeleteProject)
	projects.Get("/:id/stats", h.GetStats)
	projects.Post("/:projectId/members", h.AddMember)
	projects.Delete("/:projectId/members/:userId", h.RemoveMember)
}

func (r *Router) registerDocumentRoutes(h *DocumentHandler) {
	documents := r.router.Group("/documents")
	documents.Get("/", h.GetDocuments)
	documents.Post("/", h.CreateDocument)
	documents.Get("/:id", h.GetDocument)
	documents.Put("/:id", h.UpdateDocument)
	documents.Delete("/:id", h.DeleteDocument)
}
