package domain

import (
	"context"

	"taskly.com/internal/model"
)

// ===========================
// Credential store
// ===========================

// UserStore is the durable credential store. Lookups compare email and
// username case-insensitively; Insert relies on the store's unique indexes to
// settle check-then-insert races (it returns gorm.ErrDuplicatedKey when a
// concurrent writer won).
type UserStore interface {
	// FindByEmail returns ErrNotFound when no record matches.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// FindActiveByIdentifier matches email OR username among active users
	// only. An unknown identifier and a deactivated account both return
	// ErrNotFound.
	FindActiveByIdentifier(ctx context.Context, identifier string) (*model.User, error)
	// ExistsByUsername backs the username-derivation probe loop.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Insert(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
}

// ===========================
// Authentication service
// ===========================

type SignUpInput struct {
	Name     string
	Surname  string
	Email    string
	Password string
}

// LoginResult is a minted session token plus the public projection of the
// authenticated user.
type LoginResult struct {
	Token string           `json:"token"`
	User  model.PublicUser `json:"user"`
}

type AuthService interface {
	// SignUp creates a credential record and returns the derived username.
	SignUp(ctx context.Context, input SignUpInput) (string, error)
	// Login verifies the identifier/password pair and mints a session token.
	Login(ctx context.Context, identifier, password string) (*LoginResult, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
}

// ===========================
// CRUD services
// ===========================

type TaskService interface {
	ListTasks(ctx context.Context, status string, page, pageSize int) ([]model.Task, int64, error)
	GetTask(ctx context.Context, id uint) (*model.Task, error)
	CreateTask(ctx context.Context, task *model.Task) error
	UpdateTask(ctx context.Context, task *model.Task) error
	DeleteTask(ctx context.Context, id uint) error
}

type TeamService interface {
	ListTeams(ctx context.Context) ([]model.Team, error)
	GetTeam(ctx context.Context, id uint) (*model.Team, error)
	CreateTeam(ctx context.Context, team *model.Team) error
	UpdateTeam(ctx context.Context, team *model.Team) error
	DeleteTeam(ctx context.Context, id uint) error
	AddMember(ctx context.Context, teamID uint, member *model.TeamMember) error
	RemoveMember(ctx context.Context, teamID, userID uint) error
}

type ProjectService interface {
	ListProjects(ctx context.Context) ([]model.Project, error)
	GetProject(ctx context.Context, id uint) (*model.Project, error)
	CreateProject(ctx context.Context, project *model.Project) error
	UpdateProject(ctx context.Context, project *model.Project) error
	DeleteProject(ctx context.Context, id uint) error
	GetStats(ctx context.Context, id uint) (*model.ProjectStats, error)
	AddMember(ctx context.Context, projectID, userID uint) error
	RemoveMember(ctx context.Context, projectID, userID uint) error
}

type DocumentService interface {
	ListDocuments(ctx context.Context) ([]model.Document, error)
	GetDocument(ctx context.Context, id uint) (*model.Document, error)
	CreateDocument(ctx context.Context, doc *model.Document) error
	UpdateDocument(ctx context.Context, doc *model.Document) error
	DeleteDocument(ctx context.Context, id uint) error
}
