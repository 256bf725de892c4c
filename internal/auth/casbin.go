package auth

import (
	"log"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

// InitCasbin builds the RBAC enforcer backed by the database. Policies are
// keyed by role: the role claim of a verified token is the casbin subject.
func InitCasbin(db *gorm.DB) (*casbin.Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, err
	}

	// keyMatch2 matches parameterized paths like /api/teams/:teamId/members
	text := `
		[request_definition]
		r = sub, obj, act

		[policy_definition]
		p = sub, obj, act

		[role_definition]
		g = _, _

		[policy_effect]
		e = some(where (p.eft == allow))

		[matchers]
		m = g(r.sub, p.sub) && keyMatch2(r.obj, p.obj) && regexMatch(r.act, p.act)
	`

	m, err := model.NewModelFromString(text)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, err
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, err
	}

	// Seed defaults on first boot: every authenticated role may use the API,
	// admin additionally inherits user.
	policies, _ := enforcer.GetPolicy()
	if len(policies) == 0 {
		log.Println("Casbin: No policies found, seeding defaults...")
		if _, err := enforcer.AddPolicy("user", "/api/*", "(GET)|(POST)|(PUT)|(DELETE)"); err != nil {
			log.Printf("Failed to add user policy: %v", err)
		}
		if _, err := enforcer.AddPolicy("admin", "/api/*", "(GET)|(POST)|(PUT)|(DELETE)"); err != nil {
			log.Printf("Failed to add admin policy: %v", err)
		}
		if err := enforcer.SavePolicy(); err != nil {
			log.Printf("Failed to save default policies: %v", err)
		}
	}

	log.Println("Casbin initialized successfully")
	return enforcer, nil
}
