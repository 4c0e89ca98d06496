package cli

import (
	"bufio"
	"context"
	"os"
	"path/filepath"

	"github.com/sohaibmughall/crm-panel/internal/client/cache"
	"github.com/sohaibmughall/crm-panel/internal/client/config"
	"github.com/sohaibmughall/crm-panel/internal/client/gateway"
	"github.com/sohaibmughall/crm-panel/internal/client/models"
	"github.com/sohaibmughall/crm-panel/internal/client/repositories/state"
	"github.com/sohaibmughall/crm-panel/internal/client/services"
	"github.com/sohaibmughall/crm-panel/internal/client/session"
	"github.com/sohaibmughall/crm-panel/internal/client/statedb"
	"github.com/sohaibmughall/crm-panel/internal/filex"
	"github.com/sohaibmughall/crm-panel/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the whole client together: the persisted session, the gateway,
// one cache per entity type, and the services driving them. The REPL
// navigates between screens the way the panel navigates between routes.
type App struct {
	config   *config.Config
	log      logging.Logger
	sessions *session.Store

	auth      *services.AuthService
	customers *services.CustomerService
	content   *services.ContentService
	media     *services.MediaService
	users     *services.UsersService

	route    string
	returnTo string
	reader   *bufio.Reader
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	dir := c.StateDir
	if dir == "" {
		var err error
		dir, err = filex.EnsureSubDir("crm-panel")
		if err != nil {
			return nil, err
		}
	}

	db, err := statedb.Open(ctx, filepath.Join(dir, "state.db"))
	if err != nil {
		return nil, err
	}
	repo := state.NewSQLiteRepository(db)

	// The sign-out closure runs long after wiring completes, so capturing
	// the gateway variable before it is assigned is safe.
	var gw *gateway.Client
	sessions := session.NewStore(repo, func(ctx context.Context, token string) error {
		return gw.SignOut(ctx, token)
	}, log)

	gw = gateway.New(gateway.Config{
		BaseURL: c.BackendURL,
		AnonKey: c.AnonKey,
		Timeout: c.RequestTimeout,
	}, sessions)

	customers := gateway.NewResource[models.Customer](gw, "customers", "created_at.desc")
	posts := gateway.NewResource[models.Post](gw, "posts", "created_at.desc")
	pages := gateway.NewResource[models.Page](gw, "pages", "created_at.desc")
	categories := gateway.NewResource[models.Category](gw, "categories", "name.asc")
	media := gateway.NewResource[models.MediaAsset](gw, "media", "created_at.desc")

	return &App{
		config:   c,
		log:      log,
		sessions: sessions,
		auth:     services.NewAuthService(gw, sessions, log),
		customers: services.NewCustomerService(
			customers, cache.New[models.Customer](), log),
		content: services.NewContentService(
			posts, cache.New[models.Post](),
			pages, cache.New[models.Page](),
			categories, cache.New[models.Category](),
			log),
		media: services.NewMediaService(
			media, cache.New[models.MediaAsset](), gw, c.StorageBucket, log),
		users:  services.NewUsersService(cache.New[models.ManagedUser](), log),
		route:  "/",
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

// Run rehydrates the session and starts the REPL. Hydration happens before
// the first prompt so the guard never sees a not-yet-restored session.
func (a *App) Run(ctx context.Context) error {
	if err := a.sessions.Hydrate(ctx); err != nil {
		return err
	}
	if cur := a.sessions.Current(); cur.IsAuthenticated {
		printlnFn("Welcome back,", cur.User.Name)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Current().IsAuthenticated
}

func (a *App) status() string {
	cur := a.sessions.Current()
	if !cur.IsAuthenticated {
		return a.route
	}
	name := cur.User.Email
	if cur.User.Name != "" {
		name = cur.User.Name
	}
	return name + " " + a.route
}
