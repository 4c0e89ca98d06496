package services

import (
	"sync/atomic"
	"time"

	"github.com/sohaibmughall/crm-panel/internal/client/cache"
	"github.com/sohaibmughall/crm-panel/internal/client/models"
	"github.com/sohaibmughall/crm-panel/internal/logging"
)

// UsersService manages the user-administration screen. The collection is
// local-only: no backend table exists for it, so rows live purely in the
// cache and vanish when the process exits. Ids are assigned locally from a
// millisecond-epoch counter.
type UsersService struct {
	cache  *cache.Store[models.ManagedUser]
	nextID atomic.Int64
	log    logging.Logger
}

func NewUsersService(c *cache.Store[models.ManagedUser], log logging.Logger) *UsersService {
	s := &UsersService{cache: c, log: log}
	s.nextID.Store(time.Now().UnixMilli())
	return s
}

type ManagedUserInput struct {
	Name  string      `validate:"required"`
	Email string      `validate:"required,email"`
	Role  models.Role `validate:"required,oneof=admin editor viewer"`
}

func (s *UsersService) List() []models.ManagedUser {
	return s.cache.All()
}

func (s *UsersService) Add(in ManagedUserInput) (models.ManagedUser, error) {
	if err := check(in); err != nil {
		return models.ManagedUser{}, err
	}

	u := models.ManagedUser{
		ID:    s.nextID.Add(1),
		Name:  in.Name,
		Email: in.Email,
		Role:  in.Role,
	}
	s.cache.Insert(u)
	return u, nil
}

func (s *UsersService) Update(id int64, in ManagedUserInput) (models.ManagedUser, error) {
	if err := check(in); err != nil {
		return models.ManagedUser{}, err
	}

	u := models.ManagedUser{ID: id, Name: in.Name, Email: in.Email, Role: in.Role}
	s.cache.ReplaceOne(u)
	return u, nil
}

func (s *UsersService) Remove(id int64) {
	s.cache.RemoveOne(id)
}

// SetRole changes one user's role in place. Unknown ids are a no-op, same
// as any other single-row replacement.
func (s *UsersService) SetRole(id int64, role models.Role) {
	u, ok := s.cache.Get(id)
	if !ok {
		return
	}
	u.Role = role
	s.cache.ReplaceOne(u)
}
