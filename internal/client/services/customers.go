package services

import (
	"context"

	"github.com/sohaibmughall/crm-panel/internal/client/cache"
	"github.com/sohaibmughall/crm-panel/internal/client/models"
	"github.com/sohaibmughall/crm-panel/internal/logging"
)

// CustomerService manages the customers screen: the remote table plus its
// local mirror.
type CustomerService struct {
	col collection[models.Customer]
}

func NewCustomerService(gw Gateway[models.Customer], c *cache.Store[models.Customer], log logging.Logger) *CustomerService {
	return &CustomerService{col: collection[models.Customer]{gw: gw, cache: c, log: log}}
}

type CustomerInput struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Phone   string
	Company string
}

func (in CustomerInput) fields() map[string]any {
	return map[string]any{
		"name":    in.Name,
		"email":   in.Email,
		"phone":   in.Phone,
		"company": in.Company,
	}
}

func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	return s.col.refresh(ctx)
}

func (s *CustomerService) Create(ctx context.Context, in CustomerInput) (models.Customer, error) {
	if err := check(in); err != nil {
		return models.Customer{}, err
	}
	return s.col.create(ctx, in.fields())
}

func (s *CustomerService) Update(ctx context.Context, id int64, in CustomerInput) (models.Customer, error) {
	if err := check(in); err != nil {
		return models.Customer{}, err
	}
	return s.col.update(ctx, id, in.fields())
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	return s.col.remove(ctx, id)
}

// Cached returns the mirror contents without a remote round trip.
func (s *CustomerService) Cached() []models.Customer {
	return s.col.cache.All()
}

// Get looks up one cached customer, for the edit screen.
func (s *CustomerService) Get(id int64) (models.Customer, bool) {
	return s.col.cache.Get(id)
}
