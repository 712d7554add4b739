package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dastudio/da-assistant/internal/domain"

	"github.com/google/uuid"
)

type CustomerStore struct {
	mu        sync.RWMutex
	customers map[string]domain.Customer
}

func NewCustomerStore() *CustomerStore {
	return &CustomerStore{customers: make(map[string]domain.Customer)}
}

func (s *CustomerStore) Add(_ context.Context, p domain.AddCustomerParams) (domain.Customer, error) {
	if strings.TrimSpace(p.Name) == "" {
		return domain.Customer{}, fmt.Errorf("%w: customer name is required", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customer := domain.Customer{
		ID:        uuid.NewString(),
		Name:      p.Name,
		Email:     p.Email,
		CreatedAt: time.Now().UTC(),
	}

	s.customers[customer.ID] = customer

	return customer, nil
}

func (s *CustomerStore) List(_ context.Context) ([]domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		out = append(out, c)
	}

	sort.Slice(out, func(a, b int) bool {
		return out[a].CreatedAt.Before(out[b].CreatedAt)
	})

	return out, nil
}
