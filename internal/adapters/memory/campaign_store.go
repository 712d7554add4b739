// Package memory holds in-memory implementations of the assistant's
// collaborator ports. They are NOT persistent and exist for development,
// local mode and tests; the platform database backs these services in
// production.
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

type CampaignStore struct {
	mu        sync.RWMutex
	campaigns map[string]domain.Campaign
}

func NewCampaignStore() *CampaignStore {
	return &CampaignStore{campaigns: make(map[string]domain.Campaign)}
}

func (s *CampaignStore) Create(_ context.Context, p domain.CreateCampaignParams) (domain.Campaign, error) {
	if strings.TrimSpace(p.Name) == "" {
		return domain.Campaign{}, fmt.Errorf("%w: campaign name is required", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	campaign := domain.Campaign{
		ID:        uuid.NewString(),
		Name:      p.Name,
		Status:    "draft",
		StartDate: p.StartDate,
		CreatedAt: time.Now().UTC(),
	}

	s.campaigns[campaign.ID] = campaign

	return campaign, nil
}

func (s *CampaignStore) List(_ context.Context) ([]domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Campaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		out = append(out, c)
	}

	sort.Slice(out, func(a, b int) bool {
		return out[a].CreatedAt.Before(out[b].CreatedAt)
	})

	return out, nil
}

func (s *CampaignStore) GetByName(_ context.Context, name string) (domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.campaigns {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}

	return domain.Campaign{}, domain.ErrNotFound
}
