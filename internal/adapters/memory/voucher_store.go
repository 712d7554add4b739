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

type VoucherStore struct {
	mu       sync.RWMutex
	vouchers map[string]domain.Voucher
}

func NewVoucherStore() *VoucherStore {
	return &VoucherStore{vouchers: make(map[string]domain.Voucher)}
}

func (s *VoucherStore) Create(_ context.Context, p domain.CreateVoucherParams) (domain.Voucher, error) {
	if strings.TrimSpace(p.Code) == "" {
		return domain.Voucher{}, fmt.Errorf("%w: voucher code is required", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	voucher := domain.Voucher{
		ID:        uuid.NewString(),
		Code:      p.Code,
		Discount:  p.Discount,
		CreatedAt: time.Now().UTC(),
	}

	s.vouchers[voucher.ID] = voucher

	return voucher, nil
}

func (s *VoucherStore) List(_ context.Context) ([]domain.Voucher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Voucher, 0, len(s.vouchers))
	for _, v := range s.vouchers {
		out = append(out, v)
	}

	sort.Slice(out, func(a, b int) bool {
		return out[a].CreatedAt.Before(out[b].CreatedAt)
	})

	return out, nil
}
