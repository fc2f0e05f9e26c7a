package handlers_test

import (
	"context"
	"sync"

	"github.com/KAMASDM/franchise-sub002/internal/domain/entities"
	"github.com/KAMASDM/franchise-sub002/internal/domain/providers"
	"github.com/KAMASDM/franchise-sub002/internal/domain/repositories"
	apperrors "github.com/KAMASDM/franchise-sub002/pkg/errors"
)

// In-memory ports backing the real services under test.

type memBrandRepo struct {
	mu     sync.Mutex
	brands []*entities.Brand
}

func (r *memBrandRepo) Create(_ context.Context, brand *entities.Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.brands = append(r.brands, brand)
	return nil
}

func (r *memBrandRepo) GetByID(_ context.Context, id string) (*entities.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.brands {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, apperrors.NewNotFoundError("brand not found")
}

func (r *memBrandRepo) GetByIDs(_ context.Context, ids []string) ([]*entities.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var out []*entities.Brand
	for _, b := range r.brands {
		if _, ok := want[b.ID]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBrandRepo) Update(_ context.Context, brand *entities.Brand) error { return nil }

func (r *memBrandRepo) Delete(_ context.Context, id string) error { return nil }

func (r *memBrandRepo) List(_ context.Context, filter repositories.BrandFilter) ([]*entities.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entities.Brand
	for _, b := range r.brands {
		if filter.IsActive != nil && b.IsActive != *filter.IsActive {
			continue
		}
		if filter.Category != "" && b.Category != filter.Category {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *memBrandRepo) IncrementViewCount(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.brands {
		if b.ID == id {
			b.ViewCount++
			return nil
		}
	}
	return apperrors.NewNotFoundError("brand not found")
}

type memFavoriteRepo struct {
	mu        sync.Mutex
	favorites []*entities.Favorite
}

func (r *memFavoriteRepo) Add(_ context.Context, favorite *entities.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.favorites {
		if f.SessionID == favorite.SessionID && f.BrandID == favorite.BrandID {
			return nil
		}
	}
	r.favorites = append([]*entities.Favorite{favorite}, r.favorites...)
	return nil
}

func (r *memFavoriteRepo) Remove(_ context.Context, sessionID, brandID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.favorites[:0]
	for _, f := range r.favorites {
		if f.SessionID != sessionID || f.BrandID != brandID {
			kept = append(kept, f)
		}
	}
	r.favorites = kept
	return nil
}

func (r *memFavoriteRepo) ListBySession(_ context.Context, sessionID string) ([]*entities.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entities.Favorite
	for _, f := range r.favorites {
		if f.SessionID == sessionID {
			out = append(out, f)
		}
	}
	return out, nil
}

type memInquiryRepo struct {
	mu        sync.Mutex
	inquiries []*entities.Inquiry
}

func (r *memInquiryRepo) Create(_ context.Context, inquiry *entities.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inquiries = append([]*entities.Inquiry{inquiry}, r.inquiries...)
	return nil
}

func (r *memInquiryRepo) ListBySession(_ context.Context, sessionID string) ([]*entities.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entities.Inquiry
	for _, i := range r.inquiries {
		if i.SessionID == sessionID {
			out = append(out, i)
		}
	}
	return out, nil
}

type memViewRepo struct {
	mu    sync.Mutex
	views []*entities.BrandView
}

func (r *memViewRepo) Record(_ context.Context, view *entities.BrandView) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views = append([]*entities.BrandView{view}, r.views...)
	return nil
}

func (r *memViewRepo) RecentBySession(_ context.Context, sessionID string, limit int) ([]*entities.BrandView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[string]struct{})
	var out []*entities.BrandView
	for _, v := range r.views {
		if v.SessionID != sessionID {
			continue
		}
		if _, dup := seen[v.BrandID]; dup {
			continue
		}
		seen[v.BrandID] = struct{}{}
		out = append(out, v)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

type memAnalyticsRepo struct {
	mu     sync.Mutex
	events []*entities.SearchEvent
}

func (r *memAnalyticsRepo) LogEvent(_ context.Context, event *entities.SearchEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *memAnalyticsRepo) GetZeroResultQueries(_ context.Context, limit int) ([]*entities.SearchEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entities.SearchEvent
	for _, e := range r.events {
		if e.ResultCount == 0 {
			out = append(out, e)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

type memEmail struct {
	mu   sync.Mutex
	sent []providers.EmailMessage
}

func (p *memEmail) Send(_ context.Context, msg providers.EmailMessage) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, msg)
	return "msg-1", nil
}
