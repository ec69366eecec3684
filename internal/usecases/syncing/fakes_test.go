package syncing

import (
	"context"
	"fmt"
	"sort"

	"github.com/vfg2006/ad-sync-api/internal/domain"
)

// memoryMirror simula as tabelas do espelho com upsert por chave natural
type memoryMirror struct {
	seq       int
	campaigns map[string]domain.Campaign
	adSets    map[string]domain.AdSet
	ads       map[string]domain.Ad
	metrics   map[string]domain.MetricRecord
}

func newMemoryMirror() *memoryMirror {
	return &memoryMirror{
		campaigns: map[string]domain.Campaign{},
		adSets:    map[string]domain.AdSet{},
		ads:       map[string]domain.Ad{},
		metrics:   map[string]domain.MetricRecord{},
	}
}

func (m *memoryMirror) nextID() string {
	m.seq++
	return fmt.Sprintf("id-%04d", m.seq)
}

type memoryCampaigns struct{ *memoryMirror }
type memoryAdSets struct{ *memoryMirror }
type memoryAds struct{ *memoryMirror }
type memoryMetrics struct{ *memoryMirror }

func (m memoryCampaigns) UpsertCampaigns(_ context.Context, campaigns []domain.Campaign) []domain.Campaign {
	out := make([]domain.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		key := c.AdAccountID + ":" + c.PlatformCampaignID
		if existing, ok := m.campaigns[key]; ok {
			c.ID = existing.ID
		} else {
			c.ID = m.nextID()
		}
		m.campaigns[key] = c
		out = append(out, c)
	}
	return out
}

func (m memoryCampaigns) ListEntities(_ context.Context, adAccountID string, window domain.EntityWindow) ([]domain.MirrorEntity, error) {
	entities := make([]domain.MirrorEntity, 0)
	for _, c := range m.campaigns {
		if c.AdAccountID == adAccountID {
			entities = append(entities, domain.MirrorEntity{ID: c.ID, PlatformID: c.PlatformCampaignID})
		}
	}
	return page(entities, window), nil
}

func (m memoryCampaigns) CountEntities(ctx context.Context, adAccountID string) (int, error) {
	all, err := m.ListEntities(ctx, adAccountID, domain.EntityWindow{Limit: 1 << 30})
	return len(all), err
}

func (m memoryAdSets) UpsertAdSets(_ context.Context, adSets []domain.AdSet) []domain.AdSet {
	out := make([]domain.AdSet, 0, len(adSets))
	for _, s := range adSets {
		key := s.AdCampaignID + ":" + s.PlatformAdSetID
		if existing, ok := m.adSets[key]; ok {
			s.ID = existing.ID
		} else {
			s.ID = m.nextID()
		}
		m.adSets[key] = s
		out = append(out, s)
	}
	return out
}

func (m memoryAdSets) ListEntities(_ context.Context, _ string, window domain.EntityWindow) ([]domain.MirrorEntity, error) {
	entities := make([]domain.MirrorEntity, 0)
	for _, s := range m.adSets {
		entities = append(entities, domain.MirrorEntity{ID: s.ID, PlatformID: s.PlatformAdSetID})
	}
	return page(entities, window), nil
}

func (m memoryAdSets) CountEntities(_ context.Context, _ string) (int, error) {
	return len(m.adSets), nil
}

func (m memoryAds) UpsertAds(_ context.Context, ads []domain.Ad) []domain.Ad {
	out := make([]domain.Ad, 0, len(ads))
	for _, a := range ads {
		key := a.AdSetID + ":" + a.PlatformAdID
		if existing, ok := m.ads[key]; ok {
			a.ID = existing.ID
		} else {
			a.ID = m.nextID()
		}
		m.ads[key] = a
		out = append(out, a)
	}
	return out
}

func (m memoryAds) ListEntities(_ context.Context, _ string, window domain.EntityWindow) ([]domain.MirrorEntity, error) {
	entities := make([]domain.MirrorEntity, 0)
	for _, a := range m.ads {
		entities = append(entities, domain.MirrorEntity{ID: a.ID, PlatformID: a.PlatformAdID})
	}
	return page(entities, window), nil
}

func (m memoryAds) CountEntities(_ context.Context, _ string) (int, error) {
	return len(m.ads), nil
}

func (m memoryMetrics) UpsertMetrics(_ context.Context, records []domain.MetricRecord) []domain.MetricRecord {
	out := make([]domain.MetricRecord, 0, len(records))
	for _, r := range records {
		key := r.Key()
		if existing, ok := m.metrics[key]; ok {
			r.ID = existing.ID
		} else {
			r.ID = m.nextID()
		}
		m.metrics[key] = r
		out = append(out, r)
	}
	return out
}

// page ordena pelo id local e aplica offset/limit como o SELECT do repositório
func page(entities []domain.MirrorEntity, window domain.EntityWindow) []domain.MirrorEntity {
	sort.Slice(entities, func(i, j int) bool { return entities[i].ID < entities[j].ID })
	if window.Offset >= len(entities) {
		return []domain.MirrorEntity{}
	}
	end := window.Offset + window.Limit
	if end > len(entities) {
		end = len(entities)
	}
	return entities[window.Offset:end]
}
