package domain

import (
	"fmt"
	"time"
)

type EntityType string

const (
	EntityTypeCampaign EntityType = "campaign"
	EntityTypeAdSet    EntityType = "adset"
	EntityTypeAd       EntityType = "ad"
)

// MetricRecord é uma linha por (entity_type, entity_id, date)
type MetricRecord struct {
	ID              string     `json:"id"`
	EntityType      EntityType `json:"entity_type"`
	EntityID        string     `json:"entity_id"`
	Date            time.Time  `json:"date"`
	Impressions     int64      `json:"impressions"`
	Clicks          int64      `json:"clicks"`
	Spend           float64    `json:"spend"`
	Reach           int64      `json:"reach"`
	Conversions     float64    `json:"conversions"`
	ConversionValue float64    `json:"conversion_value"`
	CPC             float64    `json:"cpc"`
	CPM             float64    `json:"cpm"`
	CTR             float64    `json:"ctr"`
	ROAS            float64    `json:"roas"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Key identifica unicamente a linha de métrica
func (m *MetricRecord) Key() string {
	return fmt.Sprintf("%s:%s:%s", m.EntityType, m.EntityID, m.Date.Format(time.DateOnly))
}
