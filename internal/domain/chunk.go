package domain

import "time"

type ChunkType string

const (
	ChunkTypeStructure       ChunkType = "structure"
	ChunkTypeCampaignMetrics ChunkType = "campaign_metrics"
	ChunkTypeAdSetMetrics    ChunkType = "adset_metrics"
	ChunkTypeAdMetrics       ChunkType = "ad_metrics"
)

// MetricsChunkTypes lista os chunks de métricas na ordem de despacho
var MetricsChunkTypes = []ChunkType{
	ChunkTypeCampaignMetrics,
	ChunkTypeAdSetMetrics,
	ChunkTypeAdMetrics,
}

// EntityType retorna o tipo de entidade processado por um chunk de métricas
func (c ChunkType) EntityType() (EntityType, bool) {
	switch c {
	case ChunkTypeCampaignMetrics:
		return EntityTypeCampaign, true
	case ChunkTypeAdSetMetrics:
		return EntityTypeAdSet, true
	case ChunkTypeAdMetrics:
		return EntityTypeAd, true
	}
	return "", false
}

func (c ChunkType) IsValid() bool {
	if c == ChunkTypeStructure {
		return true
	}
	_, ok := c.EntityType()
	return ok
}

// ChunkRequest é o corpo da invocação de um chunk
type ChunkRequest struct {
	AdAccountID  string    `json:"adAccountId"`
	ChunkType    ChunkType `json:"chunkType"`
	EntityOffset *int      `json:"entityOffset,omitempty"`
	EntityLimit  *int      `json:"entityLimit,omitempty"`
	StartDate    string    `json:"startDate,omitempty"`
	EndDate      string    `json:"endDate,omitempty"`
	JobID        string    `json:"jobId,omitempty"`
	ChunkID      string    `json:"chunkId,omitempty"`
}

// ChunkResult é a resposta de sucesso de um chunk; contagens podem ser parciais ou zero
type ChunkResult struct {
	Success           bool      `json:"success"`
	ChunkType         ChunkType `json:"chunkType"`
	EntitiesProcessed int       `json:"entitiesProcessed"`
	Campaigns         *int      `json:"campaigns,omitempty"`
	AdSets            *int      `json:"adSets,omitempty"`
	Ads               *int      `json:"ads,omitempty"`
	MetricsSynced     *int      `json:"metricsSynced,omitempty"`
	StartDate         string    `json:"startDate,omitempty"`
	EndDate           string    `json:"endDate,omitempty"`
	JobID             string    `json:"jobId,omitempty"`
	ChunkID           string    `json:"chunkId,omitempty"`
}

// ChunkErrorResponse é a resposta de falha de um chunk
type ChunkErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

// EntityWindow delimita as entidades locais processadas por um chunk
type EntityWindow struct {
	Offset int
	Limit  int
}

type DateRange struct {
	Since time.Time
	Until time.Time
}

type StructureSyncResult struct {
	Campaigns int
	AdSets    int
	Ads       int
}

func (r *StructureSyncResult) EntitiesProcessed() int {
	return r.Campaigns + r.AdSets + r.Ads
}

type MetricsSyncResult struct {
	EntitiesProcessed int
	MetricsSynced     int
}

type ChunkStatus string

const (
	ChunkStatusRunning   ChunkStatus = "running"
	ChunkStatusCompleted ChunkStatus = "completed"
	ChunkStatusFailed    ChunkStatus = "failed"
)

// SyncJobChunk registra o ciclo de vida de um chunk despachado
type SyncJobChunk struct {
	JobID             string      `json:"job_id"`
	ChunkID           string      `json:"chunk_id"`
	AdAccountID       string      `json:"ad_account_id"`
	ChunkType         ChunkType   `json:"chunk_type"`
	Status            ChunkStatus `json:"status"`
	EntitiesProcessed int         `json:"entities_processed"`
	ErrorMessage      *string     `json:"error_message"`
	StartedAt         time.Time   `json:"started_at"`
	CompletedAt       *time.Time  `json:"completed_at"`
}
