package metadomain

// PurchaseActionType é o action_type usado para conversões e receita
const PurchaseActionType = "purchase"

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// InsightRow é uma linha diária do endpoint de insights (time_increment=1)
type InsightRow struct {
	DateStart   string   `json:"date_start"`
	DateStop    string   `json:"date_stop"`
	Impressions string   `json:"impressions"`
	Clicks      string   `json:"clicks"`
	Spend       string   `json:"spend"`
	Reach       string   `json:"reach"`
	CPC         string   `json:"cpc"`
	CPM         string   `json:"cpm"`
	CTR         string   `json:"ctr"`
	Actions     []Action `json:"actions"`
}

// PurchaseValue retorna o valor da primeira ação de compra, se houver
func (r *InsightRow) PurchaseValue() (string, bool) {
	for _, action := range r.Actions {
		if action.ActionType == PurchaseActionType {
			return action.Value, true
		}
	}
	return "", false
}
