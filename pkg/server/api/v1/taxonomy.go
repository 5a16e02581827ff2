package apiv1

type FilterOption struct {
	Category  string `json:"category"`
	Id        string `json:"id"`
	Label     string `json:"label"`
	Icon      string `json:"icon"`
	IsDefault bool   `json:"isDefault,omitempty"`
	Uses      int64  `json:"uses"`
}

type FilterCategory struct {
	Category string          `json:"category"`
	Title    string          `json:"title"`
	Options  []*FilterOption `json:"options"`
	Total    int64           `json:"total,omitempty"`
}

type GetFilterOptionsRequest struct{}

type GetFilterOptionsResponse struct {
	Categories []*FilterCategory `json:"categories"`
	// Degraded is set while options are served from the last snapshot instead of the database.
	Degraded bool `json:"degraded,omitempty"`
}

type RecordSelectionRequest struct {
	Category string `json:"category"`
	OptionId string `json:"optionId"`
}

type RecordSelectionResponse struct{}
