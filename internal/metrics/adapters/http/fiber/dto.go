package fiber

type DailyMetricResponse struct {
	Date  string  `json:"date" example:"2024-01-01"`
	Value float64 `json:"value" example:"120"`
}

type MetricResponse struct {
	Key          string                `json:"key" example:"audience"`
	Label        string                `json:"label" example:"Audience"`
	CurrentValue float64               `json:"current_value" example:"1500"`
	IsLoading    bool                  `json:"is_loading"`
	History      []DailyMetricResponse `json:"history"`
}

type AccountErrorResponse struct {
	AccountID string `json:"account_id,omitempty" example:"acc_123"`
	Message   string `json:"message" example:"upstream returned status 429"`
}

type AggregateResponse struct {
	PassID    string                 `json:"pass_id"`
	Days      int                    `json:"days" example:"30"`
	IsLoading bool                   `json:"is_loading"`
	Errors    []AccountErrorResponse `json:"errors"`
	Metrics   []MetricResponse       `json:"metrics"`
}

type CategoryResponse struct {
	Key     string   `json:"key" example:"audience"`
	Label   string   `json:"label" example:"Audience"`
	Aliases []string `json:"aliases,omitempty"`
	Derived bool     `json:"derived,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"invalid time window"`
}
