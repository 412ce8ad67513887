package fiber

// StorePointRequest represents one daily metric reading
// @Description Daily metric point DTO
type StorePointRequest struct {
	MetricKey string  `json:"metric_key" example:"followers"`
	Date      string  `json:"date" example:"2024-01-01"`
	Value     float64 `json:"value" example:"1000"`
}

type StorePointResponse struct {
	Status string `json:"status"`
}

type BulkStorePointsRequest struct {
	Points []StorePointRequest `json:"points"`
}

type BulkStorePointsResponse struct {
	Written   int `json:"written"`
	Unchanged int `json:"unchanged"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_point"`
	Message string `json:"message" example:"invalid metric point"`
}
