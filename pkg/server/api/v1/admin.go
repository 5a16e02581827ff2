package apiv1

import "time"

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type CreateBeerRequest struct {
	Beer *Beer `json:"beer"`
}

type CreateBeerResponse struct {
	Beer *Beer `json:"beer"`
}

type UpdateBeerRequest struct {
	Beer *Beer `json:"beer"`
}

type UpdateBeerResponse struct {
	Beer *Beer `json:"beer"`
}

type DeleteBeerRequest struct {
	Id string `json:"id"`
}

type DeleteBeerResponse struct{}

type SetBeerStatusRequest struct {
	Id     string `json:"id"`
	Status string `json:"status"`
}

type SetBeerStatusResponse struct {
	Beer *Beer `json:"beer"`
}

type ToggleBeerStatusRequest struct {
	Id string `json:"id"`
}

type ToggleBeerStatusResponse struct {
	Beer *Beer `json:"beer"`
}

// UploadImageRequest carries the raw image. When BeerId is set the beer's image is replaced.
type UploadImageRequest struct {
	BeerId      string `json:"beerId,omitempty"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType,omitempty"`
	Data        []byte `json:"data"`
}

type UploadImageResponse struct {
	Url  string `json:"url"`
	Beer *Beer  `json:"beer,omitempty"`
}

type AddFilterOptionRequest struct {
	Option *FilterOption `json:"option"`
}

type AddFilterOptionResponse struct {
	Option *FilterOption `json:"option"`
}

type UpdateFilterOptionRequest struct {
	Option *FilterOption `json:"option"`
}

type UpdateFilterOptionResponse struct {
	Option *FilterOption `json:"option"`
}

type DeleteFilterOptionRequest struct {
	Category string `json:"category"`
	Id       string `json:"id"`
}

type DeleteFilterOptionResponse struct{}

type ListPendingReviewsRequest struct{}

type ListPendingReviewsResponse struct {
	Reviews []*PendingReview `json:"reviews"`
}

type ApproveReviewRequest struct {
	Id string `json:"id"`
}

type ApproveReviewResponse struct {
	Review *Review `json:"review"`
}

type DeleteReviewRequest struct {
	Id string `json:"id"`
}

type DeleteReviewResponse struct{}

type GetUsageStatsRequest struct{}

type GetUsageStatsResponse struct {
	Categories []*FilterCategory `json:"categories"`
	Degraded   bool              `json:"degraded,omitempty"`
}

type SearchExternalBeersRequest struct {
	Query string `json:"query"`
}

type SearchExternalBeersResponse struct {
	Beers []*Beer `json:"beers"`
}
