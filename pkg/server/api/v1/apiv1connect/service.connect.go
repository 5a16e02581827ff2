// Package apiv1connect declares the beerfinder.v1 Connect services and builds their HTTP handlers.
package apiv1connect

import (
	context "context"
	errors "errors"
	http "net/http"

	connect_go "github.com/bufbuild/connect-go"

	v1 "droscher.com/BeerFinder/pkg/server/api/v1"
)

const (
	// CatalogServiceName is the fully-qualified name of the CatalogService service.
	CatalogServiceName  = "beerfinder.v1.CatalogService"
	// TaxonomyServiceName is the fully-qualified name of the TaxonomyService service.
	TaxonomyServiceName = "beerfinder.v1.TaxonomyService"
	// ReviewServiceName is the fully-qualified name of the ReviewService service.
	ReviewServiceName   = "beerfinder.v1.ReviewService"
	// WizardServiceName is the fully-qualified name of the WizardService service.
	WizardServiceName   = "beerfinder.v1.WizardService"
	// AdminServiceName is the fully-qualified name of the AdminService service.
	AdminServiceName    = "beerfinder.v1.AdminService"
)

// Procedure names, used for routing and for the admin interceptor's allow list.
const (
	CatalogServiceListBeersProcedure         = "/beerfinder.v1.CatalogService/ListBeers"
	CatalogServiceGetBeerProcedure           = "/beerfinder.v1.CatalogService/GetBeer"
	CatalogServiceSearchBeersProcedure       = "/beerfinder.v1.CatalogService/SearchBeers"
	TaxonomyServiceGetFilterOptionsProcedure = "/beerfinder.v1.TaxonomyService/GetFilterOptions"
	TaxonomyServiceRecordSelectionProcedure  = "/beerfinder.v1.TaxonomyService/RecordSelection"
	ReviewServiceCreateReviewProcedure       = "/beerfinder.v1.ReviewService/CreateReview"
	ReviewServiceListReviewsProcedure        = "/beerfinder.v1.ReviewService/ListReviews"
	ReviewServiceGetRatingProcedure          = "/beerfinder.v1.ReviewService/GetRating"
	ReviewServiceGetRatingsProcedure         = "/beerfinder.v1.ReviewService/GetRatings"
	WizardServiceStartConversationProcedure  = "/beerfinder.v1.WizardService/StartConversation"
	WizardServiceAnswerProcedure             = "/beerfinder.v1.WizardService/Answer"
	WizardServiceGetConversationProcedure    = "/beerfinder.v1.WizardService/GetConversation"
	WizardServiceCloseConversationProcedure  = "/beerfinder.v1.WizardService/CloseConversation"
	AdminServiceLoginProcedure               = "/beerfinder.v1.AdminService/Login"
	AdminServiceCreateBeerProcedure          = "/beerfinder.v1.AdminService/CreateBeer"
	AdminServiceUpdateBeerProcedure          = "/beerfinder.v1.AdminService/UpdateBeer"
	AdminServiceDeleteBeerProcedure          = "/beerfinder.v1.AdminService/DeleteBeer"
	AdminServiceSetBeerStatusProcedure       = "/beerfinder.v1.AdminService/SetBeerStatus"
	AdminServiceToggleBeerStatusProcedure    = "/beerfinder.v1.AdminService/ToggleBeerStatus"
	AdminServiceUploadImageProcedure         = "/beerfinder.v1.AdminService/UploadImage"
	AdminServiceAddFilterOptionProcedure     = "/beerfinder.v1.AdminService/AddFilterOption"
	AdminServiceUpdateFilterOptionProcedure  = "/beerfinder.v1.AdminService/UpdateFilterOption"
	AdminServiceDeleteFilterOptionProcedure  = "/beerfinder.v1.AdminService/DeleteFilterOption"
	AdminServiceListPendingReviewsProcedure  = "/beerfinder.v1.AdminService/ListPendingReviews"
	AdminServiceApproveReviewProcedure       = "/beerfinder.v1.AdminService/ApproveReview"
	AdminServiceDeleteReviewProcedure        = "/beerfinder.v1.AdminService/DeleteReview"
	AdminServiceGetUsageStatsProcedure       = "/beerfinder.v1.AdminService/GetUsageStats"
	AdminServiceSearchExternalBeersProcedure = "/beerfinder.v1.AdminService/SearchExternalBeers"
)

type CatalogServiceHandler interface {
	ListBeers(context.Context, *connect_go.Request[v1.ListBeersRequest]) (*connect_go.Response[v1.ListBeersResponse], error)
	GetBeer(context.Context, *connect_go.Request[v1.GetBeerRequest]) (*connect_go.Response[v1.GetBeerResponse], error)
	SearchBeers(context.Context, *connect_go.Request[v1.SearchBeersRequest]) (*connect_go.Response[v1.SearchBeersResponse], error)
}

// NewCatalogServiceHandler returns the path the handler is mounted on and the handler itself. The JSON codec is
// always installed ahead of the given options.
func NewCatalogServiceHandler(svc CatalogServiceHandler, opts ...connect_go.HandlerOption) (string, http.Handler) {
	opts = append([]connect_go.HandlerOption{connect_go.WithCodec(Codec{})}, opts...)
	mux := http.NewServeMux()
	mux.Handle(CatalogServiceListBeersProcedure, connect_go.NewUnaryHandler(
		CatalogServiceListBeersProcedure,
		svc.ListBeers,
		opts...,
	))
	mux.Handle(CatalogServiceGetBeerProcedure, connect_go.NewUnaryHandler(
		CatalogServiceGetBeerProcedure,
		svc.GetBeer,
		opts...,
	))
	mux.Handle(CatalogServiceSearchBeersProcedure, connect_go.NewUnaryHandler(
		CatalogServiceSearchBeersProcedure,
		svc.SearchBeers,
		opts...,
	))

	return "/beerfinder.v1.CatalogService/", mux
}

// UnimplementedCatalogServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedCatalogServiceHandler struct{}

func (UnimplementedCatalogServiceHandler) ListBeers(context.Context, *connect_go.Request[v1.ListBeersRequest]) (*connect_go.Response[v1.ListBeersResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("beerfinder.v1.CatalogService.ListBeers is not implemented"))
}

func (UnimplementedCatalogServiceHandler) GetBeer(context.Context, *connect_go.Request[v1.GetBeerRequest]) (*connect_go.Response[v1.GetBeerResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("beerfinder.v1.CatalogService.GetBeer is not implemented"))
}

func (UnimplementedCatalogServiceHandler) SearchBeers(context.Context, *connect_go.Request[v1.SearchBeersRequest]) (*connect_go.Response[v1.SearchBeersResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("beerfinder.v1.CatalogService.SearchBeers is not implemented"))
}

type TaxonomyServiceHandler interface {
	GetFilterOptions(context.Context, *connect_go.Request[v1.GetFilterOptionsRequest]) (*connect_go.Response[v1.GetFilterOptionsResponse], error)
	RecordSelection(context.Context, *connect_go.Request[v1.RecordSelectionRequest]) (*connect_go.Response[v1.RecordSelectionResponse], error)
}

// NewTaxonomyServiceHandler returns the path the handler is mounted on and the handler itself. The JSON codec is
// always installed ahead of the given options.
func NewTaxonomyServiceHandler(svc TaxonomyServiceHandler, opts ...connect_go.HandlerOption) (string, http.Handler) {
	opts = append([]connect_go.HandlerOption{connect_go.WithCodec(Codec{})}, opts...)
	mux := http.NewServeMux()
	mux.Handle(TaxonomyServiceGetFilterOptionsProcedure, connect_go.NewUnaryHandler(
		TaxonomyServiceGetFilterOptionsProcedure,
		svc.GetFilterOptions,
		opts...,
	))
	mux.Handle(TaxonomyServiceRecordSelectionProcedure, connect_go.NewUnaryHandler(
		TaxonomyServiceRecordSelectionProcedure,
		svc.RecordSelection,
		opts...,
	))

	return "/beerfinder.v1.TaxonomyService/", mux
}

// UnimplementedTaxonomyServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedTaxonomyServiceHandler struct{}

func (UnimplementedTaxonomyServiceHandler) GetFilterOptions(context.Context, *connect_go.Request[v1.GetFilterOptionsRequest]) (*connect_go.Response[v1.GetFilterOptionsResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("beerfinder.v1.TaxonomyService.GetFilterOptions is not implemented"))
}

func (UnimplementedTaxonomyServiceHandler) RecordSelection(context.Context, *connect_go.Request[v1.RecordSelectionRequest]) (*connect_go.Response[v1.RecordSelectionResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("beerfinder.v1.TaxonomyService.RecordSelection is not implemented"))
}

type ReviewServiceHandler interface {
	CreateReview(context.Context, *connect_go.Request[v1.CreateReviewRequest]) (*connect_go.Response[v1.CreateReviewResponse], error)
	ListReviews(context.Context, *connect_go.Request[v1.ListReviewsRequest]) (*connect_go.Response[v1.ListReviewsResponse], error)
	GetRating(context.Context, *connect_go.Request[v1.GetRatingRequest]) (*connect_go.Response[v1.GetRatingResponse], error)
	GetRatings(context.Context, *connect_go.Request[v1.GetRatingsRequest]) (*connect_go.Response[v1.GetRatingsResponse], error)
}

// NewReviewServiceHandler returns the path the handler is mounted on and the handler itself. The JSON codec is
// always installed ahead of the given options.
func NewReviewServiceHandler(svc ReviewServiceHandler, opts ...connect_go.HandlerOption) (string, http.Handler) {
	opts = append([]connect_go.HandlerOption{connect_go.WithCodec(Codec{})}, opts...)
	mux := http.NewServeMux()
	mux.Handle(ReviewServiceCreateReviewProcedure, connect_go.NewUnaryHandler(
		ReviewServiceCreateReviewProcedure,
		svc.CreateReview,
		opts...,
	))
	mux.Handle(ReviewServiceListReviewsProcedure, connect_go.NewUnaryHandler(
		ReviewServiceListReviewsProcedure,
		svc.ListReviews,
		opts...,
	))
	mux.Handle(ReviewServiceGetRatingProcedure, connect_go.NewUnaryHandler(
		ReviewServiceGetRatingProcedure,
		svc.GetRating,
		opts...,
	))
	mux.Handle(ReviewServiceGetRatingsProcedure, connect_go.NewUnaryHandler(
		ReviewServiceGetRatingsProcedure,
		svc.GetRatings,
		opts...,
	))

	return "/beerfinder.v1.ReviewService/", mux
}

// UnimplementedReviewServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedReviewServiceHandler struct{}

func (UnimplementedReviewServiceHandler) CreateReview(context.Context, *connect_go.Request[v1.CreateReviewRequest]) (*connect_go.Response[v1.CreateReviewResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("beerfinder.v1.ReviewService.CreateReview is not implemented"))
}

func (UnimplementedReviewServiceHandler) ListReviews(context.Context, *connect_go.Request[v1.ListReviewsRequest]) (*connect_go.Response[v1.ListReviewsResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("beerfinder.v1.ReviewService.ListReviews is not implemented"))
}

func (UnimplementedReviewServiceHandler) GetRating(context.Context, *connect_go.Request[v1.GetRatingRequest]) (*connect_go.Response[v1.GetRatingResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("beerfinder.v1.ReviewService.GetRating is not implemented"))
}

func (UnimplementedReviewServiceHandler) GetRatings(context.Context, *connect_go.Request[v1.GetRatingsRequest]) (*connect_go.Response[v1.GetRatingsResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("beerfinder.v1.ReviewService.GetRatings is not implemented"))
}

type WizardServiceHandler interface {
	StartConversation(context.Context, *connect_go.Request[v1.StartConversationRequest]) (*connect_go.Response[v1.StartConversationResponse], error)
	Answer(context.Context, *connect_go.Request[v1.AnswerRequest]) (*connect_go.Response[v1.AnswerResponse], error)
	GetConversation(context.Context, *connect_go.Request[v1.GetConversationRequest]) (*connect_go.Response[v1.GetConversationResponse], error)
	CloseConversation(context.Context, *connect_go.Request[v1.CloseConversationRequest]) (*connect_go.Response[v1.CloseConversationResponse], error)
}

// NewWizardServiceHandler returns the path the handler is mounted on and the handler itself. The JSON codec is
// always installed ahead of the given options.
func NewWizardServiceHandler(svc WizardServiceHandler, opts ...connect_go.HandlerOption) (string, http.Handler) {
	opts = append([]connect_go.HandlerOption{connect_go.WithCodec(Codec{})}, opts...)
	mux := http.NewServeMux()
	mux.Handle(WizardServiceStartConversationProcedure, connect_go.NewUnaryHandler(
		WizardServiceStartConversationProcedure,
		svc.StartConversation,
		opts...,
	))
	mux.Handle(WizardServiceAnswerProcedure, connect_go.NewUnaryHandler(
		WizardServiceAnswerProcedure,
		svc.Answer,
		opts...,
	))
	mux.Handle(WizardServiceGetConversationProcedure, connect_go.NewUnaryHandler(
		WizardServiceGetConversationProcedure,
		svc.GetConversation,
		opts...,
	))
	mux.Handle(WizardServiceCloseConversationProcedure, connect_go.NewUnaryHandler(
		WizardServiceCloseConversationProcedure,
		svc.CloseConversation,
		opts...,
	))

	return "/beerfinder.v1.WizardService/", mux
}

// UnimplementedWizardServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedWizardServiceHandler struct{}

func (UnimplementedWizardServiceHandler) StartConversation(context.Context, *connect_go.Request[v1.StartConversationRequest]) (*connect_go.Response[v1.StartConversationResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("beerfinder.v1.WizardService.StartConversation is not implemented"))
}

func (UnimplementedWizardServiceHandler) Answer(context.Context, *connect_go.Request[v1.AnswerRequest]) (*connect_go.Response[v1.AnswerResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("beerfinder.v1.WizardService.Answer is not implemented"))
}

func (UnimplementedWizardServiceHandler) GetConversation(context.Context, *connect_go.Request[v1.GetConversationRequest]) (*connect_go.Response[v1.GetConversationResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("beerfinder.v1.WizardService.GetConversation is not implemented"))
}

func (UnimplementedWizardServiceHandler) CloseConversation(context.Context, *connect_go.Request[v1.CloseConversationRequest]) (*connect_go.Response[v1.CloseConversationResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("beerfinder.v1.WizardService.CloseConversation is not implemented"))
}

type AdminServiceHandler interface {
	Login(context.Context, *connect_go.Request[v1.LoginRequest]) (*connect_go.Response[v1.LoginResponse], error)
	CreateBeer(context.Context, *connect_go.Request[v1.CreateBeerRequest]) (*connect_go.Response[v1.CreateBeerResponse], error)
	UpdateBeer(context.Context, *connect_go.Request[v1.UpdateBeerRequest]) (*connect_go.Response[v1.UpdateBeerResponse], error)
	DeleteBeer(context.Context, *connect_go.Request[v1.DeleteBeerRequest]) (*connect_go.Response[v1.DeleteBeerResponse], error)
	SetBeerStatus(context.Context, *connect_go.Request[v1.SetBeerStatusRequest]) (*connect_go.Response[v1.SetBeerStatusResponse], error)
	ToggleBeerStatus(context.Context, *connect_go.Request[v1.ToggleBeerStatusRequest]) (*connect_go.Response[v1.ToggleBeerStatusResponse], error)
	UploadImage(context.Context, *connect_go.Request[v1.UploadImageRequest]) (*connect_go.Response[v1.UploadImageResponse], error)
	AddFilterOption(context.Context, *connect_go.Request[v1.AddFilterOptionRequest]) (*connect_go.Response[v1.AddFilterOptionResponse], error)
	UpdateFilterOption(context.Context, *connect_go.Request[v1.UpdateFilterOptionRequest]) (*connect_go.Response[v1.UpdateFilterOptionResponse], error)
	DeleteFilterOption(context.Context, *connect_go.Request[v1.DeleteFilterOptionRequest]) (*connect_go.Response[v1.DeleteFilterOptionResponse], error)
	ListPendingReviews(context.Context, *connect_go.Request[v1.ListPendingReviewsRequest]) (*connect_go.Response[v1.ListPendingReviewsResponse], error)
	ApproveReview(context.Context, *connect_go.Request[v1.ApproveReviewRequest]) (*connect_go.Response[v1.ApproveReviewResponse], error)
	DeleteReview(context.Context, *connect_go.Request[v1.DeleteReviewRequest]) (*connect_go.Response[v1.DeleteReviewResponse], error)
	GetUsageStats(context.Context, *connect_go.Request[v1.GetUsageStatsRequest]) (*connect_go.Response[v1.GetUsageStatsResponse], error)
	SearchExternalBeers(context.Context, *connect_go.Request[v1.SearchExternalBeersRequest]) (*connect_go.Response[v1.SearchExternalBeersResponse], error)
}

// NewAdminServiceHandler returns the path the handler is mounted on and the handler itself. The JSON codec is
// always installed ahead of the given options.
func NewAdminServiceHandler(svc AdminServiceHandler, opts ...connect_go.HandlerOption) (string, http.Handler) {
	opts = append([]connect_go.HandlerOption{connect_go.WithCodec(Codec{})}, opts...)
	mux := http.NewServeMux()
	mux.Handle(AdminServiceLoginProcedure, connect_go.NewUnaryHandler(
		AdminServiceLoginProcedure,
		svc.Login,
		opts...,
	))
	mux.Handle(AdminServiceCreateBeerProcedure, connect_go.NewUnaryHandler(
		AdminServiceCreateBeerProcedure,
		svc.CreateBeer,
		opts...,
	))
	mux.Handle(AdminServiceUpdateBeerProcedure, connect_go.NewUnaryHandler(
		AdminServiceUpdateBeerProcedure,
		svc.UpdateBeer,
		opts...,
	))
	mux.Handle(AdminServiceDeleteBeerProcedure, connect_go.NewUnaryHandler(
		AdminServiceDeleteBeerProcedure,
		svc.DeleteBeer,
		opts...,
	))
	mux.Handle(AdminServiceSetBeerStatusProcedure, connect_go.NewUnaryHandler(
		AdminServiceSetBeerStatusProcedure,
		svc.SetBeerStatus,
		opts...,
	))
	mux.Handle(AdminServiceToggleBeerStatusProcedure, connect_go.NewUnaryHandler(
		AdminServiceToggleBeerStatusProcedure,
		svc.ToggleBeerStatus,
		opts...,
	))
	mux.Handle(AdminServiceUploadImageProcedure, connect_go.NewUnaryHandler(
		AdminServiceUploadImageProcedure,
		svc.UploadImage,
		opts...,
	))
	mux.Handle(AdminServiceAddFilterOptionProcedure, connect_go.NewUnaryHandler(
		AdminServiceAddFilterOptionProcedure,
		svc.AddFilterOption,
		opts...,
	))
	mux.Handle(AdminServiceUpdateFilterOptionProcedure, connect_go.NewUnaryHandler(
		AdminServiceUpdateFilterOptionProcedure,
		svc.UpdateFilterOption,
		opts...,
	))
	mux.Handle(AdminServiceDeleteFilterOptionProcedure, connect_go.NewUnaryHandler(
		AdminServiceDeleteFilterOptionProcedure,
		svc.DeleteFilterOption,
		opts...,
	))
	mux.Handle(AdminServiceListPendingReviewsProcedure, connect_go.NewUnaryHandler(
		AdminServiceListPendingReviewsProcedure,
		svc.ListPendingReviews,
		opts...,
	))
	mux.Handle(AdminServiceApproveReviewProcedure, connect_go.NewUnaryHandler(
		AdminServiceApproveReviewProcedure,
		svc.ApproveReview,
		opts...,
	))
	mux.Handle(AdminServiceDeleteReviewProcedure, connect_go.NewUnaryHandler(
		AdminServiceDeleteReviewProcedure,
		svc.DeleteReview,
		opts...,
	))
	mux.Handle(AdminServiceGetUsageStatsProcedure, connect_go.NewUnaryHandler(
		AdminServiceGetUsageStatsProcedure,
		svc.GetUsageStats,
		opts...,
	))
	mux.Handle(AdminServiceSearchExternalBeersProcedure, connect_go.NewUnaryHandler(
		AdminServiceSearchExternalBeersProcedure,
		svc.SearchExternalBeers,
		opts...,
	))

	return "/beerfinder.v1.AdminService/", mux
}

// UnimplementedAdminServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedAdminServiceHandler struct{}

func (UnimplementedAdminServiceHandler) Login(context.Context, *connect_go.Request[v1.LoginRequest]) (*connect_go.Response[v1.LoginResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("beerfinder.v1.AdminService.Login is not implemented"))
}

func (UnimplementedAdminServiceHandler) CreateBeer(context.Context, *connect_go.Request[v1.CreateBeerRequest]) (*connect_go.Response[v1.CreateBeerResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("beerfinder.v1.AdminService.CreateBeer is not implemented"))
}

func (UnimplementedAdminServiceHandler) UpdateBeer(context.Context, *connect_go.Request[v1.UpdateBeerRequest]) (*connect_go.Response[v1.UpdateBeerResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("beerfinder.v1.AdminService.UpdateBeer is not implemented"))
}

func (UnimplementedAdminServiceHandler) DeleteBeer(context.Context, *connect_go.Request[v1.DeleteBeerRequest]) (*connect_go.Response[v1.DeleteBeerResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("beerfinder.v1.AdminService.DeleteBeer is not implemented"))
}

func (UnimplementedAdminServiceHandler) SetBeerStatus(context.Context, *connect_go.Request[v1.SetBeerStatusRequest]) (*connect_go.Response[v1.SetBeerStatusResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("beerfinder.v1.AdminService.SetBeerStatus is not implemented"))
}

func (UnimplementedAdminServiceHandler) ToggleBeerStatus(context.Context, *connect_go.Request[v1.ToggleBeerStatusRequest]) (*connect_go.Response[v1.ToggleBeerStatusResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("beerfinder.v1.AdminService.ToggleBeerStatus is not implemented"))
}

func (UnimplementedAdminServiceHandler) UploadImage(context.Context, *connect_go.Request[v1.UploadImageRequest]) (*connect_go.Response[v1.UploadImageResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("beerfinder.v1.AdminService.UploadImage is not implemented"))
}

func (UnimplementedAdminServiceHandler) AddFilterOption(context.Context, *connect_go.Request[v1.AddFilterOptionRequest]) (*connect_go.Response[v1.AddFilterOptionResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("beerfinder.v1.AdminService.AddFilterOption is not implemented"))
}

func (UnimplementedAdminServiceHandler) UpdateFilterOption(context.Context, *connect_go.Request[v1.UpdateFilterOptionRequest]) (*connect_go.Response[v1.UpdateFilterOptionResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("beerfinder.v1.AdminService.UpdateFilterOption is not implemented"))
}

func (UnimplementedAdminServiceHandler) DeleteFilterOption(context.Context, *connect_go.Request[v1.DeleteFilterOptionRequest]) (*connect_go.Response[v1.DeleteFilterOptionResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("beerfinder.v1.AdminService.DeleteFilterOption is not implemented"))
}

func (UnimplementedAdminServiceHandler) ListPendingReviews(context.Context, *connect_go.Request[v1.ListPendingReviewsRequest]) (*connect_go.Response[v1.ListPendingReviewsResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("beerfinder.v1.AdminService.ListPendingReviews is not implemented"))
}

func (UnimplementedAdminServiceHandler) ApproveReview(context.Context, *connect_go.Request[v1.ApproveReviewRequest]) (*connect_go.Response[v1.ApproveReviewResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("beerfinder.v1.AdminService.ApproveReview is not implemented"))
}

func (UnimplementedAdminServiceHandler) DeleteReview(context.Context, *connect_go.Request[v1.DeleteReviewRequest]) (*connect_go.Response[v1.DeleteReviewResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("beerfinder.v1.AdminService.DeleteReview is not implemented"))
}

func (UnimplementedAdminServiceHandler) GetUsageStats(context.Context, *connect_go.Request[v1.GetUsageStatsRequest]) (*connect_go.Response[v1.GetUsageStatsResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("beerfinder.v1.AdminService.GetUsageStats is not implemented"))
}

func (UnimplementedAdminServiceHandler) SearchExternalBeers(context.Context, *connect_go.Request[v1.SearchExternalBeersRequest]) (*connect_go.Response[v1.SearchExternalBeersResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("beerfinder.v1.AdminService.SearchExternalBeers is not implemented"))
}
