package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"league/internal/delivery/api/response"
	"league/internal/domain/entity"
	domainerrors "league/internal/domain/errors"
	"league/internal/errors"
	"league/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	// receiptField is the multipart field carrying the receipt photo.
	receiptField = "receipt"

	// HeaderSeasonReviewCount carries the store's live review count for the current season.
	HeaderSeasonReviewCount = "X-Season-Review-Count"
	// HeaderSeason names the season the count refers to.
	HeaderSeason = "X-Season"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for review-related handlers
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// SubmitReviewRequest represents the multipart fields of a review submission
type SubmitReviewRequest struct {
	Content  string `form:"content" validate:"required"`
	Rating   int    `form:"rating" validate:"required,min=1,max=5"`
	ImageURL string `form:"image_url" validate:"omitempty,url"`
}

// ListReviewsQuery represents the paging query of a review listing
type ListReviewsQuery struct {
	Limit  int `query:"limit" validate:"min=0"`
	Offset int `query:"offset" validate:"min=0"`
}

// ReviewResponse is the wire form of a review
type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	MemberID  uuid.UUID `json:"member_id"`
	StoreID   uuid.UUID `json:"store_id"`
	Season    string    `json:"season"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SeasonSummaryResponse is the wire form of a store's season count
type SeasonSummaryResponse struct {
	StoreID uuid.UUID `json:"store_id"`
	Season  string    `json:"season"`
	Count   int64     `json:"count"`
}

// SubmitReview handles a receipt-backed review submission
func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	memberID, err := uuid.Parse(c.Param("memberId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid member ID")
	}

	var req SubmitReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	image, err := readReceipt(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	content := entity.ReviewContent{
		Content:  req.Content,
		Rating:   req.Rating,
		ImageURL: req.ImageURL,
	}

	review, err := h.reviewUC.SubmitReview(c.Request().Context(), memberID, image, content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toReviewResponse(review))
}

// GetReview handles retrieving a single live review
func (h *ReviewHandler) GetReview(c echo.Context) error {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	review, err := h.reviewUC.GetReview(c.Request().Context(), reviewID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toReviewResponse(review))
}

// DeleteReview handles soft-deleting a review
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	if err := h.reviewUC.DeleteReview(c.Request().Context(), reviewID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ListReviews handles listing every live review
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	return h.list(c, entity.ReviewFilter{})
}

// ListMemberReviews handles listing a member's live reviews
func (h *ReviewHandler) ListMemberReviews(c echo.Context) error {
	memberID, err := uuid.Parse(c.Param("memberId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid member ID")
	}

	return h.list(c, entity.ReviewFilter{MemberID: &memberID})
}

// ListStoreReviews handles listing a store's live reviews. The current
// season's review count is reported in response headers.
func (h *ReviewHandler) ListStoreReviews(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("storeId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	summary, err := h.reviewUC.GetStoreSeasonSummary(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(HeaderSeason, summary.Season)
	c.Response().Header().Set(HeaderSeasonReviewCount, strconv.FormatInt(summary.Count, 10))

	return h.list(c, entity.ReviewFilter{StoreID: &storeID})
}

// GetStoreSeasonSummary handles retrieving a store's current season count
func (h *ReviewHandler) GetStoreSeasonSummary(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("storeId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	summary, err := h.reviewUC.GetStoreSeasonSummary(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SeasonSummaryResponse{
		StoreID: summary.StoreID,
		Season:  summary.Season,
		Count:   summary.Count,
	})
}

func (h *ReviewHandler) list(c echo.Context, filter entity.ReviewFilter) error {
	var query ListReviewsQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid paging parameters")
	}

	if err := c.Validate(&query); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	filter.Limit = query.Limit
	filter.Offset = query.Offset

	page, err := h.reviewUC.ListReviews(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]ReviewResponse, 0, len(page.Reviews))
	for _, review := range page.Reviews {
		items = append(items, toReviewResponse(review))
	}

	return response.Page(c, items, response.PageInfo{
		Limit:  page.Limit,
		Offset: page.Offset,
		Count:  len(items),
	})
}

// readReceipt reads the receipt photo from the multipart form.
func readReceipt(c echo.Context) ([]byte, error) {
	fileHeader, err := c.FormFile(receiptField)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("receipt image is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open receipt upload")
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read receipt upload")
	}
	if len(image) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("receipt image is empty")
	}

	return image, nil
}

func toReviewResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		MemberID:  review.MemberID,
		StoreID:   review.StoreID,
		Season:    review.Season,
		Content:   review.Content,
		Rating:    review.Rating,
		ImageURL:  review.ImageURL,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}
