package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/receipthub/receipthub-api/internal/application/service"
	"github.com/receipthub/receipthub-api/internal/domain/enum"
	"github.com/receipthub/receipthub-api/internal/presentation/http/dto/request"
	"github.com/receipthub/receipthub-api/internal/presentation/http/dto/response"
	"github.com/receipthub/receipthub-api/pkg/apperror"
	"github.com/receipthub/receipthub-api/pkg/utils"
)

// CheckHandler handles check-related HTTP requests
type CheckHandler struct {
	checkService *service.CheckService
}

// NewCheckHandler creates a new check handler
func NewCheckHandler(checkService *service.CheckService) *CheckHandler {
	return &CheckHandler{checkService: checkService}
}

// Create handles check creation
func (h *CheckHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req request.CreateCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	draft := &service.CheckDraft{
		Payment: service.PaymentInput{
			Type:   enum.PaymentType(req.Payment.Type),
			Amount: req.Payment.Amount,
		},
	}
	for _, p := range req.Products {
		draft.Items = append(draft.Items, service.CheckItemInput{
			Name:     p.Name,
			Price:    p.Price,
			Quantity: p.Quantity,
		})
	}

	check, err := h.checkService.CreateCheck(c.Request.Context(), *userID, draft)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, check)
}

// List handles the filtered check listing
func (h *CheckHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var query request.ListChecksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params, err := query.ToFilterParams()
	if err != nil {
		response.Error(c, err)
		return
	}

	checks, err := h.checkService.ListChecks(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, checks)
}

// Get handles fetching a single check. The response carries a receipt_url
// pointing at the text rendition of the same check.
func (h *CheckHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	// Unparseable ids report not-found, same as unknown ones
	checkID, err := utils.ParseUUID(c.Param("check_id"))
	if err != nil {
		response.Error(c, apperror.ErrCheckNotFound)
		return
	}

	check, err := h.checkService.GetCheck(c.Request.Context(), *userID, checkID)
	if err != nil {
		response.Error(c, err)
		return
	}

	check.ReceiptURL = requestURL(c) + "/text"

	c.JSON(http.StatusOK, check)
}

// Text handles the plain-text rendition of a check
func (h *CheckHandler) Text(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	checkID, err := utils.ParseUUID(c.Param("check_id"))
	if err != nil {
		response.Error(c, apperror.ErrCheckNotFound)
		return
	}

	var query request.CheckTextQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	text, err := h.checkService.RenderCheckText(c.Request.Context(), *userID, checkID, query.ToLayout())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

// requestURL reconstructs the absolute URL of the current request
func requestURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host + c.Request.URL.Path
}
