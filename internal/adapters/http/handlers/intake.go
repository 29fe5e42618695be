package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mhlegal/intake-service/internal/adapters/http/dto"
	"github.com/mhlegal/intake-service/internal/app"
	"github.com/mhlegal/intake-service/internal/domain"
)

// IntakeHandler handles the public intake endpoints.
type IntakeHandler struct {
	service *app.IntakeService
}

// NewIntakeHandler creates a new intake handler.
func NewIntakeHandler(service *app.IntakeService) *IntakeHandler {
	return &IntakeHandler{
		service: service,
	}
}

// SubmitConsult handles POST /api/v1/consult
// Accepts a consultation request and notifies the office by email.
//
// @Summary Submit a consultation request
// @Description Validates and stores a consultation request, then notifies staff
// @Tags intake
// @Accept json
// @Produce json
// @Success 200 {object} dto.IntakeResponse
// @Failure 400 {object} dto.IntakeResponse
// @Failure 500 {object} dto.IntakeResponse
// @Router /api/v1/consult [post]
func (h *IntakeHandler) SubmitConsult(c *gin.Context) {
	var req dto.ConsultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidInput))
		return
	}

	receipt, err := h.service.SubmitConsult(c.Request.Context(), req.ToDomain(), requestMeta(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	if receipt.Discarded {
		// Automated submissions get a normal-looking success with no id.
		c.JSON(http.StatusOK, &dto.IntakeResponse{OK: true})
		return
	}

	c.JSON(http.StatusOK, dto.NewAcceptedResponse(receipt.ID))
}

// SubmitQuote handles POST /api/v1/quote
// Accepts a fee-quote request and emails the rendered quote to the requester.
//
// @Summary Submit a fee-quote request
// @Description Validates and stores a quote request, then delivers the quote document
// @Tags intake
// @Accept json
// @Produce json
// @Success 200 {object} dto.IntakeResponse
// @Failure 400 {object} dto.IntakeResponse
// @Failure 500 {object} dto.IntakeResponse
// @Router /api/v1/quote [post]
func (h *IntakeHandler) SubmitQuote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidInput))
		return
	}

	receipt, err := h.service.SubmitQuote(c.Request.Context(), req.ToDomain(), requestMeta(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	if receipt.Discarded {
		c.JSON(http.StatusOK, &dto.IntakeResponse{OK: true})
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteAcceptedResponse(receipt.ID, receipt.QuoteNumber))
}

// requestMeta captures transport metadata persisted alongside each record.
func requestMeta(c *gin.Context) domain.RequestMeta {
	return domain.RequestMeta{
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

// RegisterIntakeRoutes registers intake routes on the given router group.
func (h *IntakeHandler) RegisterIntakeRoutes(rg *gin.RouterGroup) {
	rg.POST("/consult", h.SubmitConsult)
	rg.POST("/quote", h.SubmitQuote)
}
