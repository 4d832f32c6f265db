// internal/handler/print_handler.go
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"printer-service/internal/model"
	"printer-service/internal/service"
	"printer-service/internal/utils"
)

// PrintHandler handles print job requests
type PrintHandler struct {
	printService *service.PrintService
	logger       *utils.ServiceLogger
}

// NewPrintHandler creates a new print handler
func NewPrintHandler(printService *service.PrintService, logger *zap.Logger) *PrintHandler {
	return &PrintHandler{
		printService: printService,
		logger:       utils.NewServiceLogger(logger, "print-handler"),
	}
}

// RegisterRoutes registers print routes
func (h *PrintHandler) RegisterRoutes(router *gin.RouterGroup) {
	print := router.Group("/print")
	{
		print.POST("/receipt", h.PrintReceipt)
		print.POST("/label", h.PrintLabel)
		print.POST("/raw", h.PrintRaw)
	}
	router.GET("/templates", h.ListTemplates)
}

// PrintReceipt renders and prints a receipt
// @Summary Print receipt
// @Description Render the receipt layout and send it to the target printer
// @Tags Print
// @Accept json
// @Produce json
// @Param request body service.ReceiptRequest true "Receipt job"
// @Success 200 {object} utils.APIResponse{data=model.PrintJob} "Job completed"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 502 {object} utils.APIResponse "Printer unreachable"
// @Router /print/receipt [post]
func (h *PrintHandler) PrintReceipt(c *gin.Context) {
	var req service.ReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid receipt request", err)
		return
	}

	job := h.printService.PrintReceipt(c.Request.Context(), &req)
	h.respondJob(c, job)
}

// PrintLabel renders and prints a label
// @Summary Print label
// @Description Render the selected label layout and send it to the target printer. Unrecognized kinds fall back to the product label.
// @Tags Print
// @Accept json
// @Produce json
// @Param request body service.LabelRequest true "Label job"
// @Success 200 {object} utils.APIResponse{data=model.PrintJob} "Job completed"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 502 {object} utils.APIResponse "Printer unreachable"
// @Router /print/label [post]
func (h *PrintHandler) PrintLabel(c *gin.Context) {
	var req service.LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid label request", err)
		return
	}

	job := h.printService.PrintLabel(c.Request.Context(), &req)
	h.respondJob(c, job)
}

// PrintRaw sends caller-encoded bytes to a printer
// @Summary Print raw bytes
// @Description Transmit pre-encoded command bytes without rendering
// @Tags Print
// @Accept json
// @Produce json
// @Param request body service.RawRequest true "Raw job"
// @Success 200 {object} utils.APIResponse{data=model.PrintJob} "Job completed"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 502 {object} utils.APIResponse "Printer unreachable"
// @Router /print/raw [post]
func (h *PrintHandler) PrintRaw(c *gin.Context) {
	var req service.RawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid raw request", err)
		return
	}

	job := h.printService.PrintRaw(c.Request.Context(), &req)
	h.respondJob(c, job)
}

// ListTemplates lists the registered label layouts
// @Summary List templates
// @Description List the registered label layouts and their command languages
// @Tags Print
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]template.Entry} "Registered layouts"
// @Router /templates [get]
func (h *PrintHandler) ListTemplates(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Templates retrieved", h.printService.Templates())
}

// respondJob maps the job outcome to a response. Transport failures are the
// only failure kind and surface as a bad gateway with the job attached.
func (h *PrintHandler) respondJob(c *gin.Context, job *model.PrintJob) {
	if job.Status == model.JobStatusFailed {
		utils.ErrorResponse(c, http.StatusBadGateway, "Print job failed", errors.New(job.ErrorMessage))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Print job completed", job)
}
