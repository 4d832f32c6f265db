// internal/handler/device_handler.go
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"printer-service/internal/model"
	"printer-service/internal/service"
	"printer-service/internal/utils"
)

// DeviceHandler handles printer discovery and classification requests
type DeviceHandler struct {
	printService *service.PrintService
	logger       *utils.ServiceLogger
}

// NewDeviceHandler creates a new device handler
func NewDeviceHandler(printService *service.PrintService, logger *zap.Logger) *DeviceHandler {
	return &DeviceHandler{
		printService: printService,
		logger:       utils.NewServiceLogger(logger, "device-handler"),
	}
}

// RegisterRoutes registers device routes
func (h *DeviceHandler) RegisterRoutes(router *gin.RouterGroup) {
	devices := router.Group("/devices")
	{
		devices.GET("", h.ListDevices)
		devices.POST("/classify", h.ClassifyDevice)
	}
}

// ClassifiedDevice pairs a descriptor with its resolved command language.
type ClassifiedDevice struct {
	model.DeviceDescriptor
	DeviceID string         `json:"device_id"`
	Protocol model.Protocol `json:"protocol"`
}

// ListDevices lists connected USB printers
// @Summary List printers
// @Description Enumerate connected USB printers with their classified command language
// @Tags Devices
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]ClassifiedDevice} "Connected printers"
// @Failure 502 {object} utils.APIResponse "Device enumeration failed"
// @Router /devices [get]
func (h *DeviceHandler) ListDevices(c *gin.Context) {
	descriptors, err := h.printService.ListDevices(c.Request.Context())
	if err != nil {
		h.logger.Error("Device enumeration failed", zap.Error(err))
		utils.ErrorResponse(c, http.StatusBadGateway, "Failed to list devices", err)
		return
	}

	devices := make([]ClassifiedDevice, 0, len(descriptors))
	for _, descriptor := range descriptors {
		devices = append(devices, ClassifiedDevice{
			DeviceDescriptor: descriptor,
			DeviceID:         descriptor.ID(),
			Protocol:         h.printService.Classify(descriptor),
		})
	}

	utils.SuccessResponse(c, http.StatusOK, "Devices retrieved", devices)
}

// ClassifyDevice classifies an arbitrary descriptor
// @Summary Classify printer
// @Description Resolve the command language for a device descriptor
// @Tags Devices
// @Accept json
// @Produce json
// @Param descriptor body model.DeviceDescriptor true "Device descriptor"
// @Success 200 {object} utils.APIResponse{data=ClassifiedDevice} "Classification result"
// @Failure 400 {object} utils.APIResponse "Invalid descriptor"
// @Router /devices/classify [post]
func (h *DeviceHandler) ClassifyDevice(c *gin.Context) {
	var descriptor model.DeviceDescriptor
	if err := c.ShouldBindJSON(&descriptor); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid device descriptor", err)
		return
	}

	result := ClassifiedDevice{
		DeviceDescriptor: descriptor,
		DeviceID:         descriptor.ID(),
		Protocol:         h.printService.Classify(descriptor),
	}

	utils.SuccessResponse(c, http.StatusOK, "Device classified", result)
}
