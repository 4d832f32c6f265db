// internal/service/print_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"printer-service/internal/classify"
	"printer-service/internal/config"
	"printer-service/internal/discovery/usb"
	"printer-service/internal/model"
	"printer-service/internal/transport"
	"printer-service/internal/utils"
	"printer-service/pkg/template"
)

// EventPublisher receives job lifecycle events for fan-out to subscribers.
type EventPublisher interface {
	Publish(eventType string, data interface{})
}

// TargetRequest addresses the printer a job is sent to.
type TargetRequest struct {
	ConnectionType model.ConnectionType   `json:"connection_type" binding:"required"`
	Connection     map[string]interface{} `json:"connection" binding:"required"`
}

// ReceiptRequest is a receipt print job.
type ReceiptRequest struct {
	Target  TargetRequest        `json:"target" binding:"required"`
	Receipt template.ReceiptData `json:"receipt" binding:"required"`
}

// LabelRequest is a label print job. Kind selects the layout; the matching
// data block supplies its content. Unrecognized kinds fall back to the
// product label.
type LabelRequest struct {
	Target    TargetRequest           `json:"target" binding:"required"`
	Kind      string                  `json:"kind"`
	Shipping  *template.ShippingData  `json:"shipping,omitempty"`
	Product   *template.ProductData   `json:"product,omitempty"`
	Nutrition *template.NutritionData `json:"nutrition,omitempty"`
}

// RawRequest carries pre-encoded bytes straight to the transport.
type RawRequest struct {
	Target   TargetRequest  `json:"target" binding:"required"`
	Protocol model.Protocol `json:"protocol"`
	Data     []byte         `json:"data" binding:"required"`
}

// PrintService renders templates and carries the finalized bytes to
// printers. Encoding never fails; the transport boundary is the only
// failure domain and errors are reported once, never retried.
type PrintService struct {
	config    *config.Config
	logger    *zap.Logger
	scanner   *usb.Scanner
	publisher EventPublisher
}

// NewPrintService creates the print service.
func NewPrintService(cfg *config.Config, logger *zap.Logger) *PrintService {
	return &PrintService{
		config: cfg,
		logger: logger,
		scanner: usb.NewScanner(logger, &usb.Config{
			ScanTimeout: cfg.Printer.ScanTimeout,
		}),
	}
}

// SetPublisher attaches a job event publisher.
func (ps *PrintService) SetPublisher(publisher EventPublisher) {
	ps.publisher = publisher
}

// ListDevices enumerates connected USB printers.
func (ps *PrintService) ListDevices(ctx context.Context) ([]model.DeviceDescriptor, error) {
	return ps.scanner.Scan(ctx)
}

// Classify resolves the command language for a device descriptor.
func (ps *PrintService) Classify(descriptor model.DeviceDescriptor) model.Protocol {
	return classify.Classify(descriptor)
}

// Templates lists the registered label layouts.
func (ps *PrintService) Templates() []template.Entry {
	return template.Kinds()
}

// PrintReceipt renders the receipt layout and transmits it.
func (ps *PrintService) PrintReceipt(ctx context.Context, req *ReceiptRequest) *model.PrintJob {
	if req.Receipt.Width <= 0 {
		req.Receipt.Width = ps.config.Printer.ReceiptWidth
	}
	payload := template.Receipt(req.Receipt)
	return ps.transmit(ctx, req.Target, payload, model.ProtocolESCPOS, string(template.KindReceipt))
}

// PrintLabel renders the selected label layout and transmits it.
func (ps *PrintService) PrintLabel(ctx context.Context, req *LabelRequest) *model.PrintJob {
	entry := template.Lookup(req.Kind)

	var payload []byte
	switch entry.Kind {
	case template.KindShipping:
		data := template.ShippingData{}
		if req.Shipping != nil {
			data = *req.Shipping
		}
		payload = template.ShippingLabel(data)
	case template.KindNutrition:
		data := template.NutritionData{}
		if req.Nutrition != nil {
			data = *req.Nutrition
		}
		payload = template.NutritionLabel(data)
	default:
		data := template.ProductData{}
		if req.Product != nil {
			data = *req.Product
		}
		payload = template.ProductLabel(data)
	}

	return ps.transmit(ctx, req.Target, payload, model.Protocol(entry.Protocol), string(entry.Kind))
}

// PrintRaw transmits caller-encoded bytes without rendering.
func (ps *PrintService) PrintRaw(ctx context.Context, req *RawRequest) *model.PrintJob {
	protocol := req.Protocol
	if protocol == "" {
		protocol = model.ProtocolUnknown
	}
	return ps.transmit(ctx, req.Target, req.Data, protocol, "raw")
}

// transmit opens a connection, writes the payload once and closes. The
// returned job records the outcome either way.
func (ps *PrintService) transmit(ctx context.Context, target TargetRequest, payload []byte, protocol model.Protocol, templateName string) *model.PrintJob {
	job := &model.PrintJob{
		ID:             uuid.New(),
		Protocol:       protocol,
		Template:       templateName,
		ConnectionType: target.ConnectionType,
		Status:         model.JobStatusPending,
		CreatedAt:      time.Now(),
	}

	jobLogger := utils.NewJobLogger(ps.logger, job.ID.String(), string(protocol), templateName)

	ctx, cancel := context.WithTimeout(ctx, ps.config.Printer.OperationTimeout)
	defer cancel()

	start := time.Now()
	err := ps.deliver(ctx, target, payload, jobLogger)
	job.DurationMs = time.Since(start).Milliseconds()

	if err != nil {
		job.Status = model.JobStatusFailed
		job.ErrorMessage = err.Error()
		jobLogger.Failure(err)
	} else {
		job.Status = model.JobStatusCompleted
		job.BytesWritten = len(payload)
		jobLogger.Success(len(payload))
	}

	ps.publish(job)
	return job
}

func (ps *PrintService) deliver(ctx context.Context, target TargetRequest, payload []byte, jobLogger *utils.JobLogger) error {
	conn, err := transport.Create(target.ConnectionType, target.Connection, jobLogger.Logger)
	if err != nil {
		return fmt.Errorf("invalid print target: %w", err)
	}

	if err := conn.Open(ctx); err != nil {
		return err
	}
	defer conn.Close()

	return conn.Write(ctx, payload)
}

func (ps *PrintService) publish(job *model.PrintJob) {
	if ps.publisher == nil {
		return
	}
	eventType := "print.completed"
	if job.Status == model.JobStatusFailed {
		eventType = "print.failed"
	}
	ps.publisher.Publish(eventType, job)
}
