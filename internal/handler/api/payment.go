package api

import (
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	reqdto "hotel-booking-engine/internal/handler/dto/request"
	resdto "hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/internal/handler/httperr"
	"hotel-booking-engine/internal/pkg/config"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const defaultGatewayMethod = "BANK_TRANSFER"

type PaymentHandler struct {
	cmds      commands.BookingCommands
	reference *regexp.Regexp
}

func NewPaymentHandler(cmds commands.BookingCommands, cfg config.Config) *PaymentHandler {
	return &PaymentHandler{
		cmds:      cmds,
		reference: referencePattern(cfg.Gateway.ReferencePfx),
	}
}

// references are the prefix plus 10 upper-case hex digits
func referencePattern(prefix string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(prefix) + `[0-9A-F]{10}\b`)
}

// @Summary Payment gateway webhook
// @Description Incoming bank transfer evidence. Outgoing transfers and unmatched references are acknowledged and ignored.
// @Tags payments
// @Accept json
// @Produce json
// @Param Authorization header string true "Apikey <webhook secret>"
// @Param request body reqdto.PaymentWebhookRequest true "Transfer notification"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	var req reqdto.PaymentWebhookRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.TransferType != "in" {
		c.JSON(http.StatusOK, gin.H{"success": true, "ignored": "outgoing transfer"})
		return
	}

	reference := h.extractReference(req)
	if reference == "" {
		slog.Warn("gateway transfer without booking reference", "gateway_id", req.ID, "content", req.Content)
		c.JSON(http.StatusOK, gin.H{"success": true, "ignored": "no booking reference"})
		return
	}

	method := req.Method
	if method == "" {
		method = defaultGatewayMethod
	}
	txRef := req.ReferenceCode
	if txRef == "" && req.ID != 0 {
		txRef = "GW-" + strconv.FormatInt(req.ID, 10)
	}

	result, err := h.cmds.RecordGatewayPayment(c.Request.Context(), commands.GatewayNotification{
		PaymentReference: reference,
		Amount:           req.TransferAmount,
		GatewayCode:      method,
		TransactionRef:   txRef,
	})
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			slog.Warn("gateway transfer for unknown booking", "reference", reference, "gateway_id", req.ID)
			c.JSON(http.StatusOK, gin.H{"success": true, "ignored": "unknown booking reference"})
			return
		}
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "payment": resdto.FromPayment(result)})
}

func (h *PaymentHandler) extractReference(req reqdto.PaymentWebhookRequest) string {
	if req.Code != nil {
		if ref := strings.TrimSpace(*req.Code); ref != "" {
			return strings.ToUpper(ref)
		}
	}
	return strings.ToUpper(h.reference.FindString(req.Content))
}
