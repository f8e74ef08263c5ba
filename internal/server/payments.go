package server

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	paymentdomain "github.com/innovationlabs/trackify/internal/payment/domain"
	pricingdomain "github.com/innovationlabs/trackify/internal/pricing/domain"
)

type createPaymentRequest struct {
	PayerID        string                     `json:"payer_id"`
	PaymentMethod  string                     `json:"payment_method"`
	ServiceDate    *time.Time                 `json:"service_date"`
	IdempotencyKey string                     `json:"idempotency_key"`
	Usage          pricingdomain.UsageRequest `json:"usage"`
}

// CreatePayment re-quotes the usage at current rates and catalog prices, then
// records the payment. The amount charged is always price-at-confirmation.
func (s *Server) CreatePayment(c *gin.Context) {
	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	breakdown, err := s.pricingSvc.Quote(c.Request.Context(), req.Usage)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	method, err := paymentdomain.ParseMethod(strings.TrimSpace(req.PaymentMethod))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	idempotencyKey := strings.TrimSpace(req.IdempotencyKey)
	if idempotencyKey == "" {
		idempotencyKey = strings.TrimSpace(c.GetHeader("Idempotency-Key"))
	}

	record := paymentdomain.RecordRequest{
		PayerID:        req.PayerID,
		PaymentMethod:  method,
		Breakdown:      *breakdown,
		IdempotencyKey: idempotencyKey,
	}
	if req.ServiceDate != nil {
		record.ServiceDate = *req.ServiceDate
	}

	resp, err := s.paymentSvc.Record(c.Request.Context(), record)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondCreated(c, resp)
}

func (s *Server) ListPayments(c *gin.Context) {
	records, err := s.paymentSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if records == nil {
		records = []paymentdomain.Record{}
	}
	respondOK(c, records)
}

func (s *Server) GetPayment(c *gin.Context) {
	record, err := s.paymentSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondOK(c, record)
}

type updatePaymentStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) UpdatePaymentStatus(c *gin.Context) {
	var req updatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	record, err := s.paymentSvc.UpdateStatus(c.Request.Context(), c.Param("id"), paymentdomain.Status(strings.TrimSpace(req.Status)))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondOK(c, record)
}
