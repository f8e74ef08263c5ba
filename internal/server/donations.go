package server

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	donationdomain "github.com/innovationlabs/trackify/internal/donation/domain"
)

type createDonationRequest struct {
	DonorName       string     `json:"donor_name"`
	Type            string     `json:"type"`
	Amount          *int64     `json:"amount"`
	ItemDescription string     `json:"item_description"`
	EstimatedValue  *int64     `json:"estimated_value"`
	Condition       string     `json:"condition"`
	DonationDate    *time.Time `json:"donation_date"`
}

func (s *Server) CreateDonation(c *gin.Context) {
	var req createDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	input := donationdomain.RecordInput{
		DonorName:       strings.TrimSpace(req.DonorName),
		Type:            donationdomain.Type(strings.TrimSpace(req.Type)),
		Amount:          req.Amount,
		ItemDescription: strings.TrimSpace(req.ItemDescription),
		EstimatedValue:  req.EstimatedValue,
		Condition:       strings.TrimSpace(req.Condition),
	}
	if req.DonationDate != nil {
		input.DonationDate = *req.DonationDate
	}

	record, err := s.donationSvc.Record(c.Request.Context(), input)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondCreated(c, record)
}

func (s *Server) ListDonations(c *gin.Context) {
	records, err := s.donationSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if records == nil {
		records = []donationdomain.Record{}
	}
	respondOK(c, records)
}

func (s *Server) GetDonation(c *gin.Context) {
	record, err := s.donationSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondOK(c, record)
}
