package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	bankinfodomain "github.com/paperbill/paperbill/internal/bankinfo/domain"
)

func (s *Server) GetBankInfo(c *gin.Context) {
	info, err := s.bankInfoSvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	// Zero-or-one; absence is not an error, presence gates the composer.
	c.JSON(http.StatusOK, gin.H{"data": info})
}

type upsertBankInfoRequest struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	Currency      string `json:"currency"`
}

func (s *Server) UpsertBankInfo(c *gin.Context) {
	var req upsertBankInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	info, err := s.bankInfoSvc.Upsert(c.Request.Context(), bankinfodomain.UpsertBankInfoRequest{
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
		Currency:      req.Currency,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": info})
}
