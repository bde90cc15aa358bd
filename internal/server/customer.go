package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	customerdomain "github.com/paperbill/paperbill/internal/customer/domain"
	"github.com/paperbill/paperbill/internal/usercontext"
)

type createCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

func (s *Server) CreateCustomer(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.customerSvc.Create(c.Request.Context(), customerdomain.CreateCustomerRequest{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Address: strings.TrimSpace(req.Address),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListCustomers(c *gin.Context) {
	resp, err := s.customerSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type updateCustomerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

func (s *Server) UpdateCustomer(c *gin.Context) {
	var req updateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	err := s.customerSvc.Update(c.Request.Context(), customerdomain.UpdateCustomerRequest{
		ID:      strings.TrimSpace(c.Param("id")),
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// DeleteCustomer requires ?confirm=true; deletion goes through the edit
// session so an open draft on the row is dropped with it.
func (s *Server) DeleteCustomer(c *gin.Context) {
	ownerID, _ := usercontext.OwnerIDFromContext(c.Request.Context())
	confirmed := c.Query("confirm") == "true"

	session := s.customerEditors.For(ownerID)
	if err := session.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id")), confirmed); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) StartCustomerEdit(c *gin.Context) {
	ownerID, _ := usercontext.OwnerIDFromContext(c.Request.Context())

	customer, err := s.customerSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	session := s.customerEditors.For(ownerID)
	if err := session.StartEdit(customer); err != nil {
		AbortWithError(c, err)
		return
	}

	_, draft, _ := session.Editing()
	c.JSON(http.StatusOK, gin.H{"data": draft})
}

type changeCustomerEditRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (s *Server) ChangeCustomerEdit(c *gin.Context) {
	var req changeCustomerEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	ownerID, _ := usercontext.OwnerIDFromContext(c.Request.Context())
	session := s.customerEditors.For(ownerID)
	if err := session.Change(req.Field, req.Value); err != nil {
		AbortWithError(c, err)
		return
	}

	_, draft, _ := session.Editing()
	c.JSON(http.StatusOK, gin.H{"data": draft})
}

func (s *Server) SaveCustomerEdit(c *gin.Context) {
	ownerID, _ := usercontext.OwnerIDFromContext(c.Request.Context())
	session := s.customerEditors.For(ownerID)
	if err := session.Save(c.Request.Context()); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

func (s *Server) CancelCustomerEdit(c *gin.Context) {
	ownerID, _ := usercontext.OwnerIDFromContext(c.Request.Context())
	s.customerEditors.For(ownerID).Cancel()

	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
