package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paperbill/paperbill/internal/draft"
)

// GetDraft opens (or resumes) the owner's draft. The bank-info gate
// fires here: without bank info the composer never comes into
// existence and the handler returns 412.
func (s *Server) GetDraft(c *gin.Context) {
	session, err := s.drafts.Open(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": session.State()})
}

type updateDraftRequest struct {
	Customer *string `json:"customer"`
	Title    *string `json:"title"`
}

func (s *Server) UpdateDraft(c *gin.Context) {
	var req updateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	session, err := s.drafts.Current(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if req.Customer != nil {
		session.SetCustomer(*req.Customer)
	}
	if req.Title != nil {
		session.SetTitle(*req.Title)
	}

	c.JSON(http.StatusOK, gin.H{"data": session.State()})
}

func (s *Server) SetDraftInput(c *gin.Context) {
	var input draft.ItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	session, err := s.drafts.Current(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := session.SetInput(input); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": session.State()})
}

// AddDraftItem moves the pending input row into the item list. A
// rejected row is not an error: the input clears and the list stays
// as it was, which the returned state reflects.
func (s *Server) AddDraftItem(c *gin.Context) {
	session, err := s.drafts.Current(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	item, added := session.AddItem()

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"added": added,
		"item":  item,
		"data":  session.State(),
	})
}

func (s *Server) DeleteDraftItem(c *gin.Context) {
	session, err := s.drafts.Current(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	session.DeleteItem(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"data": session.State()})
}

func (s *Server) StartDraftEdit(c *gin.Context) {
	session, err := s.drafts.Current(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := session.StartEdit(c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": session.State()})
}

func (s *Server) ChangeDraftEdit(c *gin.Context) {
	var patch draft.ItemDraftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	session, err := s.drafts.Current(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := session.ChangeEdit(patch); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": session.State()})
}

func (s *Server) SaveDraftEdit(c *gin.Context) {
	session, err := s.drafts.Current(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := session.SaveEdit(); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": session.State()})
}

func (s *Server) CancelDraftEdit(c *gin.Context) {
	session, err := s.drafts.Current(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	session.CancelEdit()
	c.JSON(http.StatusOK, gin.H{"data": session.State()})
}

// SubmitDraft persists the composed invoice and drops the session on
// success. On failure the session stays so nothing typed is lost.
func (s *Server) SubmitDraft(c *gin.Context) {
	session, err := s.drafts.Current(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	invoice, err := session.Submit(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.drafts.Discard(c.Request.Context())
	c.JSON(http.StatusCreated, gin.H{"data": invoice})
}

func (s *Server) DiscardDraft(c *gin.Context) {
	s.drafts.Discard(c.Request.Context())
	c.Status(http.StatusNoContent)
}
