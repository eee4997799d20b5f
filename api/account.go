package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wandermate/wandermate-api/schema"
	"github.com/wandermate/wandermate-api/store"
)

// accountRegister is the API for register a new account
func (s *Server) accountRegister(c *gin.Context) {
	logger := log.WithField("api", "accountRegister")

	var params struct {
		Email    string                 `json:"email" binding:"required,email"`
		Password string                 `json:"password" binding:"required,min=8"`
		Metadata map[string]interface{} `json:"metadata"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	a, err := s.store.CreateAccount(params.Email, params.Password, params.Metadata)
	if err != nil {
		if err == store.ErrAccountTaken {
			abortWithEncoding(c, http.StatusForbidden, errorAccountTaken)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": a,
	})
}

// accountDetail is the API to query an account
func (s *Server) accountDetail(c *gin.Context) {
	a := c.MustGet("account")
	account, ok := a.(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": account,
	})
}

// accountUpdateMetadata is the API to update metadata for a user
func (s *Server) accountUpdateMetadata(c *gin.Context) {
	accountNumber := c.GetString("requester")

	var params struct {
		Metadata map[string]interface{} `json:"metadata"`
	}

	if err := c.BindJSON(&params); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if err := s.store.UpdateAccountMetadata(accountNumber, params.Metadata); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// accountDelete is the API to remove an account from our service
func (s *Server) accountDelete(c *gin.Context) {
	accountNumber := c.GetString("requester")

	if err := s.store.DeleteAccount(accountNumber); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	s.resolvers.Delete(accountNumber)

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// adminAccountDetail looks up an account for operational support
func (s *Server) adminAccountDetail(c *gin.Context) {
	accountNumber := c.Param("accountNumber")

	account, err := s.store.GetAccount(accountNumber)
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": account,
	})
}
