package controllers

import (
	"net/http"

	"hotel-pms-backend/services"
	"hotel-pms-backend/utils"

	"github.com/gin-gonic/gin"
)

type AccessKeyController struct {
	KeySvc *services.AccessKeyService
}

func NewAccessKeyController(svc *services.AccessKeyService) *AccessKeyController {
	return &AccessKeyController{KeySvc: svc}
}

type generateKeyPayload struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required"`
	CustomerPhone string `json:"customer_phone"`
	CompanyName   string `json:"company_name"`
	Notes         string `json:"notes"`
}

type redeemKeyPayload struct {
	AccessKey string `json:"access_key" binding:"required"`
}

// GET /api/access-keys
func (ac *AccessKeyController) GetAccessKeys(c *gin.Context) {
	keys, err := ac.KeySvc.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, keys)
}

// POST /api/access-keys
func (ac *AccessKeyController) GenerateAccessKey(c *gin.Context) {
	var payload generateKeyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	key, err := ac.KeySvc.Generate(services.GenerateAccessKeyInput{
		CustomerName:  payload.CustomerName,
		CustomerEmail: payload.CustomerEmail,
		CustomerPhone: payload.CustomerPhone,
		CompanyName:   payload.CompanyName,
		Notes:         payload.Notes,
	})
	if err != nil {
		// the key may exist even when the email leg failed
		if key != nil {
			c.JSON(http.StatusCreated, gin.H{"success": true, "data": key, "warning": err.Error()})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, key)
}

// POST /api/access-keys/redeem — public, rate-limited
func (ac *AccessKeyController) RedeemAccessKey(c *gin.Context) {
	var payload redeemKeyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	key, err := ac.KeySvc.Redeem(payload.AccessKey)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"customerName":  key.CustomerName,
		"customerEmail": utils.MaskEmail(key.CustomerEmail),
		"usedAt":        key.UsedAt,
	})
}

// DELETE /api/access-keys/:id
func (ac *AccessKeyController) DeleteAccessKey(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ac.KeySvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
