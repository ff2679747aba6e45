package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/Sudeep845/Raktsewa-sub001/internal/rewards/application"
	"github.com/Sudeep845/Raktsewa-sub001/internal/rewards/domain"
	"github.com/gin-gonic/gin"
)

const (
	AccountIdKey = "accountId"
	ItemIdKey    = "itemId"
)

type redeemRequestBody struct {
	AccountId int64 `json:"accountId" binding:"required,gt=0"`
	ItemId    int64 `json:"itemId" binding:"required,gt=0"`
}

type Redeemer interface {
	Redeem(ctx context.Context, accountId, itemId int64) (application.RedeemResult, error)
}

type RewardsHandler struct {
	redeemer Redeemer
	ledger   domain.AccountLedger
	catalog  domain.RewardCatalog
}

func NewRewardsHandler(redeemer Redeemer, ledger domain.AccountLedger, catalog domain.RewardCatalog) *RewardsHandler {
	return &RewardsHandler{
		redeemer: redeemer,
		ledger:   ledger,
		catalog:  catalog,
	}
}

func (h *RewardsHandler) Redeem(c *gin.Context) {
	var body redeemRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": "invalid request body"})
		return
	}

	res, err := h.redeemer.Redeem(c.Request.Context(), body.AccountId, body.ItemId)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"redemptionId":    res.RedemptionId,
		"pointsSpent":     res.PointsSpent,
		"pointsRemaining": res.PointsRemaining,
	})
}

func (h *RewardsHandler) GetBalance(c *gin.Context) {
	accountId, err := strconv.ParseInt(c.Param(AccountIdKey), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid account id"})
		return
	}

	balance, err := h.ledger.GetBalance(c.Request.Context(), accountId)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accountId": accountId, "pointsBalance": balance})
}

func (h *RewardsHandler) GetItem(c *gin.Context) {
	itemId, err := strconv.ParseInt(c.Param(ItemIdKey), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid item id"})
		return
	}

	item, err := h.catalog.GetItem(c.Request.Context(), itemId)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"itemId":        item.Id,
		"name":          item.Name,
		"pointsCost":    item.PointsCost,
		"stockQuantity": item.StockQuantity,
		"active":        item.Active,
	})
}

func handleDomainError(c *gin.Context, err error) {
	kind := errorKindFor(err)

	switch kind {
	case "NotFound":
		c.JSON(http.StatusNotFound, gin.H{"success": false, "errorKind": kind, "errors": err.Error()})
	case "Inactive", "OutOfStock", "InsufficientPoints", "Conflict":
		c.JSON(http.StatusConflict, gin.H{"success": false, "errorKind": kind, "errors": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errorKind": "Internal", "errors": "internal server error"})
	}
}

func errorKindFor(err error) string {
	switch {
	case errors.Is(err, &domain.AccountNotFoundError{}), errors.Is(err, &domain.ItemNotFoundError{}):
		return "NotFound"
	case errors.Is(err, &domain.ItemInactiveError{}):
		return "Inactive"
	case errors.Is(err, &domain.OutOfStockError{}):
		return "OutOfStock"
	case errors.Is(err, &domain.InsufficientPointsError{}):
		return "InsufficientPoints"
	case errors.Is(err, &domain.ConflictError{}):
		return "Conflict"
	default:
		return "Internal"
	}
}
