package controller

import (
	"errors"
	"taskforge_backend/internal/service"
	"taskforge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EarningsController struct {
	WithdrawalService *service.WithdrawalService
}

func NewEarningsController(withdrawalService *service.WithdrawalService) *EarningsController {
	return &EarningsController{WithdrawalService: withdrawalService}
}

// GetEarnings godoc
// @Summary 收益汇总
// @Description 返回余额、累计收入、收款账户与提现历史
// @Tags 收益
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.EarningsSummary} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/earnings [get]
func (c *EarningsController) GetEarnings(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	summary, err := c.WithdrawalService.GetEarnings(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, summary)
}

type PayoutAccountRequest struct {
	Provider string `json:"provider" binding:"required,oneof=paypal bank"`
	Account  string `json:"account" binding:"required"`
}

// LinkPayoutAccount godoc
// @Summary 绑定收款账户
// @Description 绑定或更换提现收款账户
// @Tags 收益
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body PayoutAccountRequest true "收款账户"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/earnings/payout-account [post]
func (c *EarningsController) LinkPayoutAccount(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req PayoutAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.WithdrawalService.LinkPayoutAccount(claims.UserID, req.Provider, req.Account); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

type WithdrawalRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// RequestWithdrawal godoc
// @Summary 发起提现
// @Description 从余额中提取指定金额，低于最低限额或余额不足会被拒绝
// @Tags 收益
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body WithdrawalRequest true "提现金额"
// @Success 201 {object} util.Response{data=model.Withdrawal} "提现单已创建"
// @Failure 400 {object} util.Response "低于最低提现额或未绑定账户"
// @Failure 422 {object} util.Response "余额不足"
// @Router /api/earnings/withdrawals [post]
func (c *EarningsController) RequestWithdrawal(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req WithdrawalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	w, err := c.WithdrawalService.RequestWithdrawal(claims.UserID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrBelowMinimum):
			util.BadRequest(ctx, "提现金额低于最低限额")
		case errors.Is(err, util.ErrNoPayoutAccount):
			util.BadRequest(ctx, "请先绑定收款账户")
		case errors.Is(err, util.ErrInsufficientBalance):
			util.Error(ctx, 422, "余额不足")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, w)
}

// ListWithdrawals godoc
// @Summary 提现历史
// @Description 返回当前用户的提现记录
// @Tags 收益
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Withdrawal} "成功"
// @Router /api/earnings/withdrawals [get]
func (c *EarningsController) ListWithdrawals(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	list, err := c.WithdrawalService.ListWithdrawals(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, list)
}
