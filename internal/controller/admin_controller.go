package controller

import (
	"errors"
	"strconv"
	"taskforge_backend/internal/service"
	"taskforge_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	VerificationService *service.VerificationService
	WithdrawalService   *service.WithdrawalService
}

func NewAdminController(verificationService *service.VerificationService, withdrawalService *service.WithdrawalService) *AdminController {
	return &AdminController{
		VerificationService: verificationService,
		WithdrawalService:   withdrawalService,
	}
}

// ListPendingDocuments godoc
// @Summary 待审核材料队列
// @Description 返回所有待审核的实名材料
// @Tags 管理
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.VerificationDocument} "成功"
// @Router /api/admin/verification/documents [get]
func (c *AdminController) ListPendingDocuments(ctx *gin.Context) {
	docs, err := c.VerificationService.ListPendingDocuments()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, docs)
}

type ReviewRequest struct {
	Approve bool `json:"approve"`
}

// ReviewDocument godoc
// @Summary 审核实名材料
// @Description 通过或驳回指定的实名材料
// @Tags 管理
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "材料ID"
// @Param   body body ReviewRequest true "审核结论"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "材料不存在"
// @Router /api/admin/verification/documents/{id} [put]
func (c *AdminController) ReviewDocument(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "无效的材料ID")
		return
	}

	var req ReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.VerificationService.ReviewDocument(uint(id), req.Approve); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(ctx, 404, "材料不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, nil)
}

// ListPendingWithdrawals godoc
// @Summary 待处理提现队列
// @Description 返回所有待处理的提现单
// @Tags 管理
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Withdrawal} "成功"
// @Router /api/admin/withdrawals [get]
func (c *AdminController) ListPendingWithdrawals(ctx *gin.Context) {
	list, err := c.WithdrawalService.ListPendingWithdrawals()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// ReviewWithdrawal godoc
// @Summary 结算提现单
// @Description 标记提现单为已支付，或驳回并退回余额
// @Tags 管理
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "提现单ID"
// @Param   body body ReviewRequest true "结算结论"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "提现单不存在或已结算"
// @Router /api/admin/withdrawals/{id} [put]
func (c *AdminController) ReviewWithdrawal(ctx *gin.Context) {
	var req ReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.WithdrawalService.ReviewWithdrawal(ctx.Param("id"), req.Approve); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(ctx, 404, "提现单不存在或已结算")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, nil)
}
