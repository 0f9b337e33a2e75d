package controller

import (
	"errors"
	"taskforge_backend/internal/service"
	"taskforge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type VerificationController struct {
	VerificationService *service.VerificationService
	AuthService         *service.AuthService
}

func NewVerificationController(verificationService *service.VerificationService, authService *service.AuthService) *VerificationController {
	return &VerificationController{
		VerificationService: verificationService,
		AuthService:         authService,
	}
}

// SendCode godoc
// @Summary 发送邮箱验证码
// @Description 给当前用户邮箱发送6位验证码，15分钟内有效
// @Tags 认证审核
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response "已发送"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/verification/send-code [post]
func (c *VerificationController) SendCode(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.VerificationService.SendCode(ctx.Request.Context(), user); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

type ConfirmCodeRequest struct {
	Code string `json:"code" binding:"required,len=6"`
}

// ConfirmCode godoc
// @Summary 校验邮箱验证码
// @Description 验证码正确则标记邮箱已验证；连续错误5次后作废
// @Tags 认证审核
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body ConfirmCodeRequest true "验证码"
// @Success 200 {object} util.Response "验证通过"
// @Failure 400 {object} util.Response "验证码错误或已过期"
// @Failure 429 {object} util.Response "错误次数过多"
// @Router /api/verification/confirm [post]
func (c *VerificationController) ConfirmCode(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ConfirmCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.VerificationService.ConfirmCode(ctx.Request.Context(), claims.UserID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCodeExpired):
			util.BadRequest(ctx, "验证码已过期，请重新获取")
		case errors.Is(err, util.ErrCodeInvalid):
			util.BadRequest(ctx, "验证码错误")
		case errors.Is(err, util.ErrTooManyAttempts):
			util.Error(ctx, 429, "错误次数过多，请重新获取验证码")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, nil)
}

// UploadDocument godoc
// @Summary 上传实名材料
// @Description 上传证件文件并将账号置为待审核，需先完成邮箱验证
// @Tags 认证审核
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   file formData file true "证件文件"
// @Success 201 {object} util.Response{data=model.VerificationDocument} "已提交"
// @Failure 400 {object} util.Response "文件缺失"
// @Failure 403 {object} util.Response "邮箱未验证"
// @Router /api/verification/documents [post]
func (c *VerificationController) UploadDocument(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "缺少文件")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	doc, err := c.VerificationService.SubmitDocument(ctx.Request.Context(), user, fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		if errors.Is(err, util.ErrNotVerified) {
			util.Forbidden(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, doc)
}

// ListDocuments godoc
// @Summary 实名材料列表
// @Description 返回当前用户提交过的全部材料及审核状态
// @Tags 认证审核
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.VerificationDocument} "成功"
// @Router /api/verification/documents [get]
func (c *VerificationController) ListDocuments(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	docs, err := c.VerificationService.ListDocuments(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, docs)
}
