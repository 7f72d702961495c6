package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hiddengems/internal/models/request_models"
	"hiddengems/internal/services"
	"hiddengems/pkg/middleware"
	"hiddengems/pkg/utils"
)

type CommentsController struct {
	commentService services.CommentServiceInterface
}

func NewCommentsController(commentService services.CommentServiceInterface) *CommentsController {
	return &CommentsController{
		commentService: commentService,
	}
}

func parsePaging(c *gin.Context, defaultSize string) (int, int, bool) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", defaultSize)

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return 0, 0, false
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return 0, 0, false
	}
	return page, pageSize, true
}

func (cc *CommentsController) ListComments(c *gin.Context) {
	page, pageSize, ok := parsePaging(c, "10")
	if !ok {
		return
	}

	comments, err := cc.commentService.ListComments(c.Request.Context(), c.Param("id"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comments, "Comments fetched successfully")
}

func (cc *CommentsController) ListReplies(c *gin.Context) {
	page, pageSize, ok := parsePaging(c, "5")
	if !ok {
		return
	}

	replies, err := cc.commentService.ListReplies(c.Request.Context(), c.Param("id"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, replies, "Replies fetched successfully")
}

func (cc *CommentsController) AddComment(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	var req request_models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := cc.commentService.AddComment(c.Request.Context(), c.Param("id"), userID, req.Content)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, created, "Comment created successfully")
}

func (cc *CommentsController) AddReply(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	var req request_models.CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := cc.commentService.AddReply(
		c.Request.Context(),
		req.PlaceID,
		c.Param("id"),
		userID,
		req.Content,
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, created, "Reply created successfully")
}
