package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hiddengems/internal/models/request_models"
	"hiddengems/internal/services"
	"hiddengems/pkg/utils"
)

type CategoriesController struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoriesController(categoryService services.CategoryServiceInterface) *CategoriesController {
	return &CategoriesController{
		categoryService: categoryService,
	}
}

func (cc *CategoriesController) GetCategories(c *gin.Context) {
	categories, err := cc.categoryService.GetCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories, "Categories fetched successfully")
}

func (cc *CategoriesController) CreateCategory(c *gin.Context) {
	var req request_models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	category, err := cc.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, category, "Category created successfully")
}

func (cc *CategoriesController) UpdateCategory(c *gin.Context) {
	var req request_models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	category, err := cc.categoryService.UpdateCategory(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, category, "Category updated successfully")
}
