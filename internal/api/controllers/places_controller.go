package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hiddengems/internal/models/request_models"
	"hiddengems/internal/services"
	"hiddengems/pkg/middleware"
	"hiddengems/pkg/utils"
)

type PlacesController struct {
	placeService services.PlaceServiceInterface
}

func NewPlacesController(placeService services.PlaceServiceInterface) *PlacesController {
	return &PlacesController{
		placeService: placeService,
	}
}

func (p *PlacesController) ListPlaces(c *gin.Context) {
	var query request_models.ListPlacesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid listing parameters")
		return
	}

	page, err := p.placeService.ListPlaces(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, page, "Places fetched successfully")
}

func (p *PlacesController) GetPlaceByID(c *gin.Context) {
	placeID := c.Param("id")
	if placeID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Place ID is required")
		return
	}

	place, err := p.placeService.GetPlaceByID(c.Request.Context(), placeID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, place, "Place fetched successfully")
}

// GetPlaceForEdit is the owner-scoped detail variant: it only returns
// the place when the authenticated user owns it.
func (p *PlacesController) GetPlaceForEdit(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	place, err := p.placeService.GetPlaceForOwner(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, place, "Place fetched successfully")
}

func (p *PlacesController) GetPlacesByBounds(c *gin.Context) {
	var query request_models.BoundsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "north, south, east and west are required")
		return
	}

	places, err := p.placeService.GetPlacesByBounds(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}

func (p *PlacesController) CreatePlace(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	var req request_models.CreatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := p.placeService.CreatePlace(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, created, "Place created successfully")
}

func (p *PlacesController) UpdatePlace(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	var req request_models.UpdatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := p.placeService.UpdatePlace(c.Request.Context(), c.Param("id"), userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Place updated successfully")
}

func (p *PlacesController) UpdatePlaceImages(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	var req request_models.UpdatePlaceImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := p.placeService.UpdatePlaceImages(c.Request.Context(), c.Param("id"), userID, req.Images); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Place images updated successfully")
}
