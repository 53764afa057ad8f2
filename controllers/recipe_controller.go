package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/zeyadesperado/GymMaster/models"
	"github.com/zeyadesperado/GymMaster/services"
)

// recipeSummary is the list representation.
type recipeSummary struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	TimeMinutes *int            `json:"time_minutes"`
	Price       decimal.Decimal `json:"price"`
	Link        string          `json:"link"`
}

type RecipeController struct {
	Svc *services.RecipeService
}

func NewRecipeController(svc *services.RecipeService) *RecipeController {
	return &RecipeController{Svc: svc}
}

func (rc *RecipeController) List(c *gin.Context) {
	recipes, err := rc.Svc.List(c.Request.Context(), userIDFromCtx(c))
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]recipeSummary, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, recipeSummary{ID: r.ID, Title: r.Title, TimeMinutes: r.TimeMinutes, Price: r.Price, Link: r.Link})
	}
	c.JSON(http.StatusOK, out)
}

func (rc *RecipeController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	recipe, err := rc.Svc.Get(c.Request.Context(), userIDFromCtx(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (rc *RecipeController) Create(c *gin.Context) {
	var in services.RecipeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	recipe, err := rc.Svc.Create(c.Request.Context(), userIDFromCtx(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (rc *RecipeController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in services.RecipeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	recipe, err := rc.Svc.Update(c.Request.Context(), userIDFromCtx(c), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (rc *RecipeController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := rc.Svc.Delete(c.Request.Context(), userIDFromCtx(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RecipeAttrController serves tags or ingredients. They are created only
// through recipes.
type RecipeAttrController[T models.Tag | models.Ingredient] struct {
	Svc *services.RecipeAttrService[T]
}

func (ac *RecipeAttrController[T]) List(c *gin.Context) {
	items, err := ac.Svc.List(c.Request.Context(), userIDFromCtx(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (ac *RecipeAttrController[T]) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in services.NameInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := ac.Svc.Rename(c.Request.Context(), userIDFromCtx(c), id, in.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (ac *RecipeAttrController[T]) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ac.Svc.Delete(c.Request.Context(), userIDFromCtx(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
