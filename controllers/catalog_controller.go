package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/zeyadesperado/GymMaster/models"
	"github.com/zeyadesperado/GymMaster/services"
)

type catalogStore[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, id uint, patch func(*T) error) (*T, error)
	Delete(ctx context.Context, id uint) error
}

// catalogBinder reads the request body into a patch. On create every
// required field must be present.
type catalogBinder[T any] func(c *gin.Context, create bool) (func(*T) error, error)

// CatalogController is plain CRUD over coaches, supplements and products.
type CatalogController[T any] struct {
	Svc  catalogStore[T]
	Bind catalogBinder[T]
}

func NewCoachController(svc *services.CatalogService[models.Coach]) *CatalogController[models.Coach] {
	return &CatalogController[models.Coach]{Svc: svc, Bind: bindCoach}
}

func NewSupplementController(svc *services.CatalogService[models.Supplement]) *CatalogController[models.Supplement] {
	return &CatalogController[models.Supplement]{Svc: svc, Bind: bindSupplement}
}

func NewProductController(svc *services.ProductService) *CatalogController[models.Product] {
	return &CatalogController[models.Product]{Svc: svc, Bind: bindProduct}
}

func (cc *CatalogController[T]) List(c *gin.Context) {
	items, err := cc.Svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (cc *CatalogController[T]) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := cc.Svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (cc *CatalogController[T]) Create(c *gin.Context) {
	patch, err := cc.Bind(c, true)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item := new(T)
	if err := patch(item); err != nil {
		respondError(c, err)
		return
	}
	if err := cc.Svc.Create(c.Request.Context(), item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (cc *CatalogController[T]) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	patch, err := cc.Bind(c, false)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := cc.Svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (cc *CatalogController[T]) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := cc.Svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func checkName(name *string, create bool) error {
	if name == nil {
		if create {
			return fmt.Errorf("%w: name is required", services.ErrInvalidInput)
		}
		return nil
	}
	if strings.TrimSpace(*name) == "" {
		return fmt.Errorf("%w: name may not be blank", services.ErrInvalidInput)
	}
	return nil
}

func checkPrice(field string, price *decimal.Decimal, create bool) error {
	if price == nil {
		if create {
			return fmt.Errorf("%w: %s is required", services.ErrInvalidInput, field)
		}
		return nil
	}
	if price.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative", services.ErrInvalidInput, field)
	}
	return nil
}

type coachRequest struct {
	Name          *string          `json:"name" binding:"omitempty,max=255"`
	PricePerMonth *decimal.Decimal `json:"price_per_month"`
}

func bindCoach(c *gin.Context, create bool) (func(*models.Coach) error, error) {
	var req coachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return func(m *models.Coach) error {
		if err := checkName(req.Name, create); err != nil {
			return err
		}
		if err := checkPrice("price_per_month", req.PricePerMonth, create); err != nil {
			return err
		}
		if req.Name != nil {
			m.Name = *req.Name
		}
		if req.PricePerMonth != nil {
			m.PricePerMonth = req.PricePerMonth.Round(2)
		}
		return nil
	}, nil
}

type supplementRequest struct {
	Name     *string          `json:"name" binding:"omitempty,max=255"`
	Price    *decimal.Decimal `json:"price"`
	Calories *uint            `json:"calories"`
}

func bindSupplement(c *gin.Context, create bool) (func(*models.Supplement) error, error) {
	var req supplementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return func(m *models.Supplement) error {
		if err := checkName(req.Name, create); err != nil {
			return err
		}
		if err := checkPrice("price", req.Price, create); err != nil {
			return err
		}
		if req.Name != nil {
			m.Name = *req.Name
		}
		if req.Price != nil {
			m.Price = req.Price.Round(2)
		}
		if req.Calories != nil {
			m.Calories = req.Calories
		}
		return nil
	}, nil
}

type productRequest struct {
	Name *string `json:"name" binding:"omitempty,max=50"`
}

func bindProduct(c *gin.Context, create bool) (func(*models.Product) error, error) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return func(m *models.Product) error {
		if err := checkName(req.Name, create); err != nil {
			return err
		}
		if req.Name != nil {
			m.Name = *req.Name
		}
		return nil
	}, nil
}

type PaymentController struct {
	Svc *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: svc}
}

func (pc *PaymentController) List(c *gin.Context) {
	payments, err := pc.Svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (pc *PaymentController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	p, err := pc.Svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Create bills the authenticated user unless user_id names someone else.
func (pc *PaymentController) Create(c *gin.Context) {
	var in services.PaymentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := pc.Svc.Create(c.Request.Context(), userIDFromCtx(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (pc *PaymentController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in services.PaymentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := pc.Svc.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (pc *PaymentController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := pc.Svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
