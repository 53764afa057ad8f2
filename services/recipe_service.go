package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/zeyadesperado/GymMaster/models"
)

type NameInput struct {
	Name string `json:"name" binding:"required,max=255"`
}

// RecipeInput is used for create and partial update. Tags and Ingredients
// replace the current set when present, even if empty.
type RecipeInput struct {
	Title       *string          `json:"title" binding:"omitempty,max=255"`
	Description *string          `json:"description"`
	TimeMinutes *int             `json:"time_minutes"`
	Calories    *uint            `json:"calories"`
	Price       *decimal.Decimal `json:"price"`
	Link        *string          `json:"link" binding:"omitempty,max=255"`
	Tags        *[]NameInput     `json:"tags" binding:"omitempty,dive"`
	Ingredients *[]NameInput     `json:"ingredients" binding:"omitempty,dive"`
}

type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// List returns the user's recipes, newest first, without associations.
func (s *RecipeService) List(ctx context.Context, userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&recipes).Error
	return recipes, err
}

func (s *RecipeService) Get(ctx context.Context, userID, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Tags").
		Preload("Ingredients").
		Where("id = ? AND user_id = ?", id, userID).
		First(&recipe).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &recipe, nil
}

func (s *RecipeService) Create(ctx context.Context, userID uint, in RecipeInput) (*models.Recipe, error) {
	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if in.Price == nil {
		return nil, fmt.Errorf("%w: price is required", ErrInvalidInput)
	}

	recipe := &models.Recipe{UserID: userID}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := applyRecipe(recipe, in); err != nil {
			return err
		}
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		return replaceRecipeAttrs(tx, recipe, in)
	})
	if err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	return s.Get(ctx, userID, recipe.ID)
}

func (s *RecipeService) Update(ctx context.Context, userID, id uint, in RecipeInput) (*models.Recipe, error) {
	recipe, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := applyRecipe(recipe, in); err != nil {
			return err
		}
		if err := tx.Omit("Tags", "Ingredients").Save(recipe).Error; err != nil {
			return err
		}
		return replaceRecipeAttrs(tx, recipe, in)
	})
	if err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
	}
	return s.Get(ctx, userID, id)
}

func (s *RecipeService) Delete(ctx context.Context, userID, id uint) error {
	recipe, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Select("Tags", "Ingredients").Delete(recipe).Error
}

func applyRecipe(r *models.Recipe, in RecipeInput) error {
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return fmt.Errorf("%w: title may not be blank", ErrInvalidInput)
		}
		r.Title = *in.Title
	}
	if in.Description != nil {
		r.Description = *in.Description
	}
	if in.TimeMinutes != nil {
		r.TimeMinutes = in.TimeMinutes
	}
	if in.Calories != nil {
		r.Calories = in.Calories
	}
	if in.Price != nil {
		if in.Price.IsNegative() || in.Price.GreaterThanOrEqual(decimal.NewFromInt(1000)) {
			return fmt.Errorf("%w: price must be between 0 and 999.99", ErrInvalidInput)
		}
		r.Price = in.Price.Round(2)
	}
	if in.Link != nil {
		r.Link = *in.Link
	}
	return nil
}

// replaceRecipeAttrs get-or-creates the named tags and ingredients for the
// recipe's owner and swaps them in.
func replaceRecipeAttrs(tx *gorm.DB, r *models.Recipe, in RecipeInput) error {
	if in.Tags != nil {
		tags := make([]models.Tag, 0, len(*in.Tags))
		for _, t := range *in.Tags {
			tag := models.Tag{Name: t.Name, UserID: r.UserID}
			if err := tx.Where(&tag).FirstOrCreate(&tag).Error; err != nil {
				return err
			}
			tags = append(tags, tag)
		}
		if err := tx.Model(r).Association("Tags").Replace(tags); err != nil {
			return err
		}
	}
	if in.Ingredients != nil {
		ingredients := make([]models.Ingredient, 0, len(*in.Ingredients))
		for _, i := range *in.Ingredients {
			ing := models.Ingredient{Name: i.Name, UserID: r.UserID}
			if err := tx.Where(&ing).FirstOrCreate(&ing).Error; err != nil {
				return err
			}
			ingredients = append(ingredients, ing)
		}
		if err := tx.Model(r).Association("Ingredients").Replace(ingredients); err != nil {
			return err
		}
	}
	return nil
}

// RecipeAttrService manages the owner-scoped tags or ingredients attached
// to recipes.
type RecipeAttrService[T models.Tag | models.Ingredient] struct {
	db         *gorm.DB
	joinTable  string
	joinColumn string
}

func NewTagService(db *gorm.DB) *RecipeAttrService[models.Tag] {
	return &RecipeAttrService[models.Tag]{db: db, joinTable: "recipe_tags", joinColumn: "tag_id"}
}

func NewIngredientService(db *gorm.DB) *RecipeAttrService[models.Ingredient] {
	return &RecipeAttrService[models.Ingredient]{db: db, joinTable: "recipe_ingredients", joinColumn: "ingredient_id"}
}

func (s *RecipeAttrService[T]) List(ctx context.Context, userID uint) ([]T, error) {
	var items []T
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name DESC").
		Find(&items).Error
	return items, err
}

func (s *RecipeAttrService[T]) get(ctx context.Context, userID, id uint) (*T, error) {
	var item T
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&item).Error; err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func (s *RecipeAttrService[T]) Rename(ctx context.Context, userID, id uint, name string) (*T, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name may not be blank", ErrInvalidInput)
	}
	item, err := s.get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(item).Update("name", name).Error; err != nil {
		return nil, err
	}
	return s.get(ctx, userID, id)
}

// Delete removes the item and detaches it from every recipe.
func (s *RecipeAttrService[T]) Delete(ctx context.Context, userID, id uint) error {
	item, err := s.get(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM "+s.joinTable+" WHERE "+s.joinColumn+" = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(item).Error
	})
}
