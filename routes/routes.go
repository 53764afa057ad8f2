package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zeyadesperado/GymMaster/controllers"
	"github.com/zeyadesperado/GymMaster/middlewares"
	"github.com/zeyadesperado/GymMaster/models"
	"github.com/zeyadesperado/GymMaster/services"
	"github.com/zeyadesperado/GymMaster/utils"
)

// Deps is everything the router and the background jobs share.
type Deps struct {
	DB        *gorm.DB
	Log       *zap.Logger
	JWTSecret string

	Users       *services.UserService
	Auth        *services.AuthService
	Recipes     *services.RecipeService
	Tags        *services.RecipeAttrService[models.Tag]
	Ingredients *services.RecipeAttrService[models.Ingredient]
	Coaches     *services.CatalogService[models.Coach]
	Supplements *services.CatalogService[models.Supplement]
	Payments    *services.PaymentService
	Products    *services.ProductService
	Orders      *services.OrderService
	OrderItems  *services.OrderItemService
	Hub         *services.RealtimeHub
}

func NewDeps(db *gorm.DB, jwtSecret string, jwtTTL time.Duration, mailer utils.Mailer, log *zap.Logger) *Deps {
	users := services.NewUserService(db)
	hub := services.NewRealtimeHub(log)
	return &Deps{
		DB:          db,
		Log:         log,
		JWTSecret:   jwtSecret,
		Users:       users,
		Auth:        services.NewAuthService(users, jwtSecret, jwtTTL),
		Recipes:     services.NewRecipeService(db),
		Tags:        services.NewTagService(db),
		Ingredients: services.NewIngredientService(db),
		Coaches:     services.NewCoachService(db),
		Supplements: services.NewSupplementService(db),
		Payments:    services.NewPaymentService(db, mailer, log),
		Products:    services.NewProductService(db),
		Orders:      services.NewOrderService(db, hub, log),
		OrderItems:  services.NewOrderItemService(db),
		Hub:         hub,
	}
}

func SetupRouter(d *Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(d.Log), middlewares.ReferrerPolicy())

	auth := middlewares.AuthMiddleware(d.JWTSecret, d.DB)

	userCtrl := controllers.NewUserController(d.Users, d.Auth)
	recipeCtrl := controllers.NewRecipeController(d.Recipes)
	tagCtrl := &controllers.RecipeAttrController[models.Tag]{Svc: d.Tags}
	ingredientCtrl := &controllers.RecipeAttrController[models.Ingredient]{Svc: d.Ingredients}
	coachCtrl := controllers.NewCoachController(d.Coaches)
	supplementCtrl := controllers.NewSupplementController(d.Supplements)
	paymentCtrl := controllers.NewPaymentController(d.Payments)
	productCtrl := controllers.NewProductController(d.Products)
	orderCtrl := controllers.NewOrderController(d.Orders)
	orderItemCtrl := controllers.NewOrderItemController(d.OrderItems)
	rtCtrl := controllers.NewRealtimeController(d.Hub)

	api := r.Group("/api")

	// Public auth routes
	user := api.Group("/user")
	{
		user.POST("/create", userCtrl.Create)
		user.POST("/token", userCtrl.Token)
	}

	me := api.Group("/user", auth)
	{
		me.GET("/me", userCtrl.Me)
		me.PUT("/me", userCtrl.UpdateMe)
		me.PATCH("/me", userCtrl.UpdateMe)
	}

	recipe := api.Group("/recipe", auth)
	{
		recipe.GET("/recipes", recipeCtrl.List)
		recipe.POST("/recipes", recipeCtrl.Create)
		recipe.GET("/recipes/:id", recipeCtrl.Get)
		recipe.PUT("/recipes/:id", recipeCtrl.Update)
		recipe.PATCH("/recipes/:id", recipeCtrl.Update)
		recipe.DELETE("/recipes/:id", recipeCtrl.Delete)

		recipe.GET("/tags", tagCtrl.List)
		recipe.PUT("/tags/:id", tagCtrl.Update)
		recipe.PATCH("/tags/:id", tagCtrl.Update)
		recipe.DELETE("/tags/:id", tagCtrl.Delete)

		recipe.GET("/ingredients", ingredientCtrl.List)
		recipe.PUT("/ingredients/:id", ingredientCtrl.Update)
		recipe.PATCH("/ingredients/:id", ingredientCtrl.Update)
		recipe.DELETE("/ingredients/:id", ingredientCtrl.Delete)

		crud(recipe, "/coaches", coachCtrl)
		crud(recipe, "/supplements", supplementCtrl)
		crud(recipe, "/payments", paymentCtrl)
	}

	shop := api.Group("/shop", auth)
	{
		shop.GET("/orders/ws", rtCtrl.OrdersWS)
		crud(shop, "/products", productCtrl)
		crud(shop, "/orders", orderCtrl)
		crud(shop, "/orderitems", orderItemCtrl)
	}

	return r
}

type crudController interface {
	List(*gin.Context)
	Get(*gin.Context)
	Create(*gin.Context)
	Update(*gin.Context)
	Delete(*gin.Context)
}

func crud(g *gin.RouterGroup, path string, c crudController) {
	g.GET(path, c.List)
	g.POST(path, c.Create)
	g.GET(path+"/:id", c.Get)
	g.PUT(path+"/:id", c.Update)
	g.PATCH(path+"/:id", c.Update)
	g.DELETE(path+"/:id", c.Delete)
}
