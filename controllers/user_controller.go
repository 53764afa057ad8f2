package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zeyadesperado/GymMaster/services"
)

type UserController struct {
	Users *services.UserService
	Auth  *services.AuthService
}

func NewUserController(users *services.UserService, auth *services.AuthService) *UserController {
	return &UserController{Users: users, Auth: auth}
}

// POST /api/user/create
func (uc *UserController) Create(c *gin.Context) {
	var in services.CreateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := uc.Users.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

type tokenRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/user/token
func (uc *UserController) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := uc.Auth.IssueToken(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GET /api/user/me
func (uc *UserController) Me(c *gin.Context) {
	user, err := uc.Users.Get(c.Request.Context(), userIDFromCtx(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// PUT|PATCH /api/user/me. Derived health fields in the body are ignored.
func (uc *UserController) UpdateMe(c *gin.Context) {
	var in services.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := uc.Users.Update(c.Request.Context(), userIDFromCtx(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
