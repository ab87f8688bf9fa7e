package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DmytroSyrovatskyi/FoodDiary/services"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// GET /user/profile
func (uc *UserController) GetProfile(c *gin.Context) {
	user, err := uc.users.Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type profileInput struct {
	Username string `json:"username"`
}

// PUT /user/profile
func (uc *UserController) UpdateProfile(c *gin.Context) {
	var input profileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	user, err := uc.users.UpdateUsername(c.Request.Context(), currentUserID(c), input.Username)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
