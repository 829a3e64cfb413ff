package controllers

import (
	"github.com/gin-gonic/gin"

	"rocketry-shop/models"
	"rocketry-shop/services"
	"rocketry-shop/utils"
)

type AuthController struct {
	Registry *services.Registry
}

// Login godoc
// @Summary Log in
// @Description Authenticate against the account table and start a session
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	scope := resolveScope(c)
	sess := ctrl.Registry.Session(c.Request.Context(), scope)

	result := sess.Login(c.Request.Context(), req.Email, req.Password)
	if !result.Success {
		status := 401
		if result.Message == "Email and password are required" {
			status = 400
		}
		c.JSON(status, gin.H{"success": false, "message": result.Message})
		return
	}

	user := sess.Current()
	token, _ := utils.GenerateToken(scope, user.ID, user.Email, user.IsAdmin)

	c.JSON(200, gin.H{
		"success": true,
		"message": result.Message,
		"data":    models.LoginResponse{Token: token, User: *user},
	})
}

// Register godoc
// @Summary Register
// @Description Create a session-local account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	scope := resolveScope(c)
	sess := ctrl.Registry.Session(c.Request.Context(), scope)

	result := sess.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if !result.Success {
		c.JSON(400, gin.H{"success": false, "message": result.Message})
		return
	}

	user := sess.Current()
	token, _ := utils.GenerateToken(scope, user.ID, user.Email, user.IsAdmin)

	c.JSON(201, gin.H{
		"success": true,
		"message": result.Message,
		"data":    models.LoginResponse{Token: token, User: *user},
	})
}

// Logout godoc
// @Summary Log out
// @Description Clear the current session and its persisted identity
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	scope := resolveScope(c)
	sess := ctrl.Registry.Session(c.Request.Context(), scope)
	sess.Logout(c.Request.Context())

	c.JSON(200, gin.H{"success": true, "message": "Logged out"})
}

// GetProfile godoc
// @Summary Get profile
// @Description Current identity with its extended profile
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/profile [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	scope := resolveScope(c)
	sess := ctrl.Registry.Session(c.Request.Context(), scope)

	user := sess.Current()
	if user == nil {
		c.JSON(401, gin.H{"success": false, "message": "Not logged in"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"data": gin.H{
			"user":    user,
			"profile": sess.Profile(),
		},
	})
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Shallow-merge a partial profile into the current one
// @Tags Authentication
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ProfilePatch true "Profile fields to merge"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/profile [patch]
func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	var patch models.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	scope := resolveScope(c)
	sess := ctrl.Registry.Session(c.Request.Context(), scope)

	result := sess.UpdateProfile(patch)
	if !result.Success {
		c.JSON(401, gin.H{"success": false, "message": result.Message})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": result.Message,
		"data":    sess.Profile(),
	})
}

// GetOrders godoc
// @Summary Order history
// @Description The current identity's order history
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/orders [get]
func (ctrl *AuthController) GetOrders(c *gin.Context) {
	scope := resolveScope(c)
	sess := ctrl.Registry.Session(c.Request.Context(), scope)

	if !sess.IsAuthenticated() {
		c.JSON(401, gin.H{"success": false, "message": "Not logged in"})
		return
	}

	c.JSON(200, gin.H{"success": true, "data": sess.Orders()})
}
