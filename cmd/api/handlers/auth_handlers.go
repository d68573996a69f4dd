package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"trustgate/cmd/api/auth"
	"trustgate/cmd/api/dto"
)

// LoginHandler godoc
// @Summary      Exchange the admin password for a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  dto.LoginRequest  true  "Admin password"
// @Success      200  {object}  object{token=string}
// @Failure      401  {object}  object{error=string}
// @Router       /api/auth/login [post]
func LoginHandler(gate *auth.AdminGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.Err(dto.CodeValidationFailed, "invalid JSON body"))
			return
		}
		if err := req.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, dto.Err(dto.CodeValidationFailed, err.Error()))
			return
		}

		token, err := gate.Login(req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrBadPassword) {
				auth.AbortWithUnauthorized(c, err)
				return
			}
			c.JSON(http.StatusInternalServerError, dto.Err(dto.CodeInternal, "login failed"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
