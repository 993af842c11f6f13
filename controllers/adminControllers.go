package controllers

import (
	"net/http"

	"clinic-connect/authentication"
	"clinic-connect/configuration"
	"clinic-connect/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminLogin authenticates against the admin-panel database and issues a
// token carrying the "main" role.
func AdminLogin(c *gin.Context) {
	var admin models.Admin
	if err := c.BindJSON(&admin); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var dbAdmin models.Admin
	if err := configuration.AdminDB.Where("username = ?", admin.Username).First(&dbAdmin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	if len(dbAdmin.Password) > 0 && dbAdmin.Password[0] == '$' {
		if err := bcrypt.CompareHashAndPassword([]byte(dbAdmin.Password), []byte(admin.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
	} else {
		// Legacy plain-text rows are upgraded to a hash on first login
		if dbAdmin.Password != admin.Password {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		dbAdmin.Password = string(hashedPassword)
		if err := configuration.AdminDB.Save(&dbAdmin).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
			return
		}
	}

	role := dbAdmin.Role
	if role == "" {
		role = "main"
	}

	token, err := authentication.GenerateAdminToken(admin.Username, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
}

func AdminLogout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}
