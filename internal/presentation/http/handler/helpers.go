package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetEmployeeID extracts the employee ID from the Gin context
func GetEmployeeID(c *gin.Context) *uuid.UUID {
	val, exists := c.Get("employee_id")
	if !exists {
		return nil
	}
	employeeID, ok := val.(uuid.UUID)
	if !ok {
		return nil
	}
	return &employeeID
}

// GetEmployeeEmail extracts the employee email from the Gin context
func GetEmployeeEmail(c *gin.Context) string {
	email, exists := c.Get("employee_email")
	if !exists {
		return ""
	}
	return email.(string)
}

// GetEmployeeName extracts the employee display name from the Gin context
func GetEmployeeName(c *gin.Context) string {
	name, exists := c.Get("employee_name")
	if !exists {
		return ""
	}
	return name.(string)
}
