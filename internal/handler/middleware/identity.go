package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	studentIDHeader = "X-Student-ID"
	ctxStudentIDKey = "student_id"
)

// RequireStudent resolves the calling student from the X-Student-ID header.
// Identity is caller-supplied; existence and permissions are checked by the
// usecase layer against the student records.
func RequireStudent() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(studentIDHeader)
		if raw == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "X-Student-ID header required",
			})
			c.Abort()
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid student ID format",
			})
			c.Abort()
			return
		}

		c.Set(ctxStudentIDKey, id)
		c.Next()
	}
}

func GetStudentID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxStudentIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
