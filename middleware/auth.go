package middleware

import (
	"net/http"
	"strings"
	"time"

	doctorRepo "asclepius/database/repository/doctor"
	"asclepius/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// JWTAuthDoctorMiddleware authenticates requests with a doctor bearer
// token. The redis session keyed by the token hash is the fast path; on a
// cache miss the stored token hash in Mongo is authoritative and the
// session is recreated. Sets "doctorID" and "tokenHash" in the context.
func JWTAuthDoctorMiddleware(repo doctorRepo.DoctorRepository, sessions *utils.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		docID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || docID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenHash := utils.HashToken(tokenString)
		ctx := c.Request.Context()

		sess, err := sessions.Get(ctx, tokenHash)
		if err == nil && sess.DoctorID == docID {
			if touchErr := sessions.Touch(ctx, tokenHash); touchErr != nil {
				logger.Warn("Failed to refresh session", zap.Error(touchErr))
			}
			c.Set("doctorID", docID)
			c.Set("tokenHash", tokenHash)
			c.Next()
			return
		}
		if err != nil && err != utils.ErrSessionNotFound {
			// Redis trouble is a cache miss, not an auth failure.
			logger.Warn("Session lookup failed, falling back to database", zap.Error(err))
		}

		doc, err := repo.GetByIDWithProjection(docID, bson.M{"id": 1, "email": 1, "token_hash": 1})
		if err != nil || doc == nil || doc.TokenHash == "" || doc.TokenHash != tokenHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		if saveErr := sessions.Save(ctx, tokenHash, utils.Session{
			DoctorID:  doc.ID,
			Email:     doc.Email,
			State:     utils.SessionAuthenticated,
			CreatedAt: time.Now(),
		}); saveErr != nil {
			logger.Warn("Failed to recreate session", zap.Error(saveErr))
		}

		c.Set("doctorID", docID)
		c.Set("tokenHash", tokenHash)
		c.Next()
	}
}
