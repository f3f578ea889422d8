package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"gestauto/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextCompanyID = "company_id"
	ContextUserID    = "user_id"
	ContextRole      = "role"
	ContextUserName  = "user_name"
)

var errMissingTenant = pkg.NewDomainErrorSimple("MISSING_TENANT", "Missing company identification", http.StatusUnauthorized)

// TenantClaims is the JWT payload issued by the auth service.
type TenantClaims struct {
	CompanyID string `json:"company_id"`
	Role      string `json:"role"`
	UserName  string `json:"user_name"`
	jwt.RegisteredClaims
}

// Auth resolves the tenant for every request. A Bearer token carrying
// company_id wins; the X-Company-ID header is the fallback for internal
// callers that do not go through the auth service.
func Auth() gin.HandlerFunc {
	secret := []byte(os.Getenv("JWT_SECRET"))

	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" && len(secret) > 0 {
			claims, err := parseClaims(token, secret)
			if err != nil {
				appErr := pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid or expired token", http.StatusUnauthorized)
				c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
				return
			}
			c.Set(ContextCompanyID, claims.CompanyID)
			c.Set(ContextUserID, claims.Subject)
			c.Set(ContextRole, claims.Role)
			c.Set(ContextUserName, claims.UserName)
			c.Next()
			return
		}

		companyID := strings.TrimSpace(c.GetHeader("X-Company-ID"))
		if companyID == "" {
			c.AbortWithStatusJSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
			return
		}
		c.Set(ContextCompanyID, companyID)
		c.Set(ContextUserID, strings.TrimSpace(c.GetHeader("X-User-ID")))
		c.Set(ContextRole, strings.TrimSpace(c.GetHeader("X-User-Role")))
		c.Set(ContextUserName, strings.TrimSpace(c.GetHeader("X-User-Name")))
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func parseClaims(token string, secret []byte) (*TenantClaims, error) {
	claims := &TenantClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid || strings.TrimSpace(claims.CompanyID) == "" {
		return nil, errors.New("token missing company_id")
	}
	return claims, nil
}

// CompanyID reads the tenant set by Auth.
func CompanyID(c *gin.Context) string {
	return c.GetString(ContextCompanyID)
}
