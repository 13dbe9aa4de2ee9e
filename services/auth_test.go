package services

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/UCDC-Institute/Website_BCMS/models"
)

func testUser() *models.User {
	return &models.User{
		ID:       primitive.NewObjectID(),
		Name:     "Admin",
		Email:    "admin@ucdc.co.in",
		Role:     models.ADMIN,
		IsActive: true,
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	user := testUser()
	token, err := SignSessionToken(user)
	if err != nil {
		t.Fatalf("sign: %s", err)
	}
	claims, err := VerifySessionToken(token)
	if err != nil {
		t.Fatalf("verify: %s", err)
	}
	if claims.ID != user.ID.Hex() {
		t.Errorf("claims id = %q, want %q", claims.ID, user.ID.Hex())
	}
	if claims.Email != user.Email {
		t.Errorf("claims email = %q, want %q", claims.Email, user.Email)
	}
	if claims.UserType != models.ADMIN {
		t.Errorf("claims role = %q, want %q", claims.UserType, models.ADMIN)
	}
	remaining := time.Until(time.Unix(claims.ExpiresAt, 0))
	if remaining > SESSION_DURATION || remaining < SESSION_DURATION-time.Minute {
		t.Errorf("token lifetime = %s, want ~%s", remaining, SESSION_DURATION)
	}
}

func TestVerifySessionTokenTampered(t *testing.T) {
	token, err := SignSessionToken(testUser())
	if err != nil {
		t.Fatalf("sign: %s", err)
	}
	if _, err := VerifySessionToken(token + "x"); err == nil {
		t.Error("tampered token accepted")
	}
	if _, err := VerifySessionToken("not-a-token"); err == nil {
		t.Error("garbage token accepted")
	}
}

func TestVerifySessionTokenExpired(t *testing.T) {
	user := testUser()
	claims := &Claims{
		ID:    user.ID.Hex(),
		Email: user.Email,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Add(-2 * SESSION_DURATION).Unix(),
			ExpiresAt: time.Now().Add(-SESSION_DURATION).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(settingsData.JWT_SECRET_KEY))
	if err != nil {
		t.Fatalf("sign: %s", err)
	}
	if _, err := VerifySessionToken(token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestVerifySessionTokenRejectsNonHMAC(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %s", err)
	}
	if _, err := VerifySessionToken(token); err == nil {
		t.Error("unsigned token accepted")
	}
}

func TestNewClaimsFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if _, ok := NewClaimsFromContext(c); ok {
		t.Error("claims found in empty context")
	}
	want := &Claims{ID: primitive.NewObjectID().Hex(), UserType: models.EDITOR}
	c.Set("user", want)
	claims, ok := NewClaimsFromContext(c)
	if !ok {
		t.Fatal("claims not found")
	}
	if claims.ID != want.ID || claims.UserType != want.UserType {
		t.Errorf("claims = %+v, want %+v", claims, want)
	}
}
