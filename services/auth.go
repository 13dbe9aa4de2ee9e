package services

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/UCDC-Institute/Website_BCMS/forms"
	"github.com/UCDC-Institute/Website_BCMS/models"
	"github.com/UCDC-Institute/Website_BCMS/res"
)

// SESSION_DURATION is the lifetime of a session token and of the
// auth cookie carrying it.
const SESSION_DURATION = time.Hour * 24

const AUTH_COOKIE = "auth-token"

var authService *AuthService

type Claims struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
	jwt.StandardClaims
}

type AuthService struct{}

// NewClaimsFromContext reads the claims stored by the JWT middleware.
func NewClaimsFromContext(ctx *gin.Context) (*Claims, bool) {
	user, exists := ctx.Get("user")
	if !exists {
		return nil, false
	}
	claims, ok := user.(*Claims)
	return claims, ok
}

func SignSessionToken(user *models.User) (string, error) {
	claims := &Claims{
		ID:       user.ID.Hex(),
		Name:     user.Name,
		Email:    user.Email,
		UserType: user.Role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(SESSION_DURATION).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(settingsData.JWT_SECRET_KEY))
}

func VerifySessionToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(settingsData.JWT_SECRET_KEY), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Login checks the credentials against the users collection and signs a
// session token. Unknown email and wrong password are indistinguishable.
func (a *AuthService) Login(login *forms.LoginForm) (*models.SimpleUser, string, *res.ErrorRes) {
	var user models.User

	cursor := userModel.GetOne(bson.D{
		{
			Key:   "email",
			Value: login.Email,
		},
		{
			Key:   "isActive",
			Value: true,
		},
	})
	if err := cursor.Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", &res.ErrorRes{
				Err:        errors.New("invalid credentials"),
				StatusCode: http.StatusUnauthorized,
			}
		}
		return nil, "", &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(login.Password)); err != nil {
		return nil, "", &res.ErrorRes{
			Err:        errors.New("invalid credentials"),
			StatusCode: http.StatusUnauthorized,
		}
	}
	token, err := SignSessionToken(&user)
	if err != nil {
		return nil, "", &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return &models.SimpleUser{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, token, nil
}

func (a *AuthService) GetUserFromID(idUser string) (*models.SimpleUser, *res.ErrorRes) {
	idObjUser, err := primitive.ObjectIDFromHex(idUser)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	var user models.User
	cursor := userModel.GetByID(idObjUser)
	if err := cursor.Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &res.ErrorRes{
				Err:        errors.New("user not found"),
				StatusCode: http.StatusNotFound,
			}
		}
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return &models.SimpleUser{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

// EnsureAdminUser bootstraps the dashboard account from env on first
// start. Does nothing when the email already exists or env is unset.
func (a *AuthService) EnsureAdminUser() error {
	if settingsData.ADMIN_EMAIL == "" || settingsData.ADMIN_PASSWORD == "" {
		return nil
	}
	cursor := userModel.GetOne(bson.D{
		{
			Key:   "email",
			Value: settingsData.ADMIN_EMAIL,
		},
	})
	var existing models.User
	err := cursor.Decode(&existing)
	if err == nil {
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(settingsData.ADMIN_PASSWORD), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = userModel.NewDocument(&models.User{
		Name:      "Admin",
		Email:     settingsData.ADMIN_EMAIL,
		Password:  string(hash),
		Role:      models.ADMIN,
		IsActive:  true,
		CreatedAt: now(),
	})
	return err
}

func NewAuthService() *AuthService {
	if authService == nil {
		authService = &AuthService{}
	}
	return authService
}
