package auth

import (
	"context"
	"errors"
	"log"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"Backend-AuditHub/src/database"
	"Backend-AuditHub/src/models"
	"Backend-AuditHub/src/utils"
)

var userCollection *mongo.Collection

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	userCollection = database.UserCollection
	if userCollection == nil {
		log.Fatal("Failed to get the users collection")
	}
}

var ErrInvalidCredentials = errors.New("invalid email or password")

// Login verifies the credentials against the users collection and issues a
// signed JWT. The same error is returned for unknown email and wrong
// password.
func Login(ctx context.Context, req *models.LoginRequest) (string, *models.User, error) {
	var user models.User
	err := userCollection.FindOne(ctx, bson.M{"email": strings.ToLower(req.Email)}).Decode(&user)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}

	user.Password = ""
	return token, &user, nil
}
