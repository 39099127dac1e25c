package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User บัญชีผู้ดูแลระบบ (agency staff)
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"` // ✅ ส่งมาได้จาก frontend, แต่ไม่ส่งกลับ
	Role     string             `bson:"role" json:"role"`
	Name     string             `bson:"name" json:"name"`
}

// LoginRequest payload for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}
