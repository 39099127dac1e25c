package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CompanyType — a company is either a partner organization or one of its clients.
type CompanyType string

const (
	CompanyPartner CompanyType = "partner"
	CompanyClient  CompanyType = "client"
)

// Company ข้อมูลองค์กร (partner หรือ client ขององค์กร partner)
type Company struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	FormID    primitive.ObjectID  `bson:"formId" json:"formId"`
	Name      string              `bson:"name" json:"name"`
	Industry  string              `bson:"industry" json:"industry"`
	Size      string              `bson:"size" json:"size"`
	Email     string              `bson:"email" json:"email"`
	ImageURL  string              `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Type      CompanyType         `bson:"type" json:"type"`
	PartnerID *primitive.ObjectID `bson:"partnerId,omitempty" json:"partnerId,omitempty"`
	CreatedAt time.Time           `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// IsPartner reports whether the company is a partner organization.
func (c *Company) IsPartner() bool {
	return c.Type == CompanyPartner
}

// CreateCompanyRequest payload for POST /companies
type CreateCompanyRequest struct {
	FormID    string `json:"formId" validate:"required,len=24,hexadecimal"`
	Name      string `json:"name" validate:"required,max=200"`
	Industry  string `json:"industry" validate:"max=100"`
	Size      string `json:"size" validate:"max=50"`
	Email     string `json:"email" validate:"omitempty,email"`
	ImageURL  string `json:"imageUrl" validate:"omitempty,url"`
	Type      string `json:"type" validate:"required,oneof=partner client"`
	PartnerID string `json:"partnerId" validate:"omitempty,len=24,hexadecimal"`
}

// UpdateCompanyRequest payload for PUT /companies/:id
type UpdateCompanyRequest struct {
	Name     string `json:"name" validate:"omitempty,max=200"`
	Industry string `json:"industry" validate:"max=100"`
	Size     string `json:"size" validate:"max=50"`
	Email    string `json:"email" validate:"omitempty,email"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
}
