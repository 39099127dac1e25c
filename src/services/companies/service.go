package companies

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Backend-AuditHub/src/database"
	"Backend-AuditHub/src/models"
)

var companyCollection *mongo.Collection

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	companyCollection = database.CompanyCollection
	if companyCollection == nil {
		log.Fatal("Failed to get the companies collection")
	}
}

var (
	ErrCompanyNotFound  = errors.New("company not found")
	ErrDuplicateName    = errors.New("a company with this name already exists")
	ErrPartnerNotFound  = errors.New("partner company not found")
	ErrPartnerRequired  = errors.New("a client company must reference a partner")
	ErrPartnerHasClient = errors.New("partner still has client companies")
)

// CreateCompany inserts a new partner or client company. A client must
// reference an existing partner; a partner carries no partnerId. Name
// uniqueness is backed by the unique index, so the pre-check here only
// produces a friendlier error for the common case.
func CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
	formID, err := primitive.ObjectIDFromHex(req.FormID)
	if err != nil {
		return nil, errors.New("invalid formId")
	}

	company := &models.Company{
		FormID:    formID,
		Name:      req.Name,
		Industry:  req.Industry,
		Size:      req.Size,
		Email:     req.Email,
		ImageURL:  req.ImageURL,
		Type:      models.CompanyType(req.Type),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	switch company.Type {
	case models.CompanyClient:
		if req.PartnerID == "" {
			return nil, ErrPartnerRequired
		}
		partnerID, err := primitive.ObjectIDFromHex(req.PartnerID)
		if err != nil {
			return nil, errors.New("invalid partnerId")
		}
		var partner models.Company
		err = companyCollection.FindOne(ctx, bson.M{"_id": partnerID, "type": models.CompanyPartner}).Decode(&partner)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrPartnerNotFound
			}
			return nil, err
		}
		company.PartnerID = &partnerID
	case models.CompanyPartner:
		if req.PartnerID != "" {
			return nil, errors.New("a partner company cannot reference another partner")
		}
	default:
		return nil, errors.New("invalid company type")
	}

	count, err := companyCollection.CountDocuments(ctx, bson.M{"name": company.Name})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateName
	}

	result, err := companyCollection.InsertOne(ctx, company)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// lost the race against a concurrent create with the same name
			return nil, ErrDuplicateName
		}
		return nil, err
	}

	company.ID = result.InsertedID.(primitive.ObjectID)
	return company, nil
}

// GetCompanies retrieves companies with pagination and optional name search.
func GetCompanies(params models.PaginationParams, companyType string) (*models.PaginatedResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	params = params.Normalize()

	filter := bson.M{}
	if params.Search != "" {
		filter["name"] = bson.M{"$regex": params.Search, "$options": "i"}
	}
	if companyType != "" {
		filter["type"] = companyType
	}

	total, err := companyCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	order := 1
	if params.Order == "desc" {
		order = -1
	}
	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: params.SortBy, Value: order}})

	cursor, err := companyCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.Company
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(items, total, params), nil
}

// GetCompanyByID retrieves one company.
func GetCompanyByID(ctx context.Context, id primitive.ObjectID) (*models.Company, error) {
	var company models.Company
	err := companyCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&company)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

// GetCompanyByName resolves a company by its unique name, going through the
// Redis read-through cache when available.
func GetCompanyByName(ctx context.Context, name string) (*models.Company, error) {
	if company := cacheGet(ctx, name); company != nil {
		return company, nil
	}

	var company models.Company
	err := companyCollection.FindOne(ctx, bson.M{"name": name}).Decode(&company)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}

	cacheSet(ctx, &company)
	return &company, nil
}

// UpdateCompany applies the editable fields and invalidates the name cache
// (both names, in case of a rename).
func UpdateCompany(ctx context.Context, id primitive.ObjectID, req *models.UpdateCompanyRequest) (*models.Company, error) {
	existing, err := GetCompanyByID(ctx, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Name != "" && req.Name != existing.Name {
		count, err := companyCollection.CountDocuments(ctx, bson.M{"name": req.Name, "_id": bson.M{"$ne": id}})
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrDuplicateName
		}
		set["name"] = req.Name
	}
	if req.Industry != "" {
		set["industry"] = req.Industry
	}
	if req.Size != "" {
		set["size"] = req.Size
	}
	if req.Email != "" {
		set["email"] = req.Email
	}
	if req.ImageURL != "" {
		set["imageUrl"] = req.ImageURL
	}

	_, err = companyCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}

	cacheInvalidate(ctx, existing.Name)
	if name, ok := set["name"].(string); ok {
		cacheInvalidate(ctx, name)
	}

	return GetCompanyByID(ctx, id)
}

// DeleteCompany removes a company. A partner that still sponsors clients
// cannot be deleted.
func DeleteCompany(ctx context.Context, id primitive.ObjectID) error {
	company, err := GetCompanyByID(ctx, id)
	if err != nil {
		return err
	}

	if company.IsPartner() {
		clients, err := companyCollection.CountDocuments(ctx, bson.M{"partnerId": id})
		if err != nil {
			return err
		}
		if clients > 0 {
			return ErrPartnerHasClient
		}
	}

	_, err = companyCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	cacheInvalidate(ctx, company.Name)
	return nil
}

// ResolveStakeholderEmail returns the partner-side recipient for a company's
// reports: the sponsoring partner's address for a client, the company's own
// address for a partner.
func ResolveStakeholderEmail(ctx context.Context, company *models.Company) (string, error) {
	if company.IsPartner() || company.PartnerID == nil {
		if company.Email == "" {
			return "", errors.New("company has no contact email")
		}
		return company.Email, nil
	}

	partner, err := GetCompanyByID(ctx, *company.PartnerID)
	if err != nil {
		return "", err
	}
	if partner.Email == "" {
		return "", errors.New("partner company has no contact email")
	}
	return partner.Email, nil
}
