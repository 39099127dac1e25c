package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DatabaseName = "AuditHubDB"

var (
	client     *mongo.Client
	once       sync.Once // ✅ ป้องกันการรัน ConnectMongoDB() ซ้ำ
	connectErr error

	CompanyCollection             *mongo.Collection
	FormCollection                *mongo.Collection
	QuestionCategoryCollection    *mongo.Collection
	QuestionCollection            *mongo.Collection
	QuestionOptionCollection      *mongo.Collection
	QuestionConditionalCollection *mongo.Collection
	SubmissionCollection          *mongo.Collection
	AnswerCollection              *mongo.Collection
	ReportCollection              *mongo.Collection
	UserCollection                *mongo.Collection
)

// ConnectMongoDB เชื่อมต่อกับ MongoDB แค่ครั้งเดียว
func ConnectMongoDB() error {

	// โหลดค่า Environment Variables จากไฟล์ .env
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() { // ✅ Run only once
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		CompanyCollection = GetCollection(DatabaseName, "companies")
		FormCollection = GetCollection(DatabaseName, "forms")
		QuestionCategoryCollection = GetCollection(DatabaseName, "questionCategories")
		QuestionCollection = GetCollection(DatabaseName, "questions")
		QuestionOptionCollection = GetCollection(DatabaseName, "questionOptions")
		QuestionConditionalCollection = GetCollection(DatabaseName, "questionConditionals")
		SubmissionCollection = GetCollection(DatabaseName, "submissions")
		AnswerCollection = GetCollection(DatabaseName, "answers")
		ReportCollection = GetCollection(DatabaseName, "reports")
		UserCollection = GetCollection(DatabaseName, "users")

		ensureIndexes()

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// ensureIndexes — company name uniqueness is enforced here, not in the
// application, so concurrent creates resolve to one success and one conflict.
func ensureIndexes() {
	_, err := CompanyCollection.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Println("⚠️ Failed to create unique index on companies.name:", err)
	}

	_, err = AnswerCollection.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys: bson.D{{Key: "submissionId", Value: 1}, {Key: "questionId", Value: 1}},
	})
	if err != nil {
		log.Println("⚠️ Failed to create index on answers:", err)
	}
}

// GetClient คืน client สำหรับงานที่ต้องใช้ session/transaction
func GetClient() *mongo.Client {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client
}

// GetCollection รับ Collection จาก MongoDB
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
