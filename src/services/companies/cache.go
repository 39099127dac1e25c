package companies

import (
	"context"
	"encoding/json"
	"log"
	"time"

	DB "Backend-AuditHub/src/database"
	"Backend-AuditHub/src/models"
)

// Read-through cache for company-by-name lookups. The survey flow resolves
// the same company on every page load, so the hot key is worth caching; any
// write to the company invalidates it. Without Redis every call falls
// through to Mongo.

const companyCacheTTL = 10 * time.Minute

func cacheKey(name string) string {
	return "company:name:" + name
}

func cacheGet(ctx context.Context, name string) *models.Company {
	if DB.RedisClient == nil {
		return nil
	}

	raw, err := DB.RedisClient.Get(ctx, cacheKey(name)).Result()
	if err != nil {
		return nil // miss or Redis unavailable; fall through to Mongo
	}

	var company models.Company
	if err := json.Unmarshal([]byte(raw), &company); err != nil {
		log.Println("[company-cache] corrupt entry, dropping:", err)
		DB.RedisClient.Del(ctx, cacheKey(name))
		return nil
	}
	return &company
}

func cacheSet(ctx context.Context, company *models.Company) {
	if DB.RedisClient == nil {
		return
	}

	raw, err := json.Marshal(company)
	if err != nil {
		return
	}
	if err := DB.RedisClient.Set(ctx, cacheKey(company.Name), raw, companyCacheTTL).Err(); err != nil {
		log.Println("[company-cache] set failed:", err)
	}
}

func cacheInvalidate(ctx context.Context, name string) {
	if DB.RedisClient == nil {
		return
	}
	if err := DB.RedisClient.Del(ctx, cacheKey(name)).Err(); err != nil {
		log.Println("[company-cache] invalidate failed:", err)
	}
}
