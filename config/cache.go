package config

import (
    "fmt"
    "time"
    "github.com/patrickmn/go-cache"
)

// RouteCache holds hydrated route listings so the two-queries-per-route
// hydration is not repeated on every map refresh. Invalidated on upsert.
var RouteCache *cache.Cache

func InitCache(ttl time.Duration) {
    RouteCache = cache.New(ttl, 2*ttl)
}

func GetCacheKey(prefix string, params ...interface{}) string {
    key := prefix
    for _, param := range params {
        key += ":" + fmt.Sprintf("%v", param)
    }
    return key
}
