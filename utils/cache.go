package utils

import (
	"sync"
	"time"

	"github.com/MiraiSubject/CoteValentines2023/model"
	"github.com/google/uuid"
)

var (
	pendingLetters = make(map[string]model.PendingLetter)
	cacheMutex     = &sync.RWMutex{}
	cacheTTL       = 5 * time.Minute // pending letters expire after 5 minutes
)

func init() {
	go startCacheJanitor()
}

// AddToCache stores a pending letter and returns a unique ID for it.
func AddToCache(data model.PendingLetter) string {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	id := uuid.New().String()
	data.CreatedAt = time.Now()
	pendingLetters[id] = data
	return id
}

// GetFromCache retrieves a pending letter by ID.
func GetFromCache(id string) (model.PendingLetter, bool) {
	cacheMutex.RLock()
	defer cacheMutex.RUnlock()

	data, found := pendingLetters[id]
	return data, found
}

// RemoveFromCache drops a pending letter by ID.
func RemoveFromCache(id string) {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	delete(pendingLetters, id)
}

// startCacheJanitor runs a background process to clean up expired entries.
func startCacheJanitor() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cacheMutex.Lock()
		for id, data := range pendingLetters {
			if time.Since(data.CreatedAt) > cacheTTL {
				delete(pendingLetters, id)
			}
		}
		cacheMutex.Unlock()
	}
}
