package memory

import (
	"ai-proposal-be/pkg/store"
	"time"

	"github.com/patrickmn/go-cache"
)

// ConversationRepository holds active sessions in memory only. Sessions
// expire after an hour of inactivity; nothing survives a restart.
type ConversationRepository struct {
	cache *cache.Cache
}

func NewConversationRepository() *ConversationRepository {
	// Default expiration of 1 hour, purge sweep every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &ConversationRepository{
		cache: c,
	}
}

// Save stores the conversation and refreshes its TTL.
func (r *ConversationRepository) Save(conv *store.Conversation) {
	r.cache.Set(conv.ID, conv, cache.DefaultExpiration)
}

func (r *ConversationRepository) Get(id string) (*store.Conversation, bool) {
	if x, found := r.cache.Get(id); found {
		return x.(*store.Conversation), true
	}
	return nil, false
}

func (r *ConversationRepository) Delete(id string) {
	r.cache.Delete(id)
}
