package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Role identifies who produced a transcript message.
const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// Message is one entry in a session transcript.
type Message struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// HistoryStore keeps per-session transcripts in Redis as JSON blobs with a
// TTL, so abandoned sessions age out on their own.
type HistoryStore struct {
	redis    *redis.Client
	ttl      time.Duration
	maxTurns int
}

// NewHistoryStore creates a store on the given client. ttl and maxTurns
// fall back to 24h and 50 when unset.
func NewHistoryStore(client *redis.Client, ttl time.Duration, maxTurns int) *HistoryStore {
	if client == nil {
		panic("chat: redis client required")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if maxTurns <= 0 {
		maxTurns = 50
	}
	return &HistoryStore{redis: client, ttl: ttl, maxTurns: maxTurns}
}

// Append adds messages to a session transcript, trimming the oldest
// entries past the turn cap and refreshing the TTL.
func (s *HistoryStore) Append(ctx context.Context, sessionID string, msgs ...Message) error {
	history, err := s.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	history = append(history, msgs...)
	if len(history) > s.maxTurns {
		history = history[len(history)-s.maxTurns:]
	}

	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("chat: marshal history: %w", err)
	}
	if err := s.redis.Set(ctx, sessionKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("chat: persist history: %w", err)
	}
	return nil
}

// Load returns the transcript for a session; an unknown session is an
// empty transcript, not an error.
func (s *HistoryStore) Load(ctx context.Context, sessionID string) ([]Message, error) {
	data, err := s.redis.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("chat: load history: %w", err)
	}

	var history []Message
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("chat: decode history: %w", err)
	}
	return history, nil
}

func sessionKey(id string) string {
	return fmt.Sprintf("chat:session:%s", id)
}
