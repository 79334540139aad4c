// Package chat proxies dashboard questions to the OpenAI chat completion API
// with the mailbox digest as the system prompt.
package chat

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"inboxpulse/pkg/circuitbreaker"
	"inboxpulse/pkg/metrics"
)

// ErrNotConfigured is returned when no API key is set. The caller maps it to
// a configuration error distinct from upstream failures; no network call is
// ever attempted in this state.
var ErrNotConfigured = errors.New("openai api key not configured")

// ErrEmptyCompletion is returned when the API answered with no choices.
var ErrEmptyCompletion = errors.New("openai returned an empty completion")

const defaultCacheTTL = 15 * time.Minute

type Service struct {
	client     openai.Client
	configured bool
	model      string
	breaker    *circuitbreaker.Breaker
	cache      *goredis.Client
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// NewService builds the chat proxy. apiKey may be empty, in which case every
// Ask fails with ErrNotConfigured and the rest of the service keeps working.
// cache is optional; pass nil to disable response caching.
func NewService(apiKey, model string, cache *goredis.Client, logger *zap.Logger) *Service {
	return &Service{
		client:     openai.NewClient(option.WithAPIKey(apiKey)),
		configured: apiKey != "",
		model:      model,
		breaker:    circuitbreaker.New(circuitbreaker.DefaultConfig()),
		cache:      cache,
		cacheTTL:   defaultCacheTTL,
		logger:     logger,
	}
}

// Configured reports whether an API key is set.
func (s *Service) Configured() bool {
	return s.configured
}

// Ask sends one chat completion request: the mailbox digest as the system
// message, the user's question as the user message. Fixed sampling settings
// match the dashboard's original behavior: temperature 0.7, 500 output tokens.
func (s *Service) Ask(ctx context.Context, systemPrompt, message string) (string, error) {
	if !s.configured {
		metrics.IncrementChatRequest("unconfigured")
		return "", ErrNotConfigured
	}

	if cached, ok := s.cacheGet(ctx, message); ok {
		metrics.IncrementChatRequest("success")
		return cached, nil
	}

	var answer string
	err := s.breaker.Execute(func() error {
		start := time.Now()
		resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
			Model:       openai.ChatModel(s.model),
			Temperature: openai.Float(0.7),
			MaxTokens:   openai.Int(500),
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.SystemMessage(systemPrompt),
				openai.UserMessage(message),
			},
		})
		if err != nil {
			metrics.RecordOpenAICallLatency("error", time.Since(start))
			return err
		}
		metrics.RecordOpenAICallLatency("ok", time.Since(start))

		if len(resp.Choices) == 0 {
			return ErrEmptyCompletion
		}
		answer = resp.Choices[0].Message.Content
		return nil
	})
	if err != nil {
		metrics.IncrementChatRequest("failed")
		return "", err
	}

	s.cacheSet(ctx, message, answer)
	metrics.IncrementChatRequest("success")
	return answer, nil
}

func cacheKey(message string) string {
	sum := sha256.Sum256([]byte(message))
	return "chat:" + hex.EncodeToString(sum[:])
}

func (s *Service) cacheGet(ctx context.Context, message string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	val, err := s.cache.Get(ctx, cacheKey(message)).Result()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			s.logger.Warn("chat cache read failed", zap.Error(err))
		}
		metrics.IncrementChatCacheLookup("miss")
		return "", false
	}
	metrics.IncrementChatCacheLookup("hit")
	return val, true
}

func (s *Service) cacheSet(ctx context.Context, message, answer string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey(message), answer, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("chat cache write failed", zap.Error(err))
	}
}
