package shared

import (
	"context"
	"flightbook/shared/cache"
	"flightbook/shared/constant"
	"flightbook/shared/dto"
	"flightbook/shared/timezone"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheKeySeparator  = ":"
	cacheGenerationKey = "generation"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// BoolFromString is ConvertStringToBool with a fallback for empty or malformed input.
func BoolFromString(value string, fallback bool) bool {
	if parsed := ConvertStringToBool(value); parsed != nil {
		return *parsed
	}

	return fallback
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the non-zero, db-tagged fields of a struct into an update map.
// Pointer fields are dereferenced so sqlx receives plain values.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			field = field.Elem()
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins a prefix and its parts, e.g. "user:get:42".
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + cacheKeySeparator + strings.Join(parts, cacheKeySeparator)
}

func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, extra ...string) string {
	parts := []string{
		strconv.Itoa(params.Page),
		strconv.Itoa(params.Limit),
		params.SortBy,
		params.SortDir,
	}

	return BuildCacheKey(prefix, append(parts, extra...)...)
}

// InvalidateCaches removes every key under prefix. Errors are logged, not returned.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	pattern := fmt.Sprintf("%s%s", prefix, constant.Asterix)

	if err := redisCache.Clear(ctx, pattern); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

func generationKey(prefix string) string {
	return BuildCacheKey(cacheGenerationKey, prefix)
}

// CacheGeneration returns the current generation of prefix, empty when none was recorded or Redis is down.
// Read it before querying the store and hand it to SaveIfCurrent.
func CacheGeneration(ctx context.Context, redisCache cache.RedisCache, prefix string) string {
	var generation string

	if err := redisCache.Get(ctx, generationKey(prefix), &generation); err != nil {
		return constant.Empty
	}

	return generation
}

// InvalidateGeneration starts a new generation for prefix and then removes its keys.
// Writers call it after the store write and before returning.
func InvalidateGeneration(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Save(ctx, generationKey(prefix), uuid.NewString(), 0); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to bump cache generation")
	}

	InvalidateCaches(ctx, redisCache, prefix)
}

// SaveIfCurrent caches value under key and takes it back out when prefix moved to a new generation
// since the caller read it, so a read racing a write never leaves the older result behind.
func SaveIfCurrent(ctx context.Context, redisCache cache.RedisCache, prefix, generation, key string, value any, ttl int) {
	if err := redisCache.Save(ctx, key, value, ttl); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to save cache")

		return
	}

	if CacheGeneration(ctx, redisCache, prefix) == generation {
		return
	}

	if err := redisCache.Delete(ctx, key); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to drop outdated cache")
	}
}
