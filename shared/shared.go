package shared

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"hotelmanager/shared/cache"
	"hotelmanager/shared/constant"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const cacheKeySeparator = ":"

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// BuildCacheKey joins the prefix and parts into a colon separated key.
func BuildCacheKey(prefix string, parts ...string) string {
	key := prefix
	for _, part := range parts {
		key += cacheKeySeparator + part
	}

	return key
}

// BuildCacheKeyWithQuery appends a short digest of the encoded query to the key,
// so identical filters share an entry regardless of parameter order.
func BuildCacheKeyWithQuery(prefix string, query url.Values, parts ...string) string {
	sum := sha1.Sum([]byte(query.Encode())) //nolint:gosec

	return BuildCacheKey(prefix, append(parts, hex.EncodeToString(sum[:8]))...)
}

// InvalidateCaches clears every key under prefix. Failures are logged, not returned.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	pattern := prefix + constant.Asterix

	if err := redisCache.Clear(ctx, pattern); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// ParseIDParam reads a positive numeric chi URL parameter.
func ParseIDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParamFromCtx(r.Context(), name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}

	return id, nil
}

// ParseDecimal reads an optional decimal query value. ok is false when value is
// empty or cannot be parsed.
func ParseDecimal(value string) (amount decimal.Decimal, ok bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, false
	}

	return amount, true
}

// SplitList splits a comma separated query value, dropping blanks.
func SplitList(value string) []string {
	var out []string

	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}
