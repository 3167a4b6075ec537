// Package translator puts a cache and logging in front of cronphrase.
package translator

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/yashkumarverma/cronphrase/src/cronphrase"
	"github.com/yashkumarverma/cronphrase/src/utils"
	"github.com/yashkumarverma/cronphrase/src/utils/cache"
)

// KeyPrefix namespaces every cache entry.
const KeyPrefix = "cronphrase:phrase:"

// Entry is what gets cached for one translation.
type Entry struct {
	Expression string    `json:"expression"`
	Phrase     string    `json:"phrase"`
	Language   string    `json:"language"`
	CreatedAt  time.Time `json:"created_at"`
}

// Translator converts expressions with a fixed service, remembering results
// in an optional cache.
type Translator struct {
	service *cronphrase.Service
	store   cache.Store
	ttl     time.Duration
	logger  *utils.StandardLogger
	digest  uint64
}

// New returns a Translator. A nil store disables caching.
func New(service *cronphrase.Service, store cache.Store, ttl time.Duration, logger *utils.StandardLogger) *Translator {
	if logger == nil {
		logger = utils.NopLogger()
	}
	return &Translator{
		service: service,
		store:   store,
		ttl:     ttl,
		logger:  logger,
		digest:  settingsDigest(service.Settings()),
	}
}

// Translate returns the phrase for expr shown in loc. Cache failures are
// logged and otherwise ignored.
func (t *Translator) Translate(ctx context.Context, expr string, loc *time.Location) (string, error) {
	if t.store == nil {
		return t.service.Convert(expr, loc)
	}

	key := t.Key(expr, loc)
	var entry Entry
	ok, err := cache.GetJSON(ctx, t.store, key, &entry)
	if err != nil {
		t.logger.Warnw("Failed to read cached phrase", "key", key, "error", err)
	} else if ok {
		t.logger.Debugw("Cache hit", "key", key, "expression", expr)
		return entry.Phrase, nil
	}

	phrase, err := t.service.Convert(expr, loc)
	if err != nil {
		return "", err
	}

	entry = Entry{
		Expression: expr,
		Phrase:     phrase,
		Language:   cronphrase.ParseLanguage(t.service.Settings().Language).String(),
		CreatedAt:  time.Now().UTC(),
	}
	if err := cache.SetJSONWithExpiry(ctx, t.store, key, entry, t.ttl); err != nil {
		t.logger.Warnw("Failed to cache phrase", "key", key, "error", err)
	} else {
		t.logger.Debugw("Cached phrase", "key", key, "expression", expr, "ttl", t.ttl)
	}
	return phrase, nil
}

// Key is the cache key for expr under the translator's settings and loc.
func (t *Translator) Key(expr string, loc *time.Location) string {
	zone := ""
	if loc != nil {
		zone = loc.String()
	}
	d := xxhash.New()
	d.WriteString(strconv.FormatUint(t.digest, 16))
	d.WriteString("\x00")
	d.WriteString(zone)
	d.WriteString("\x00")
	d.WriteString(strings.Join(strings.Fields(expr), " "))
	return KeyPrefix + strconv.FormatUint(d.Sum64(), 16)
}

// settingsDigest hashes everything in the settings that changes the output.
func settingsDigest(s cronphrase.Settings) uint64 {
	d := xxhash.New()
	d.WriteString(cronphrase.ParseLanguage(s.Language).String())
	d.WriteString("\x00")
	d.WriteString(strings.ToLower(string(s.DayNameFormat)))
	keys := make([]string, 0, len(s.CustomDayMappings))
	for k := range s.CustomDayMappings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		d.WriteString("\x00" + k + "=" + s.CustomDayMappings[k])
	}
	return d.Sum64()
}
