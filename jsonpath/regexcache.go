package jsonpath

import (
	"regexp"
	"sync"

	"github.com/jsonpathkit/jsonpathkit/pkerrors"
)

const defaultRegexCacheCapacity = 300

// regexCache is a bounded LRU cache of compiled patterns, keyed on the
// exact pattern text. A failed compilation is cached as a permanently
// non-matching entry so a malformed pattern does not re-attempt
// compilation (and re-pay the cost) on every evaluation. The failure is
// logged with Warn; in debug mode compile also returns it as a
// *pkerrors.RegexError, which fullMatch and search treat as a non-match.
type regexCache struct {
	mu         sync.Mutex
	threadSafe bool
	capacity   int
	order      []string
	entries    map[string]regexCacheEntry
	debug      bool
	log        Logger
}

type regexCacheEntry struct {
	re  *regexp.Regexp
	err error
}

func newRegexCache(capacity int, threadSafe, debug bool, log Logger) *regexCache {
	if capacity <= 0 {
		capacity = defaultRegexCacheCapacity
	}
	if log == nil {
		log = NopLogger{}
	}
	return &regexCache{
		threadSafe: threadSafe,
		capacity:   capacity,
		entries:    make(map[string]regexCacheEntry, capacity),
		debug:      debug,
		log:        log,
	}
}

func (c *regexCache) lock() {
	if c.threadSafe {
		c.mu.Lock()
	}
}

func (c *regexCache) unlock() {
	if c.threadSafe {
		c.mu.Unlock()
	}
}

// compile returns the pattern compiled for full-match or partial-match use
// (wrap is applied by the caller before the cache key is formed, so
// full-match and search use distinct cache entries for the same pattern
// text).
func (c *regexCache) compile(key, translated string) (*regexp.Regexp, error) {
	c.lock()
	defer c.unlock()
	if e, ok := c.entries[key]; ok {
		c.touch(key)
		if e.err != nil && c.debug {
			return nil, &pkerrors.RegexError{Pattern: key, Cause: e.err}
		}
		return e.re, nil
	}
	re, err := regexp.Compile(translated)
	c.insert(key, regexCacheEntry{re: re, err: err})
	if err != nil {
		c.log.Warn("regex compile failed, treating as permanently non-matching", "pattern", key, "err", err)
		if c.debug {
			return nil, &pkerrors.RegexError{Pattern: key, Cause: err}
		}
		return nil, nil
	}
	return re, nil
}

func (c *regexCache) touch(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.order = append(c.order, key)
}

func (c *regexCache) insert(key string, e regexCacheEntry) {
	if _, exists := c.entries[key]; !exists && len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = e
	c.touch(key)
}

// fullMatch compiles pattern anchored at both ends (I-Regexp/RFC 9535
// match() semantics: the whole subject must match).
func (c *regexCache) fullMatch(subject, pattern string) bool {
	re, err := c.compile("F:"+pattern, "^(?:"+translateIRegexp(pattern)+")$")
	if err != nil || re == nil {
		return false
	}
	return re.MatchString(subject)
}

// search compiles pattern unanchored (search() semantics: any substring
// matches).
func (c *regexCache) search(subject, pattern string) bool {
	re, err := c.compile("S:"+pattern, translateIRegexp(pattern))
	if err != nil || re == nil {
		return false
	}
	return re.MatchString(subject)
}

// translateIRegexp adapts an I-Regexp pattern (RFC 9485, the dialect RFC
// 9535 mandates for match()/search()) to Go's RE2 syntax. I-Regexp is a
// restricted subset of XML Schema regexes with no backreferences or
// lookaround, so RE2 already accepts the vast majority of valid patterns
// unmodified; only the character-class shorthand \p{...} differences would
// need translation, and Go's regexp already supports Unicode \p classes
// natively, so no rewriting is required today.
func translateIRegexp(pattern string) string {
	return pattern
}
