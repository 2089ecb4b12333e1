package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- bodyHash ---

func Test_bodyHash(t *testing.T) {
	data := []byte("hello world")
	sum := sha256.Sum256(data)
	assert.Equal(t, hex.EncodeToString(sum[:]), bodyHash(data))
}

// --- nowUTC ---

func Test_nowUTC(t *testing.T) {
	u := nowUTC()
	assert.Equal(t, time.UTC, u.Location())
	assert.WithinDuration(t, time.Now(), u, 2*time.Second)
}

// --- buildKey ---

func Test_buildKey(t *testing.T) {
	k := buildKey("POST", "/api/v1/leaves", "admin", strings.Repeat("a", 32))
	assert.True(t, strings.HasPrefix(k, "idemp:leave:post:/api/v1/leaves:"), k)
	assert.Contains(t, k, ":admin:")
	assert.True(t, strings.HasSuffix(k, strings.Repeat("a", 32)), k)

	a := buildKey("POST", "/api/v1/leaves/1/decision", "admin", testKey)
	b := buildKey("POST", "/api/v1/leaves/2/decision", "admin", testKey)
	assert.NotEqual(t, a, b, "resource path is part of the key")
}

// --- validKey ---

func Test_validKey(t *testing.T) {
	t.Run("accepts uuid and 32-hex", func(t *testing.T) {
		for _, s := range []string{
			"3f9a6a1b-3d54-4fbe-8b3a-6b3e8d6b2c88",
			"3F9A6A1B-3D54-4FBE-8B3A-6B3E8D6B2C88",
			strings.Repeat("a", 32),
			"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88",
			"  3f9a6a1b3d544fbe8b3a6b3e8d6b2c88  ",
		} {
			assert.True(t, validKey(s), s)
		}
	})

	t.Run("rejects bad formats", func(t *testing.T) {
		for _, s := range []string{
			"",
			"3f9a6a1b3d544fbe8b3a6b3e8d6b2c8",   // 31 chars
			"3f9a6a1b3d544fbe8b3a6b3e8d6b2c880", // 33 chars
			"zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz",
			"urn:uuid:3f9a6a1b-3d54-4fbe-8b3a-6b3e8d6b2c88",
			"{3f9a6a1b-3d54-4fbe-8b3a-6b3e8d6b2c88}",
		} {
			assert.False(t, validKey(s), s)
		}
	})
}

// --- Redis helpers: provisionalSet, loadEntry, saveFinal, release ---

func Test_provisionalSet_LoadEntry(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	ctx := context.Background()

	key := buildKey("POST", "/api/v1/leaves", "admin", strings.Repeat("a", 32))
	entry := idempEntry{
		InProgress: true,
		BodySHA256: bodyHash([]byte(`{"a":1}`)),
		Key:        strings.Repeat("a", 32),
		CreatedAt:  nowUTC(),
	}

	ok, err := provisionalSet(ctx, rdb, key, entry)
	require.NoError(t, err)
	require.True(t, ok)
	ttl := rdb.TTL(ctx, key).Val()
	assert.True(t, ttl > 0 && ttl <= provisionalLockTTL, "provisional ttl %v", ttl)

	ok, err = provisionalSet(ctx, rdb, key, entry)
	require.NoError(t, err)
	assert.False(t, ok, "second provisionalSet must lose")

	got, err := loadEntry(ctx, rdb, key)
	require.NoError(t, err)
	assert.True(t, got.InProgress)
	assert.Equal(t, entry.Key, got.Key)
	assert.Equal(t, entry.BodySHA256, got.BodySHA256)

	require.NoError(t, release(ctx, rdb, key))
	assert.False(t, mr.Exists(key))
}

func Test_saveFinal_Load_TTL(t *testing.T) {
	_, rdb := newMiniredisClient(t)
	ctx := context.Background()

	key := buildKey("POST", "/api/v1/leaves", "admin", strings.Repeat("a", 32))
	final := idempEntry{
		Code:       201,
		Body:       []byte(`{"ok":true}`),
		BodySHA256: bodyHash([]byte(`{"ok":true}`)),
		Key:        strings.Repeat("a", 32),
		CreatedAt:  nowUTC(),
	}

	ttlWant := 5 * time.Second
	require.NoError(t, saveFinal(ctx, rdb, key, final, ttlWant))
	ttl := rdb.TTL(ctx, key).Val()
	assert.True(t, ttl > 0 && ttl <= ttlWant, "final ttl %v", ttl)

	got, err := loadEntry(ctx, rdb, key)
	require.NoError(t, err)
	assert.Equal(t, 201, got.Code)
	assert.JSONEq(t, `{"ok":true}`, string(got.Body))
	assert.False(t, got.InProgress)
}

func Test_loadEntry_Missing(t *testing.T) {
	_, rdb := newMiniredisClient(t)
	_, err := loadEntry(context.Background(), rdb, "idemp:leave:none")
	assert.ErrorIs(t, err, redis.Nil)
}
