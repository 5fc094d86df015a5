package cache

import (
	"context"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryHook responde GET/SET desde un mapa sin abrir conexiones.
type memoryHook struct {
	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration
}

func newMemoryHook() *memoryHook {
	return &memoryHook{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (h *memoryHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return nil, fmt.Errorf("sin red en tests")
	}
}

func (h *memoryHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		h.mu.Lock()
		defer h.mu.Unlock()
		args := cmd.Args()
		switch cmd.Name() {
		case "get":
			val, ok := h.data[fmt.Sprint(args[1])]
			if !ok {
				return redis.Nil
			}
			cmd.(*redis.StringCmd).SetVal(val)
			return nil
		case "set":
			key := fmt.Sprint(args[1])
			switch v := args[2].(type) {
			case []byte:
				h.data[key] = string(v)
			default:
				h.data[key] = fmt.Sprint(v)
			}
			if len(args) >= 5 {
				if n, ok := args[4].(int64); ok {
					unit := time.Second
					if args[3] == "px" {
						unit = time.Millisecond
					}
					h.ttls[key] = time.Duration(n) * unit
				}
			}
			cmd.(*redis.StatusCmd).SetVal("OK")
			return nil
		}
		return fmt.Errorf("comando no soportado: %s", cmd.Name())
	}
}

func (h *memoryHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func newHookedCache(t *testing.T, ttl time.Duration) (*RedisCache, *memoryHook) {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	hook := newMemoryHook()
	client.AddHook(hook)
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCache(client, ttl), hook
}

func TestRedisCache_MissDevuelveFalseSinError(t *testing.T) {
	c, _ := newHookedCache(t, time.Minute)

	var dst []string
	ok, err := c.Get(context.Background(), "analytics:all", &dst)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_SetYGetConPrefijoYTTL(t *testing.T) {
	c, hook := newHookedCache(t, 2*time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "analytics:critical", map[string]int{"critical": 2}))
	assert.Equal(t, `{"critical":2}`, hook.data["repuestos:analytics:critical"])
	assert.Equal(t, 2*time.Minute, hook.ttls["repuestos:analytics:critical"])

	var dst map[string]int
	ok, err := c.Get(ctx, "analytics:critical", &dst)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, map[string]int{"critical": 2}, dst)
}

func TestRedisCache_ValorCorruptoEsErrorDeDecodificacion(t *testing.T) {
	c, hook := newHookedCache(t, time.Minute)
	hook.data["repuestos:analytics:all"] = "{no-es-json"

	var dst []string
	ok, err := c.Get(context.Background(), "analytics:all", &dst)
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "decodificar caché analytics:all")
}

func TestRedisCache_ValorNoSerializable(t *testing.T) {
	c, _ := newHookedCache(t, time.Minute)

	err := c.Set(context.Background(), "analytics:all", make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "codificar caché analytics:all")
}

func TestNewRedisCache_TTLPorDefecto(t *testing.T) {
	c := NewRedisCache(redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"}), 0)
	defer c.Close()
	assert.Equal(t, defaultCacheTTL, c.ttl)
}

func TestRedisCache_ServidorInalcanzable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	c := NewRedisCache(client, time.Minute)
	defer c.Close()
	ctx := context.Background()

	var dst []string
	_, err := c.Get(ctx, "analytics:all", &dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis get")

	err = c.Set(ctx, "analytics:all", []string{"x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis set")
}
