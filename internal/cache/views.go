package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Broadcaster pushes a message to connected dashboard clients.
type Broadcaster interface {
	Broadcast(messageType string, data interface{}, source string)
}

// Views caches rendered list and stats payloads per namespace ("orders",
// "products", ...). Each namespace has a generation counter; invalidating a
// path bumps the counter so older entries are never read again and expire
// by TTL.
type Views struct {
	cache  Cache
	hub    Broadcaster
	ttl    time.Duration
	logger *logrus.Logger
}

func NewViews(c Cache, hub Broadcaster, ttl time.Duration, logger *logrus.Logger) *Views {
	return &Views{cache: c, hub: hub, ttl: ttl, logger: logger}
}

func (v *Views) generation(ctx context.Context, namespace string) (string, error) {
	gen, err := v.cache.Get(ctx, v.cache.GenerateKey("gen", namespace))
	if err != nil {
		return "", err
	}
	if gen == "" {
		gen = "0"
	}
	return gen, nil
}

func (v *Views) dataKey(ctx context.Context, namespace, key string) (string, error) {
	gen, err := v.generation(ctx, namespace)
	if err != nil {
		return "", err
	}
	return v.cache.GenerateKey(namespace, gen+":"+key), nil
}

// Load resolves the slot for key under the namespace's current generation
// and fills dst on a hit. Cache errors count as a miss with no slot.
func (v *Views) Load(ctx context.Context, namespace, key string, dst any) (string, bool) {
	if v == nil || v.cache == nil {
		return "", false
	}
	slot, err := v.dataKey(ctx, namespace, key)
	if err != nil {
		v.warn(err, namespace, "load")
		return "", false
	}
	raw, err := v.cache.Get(ctx, slot)
	if err != nil {
		v.warn(err, namespace, "load")
		return slot, false
	}
	if raw == "" {
		return slot, false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		v.warn(err, namespace, "decode")
		return slot, false
	}
	return slot, true
}

// Store writes value into a slot returned by Load. The slot pins the
// generation seen before the underlying read, so a value stored after an
// invalidation lands in a dead generation and is never served.
func (v *Views) Store(ctx context.Context, slot string, value any) {
	if v == nil || v.cache == nil || slot == "" {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		v.warn(err, slot, "encode")
		return
	}
	if err := v.cache.Set(ctx, slot, string(data), v.ttl); err != nil {
		v.warn(err, slot, "store")
	}
}

// InvalidatePaths drops cached views under each path's namespace and tells
// connected clients to refetch those paths.
func (v *Views) InvalidatePaths(ctx context.Context, paths ...string) {
	if v == nil || len(paths) == 0 {
		return
	}
	if v.cache != nil {
		seen := map[string]bool{}
		for _, p := range paths {
			ns := Namespace(p)
			if ns == "" || seen[ns] {
				continue
			}
			seen[ns] = true
			if _, err := v.cache.Incr(ctx, v.cache.GenerateKey("gen", ns)); err != nil {
				v.warn(err, ns, "invalidate")
			}
		}
	}
	if v.hub != nil {
		v.hub.Broadcast("invalidate", map[string]any{"paths": paths}, "backoffice")
	}
}

// Namespace maps "/orders/abc" to "orders".
func Namespace(path string) string {
	path = strings.Trim(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		path = path[:i]
	}
	return path
}

func (v *Views) warn(err error, namespace, op string) {
	if v.logger == nil {
		return
	}
	v.logger.WithError(err).WithFields(logrus.Fields{
		"module":    "cache",
		"namespace": namespace,
		"op":        op,
	}).Warn(fmt.Sprintf("view cache %s failed", op))
}
