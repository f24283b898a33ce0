package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tx-resolver-sol/internal/config"
)

// Redis key 前缀
const signaturePrefix = "resolver:sig"

// 签名判重记录的缺省保留时长
const defaultDedupTTL = 24 * time.Hour

// SignatureCache 管理 Redis 中的签名去重记录（幂等控制）。
// 流式数据源重连后会重放近期区块，同一笔交易不应重复下发。
type SignatureCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSignatureCache 创建签名判重管理器
func NewSignatureCache(cfg config.RedisConfig) *SignatureCache {
	dialTimeout := time.Duration(cfg.DialTimeoutS) * time.Second
	if dialTimeout <= 0 {
		dialTimeout = 5 * time.Second
	}
	ttl := time.Duration(cfg.DedupTTLSec) * time.Second
	if ttl <= 0 {
		ttl = defaultDedupTTL
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: dialTimeout,
	})
	return &SignatureCache{rdb: rdb, ttl: ttl}
}

func (c *SignatureCache) key(signature string) string {
	return fmt.Sprintf("%s:%s", signaturePrefix, signature)
}

// MarkSeen 以 SetNX 原子登记签名。
// 返回 true 表示首次出现，应继续处理；false 表示近期已处理过。
func (c *SignatureCache) MarkSeen(ctx context.Context, signature string) (bool, error) {
	first, err := c.rdb.SetNX(ctx, c.key(signature), 1, c.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx: %w", err)
	}
	return first, nil
}

// Forget 删除签名记录，处理失败时回滚占位，允许重试
func (c *SignatureCache) Forget(ctx context.Context, signature string) error {
	return c.rdb.Del(ctx, c.key(signature)).Err()
}

// Ping 探活，服务启动时验证连接可用
func (c *SignatureCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close 关闭底层连接
func (c *SignatureCache) Close() error {
	return c.rdb.Close()
}
