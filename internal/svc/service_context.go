package svc

import (
	"context"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"tx-resolver-sol/internal/cache"
	"tx-resolver-sol/internal/config"
	"tx-resolver-sol/internal/mq"
	"tx-resolver-sol/pkg/logger"
)

// ServiceContext 持有服务级共享资源
type ServiceContext struct {
	Config         config.Config
	Producer       *kafka.Producer
	SignatureCache *cache.SignatureCache
}

// NewServiceContext 创建服务上下文并初始化外部依赖
func NewServiceContext(c config.Config) (*ServiceContext, error) {
	// 1. 初始化 Kafka 生产者
	producer, err := mq.NewKafkaProducer(c.KafkaProducerConf)
	if err != nil {
		logger.Errorf("Kafka producer 初始化失败: %v", err)
		return nil, err
	}

	// 2. 初始化 Redis 签名判重缓存
	sigCache := cache.NewSignatureCache(c.RedisConf)
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sigCache.Ping(pingCtx); err != nil {
		logger.Errorf("Redis 连接失败: %v", err)
		producer.Close()
		return nil, err
	}

	logger.Infof("服务上下文初始化完成")
	return &ServiceContext{
		Config:         c,
		Producer:       producer,
		SignatureCache: sigCache,
	}, nil
}

// Close 关闭服务上下文中的资源
func (ctx *ServiceContext) Close() {
	if ctx.Producer != nil {
		ctx.Producer.Close()
	}
	if ctx.SignatureCache != nil {
		_ = ctx.SignatureCache.Close()
	}
}
