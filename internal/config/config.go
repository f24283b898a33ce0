package config

import (
	"tx-resolver-sol/pkg/logger"
)

type LogConfig struct {
	Format   string `yaml:"format"`   // 日志格式，支持 "console" 或 "json"
	LogDir   string `yaml:"log_dir"`  // 日志目录（可为相对路径或绝对路径）
	Level    string `yaml:"level"`    // 日志级别：debug / info / warn / error
	Compress bool   `yaml:"compress"` // 是否压缩旧日志文件
}

func (c *LogConfig) ToLogOption() logger.LogOption {
	return logger.LogOption{
		Format:   c.Format,
		LogDir:   c.LogDir,
		Level:    c.Level,
		Compress: c.Compress,
	}
}

// KafkaProducerConfig 表示 Kafka 生产者相关配置
type KafkaProducerConfig struct {
	Brokers   string `yaml:"brokers"`    // Kafka broker 地址，多个用英文逗号分隔
	BatchSize int    `yaml:"batch_size"` // 批处理大小（单位字节）
	LingerMs  int    `yaml:"linger_ms"`  // 批处理最大延迟（毫秒）

	Topics struct {
		Resolved string `yaml:"resolved"` // 交易归因结果的 Kafka topic
	} `yaml:"topics"`

	Partitions struct {
		Resolved int `yaml:"resolved"` // resolved topic 的分区数
	} `yaml:"partitions"`
}

// RedisConfig 表示签名判重用的 Redis 配置
type RedisConfig struct {
	Addr         string `yaml:"addr"`           // Redis 地址，例如 127.0.0.1:6379
	Password     string `yaml:"password"`       // 密码，可为空
	DB           int    `yaml:"db"`             // 逻辑库编号
	DedupTTLSec  int    `yaml:"dedup_ttl_sec"`  // 签名判重记录的保留时长（秒）
	DialTimeoutS int    `yaml:"dial_timeout_s"` // 连接超时（秒）
}

// TimeConfig 表示各种超时配置
type TimeConfig struct {
	EventSendTimeoutMs int `yaml:"event_send_timeout_ms"` // 单条结果发送到 Kafka 并等待 ack 的超时时间（毫秒）
}

// Config 是主配置结构体，用于驱动交易归因服务
type Config struct {
	LogConf           LogConfig           `yaml:"logger"`         // 日志配置
	KafkaProducerConf KafkaProducerConfig `yaml:"kafka_producer"` // Kafka 生产者配置
	RedisConf         RedisConfig         `yaml:"redis"`          // Redis 判重配置
	TimeConf          TimeConfig          `yaml:"time_conf"`      // 时间相关配置

	// 平台识别表（地址 → 平台名）的 YAML 文件路径，空表示只用内置表
	PlatformTablePath string `yaml:"platform_table_path"`

	// gRPC 客户端连接相关配置
	Grpc struct {
		Endpoint string `yaml:"endpoint"` // gRPC 服务端地址
		XToken   string `yaml:"x_token"`  // x-token 认证

		// 应用级逻辑心跳（ping）配置
		StreamPingIntervalSec int `yaml:"stream_ping_interval_sec"` // 应用层 ping 心跳间隔（秒）

		// gRPC Keepalive 底层连接检测配置
		KeepalivePingIntervalSec int `yaml:"keepalive_ping_interval_sec"` // 底层 keepalive 间隔（秒）
		KeepalivePingTimeoutSec  int `yaml:"keepalive_ping_timeout_sec"`  // 底层 keepalive 超时（秒）

		// gRPC 窗口大小调优（用于大数据流推送）
		InitialWindowSize     int `yaml:"initial_window_size"`      // 单流窗口大小（字节）
		InitialConnWindowSize int `yaml:"initial_conn_window_size"` // 整体连接窗口大小（字节）

		// 消息体大小限制
		MaxCallSendMsgSize int `yaml:"max_call_send_msg_size"` // 单条消息最大发送字节数
		MaxCallRecvMsgSize int `yaml:"max_call_recv_msg_size"` // 单条消息最大接收字节数

		// 超时与重连策略
		ReconnectIntervalSec int `yaml:"reconnect_interval_sec"` // 重连最小间隔（秒）
		ConnectTimeoutSec    int `yaml:"connect_timeout_sec"`    // 连接建立超时（秒）
		SendTimeoutSec       int `yaml:"send_timeout_sec"`       // 发送超时（秒）
		BlockRecvTimeoutSec  int `yaml:"block_recv_timeout_sec"` // 多久未收到 block 触发重连（秒）
	} `yaml:"grpc"`
}
