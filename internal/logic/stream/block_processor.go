package stream

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/mr-tron/base58"
	pb "github.com/rpcpool/yellowstone-grpc/examples/golang/proto"

	"tx-resolver-sol/internal/consts"
	"tx-resolver-sol/internal/logic/normalizer"
	"tx-resolver-sol/internal/logic/pipeline"
	"tx-resolver-sol/internal/mq"
	"tx-resolver-sol/internal/svc"
	"tx-resolver-sol/pkg/logger"
	"tx-resolver-sol/pkg/utils"
)

// BlockProcessor 消费订阅流推来的区块：
// 逐笔规范化、按签名判重、并行执行 解码 → 富化 → 归因，结果发往 Kafka。
type BlockProcessor struct {
	sc        *svc.ServiceContext
	blockChan chan *pb.SubscribeUpdateBlock
	ctx       context.Context
	cancel    func(err error)
}

type processedTx struct {
	txIndex   int
	signature string
	payload   []byte // JSON 序列化的归因结果，nil 表示跳过或失败
}

func NewBlockProcessor(sc *svc.ServiceContext, blockChan chan *pb.SubscribeUpdateBlock) *BlockProcessor {
	ctx, cancel := context.WithCancelCause(context.Background())
	return &BlockProcessor{
		sc:        sc,
		blockChan: blockChan,
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (p *BlockProcessor) Start() {
	for {
		select {
		case <-p.ctx.Done():
			return
		case block := <-p.blockChan:
			p.procBlock(block)
			if len(p.blockChan) > 10 {
				logger.Debugf("block chan len: %v", len(p.blockChan))
			}
		}
	}
}

func (p *BlockProcessor) Stop() {
	p.cancel(errors.New("service stop"))
}

func (p *BlockProcessor) procBlock(block *pb.SubscribeUpdateBlock) {
	startTime := time.Now()
	defer func() {
		logger.Infof("区块处理总耗时: %v, slot: %d", time.Since(startTime), block.Slot)
	}()

	// 1. 过滤合法交易
	validTxs := make([]*pb.SubscribeUpdateTransactionInfo, 0, len(block.Transactions))
	for _, tx := range block.Transactions {
		if IsValidGrpcTx(tx) {
			validTxs = append(validTxs, tx)
		}
	}
	if len(validTxs) == 0 {
		return
	}

	var blockTime int64
	if block.BlockTime != nil {
		blockTime = block.BlockTime.Timestamp
	}

	// 2. 并发执行 规范化 → 解码 → 富化 → 归因
	results := utils.ParallelMap(validTxs, consts.CpuCount+2,
		func(tx *pb.SubscribeUpdateTransactionInfo) processedTx {
			return p.processTx(block.Slot, blockTime, tx)
		})

	// 3. 发送归因结果
	topic := p.sc.Config.KafkaProducerConf.Topics.Resolved
	partitions := uint32(p.sc.Config.KafkaProducerConf.Partitions.Resolved)
	jobs := make([]*mq.KafkaJob, 0, len(results))
	for i, r := range results {
		if r.payload == nil {
			continue
		}
		jobs = append(jobs, &mq.KafkaJob{
			Topic:     topic,
			Partition: int32(utils.PartitionHashBytes(validTxs[i].Transaction.Signatures[0], partitions)),
			Value:     r.payload,
		})
	}
	if len(jobs) == 0 {
		return
	}

	sendTimeout := time.Duration(p.sc.Config.TimeConf.EventSendTimeoutMs) * time.Millisecond
	if sendTimeout <= 0 {
		sendTimeout = 5 * time.Second
	}
	ok, failed := mq.SendKafkaJobs(p.ctx, p.sc.Producer, jobs, sendTimeout)
	if len(failed) > 0 {
		logger.Errorf("slot %d: kafka 发送失败 %d 条（成功 %d 条），首个错误: %v",
			block.Slot, len(failed), len(ok), failed[0].Err)
	}
	logger.Infof("总tx数量: %v, 有效tx数量: %v, 下发结果数量: %v",
		len(block.Transactions), len(validTxs), len(jobs))
}

func (p *BlockProcessor) processTx(slot uint64, blockTime int64, tx *pb.SubscribeUpdateTransactionInfo) processedTx {
	signature := base58.Encode(tx.Transaction.Signatures[0])
	out := processedTx{txIndex: int(tx.Index), signature: signature}

	// 流重连会重放近期区块，同一签名只处理一次
	first, err := p.sc.SignatureCache.MarkSeen(p.ctx, signature)
	if err != nil {
		logger.Warnf("签名判重失败，按未处理继续: tx=%s err=%v", signature, err)
	} else if !first {
		return out
	}

	normalized, err := normalizer.FromGeyser(slot, blockTime, tx)
	if err != nil {
		logger.Errorf("规范化失败: tx=%s err=%v", signature, err)
		return out
	}

	result, err := pipeline.Process(normalized)
	if err != nil {
		// 单笔失败不影响其他交易；回滚判重标记以便后续重放重试
		logger.Errorf("归因失败: tx=%s err=%v", signature, err)
		_ = p.sc.SignatureCache.Forget(p.ctx, signature)
		return out
	}

	payload, err := json.Marshal(result)
	if err != nil {
		logger.Errorf("结果序列化失败: tx=%s err=%v", signature, err)
		return out
	}
	out.payload = payload
	return out
}

// IsValidGrpcTx 过滤结构不完整的推送与投票交易。
// 执行失败的交易保留：失败状态本身是归因结果的一部分。
func IsValidGrpcTx(tx *pb.SubscribeUpdateTransactionInfo) bool {
	if tx == nil ||
		tx.Transaction == nil ||
		tx.Transaction.Message == nil ||
		len(tx.Transaction.Signatures) == 0 ||
		len(tx.Transaction.Signatures[0]) != 64 ||
		tx.IsVote ||
		tx.Meta == nil {
		return false
	}
	return true
}
