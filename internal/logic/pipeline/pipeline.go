package pipeline

import (
	"tx-resolver-sol/internal/logic/addons"
	"tx-resolver-sol/internal/logic/normalizer"
	"tx-resolver-sol/internal/logic/parser"
	"tx-resolver-sol/internal/logic/parser/common"
	"tx-resolver-sol/internal/logic/resolver"
)

// Result 是一笔交易的完整处理结果：
// 指令级解码列表（与原始指令一一对应）、附加富化、以及唯一的语义归因。
type Result struct {
	Signatures   []string                   `json:"signatures"`
	Slot         uint64                     `json:"slot"`
	Instructions []common.ParsedInstruction `json:"instructions"`
	Addons       addons.Addons              `json:"addons"`
	Resolved     resolver.Resolve           `json:"resolved"`
}

// Process 对一笔规范化交易执行 解码 → 富化 → 归因 全流程。
// 纯函数：不持有状态，天然可按交易并行调用。
// 解码失败中止本笔交易并上抛，不影响其他交易。
func Process(tx *normalizer.Transaction) (*Result, error) {
	parsed, err := parser.Parse(tx)
	if err != nil {
		return nil, err
	}

	return &Result{
		Signatures:   parsed.Signatures,
		Slot:         tx.Slot,
		Instructions: parsed.Instructions,
		Addons:       addons.Enrich(tx, parsed.Instructions),
		Resolved:     resolver.Run(parsed),
	}, nil
}
