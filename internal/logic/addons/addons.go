package addons

import (
	"tx-resolver-sol/internal/logic/normalizer"
	"tx-resolver-sol/internal/logic/parser/common"
)

// Addons 是交易的附加富化结果。
// 固定枚举结构：每个富化器对应一个可选字段，缺省为 nil；
// 新增富化器通过扩展该结构体完成，不做运行时拼装。
type Addons struct {
	ComputeUnits         *ComputeUnits         `json:"compute_units,omitempty"`
	InstructionCount     *InstructionCount     `json:"instruction_count,omitempty"`
	LoadedAddresses      *LoadedAddresses      `json:"loaded_addresses,omitempty"`
	PlatformIdentifier   *PlatformIdentifier   `json:"platform_identifier,omitempty"`
	TokenTransferSummary *TokenTransferSummary `json:"token_transfer_summary,omitempty"`
	TransactionStatus    *TransactionStatus    `json:"transaction_status,omitempty"`
}

// Enrich 对交易依次执行全部富化器。
// 各富化器彼此独立，只读交易与解码结果，互不依赖对方的输出。
func Enrich(tx *normalizer.Transaction, instrs []common.ParsedInstruction) Addons {
	return Addons{
		ComputeUnits:         enrichComputeUnits(tx, instrs),
		InstructionCount:     enrichInstructionCount(tx),
		LoadedAddresses:      enrichLoadedAddresses(tx),
		PlatformIdentifier:   enrichPlatformIdentifier(tx),
		TokenTransferSummary: enrichTokenTransferSummary(tx),
		TransactionStatus:    enrichTransactionStatus(tx),
	}
}
