package normalizer

import (
	"tx-resolver-sol/internal/types"
)

// GroupIndexUnset 表示 inner 指令组未标注所属主指令。
// 旧版数据源存在缺失 index 的情况，关联时按“属于所有主指令”处理。
const GroupIndexUnset = -1

// Instruction 表示一条原始指令（主指令或 inner 指令均为此结构）。
// 账户与程序均为索引，指向交易的统一账户列表（AllAccounts）。
type Instruction struct {
	ProgramIDIndex int    // 程序地址在统一账户列表中的索引
	Data           string // 指令数据（base58 文本，可为空）
	Accounts       []int  // 指令涉及账户的索引列表，保持原始顺序
	StackHeight    int    // 调用栈高度，0 表示来源未提供
}

// AddressTableLookup 表示一条 Address Lookup Table 引用。
type AddressTableLookup struct {
	AccountKey      string
	WritableIndexes []int
	ReadonlyIndexes []int
}

// Message 表示交易消息体。
type Message struct {
	AccountKeys         []types.Pubkey // 静态账户列表
	RecentBlockhash     string
	Instructions        []Instruction
	AddressTableLookups []AddressTableLookup
}

// TokenBalance 表示交易前后某 SPL Token 账户的余额快照。
type TokenBalance struct {
	AccountIndex int          // 账户在统一账户列表中的索引
	Mint         types.Pubkey // Token mint 地址
	Owner        string       // Token account 所有者（base58，可为空）
	ProgramID    string       // Token Program 地址（base58，可为空）
	Amount       uint64       // 原始最小单位金额
	Decimals     uint8        // mint 精度
}

// InnerInstructionGroup 表示某主指令执行期间触发的 inner 指令组。
type InnerInstructionGroup struct {
	Index        int // 所属主指令索引；GroupIndexUnset 表示未标注
	Instructions []Instruction
}

// Meta 表示交易执行元数据。
type Meta struct {
	Fee                  uint64
	PreBalances          []uint64
	PostBalances         []uint64
	PreTokenBalances     []TokenBalance
	PostTokenBalances    []TokenBalance
	InnerInstructions    []InnerInstructionGroup
	LogMessages          []string
	Err                  string  // 执行错误描述，空串表示执行成功
	ComputeUnitsConsumed *uint64 // 消耗的计算单元，来源未提供时为 nil
}

// LoadedAddresses 表示通过 Address Lookup Table 加载的额外账户。
type LoadedAddresses struct {
	Writable []types.Pubkey
	Readonly []types.Pubkey
}

// Transaction 是规范化后的交易结构，屏蔽 RPC 与 Geyser 两种来源的形态差异。
// 处理期间不可变；所有下游组件共享同一份值。
type Transaction struct {
	Slot            uint64
	BlockTime       int64 // Unix 秒，0 表示来源未提供
	Signatures      []string
	Message         Message
	Meta            Meta
	LoadedAddresses LoadedAddresses
}

// AllAccounts 返回统一账户列表：静态账户 ++ 加载的 writable ++ 加载的 readonly。
// 交易中出现的所有账户索引（含指令与 inner 指令）均指向该拼接结果，
// 绝不单独指向静态账户列表。
func (tx *Transaction) AllAccounts() []types.Pubkey {
	total := len(tx.Message.AccountKeys) + len(tx.LoadedAddresses.Writable) + len(tx.LoadedAddresses.Readonly)
	keys := make([]types.Pubkey, 0, total)
	keys = append(keys, tx.Message.AccountKeys...)
	keys = append(keys, tx.LoadedAddresses.Writable...)
	keys = append(keys, tx.LoadedAddresses.Readonly...)
	return keys
}
