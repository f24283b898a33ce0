package normalizer

import (
	"encoding/json"
	"fmt"
)

// rpcTransaction 对应 RPC getTransaction（encoding=json）返回的 result 对象。
// 字段缺省时保持零值，列表字段在转换阶段补齐为空切片。
type rpcTransaction struct {
	Slot        uint64          `json:"slot"`
	BlockTime   *int64          `json:"blockTime"`
	Transaction rpcSignedTx     `json:"transaction"`
	Meta        *rpcMeta        `json:"meta"`
	Version     json.RawMessage `json:"version"`
}

type rpcSignedTx struct {
	Signatures []string   `json:"signatures"`
	Message    rpcMessage `json:"message"`
}

type rpcMessage struct {
	AccountKeys         []string           `json:"accountKeys"`
	RecentBlockhash     string             `json:"recentBlockhash"`
	Instructions        []rpcInstruction   `json:"instructions"`
	AddressTableLookups []rpcAddressLookup `json:"addressTableLookups"`
}

type rpcInstruction struct {
	ProgramIDIndex int    `json:"programIdIndex"`
	Data           string `json:"data"`
	Accounts       []int  `json:"accounts"`
	StackHeight    *int   `json:"stackHeight"`
}

type rpcAddressLookup struct {
	AccountKey      string `json:"accountKey"`
	WritableIndexes []int  `json:"writableIndexes"`
	ReadonlyIndexes []int  `json:"readonlyIndexes"`
}

type rpcInnerGroup struct {
	Index        *int             `json:"index"`
	Instructions []rpcInstruction `json:"instructions"`
}

type rpcTokenAmount struct {
	Amount         string `json:"amount"`
	Decimals       uint8  `json:"decimals"`
	UIAmountString string `json:"uiAmountString"`
}

type rpcTokenBalance struct {
	AccountIndex  int            `json:"accountIndex"`
	Mint          string         `json:"mint"`
	Owner         string         `json:"owner"`
	ProgramID     string         `json:"programId"`
	UITokenAmount rpcTokenAmount `json:"uiTokenAmount"`
}

type rpcLoadedAddresses struct {
	Writable []string `json:"writable"`
	Readonly []string `json:"readonly"`
}

type rpcMeta struct {
	Err                  json.RawMessage     `json:"err"`
	Fee                  uint64              `json:"fee"`
	PreBalances          []uint64            `json:"preBalances"`
	PostBalances         []uint64            `json:"postBalances"`
	PreTokenBalances     []rpcTokenBalance   `json:"preTokenBalances"`
	PostTokenBalances    []rpcTokenBalance   `json:"postTokenBalances"`
	InnerInstructions    []rpcInnerGroup     `json:"innerInstructions"`
	LogMessages          []string            `json:"logMessages"`
	ComputeUnitsConsumed *uint64             `json:"computeUnitsConsumed"`
	LoadedAddresses      *rpcLoadedAddresses `json:"loadedAddresses"`
}

// FromRPCJSON 将 RPC getTransaction 返回的 JSON 规范化为标准 Transaction。
// 只做字段搬运与缺省补齐，不做任何指令解码。
func FromRPCJSON(raw []byte) (*Transaction, error) {
	var rt rpcTransaction
	if err := json.Unmarshal(raw, &rt); err != nil {
		return nil, fmt.Errorf("unmarshal rpc transaction: %w", err)
	}
	if len(rt.Transaction.Signatures) == 0 {
		return nil, fmt.Errorf("invalid rpc transaction: missing signatures")
	}

	accountKeys, err := parseAccountKeys(rt.Transaction.Message.AccountKeys)
	if err != nil {
		return nil, fmt.Errorf("parse accountKeys: %w", err)
	}

	tx := &Transaction{
		Slot:       rt.Slot,
		Signatures: rt.Transaction.Signatures,
		Message: Message{
			AccountKeys:         accountKeys,
			RecentBlockhash:     rt.Transaction.Message.RecentBlockhash,
			Instructions:        convertRPCInstructions(rt.Transaction.Message.Instructions),
			AddressTableLookups: convertRPCAddressLookups(rt.Transaction.Message.AddressTableLookups),
		},
	}
	if rt.BlockTime != nil {
		tx.BlockTime = *rt.BlockTime
	}

	if rt.Meta != nil {
		meta, loaded, err := convertRPCMeta(rt.Meta)
		if err != nil {
			return nil, err
		}
		tx.Meta = meta
		tx.LoadedAddresses = loaded
	} else {
		tx.Meta = emptyMeta()
	}
	return tx, nil
}

func convertRPCInstructions(list []rpcInstruction) []Instruction {
	result := make([]Instruction, 0, len(list))
	for _, in := range list {
		result = append(result, convertRPCInstruction(in))
	}
	return result
}

func convertRPCInstruction(in rpcInstruction) Instruction {
	ins := Instruction{
		ProgramIDIndex: in.ProgramIDIndex,
		Data:           in.Data,
		Accounts:       in.Accounts,
	}
	if ins.Accounts == nil {
		ins.Accounts = []int{}
	}
	if in.StackHeight != nil {
		ins.StackHeight = *in.StackHeight
	}
	return ins
}

func convertRPCAddressLookups(list []rpcAddressLookup) []AddressTableLookup {
	result := make([]AddressTableLookup, 0, len(list))
	for _, l := range list {
		result = append(result, AddressTableLookup{
			AccountKey:      l.AccountKey,
			WritableIndexes: l.WritableIndexes,
			ReadonlyIndexes: l.ReadonlyIndexes,
		})
	}
	return result
}

func convertRPCTokenBalances(list []rpcTokenBalance) ([]TokenBalance, error) {
	result := make([]TokenBalance, 0, len(list))
	for _, tb := range list {
		mint, err := parseAccountKeys([]string{tb.Mint})
		if err != nil {
			return nil, fmt.Errorf("parse token balance mint: %w", err)
		}
		result = append(result, TokenBalance{
			AccountIndex: tb.AccountIndex,
			Mint:         mint[0],
			Owner:        tb.Owner,
			ProgramID:    tb.ProgramID,
			Amount:       parseUint64(tb.UITokenAmount.Amount),
			Decimals:     tb.UITokenAmount.Decimals,
		})
	}
	return result, nil
}

func convertRPCMeta(m *rpcMeta) (Meta, LoadedAddresses, error) {
	pre, err := convertRPCTokenBalances(m.PreTokenBalances)
	if err != nil {
		return Meta{}, LoadedAddresses{}, err
	}
	post, err := convertRPCTokenBalances(m.PostTokenBalances)
	if err != nil {
		return Meta{}, LoadedAddresses{}, err
	}

	inner := make([]InnerInstructionGroup, 0, len(m.InnerInstructions))
	for _, g := range m.InnerInstructions {
		group := InnerInstructionGroup{
			Index:        GroupIndexUnset,
			Instructions: convertRPCInstructions(g.Instructions),
		}
		if g.Index != nil {
			group.Index = *g.Index
		}
		inner = append(inner, group)
	}

	meta := Meta{
		Fee:                  m.Fee,
		PreBalances:          orEmptyU64(m.PreBalances),
		PostBalances:         orEmptyU64(m.PostBalances),
		PreTokenBalances:     pre,
		PostTokenBalances:    post,
		InnerInstructions:    inner,
		LogMessages:          orEmptyStr(m.LogMessages),
		ComputeUnitsConsumed: m.ComputeUnitsConsumed,
	}
	if len(m.Err) > 0 && string(m.Err) != "null" {
		meta.Err = string(m.Err)
	}

	var loaded LoadedAddresses
	if m.LoadedAddresses != nil {
		w, err := parseAccountKeys(m.LoadedAddresses.Writable)
		if err != nil {
			return Meta{}, LoadedAddresses{}, fmt.Errorf("parse loaded writable: %w", err)
		}
		r, err := parseAccountKeys(m.LoadedAddresses.Readonly)
		if err != nil {
			return Meta{}, LoadedAddresses{}, fmt.Errorf("parse loaded readonly: %w", err)
		}
		loaded = LoadedAddresses{Writable: w, Readonly: r}
	}
	return meta, loaded, nil
}

func emptyMeta() Meta {
	return Meta{
		PreBalances:       []uint64{},
		PostBalances:      []uint64{},
		PreTokenBalances:  []TokenBalance{},
		PostTokenBalances: []TokenBalance{},
		InnerInstructions: []InnerInstructionGroup{},
		LogMessages:       []string{},
	}
}

func orEmptyU64(v []uint64) []uint64 {
	if v == nil {
		return []uint64{}
	}
	return v
}

func orEmptyStr(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
