package normalizer

import (
	"fmt"

	"github.com/mr-tron/base58"
	pb "github.com/rpcpool/yellowstone-grpc/examples/golang/proto"

	"tx-resolver-sol/internal/types"
)

// FromGeyser 将 Geyser（yellowstone-grpc）推送的交易规范化为标准 Transaction。
// slot 与 blockTime 来自所属区块；blockTime 未知时传 0。
func FromGeyser(slot uint64, blockTime int64, info *pb.SubscribeUpdateTransactionInfo) (*Transaction, error) {
	if info == nil || info.Transaction == nil || info.Transaction.Message == nil || info.Meta == nil {
		return nil, fmt.Errorf("invalid geyser transaction: missing message or meta")
	}
	rawTx := info.Transaction
	rawMeta := info.Meta

	if len(rawTx.Signatures) == 0 {
		return nil, fmt.Errorf("invalid geyser transaction: missing signatures")
	}

	accountKeys, err := pubkeysFromBytes(rawTx.Message.AccountKeys, "accountKeys")
	if err != nil {
		return nil, err
	}
	writable, err := pubkeysFromBytes(rawMeta.LoadedWritableAddresses, "loadedWritableAddresses")
	if err != nil {
		return nil, err
	}
	readonly, err := pubkeysFromBytes(rawMeta.LoadedReadonlyAddresses, "loadedReadonlyAddresses")
	if err != nil {
		return nil, err
	}

	signatures := make([]string, 0, len(rawTx.Signatures))
	for _, sig := range rawTx.Signatures {
		signatures = append(signatures, base58.Encode(sig))
	}

	instructions := make([]Instruction, 0, len(rawTx.Message.Instructions))
	for _, in := range rawTx.Message.Instructions {
		instructions = append(instructions, Instruction{
			ProgramIDIndex: int(in.ProgramIdIndex),
			Data:           base58.Encode(in.Data),
			Accounts:       accountIndexes(in.Accounts),
		})
	}

	lookups := make([]AddressTableLookup, 0, len(rawTx.Message.AddressTableLookups))
	for _, l := range rawTx.Message.AddressTableLookups {
		lookups = append(lookups, AddressTableLookup{
			AccountKey:      base58.Encode(l.AccountKey),
			WritableIndexes: accountIndexes(l.WritableIndexes),
			ReadonlyIndexes: accountIndexes(l.ReadonlyIndexes),
		})
	}

	inner := make([]InnerInstructionGroup, 0, len(rawMeta.InnerInstructions))
	for _, g := range rawMeta.InnerInstructions {
		group := InnerInstructionGroup{
			Index:        int(g.Index),
			Instructions: make([]Instruction, 0, len(g.Instructions)),
		}
		for _, in := range g.Instructions {
			ins := Instruction{
				ProgramIDIndex: int(in.ProgramIdIndex),
				Data:           base58.Encode(in.Data),
				Accounts:       accountIndexes(in.Accounts),
			}
			if in.StackHeight != nil {
				ins.StackHeight = int(*in.StackHeight)
			}
			group.Instructions = append(group.Instructions, ins)
		}
		inner = append(inner, group)
	}

	pre, err := geyserTokenBalances(rawMeta.PreTokenBalances)
	if err != nil {
		return nil, err
	}
	post, err := geyserTokenBalances(rawMeta.PostTokenBalances)
	if err != nil {
		return nil, err
	}

	meta := Meta{
		Fee:                  rawMeta.Fee,
		PreBalances:          orEmptyU64(rawMeta.PreBalances),
		PostBalances:         orEmptyU64(rawMeta.PostBalances),
		PreTokenBalances:     pre,
		PostTokenBalances:    post,
		InnerInstructions:    inner,
		LogMessages:          orEmptyStr(rawMeta.LogMessages),
		ComputeUnitsConsumed: rawMeta.ComputeUnitsConsumed,
	}
	if rawMeta.Err != nil && len(rawMeta.Err.Err) > 0 {
		meta.Err = fmt.Sprintf("%X", rawMeta.Err.Err)
	}

	return &Transaction{
		Slot:       slot,
		BlockTime:  blockTime,
		Signatures: signatures,
		Message: Message{
			AccountKeys:         accountKeys,
			RecentBlockhash:     base58.Encode(rawTx.Message.RecentBlockhash),
			Instructions:        instructions,
			AddressTableLookups: lookups,
		},
		Meta: meta,
		LoadedAddresses: LoadedAddresses{
			Writable: writable,
			Readonly: readonly,
		},
	}, nil
}

// pubkeysFromBytes 批量转换 32 字节公钥，预分配目标切片避免扩容
func pubkeysFromBytes(list [][]byte, field string) ([]types.Pubkey, error) {
	result := make([]types.Pubkey, 0, len(list))
	for i, b := range list {
		p, err := types.TryPubkeyFromBytes(b)
		if err != nil {
			return nil, fmt.Errorf("invalid pubkey in %s at index %d: %w", field, i, err)
		}
		result = append(result, p)
	}
	return result, nil
}

// accountIndexes Geyser 的账户索引列表为字节序列，这里转换为 int 索引
func accountIndexes(accounts []byte) []int {
	result := make([]int, 0, len(accounts))
	for _, idx := range accounts {
		result = append(result, int(idx))
	}
	return result
}

func geyserTokenBalances(list []*pb.TokenBalance) ([]TokenBalance, error) {
	result := make([]TokenBalance, 0, len(list))
	for _, tb := range list {
		if tb == nil || tb.UiTokenAmount == nil {
			continue
		}
		mint, err := types.TryPubkeyFromBase58(normalizeAccountKey(tb.Mint))
		if err != nil {
			return nil, fmt.Errorf("parse token balance mint: %w", err)
		}
		result = append(result, TokenBalance{
			AccountIndex: int(tb.AccountIndex),
			Mint:         mint,
			Owner:        tb.Owner,
			ProgramID:    tb.ProgramId,
			Amount:       parseUint64(tb.UiTokenAmount.Amount),
			Decimals:     uint8(tb.UiTokenAmount.Decimals),
		})
	}
	return result, nil
}
