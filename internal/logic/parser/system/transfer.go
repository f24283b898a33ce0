package system

import (
	"tx-resolver-sol/internal/codec"
	"tx-resolver-sol/internal/logic/normalizer"
	"tx-resolver-sol/internal/logic/parser/common"
)

// Transfer 在两个账户之间转移 lamports。
// 账户位次固定：0 = 转出账户，1 = 转入账户。
type Transfer struct {
	common.InstructionBase
	FromAccount string `json:"from_account,omitempty"`
	ToAccount   string `json:"to_account,omitempty"`
	Lamports    uint64 `json:"lamports"`
}

// TransferWithSeed 以种子派生来源地址转移 lamports。
// 注意账户位次：0 = 转出账户，1 = 种子派生的 base 账户（不参与转账），2 = 转入账户。
type TransferWithSeed struct {
	common.InstructionBase
	SourceAccount      string `json:"source_account,omitempty"`
	DestinationAccount string `json:"destination_account,omitempty"`
	Lamports           uint64 `json:"lamports"`
	Seed               string `json:"seed"`
	Owner              string `json:"owner"`
}

func decodeTransfer(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	r := codec.NewReader(data)
	r.Skip(4, "discriminator")
	lamports := r.U64("lamports")
	if err := r.Err(); err != nil {
		return nil, err
	}

	from, err := ctx.OptionalAccountAt(ix, 0)
	if err != nil {
		return nil, err
	}
	to, err := ctx.OptionalAccountAt(ix, 1)
	if err != nil {
		return nil, err
	}
	return Transfer{
		InstructionBase: base("Transfer"),
		FromAccount:     from,
		ToAccount:       to,
		Lamports:        lamports,
	}, nil
}

func decodeTransferWithSeed(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	r := codec.NewReader(data)
	r.Skip(4, "discriminator")
	lamports := r.U64("lamports")
	seed := r.String("seed")
	owner := r.Pubkey("owner")
	if err := r.Err(); err != nil {
		return nil, err
	}

	source, err := ctx.OptionalAccountAt(ix, 0)
	if err != nil {
		return nil, err
	}
	destination, err := ctx.OptionalAccountAt(ix, 2)
	if err != nil {
		return nil, err
	}
	return TransferWithSeed{
		InstructionBase:    base("TransferWithSeed"),
		SourceAccount:      source,
		DestinationAccount: destination,
		Lamports:           lamports,
		Seed:               seed,
		Owner:              owner,
	}, nil
}
