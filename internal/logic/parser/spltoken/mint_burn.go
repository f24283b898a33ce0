package spltoken

import (
	"tx-resolver-sol/internal/codec"
	"tx-resolver-sol/internal/logic/normalizer"
	"tx-resolver-sol/internal/logic/parser/common"
)

// MintTo 增发 token 到目标账户。
type MintTo struct {
	common.InstructionBase
	Mint        string `json:"mint"`
	Destination string `json:"destination"`
	Amount      uint64 `json:"amount"`
}

// MintToChecked 带 decimals 校验的增发。
type MintToChecked struct {
	common.InstructionBase
	Mint        string `json:"mint"`
	Destination string `json:"destination"`
	Amount      uint64 `json:"amount"`
	Decimals    uint8  `json:"decimals"`
}

// Burn 从账户销毁 token。
type Burn struct {
	common.InstructionBase
	Account string `json:"account"`
	Mint    string `json:"mint"`
	Amount  uint64 `json:"amount"`
}

// BurnChecked 带 decimals 校验的销毁。
type BurnChecked struct {
	common.InstructionBase
	Account  string `json:"account"`
	Mint     string `json:"mint"`
	Amount   uint64 `json:"amount"`
	Decimals uint8  `json:"decimals"`
}

func decodeMintTo(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	r := codec.NewReader(data)
	r.Skip(1, "discriminator")
	amount := r.U64("amount")
	if err := r.Err(); err != nil {
		return nil, err
	}

	mint, err := ctx.AccountAt(ix, 0)
	if err != nil {
		return nil, err
	}
	destination, err := ctx.AccountAt(ix, 1)
	if err != nil {
		return nil, err
	}
	return MintTo{
		InstructionBase: base("MintTo"),
		Mint:            mint,
		Destination:     destination,
		Amount:          amount,
	}, nil
}

func decodeMintToChecked(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	r := codec.NewReader(data)
	r.Skip(1, "discriminator")
	amount := r.U64("amount")
	decimals := r.U8("decimals")
	if err := r.Err(); err != nil {
		return nil, err
	}

	mint, err := ctx.AccountAt(ix, 0)
	if err != nil {
		return nil, err
	}
	destination, err := ctx.AccountAt(ix, 1)
	if err != nil {
		return nil, err
	}
	return MintToChecked{
		InstructionBase: base("MintToChecked"),
		Mint:            mint,
		Destination:     destination,
		Amount:          amount,
		Decimals:        decimals,
	}, nil
}

func decodeBurn(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	r := codec.NewReader(data)
	r.Skip(1, "discriminator")
	amount := r.U64("amount")
	if err := r.Err(); err != nil {
		return nil, err
	}

	account, err := ctx.AccountAt(ix, 0)
	if err != nil {
		return nil, err
	}
	mint, err := ctx.AccountAt(ix, 1)
	if err != nil {
		return nil, err
	}
	return Burn{
		InstructionBase: base("Burn"),
		Account:         account,
		Mint:            mint,
		Amount:          amount,
	}, nil
}

func decodeBurnChecked(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	r := codec.NewReader(data)
	r.Skip(1, "discriminator")
	amount := r.U64("amount")
	decimals := r.U8("decimals")
	if err := r.Err(); err != nil {
		return nil, err
	}

	account, err := ctx.AccountAt(ix, 0)
	if err != nil {
		return nil, err
	}
	mint, err := ctx.AccountAt(ix, 1)
	if err != nil {
		return nil, err
	}
	return BurnChecked{
		InstructionBase: base("BurnChecked"),
		Account:         account,
		Mint:            mint,
		Amount:          amount,
		Decimals:        decimals,
	}, nil
}
