package resolver

import (
	"tx-resolver-sol/internal/logic/parser"
	"tx-resolver-sol/internal/logic/parser/common"
)

// Resolve 是整笔交易经指令级解码后归结出的唯一语义动作。
// 封闭联合类型：变体只在本包内定义，下游按类型断言穷尽分支。
type Resolve interface {
	resolve()
}

// Unknown 表示无法归因的交易：没有规则命中，或证据有歧义。
// 歧义从不猜测，一律落到 Unknown。
type Unknown struct{}

func (Unknown) resolve() {}

// rule 尝试从指令列表归结出语义动作；不命中时返回 nil。
// 每条规则的判据为“列表中恰好存在一条 K 类指令”，
// 零条或多条都视为放弃，绝不随机挑选其一。
type rule func(instrs []common.ParsedInstruction) Resolve

// rules 按优先级排列，第一条命中的规则产出最终结果。
var rules = []rule{
	resolvePumpFun,
	resolveRaydium,
}

// Run 按序尝试全部规则，归结交易的语义动作。
func Run(pt *parser.ParsedTransaction) Resolve {
	for _, r := range rules {
		if result := r(pt.Instructions); result != nil {
			return result
		}
	}
	return Unknown{}
}
