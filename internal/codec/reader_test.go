package codec

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 测试各定宽原语的小端读取与偏移推进
func TestReader_Primitives(t *testing.T) {
	buf := make([]byte, 0, 1+4+8+8)
	buf = append(buf, 0x7f)
	buf = binary.LittleEndian.AppendUint32(buf, 123456)
	buf = binary.LittleEndian.AppendUint64(buf, 1_000_000)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(18446744073709551615)) // -1 的补码

	r := NewReader(buf)
	assert.Equal(t, uint8(0x7f), r.U8("a"))
	assert.Equal(t, uint32(123456), r.U32("b"))
	assert.Equal(t, uint64(1_000_000), r.U64("c"))
	assert.Equal(t, int64(-1), r.I64("d"))
	assert.NoError(t, r.Err())
}

// 测试越界读取报错且错误信息带字段名
func TestReader_ShortData(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	_ = r.U64("lamports")
	err := r.Err()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrShortData))
	assert.Contains(t, err.Error(), "lamports")
}

// 测试首个错误粘滞：后续读取全部短路且不覆盖首错
func TestReader_StickyError(t *testing.T) {
	r := NewReader([]byte{9})
	_ = r.U32("first")
	firstErr := r.Err()
	_ = r.U64("second")
	assert.Same(t, firstErr, r.Err())
	assert.Contains(t, r.Err().Error(), "first")
}

// 测试长度前缀字符串读取与 UTF-8 校验
func TestReader_String(t *testing.T) {
	buf := binary.LittleEndian.AppendUint32(nil, 5)
	buf = append(buf, []byte("hello")...)
	r := NewReader(buf)
	assert.Equal(t, "hello", r.String("name"))
	assert.NoError(t, r.Err())

	bad := binary.LittleEndian.AppendUint32(nil, 2)
	bad = append(bad, 0xff, 0xfe)
	r = NewReader(bad)
	_ = r.String("name")
	assert.True(t, errors.Is(r.Err(), ErrInvalidUTF8))
}

// 测试 option<pubkey>：0 为缺省，1 后跟 32 字节
func TestReader_OptionPubkey(t *testing.T) {
	r := NewReader([]byte{0})
	assert.Equal(t, "", r.OptionPubkey("owner"))
	assert.NoError(t, r.Err())

	buf := append([]byte{1}, make([]byte, 32)...)
	r = NewReader(buf)
	assert.Equal(t, "11111111111111111111111111111111", r.OptionPubkey("owner"))
	assert.NoError(t, r.Err())

	// 标记为 1 但没有后续字节
	r = NewReader([]byte{1})
	_ = r.OptionPubkey("owner")
	assert.True(t, errors.Is(r.Err(), ErrShortData))

	// 仅标记 1 视为存在，其余非零值同样按缺省处理
	buf = append([]byte{2}, make([]byte, 32)...)
	r = NewReader(buf)
	assert.Equal(t, "", r.OptionPubkey("owner"))
	assert.NoError(t, r.Err())
}

// 测试 Anchor 判别符推导与已知常量一致
func TestAnchorDiscriminator(t *testing.T) {
	assert.Equal(t, uint64(0xf8c69e91e17587c8), AnchorDiscriminator("swap"))
	assert.Equal(t, uint64(0x66063d1201daebea), AnchorDiscriminator("buy"))
	assert.Equal(t, uint64(0x33e685a4017f83ad), AnchorDiscriminator("sell"))
	assert.Equal(t, uint64(0x181ec828051c0777), AnchorDiscriminator("create"))
}
