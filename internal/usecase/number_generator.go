package usecase

import (
	"fmt"
	"sync/atomic"
	"time"
)

// 注文番号・請求書番号の発行。
// タイムスタンプだけだと同一ミリ秒で衝突するので連番を足し、
// 最終的な一意性はDBのユニーク制約＋リトライで守る。
type NumberGenerator interface {
	Next(now time.Time) string
}

type sequenceNumberGenerator struct {
	prefix string
	seq    uint64
}

func NewNumberGenerator(prefix string) NumberGenerator {
	return &sequenceNumberGenerator{prefix: prefix}
}

func (g *sequenceNumberGenerator) Next(now time.Time) string {
	n := atomic.AddUint64(&g.seq, 1)
	return fmt.Sprintf("%s-%d-%04d", g.prefix, now.UnixMilli(), n%10000)
}
