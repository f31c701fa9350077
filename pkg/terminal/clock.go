package terminal

import "time"

// TickerClock 以固定帧率阻塞的时钟，实现 game.Clock
type TickerClock struct {
	ticker *time.Ticker
}

// NewTickerClock 创建每秒 tps 帧的时钟，tps 必须为正
func NewTickerClock(tps int) *TickerClock {
	return &TickerClock{ticker: time.NewTicker(time.Second / time.Duration(tps))}
}

// Tick 阻塞到下一个帧边界
func (c *TickerClock) Tick() {
	<-c.ticker.C
}

// Stop 释放底层 ticker
func (c *TickerClock) Stop() {
	c.ticker.Stop()
}
