package game

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/gonewx/kokaton/pkg/types"
)

// InputSource 输入协作方，每帧按值提供按键状态
type InputSource interface {
	PollKeys() types.KeyState
}

// Renderer 渲染协作方，按顺序执行一帧的绘制请求
// Present 不能持有 cmds，切片会在下一帧被复用
type Renderer interface {
	Present(cmds []DrawCommand) error
}

// Clock 时钟协作方，Tick 阻塞到下一个帧边界
type Clock interface {
	Tick()
}

// Run 以固定帧率驱动 World，直到退出
//
// 收到退出键时返回 nil；ctx 取消时返回 ctx.Err()；
// 其余错误（运行期资源错误、渲染错误）原样返回。
// Ebitengine 前端不使用 Run，而是由 ebiten 调度 Step。
func Run(ctx context.Context, w *World, input InputSource, renderer Renderer, clock Clock) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := w.Step(input.PollKeys())
		if errors.Is(err, ErrQuit) {
			log.Printf("[Run] 正常退出，共 %d 帧", w.Tick())
			return nil
		}
		if err != nil {
			return fmt.Errorf("step %d: %w", w.Tick(), err)
		}

		if err := renderer.Present(w.DrawList()); err != nil {
			return fmt.Errorf("present frame %d: %w", w.Tick(), err)
		}

		clock.Tick()
	}
}
