package scenes

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/gonewx/kokaton/pkg/components"
	"github.com/gonewx/kokaton/pkg/ecs"
	"github.com/gonewx/kokaton/pkg/game"
	"github.com/gonewx/kokaton/pkg/types"
	"github.com/gonewx/kokaton/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// beamToggleKey 切换光束模式的按键
const beamToggleKey = ebiten.KeyB

// GameScene 主游戏场景
//
// Update 每个 tick 采样一次按键并推进 World，Draw 按 World 给出的绘制列表回放。
// 场景本身不保存任何游戏状态。
type GameScene struct {
	world      *game.World
	pollKeys   func() types.KeyState
	toggleBeam func() bool
	ground     *ebiten.Image
	showDebug  bool
	warned     bool
}

// NewGameScene 创建游戏场景
//
// 参数:
//   - world: 帧编排器
//   - keyMap: 逻辑输入到 Ebitengine 按键的映射
//   - showDebug: 是否绘制调试信息（TPS、帧号、玩家状态）
func NewGameScene(world *game.World, keyMap KeyMap, showDebug bool) *GameScene {
	return &GameScene{
		world:      world,
		pollKeys:   func() types.KeyState { return PollKeyState(keyMap) },
		toggleBeam: func() bool { return inpututil.IsKeyJustPressed(beamToggleKey) },
		showDebug:  showDebug,
	}
}

// Update 推进一帧，退出键转换为 ebiten.Termination
// 按下 B 键切换光束模式，在本帧的发射判断之前生效
func (s *GameScene) Update() error {
	if s.toggleBeam() {
		s.world.SetBeamMode(!s.world.BeamMode())
	}

	err := s.world.Step(s.pollKeys())
	if errors.Is(err, game.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// Draw 白色背景上依次绘制地面、玩家、星星、光束
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	for _, cmd := range s.world.DrawList() {
		s.drawCommand(screen, cmd)
	}

	if s.showDebug {
		s.drawDebug(screen)
	}
}

func (s *GameScene) drawCommand(screen *ebiten.Image, cmd game.DrawCommand) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(cmd.Rect.X, cmd.Rect.Y)

	if cmd.Ground {
		screen.DrawImage(s.groundImage(cmd.Rect), op)
		return
	}

	sprite, ok := cmd.Sprite.(*Sprite)
	if !ok {
		if !s.warned {
			log.Printf("[GameScene] 无法绘制的图像类型 %T", cmd.Sprite)
			s.warned = true
		}
		return
	}
	screen.DrawImage(sprite.Image, op)
}

// groundImage 黑色地面带，首次绘制时创建
func (s *GameScene) groundImage(r utils.Rect) *ebiten.Image {
	if s.ground == nil {
		s.ground = ebiten.NewImage(int(r.Width), int(r.Height))
		s.ground.Fill(color.Black)
	}
	return s.ground
}

func (s *GameScene) drawDebug(screen *ebiten.Image) {
	em := s.world.EntityManager()
	text := fmt.Sprintf("TPS: %.1f  tick: %d  entities: %d  beam(B): %v",
		ebiten.ActualTPS(), s.world.Tick(), em.EntityCount(), s.world.BeamMode())
	if rect, ok := ecs.GetComponent[*components.RectComponent](em, s.world.PlayerID()); ok {
		text += fmt.Sprintf("\nplayer: (%.0f, %.0f)", rect.Rect.CenterX(), rect.Rect.CenterY())
	}
	ebitenutil.DebugPrintAt(screen, text, 10, 10)
}
