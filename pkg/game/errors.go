package game

import (
	"errors"

	"github.com/gonewx/kokaton/pkg/entities"
	"github.com/gonewx/kokaton/pkg/systems"
)

// 错误分类
//
//   - ErrAssetResolution: 启动时图像无法解析，致命
//   - ErrInvalidStateTransition: 状态机契约被破坏（strict 模式下以 panic 抛出）
//   - ErrQuit: 收到退出信号，主循环正常结束
var (
	ErrAssetResolution        = entities.ErrAssetResolution
	ErrInvalidStateTransition = systems.ErrInvalidStateTransition
	ErrQuit                   = errors.New("quit requested")
)
