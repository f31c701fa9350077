package components

import "github.com/gonewx/kokaton/pkg/types"

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
type SpriteComponent struct {
	Image types.Sprite
}

// OrientationComponent 玩家的八方向图像表
// 构建实体时从资源协作方一次性加载，Hyper 为叠加滤镜后的版本
type OrientationComponent struct {
	Normal [types.DirectionCount]types.Sprite
	Hyper  [types.DirectionCount]types.Sprite
}
