package types

// Sprite 渲染后端可绘制的图像句柄
// 核心逻辑只关心尺寸，具体像素由渲染协作方持有
type Sprite interface {
	Size() (width, height int)
}

// SpriteKey 描述一个需要解析的图像
//
// Name 为图像编号或名称（如 "3"、"star"），
// FlipX 表示水平翻转，Hyper 表示叠加 hyper 模式的滤镜。
type SpriteKey struct {
	Name  string
	FlipX bool
	Hyper bool
}

// SpriteLoader 资源协作方：把图像标识解析为可绘制句柄
// 解析失败是致命错误，调用方不做重试或替换
type SpriteLoader interface {
	LoadSprite(key SpriteKey) (Sprite, error)
}
