package components

// CollectibleComponent 星星（可收集物）
// 被玩家碰到时移除，并让玩家进入 hyper 模式
type CollectibleComponent struct {
	// HyperDuration 拾取后授予的 hyper 帧数
	HyperDuration int
	// DespawnOffscreen 完全离开画面左侧后是否移除
	DespawnOffscreen bool
}
