package entities

import "errors"

// ErrAssetResolution 图像标识无法解析为可绘制句柄
// 启动阶段遇到此错误应直接终止进程，不做重试或替换图像
var ErrAssetResolution = errors.New("asset resolution failed")
