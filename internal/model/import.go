package model

import "time"

// ImportReport 一次导入的结果汇总
// 部分行被丢弃不算失败：成功响应也可能携带 warnings，调用方需要检查
type ImportReport struct {
	Version      string                `json:"version"`  // 本次导入的版本标签
	Filename     string                `json:"filename"` // 上传文件名
	Counts       map[TableCategory]int `json:"counts"`   // 各分类接受的行数
	Warnings     []string              `json:"warnings"` // 被丢弃行的说明
	TotalRows    int                   `json:"totalRows"`
	AcceptedRows int                   `json:"acceptedRows"`
	SkippedRows  int                   `json:"skippedRows"` // 空行（静默跳过，不计入 warnings）
	Duration     time.Duration         `json:"-"`
}

// VersionEntry 导入版本历史项（最近的排在最前）
type VersionEntry struct {
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
}
