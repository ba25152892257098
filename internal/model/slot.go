// Package model はドメインモデルを定義する。
package model

// Slot は医師に紐づく予約枠を表す。
// DoctorIDは必須で、作成後に変更されない。枠同士の重複は検査しない。
type Slot struct {
	ID       int64
	DoctorID int64
	Day      Date
	FromHour string // 開始時刻のラベル。検証せずそのまま保持する
	Duration int    // 範囲チェックなし（0や負数も許容）
}
