// Package model はドメインモデルを定義する。
package model

// Doctor は診療を担当する医師を表す。
// 作成後に変更・削除されることはない。
type Doctor struct {
	ID             int64
	FirstName      string
	LastName       string
	Specialization string
}
