package app

// Command はreallydirtyバイナリのサブコマンドを表す。
type Command string

const (
	// CommandServe は医師・予約枠APIのHTTPサーバーを起動する。既定のモード。
	CommandServe Command = "serve"
	// CommandMigrate はdoctors/slotsテーブルのマイグレーションを適用して終了する。
	// docker-composeのmigrateサービスが起動前に一度だけ実行する。
	CommandMigrate Command = "migrate"
	// CommandHealthcheck は起動中のAPIの/healthを叩き、結果を終了コードで返す。
	// シェルを持たないdistrolessイメージのHEALTHCHECKから呼ばれる。
	CommandHealthcheck Command = "healthcheck"
)

var commands = map[string]Command{
	string(CommandServe):       CommandServe,
	string(CommandMigrate):     CommandMigrate,
	string(CommandHealthcheck): CommandHealthcheck,
}

// ParseCommand はos.Args[1:]の先頭からサブコマンドを決める。
// 引数なし、または未知のコマンドはserveとして扱う（Dockerfileの CMD ["serve"] を省略しても動く）。
func ParseCommand(args []string) Command {
	if len(args) == 0 {
		return CommandServe
	}
	if cmd, ok := commands[args[0]]; ok {
		return cmd
	}
	return CommandServe
}
