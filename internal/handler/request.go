package handler

import (
	"bytes"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/hitoshi/reallydirty/internal/model"
)

// maxBodyBytes はリクエストボディの上限サイズ。
const maxBodyBytes = 1 << 20

var validate = validator.New()

// createDoctorRequest は医師登録リクエスト。値は検証せずそのまま保存する。
type createDoctorRequest struct {
	FirstName      string
	LastName       string
	Specialization string
}

// addSlotRequest は予約枠登録リクエスト。
// dayの形式はサービス層で解釈するため、ここでは文字列のまま受け取る。
type addSlotRequest struct {
	Day      string
	FromHour string
	Duration string `validate:"required,numeric"`
}

// requestFields はリクエストの各項目を文字列として保持する。
// クエリパラメータとボディ（フォーム、マルチパート、JSON）を統合し、ボディの値を優先する。
type requestFields map[string]string

// readRequestFields はリクエストからフィールドを読み出す。
// JSONの値は文字列または数値のみ受け付ける。
func readRequestFields(w http.ResponseWriter, r *http.Request) (requestFields, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	fields := requestFields{}
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}

	mediaType := ""
	if ct := r.Header.Get("Content-Type"); ct != "" {
		parsed, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return nil, model.NewInvalidRequestError("Content-Type を解釈できません")
		}
		mediaType = parsed
	}

	switch mediaType {
	case "application/json":
		if err := readJSONFields(r, fields); err != nil {
			return nil, err
		}
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return nil, model.NewInvalidRequestError("マルチパートの解析に失敗しました")
		}
		for key, values := range r.MultipartForm.Value {
			if len(values) > 0 {
				fields[key] = values[0]
			}
		}
	default:
		if err := r.ParseForm(); err != nil {
			return nil, model.NewInvalidRequestError("フォームの解析に失敗しました")
		}
		for key, values := range r.PostForm {
			if len(values) > 0 {
				fields[key] = values[0]
			}
		}
	}

	return fields, nil
}

// readJSONFields はJSONオブジェクトのボディを読み、フィールドに上書きする。
// 空のボディは項目なしとして扱う。
func readJSONFields(r *http.Request, fields requestFields) error {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r.Body); err != nil {
		return model.NewInvalidRequestError("ボディの読み込みに失敗しました")
	}
	if len(bytes.TrimSpace(buf.Bytes())) == 0 {
		return nil
	}

	var body map[string]any
	dec := json.NewDecoder(&buf)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return model.NewInvalidRequestError("JSONの解析に失敗しました")
	}

	for key, value := range body {
		switch v := value.(type) {
		case nil:
			// nullは未指定と同じ
		case string:
			fields[key] = v
		case json.Number:
			fields[key] = v.String()
		default:
			return model.NewInvalidRequestError(fmt.Sprintf("%s は文字列または数値で指定してください", key))
		}
	}
	return nil
}

// decodeCreateDoctorRequest は医師登録リクエストを組み立てる。
func decodeCreateDoctorRequest(w http.ResponseWriter, r *http.Request) (createDoctorRequest, error) {
	fields, err := readRequestFields(w, r)
	if err != nil {
		return createDoctorRequest{}, err
	}
	return createDoctorRequest{
		FirstName:      fields["firstName"],
		LastName:       fields["lastName"],
		Specialization: fields["specialization"],
	}, nil
}

// decodeAddSlotRequest は予約枠登録リクエストを組み立て、durationを整数に変換する。
func decodeAddSlotRequest(w http.ResponseWriter, r *http.Request) (addSlotRequest, int, error) {
	fields, err := readRequestFields(w, r)
	if err != nil {
		return addSlotRequest{}, 0, err
	}

	req := addSlotRequest{
		Day:      fields["day"],
		FromHour: fields["from_hour"],
		Duration: strings.TrimSpace(fields["duration"]),
	}

	if err := validate.Struct(req); err != nil {
		return addSlotRequest{}, 0, model.NewInvalidRequestError(describeValidationError(err))
	}

	// 保存先はINTEGER列のため32bitの範囲に制限する
	duration, err := strconv.ParseInt(req.Duration, 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		return addSlotRequest{}, 0, model.NewInvalidRequestError("duration が範囲外です")
	}
	if err != nil {
		return addSlotRequest{}, 0, model.NewInvalidRequestError("duration は整数で指定してください")
	}

	return req, int(duration), nil
}

// describeValidationError はvalidatorのエラーを利用者向けの説明に変換する。
func describeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	fe := verrs[0]
	name := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s は必須です", name)
	case "numeric":
		return fmt.Sprintf("%s は整数で指定してください", name)
	default:
		return fmt.Sprintf("%s が不正です (%s)", name, fe.Tag())
	}
}

// parseIDOrZero はidクエリを整数に変換する。数値でない場合は0を返し、結果として未検出になる。
func parseIDOrZero(raw string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
