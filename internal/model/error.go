// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrForbidden      = errors.New("forbidden")
	ErrTenantNotFound = errors.New("tenant not found or invalid")
	ErrConflict       = errors.New("resource conflict") // 重複エラー用
)

// ErrorDetail はクライアントに返すエラーの詳細です
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	// Fields は複数フィールドの一括バリデーションエラー用 (フィールド名 → 理由)
	Fields map[string]string `json:"fields,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスのエンベロープ
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はエラーコード・ユーザー向けメッセージ・対象フィールドを持つ
// アプリケーションエラーです。Unwrap で根本原因のセンチネルエラーを返します。
type AppError struct {
	Detail ErrorDetail
	err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		err:    err,
	}
}

// NewFieldsAppError は複数フィールドのエラーをまとめて保持する AppError を生成します
func NewFieldsAppError(code, message string, fields map[string]string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Fields: fields},
		err:    err,
	}
}

func (e *AppError) Error() string {
	if e.err != nil {
		return e.Detail.Message + ": " + e.err.Error()
	}
	return e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.err
}
