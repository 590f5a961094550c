package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"name":           "名前",
	"email":          "メールアドレス",
	"password":       "パスワード",
	"sex":            "性別",
	"height_cm":      "身長",
	"last_weight_kg": "体重",
	"interval_weeks": "計測間隔",
	"recorded_on":    "計測日",
	"weight_kg":      "体重",
	"waist_cm":       "ウエスト",
	"hip_cm":         "ヒップ",
	"neck_cm":        "首回り",
	"chest_cm":       "胸囲",
	"arm_cm":         "腕回り",
	"thigh_cm":       "太もも回り",
	"glute_cm":       "臀囲",
	"fat_percent":    "体脂肪率",
	"muscle_percent": "筋肉率",
	"water_percent":  "水分率",
	"notes":          "メモ",
	"source":         "入力元",
	"token":          "トークン",
}

func init() {
	// バリデータのインスタンスを生成
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// 日本語のロケールとトランスレータを設定
	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	// バリデータに日本語の翻訳を登録
	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// 必要に応じて、個別のエラーメッセージを上書き・カスタマイズ
	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			fieldName := fe.Field()
			translatedFieldName, ok := fieldNameTranslations[fieldName]
			if !ok {
				// マップにない場合は、元のjsonタグ名をそのまま使う
				translatedFieldName = fieldName
			}
			t, _ := ut.T(tag, translatedFieldName)
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("email", "{0}は有効なメールアドレス形式ではありません。")
	registerTranslation("oneof", "{0}に指定できない値が入力されています。")

	// パラメータ付きタグは個別に登録する
	registerParamTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			fieldName := fe.Field()
			translatedFieldName, ok := fieldNameTranslations[fieldName]
			if !ok {
				translatedFieldName = fieldName
			}
			t, _ := ut.T(tag, translatedFieldName, fe.Param())
			return t
		})
	}

	registerParamTranslation("min", "{0}は{1}以上で入力してください。")
	registerParamTranslation("max", "{0}は{1}以下で入力してください。")
	registerParamTranslation("gt", "{0}は{1}より大きい値を入力してください。")
	registerParamTranslation("lte", "{0}は{1}以下の値を入力してください。")
	registerParamTranslation("lt", "{0}は{1}未満の値を入力してください。")
}
