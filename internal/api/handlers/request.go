package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/schema"

	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
)

// AlertParam query параметр, в котором сообщение переживает redirect
const AlertParam = "alert"

var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// DecodeForm разбирает application/x-www-form-urlencoded тело в dst
// Поля dst размечаются тегом schema. Пустые значения отбрасываются:
// незаполненное поле-указатель остается nil и не превращается в 0
func DecodeForm(r *http.Request, dst interface{}) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	return formDecoder.Decode(dst, withoutEmpty(r.PostForm))
}

func withoutEmpty(values url.Values) url.Values {
	result := make(url.Values, len(values))
	for key, list := range values {
		for _, v := range list {
			if strings.TrimSpace(v) != "" {
				result[key] = append(result[key], v)
			}
		}
	}
	return result
}

// ParseDateParam читает дату YYYY-MM-DD из query параметра
// Пустое значение - nil без ошибки
func ParseDateParam(r *http.Request, name string) (*time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil, nil
	}
	date, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

// Alert текст предупреждения из query
func Alert(r *http.Request) string {
	return r.URL.Query().Get(AlertParam)
}

// Redirect делает 303 See Other на path с query параметрами и сообщением
func Redirect(w http.ResponseWriter, r *http.Request, path string, params url.Values, alert string) {
	if params == nil {
		params = url.Values{}
	}
	if alert != "" {
		params.Set(AlertParam, alert)
	}

	target := path
	if encoded := params.Encode(); encoded != "" {
		target += "?" + encoded
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// DateParams query с одной датой, для возврата на нужный день
// Некорректная дата отбрасывается
func DateParams(date string) url.Values {
	params := url.Values{}
	if _, err := time.Parse(domain.DateFormat, date); err == nil {
		params.Set("date", date)
	}
	return params
}
