package param

import (
	"encoding/json"
	"net/http"
	"reflect"

	"github.com/gorilla/schema"
	"github.com/shopspring/decimal"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.SetAliasTag("json")
	decoder.IgnoreUnknownKeys(true)
	decoder.RegisterConverter(decimal.Decimal{}, func(v string) reflect.Value {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return reflect.Value{}
		}

		return reflect.ValueOf(d)
	})
}

// Binding binds query params or a json body onto v
func Binding(r *http.Request, v interface{}) error {
	if r.Body != nil && r.Method != http.MethodGet {
		defer r.Body.Close()
		return json.NewDecoder(r.Body).Decode(v)
	}

	return decoder.Decode(v, r.URL.Query())
}
