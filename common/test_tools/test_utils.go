package testtools

import (
	"bytes"
	"errors"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

var (
	ErrFileNameEmpty = errors.New("file name is empty")
)

const jsonExt = ".json"

// ConvertJSONFileIntoStruct reads dir/name, adding the .json extension when
// missing, and unmarshals it into v.
func ConvertJSONFileIntoStruct(dir, name string, v interface{}) error {
	if len(name) == 0 {
		return ErrFileNameEmpty
	}

	if !strings.HasSuffix(name, jsonExt) {
		name += jsonExt
	}

	fname := filepath.Join(dir, name)

	buf, err := os.ReadFile(fname)
	if err != nil {
		return fmt.Errorf("could not read file %s error %s", fname, err)
	}

	if err := json.Unmarshal(buf, v); err != nil {
		return fmt.Errorf("could not unmarshal file contents into struct. file %s error %s", fname, err)
	}

	return nil
}

// GenerateCtxWithJSONAndParams returns a gin test context for a request
// carrying body as JSON, or no body when body is nil.
func GenerateCtxWithJSONAndParams(method, target string, body interface{}, params gin.Params) (*gin.Context, *httptest.ResponseRecorder, error) {
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Params = params

	var buf bytes.Buffer

	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, nil, err
		}
	}

	ctx.Request = httptest.NewRequest(method, target, &buf)
	ctx.Request.Header.Set("Content-Type", "application/json")

	return ctx, recorder, nil
}
