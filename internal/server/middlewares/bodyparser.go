package middlewares

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	srvErrors "github.com/kubev2v/hello-server/pkg/errors"
)

const (
	// BodyKey holds the parsed request body in the gin context.
	BodyKey = "body"

	DefaultBodyLimit int64 = 100 << 10

	// indices above this limit are kept as object keys
	arrayLimit = 20
)

// JSONBody decodes JSON request bodies before any handler runs. Only objects
// and arrays are accepted at the top level. The raw body is restored so
// handlers can still bind it.
func JSONBody(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isJSON(c.ContentType()) {
			return
		}

		body, err := readBody(c, limit)
		if err != nil {
			abortWithError(c, err)
			return
		}
		if len(bytes.TrimSpace(body)) == 0 {
			return
		}

		if !json.Valid(body) {
			abortWithError(c, srvErrors.NewBadRequestError("malformed JSON body"))
			return
		}
		trimmed := bytes.TrimLeft(body, " \t\r\n")
		if trimmed[0] != '{' && trimmed[0] != '[' {
			abortWithError(c, srvErrors.NewBadRequestError("malformed JSON body: top level value must be an object or an array"))
			return
		}

		dec := json.NewDecoder(bytes.NewReader(body))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			abortWithError(c, srvErrors.NewBadRequestError("malformed JSON body"))
			return
		}

		c.Set(BodyKey, v)
	}
}

// URLEncodedBody decodes form bodies into nested values, see ParseNestedForm.
func URLEncodedBody(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.ContentType() != gin.MIMEPOSTForm {
			return
		}

		body, err := readBody(c, limit)
		if err != nil {
			abortWithError(c, err)
			return
		}

		values, err := url.ParseQuery(string(body))
		if err != nil {
			abortWithError(c, srvErrors.NewBadRequestError("malformed form body"))
			return
		}

		c.Set(BodyKey, ParseNestedForm(values))
	}
}

// ParseNestedForm expands bracketed keys into nested values:
//
//	a[b]=1        → {"a": {"b": "1"}}
//	c[]=x&c[]=y   → {"c": ["x", "y"]}
//	d[0]=x&d[1]=y → {"d": ["x", "y"]}
//	e=1&e=2       → {"e": ["1", "2"]}
//	f=1&f[g]=2    → {"f": ["1", {"g": "2"}]}
func ParseNestedForm(values url.Values) map[string]any {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]any, len(values))
	for _, key := range keys {
		segs := splitFormKey(key)
		for _, val := range values[key] {
			assign(out, segs, val)
		}
	}

	for k, v := range out {
		out[k] = compact(v)
	}
	return out
}

func splitFormKey(key string) []string {
	open := strings.IndexByte(key, '[')
	if open <= 0 {
		return []string{key}
	}

	segs := []string{key[:open]}
	rest := key[open:]
	for rest != "" {
		if rest[0] != '[' {
			return []string{key}
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return []string{key}
		}
		segs = append(segs, rest[1:end])
		rest = rest[end+1:]
	}
	return segs
}

func assign(m map[string]any, segs []string, val string) {
	key := segs[0]
	switch {
	case len(segs) == 1:
		setLeaf(m, key, val)
	case len(segs) == 2 && segs[1] == "":
		switch existing := m[key].(type) {
		case map[string]any:
			existing[nextIndex(existing)] = val
		case []any:
			m[key] = append(existing, val)
		case string:
			m[key] = []any{existing, val}
		default:
			m[key] = []any{val}
		}
	default:
		assign(childMap(m, key), segs[1:], val)
	}
}

// childMap returns the map stored under key, creating it if needed. A scalar
// already stored under key is kept in a list next to the new map, and a list
// becomes a map keyed by index.
func childMap(m map[string]any, key string) map[string]any {
	switch existing := m[key].(type) {
	case map[string]any:
		return existing
	case []any:
		child := make(map[string]any, len(existing))
		for i, v := range existing {
			child[strconv.Itoa(i)] = v
		}
		m[key] = child
		return child
	case string:
		child := make(map[string]any)
		m[key] = []any{existing, child}
		return child
	default:
		child := make(map[string]any)
		m[key] = child
		return child
	}
}

func nextIndex(m map[string]any) string {
	i := 0
	for {
		if _, ok := m[strconv.Itoa(i)]; !ok {
			return strconv.Itoa(i)
		}
		i++
	}
}

func setLeaf(m map[string]any, key, val string) {
	switch existing := m[key].(type) {
	case string:
		m[key] = []any{existing, val}
	case []any:
		m[key] = append(existing, val)
	default:
		m[key] = val
	}
}

// compact turns maps keyed only by small indices into arrays ordered by index.
func compact(v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}
	for k, child := range m {
		m[k] = compact(child)
	}

	indices := make([]int, 0, len(m))
	for k := range m {
		i, err := strconv.Atoi(k)
		if err != nil || i < 0 || i > arrayLimit || strconv.Itoa(i) != k {
			return m
		}
		indices = append(indices, i)
	}
	if len(indices) == 0 {
		return m
	}
	sort.Ints(indices)

	list := make([]any, 0, len(indices))
	for _, i := range indices {
		list = append(list, m[strconv.Itoa(i)])
	}
	return list
}

func isJSON(contentType string) bool {
	return contentType == gin.MIMEJSON || strings.HasSuffix(contentType, "+json")
}

// readBody reads at most limit bytes and puts the body back on the request.
func readBody(c *gin.Context, limit int64) ([]byte, error) {
	if c.Request.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, limit))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, srvErrors.NewPayloadTooLargeError(limit)
		}
		return nil, srvErrors.NewBadRequestError("failed to read request body")
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
