package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 针对运行中的服务做端到端测试
// 设置 BOOKSHELF_TEST_BASE_URL(如 http://localhost:9000)后执行,未设置时跳过

// Timeout HTTP请求超时时间
const Timeout = 10 * time.Second

// Response 统一响应结构
type Response struct {
	StatusCode int             `json:"-"`
	Status     string          `json:"status"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

// BookData 图书详情
type BookData struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Year       int    `json:"year"`
	Author     string `json:"author"`
	Summary    string `json:"summary"`
	Publisher  string `json:"publisher"`
	PageCount  int    `json:"pageCount"`
	ReadPage   int    `json:"readPage"`
	Finished   bool   `json:"finished"`
	Reading    bool   `json:"reading"`
	InsertedAt string `json:"insertedAt"`
	UpdatedAt  string `json:"updatedAt"`
}

// BookItem 图书列表项
type BookItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

// baseURL 未配置时跳过测试
func baseURL(t *testing.T) string {
	t.Helper()
	u := os.Getenv("BOOKSHELF_TEST_BASE_URL")
	if u == "" {
		t.Skip("BOOKSHELF_TEST_BASE_URL not set")
	}
	return strings.TrimRight(u, "/")
}

// DoJSON 发送请求并解析统一响应
func DoJSON(t *testing.T, method, url string, data interface{}) *Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	require.NoError(t, json.Unmarshal(raw, &result), "解析JSON响应失败: %s", string(raw))
	result.StatusCode = resp.StatusCode
	return &result
}

// AddBook 新增图书并返回ID
func AddBook(t *testing.T, base string, payload map[string]interface{}) string {
	t.Helper()
	resp := DoJSON(t, http.MethodPost, base+"/books", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode, resp.Message)

	var data struct {
		BookID string `json:"bookId"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.NotEmpty(t, data.BookID)
	return data.BookID
}

// GetBook 查询图书详情
func GetBook(t *testing.T, base, id string) (*Response, BookData) {
	t.Helper()
	resp := DoJSON(t, http.MethodGet, base+"/books/"+id, nil)
	var data struct {
		Book BookData `json:"book"`
	}
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.Unmarshal(resp.Data, &data))
	}
	return resp, data.Book
}

// ListBooks 查询图书列表
func ListBooks(t *testing.T, base, query string) []BookItem {
	t.Helper()
	resp := DoJSON(t, http.MethodGet, base+"/books"+query, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Books []BookItem `json:"books"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.NotNil(t, data.Books)
	return data.Books
}

// NewBookPayload 生成唯一书名的请求体,避免重复运行相互影响
func NewBookPayload(prefix string) map[string]interface{} {
	return map[string]interface{}{
		"name":      prefix + " " + time.Now().Format("150405.000000"),
		"year":      2010,
		"author":    "John Doe",
		"summary":   "Lorem ipsum dolor sit amet",
		"publisher": "Dicoding Indonesia",
		"pageCount": 100,
		"readPage":  25,
		"reading":   false,
	}
}
