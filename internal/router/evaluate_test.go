package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/arith-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/arith-hunter/internal/calc"
	"github.com/DjordjeVuckovic/arith-hunter/internal/dto"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(opts ...EvalRouterOption) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewEvalRouter(e, calc.New(calc.Config{MaxDepth: 8}), opts...).Bind()
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestEvaluateHandler(t *testing.T) {
	e := newTestEcho()

	rec := doJSON(t, e, http.MethodPost, "/v1/evaluate", `{"expression":"7/2"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.EvaluateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "7/2", resp.Expression)
	assert.Equal(t, 3.5, resp.Result)
	assert.Equal(t, "3.5", resp.Formatted)
	_, err := uuid.Parse(resp.ID)
	assert.NoError(t, err)
}

func TestEvaluateHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantKind   string
	}{
		{name: "division by zero", body: `{"expression":"5/0"}`, wantStatus: http.StatusUnprocessableEntity, wantKind: "arithmetic"},
		{name: "lexical", body: `{"expression":"2@3"}`, wantStatus: http.StatusUnprocessableEntity, wantKind: "lexical"},
		{name: "parsing", body: `{"expression":"(2+3"}`, wantStatus: http.StatusUnprocessableEntity, wantKind: "parsing"},
		{name: "too deep", body: `{"expression":"(((((((((1)))))))))"}`, wantStatus: http.StatusUnprocessableEntity, wantKind: "parsing"},
		{name: "empty expression", body: `{"expression":"  "}`, wantStatus: http.StatusBadRequest},
		{name: "malformed body", body: `{"expression":`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, newTestEcho(), http.MethodPost, "/v1/evaluate", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, body["kind"])
			}
		})
	}
}

func TestEvaluateHandler_ExpressionTooLong(t *testing.T) {
	e := newTestEcho(WithMaxExpressionLength(5))

	rec := doJSON(t, e, http.MethodPost, "/v1/evaluate", `{"expression":"1+2+3+4"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "exceeds 5 bytes")
}

func TestBatchHandler(t *testing.T) {
	e := newTestEcho(WithBatchConcurrency(2))

	rec := doJSON(t, e, http.MethodPost, "/v1/evaluate/batch", `{"expressions":["1+1","5/0","(2+3)*4","2@3"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.BatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 4)
	assert.Equal(t, 2, resp.Succeeded)
	assert.Equal(t, 2, resp.Failed)

	require.NotNil(t, resp.Items[0].Result)
	assert.Equal(t, 2.0, *resp.Items[0].Result)
	assert.Equal(t, "arithmetic", resp.Items[1].Kind)
	assert.Nil(t, resp.Items[1].Result)
	assert.Equal(t, "20", resp.Items[2].Formatted)
	assert.Equal(t, "lexical", resp.Items[3].Kind)
}

func TestHandlers_ResultOutOfRange(t *testing.T) {
	e := newTestEcho()
	overflows := []string{
		strings.Repeat("9007199254740992*", 20) + "1",
		"(9007199254740992/3)" + strings.Repeat("*9007199254740992", 20),
	}

	for _, expr := range overflows {
		body, err := json.Marshal(dto.EvaluateRequest{Expression: expr})
		require.NoError(t, err)

		rec := doJSON(t, e, http.MethodPost, "/v1/evaluate", string(body))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), `"kind":"arithmetic"`)
	}

	body, err := json.Marshal(dto.BatchRequest{Expressions: append([]string{"1+1"}, overflows...)})
	require.NoError(t, err)

	rec := doJSON(t, e, http.MethodPost, "/v1/evaluate/batch", string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.BatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 3)
	assert.Equal(t, 1, resp.Succeeded)
	assert.Equal(t, 2, resp.Failed)
	assert.Equal(t, "2", resp.Items[0].Formatted)
	assert.Equal(t, "arithmetic", resp.Items[1].Kind)
	assert.Equal(t, "arithmetic", resp.Items[2].Kind)
}

func TestBatchHandler_Validation(t *testing.T) {
	e := newTestEcho(WithMaxBatchSize(2))

	rec := doJSON(t, e, http.MethodPost, "/v1/evaluate/batch", `{"expressions":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, e, http.MethodPost, "/v1/evaluate/batch", `{"expressions":["1","2","3"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "limit is 2")

	rec = doJSON(t, e, http.MethodPost, "/v1/evaluate/batch", `{"expressions":["1",""]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "expression 1")
}

func TestParseHandler(t *testing.T) {
	rec := doJSON(t, newTestEcho(), http.MethodPost, "/v1/parse", `{"expression":"2+3*4"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ParseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "(2 + (3 * 4))", resp.Infix)
	require.NotNil(t, resp.Tree)
	assert.Equal(t, "+", resp.Tree.Op)
	assert.Equal(t, "*", resp.Tree.Right.Op)
	require.NotNil(t, resp.Tree.Left.Value)
	assert.Equal(t, int64(2), *resp.Tree.Left.Value)
}

func TestTokensHandler(t *testing.T) {
	e := newTestEcho()

	rec := doJSON(t, e, http.MethodGet, "/v1/tokens?expression="+url.QueryEscape("(1 + 22)"), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.TokensResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	var types []string
	for _, tok := range resp.Tokens {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []string{"LPAREN", "INTEGER", "PLUS", "INTEGER", "RPAREN", "EOF"}, types)
	assert.Equal(t, "22", resp.Tokens[3].Value)
	assert.Equal(t, 5, resp.Tokens[3].Pos)

	rec = doJSON(t, e, http.MethodGet, "/v1/tokens?expression="+url.QueryEscape("1 $"), "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/v1/tokens", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
