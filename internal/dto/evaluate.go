package dto

import "github.com/DjordjeVuckovic/arith-hunter/internal/ast"

type EvaluateRequest struct {
	Expression string `json:"expression" example:"(2+3)*4"`
}

type EvaluateResponse struct {
	ID         string  `json:"id"`
	Expression string  `json:"expression"`
	Result     float64 `json:"result"`
	Formatted  string  `json:"formatted"`
}

type BatchRequest struct {
	Expressions []string `json:"expressions"`
}

// BatchItem carries either Result/Formatted or Error/Kind.
type BatchItem struct {
	Expression string   `json:"expression"`
	Result     *float64 `json:"result,omitempty"`
	Formatted  string   `json:"formatted,omitempty"`
	Error      string   `json:"error,omitempty"`
	Kind       string   `json:"kind,omitempty"`
}

type BatchResponse struct {
	ID        string      `json:"id"`
	Items     []BatchItem `json:"items"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
}

type ParseResponse struct {
	Expression string    `json:"expression"`
	Infix      string    `json:"infix"`
	Tree       *ast.Node `json:"tree"`
}

type TokenItem struct {
	Type  string `json:"type"`
	Value string `json:"value,omitempty"`
	Pos   int    `json:"pos"`
}

type TokensResponse struct {
	Expression string      `json:"expression"`
	Tokens     []TokenItem `json:"tokens"`
}
